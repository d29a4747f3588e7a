package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"adserver/config"
	"adserver/models"
	"adserver/utils"

	"github.com/gin-gonic/gin"
)

// ListPlacementsHandler returns the full slot catalog. Reading triggers the
// idempotent seed/repair migration, so the response is always complete.
// @Summary      List Placement Slots
// @Tags         Placements
// @Produce      json
// @Success      200 {array} models.AdSpaceSlot
// @Router       /placements [get]
func ListPlacementsHandler(c *gin.Context, stores *Stores, cfg *config.Config) {
	c.JSON(http.StatusOK, stores.Placements.ReadAll())
}

// PlacementCodeHandler resolves the markup a consumer should render for one
// slot: the single code, or the rotation pick for ?index=N.
// @Summary      Resolve Placement Code
// @Description  Returns the markup to render for a slot. Single slots yield their one code; rotating slots cycle through their non-blank codes by the caller-supplied index. Disabled or blank slots yield an empty code, never an error.
// @Tags         Placements
// @Produce      json
// @Param        key path string true "Slot key"
// @Param        index query int false "Rotation index (rotating slots only)"
// @Success      200 {object} map[string]string
// @Failure      404 {object} utils.APIError "Unknown slot key."
// @Router       /placements/{key}/code [get]
func PlacementCodeHandler(c *gin.Context, stores *Stores, cfg *config.Config) {
	key := c.Param("key")
	slot, found := stores.Placements.Slot(key)
	if !found {
		utils.GinNotFound(c, "Unknown placement slot.")
		return
	}

	var code string
	if slot.Kind == models.SlotRotating {
		index, _ := strconv.Atoi(c.DefaultQuery("index", "0"))
		code = stores.Placements.RotatingCode(key, index)
	} else {
		code = stores.Placements.SingleCode(key)
	}
	c.JSON(http.StatusOK, gin.H{"key": key, "code": code})
}

// WatchPlacementsHandler long-polls for slot changes: it blocks until a
// Write lands or the timeout passes, then reports which happened. Consumers
// re-read the catalog when changed is true.
// @Summary      Watch For Placement Changes
// @Tags         Placements
// @Produce      json
// @Param        timeout query int false "Max seconds to wait (default 30, max 60)"
// @Success      200 {object} map[string]bool
// @Router       /placements/watch [get]
func WatchPlacementsHandler(c *gin.Context, stores *Stores, cfg *config.Config) {
	seconds, _ := strconv.Atoi(c.DefaultQuery("timeout", "30"))
	if seconds <= 0 || seconds > 60 {
		seconds = 30
	}

	ch, cancel := stores.Placements.Subscribe()
	defer cancel()

	select {
	case <-ch:
		c.JSON(http.StatusOK, gin.H{"changed": true})
	case <-time.After(time.Duration(seconds) * time.Second):
		c.JSON(http.StatusOK, gin.H{"changed": false})
	case <-c.Request.Context().Done():
		c.JSON(http.StatusOK, gin.H{"changed": false})
	}
}

// UpdatePlacementRequest is the admin edit body for one slot.
type UpdatePlacementRequest struct {
	Codes   []string `json:"codes"`
	Enabled bool     `json:"enabled"`
}

// UpdatePlacementHandler edits one slot's codes and enabled flag. The
// catalog is closed: unknown keys are rejected, never created.
// @Summary      Update Placement Slot (Admin)
// @Tags         Placements
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        key path string true "Slot key"
// @Param        slot body UpdatePlacementRequest true "New codes and enabled flag"
// @Success      200 {object} models.AdSpaceSlot
// @Failure      404 {object} utils.APIError "Unknown slot key."
// @Router       /admin/placements/{key} [put]
func UpdatePlacementHandler(c *gin.Context, stores *Stores, cfg *config.Config) {
	key := c.Param("key")

	var req UpdatePlacementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.GinBadRequest(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if !stores.Placements.UpdateSlot(key, req.Codes, req.Enabled) {
		utils.GinNotFound(c, "Unknown placement slot.")
		return
	}
	slot, _ := stores.Placements.Slot(key)
	c.JSON(http.StatusOK, slot)
}

// LoadSamplePlacementsHandler fills every slot with sized placeholder
// markup and enables it.
// @Summary      Load Sample Markup (Admin)
// @Tags         Placements
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} models.AdSpaceSlot
// @Router       /admin/placements/samples [post]
func LoadSamplePlacementsHandler(c *gin.Context, stores *Stores, cfg *config.Config) {
	stores.Placements.LoadSamples()
	c.JSON(http.StatusOK, stores.Placements.ReadAll())
}

// ClearPlacementsHandler disables every slot and blanks all codes.
// @Summary      Clear All Placements (Admin)
// @Tags         Placements
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} models.AdSpaceSlot
// @Router       /admin/placements/clear [post]
func ClearPlacementsHandler(c *gin.Context, stores *Stores, cfg *config.Config) {
	stores.Placements.ClearAll()
	c.JSON(http.StatusOK, stores.Placements.ReadAll())
}
