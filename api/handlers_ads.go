package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"adserver/config"
	"adserver/store"
	"adserver/utils"

	"github.com/gin-gonic/gin"
)

// AdRequest is the JSON body for creating or editing an ad. The same shape
// serves both; on edit, an empty string means "leave unchanged", so a field
// cannot be cleared back to empty through this endpoint. Optional fields
// such as image and price keep their old value until a new one replaces it.
type AdRequest struct {
	Category    string `json:"category"`
	Title       string `json:"title"`
	Description string `json:"description"`
	District    string `json:"district"`
	City        string `json:"city"`
	Location    string `json:"location"`
	Contact     string `json:"contact"`
	Image       string `json:"image"`
	Price       string `json:"price"`
	Whatsapp    bool   `json:"whatsapp"`
	Viber       bool   `json:"viber"`
	Telegram    bool   `json:"telegram"`
	Imo         bool   `json:"imo"`
}

// validateAdRequest applies the form-level rules. The store accepts anything;
// this is the single place the limits are enforced.
func validateAdRequest(req AdRequest) string {
	limits := store.Limits

	if req.Category == "" || req.Title == "" || req.Description == "" ||
		req.District == "" || req.City == "" || req.Contact == "" {
		return "Please fill in all required fields."
	}
	if len(req.Title) < limits.TitleMin || len(req.Title) > limits.TitleMax {
		return fmt.Sprintf("Title must be between %d and %d characters.", limits.TitleMin, limits.TitleMax)
	}
	if len(req.Description) < limits.DescMin || len(req.Description) > limits.DescMax {
		return fmt.Sprintf("Description must be between %d and %d characters.", limits.DescMin, limits.DescMax)
	}

	contact := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(req.Contact)
	if !store.ContactPattern.MatchString(contact) {
		return "Please enter a valid Sri Lankan phone number."
	}

	if req.Price != "" {
		price, err := strconv.ParseFloat(strings.ReplaceAll(req.Price, ",", ""), 64)
		if err != nil || price < 0 {
			return "Please enter a valid price."
		}
		if price > float64(limits.PriceMax) {
			return fmt.Sprintf("Price cannot exceed %d.", limits.PriceMax)
		}
	}

	// Images arrive as data URLs; base64 inflates the payload by a third.
	if maxEncoded := limits.ImageMaxMB * 1024 * 1024 * 4 / 3; len(req.Image) > maxEncoded {
		return fmt.Sprintf("Image must be smaller than %dMB.", limits.ImageMaxMB)
	}

	return ""
}

// ListAdsHandler lists all currently active ads.
// @Summary      List Active Ads
// @Description  Returns every non-expired ad, optionally filtered by category and district. Expiry is evaluated at read time; expired ads simply stop appearing.
// @Tags         Ads
// @Produce      json
// @Param        category query string false "Filter by category"
// @Param        district query string false "Filter by district"
// @Success      200 {array} models.ClassifiedAd
// @Router       /ads [get]
func ListAdsHandler(c *gin.Context, stores *Stores, cfg *config.Config) {
	category := c.Query("category")
	district := c.Query("district")

	ads := stores.Ads.GetAll()
	visible := ads[:0]
	for _, ad := range ads {
		if stores.Ads.IsExpired(ad) {
			continue
		}
		if category != "" && !strings.EqualFold(ad.Category, category) {
			continue
		}
		if district != "" && !strings.EqualFold(ad.District, district) {
			continue
		}
		visible = append(visible, ad)
	}
	c.JSON(http.StatusOK, visible)
}

// GetAdHandler returns a single ad by id, expired ones included so owners
// can still see their history.
// @Summary      Get Ad
// @Tags         Ads
// @Produce      json
// @Param        id path string true "Ad ID"
// @Success      200 {object} models.ClassifiedAd
// @Failure      404 {object} utils.APIError
// @Router       /ads/{id} [get]
func GetAdHandler(c *gin.Context, stores *Stores, cfg *config.Config) {
	ad, found := stores.Ads.GetByID(c.Param("id"))
	if !found {
		utils.GinNotFound(c, "Ad not found.")
		return
	}
	c.JSON(http.StatusOK, ad)
}

// MyAdsHandler lists the caller's own ads, expired ones included.
// @Summary      List My Ads
// @Tags         Ads
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} models.ClassifiedAd
// @Router       /ads/mine [get]
func MyAdsHandler(c *gin.Context, stores *Stores, cfg *config.Config) {
	username := c.GetString("username")
	c.JSON(http.StatusOK, stores.Ads.GetByUser(username))
}

// CreateAdHandler validates the form, enforces the active-ad quota, and
// posts the ad under the caller's username.
// @Summary      Post Ad
// @Description  Creates a new ad owned by the caller. The form is validated here (field lengths, contact number, price ceiling, image size) and the active-ad quota is enforced: a user may hold at most 4 non-expired ads. The stored ad gets a 60-day lifetime and a 14-day edit lock, both stamped at creation.
// @Tags         Ads
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        ad body AdRequest true "Ad fields"
// @Success      201 {object} models.ClassifiedAd
// @Failure      400 {object} utils.APIError "A field fails validation."
// @Failure      403 {object} utils.APIError "Active-ad quota reached."
// @Router       /ads [post]
func CreateAdHandler(c *gin.Context, stores *Stores, cfg *config.Config) {
	username := c.GetString("username")

	var req AdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.GinBadRequest(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if msg := validateAdRequest(req); msg != "" {
		utils.GinBadRequest(c, msg)
		return
	}

	if stores.Ads.CountActiveByUser(username) >= store.Limits.MaxActivePerUser {
		utils.GinForbidden(c, fmt.Sprintf("You can have at most %d active ads. Delete or wait for one to expire first.", store.Limits.MaxActivePerUser))
		return
	}

	ad := stores.Ads.Add(store.AdDraft{
		Username:    username,
		Category:    req.Category,
		Title:       req.Title,
		Description: req.Description,
		District:    req.District,
		City:        req.City,
		Location:    req.Location,
		Contact:     req.Contact,
		Image:       req.Image,
		Price:       req.Price,
		Whatsapp:    req.Whatsapp,
		Viber:       req.Viber,
		Telegram:    req.Telegram,
		Imo:         req.Imo,
	})
	c.JSON(http.StatusCreated, ad)
}

// UpdateAdHandler edits the caller's own ad, refusing while the edit lock
// holds.
// @Summary      Edit Ad
// @Description  Updates an ad the caller owns. Refused while the 14-day edit lock is in force; the error names the unlock date. Owner, id and the stamped timestamps never change.
// @Tags         Ads
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Ad ID"
// @Param        ad body AdRequest true "Fields to change"
// @Success      200 {object} models.ClassifiedAd
// @Failure      400 {object} utils.APIError
// @Failure      403 {object} utils.APIError "Not the owner, or the edit lock is still in force."
// @Failure      404 {object} utils.APIError
// @Router       /ads/{id} [put]
func UpdateAdHandler(c *gin.Context, stores *Stores, cfg *config.Config) {
	username := c.GetString("username")
	id := c.Param("id")

	ad, found := stores.Ads.GetByID(id)
	if !found {
		utils.GinNotFound(c, "Ad not found.")
		return
	}
	if !strings.EqualFold(ad.Username, username) && !c.GetBool("isAdmin") {
		utils.GinForbidden(c, "You can only edit your own ads.")
		return
	}
	if stores.Ads.IsLocked(ad) && !c.GetBool("isAdmin") {
		utils.GinForbidden(c, fmt.Sprintf("This ad is locked until %s.", ad.EditLockedUntil.Format("2006-01-02")))
		return
	}

	var req AdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.GinBadRequest(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	// Validate the merged result, not the sparse request.
	merged := AdRequest{
		Category:    pick(req.Category, ad.Category),
		Title:       pick(req.Title, ad.Title),
		Description: pick(req.Description, ad.Description),
		District:    pick(req.District, ad.District),
		City:        pick(req.City, ad.City),
		Location:    pick(req.Location, ad.Location),
		Contact:     pick(req.Contact, ad.Contact),
		Image:       pick(req.Image, ad.Image),
		Price:       pick(req.Price, ad.Price),
	}
	if msg := validateAdRequest(merged); msg != "" {
		utils.GinBadRequest(c, msg)
		return
	}

	update := store.AdUpdate{
		Whatsapp: &req.Whatsapp,
		Viber:    &req.Viber,
		Telegram: &req.Telegram,
		Imo:      &req.Imo,
	}
	setIfPresent(&update.Category, req.Category)
	setIfPresent(&update.Title, req.Title)
	setIfPresent(&update.Description, req.Description)
	setIfPresent(&update.District, req.District)
	setIfPresent(&update.City, req.City)
	setIfPresent(&update.Location, req.Location)
	setIfPresent(&update.Contact, req.Contact)
	setIfPresent(&update.Image, req.Image)
	setIfPresent(&update.Price, req.Price)

	stores.Ads.Update(id, update)
	updated, _ := stores.Ads.GetByID(id)
	c.JSON(http.StatusOK, updated)
}

// DeleteAdHandler deletes the caller's own ad, refusing while the edit lock
// holds. Admins bypass both checks.
// @Summary      Delete Ad
// @Tags         Ads
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Ad ID"
// @Success      200 {object} map[string]string
// @Failure      403 {object} utils.APIError "Not the owner, or the edit lock is still in force."
// @Failure      404 {object} utils.APIError
// @Router       /ads/{id} [delete]
func DeleteAdHandler(c *gin.Context, stores *Stores, cfg *config.Config) {
	username := c.GetString("username")
	id := c.Param("id")

	ad, found := stores.Ads.GetByID(id)
	if !found {
		utils.GinNotFound(c, "Ad not found.")
		return
	}
	if !strings.EqualFold(ad.Username, username) && !c.GetBool("isAdmin") {
		utils.GinForbidden(c, "You can only delete your own ads.")
		return
	}
	if stores.Ads.IsLocked(ad) && !c.GetBool("isAdmin") {
		utils.GinForbidden(c, fmt.Sprintf("This ad is locked until %s.", ad.EditLockedUntil.Format("2006-01-02")))
		return
	}

	stores.Ads.Delete(id)
	c.JSON(http.StatusOK, gin.H{"message": "Ad deleted."})
}

// pick and setIfPresent implement the edit merge: empty input keeps the
// current value, so edits cannot clear a field.
func pick(requested, current string) string {
	if requested != "" {
		return requested
	}
	return current
}

func setIfPresent(dest **string, value string) {
	if value != "" {
		v := value
		*dest = &v
	}
}
