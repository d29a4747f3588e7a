package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"adserver/config"
	"adserver/models"
	"adserver/store"
	"adserver/utils"

	"github.com/gin-gonic/gin"
)

// AccountSummary is the admin view of an account. Passwords are never
// returned, even to admins.
type AccountSummary struct {
	Username string `json:"username"`
	Phone    string `json:"phone"`
	AdCount  int    `json:"adCount"`
}

// ListAccountsHandler lists every registered account with its ad count.
// @Summary      List Accounts (Admin)
// @Tags         Admin
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} AccountSummary
// @Failure      401 {object} utils.APIError
// @Failure      403 {object} utils.APIError
// @Router       /admin/accounts [get]
func ListAccountsHandler(c *gin.Context, stores *Stores, cfg *config.Config) {
	accounts := stores.Identity.Accounts()
	summaries := make([]AccountSummary, 0, len(accounts))
	for _, acc := range accounts {
		summaries = append(summaries, AccountSummary{
			Username: acc.Username,
			Phone:    acc.Phone,
			AdCount:  len(stores.Ads.GetByUser(acc.Username)),
		})
	}
	c.JSON(http.StatusOK, summaries)
}

// DeleteAccountHandler removes an account and every ad it owns.
// @Summary      Delete Account (Admin)
// @Description  Deletes the account with the given username along with all classified ads posted by it. The active session is cleared if it belongs to the deleted account.
// @Tags         Admin
// @Produce      json
// @Security     BearerAuth
// @Param        username path string true "Account username"
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} utils.APIError
// @Router       /admin/accounts/{username} [delete]
func DeleteAccountHandler(c *gin.Context, stores *Stores, cfg *config.Config) {
	username := c.Param("username")
	if !stores.Identity.DeleteAccount(username) {
		utils.GinNotFound(c, "Account not found.")
		return
	}
	if session, ok := stores.Identity.Session(); ok && strings.EqualFold(session.Username, username) {
		stores.Identity.Logout()
	}

	removed := 0
	for _, ad := range stores.Ads.GetByUser(username) {
		if stores.Ads.Delete(ad.ID) {
			removed++
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"message":    fmt.Sprintf("Account '%s' deleted.", username),
		"adsRemoved": removed,
	})
}

// SearchAdsResponse is the paginated result envelope for the admin ad
// search endpoint.
type SearchAdsResponse struct {
	Ads   []models.ClassifiedAd `json:"ads"`
	Total int                   `json:"total"`
	Page  int                   `json:"page"`
	Limit int                   `json:"limit"`
}

// SearchAdsHandler filters, sorts and paginates the full ad collection.
// @Summary      Search Ads (Admin)
// @Description  Searches every classified ad on the platform, including expired ones:
// @Description  *   `username`: Restrict to one owner's ads (case-insensitive).
// @Description  *   `status`: `active`, `expired`, or `all` (default).
// @Description  *   `content_query`: Filter by ad content using dot paths and typed operators (`equals`, `notequals`, `contains`, `startswith`, `endswith`, the numeric comparisons, plus an `-insensitive` suffix on the string ones). Conditions alternate with `and`/`or` logic parts. Example: `?content_query=district equals "Colombo"&content_query=and&content_query=whatsapp equals true`
// @Description  *   `sort_by`: `created_at` (default) or `expires_at`.
// @Description  *   `order`: `asc` or `desc` (default).
// @Description  *   `page`/`limit`: Pagination (page starts at 1; limit defaults to 20, max 100).
// @Tags         Admin
// @Produce      json
// @Security     BearerAuth
// @Param        username      query string false "Restrict to one owner's ads."
// @Param        status        query string false "Lifecycle filter." Enums(active, expired, all) default(all)
// @Param        content_query query []string false "Content filter conditions and logic parts." collectionFormat(multi) example(district equals "Colombo")
// @Param        sort_by       query string false "Sort field." Enums(created_at, expires_at) default(created_at)
// @Param        order         query string false "Sort direction." Enums(asc, desc) default(desc)
// @Param        page          query int false "Page number (starts at 1)." minimum(1) default(1)
// @Param        limit         query int false "Ads per page." minimum(1) maximum(100) default(20)
// @Success      200 {object} SearchAdsResponse
// @Failure      400 {object} utils.APIError
// @Router       /admin/ads [get]
func SearchAdsHandler(c *gin.Context, stores *Stores, cfg *config.Config) {
	pageQuery := c.DefaultQuery("page", "1")
	limitQuery := c.DefaultQuery("limit", "20")
	page, errPage := strconv.Atoi(pageQuery)
	limit, errLimit := strconv.Atoi(limitQuery)
	if errPage != nil || errLimit != nil || page < 1 {
		utils.GinBadRequest(c, "Invalid 'page' or 'limit' query parameter. Must be positive integers.")
		return
	}

	params := store.AdQueryParams{
		Username: c.Query("username"),
		Status:   c.DefaultQuery("status", "all"),
		Query:    c.QueryArray("content_query"),
		SortBy:   c.DefaultQuery("sort_by", "created_at"),
		Order:    c.DefaultQuery("order", "desc"),
		Page:     page,
		Limit:    limit,
	}

	ads, total, err := stores.Ads.Search(params)
	if err != nil {
		if strings.Contains(err.Error(), "invalid query") ||
			strings.Contains(err.Error(), "invalid status value") ||
			strings.Contains(err.Error(), "invalid sort_by value") ||
			strings.Contains(err.Error(), "invalid order value") {
			utils.GinBadRequest(c, err.Error())
		} else {
			utils.GinInternalServerError(c, fmt.Sprintf("Failed to search ads: %v", err))
		}
		return
	}

	c.JSON(http.StatusOK, SearchAdsResponse{
		Ads:   ads,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// AdminDeleteAdHandler removes any ad regardless of owner or edit lock.
// @Summary      Delete Ad (Admin)
// @Tags         Admin
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Ad ID"
// @Success      200 {object} map[string]string
// @Failure      404 {object} utils.APIError
// @Router       /admin/ads/{id} [delete]
func AdminDeleteAdHandler(c *gin.Context, stores *Stores, cfg *config.Config) {
	id := c.Param("id")
	if !stores.Ads.Delete(id) {
		utils.GinNotFound(c, "Ad not found.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Ad deleted."})
}

// AdminListDatingProfilesHandler lists every dating profile without passwords.
// @Summary      List Dating Profiles (Admin)
// @Tags         Admin
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} models.DatingProfile
// @Router       /admin/dating/profiles [get]
func AdminListDatingProfilesHandler(c *gin.Context, stores *Stores, cfg *config.Config) {
	c.JSON(http.StatusOK, stores.Dating.PublicProfiles())
}

// DeleteDatingProfileHandler removes a dating profile and all its messages.
// @Summary      Delete Dating Profile (Admin)
// @Description  Deletes the profile with the given id along with every message it sent or received. The active dating session is cleared if it belongs to the deleted profile.
// @Tags         Admin
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Profile ID"
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} utils.APIError
// @Router       /admin/dating/profiles/{id} [delete]
func DeleteDatingProfileHandler(c *gin.Context, stores *Stores, cfg *config.Config) {
	id := c.Param("id")
	if !stores.Dating.DeleteProfile(id) {
		utils.GinNotFound(c, "Profile not found.")
		return
	}
	removed := stores.Messages.DeleteByUser(id)
	c.JSON(http.StatusOK, gin.H{
		"message":         fmt.Sprintf("Profile '%s' deleted.", id),
		"messagesRemoved": removed,
	})
}

// AdminDeleteStoryHandler removes a story.
// @Summary      Delete Story (Admin)
// @Tags         Admin
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Story ID"
// @Success      200 {object} map[string]string
// @Failure      404 {object} utils.APIError
// @Router       /admin/stories/{id} [delete]
func AdminDeleteStoryHandler(c *gin.Context, stores *Stores, cfg *config.Config) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.GinBadRequest(c, "Story id must be a number.")
		return
	}
	if !stores.Stories.Delete(id) {
		utils.GinNotFound(c, "Story not found.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Story deleted."})
}

// ResetStoriesHandler restores the story collection to its fixture set.
// @Summary      Reset Stories (Admin)
// @Tags         Admin
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} models.Story
// @Router       /admin/stories/reset [post]
func ResetStoriesHandler(c *gin.Context, stores *Stores, cfg *config.Config) {
	stores.Stories.Reset()
	c.JSON(http.StatusOK, stores.Stories.GetAll())
}
