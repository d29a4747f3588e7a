package api

import (
	"fmt"
	"net/http"

	"adserver/config"
	"adserver/models"
	"adserver/store"
	"adserver/utils"

	"github.com/gin-gonic/gin"
)

// The dating section runs its own account system. Dating tokens carry the
// profile id as the subject, so a classifieds token never unlocks dating
// routes and vice versa.

// DatingLoginRequest is the JSON body for dating login.
type DatingLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// DatingAuthResponse is returned on successful dating signup or login.
type DatingAuthResponse struct {
	Token   string                `json:"token"`
	Profile models.DatingProfile `json:"profile"`
}

// datingCallerID extracts the dating profile id the middleware stored.
func datingCallerID(c *gin.Context) string {
	return c.GetString("username")
}

// DatingRegisterHandler creates a dating profile and logs it in.
// @Summary      Dating Sign Up
// @Description  Creates a dating profile. The store validates the form itself: required fields, password length (6+), age 18-99, username uniqueness (checked first, case-insensitively). Country defaults to Sri Lanka.
// @Tags         Dating
// @Accept       json
// @Produce      json
// @Param        fields body store.DatingRegisterFields true "Signup form"
// @Success      201 {object} DatingAuthResponse
// @Failure      400 {object} utils.APIError "Validation failure; the message is the user-facing text."
// @Router       /dating/register [post]
func DatingRegisterHandler(c *gin.Context, stores *Stores, cfg *config.Config) {
	var fields store.DatingRegisterFields
	if err := c.ShouldBindJSON(&fields); err != nil {
		utils.GinBadRequest(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	profile, err := stores.Dating.Register(fields)
	if err != nil {
		utils.GinBadRequest(c, err.Error())
		return
	}

	token, err := utils.GenerateJWT(profile.ID, false, cfg)
	if err != nil {
		utils.GinInternalServerError(c, "Failed to generate token.")
		return
	}
	c.JSON(http.StatusCreated, DatingAuthResponse{Token: token, Profile: profile})
}

// DatingLoginHandler authenticates a dating profile.
// @Summary      Dating Log In
// @Tags         Dating
// @Accept       json
// @Produce      json
// @Param        credentials body DatingLoginRequest true "Profile credentials"
// @Success      200 {object} DatingAuthResponse
// @Failure      401 {object} utils.APIError "Invalid username or password."
// @Router       /dating/login [post]
func DatingLoginHandler(c *gin.Context, stores *Stores, cfg *config.Config) {
	var req DatingLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.GinBadRequest(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	profile, err := stores.Dating.Login(req.Username, req.Password)
	if err != nil {
		utils.GinUnauthorized(c, err.Error())
		return
	}

	token, err := utils.GenerateJWT(profile.ID, false, cfg)
	if err != nil {
		utils.GinInternalServerError(c, "Failed to generate token.")
		return
	}
	c.JSON(http.StatusOK, DatingAuthResponse{Token: token, Profile: profile})
}

// DatingLogoutHandler stamps lastActive and clears the dating session.
// @Summary      Dating Log Out
// @Tags         Dating
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} map[string]string
// @Router       /dating/logout [post]
func DatingLogoutHandler(c *gin.Context, stores *Stores, cfg *config.Config) {
	stores.Dating.Logout()
	c.JSON(http.StatusOK, gin.H{"message": "Logged out."})
}

// DatingSessionHandler returns the persisted dating session.
// @Summary      Current Dating Session
// @Tags         Dating
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} models.DatingProfile
// @Failure      401 {object} utils.APIError
// @Router       /dating/session [get]
func DatingSessionHandler(c *gin.Context, stores *Stores, cfg *config.Config) {
	session, loggedIn := stores.Dating.Session()
	if !loggedIn {
		utils.GinUnauthorized(c, "Not logged in.")
		return
	}
	// Browsing while logged in counts as activity.
	stores.Dating.TouchLastActive(session.ID)
	c.JSON(http.StatusOK, session)
}

// ListDatingProfilesHandler lists every profile, passwords stripped.
// @Summary      Browse Profiles
// @Tags         Dating
// @Produce      json
// @Success      200 {array} models.DatingProfile
// @Router       /dating/profiles [get]
func ListDatingProfilesHandler(c *gin.Context, stores *Stores, cfg *config.Config) {
	c.JSON(http.StatusOK, stores.Dating.PublicProfiles())
}

// GetDatingProfileHandler returns one public profile by id.
// @Summary      View Profile
// @Tags         Dating
// @Produce      json
// @Param        id path string true "Profile ID"
// @Success      200 {object} models.DatingProfile
// @Failure      404 {object} utils.APIError
// @Router       /dating/profiles/{id} [get]
func GetDatingProfileHandler(c *gin.Context, stores *Stores, cfg *config.Config) {
	profile, found := stores.Dating.ProfileByID(c.Param("id"))
	if !found {
		utils.GinNotFound(c, "Profile not found.")
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateDatingProfileHandler edits the caller's own profile.
// @Summary      Edit My Profile
// @Description  Merges the supplied fields into the caller's profile, stamps lastActive, and refreshes the stored session. Username and password are not editable here.
// @Tags         Dating
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        fields body store.DatingProfileUpdate true "Fields to change"
// @Success      200 {object} models.DatingProfile
// @Failure      404 {object} utils.APIError
// @Router       /dating/profile [put]
func UpdateDatingProfileHandler(c *gin.Context, stores *Stores, cfg *config.Config) {
	var update store.DatingProfileUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.GinBadRequest(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	profile, err := stores.Dating.UpdateProfile(datingCallerID(c), update)
	if err != nil {
		utils.GinNotFound(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, profile)
}
