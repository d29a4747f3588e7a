package api

import (
	"fmt"
	"net/http"

	"adserver/config"
	"adserver/models"
	"adserver/utils"

	"github.com/gin-gonic/gin"
)

// SignupRequest defines the expected JSON body for classifieds signup.
type SignupRequest struct {
	Username string `json:"username" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest defines the expected JSON body for login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned on successful signup or login.
type AuthResponse struct {
	Token   string         `json:"token"`
	Session models.Session `json:"session"`
}

// SignupHandler registers a new classifieds account.
// @Summary      Sign Up
// @Description  Creates a new classifieds account and logs it in. Usernames are unique case-insensitively, phone numbers exactly; the password must be at least 6 characters.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        credentials body SignupRequest true "New account details"
// @Success      201 {object} AuthResponse "Account created; the response carries the session and a bearer token."
// @Failure      400 {object} utils.APIError "Missing fields or a password shorter than 6 characters."
// @Failure      409 {object} utils.APIError "Username or phone number already registered."
// @Router       /auth/signup [post]
func SignupHandler(c *gin.Context, stores *Stores, cfg *config.Config) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.GinBadRequest(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if len(req.Password) < 6 {
		utils.GinBadRequest(c, "Password must be at least 6 characters.")
		return
	}

	session, err := stores.Identity.Register(req.Username, req.Phone, req.Password)
	if err != nil {
		utils.GinError(c, http.StatusConflict, err.Error())
		return
	}

	token, err := utils.GenerateJWT(session.Username, false, cfg)
	if err != nil {
		utils.GinInternalServerError(c, "Failed to generate token.")
		return
	}
	c.JSON(http.StatusCreated, AuthResponse{Token: token, Session: session})
}

// LoginHandler authenticates a classifieds account or the admin pair.
// @Summary      Log In
// @Description  Verifies the credentials against the stored accounts (username case-insensitive, password exact) and returns a bearer token. The reserved admin credential pair yields an admin token.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        credentials body LoginRequest true "Account credentials"
// @Success      200 {object} AuthResponse
// @Failure      400 {object} utils.APIError "Malformed request body."
// @Failure      401 {object} utils.APIError "Invalid username or password."
// @Router       /auth/login [post]
func LoginHandler(c *gin.Context, stores *Stores, cfg *config.Config) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.GinBadRequest(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	session, err := stores.Identity.Login(req.Username, req.Password)
	if err != nil {
		utils.GinUnauthorized(c, err.Error())
		return
	}

	token, err := utils.GenerateJWT(session.Username, session.IsAdmin, cfg)
	if err != nil {
		utils.GinInternalServerError(c, "Failed to generate token.")
		return
	}
	c.JSON(http.StatusOK, AuthResponse{Token: token, Session: session})
}

// LogoutHandler clears the stored session record.
// @Summary      Log Out
// @Description  Clears the persisted session record. The bearer token itself stays valid until it expires; clients should discard it.
// @Tags         Auth
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} map[string]string
// @Router       /auth/logout [post]
func LogoutHandler(c *gin.Context, stores *Stores, cfg *config.Config) {
	stores.Identity.Logout()
	c.JSON(http.StatusOK, gin.H{"message": "Logged out."})
}

// SessionHandler returns the persisted session record.
// @Summary      Current Session
// @Tags         Auth
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} models.Session
// @Failure      401 {object} utils.APIError "No active session."
// @Router       /auth/session [get]
func SessionHandler(c *gin.Context, stores *Stores, cfg *config.Config) {
	session, loggedIn := stores.Identity.Session()
	if !loggedIn {
		utils.GinUnauthorized(c, "Not logged in.")
		return
	}
	c.JSON(http.StatusOK, session)
}
