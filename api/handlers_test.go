package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"adserver/config"
	"adserver/models"
	"adserver/store"
	"adserver/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testJWTSecret is a fixed secret for generating tokens during tests.
const testJWTSecret = "test-handler-secret-key-needs-to-be-long-enough"

// setupTestServer initializes a Gin engine with the full route table over a
// temporary data directory. Returns the router, the stores, the backing
// ledger and a cleanup function.
func setupTestServer(t *testing.T) (*gin.Engine, *Stores, store.Ledger, func()) {
	gin.SetMode(gin.TestMode)

	tempDir, err := os.MkdirTemp("", "adserver_api_test_")
	require.NoError(t, err, "Failed to create temp data directory")

	cfg := &config.Config{
		DataDir:       tempDir,
		EnableBackup:  false,
		JwtSecret:     testJWTSecret,
		TokenLifetime: 1 * time.Hour,
	}

	ledger, err := store.NewFileLedger(cfg.DataDir, cfg.EnableBackup)
	require.NoError(t, err, "Failed to initialize test ledger")
	stores := NewStores(ledger)

	router := gin.New()
	router.RedirectTrailingSlash = false
	registerTestRoutes(router, stores, cfg)

	cleanup := func() {
		if err := os.RemoveAll(tempDir); err != nil {
			t.Logf("Warning: Failed to remove temp directory %s: %v", tempDir, err)
		}
	}
	return router, stores, ledger, cleanup
}

// rewriteAds mutates the persisted ad collection directly. Lifecycle
// timestamps are stamped once at creation and no store operation can move
// them, so tests reach under the store to simulate the passage of time.
func rewriteAds(t *testing.T, ledger store.Ledger, mutate func(ads []models.ClassifiedAd) []models.ClassifiedAd) {
	var ads []models.ClassifiedAd
	require.True(t, ledger.Read(store.KeyUserAds, &ads), "Expected ads on disk")
	require.NoError(t, ledger.Write(store.KeyUserAds, mutate(ads)))
}

// registerTestRoutes wires the same route table main uses.
func registerTestRoutes(router *gin.Engine, stores *Stores, cfg *config.Config) {
	authRequired := utils.AuthMiddleware(cfg)
	adminRequired := utils.AdminMiddleware()

	authGroup := router.Group("/auth")
	{
		authGroup.POST("/signup", func(c *gin.Context) { SignupHandler(c, stores, cfg) })
		authGroup.POST("/login", func(c *gin.Context) { LoginHandler(c, stores, cfg) })
		authGroup.POST("/logout", authRequired, func(c *gin.Context) { LogoutHandler(c, stores, cfg) })
		authGroup.GET("/session", authRequired, func(c *gin.Context) { SessionHandler(c, stores, cfg) })
	}

	adGroup := router.Group("/ads")
	{
		adGroup.GET("", func(c *gin.Context) { ListAdsHandler(c, stores, cfg) })
		adGroup.GET("/mine", authRequired, func(c *gin.Context) { MyAdsHandler(c, stores, cfg) })
		adGroup.GET("/:id", func(c *gin.Context) { GetAdHandler(c, stores, cfg) })
		adGroup.POST("", authRequired, func(c *gin.Context) { CreateAdHandler(c, stores, cfg) })
		adGroup.PUT("/:id", authRequired, func(c *gin.Context) { UpdateAdHandler(c, stores, cfg) })
		adGroup.DELETE("/:id", authRequired, func(c *gin.Context) { DeleteAdHandler(c, stores, cfg) })
	}

	placementGroup := router.Group("/placements")
	{
		placementGroup.GET("", func(c *gin.Context) { ListPlacementsHandler(c, stores, cfg) })
		placementGroup.GET("/watch", func(c *gin.Context) { WatchPlacementsHandler(c, stores, cfg) })
		placementGroup.GET("/:key/code", func(c *gin.Context) { PlacementCodeHandler(c, stores, cfg) })
	}

	datingGroup := router.Group("/dating")
	{
		datingGroup.POST("/register", func(c *gin.Context) { DatingRegisterHandler(c, stores, cfg) })
		datingGroup.POST("/login", func(c *gin.Context) { DatingLoginHandler(c, stores, cfg) })
		datingGroup.POST("/logout", authRequired, func(c *gin.Context) { DatingLogoutHandler(c, stores, cfg) })
		datingGroup.GET("/session", authRequired, func(c *gin.Context) { DatingSessionHandler(c, stores, cfg) })
		datingGroup.GET("/profiles", func(c *gin.Context) { ListDatingProfilesHandler(c, stores, cfg) })
		datingGroup.GET("/profiles/:id", func(c *gin.Context) { GetDatingProfileHandler(c, stores, cfg) })
		datingGroup.PUT("/profile", authRequired, func(c *gin.Context) { UpdateDatingProfileHandler(c, stores, cfg) })

		messageGroup := datingGroup.Group("/messages")
		messageGroup.Use(authRequired)
		{
			messageGroup.POST("", func(c *gin.Context) { SendMessageHandler(c, stores, cfg) })
			messageGroup.GET("/inbox", func(c *gin.Context) { InboxHandler(c, stores, cfg) })
			messageGroup.GET("/sent", func(c *gin.Context) { SentMessagesHandler(c, stores, cfg) })
			messageGroup.GET("/unread", func(c *gin.Context) { UnreadCountHandler(c, stores, cfg) })
			messageGroup.GET("/conversations", func(c *gin.Context) { ConversationSummariesHandler(c, stores, cfg) })
			messageGroup.GET("/conversation/:userId", func(c *gin.Context) { ConversationHandler(c, stores, cfg) })
			messageGroup.POST("/:id/read", func(c *gin.Context) { MarkMessageReadHandler(c, stores, cfg) })
			messageGroup.DELETE("/:id", func(c *gin.Context) { DeleteMessageHandler(c, stores, cfg) })
		}
	}

	storyGroup := router.Group("/stories")
	{
		storyGroup.GET("", func(c *gin.Context) { ListStoriesHandler(c, stores, cfg) })
		storyGroup.GET("/categories", func(c *gin.Context) { StoryCategoriesHandler(c, stores, cfg) })
		storyGroup.GET("/:id", func(c *gin.Context) { GetStoryHandler(c, stores, cfg) })
		storyGroup.POST("", func(c *gin.Context) { CreateStoryHandler(c, stores, cfg) })
		storyGroup.POST("/:id/like", func(c *gin.Context) { LikeStoryHandler(c, stores, cfg) })
	}

	adminGroup := router.Group("/admin")
	adminGroup.Use(authRequired, adminRequired)
	{
		adminGroup.GET("/accounts", func(c *gin.Context) { ListAccountsHandler(c, stores, cfg) })
		adminGroup.DELETE("/accounts/:username", func(c *gin.Context) { DeleteAccountHandler(c, stores, cfg) })
		adminGroup.GET("/ads", func(c *gin.Context) { SearchAdsHandler(c, stores, cfg) })
		adminGroup.DELETE("/ads/:id", func(c *gin.Context) { AdminDeleteAdHandler(c, stores, cfg) })
		adminGroup.GET("/dating/profiles", func(c *gin.Context) { AdminListDatingProfilesHandler(c, stores, cfg) })
		adminGroup.DELETE("/dating/profiles/:id", func(c *gin.Context) { DeleteDatingProfileHandler(c, stores, cfg) })
		adminGroup.PUT("/placements/:key", func(c *gin.Context) { UpdatePlacementHandler(c, stores, cfg) })
		adminGroup.POST("/placements/samples", func(c *gin.Context) { LoadSamplePlacementsHandler(c, stores, cfg) })
		adminGroup.POST("/placements/clear", func(c *gin.Context) { ClearPlacementsHandler(c, stores, cfg) })
		adminGroup.DELETE("/stories/:id", func(c *gin.Context) { AdminDeleteStoryHandler(c, stores, cfg) })
		adminGroup.POST("/stories/reset", func(c *gin.Context) { ResetStoriesHandler(c, stores, cfg) })
	}
}

// performRequest executes an HTTP request against the test router. If a
// token is provided, it is sent as a Bearer Authorization header.
func performRequest(router *gin.Engine, method, path string, body io.Reader, token string) *httptest.ResponseRecorder {
	req, err := http.NewRequest(method, path, body)
	if err != nil {
		panic(fmt.Sprintf("Failed to create request: %v", err))
	}
	if body != nil && method != http.MethodGet {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func marshalJSONBody(t *testing.T, data interface{}) *bytes.Buffer {
	bodyBytes, err := json.Marshal(data)
	require.NoError(t, err, "Failed to marshal JSON body for request")
	return bytes.NewBuffer(bodyBytes)
}

// signupAndLogin registers a classifieds account and returns its token.
func signupAndLogin(t *testing.T, router *gin.Engine, username, phone, password string) string {
	payload := gin.H{"username": username, "phone": phone, "password": password}
	rr := performRequest(router, "POST", "/auth/signup", marshalJSONBody(t, payload), "")
	require.Equal(t, http.StatusCreated, rr.Code, "Signup should return 201 Created: %s", rr.Body.String())

	var resp AuthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	require.Equal(t, username, resp.Session.Username)
	return resp.Token
}

// loginAdmin logs in with the reserved admin pair and returns the token.
func loginAdmin(t *testing.T, router *gin.Engine) string {
	payload := gin.H{"username": "admin@adserver70385", "password": "Wikum70385#"}
	rr := performRequest(router, "POST", "/auth/login", marshalJSONBody(t, payload), "")
	require.Equal(t, http.StatusOK, rr.Code, "Admin login failed: %s", rr.Body.String())

	var resp AuthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.True(t, resp.Session.IsAdmin)
	return resp.Token
}

// registerDatingProfile creates a dating profile and returns it with its token.
func registerDatingProfile(t *testing.T, router *gin.Engine, username, name string, age int) (models.DatingProfile, string) {
	payload := gin.H{
		"username": username,
		"password": "secret123",
		"name":     name,
		"age":      age,
		"gender":   "Male",
		"seeking":  "Female",
		"district": "Colombo",
	}
	rr := performRequest(router, "POST", "/dating/register", marshalJSONBody(t, payload), "")
	require.Equal(t, http.StatusCreated, rr.Code, "Dating register failed: %s", rr.Body.String())

	var resp DatingAuthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	require.NotEmpty(t, resp.Profile.ID)
	return resp.Profile, resp.Token
}

// validAdPayload returns an ad body that passes every form rule.
func validAdPayload(title string) gin.H {
	return gin.H{
		"category":    "Massage",
		"title":       title,
		"description": "A long enough description to clear the twenty character floor.",
		"district":    "Colombo",
		"city":        "Dehiwala",
		"contact":     "0771234567",
		"price":       "4500",
		"whatsapp":    true,
	}
}

// --- Authentication ---

func TestAuthEndpoints(t *testing.T) {
	router, stores, _, cleanup := setupTestServer(t)
	defer cleanup()

	t.Run("Signup Success", func(t *testing.T) {
		token := signupAndLogin(t, router, "kasun", "0771111111", "secret123")
		assert.NotEmpty(t, token)

		_, found := stores.Identity.AccountByUsername("kasun")
		assert.True(t, found, "Account should exist after signup")
	})

	t.Run("Signup Short Password", func(t *testing.T) {
		payload := gin.H{"username": "shorty", "phone": "0772222222", "password": "abc"}
		rr := performRequest(router, "POST", "/auth/signup", marshalJSONBody(t, payload), "")
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "at least 6 characters")
	})

	t.Run("Signup Duplicate Username", func(t *testing.T) {
		payload := gin.H{"username": "KASUN", "phone": "0773333333", "password": "secret123"}
		rr := performRequest(router, "POST", "/auth/signup", marshalJSONBody(t, payload), "")
		assert.Equal(t, http.StatusConflict, rr.Code, "Usernames are unique case-insensitively")
	})

	t.Run("Signup Duplicate Phone", func(t *testing.T) {
		payload := gin.H{"username": "someoneelse", "phone": "0771111111", "password": "secret123"}
		rr := performRequest(router, "POST", "/auth/signup", marshalJSONBody(t, payload), "")
		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("Login Wrong Password", func(t *testing.T) {
		payload := gin.H{"username": "kasun", "password": "wrongpass"}
		rr := performRequest(router, "POST", "/auth/login", marshalJSONBody(t, payload), "")
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Login Case Insensitive Username", func(t *testing.T) {
		payload := gin.H{"username": "Kasun", "password": "secret123"}
		rr := performRequest(router, "POST", "/auth/login", marshalJSONBody(t, payload), "")
		assert.Equal(t, http.StatusOK, rr.Code)

		var resp AuthResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "kasun", resp.Session.Username, "Session carries the stored casing")
	})

	t.Run("Admin Login Yields Admin Token", func(t *testing.T) {
		token := loginAdmin(t, router)
		rr := performRequest(router, "GET", "/admin/accounts", nil, token)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Non Admin Blocked From Admin Routes", func(t *testing.T) {
		payload := gin.H{"username": "kasun", "password": "secret123"}
		rr := performRequest(router, "POST", "/auth/login", marshalJSONBody(t, payload), "")
		require.Equal(t, http.StatusOK, rr.Code)
		var resp AuthResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

		adminRR := performRequest(router, "GET", "/admin/accounts", nil, resp.Token)
		assert.Equal(t, http.StatusForbidden, adminRR.Code)
	})

	t.Run("Session Reflects Login And Logout", func(t *testing.T) {
		payload := gin.H{"username": "kasun", "password": "secret123"}
		loginRR := performRequest(router, "POST", "/auth/login", marshalJSONBody(t, payload), "")
		require.Equal(t, http.StatusOK, loginRR.Code)
		var resp AuthResponse
		require.NoError(t, json.Unmarshal(loginRR.Body.Bytes(), &resp))

		sessionRR := performRequest(router, "GET", "/auth/session", nil, resp.Token)
		assert.Equal(t, http.StatusOK, sessionRR.Code)

		logoutRR := performRequest(router, "POST", "/auth/logout", nil, resp.Token)
		assert.Equal(t, http.StatusOK, logoutRR.Code)

		afterRR := performRequest(router, "GET", "/auth/session", nil, resp.Token)
		assert.Equal(t, http.StatusUnauthorized, afterRR.Code, "Session record is cleared on logout")
	})

	t.Run("Missing Token Rejected", func(t *testing.T) {
		rr := performRequest(router, "GET", "/ads/mine", nil, "")
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

// --- Classified Ads ---

func TestAdEndpoints(t *testing.T) {
	router, stores, ledger, cleanup := setupTestServer(t)
	defer cleanup()

	token := signupAndLogin(t, router, "poster", "0775555555", "secret123")

	t.Run("Create Ad Success", func(t *testing.T) {
		rr := performRequest(router, "POST", "/ads", marshalJSONBody(t, validAdPayload("Relaxing full body massage")), token)
		require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

		var ad models.ClassifiedAd
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &ad))
		assert.Equal(t, "poster", ad.Username)
		assert.NotEmpty(t, ad.ID)
		assert.True(t, ad.ExpiresAt.After(time.Now().Add(59*24*time.Hour)), "Lifetime is stamped at creation")
		assert.True(t, ad.EditLockedUntil.After(time.Now().Add(13*24*time.Hour)), "Edit lock is stamped at creation")
	})

	t.Run("Create Ad Rejects Bad Contact", func(t *testing.T) {
		payload := validAdPayload("Another massage advert")
		payload["contact"] = "12345"
		rr := performRequest(router, "POST", "/ads", marshalJSONBody(t, payload), token)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "phone number")
	})

	t.Run("Create Ad Rejects Short Description", func(t *testing.T) {
		payload := validAdPayload("Yet another advert title")
		payload["description"] = "too short"
		rr := performRequest(router, "POST", "/ads", marshalJSONBody(t, payload), token)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Quota Enforced At Four Active Ads", func(t *testing.T) {
		for i := 2; i <= 4; i++ {
			title := fmt.Sprintf("Massage advert number %d", i)
			rr := performRequest(router, "POST", "/ads", marshalJSONBody(t, validAdPayload(title)), token)
			require.Equal(t, http.StatusCreated, rr.Code, "Ad %d should be accepted", i)
		}

		rr := performRequest(router, "POST", "/ads", marshalJSONBody(t, validAdPayload("One advert too many")), token)
		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.Contains(t, rr.Body.String(), "at most 4 active ads")
	})

	t.Run("Expired Ads Free Up Quota", func(t *testing.T) {
		ads := stores.Ads.GetByUser("poster")
		require.NotEmpty(t, ads)
		expiredID := ads[0].ID
		rewriteAds(t, ledger, func(ads []models.ClassifiedAd) []models.ClassifiedAd {
			for i := range ads {
				if ads[i].ID == expiredID {
					past := time.Now().Add(-time.Hour)
					ads[i].ExpiresAt = &past
				}
			}
			return ads
		})

		rr := performRequest(router, "POST", "/ads", marshalJSONBody(t, validAdPayload("Back under the quota now")), token)
		assert.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	})

	t.Run("List Hides Expired Ads", func(t *testing.T) {
		rr := performRequest(router, "GET", "/ads", nil, "")
		require.Equal(t, http.StatusOK, rr.Code)

		var listed []models.ClassifiedAd
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &listed))
		for _, ad := range listed {
			assert.True(t, ad.ExpiresAt.After(time.Now()), "Expired ad %s should not be listed", ad.ID)
		}
	})

	t.Run("My Ads Includes Expired", func(t *testing.T) {
		rr := performRequest(router, "GET", "/ads/mine", nil, token)
		require.Equal(t, http.StatusOK, rr.Code)

		var mine []models.ClassifiedAd
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &mine))
		assert.Equal(t, 5, len(mine), "Owner sees expired ads too")
	})

	t.Run("Edit Refused While Locked", func(t *testing.T) {
		ads := stores.Ads.GetByUser("poster")
		var target models.ClassifiedAd
		for _, ad := range ads {
			if ad.ExpiresAt.After(time.Now()) {
				target = ad
				break
			}
		}
		require.NotEmpty(t, target.ID)

		payload := gin.H{"title": "Edited while still locked"}
		rr := performRequest(router, "PUT", "/ads/"+target.ID, marshalJSONBody(t, payload), token)
		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.Contains(t, rr.Body.String(), "locked until")
	})

	t.Run("Edit Allowed After Lock Expires", func(t *testing.T) {
		ads := stores.Ads.GetByUser("poster")
		target := ads[0]
		rewriteAds(t, ledger, func(ads []models.ClassifiedAd) []models.ClassifiedAd {
			for i := range ads {
				if ads[i].ID == target.ID {
					unlocked := time.Now().Add(-time.Hour)
					ads[i].EditLockedUntil = &unlocked
				}
			}
			return ads
		})

		payload := gin.H{"title": "Edited after the lock", "price": ""}
		rr := performRequest(router, "PUT", "/ads/"+target.ID, marshalJSONBody(t, payload), token)
		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

		var updated models.ClassifiedAd
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &updated))
		assert.Equal(t, "Edited after the lock", updated.Title)
		assert.Equal(t, target.Description, updated.Description, "Omitted fields are left unchanged")
		assert.Equal(t, target.Price, updated.Price, "An empty string keeps the old value rather than clearing it")
	})

	t.Run("Cannot Edit Someone Elses Ad", func(t *testing.T) {
		otherToken := signupAndLogin(t, router, "intruder", "0776666666", "secret123")
		ads := stores.Ads.GetByUser("poster")
		payload := gin.H{"title": "Hijacked advert title"}
		rr := performRequest(router, "PUT", "/ads/"+ads[0].ID, marshalJSONBody(t, payload), otherToken)
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("Admin Bypasses Lock And Ownership", func(t *testing.T) {
		adminToken := loginAdmin(t, router)
		ads := stores.Ads.GetByUser("poster")
		var locked models.ClassifiedAd
		for _, ad := range ads {
			if stores.Ads.IsLocked(ad) {
				locked = ad
				break
			}
		}
		require.NotEmpty(t, locked.ID, "Expected at least one still-locked ad")

		rr := performRequest(router, "DELETE", "/ads/"+locked.ID, nil, adminToken)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Get Missing Ad", func(t *testing.T) {
		rr := performRequest(router, "GET", "/ads/ua_nonexistent", nil, "")
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

// --- Ad Placements ---

func TestPlacementEndpoints(t *testing.T) {
	router, _, _, cleanup := setupTestServer(t)
	defer cleanup()

	adminToken := loginAdmin(t, router)

	t.Run("List Returns Full Catalog", func(t *testing.T) {
		rr := performRequest(router, "GET", "/placements", nil, "")
		require.Equal(t, http.StatusOK, rr.Code)

		var slots []models.AdSpaceSlot
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &slots))
		assert.Equal(t, len(store.DefaultSlots()), len(slots))
	})

	t.Run("Admin Updates Slot Code", func(t *testing.T) {
		payload := gin.H{"codes": []string{"<script>banner</script>"}, "enabled": true}
		rr := performRequest(router, "PUT", "/admin/placements/top-leaderboard", marshalJSONBody(t, payload), adminToken)
		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

		codeRR := performRequest(router, "GET", "/placements/top-leaderboard/code", nil, "")
		require.Equal(t, http.StatusOK, codeRR.Code)
		assert.Contains(t, codeRR.Body.String(), "banner")
	})

	t.Run("Rotating Slot Cycles Codes", func(t *testing.T) {
		payload := gin.H{"codes": []string{"code-a", "code-b", "", ""}, "enabled": true}
		rr := performRequest(router, "PUT", "/admin/placements/home-in-content", marshalJSONBody(t, payload), adminToken)
		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

		first := performRequest(router, "GET", "/placements/home-in-content/code?index=0", nil, "")
		second := performRequest(router, "GET", "/placements/home-in-content/code?index=1", nil, "")
		third := performRequest(router, "GET", "/placements/home-in-content/code?index=2", nil, "")
		assert.Contains(t, first.Body.String(), "code-a")
		assert.Contains(t, second.Body.String(), "code-b")
		assert.Contains(t, third.Body.String(), "code-a", "Rotation skips blank codes and wraps")
	})

	t.Run("Unknown Slot Key", func(t *testing.T) {
		rr := performRequest(router, "GET", "/placements/no-such-slot/code", nil, "")
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Update Requires Admin", func(t *testing.T) {
		userToken := signupAndLogin(t, router, "placer", "0777777777", "secret123")
		payload := gin.H{"codes": []string{"x"}, "enabled": true}
		rr := performRequest(router, "PUT", "/admin/placements/top-leaderboard", marshalJSONBody(t, payload), userToken)
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("Samples Then Clear", func(t *testing.T) {
		rr := performRequest(router, "POST", "/admin/placements/samples", nil, adminToken)
		require.Equal(t, http.StatusOK, rr.Code)

		codeRR := performRequest(router, "GET", "/placements/bottom-mobile/code", nil, "")
		assert.Contains(t, codeRR.Body.String(), "dashed", "Sample markup fills every slot")

		clearRR := performRequest(router, "POST", "/admin/placements/clear", nil, adminToken)
		require.Equal(t, http.StatusOK, clearRR.Code)
	})
}

// --- Dating ---

func TestDatingEndpoints(t *testing.T) {
	router, stores, _, cleanup := setupTestServer(t)
	defer cleanup()

	t.Run("Register And Session", func(t *testing.T) {
		profile, token := registerDatingProfile(t, router, "newcomer_cmb", "Newcomer", 28)
		assert.Empty(t, profile.Password, "Responses never carry the password")
		assert.Equal(t, "Sri Lanka", profile.Country, "Country defaults when omitted")

		rr := performRequest(router, "GET", "/dating/session", nil, token)
		require.Equal(t, http.StatusOK, rr.Code)

		var session models.DatingProfile
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &session))
		assert.Equal(t, profile.ID, session.ID)
	})

	t.Run("Register Uniqueness Checked Before Required Fields", func(t *testing.T) {
		// Duplicate username with an otherwise empty form: the duplicate
		// error wins.
		payload := gin.H{"username": "NEWCOMER_CMB"}
		rr := performRequest(router, "POST", "/dating/register", marshalJSONBody(t, payload), "")
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "already taken")
	})

	t.Run("Register Rejects Underage", func(t *testing.T) {
		payload := gin.H{
			"username": "too_young",
			"password": "secret123",
			"name":     "Kid",
			"age":      17,
			"gender":   "Male",
			"seeking":  "Female",
		}
		rr := performRequest(router, "POST", "/dating/register", marshalJSONBody(t, payload), "")
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Browse Includes Seeded Profiles", func(t *testing.T) {
		rr := performRequest(router, "GET", "/dating/profiles", nil, "")
		require.Equal(t, http.StatusOK, rr.Code)

		var profiles []models.DatingProfile
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &profiles))
		assert.GreaterOrEqual(t, len(profiles), 24, "Fixture profiles are seeded on first use")
		for _, p := range profiles {
			assert.Empty(t, p.Password)
		}
	})

	t.Run("Update Own Profile Refreshes Session", func(t *testing.T) {
		profile, token := registerDatingProfile(t, router, "updater_cmb", "Updater", 30)

		payload := gin.H{"aboutMe": "New about text", "district": "Kandy"}
		rr := performRequest(router, "PUT", "/dating/profile", marshalJSONBody(t, payload), token)
		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

		var updated models.DatingProfile
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &updated))
		assert.Equal(t, "New about text", updated.AboutMe)
		assert.Equal(t, "Kandy", updated.District)
		assert.Equal(t, profile.Name, updated.Name, "Omitted fields survive")

		session, ok := stores.Dating.Session()
		require.True(t, ok)
		assert.Equal(t, "Kandy", session.District, "Stored session follows the edit")
	})

	t.Run("Login Bad Credentials", func(t *testing.T) {
		payload := gin.H{"username": "newcomer_cmb", "password": "nope"}
		rr := performRequest(router, "POST", "/dating/login", marshalJSONBody(t, payload), "")
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

// --- Dating Messages ---

func TestMessageEndpoints(t *testing.T) {
	router, _, _, cleanup := setupTestServer(t)
	defer cleanup()

	alice, aliceToken := registerDatingProfile(t, router, "alice_cmb", "Alice", 26)
	bob, bobToken := registerDatingProfile(t, router, "bob_kdy", "Bob", 31)

	t.Run("Send And Receive", func(t *testing.T) {
		payload := gin.H{"toUserId": bob.ID, "subject": "Hello", "body": "Hi Bob, how are you?"}
		rr := performRequest(router, "POST", "/dating/messages", marshalJSONBody(t, payload), aliceToken)
		require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

		var sent models.DatingMessage
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &sent))
		assert.Equal(t, alice.ID, sent.FromUserID)
		assert.Equal(t, alice.Username, sent.FromUsername, "Sender identity is denormalized")
		assert.False(t, sent.Read)

		inboxRR := performRequest(router, "GET", "/dating/messages/inbox", nil, bobToken)
		require.Equal(t, http.StatusOK, inboxRR.Code)
		var inbox []models.DatingMessage
		require.NoError(t, json.Unmarshal(inboxRR.Body.Bytes(), &inbox))
		require.Len(t, inbox, 1)
		assert.Equal(t, "Hi Bob, how are you?", inbox[0].Body)
	})

	t.Run("Unread Count And Conversation Read", func(t *testing.T) {
		payload := gin.H{"toUserId": bob.ID, "body": "Second message"}
		rr := performRequest(router, "POST", "/dating/messages", marshalJSONBody(t, payload), aliceToken)
		require.Equal(t, http.StatusCreated, rr.Code)

		unreadRR := performRequest(router, "GET", "/dating/messages/unread", nil, bobToken)
		require.Equal(t, http.StatusOK, unreadRR.Code)
		assert.Contains(t, unreadRR.Body.String(), "2")

		// Opening the conversation marks the incoming side read.
		convRR := performRequest(router, "GET", "/dating/messages/conversation/"+alice.ID, nil, bobToken)
		require.Equal(t, http.StatusOK, convRR.Code)
		var conv []models.DatingMessage
		require.NoError(t, json.Unmarshal(convRR.Body.Bytes(), &conv))
		assert.Len(t, conv, 2)

		afterRR := performRequest(router, "GET", "/dating/messages/unread", nil, bobToken)
		assert.Contains(t, afterRR.Body.String(), "0")

		// The sender's unread count is untouched.
		aliceUnread := performRequest(router, "GET", "/dating/messages/unread", nil, aliceToken)
		assert.Contains(t, aliceUnread.Body.String(), "0")
	})

	t.Run("Conversation Summaries", func(t *testing.T) {
		rr := performRequest(router, "GET", "/dating/messages/conversations", nil, aliceToken)
		require.Equal(t, http.StatusOK, rr.Code)

		var summaries []models.ConversationSummary
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &summaries))
		require.Len(t, summaries, 1)
		assert.Equal(t, bob.ID, summaries[0].PartnerID)
		assert.Equal(t, 2, summaries[0].TotalMessages)
		assert.Equal(t, "Second message", summaries[0].LastMessage.Body)
	})

	t.Run("Send To Unknown Profile", func(t *testing.T) {
		payload := gin.H{"toUserId": "u_missing", "body": "Anyone there?"}
		rr := performRequest(router, "POST", "/dating/messages", marshalJSONBody(t, payload), aliceToken)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Delete Requires Participation", func(t *testing.T) {
		sentRR := performRequest(router, "GET", "/dating/messages/sent", nil, aliceToken)
		require.Equal(t, http.StatusOK, sentRR.Code)
		var sent []models.DatingMessage
		require.NoError(t, json.Unmarshal(sentRR.Body.Bytes(), &sent))
		require.NotEmpty(t, sent)

		_, strangerToken := registerDatingProfile(t, router, "stranger_gll", "Stranger", 40)
		rr := performRequest(router, "DELETE", "/dating/messages/"+sent[0].ID, nil, strangerToken)
		assert.Equal(t, http.StatusForbidden, rr.Code, "Non-participants cannot touch the message")

		ownRR := performRequest(router, "DELETE", "/dating/messages/"+sent[0].ID, nil, aliceToken)
		assert.Equal(t, http.StatusOK, ownRR.Code)
	})

	t.Run("Delete Unknown Message", func(t *testing.T) {
		rr := performRequest(router, "DELETE", "/dating/messages/msg_missing", nil, aliceToken)
		assert.Equal(t, http.StatusNotFound, rr.Code, "Unknown ids are not found, not forbidden")
	})
}

// --- Stories ---

func TestStoryEndpoints(t *testing.T) {
	router, _, _, cleanup := setupTestServer(t)
	defer cleanup()

	t.Run("Seeded Stories Listed", func(t *testing.T) {
		rr := performRequest(router, "GET", "/stories", nil, "")
		require.Equal(t, http.StatusOK, rr.Code)

		var stories []models.Story
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &stories))
		assert.Len(t, stories, 6)
	})

	t.Run("Category Catalog", func(t *testing.T) {
		rr := performRequest(router, "GET", "/stories/categories", nil, "")
		require.Equal(t, http.StatusOK, rr.Code)

		var cats []models.StoryCategory
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &cats))
		assert.Len(t, cats, 10)
	})

	t.Run("Read Counts A View", func(t *testing.T) {
		first := performRequest(router, "GET", "/stories/1", nil, "")
		require.Equal(t, http.StatusOK, first.Code)
		var story1 models.Story
		require.NoError(t, json.Unmarshal(first.Body.Bytes(), &story1))

		second := performRequest(router, "GET", "/stories/1", nil, "")
		var story2 models.Story
		require.NoError(t, json.Unmarshal(second.Body.Bytes(), &story2))
		assert.Equal(t, story1.Views+1, story2.Views)
	})

	t.Run("Submit Story Prepends With Next ID", func(t *testing.T) {
		payload := gin.H{
			"title":    "A brand new story",
			"content":  "Something long enough to read.",
			"category": "other",
		}
		rr := performRequest(router, "POST", "/stories", marshalJSONBody(t, payload), "")
		require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

		var created models.Story
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
		assert.Equal(t, 7, created.ID, "IDs are max existing plus one")
		assert.Equal(t, "Anonymous", created.Author)
		assert.Equal(t, 0, created.Views)
		assert.Equal(t, "Just now", created.Time)

		listRR := performRequest(router, "GET", "/stories", nil, "")
		var stories []models.Story
		require.NoError(t, json.Unmarshal(listRR.Body.Bytes(), &stories))
		require.NotEmpty(t, stories)
		assert.Equal(t, 7, stories[0].ID, "New story leads the feed")
	})

	t.Run("Submit Rejects Unknown Category", func(t *testing.T) {
		payload := gin.H{"title": "Bad category", "content": "Body text.", "category": "nope"}
		rr := performRequest(router, "POST", "/stories", marshalJSONBody(t, payload), "")
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Like Increments", func(t *testing.T) {
		rr := performRequest(router, "POST", "/stories/7/like", nil, "")
		require.Equal(t, http.StatusOK, rr.Code)
		var story models.Story
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &story))
		assert.Equal(t, 1, story.Likes)
	})

	t.Run("Filter By Category", func(t *testing.T) {
		rr := performRequest(router, "GET", "/stories?category=other", nil, "")
		require.Equal(t, http.StatusOK, rr.Code)
		var stories []models.Story
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &stories))
		for _, s := range stories {
			assert.Equal(t, "other", s.Category)
		}
	})

	t.Run("Admin Reset Restores Fixtures", func(t *testing.T) {
		adminToken := loginAdmin(t, router)
		rr := performRequest(router, "POST", "/admin/stories/reset", nil, adminToken)
		require.Equal(t, http.StatusOK, rr.Code)

		var stories []models.Story
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &stories))
		assert.Len(t, stories, 6)
	})
}

// --- Admin ---

func TestAdminEndpoints(t *testing.T) {
	router, stores, _, cleanup := setupTestServer(t)
	defer cleanup()

	adminToken := loginAdmin(t, router)
	userToken := signupAndLogin(t, router, "target", "0778888888", "secret123")

	rr := performRequest(router, "POST", "/ads", marshalJSONBody(t, validAdPayload("Advert owned by target")), userToken)
	require.Equal(t, http.StatusCreated, rr.Code)

	t.Run("Search By Username", func(t *testing.T) {
		rr := performRequest(router, "GET", "/admin/ads?username=TARGET", nil, adminToken)
		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

		var resp SearchAdsResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, 1, resp.Total)
		require.Len(t, resp.Ads, 1)
		assert.Equal(t, "target", resp.Ads[0].Username)
	})

	t.Run("Search With Content Query", func(t *testing.T) {
		path := "/admin/ads?content_query=" +
			"district%20equals%20%22Colombo%22&content_query=and&content_query=whatsapp%20equals%20true"
		rr := performRequest(router, "GET", path, nil, adminToken)
		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

		var resp SearchAdsResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, 1, resp.Total)
	})

	t.Run("Search Rejects Bad Query", func(t *testing.T) {
		rr := performRequest(router, "GET", "/admin/ads?content_query=notaquery", nil, adminToken)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Delete Account Cascades To Ads", func(t *testing.T) {
		rr := performRequest(router, "DELETE", "/admin/accounts/target", nil, adminToken)
		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

		_, found := stores.Identity.AccountByUsername("target")
		assert.False(t, found)
		assert.Empty(t, stores.Ads.GetByUser("target"), "Orphaned ads are removed with the account")
	})

	t.Run("Delete Dating Profile Cascades To Messages", func(t *testing.T) {
		doomed, doomedToken := registerDatingProfile(t, router, "doomed_cmb", "Doomed", 35)
		other, _ := registerDatingProfile(t, router, "other_kdy", "Other", 29)

		payload := gin.H{"toUserId": other.ID, "body": "Soon to vanish"}
		sendRR := performRequest(router, "POST", "/dating/messages", marshalJSONBody(t, payload), doomedToken)
		require.Equal(t, http.StatusCreated, sendRR.Code)

		rr := performRequest(router, "DELETE", "/admin/dating/profiles/"+doomed.ID, nil, adminToken)
		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

		_, found := stores.Dating.ProfileByID(doomed.ID)
		assert.False(t, found)
		assert.Empty(t, stores.Messages.Inbox(other.ID), "Messages from the deleted profile are gone")
	})

	t.Run("Account Listing Never Exposes Passwords", func(t *testing.T) {
		signupAndLogin(t, router, "survivor", "0779999999", "secret123")
		rr := performRequest(router, "GET", "/admin/accounts", nil, adminToken)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.NotContains(t, rr.Body.String(), "secret123")
	})
}
