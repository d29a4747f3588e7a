package main

import (
	"fmt"
	"log"
	"net/http"

	"adserver/api"
	"adserver/config"
	_ "adserver/docs" // Import for side effect: registers swagger spec via init()
	"adserver/store"
	"adserver/utils"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"     // swagger embed files
	ginSwagger "github.com/swaggo/gin-swagger" // gin-swagger middleware
)

// @title           AdServer API
// @version         1.0.0

// @description     ## AdServer API
// @description
// @description     Persistence and HTTP API for a multi-section classifieds platform:
// @description     *   **Accounts & Ads:** register, log in, and post classified ads. Ads live for 60 days, are edit-locked for the first 14, and each account may hold at most 4 active ads.
// @description     *   **Ad Placements:** a fixed catalog of on-page ad slots whose markup admins edit; single slots serve one code, rotating slots cycle up to four.
// @description     *   **Dating:** a separate profile system with browsing, profile editing and private messaging.
// @description     *   **Stories:** community-submitted long-form content with views, likes and categories.
// @description
// @description     Everything is stored as flat JSON documents, one file per collection, written synchronously on every change.

// @license.name  MIT

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.jwt BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// --- Configuration ---
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("CRITICAL: Failed to load configuration: %v", err)
	}

	// --- Storage ---
	ledger, err := store.NewFileLedger(cfg.DataDir, cfg.EnableBackup)
	if err != nil {
		log.Fatalf("CRITICAL: Failed to initialize data directory: %v", err)
	}
	stores := api.NewStores(ledger)

	// --- Gin Router Setup ---
	// Consider gin.ReleaseMode for production, gin.DebugMode for development
	// gin.SetMode(gin.ReleaseMode)
	router := gin.Default()
	router.RedirectTrailingSlash = false

	authMiddleware := utils.AuthMiddleware(cfg)
	adminMiddleware := utils.AdminMiddleware()

	// --- Auth Routes ---
	authGroup := router.Group("/auth")
	{
		// POST /auth/signup
		authGroup.POST("/signup", func(c *gin.Context) {
			api.SignupHandler(c, stores, cfg)
		})
		// POST /auth/login
		authGroup.POST("/login", func(c *gin.Context) {
			api.LoginHandler(c, stores, cfg)
		})
		// POST /auth/logout
		authGroup.POST("/logout", authMiddleware, func(c *gin.Context) {
			api.LogoutHandler(c, stores, cfg)
		})
		// GET /auth/session
		authGroup.GET("/session", authMiddleware, func(c *gin.Context) {
			api.SessionHandler(c, stores, cfg)
		})
	}

	// --- Classified Ad Routes ---
	adGroup := router.Group("/ads")
	{
		// GET /ads (public listing, active only)
		adGroup.GET("", func(c *gin.Context) {
			api.ListAdsHandler(c, stores, cfg)
		})
		// GET /ads/mine
		adGroup.GET("/mine", authMiddleware, func(c *gin.Context) {
			api.MyAdsHandler(c, stores, cfg)
		})
		// GET /ads/{id}
		adGroup.GET("/:id", func(c *gin.Context) {
			api.GetAdHandler(c, stores, cfg)
		})
		// POST /ads
		adGroup.POST("", authMiddleware, func(c *gin.Context) {
			api.CreateAdHandler(c, stores, cfg)
		})
		// PUT /ads/{id}
		adGroup.PUT("/:id", authMiddleware, func(c *gin.Context) {
			api.UpdateAdHandler(c, stores, cfg)
		})
		// DELETE /ads/{id}
		adGroup.DELETE("/:id", authMiddleware, func(c *gin.Context) {
			api.DeleteAdHandler(c, stores, cfg)
		})
	}

	// --- Ad Placement Routes ---
	placementGroup := router.Group("/placements")
	{
		// GET /placements
		placementGroup.GET("", func(c *gin.Context) {
			api.ListPlacementsHandler(c, stores, cfg)
		})
		// GET /placements/watch (long poll)
		placementGroup.GET("/watch", func(c *gin.Context) {
			api.WatchPlacementsHandler(c, stores, cfg)
		})
		// GET /placements/{key}/code
		placementGroup.GET("/:key/code", func(c *gin.Context) {
			api.PlacementCodeHandler(c, stores, cfg)
		})
	}

	// --- Dating Routes ---
	datingGroup := router.Group("/dating")
	{
		// POST /dating/register
		datingGroup.POST("/register", func(c *gin.Context) {
			api.DatingRegisterHandler(c, stores, cfg)
		})
		// POST /dating/login
		datingGroup.POST("/login", func(c *gin.Context) {
			api.DatingLoginHandler(c, stores, cfg)
		})
		// POST /dating/logout
		datingGroup.POST("/logout", authMiddleware, func(c *gin.Context) {
			api.DatingLogoutHandler(c, stores, cfg)
		})
		// GET /dating/session
		datingGroup.GET("/session", authMiddleware, func(c *gin.Context) {
			api.DatingSessionHandler(c, stores, cfg)
		})
		// GET /dating/profiles (public browsing)
		datingGroup.GET("/profiles", func(c *gin.Context) {
			api.ListDatingProfilesHandler(c, stores, cfg)
		})
		// GET /dating/profiles/{id}
		datingGroup.GET("/profiles/:id", func(c *gin.Context) {
			api.GetDatingProfileHandler(c, stores, cfg)
		})
		// PUT /dating/profile (own profile)
		datingGroup.PUT("/profile", authMiddleware, func(c *gin.Context) {
			api.UpdateDatingProfileHandler(c, stores, cfg)
		})

		// Message sub-routes, all authenticated
		messageGroup := datingGroup.Group("/messages")
		messageGroup.Use(authMiddleware)
		{
			// POST /dating/messages
			messageGroup.POST("", func(c *gin.Context) {
				api.SendMessageHandler(c, stores, cfg)
			})
			// GET /dating/messages/inbox
			messageGroup.GET("/inbox", func(c *gin.Context) {
				api.InboxHandler(c, stores, cfg)
			})
			// GET /dating/messages/sent
			messageGroup.GET("/sent", func(c *gin.Context) {
				api.SentMessagesHandler(c, stores, cfg)
			})
			// GET /dating/messages/unread
			messageGroup.GET("/unread", func(c *gin.Context) {
				api.UnreadCountHandler(c, stores, cfg)
			})
			// GET /dating/messages/conversations
			messageGroup.GET("/conversations", func(c *gin.Context) {
				api.ConversationSummariesHandler(c, stores, cfg)
			})
			// GET /dating/messages/conversation/{userId}
			messageGroup.GET("/conversation/:userId", func(c *gin.Context) {
				api.ConversationHandler(c, stores, cfg)
			})
			// POST /dating/messages/{id}/read
			messageGroup.POST("/:id/read", func(c *gin.Context) {
				api.MarkMessageReadHandler(c, stores, cfg)
			})
			// DELETE /dating/messages/{id}
			messageGroup.DELETE("/:id", func(c *gin.Context) {
				api.DeleteMessageHandler(c, stores, cfg)
			})
		}
	}

	// --- Story Routes ---
	storyGroup := router.Group("/stories")
	{
		// GET /stories
		storyGroup.GET("", func(c *gin.Context) {
			api.ListStoriesHandler(c, stores, cfg)
		})
		// GET /stories/categories
		storyGroup.GET("/categories", func(c *gin.Context) {
			api.StoryCategoriesHandler(c, stores, cfg)
		})
		// GET /stories/{id}
		storyGroup.GET("/:id", func(c *gin.Context) {
			api.GetStoryHandler(c, stores, cfg)
		})
		// POST /stories (anonymous submissions allowed)
		storyGroup.POST("", func(c *gin.Context) {
			api.CreateStoryHandler(c, stores, cfg)
		})
		// POST /stories/{id}/like
		storyGroup.POST("/:id/like", func(c *gin.Context) {
			api.LikeStoryHandler(c, stores, cfg)
		})
	}

	// --- Admin Routes ---
	adminGroup := router.Group("/admin")
	adminGroup.Use(authMiddleware, adminMiddleware)
	{
		// GET /admin/accounts
		adminGroup.GET("/accounts", func(c *gin.Context) {
			api.ListAccountsHandler(c, stores, cfg)
		})
		// DELETE /admin/accounts/{username}
		adminGroup.DELETE("/accounts/:username", func(c *gin.Context) {
			api.DeleteAccountHandler(c, stores, cfg)
		})
		// GET /admin/ads (search)
		adminGroup.GET("/ads", func(c *gin.Context) {
			api.SearchAdsHandler(c, stores, cfg)
		})
		// DELETE /admin/ads/{id}
		adminGroup.DELETE("/ads/:id", func(c *gin.Context) {
			api.AdminDeleteAdHandler(c, stores, cfg)
		})
		// GET /admin/dating/profiles
		adminGroup.GET("/dating/profiles", func(c *gin.Context) {
			api.AdminListDatingProfilesHandler(c, stores, cfg)
		})
		// DELETE /admin/dating/profiles/{id}
		adminGroup.DELETE("/dating/profiles/:id", func(c *gin.Context) {
			api.DeleteDatingProfileHandler(c, stores, cfg)
		})
		// PUT /admin/placements/{key}
		adminGroup.PUT("/placements/:key", func(c *gin.Context) {
			api.UpdatePlacementHandler(c, stores, cfg)
		})
		// POST /admin/placements/samples
		adminGroup.POST("/placements/samples", func(c *gin.Context) {
			api.LoadSamplePlacementsHandler(c, stores, cfg)
		})
		// POST /admin/placements/clear
		adminGroup.POST("/placements/clear", func(c *gin.Context) {
			api.ClearPlacementsHandler(c, stores, cfg)
		})
		// DELETE /admin/stories/{id}
		adminGroup.DELETE("/stories/:id", func(c *gin.Context) {
			api.AdminDeleteStoryHandler(c, stores, cfg)
		})
		// POST /admin/stories/reset
		adminGroup.POST("/stories/reset", func(c *gin.Context) {
			api.ResetStoriesHandler(c, stores, cfg)
		})
	}

	// --- Swagger Route ---
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// --- Start Server ---
	listenAddr := fmt.Sprintf("%s:%s", cfg.ListenAddress, cfg.ListenPort)
	log.Printf("INFO: Starting server on %s", listenAddr)

	server := &http.Server{
		Addr:    listenAddr,
		Handler: router,
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("CRITICAL: Server failed to start: %v", err)
	}
}
