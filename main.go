package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"

	"github.com/GuilhermeTebaldi/templesale2-sub001/config"
	"github.com/GuilhermeTebaldi/templesale2-sub001/db"
	h "github.com/GuilhermeTebaldi/templesale2-sub001/handlers"
	"github.com/GuilhermeTebaldi/templesale2-sub001/imagestore"
	"github.com/GuilhermeTebaldi/templesale2-sub001/mapassets"
	"github.com/GuilhermeTebaldi/templesale2-sub001/sms"
	"github.com/GuilhermeTebaldi/templesale2-sub001/tiles"
)

func main() {
	// .env is optional; real deployments set the environment directly
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	// Initialize database
	if err := db.Init(config.DatabaseURL); err != nil {
		log.Fatalf("error initializing database: %v", err)
	}

	// Initialize image token cache
	if err := imagestore.Init(); err != nil {
		log.Fatalf("Failed to initialize image store cache: %v", err)
	}

	// Initialize tile proxy
	if err := tiles.Init(); err != nil {
		log.Fatalf("Failed to initialize tile fetcher: %v", err)
	}

	// Map library bundle is mirrored lazily on first map view
	mapassets.Init()

	// SMS backend: Twilio when configured, mock otherwise
	if svc, err := sms.NewSMSService(); err != nil {
		log.Printf("Twilio not configured, using mock SMS sender: %v", err)
	} else {
		h.SetSMSSender(svc)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: h.CustomErrorHandler,
		BodyLimit:    config.ServerUploadLimit,
		ReadTimeout:  30 * time.Second, // Prevent long-running requests
		WriteTimeout: 30 * time.Second, // Prevent long-running responses
	})

	// Add rate limiter
	app.Use(limiter.New(limiter.Config{
		Max:        config.ServerRateLimitMax,
		Expiration: config.ServerRateLimitExp,
	}))

	// Add JWT middleware
	app.Use(h.JWTMiddleware)

	// Add logger middleware
	app.Use(logger.New())

	// Static files
	app.Static("/", "./static")

	// Home and search
	app.Get("/", h.HandleHome)
	app.Get("/search", h.HandleSearch)

	// Map view and draw session
	app.Get("/map", h.HandleMapPage)
	app.Get("/map/results", h.HandleMapResults)
	app.Get("/tiles/:z/:x/:y", h.HandleTile)

	// Mirrored map library bundle, served same-origin
	app.Get("/map/leaflet.js", h.HandleMapScript)
	app.Get("/map/leaflet.css", h.HandleMapStylesheet)
	app.Get("/map/images/marker-icon.png", h.HandleMapMarkerIcon)
	app.Get("/map/images/marker-shadow.png", h.HandleMapMarkerShadow)

	// Listing pages
	app.Get("/listing/:id", h.HandleListingDetail)
	app.Get("/new-listing", h.AuthRequired, h.HandleNewListing)
	app.Get("/edit-listing/:id", h.AuthRequired, h.HandleEditListing)
	app.Get("/my-listings", h.AuthRequired, h.HandleMyListings)

	// Likes and cart pages
	app.Get("/likes", h.AuthRequired, h.HandleLikesPage)
	app.Get("/cart", h.AuthRequired, h.HandleCartPage)

	// API group
	api := app.Group("/api")

	// Draw state machine
	api.Post("/map/draw/arm", h.HandleDrawArm)
	api.Post("/map/draw/start", h.HandleDrawStart)
	api.Post("/map/draw/point", h.HandleDrawPoint)
	api.Post("/map/draw/end", h.HandleDrawEnd)
	api.Post("/map/draw/clear", h.HandleDrawClear)

	// Listing management
	api.Post("/new-listing", h.AuthRequired, h.HandleNewListingSubmission)
	api.Post("/update-listing/:id", h.AuthRequired, h.HandleUpdateListingSubmission)
	api.Delete("/listing/:id", h.AuthRequired, h.HandleDeleteListing)
	api.Post("/restore-listing/:id", h.AuthRequired, h.HandleRestoreListing)

	// Likes, cart, comments
	api.Post("/like/:id", h.AuthRequired, h.HandleLikeListing)
	api.Delete("/like/:id", h.AuthRequired, h.HandleUnlikeListing)
	api.Post("/cart/:id", h.AuthRequired, h.HandleAddToCart)
	api.Delete("/cart/:id", h.AuthRequired, h.HandleRemoveFromCart)
	api.Post("/comment/:id", h.AuthRequired, h.HandleAddComment)
	api.Delete("/comment/:id", h.AuthRequired, h.HandleDeleteComment)

	// User registration/authentication
	app.Get("/register", h.HandleRegister)
	api.Post("/register", h.HandleRegisterSubmission)
	api.Post("/register/verify", h.HandleVerifySubmission)
	app.Get("/login", h.HandleLogin)
	api.Post("/login", h.HandleLoginSubmission)
	app.Post("/logout", h.HandleLogout)

	// User settings
	app.Get("/settings", h.AuthRequired, h.HandleSettings)
	app.Get("/user-menu", h.AuthRequired, h.HandleUserMenu)
	api.Post("/change-password", h.AuthRequired, h.HandleChangePassword)
	api.Post("/delete-account", h.AuthRequired, h.HandleDeleteAccount)

	// Language switch
	app.Get("/lang/:lang", h.HandleSetLang)

	// Admin dashboard and management
	admin := app.Group("/admin", h.AdminRequired)
	admin.Get("/", h.HandleAdminDashboard)
	admin.Get("/users", h.HandleAdminUsers)
	admin.Get("/listings", h.HandleAdminListings)

	adminAPI := api.Group("/admin", h.AdminRequired)
	adminAPI.Post("/tiles/reset", h.HandleResetTileProvider)
	adminAPI.Post("/tiles/clear", h.HandleClearTileCache)
	adminAPI.Post("/b2-cache/clear", h.HandleClearB2Cache)

	// Health check
	app.Get("/health", h.HandleHealth)

	fmt.Printf("Starting server on port %s...\n", config.ServerPort)
	log.Fatal(app.Listen(":" + config.ServerPort))
}
