package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/securecyberdata/legal-case-tracker/config"
	"github.com/securecyberdata/legal-case-tracker/db"
	"github.com/securecyberdata/legal-case-tracker/handlers"
	"github.com/securecyberdata/legal-case-tracker/middleware"
	"github.com/securecyberdata/legal-case-tracker/models"
	"github.com/securecyberdata/legal-case-tracker/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	if err := db.Initialize(cfg.DBPath, cfg.Environment); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Run migrations
	if err := db.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.Client{},
		&models.Case{},
		&models.Hearing{},
		&models.Activity{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Create Echo instance
	e := echo.New()

	// Middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowCredentials: true,
	}))

	// Make config available to handlers
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("config", cfg)
			return next(c)
		}
	})

	// Public routes (no authentication required)
	e.POST("/api/auth/login", handlers.LoginHandler)

	// Protected routes
	api := e.Group("/api")
	api.Use(middleware.RequireAuth())
	{
		api.POST("/auth/logout", handlers.LogoutHandler)
		api.GET("/me", handlers.GetCurrentUserHandler)

		// Cases
		api.GET("/cases", handlers.GetCasesHandler)
		api.POST("/cases", handlers.CreateCaseHandler)
		api.GET("/cases/:id", handlers.GetCaseHandler)
		api.PUT("/cases/:id", handlers.UpdateCaseHandler)
		api.DELETE("/cases/:id", handlers.DeleteCaseHandler)
		api.GET("/cases/:id/activity", handlers.GetCaseActivityHandler)

		// Clients
		api.GET("/clients", handlers.GetClientsHandler)
		api.POST("/clients", handlers.CreateClientHandler)
		api.GET("/clients/:id", handlers.GetClientHandler)
		api.PUT("/clients/:id", handlers.UpdateClientHandler)
		api.DELETE("/clients/:id", handlers.DeleteClientHandler)

		// Hearings
		api.GET("/hearings", handlers.GetHearingsHandler)
		api.POST("/hearings", handlers.CreateHearingHandler)
		api.GET("/hearings/:id", handlers.GetHearingHandler)
		api.PUT("/hearings/:id", handlers.UpdateHearingHandler)
		api.DELETE("/hearings/:id", handlers.DeleteHearingHandler)
		api.GET("/hearings/:id/ics", handlers.DownloadHearingICSHandler)

		// Dashboard and activity feed
		api.GET("/dashboard/stats", handlers.GetDashboardStatsHandler)
		api.GET("/dashboard/recent", handlers.GetDashboardRecentHandler)
		api.GET("/activities", handlers.GetActivitiesHandler)

		// Calendar
		api.GET("/calendar/events", handlers.GetCalendarEventsHandler)
	}

	// Start background session cleanup (runs every hour)
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			if err := services.CleanupExpiredSessions(db.DB); err != nil {
				log.Printf("Error cleaning up expired sessions: %v", err)
			}
		}
	}()

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
