// main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/johanstjernquist/portfolio-backend/internal/api/handlers"
	"github.com/johanstjernquist/portfolio-backend/internal/api/middleware"
	"github.com/johanstjernquist/portfolio-backend/internal/config"
	"github.com/johanstjernquist/portfolio-backend/internal/db"
	"github.com/johanstjernquist/portfolio-backend/internal/email"
	"github.com/johanstjernquist/portfolio-backend/internal/repository"
	"github.com/johanstjernquist/portfolio-backend/internal/seed"
	"github.com/johanstjernquist/portfolio-backend/internal/service"
)

func main() {
	// ============================================
	// Load environment variables
	// ============================================
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// ============================================
	// Load configuration
	// ============================================
	cfg := config.Load()

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// ============================================
	// Run Database Migrations
	// ============================================
	log.Println("🔄 Running database migrations...")
	migrationsPath := "./internal/db/migrations"
	if err := db.RunMigrations(cfg.DatabaseURL, migrationsPath); err != nil {
		log.Fatalf("❌ Migration failed: %v", err)
	}

	// ============================================
	// Initialize PostgreSQL (pgxpool + sqlx)
	// ============================================
	pgDB, err := db.NewPostgresDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to PostgreSQL: %v", err)
	}
	defer pgDB.Close()

	sqlDB, err := db.NewSQLDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to open sqlx handle: %v", err)
	}
	defer sqlDB.Close()

	// ============================================
	// Initialize Repositories
	// ============================================
	repos := repository.NewRepositories(pgDB.Pool, sqlDB)
	log.Println("📦 Repositories initialized")

	// ============================================
	// Initialize Redis (optional)
	// ============================================
	var redisDB *db.RedisDB
	if cfg.RedisURL != "" {
		redisDB, err = db.NewRedisDB(cfg.RedisURL)
		if err != nil {
			log.Printf("⚠️ Failed to connect to Redis: %v (continuing without cache)", err)
		} else {
			defer redisDB.Close()
			log.Println("⚡ Redis cache enabled")
		}
	}

	// ============================================
	// Initialize Email Service (optional)
	// ============================================
	var emailSvc *email.Service
	if cfg.MailConfigured() {
		emailSvc = email.NewService(&email.Config{
			Host:             cfg.SMTPHost,
			Port:             cfg.SMTPPort,
			User:             cfg.SMTPUser,
			Password:         cfg.SMTPPassword,
			From:             cfg.SMTPFrom,
			FromName:         cfg.SMTPFromName,
			UseTLS:           cfg.SMTPUseTLS,
			ContactRecipient: cfg.ContactRecipient,
		})
		log.Println("📧 Email service initialized")
	} else {
		log.Println("⚠️  Email not configured (SMTP_HOST not set)")
	}

	// ============================================
	// Seed Data (for development)
	// ============================================
	if cfg.Environment != "production" {
		log.Println("🌱 Seeding development data...")
		seed.SeedData(cfg, repos)
	}

	// ============================================
	// Initialize Services
	// ============================================
	deps := &service.ServiceDeps{
		Config: cfg,
		Repos:  repos,
		Cache:  redisDB,
	}
	if emailSvc != nil {
		deps.Notifier = emailSvc
	}
	services := service.NewServices(deps)
	log.Println("✨ All services initialized")

	// ============================================
	// Initialize Handlers
	// ============================================
	h := handlers.NewHandlers(services)

	// ============================================
	// Create Gin Router
	// ============================================
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendURL, cfg.ProductionURL, "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Request body cap
	r.Use(middleware.BodySizeLimit(1 << 20))

	// Rate limiting
	r.Use(middleware.RateLimitMiddleware(
		cfg.RateLimitRequests,
		time.Duration(cfg.RateLimitWindow)*time.Minute,
		cfg.RateLimitBurst,
	))

	// Health check
	startTime := time.Now()
	r.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		c.JSON(http.StatusOK, gin.H{
			"status":         "healthy",
			"uptime":         time.Since(startTime).Seconds(),
			"storeConnected": pgDB.HealthCheck(ctx),
			"cache":          getCacheStatus(redisDB),
			"email":          getEmailStatus(emailSvc),
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// ============================================
		// Public routes (no auth required)
		// ============================================
		auth := api.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/register", h.Auth.Register)
			auth.GET("/profile", middleware.AuthMiddleware(services.Auth), h.Auth.Profile)
		}

		contacts := api.Group("/contacts")
		{
			// Public contact form submission
			contacts.POST("", h.Contact.Submit)

			// Admin-only listing and mutation
			adminContacts := contacts.Group("")
			adminContacts.Use(middleware.AuthMiddleware(services.Auth), middleware.RequireAdmin())
			{
				adminContacts.GET("", h.Contact.List)
				adminContacts.PATCH("/:id/read", h.Contact.MarkRead)
				adminContacts.DELETE("/:id", h.Contact.Delete)
			}
		}

		projects := api.Group("/projects")
		{
			// Public reads; the optional auth lets admins request hidden items
			projects.GET("", middleware.OptionalAuthMiddleware(services.Auth), h.Project.List)
			projects.GET("/:id", h.Project.Get)

			// Admin-only mutation
			adminProjects := projects.Group("")
			adminProjects.Use(middleware.AuthMiddleware(services.Auth), middleware.RequireAdmin())
			{
				adminProjects.POST("", h.Project.Create)
				adminProjects.PUT("/:id", h.Project.Update)
				adminProjects.DELETE("/:id", h.Project.Delete)
				adminProjects.PATCH("/reorder", h.Project.Reorder)
			}
		}
	}

	// Create server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server
	go func() {
		log.Printf("🚀 Server starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}

func getCacheStatus(redisDB *db.RedisDB) string {
	if redisDB != nil {
		return "connected"
	}
	return "disabled"
}

func getEmailStatus(emailSvc *email.Service) string {
	if emailSvc != nil {
		return "configured"
	}
	return "disabled"
}
