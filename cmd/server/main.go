package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"

	"github.com/asegedech/volunteer-api/internal/config"
	"github.com/asegedech/volunteer-api/internal/constants"
	"github.com/asegedech/volunteer-api/internal/database"
	"github.com/asegedech/volunteer-api/internal/handlers"
	"github.com/asegedech/volunteer-api/internal/middleware"
	"github.com/asegedech/volunteer-api/internal/repository"
	"github.com/asegedech/volunteer-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed the default admin accounts
	if err := database.SeedAdmins(database.GetDB()); err != nil {
		log.Fatalf("Failed to seed admins: %v", err)
	}

	// Initialize Gin router
	r := gin.Default()

	// Setup session middleware: Redis when configured, signed cookies otherwise
	store, err := newSessionStore(cfg)
	if err != nil {
		log.Fatalf("Failed to create session store: %v", err)
	}
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	// Initialize repositories and services
	db := database.GetDB()
	adminRepo := repository.NewAdminRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	appointmentRepo := repository.NewAppointmentRepository(db)

	authService := services.NewAuthService(adminRepo)
	taskService := services.NewTaskService(taskRepo)
	bookingService := services.NewBookingService(taskRepo, appointmentRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	taskHandler := handlers.NewTaskHandler(taskService)
	appointmentHandler := handlers.NewAppointmentHandler(bookingService)

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		api.POST("/login", authHandler.Login)
		api.POST("/logout", authHandler.Logout)
		api.GET("/me", authHandler.Me)

		// Public task listing and booking
		api.GET("/tasks", taskHandler.ListPublic)
		api.POST("/appointments", appointmentHandler.Create)

		// Health check
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"ok": true,
				"ts": time.Now().UTC().Format(time.RFC3339),
			})
		})

		// Admin task CRUD (protected)
		admin := api.Group("/admin")
		admin.Use(middleware.RequireAuth())
		{
			admin.GET("/tasks", taskHandler.ListAdmin)
			admin.POST("/tasks", taskHandler.Create)
			admin.PUT("/tasks/:id", taskHandler.Update)
			admin.DELETE("/tasks/:id", taskHandler.Delete)
		}
	}

	// Start server
	log.Printf("Server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func newSessionStore(cfg *config.Config) (sessions.Store, error) {
	if cfg.RedisHost == "" {
		return cookie.NewStore([]byte(cfg.SessionSecret)), nil
	}

	redisAddr := cfg.RedisHost + ":" + cfg.RedisPort
	store, err := redisStore.NewStore(
		10,        // Redis pool size
		"tcp",     // network type
		redisAddr, // Redis address from config
		"",        // password (empty = no password)
		[]byte(cfg.SessionSecret), // authentication key
	)
	if err != nil {
		return nil, err
	}

	isProduction := cfg.GinMode == "release"
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: http.SameSiteLaxMode,
	})
	return store, nil
}
