package main

import (
	"fmt"
	"net/http"
	"os"
	"rmotos/internal/config"
	"rmotos/internal/database"
	"rmotos/internal/handlers"
	"rmotos/internal/logger"
	"rmotos/internal/middleware"
	"rmotos/internal/services"
	"rmotos/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "rmotos/internal/docs" // Import swagger docs
)

// @title           R-Motos API
// @version         1.0
// @description     R-Motos tracks motorcycle flipping projects: budgets, real costs, spare parts, and the lifecycle from spotting a moto to selling it.

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Register custom request validators
	validator.Register()

	// Initialize services
	db := dbManager.DB()
	userService := services.NewUserService(db)
	motoService := services.NewMotoService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService)
	motoHandler := handlers.NewMotoHandler(motoService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")

	// Public routes
	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	// Protected routes
	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleware())

	// User profile
	protected.GET("/profile", authHandler.GetProfile)

	// Moto routes. The fleet summary route must come before the :id
	// routes so gin does not treat "summary" as a moto id.
	motos := protected.Group("/motos")
	motos.GET("", motoHandler.ListMotos)
	motos.POST("", motoHandler.CreateMoto)
	motos.GET("/summary", motoHandler.GetFleetSummary)
	motos.GET("/:id", motoHandler.GetMotoByID)
	motos.PUT("/:id", motoHandler.UpdateMoto)
	motos.DELETE("/:id", motoHandler.DeleteMoto)
	motos.POST("/:id/status/advance", motoHandler.AdvanceStatus)
	motos.POST("/:id/status/retreat", motoHandler.RetreatStatus)
	motos.GET("/:id/summary", motoHandler.GetMotoSummary)
	motos.GET("/:id/pdf", motoHandler.ExportBudgetPDF)

	log.Infof("Starting R-Motos backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
