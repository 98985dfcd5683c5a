package routes

import (
	"log"

	"team-portal-backend/internal/api/handlers"
	"team-portal-backend/internal/api/middleware"
	"team-portal-backend/internal/auth"
	"team-portal-backend/internal/config"
	"team-portal-backend/internal/repository"
	"team-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	userProfileRepo := repository.NewUserProfileRepository(db)
	teamProfileRepo := repository.NewTeamProfileRepository(db)

	// Initialize services
	teamProfileService := service.NewTeamProfileService(teamProfileRepo, validator)
	userProfileService := service.NewUserProfileService(userProfileRepo)

	// Initialize auth configuration and middleware
	authConfig, err := auth.LoadAuthConfig("config/auth.yaml")
	if err != nil {
		log.Printf("Warning: Failed to load auth config: %v", err)
		authConfig = nil
	}

	var authMiddleware *auth.AuthMiddleware
	if authConfig != nil {
		authService, err := auth.NewAuthService(authConfig)
		if err != nil {
			log.Printf("Warning: Failed to initialize auth service: %v", err)
		} else {
			authMiddleware = auth.NewAuthMiddleware(authService)
		}
	}

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	teamProfileHandler := handlers.NewTeamProfileHandler(teamProfileService)
	userProfileHandler := handlers.NewUserProfileHandler(userProfileService)
	accountHandler := handlers.NewAccountHandler(userRepo)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes. Reads are public; mutations resolve the caller from the
	// bearer token when present and enforce roles in the service layer.
	api := router.Group("/api")

	if authMiddleware != nil {
		api.Use(authMiddleware.OptionalAuth())
	}

	{
		// Team profile routes
		teamProfiles := api.Group("/team-profiles")
		{
			teamProfiles.GET("", teamProfileHandler.GetAllTeamProfiles)
			teamProfiles.POST("", teamProfileHandler.CreateTeamProfile)
			teamProfiles.GET("/:id", teamProfileHandler.GetTeamProfile)
			teamProfiles.PUT("/:id", teamProfileHandler.UpdateTeamProfile)
			teamProfiles.PATCH("/:id", teamProfileHandler.PartialUpdateTeamProfile)
			teamProfiles.DELETE("/:id", teamProfileHandler.DeleteTeamProfile)
		}

		// User profile routes
		userProfiles := api.Group("/user-profiles")
		{
			userProfiles.GET("", userProfileHandler.GetAllUserProfiles)
			userProfiles.GET("/:id", userProfileHandler.GetUserProfile)
		}

		// Account routes require a valid token
		account := api.Group("/account")
		if authMiddleware != nil {
			account.Use(authMiddleware.RequireAuth())
		}
		{
			account.GET("", accountHandler.GetAccount)
		}
	}

	return router
}
