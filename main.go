// @title Noord Dashboard API
// @version 1.0
// @description WooCommerce analytics dashboard backend
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/noord-hq/noord-backend/config"
	_ "github.com/noord-hq/noord-backend/docs"
	"github.com/noord-hq/noord-backend/middleware"
	"github.com/noord-hq/noord-backend/routes/dashboard_routes"
	"github.com/noord-hq/noord-backend/services"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	// Connect to DB
	config.InitDB()
	// Redis connection
	config.ConnectRedis()

	// Cloudinary is optional; logo uploads are disabled without it
	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")
	if cloudName != "" && apiKey != "" && apiSecret != "" {
		if err := services.InitCloudinary(cloudName, apiKey, apiSecret); err != nil {
			log.Fatalf("Failed to initialize Cloudinary: %v", err)
		}
		log.Println("✅ Cloudinary initialized")
	} else {
		log.Println("⚠️  Cloudinary not configured, logo uploads disabled")
	}

	// ✅ Initialize JWT Service for dashboard sessions
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("❌ JWT_SECRET environment variable not set")
	}
	if err := services.InitJWTService(jwtSecret); err != nil {
		log.Fatalf("Failed to initialize JWT service: %v", err)
	}
	log.Println("✅ JWT Service initialized")

	// ✅ Initialize Google OAuth (Analytics connect + One Tap)
	config.InitGoogleOAuth()

	// ✅ Configure CORS for the dashboard including PDF downloads
	corsCfg := cors.Config{
		AllowOrigins:     []string{config.GetFrontendURL(), "http://localhost:3001"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
		ExposeHeaders:    []string{"Content-Disposition", "Content-Length"},
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	// Register API routes
	api := router.Group("/api/v1")

	// Public routes: sign-in, OAuth callback and the store proxy
	dashboard_routes.SetupAuthRoutes(api)
	dashboard_routes.SetupProxyRoutes(api)
	log.Println("✅ Auth and proxy routes registered")

	// Authenticated dashboard routes
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware())
	protected.Use(middleware.RateLimiter(100, time.Minute))
	dashboard_routes.SetupDashboardRoutes(protected)
	dashboard_routes.SetupIntegrationRoutes(protected)
	dashboard_routes.SetupChatRoutes(protected)
	log.Println("✅ Dashboard routes registered")

	// Swagger docs
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	fmt.Println("🚀 Server is running on http://localhost:8080")
	router.Run(":8080")
}
