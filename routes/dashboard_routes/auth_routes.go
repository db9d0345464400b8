package dashboard_routes

import (
	"github.com/gin-gonic/gin"
	"github.com/noord-hq/noord-backend/controllers/auth_controller"
	"github.com/noord-hq/noord-backend/middleware"
)

func SetupAuthRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")

	// Google Analytics consent flow (state carries the user id)
	auth.GET("/google", auth_controller.GoogleConnect)
	auth.GET("/google/callback", auth_controller.GoogleCallback)

	// One Tap sign-in
	auth.POST("/one-tap", auth_controller.OneTapLogin)
	auth.POST("/logout", auth_controller.Logout)

	auth.GET("/me", middleware.AuthMiddleware(), auth_controller.GetMe)
}
