package dashboard_routes

import (
	"github.com/gin-gonic/gin"
	"github.com/noord-hq/noord-backend/controllers/analytics_controller"
	"github.com/noord-hq/noord-backend/controllers/connection_controller"
	"github.com/noord-hq/noord-backend/controllers/facebook_controller"
)

func SetupIntegrationRoutes(rg *gin.RouterGroup) {
	connections := rg.Group("/connections")
	connections.GET("", connection_controller.GetConnection)
	connections.POST("/woocommerce", connection_controller.SaveWooCommerce)
	connections.POST("/facebook", connection_controller.SaveFacebook)
	connections.PUT("/settings", connection_controller.UpdateStoreSettings)

	analytics := rg.Group("/analytics")
	analytics.POST("/data", analytics_controller.GetAnalyticsData)
	analytics.GET("/properties", analytics_controller.GetAnalyticsProperties)

	facebook := rg.Group("/facebook")
	facebook.GET("/ad-accounts", facebook_controller.GetAdAccounts)
	facebook.GET("/insights", facebook_controller.GetAdInsights)
}
