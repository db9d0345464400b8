package dashboard_routes

import (
	"github.com/gin-gonic/gin"
	"github.com/noord-hq/noord-backend/controllers/proxy_controller"
)

func SetupProxyRoutes(rg *gin.RouterGroup) {
	// One handler for every method; it echoes the incoming method to the
	// target.
	rg.GET("/proxy", proxy_controller.Relay)
	rg.POST("/proxy", proxy_controller.Relay)
	rg.PUT("/proxy", proxy_controller.Relay)
	rg.PATCH("/proxy", proxy_controller.Relay)
	rg.OPTIONS("/proxy", proxy_controller.Relay)
}
