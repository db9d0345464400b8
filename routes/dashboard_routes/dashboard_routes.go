package dashboard_routes

import (
	"github.com/gin-gonic/gin"
	"github.com/noord-hq/noord-backend/controllers/insights_controller"
	"github.com/noord-hq/noord-backend/controllers/report_controller"
	"github.com/noord-hq/noord-backend/controllers/sync_controller"
)

func SetupDashboardRoutes(rg *gin.RouterGroup) {
	rg.POST("/sync", sync_controller.SyncData)
	rg.GET("/dashboard", sync_controller.GetDashboard)

	insights := rg.Group("/insights")
	insights.GET("", insights_controller.GetInsights)
	insights.GET("/abc-analysis", insights_controller.GetABCAnalysis)

	rg.GET("/reports/dashboard.pdf", report_controller.DownloadDashboardReport)
}
