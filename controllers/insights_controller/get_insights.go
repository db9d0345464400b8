// ════════════════════════════════════════════════════════════
// Path: controllers/insights_controller/get_insights.go
// Alerts, opportunities and performance highlights
// ════════════════════════════════════════════════════════════

package insights_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	insight_cache "github.com/noord-hq/noord-backend/cache"
	"github.com/noord-hq/noord-backend/datasync"
	"github.com/noord-hq/noord-backend/insights"
	"github.com/noord-hq/noord-backend/middleware"
	"github.com/noord-hq/noord-backend/models"
)

// GetInsights godoc
// @Summary Dashboard insights
// @Description Computes alerts, opportunities and performance highlights from the synced data. Results are cached per user and sync range for a couple of minutes; a sync invalidates the cache.
// @Tags Insights
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=[]models.Insight}
// @Router /insights [get]
func GetInsights(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	data, rng, _ := datasync.Default().Dashboard(userID)

	if cached, ok := insight_cache.Get(userID, rng); ok {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Insights retrieved successfully", cached))
		return
	}

	list := insights.BuildAll(data)
	insight_cache.Set(userID, rng, list)

	log.Printf("[insights.get] computed user=%s insights=%d", userID, len(list))
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Insights retrieved successfully", list))
}
