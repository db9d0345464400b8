package insights_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/noord-hq/noord-backend/datasync"
	"github.com/noord-hq/noord-backend/insights"
	"github.com/noord-hq/noord-backend/middleware"
	"github.com/noord-hq/noord-backend/models"
)

// GetABCAnalysis godoc
// @Summary ABC revenue classification
// @Description Partitions the synced top sellers into A/B/C tiers by cumulative revenue share (80% / 95% cutoffs).
// @Tags Insights
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.ABCAnalysis}
// @Router /insights/abc-analysis [get]
func GetABCAnalysis(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	data, _, _ := datasync.Default().Dashboard(userID)
	analysis := insights.ClassifyABC(data.TopSellers)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "ABC analysis retrieved successfully", analysis))
}
