// ════════════════════════════════════════════════════════════
// Path: controllers/analytics_controller/get_analytics_data.go
// Run a GA4 report for the connected account
// ════════════════════════════════════════════════════════════

package analytics_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/noord-hq/noord-backend/middleware"
	"github.com/noord-hq/noord-backend/models"
	"github.com/noord-hq/noord-backend/services"
)

// GetAnalyticsData godoc
// @Summary Run a GA4 report
// @Description Runs a Data API runReport against the requested property using the user's stored tokens, refreshing them transparently when expired. Returns Google's report shape unchanged.
// @Tags Analytics
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.GADataRequest true "Report request"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse "Google not connected or re-auth required"
// @Failure 500 {object} models.ApiResponse
// @Router /analytics/data [post]
func GetAnalyticsData(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	var req models.GADataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "property_id, start_date, end_date and metrics are required"))
		return
	}

	conn, err := services.GetConnection(userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Google Analytics is not connected"))
		return
	}

	log.Printf("[analytics.data] start user=%s property=%s range=%s..%s", userID, req.PropertyID, req.StartDate, req.EndDate)

	report, err := services.RunGAReport(c.Request.Context(), conn, req)
	if err != nil {
		if errors.Is(err, services.ErrGoogleNotConnected) {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Google Analytics is not connected"))
			return
		}
		log.Printf("[analytics.data] ERROR user=%s err=%v", userID, err)
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Google Analytics authorization expired, please reconnect"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Report retrieved successfully", report))
}
