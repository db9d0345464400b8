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

// GetAnalyticsProperties godoc
// @Summary List GA4 properties
// @Description Lists the GA4 properties visible to the connected Google account so the dashboard can offer a property picker.
// @Tags Analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=[]models.GAProperty}
// @Failure 401 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /analytics/properties [get]
func GetAnalyticsProperties(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	conn, err := services.GetConnection(userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Google Analytics is not connected"))
		return
	}

	properties, err := services.ListGAProperties(c.Request.Context(), conn)
	if err != nil {
		if errors.Is(err, services.ErrGoogleNotConnected) {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Google Analytics is not connected"))
			return
		}
		log.Printf("[analytics.properties] ERROR user=%s err=%v", userID, err)
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Google Analytics authorization expired, please reconnect"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Properties retrieved successfully", properties))
}
