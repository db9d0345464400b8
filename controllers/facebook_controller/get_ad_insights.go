package facebook_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/noord-hq/noord-backend/middleware"
	"github.com/noord-hq/noord-backend/models"
	"github.com/noord-hq/noord-backend/services"
)

// GetAdInsights godoc
// @Summary Ad spend summary for one account
// @Description Fetches spend, impressions, clicks and CPC for the account over the requested date range.
// @Tags Facebook
// @Produce json
// @Security BearerAuth
// @Param accountId query string true "Ad account id (numeric, without act_ prefix)"
// @Param start query string true "Start date (YYYY-MM-DD)"
// @Param end query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} models.ApiResponse{data=services.FacebookInsights}
// @Failure 400 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /facebook/insights [get]
func GetAdInsights(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	accountID := c.Query("accountId")
	if accountID == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "accountId is required"))
		return
	}

	since, err := time.Parse("2006-01-02", c.Query("start"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "start must be YYYY-MM-DD"))
		return
	}
	until, err := time.Parse("2006-01-02", c.Query("end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "end must be YYYY-MM-DD"))
		return
	}

	conn, err := services.GetConnection(userID)
	if err != nil || conn.FacebookAccessToken == "" {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Facebook Ads is not connected"))
		return
	}

	insights, err := services.GetFacebookInsights(c.Request.Context(), conn.FacebookAccessToken, accountID, since, until)
	if err != nil {
		log.Printf("[facebook.insights] ERROR user=%s account=%s err=%v", userID, accountID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch ad insights"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Ad insights retrieved successfully", insights))
}
