// ════════════════════════════════════════════════════════════
// Path: controllers/facebook_controller/get_ad_accounts.go
// List Facebook ad accounts for the stored token
// ════════════════════════════════════════════════════════════

package facebook_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/noord-hq/noord-backend/middleware"
	"github.com/noord-hq/noord-backend/models"
	"github.com/noord-hq/noord-backend/services"
)

// GetAdAccounts godoc
// @Summary List Facebook ad accounts
// @Tags Facebook
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=[]services.FacebookAdAccount}
// @Failure 401 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /facebook/ad-accounts [get]
func GetAdAccounts(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	conn, err := services.GetConnection(userID)
	if err != nil || conn.FacebookAccessToken == "" {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Facebook Ads is not connected"))
		return
	}

	accounts, err := services.GetFacebookAdAccounts(c.Request.Context(), conn.FacebookAccessToken)
	if err != nil {
		log.Printf("[facebook.ad_accounts] ERROR user=%s err=%v", userID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to list ad accounts"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Ad accounts retrieved successfully", accounts))
}
