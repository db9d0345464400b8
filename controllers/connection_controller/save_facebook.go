package connection_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/noord-hq/noord-backend/middleware"
	"github.com/noord-hq/noord-backend/models"
	"github.com/noord-hq/noord-backend/services"
)

// SaveFacebook godoc
// @Summary Connect Facebook Ads
// @Description Validates the token by listing its ad accounts, then persists the app id and token.
// @Tags Connections
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.SaveFacebookRequest true "App id and access token"
// @Success 200 {object} models.ApiResponse{data=models.ConnectionView}
// @Failure 400 {object} models.ApiResponse
// @Failure 422 {object} models.ApiResponse "Token rejected by the Graph API"
// @Failure 500 {object} models.ApiResponse
// @Router /connections/facebook [post]
func SaveFacebook(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	var req models.SaveFacebookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "app_id and access_token are required"))
		return
	}

	if _, err := services.GetFacebookAdAccounts(c.Request.Context(), req.AccessToken); err != nil {
		log.Printf("[connection.save_facebook] ERROR token probe failed user=%s err=%v", userID, err)
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse(c, "Facebook rejected the access token"))
		return
	}

	conn, err := services.SaveFacebookCredentials(userID, req.AppID, req.AccessToken)
	if err != nil {
		log.Printf("[connection.save_facebook] ERROR saving user=%s err=%v", userID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save Facebook credentials"))
		return
	}

	log.Printf("[connection.save_facebook] facebook connected user=%s", userID)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Facebook Ads connected successfully", conn.View()))
}
