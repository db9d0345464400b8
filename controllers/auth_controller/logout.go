package auth_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/noord-hq/noord-backend/models"
)

// Logout godoc
// @Summary Sign out
// @Description Clears the auth_token session cookie.
// @Tags Auth
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /auth/logout [post]
func Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("auth_token", "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logged out successfully", nil))
}
