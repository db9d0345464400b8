// ════════════════════════════════════════════════════════════
// Path: controllers/auth_controller/google_connect.go
// Start the Google Analytics consent flow
// ════════════════════════════════════════════════════════════

package auth_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/noord-hq/noord-backend/config"
	"github.com/noord-hq/noord-backend/models"
	"golang.org/x/oauth2"
)

// GoogleConnect godoc
// @Summary Start the Google Analytics consent flow
// @Description Redirects to Google's OAuth consent screen requesting analytics.readonly with offline access. The dashboard user id rides the state parameter back to the callback.
// @Tags Auth
// @Param userId query string true "Dashboard user id"
// @Success 307 "Redirect to Google"
// @Failure 400 {object} models.ApiResponse
// @Router /auth/google [get]
func GoogleConnect(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "userId is required"))
		return
	}

	// Offline + consent forces Google to return a refresh token even on
	// repeat connects.
	authURL := config.GoogleOAuthConfig.AuthCodeURL(
		userID,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
	)

	log.Printf("[auth.google_connect] redirecting user=%s to consent screen", userID)
	c.Redirect(http.StatusTemporaryRedirect, authURL)
}
