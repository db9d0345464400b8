// ════════════════════════════════════════════════════════════
// Path: controllers/auth_controller/google_callback.go
// Google Analytics consent callback
// ════════════════════════════════════════════════════════════

package auth_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/noord-hq/noord-backend/config"
	"github.com/noord-hq/noord-backend/services"
)

// GoogleCallback godoc
// @Summary Google OAuth callback
// @Description Exchanges the authorization code, persists the tokens on the user's connection row and sends the browser back to the dashboard integrations page.
// @Tags Auth
// @Param code query string true "Authorization code"
// @Param state query string true "Dashboard user id (echoed from connect)"
// @Success 307 "Redirect to dashboard"
// @Router /auth/google/callback [get]
func GoogleCallback(c *gin.Context) {
	frontend := config.GetFrontendURL()

	if errParam := c.Query("error"); errParam != "" {
		log.Printf("[auth.google_callback] consent denied err=%s", errParam)
		c.Redirect(http.StatusTemporaryRedirect, frontend+"/dashboard/integrations?google=denied")
		return
	}

	code := c.Query("code")
	userID := c.Query("state")
	if code == "" || userID == "" {
		log.Printf("[auth.google_callback] ERROR missing code or state")
		c.Redirect(http.StatusTemporaryRedirect, frontend+"/dashboard/integrations?google=error")
		return
	}

	token, err := config.GoogleOAuthConfig.Exchange(c.Request.Context(), code)
	if err != nil {
		log.Printf("[auth.google_callback] ERROR exchanging code user=%s err=%v", userID, err)
		c.Redirect(http.StatusTemporaryRedirect, frontend+"/dashboard/integrations?google=error")
		return
	}

	if err := services.SaveGoogleTokens(userID, token.AccessToken, token.RefreshToken, token.Expiry); err != nil {
		log.Printf("[auth.google_callback] ERROR saving tokens user=%s err=%v", userID, err)
		c.Redirect(http.StatusTemporaryRedirect, frontend+"/dashboard/integrations?google=error")
		return
	}

	log.Printf("[auth.google_callback] google analytics connected user=%s", userID)
	c.Redirect(http.StatusTemporaryRedirect, frontend+"/dashboard/integrations?google=connected")
}
