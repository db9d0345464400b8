// ════════════════════════════════════════════════════════════
// Path: controllers/auth_controller/one_tap_login.go
// Google One Tap sign-in
// ════════════════════════════════════════════════════════════

package auth_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/noord-hq/noord-backend/config"
	"github.com/noord-hq/noord-backend/models"
	"github.com/noord-hq/noord-backend/services"
	"github.com/noord-hq/noord-backend/utils"
)

type oneTapRequest struct {
	Credential string `json:"credential" binding:"required"`
}

// OneTapLogin godoc
// @Summary Sign in with Google One Tap
// @Description Verifies the One Tap ID token, upserts the dashboard account and sets the auth_token session cookie.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body oneTapRequest true "One Tap credential"
// @Success 200 {object} models.ApiResponse{data=models.UserResponse}
// @Failure 400 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /auth/one-tap [post]
func OneTapLogin(c *gin.Context) {
	var req oneTapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "credential is required"))
		return
	}

	idToken, err := config.OIDCVerifier.Verify(c.Request.Context(), req.Credential)
	if err != nil {
		log.Printf("[auth.one_tap] ERROR invalid id token err=%v", err)
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid Google credential"))
		return
	}

	var info models.GoogleUserInfo
	if err := idToken.Claims(&info); err != nil {
		log.Printf("[auth.one_tap] ERROR parsing claims err=%v", err)
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid Google credential"))
		return
	}
	if !info.EmailVerified {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Google account email is not verified"))
		return
	}

	user, err := services.UpsertGoogleUser(info)
	if err != nil {
		log.Printf("[auth.one_tap] ERROR upserting user email=%s err=%v", info.Email, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to sign in"))
		return
	}

	token, err := services.GenerateUserJWT(user.ID, user.Email, user.Name)
	if err != nil {
		log.Printf("[auth.one_tap] ERROR generating session token user=%s err=%v", user.ID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to sign in"))
		return
	}

	// Best-effort audit trail; a failed insert never blocks login
	_ = utils.LogLoginEvent(c, user.ID)

	// 7 days, matching the JWT expiry
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("auth_token", token, 7*24*60*60, "/", "", false, true)

	log.Printf("[auth.one_tap] login successful user=%s", user.ID)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Login successful", models.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Avatar:    user.Avatar,
		CreatedAt: user.CreatedAt,
	}))
}
