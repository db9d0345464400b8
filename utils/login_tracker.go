// ════════════════════════════════════════════════════════════
// Path: utils/login_tracker.go
// Track dashboard login events
// ════════════════════════════════════════════════════════════

package utils

import (
	"log"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/noord-hq/noord-backend/config"
)

// LogLoginEvent records a login event to the database
func LogLoginEvent(c *gin.Context, userID string) error {
	ctx := c.Request.Context()

	ipAddress := c.ClientIP()
	userAgent := c.GetHeader("User-Agent")
	deviceType := parseDeviceType(userAgent)

	query := `
		INSERT INTO login_events (
			id, user_id, logged_in_at, ip_address, user_agent, device_type
		) VALUES ($1, $2, NOW(), $3, $4, $5)
	`

	_, err := config.DB.Exec(ctx, query,
		uuid.New().String(),
		userID,
		ipAddress,
		userAgent,
		deviceType,
	)
	if err != nil {
		log.Printf("❌ Failed to log login event: %v", err)
		return err
	}

	log.Printf("✅ Login event logged for user: %s from IP: %s", userID, ipAddress)
	return nil
}

// parseDeviceType determines if the request is from mobile, tablet, or desktop
func parseDeviceType(userAgent string) string {
	ua := strings.ToLower(userAgent)
	switch {
	case strings.Contains(ua, "tablet") || strings.Contains(ua, "ipad"):
		return "tablet"
	case strings.Contains(ua, "mobile") || strings.Contains(ua, "android") || strings.Contains(ua, "iphone"):
		return "mobile"
	default:
		return "desktop"
	}
}
