// ════════════════════════════════════════════════════════════
// Path: controllers/connection_controller/get_connection.go
// Masked view of the user's integrations
// ════════════════════════════════════════════════════════════

package connection_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/noord-hq/noord-backend/middleware"
	"github.com/noord-hq/noord-backend/models"
	"github.com/noord-hq/noord-backend/services"
)

// GetConnection godoc
// @Summary Get integration status
// @Description Returns which integrations are connected. Keys and tokens are masked to a hint; full secrets never leave the server.
// @Tags Connections
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.ConnectionView}
// @Failure 500 {object} models.ApiResponse
// @Router /connections [get]
func GetConnection(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	conn, err := services.GetConnection(userID)
	if err != nil {
		if errors.Is(err, services.ErrConnectionNotFound) {
			// No row yet is a normal first-visit state
			c.JSON(http.StatusOK, models.SuccessResponse(c, "No integrations connected yet", models.ConnectionView{}))
			return
		}
		log.Printf("[connection.get] ERROR user=%s err=%v", userID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load integrations"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Integrations retrieved successfully", conn.View()))
}
