package sync_controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/noord-hq/noord-backend/datasync"
	"github.com/noord-hq/noord-backend/middleware"
	"github.com/noord-hq/noord-backend/models"
)

type dashboardResponse struct {
	Data     models.DashboardData `json:"data"`
	Range    *models.SyncRange    `json:"range,omitempty"`
	SyncedAt *time.Time           `json:"synced_at,omitempty"`
}

// GetDashboard godoc
// @Summary Current dashboard data
// @Description Returns the in-memory dashboard aggregate for the user, warm-started from the Redis snapshot after a restart. Empty until the first sync.
// @Tags Sync
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=dashboardResponse}
// @Router /dashboard [get]
func GetDashboard(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	data, rng, syncedAt := datasync.Default().Dashboard(userID)

	resp := dashboardResponse{Data: data, Range: rng}
	if !syncedAt.IsZero() {
		resp.SyncedAt = &syncedAt
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Dashboard retrieved successfully", resp))
}
