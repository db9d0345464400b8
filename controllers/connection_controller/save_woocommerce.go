// ════════════════════════════════════════════════════════════
// Path: controllers/connection_controller/save_woocommerce.go
// Connect a WooCommerce store
// ════════════════════════════════════════════════════════════

package connection_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	insight_cache "github.com/noord-hq/noord-backend/cache"
	"github.com/noord-hq/noord-backend/datasync"
	"github.com/noord-hq/noord-backend/middleware"
	"github.com/noord-hq/noord-backend/models"
	"github.com/noord-hq/noord-backend/services"
)

// SaveWooCommerce godoc
// @Summary Connect a WooCommerce store
// @Description Validates the REST credentials with a one-product probe against the store before persisting them.
// @Tags Connections
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.SaveWooCommerceRequest true "Store URL and REST keys"
// @Success 200 {object} models.ApiResponse{data=models.ConnectionView}
// @Failure 400 {object} models.ApiResponse
// @Failure 422 {object} models.ApiResponse "Credentials rejected by the store"
// @Failure 500 {object} models.ApiResponse
// @Router /connections/woocommerce [post]
func SaveWooCommerce(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	var req models.SaveWooCommerceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "url, consumer_key and consumer_secret are required"))
		return
	}

	log.Printf("[connection.save_woo] start user=%s store=%s", userID, req.URL)

	// Probe before persisting so bad keys never land in the table
	client := services.NewWooClient(req.URL, req.ConsumerKey, req.ConsumerSecret)
	if err := client.TestConnection(c.Request.Context()); err != nil {
		log.Printf("[connection.save_woo] ERROR probe failed user=%s err=%v", userID, err)
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse(c, "Could not reach the store with these credentials"))
		return
	}

	conn, err := services.SaveWooCommerceCredentials(userID, req.URL, req.ConsumerKey, req.ConsumerSecret)
	if err != nil {
		log.Printf("[connection.save_woo] ERROR saving user=%s err=%v", userID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save store credentials"))
		return
	}

	// Data synced from the previous store is stale now
	datasync.Default().Reset(userID)
	datasync.DropSnapshot(userID)
	insight_cache.Invalidate(userID)

	log.Printf("[connection.save_woo] store connected user=%s", userID)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Store connected successfully", conn.View()))
}
