// ════════════════════════════════════════════════════════════
// Path: controllers/connection_controller/update_store_settings.go
// Store display name and logo
// ════════════════════════════════════════════════════════════

package connection_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/noord-hq/noord-backend/middleware"
	"github.com/noord-hq/noord-backend/models"
	"github.com/noord-hq/noord-backend/services"
)

// UpdateStoreSettings godoc
// @Summary Update store display settings
// @Description Updates the store name and optionally uploads a new logo (multipart field "logo") to Cloudinary.
// @Tags Connections
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param store_name formData string false "Display name"
// @Param logo formData file false "Logo image"
// @Success 200 {object} models.ApiResponse{data=models.ConnectionView}
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /connections/settings [put]
func UpdateStoreSettings(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	var req models.UpdateStoreSettingsRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid form data"))
		return
	}

	var logoURL string
	if fileHeader, err := c.FormFile("logo"); err == nil {
		cld := services.GetCloudinaryService()
		if cld == nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Logo uploads are not configured"))
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Could not read logo file"))
			return
		}
		defer file.Close()

		logoURL, err = cld.UploadLogo(c.Request.Context(), file, userID)
		if err != nil {
			log.Printf("[connection.settings] ERROR uploading logo user=%s err=%v", userID, err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to upload logo"))
			return
		}
	}

	if req.StoreName == "" && logoURL == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Nothing to update"))
		return
	}

	conn, err := services.UpdateStoreSettings(userID, req.StoreName, logoURL)
	if err != nil {
		log.Printf("[connection.settings] ERROR saving user=%s err=%v", userID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update store settings"))
		return
	}

	log.Printf("[connection.settings] updated user=%s name=%q logo=%t", userID, req.StoreName, logoURL != "")
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Store settings updated successfully", conn.View()))
}
