package dashboard_routes

import (
	"github.com/gin-gonic/gin"
	"github.com/noord-hq/noord-backend/controllers/chat_controller"
)

func SetupChatRoutes(rg *gin.RouterGroup) {
	rg.POST("/chat", chat_controller.ChatCompletion)
}
