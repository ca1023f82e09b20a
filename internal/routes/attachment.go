package routes

import (
	"github.com/labstack/echo/v4"

	"document-system/internal/controllers"
)

func runAttachmentRouter(g *echo.Group, ctrl *controllers.AttachmentController) {
	g.GET("/document/:id/attachments", ctrl.GetAttachmentsByDocument)
	g.POST("/document/:id/attachments", ctrl.UploadAttachment)
	g.DELETE("/attachment/:id", ctrl.DeleteAttachment)
}
