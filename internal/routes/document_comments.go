package routes

import (
	"github.com/labstack/echo/v4"

	"document-system/internal/controllers"
)

func runDocumentCommentRouter(g *echo.Group, ctrl *controllers.DocumentCommentController) {
	g.GET("/document/:id/comments", ctrl.GetCommentsByDocument)
	g.POST("/document/:id/comments", ctrl.AddComment)
}
