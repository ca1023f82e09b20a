package routes

import (
	"github.com/labstack/echo/v4"

	"document-system/internal/controllers"
)

func runDocumentRouter(g *echo.Group, ctrl *controllers.DocumentController) {
	g.GET("/documents", ctrl.GetDocuments)
	g.POST("/document", ctrl.CreateDocument)
	g.GET("/document/:id", ctrl.FindDocument)
	g.POST("/document/:id/status", ctrl.ChangeStatus)
	g.POST("/document/:id/department", ctrl.ChangeDepartment)
	g.POST("/document/:id/close", ctrl.CloseDocument)
}
