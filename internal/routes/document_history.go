package routes

import (
	"github.com/labstack/echo/v4"

	"document-system/internal/controllers"
)

func runDocumentHistoryRouter(g *echo.Group, ctrl *controllers.DocumentHistoryController) {
	g.GET("/document/:id/history", ctrl.GetHistoryByDocument)
}
