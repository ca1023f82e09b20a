package routes

import (
	"github.com/labstack/echo/v4"

	"document-system/internal/controllers"
)

func runReportRouter(g *echo.Group, ctrl *controllers.ReportController) {
	g.GET("/reports/documents", ctrl.GetRegistry)
}
