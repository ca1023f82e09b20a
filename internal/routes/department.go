package routes

import (
	"github.com/labstack/echo/v4"

	"document-system/internal/controllers"
)

func runDepartmentRouter(g *echo.Group, ctrl *controllers.DepartmentController) {
	g.GET("/departments", ctrl.GetDepartments)
	g.GET("/department/:id", ctrl.FindDepartment)
	g.POST("/department", ctrl.CreateDepartment)
	g.PUT("/department/:id", ctrl.UpdateDepartment)
	g.DELETE("/department/:id", ctrl.DeleteDepartment)
}
