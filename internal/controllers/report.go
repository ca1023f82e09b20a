package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"document-system/internal/dto"
	"document-system/internal/services"
	"document-system/pkg/constants"
	"document-system/pkg/utils"
)

type ReportController struct {
	reportService services.ReportServiceInterface
	logger        *zap.Logger
}

func NewReportController(reportService services.ReportServiceInterface, logger *zap.Logger) *ReportController {
	return &ReportController{reportService: reportService, logger: logger}
}

// GetRegistry отдаёт полный реестр документов: JSON по умолчанию,
// xlsx при ?format=xlsx.
func (c *ReportController) GetRegistry(ctx echo.Context) error {
	format := strings.ToLower(ctx.QueryParam("format"))
	c.logger.Debug("запрос реестра документов", zap.String("format", format))

	data, err := c.reportService.GetRegistry(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	if format == "xlsx" {
		return c.respondWithXLSX(ctx, data)
	}

	return utils.SuccessResponse(ctx, data, "Реестр успешно сформирован", http.StatusOK)
}

var registryHeaders = []string{
	"№", "Ідентифікатор", "ПІБ", "Канал", "Тип звернення", "Департамент",
	"Статус", "Коментар", "Закрито", "Дата створення", "Дата оновлення",
}

func rowToSlice(n int, item dto.DocumentDTO) []interface{} {
	departmentName := constants.UnassignedLabel
	if item.Department != nil {
		departmentName = item.Department.Name
	}

	closed := "ні"
	if item.IsClosed {
		closed = "так"
	}

	return []interface{}{
		n, item.Identifier, item.FullName, item.ChannelLabel, item.RequestTypeLabel,
		departmentName, item.StatusLabel, item.Comment, closed, item.CreatedAt, item.UpdatedAt,
	}
}

func (c *ReportController) respondWithXLSX(ctx echo.Context, data []dto.DocumentDTO) error {
	f := excelize.NewFile()
	sheet := "Реєстр документів"
	f.SetSheetName("Sheet1", sheet)
	f.SetSheetRow(sheet, "A1", &registryHeaders)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheet, "A1", "K1", style)

	for i, item := range data {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := rowToSlice(i+1, item)
		f.SetSheetRow(sheet, cell, &row)
	}
	f.SetColWidth(sheet, "B", "C", 25)
	f.SetColWidth(sheet, "D", "G", 20)
	f.SetColWidth(sheet, "H", "H", 40)
	f.SetColWidth(sheet, "J", "K", 20)

	fileName := fmt.Sprintf("registry_%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response().Writer)
}
