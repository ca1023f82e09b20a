package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"document-system/internal/services"
	"document-system/pkg/utils"
)

type DocumentHistoryController struct {
	historyService services.DocumentHistoryServiceInterface
	logger         *zap.Logger
}

func NewDocumentHistoryController(historyService services.DocumentHistoryServiceInterface, logger *zap.Logger) *DocumentHistoryController {
	return &DocumentHistoryController{historyService: historyService, logger: logger}
}

func (c *DocumentHistoryController) GetHistoryByDocument(ctx echo.Context) error {
	documentID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "Неверный формат ID"))
	}

	res, err := c.historyService.ListHistory(ctx.Request().Context(), documentID)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	return utils.SuccessResponse(ctx, res, "История изменений успешно получена", http.StatusOK)
}
