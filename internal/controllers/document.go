package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"document-system/internal/dto"
	"document-system/internal/services"
	"document-system/pkg/utils"
)

type DocumentController struct {
	documentService services.DocumentServiceInterface
	logger          *zap.Logger
}

func NewDocumentController(documentService services.DocumentServiceInterface, logger *zap.Logger) *DocumentController {
	return &DocumentController{documentService: documentService, logger: logger}
}

func (c *DocumentController) GetDocuments(ctx echo.Context) error {
	limit, offset, _ := utils.ParsePaginationParams(ctx.Request().URL.Query())

	documents, total, err := c.documentService.GetDocuments(ctx.Request().Context(), limit, offset)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	return utils.SuccessResponse(ctx, documents, "Документы успешно получены", http.StatusOK, total)
}

func (c *DocumentController) FindDocument(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "Неверный формат ID"))
	}

	res, err := c.documentService.FindDocument(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	return utils.SuccessResponse(ctx, res, "Документ успешно найден", http.StatusOK)
}

func (c *DocumentController) CreateDocument(ctx echo.Context) error {
	actorID, err := utils.GetUserIDFromCtx(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	var payload dto.CreateDocumentDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "Неверное тело запроса"))
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	newID, err := c.documentService.CreateDocument(ctx.Request().Context(), actorID, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	res, err := c.documentService.FindDocument(ctx.Request().Context(), newID)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	return utils.SuccessResponse(ctx, res, "Документ успешно создан", http.StatusCreated)
}

// ChangeStatus возвращает 200 и при принятом, и при отклонённом переходе:
// отказ ("status unchanged") — это штатный результат, а не ошибка.
func (c *DocumentController) ChangeStatus(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "Неверный формат ID"))
	}

	actorID, err := utils.GetUserIDFromCtx(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	var payload dto.ChangeStatusDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "Неверное тело запроса"))
	}

	res, err := c.documentService.ChangeStatus(ctx.Request().Context(), id, payload.Status, actorID)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	return utils.SuccessResponse(ctx, res, "Смена статуса обработана", http.StatusOK)
}

func (c *DocumentController) ChangeDepartment(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "Неверный формат ID"))
	}

	actorID, err := utils.GetUserIDFromCtx(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	var payload dto.ChangeDepartmentDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "Неверное тело запроса"))
	}

	res, err := c.documentService.ChangeDepartment(ctx.Request().Context(), id, payload.DepartmentID, actorID)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	return utils.SuccessResponse(ctx, res, "Смена департамента обработана", http.StatusOK)
}

func (c *DocumentController) CloseDocument(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "Неверный формат ID"))
	}

	if err := c.documentService.CloseDocument(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	res, err := c.documentService.FindDocument(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	return utils.SuccessResponse(ctx, res, "Документ закрыт", http.StatusOK)
}
