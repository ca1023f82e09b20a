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

type DocumentCommentController struct {
	commentService services.DocumentCommentServiceInterface
	logger         *zap.Logger
}

func NewDocumentCommentController(commentService services.DocumentCommentServiceInterface, logger *zap.Logger) *DocumentCommentController {
	return &DocumentCommentController{commentService: commentService, logger: logger}
}

func (c *DocumentCommentController) GetCommentsByDocument(ctx echo.Context) error {
	documentID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "Неверный формат ID"))
	}

	res, err := c.commentService.ListComments(ctx.Request().Context(), documentID)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	return utils.SuccessResponse(ctx, res, "Комментарии успешно получены", http.StatusOK)
}

// AddComment отдаёт обновлённый список комментариев документа.
func (c *DocumentCommentController) AddComment(ctx echo.Context) error {
	documentID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "Неверный формат ID"))
	}

	actorID, err := utils.GetUserIDFromCtx(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	var payload dto.CreateDocumentCommentDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "Неверное тело запроса"))
	}

	res, err := c.commentService.AddComment(ctx.Request().Context(), documentID, actorID, payload.Text)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	return utils.SuccessResponse(ctx, res, "Комментарий успешно добавлен", http.StatusCreated)
}
