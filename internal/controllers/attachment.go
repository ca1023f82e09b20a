package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"document-system/internal/services"
	"document-system/pkg/utils"
)

type AttachmentController struct {
	attachmentService services.AttachmentServiceInterface
	logger            *zap.Logger
}

func NewAttachmentController(
	attachmentService services.AttachmentServiceInterface,
	logger *zap.Logger,
) *AttachmentController {
	return &AttachmentController{
		attachmentService: attachmentService,
		logger:            logger,
	}
}

func (c *AttachmentController) GetAttachmentsByDocument(ctx echo.Context) error {
	documentID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "Неверный формат ID"))
	}

	res, err := c.attachmentService.ListAttachments(ctx.Request().Context(), documentID)
	if err != nil {
		c.logger.Error("ошибка при получении вложений", zap.Error(err), zap.Uint64("documentID", documentID))
		return utils.ErrorResponse(ctx, err)
	}
	return utils.SuccessResponse(ctx, res, "Вложения успешно получены", http.StatusOK)
}

func (c *AttachmentController) UploadAttachment(ctx echo.Context) error {
	documentID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "Неверный формат ID"))
	}

	actorID, err := utils.GetUserIDFromCtx(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "Файл не передан"))
	}

	src, err := fileHeader.Open()
	if err != nil {
		c.logger.Error("не удалось открыть загружаемый файл", zap.Error(err))
		return utils.ErrorResponse(ctx, err)
	}
	defer src.Close()

	res, err := c.attachmentService.Upload(
		ctx.Request().Context(),
		documentID,
		actorID,
		src,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		fileHeader.Size,
	)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	return utils.SuccessResponse(ctx, res, "Файл успешно загружен", http.StatusCreated)
}

func (c *AttachmentController) DeleteAttachment(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "Неверный ID вложения"))
	}

	res, err := c.attachmentService.Delete(ctx.Request().Context(), id)
	if err != nil {
		c.logger.Error("ошибка при удалении вложения", zap.Error(err))
		return utils.ErrorResponse(ctx, err)
	}
	return utils.SuccessResponse(ctx, res, "Вложение успешно удалено", http.StatusOK)
}
