package utils

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "document-system/pkg/errors"
)

type HttpResponse struct {
	Status  bool        `json:"status"`
	Body    interface{} `json:"body,omitempty"`
	Message string      `json:"message"`
}

func SuccessResponse(ctx echo.Context, body interface{}, message string, code int, total ...uint64) error {
	response := &HttpResponse{Status: true, Message: message}

	// Для списочных ручек вместе с данными отдаётся блок пагинации.
	if len(total) > 0 {
		limit, _, page := ParsePaginationParams(ctx.Request().URL.Query())
		totalPages := uint64(0)
		if limit > 0 {
			totalPages = (total[0] + limit - 1) / limit
		}
		response.Body = map[string]interface{}{
			"list": body,
			"pagination": map[string]interface{}{
				"total_count": total[0],
				"page":        page,
				"limit":       limit,
				"total_pages": totalPages,
			},
		}
	} else {
		response.Body = body
	}

	return ctx.JSON(code, response)
}

// ErrorResponse переводит ошибку доменного слоя в HTTP-ответ.
// InvalidInputError — это ожидаемый отказ, а не сбой, поэтому 400.
func ErrorResponse(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	message := "внутренняя ошибка сервера"

	var invalidInput *apperrors.InvalidInputError
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &invalidInput):
		code = http.StatusBadRequest
		message = invalidInput.Message
	case errors.As(err, &httpErr):
		code = httpErr.Code
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
	case errors.Is(err, apperrors.ErrNotFound):
		code = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, apperrors.ErrBadRequest):
		code = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, apperrors.ErrEmptyAuthHeader),
		errors.Is(err, apperrors.ErrInvalidAuthHeader),
		errors.Is(err, apperrors.ErrInvalidToken),
		errors.Is(err, apperrors.ErrTokenExpired),
		errors.Is(err, apperrors.ErrTokenNotYetValid),
		errors.Is(err, apperrors.ErrTokenIsNotAccess),
		errors.Is(err, apperrors.ErrUnauthorized),
		errors.Is(err, apperrors.ErrUserIDNotFoundInContext),
		errors.Is(err, apperrors.ErrInvalidUserID):
		code = http.StatusUnauthorized
		message = err.Error()
	}

	return ctx.JSON(code, &HttpResponse{
		Status:  false,
		Body:    struct{}{},
		Message: message,
	})
}
