package utils

import (
	"context"

	"document-system/pkg/contextkeys"
	apperrors "document-system/pkg/errors"
)

// GetUserIDFromCtx достаёт ID действующего пользователя, положенный туда
// auth-мидлвэром. Дальше по слоям actor передаётся уже явным параметром.
func GetUserIDFromCtx(ctx context.Context) (uint64, error) {
	userID, ok := ctx.Value(contextkeys.UserIDKey).(uint64)
	if !ok {
		return 0, apperrors.ErrUserIDNotFoundInContext
	}
	if userID == 0 {
		return 0, apperrors.ErrInvalidUserID
	}
	return userID, nil
}
