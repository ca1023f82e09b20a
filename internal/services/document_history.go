package services

import (
	"context"

	"go.uber.org/zap"

	"document-system/internal/dto"
	"document-system/internal/repositories"
)

type DocumentHistoryServiceInterface interface {
	ListHistory(ctx context.Context, documentID uint64) ([]dto.DocumentHistoryDTO, error)
}

type DocumentHistoryService struct {
	historyRepo  repositories.DocumentHistoryRepositoryInterface
	documentRepo repositories.DocumentRepositoryInterface
	logger       *zap.Logger
}

func NewDocumentHistoryService(
	historyRepo repositories.DocumentHistoryRepositoryInterface,
	documentRepo repositories.DocumentRepositoryInterface,
	logger *zap.Logger,
) DocumentHistoryServiceInterface {
	return &DocumentHistoryService{
		historyRepo:  historyRepo,
		documentRepo: documentRepo,
		logger:       logger,
	}
}

// ListHistory отдаёт аудит документа, новые записи сверху.
func (s *DocumentHistoryService) ListHistory(ctx context.Context, documentID uint64) ([]dto.DocumentHistoryDTO, error) {
	if _, err := s.documentRepo.FindDocument(ctx, documentID); err != nil {
		return nil, err
	}

	entries, err := s.historyRepo.FindAllByDocumentID(ctx, documentID)
	if err != nil {
		return nil, err
	}

	dtos := make([]dto.DocumentHistoryDTO, len(entries))
	for i, entry := range entries {
		dtos[i] = dto.DocumentHistoryDTO{
			ID:        entry.ID,
			FieldName: entry.FieldName,
			OldValue:  entry.OldValue,
			NewValue:  entry.NewValue,
			AuthorFio: entry.AuthorFio.String,
			CreatedAt: entry.CreatedAt.Local().Format(dateTimeLayout),
		}
	}
	return dtos, nil
}
