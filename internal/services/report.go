package services

import (
	"context"

	"go.uber.org/zap"

	"document-system/internal/dto"
	"document-system/internal/repositories"
)

type ReportServiceInterface interface {
	GetRegistry(ctx context.Context) ([]dto.DocumentDTO, error)
}

type reportService struct {
	documentRepo repositories.DocumentRepositoryInterface
	logger       *zap.Logger
}

func NewReportService(documentRepo repositories.DocumentRepositoryInterface, logger *zap.Logger) ReportServiceInterface {
	return &reportService{documentRepo: documentRepo, logger: logger}
}

// GetRegistry — полный реестр документов для выгрузки.
func (s *reportService) GetRegistry(ctx context.Context) ([]dto.DocumentDTO, error) {
	documents, err := s.documentRepo.GetRegistry(ctx)
	if err != nil {
		return nil, err
	}

	dtos := make([]dto.DocumentDTO, len(documents))
	for i, document := range documents {
		dtos[i] = toDocumentDTO(document)
	}

	s.logger.Debug("сформирован реестр документов", zap.Int("count", len(dtos)))
	return dtos, nil
}
