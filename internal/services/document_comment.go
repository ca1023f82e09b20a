package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"document-system/internal/dto"
	"document-system/internal/entities"
	"document-system/internal/repositories"
	apperrors "document-system/pkg/errors"
)

type DocumentCommentServiceInterface interface {
	AddComment(ctx context.Context, documentID, actorID uint64, text string) ([]dto.DocumentCommentDTO, error)
	ListComments(ctx context.Context, documentID uint64) ([]dto.DocumentCommentDTO, error)
}

type DocumentCommentService struct {
	commentRepo  repositories.DocumentCommentRepositoryInterface
	documentRepo repositories.DocumentRepositoryInterface
	logger       *zap.Logger
}

func NewDocumentCommentService(
	commentRepo repositories.DocumentCommentRepositoryInterface,
	documentRepo repositories.DocumentRepositoryInterface,
	logger *zap.Logger,
) DocumentCommentServiceInterface {
	return &DocumentCommentService{
		commentRepo:  commentRepo,
		documentRepo: documentRepo,
		logger:       logger,
	}
}

// AddComment создаёт комментарий и возвращает обновлённый список,
// чтобы вызывающая сторона сразу перерисовала блок комментариев.
func (s *DocumentCommentService) AddComment(ctx context.Context, documentID, actorID uint64, text string) ([]dto.DocumentCommentDTO, error) {
	if strings.TrimSpace(text) == "" {
		return nil, apperrors.NewInvalidInputError("comment cannot be empty")
	}

	if _, err := s.documentRepo.FindDocument(ctx, documentID); err != nil {
		return nil, err
	}

	if _, err := s.commentRepo.CreateComment(ctx, documentID, actorID, text); err != nil {
		s.logger.Error("ошибка создания комментария", zap.Uint64("documentID", documentID), zap.Error(err))
		return nil, err
	}

	return s.ListComments(ctx, documentID)
}

func (s *DocumentCommentService) ListComments(ctx context.Context, documentID uint64) ([]dto.DocumentCommentDTO, error) {
	comments, err := s.commentRepo.FindAllByDocumentID(ctx, documentID)
	if err != nil {
		return nil, err
	}

	dtos := make([]dto.DocumentCommentDTO, len(comments))
	for i, comment := range comments {
		dtos[i] = toCommentDTO(comment)
	}
	return dtos, nil
}

func toCommentDTO(comment entities.DocumentComment) dto.DocumentCommentDTO {
	return dto.DocumentCommentDTO{
		ID:         comment.ID,
		DocumentID: comment.DocumentID,
		AuthorFio:  comment.AuthorFio.String,
		Text:       comment.Text,
		CreatedAt:  comment.CreatedAt.Local().Format(dateTimeLayout),
	}
}
