package services

import (
	"context"
	"io"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"

	"document-system/internal/dto"
	"document-system/internal/entities"
	"document-system/internal/repositories"
	apperrors "document-system/pkg/errors"
	"document-system/pkg/filestorage"
)

// Префикс внутри файлового хранилища для вложений документов.
const attachmentPathPrefix = "documents"

type AttachmentServiceInterface interface {
	Upload(ctx context.Context, documentID, actorID uint64, file io.Reader, fileName, fileType string, fileSize int64) (*dto.AttachmentDTO, error)
	ListAttachments(ctx context.Context, documentID uint64) ([]dto.AttachmentDTO, error)
	Delete(ctx context.Context, attachmentID uint64) (*dto.DeleteAttachmentResultDTO, error)
}

type AttachmentService struct {
	attachmentRepo repositories.AttachmentRepositoryInterface
	documentRepo   repositories.DocumentRepositoryInterface
	fileStorage    filestorage.FileStorageInterface
	logger         *zap.Logger
}

func NewAttachmentService(
	attachmentRepo repositories.AttachmentRepositoryInterface,
	documentRepo repositories.DocumentRepositoryInterface,
	fileStorage filestorage.FileStorageInterface,
	logger *zap.Logger,
) AttachmentServiceInterface {
	return &AttachmentService{
		attachmentRepo: attachmentRepo,
		documentRepo:   documentRepo,
		fileStorage:    fileStorage,
		logger:         logger,
	}
}

func (s *AttachmentService) Upload(ctx context.Context, documentID, actorID uint64, file io.Reader, fileName, fileType string, fileSize int64) (*dto.AttachmentDTO, error) {
	if file == nil || fileName == "" {
		return nil, apperrors.NewInvalidInputError("upload failed")
	}

	if _, err := s.documentRepo.FindDocument(ctx, documentID); err != nil {
		return nil, err
	}

	savedPath, err := s.fileStorage.Save(file, fileName, attachmentPathPrefix)
	if err != nil {
		s.logger.Error("ошибка сохранения файла", zap.String("fileName", fileName), zap.Error(err))
		return nil, err
	}

	attachment := &entities.Attachment{
		DocumentID: documentID,
		UserID:     null.IntFrom(int(actorID)),
		FileName:   fileName,
		FilePath:   savedPath,
		FileType:   fileType,
		FileSize:   fileSize,
	}

	attachmentID, err := s.attachmentRepo.Create(ctx, attachment)
	if err != nil {
		// Запись не создана — подчищаем уже сохранённый блоб.
		if delErr := s.fileStorage.Delete(savedPath); delErr != nil {
			s.logger.Warn("не удалось удалить осиротевший файл", zap.String("path", savedPath), zap.Error(delErr))
		}
		return nil, err
	}

	attachment.ID = attachmentID
	result := toAttachmentDTO(*attachment)
	return &result, nil
}

func (s *AttachmentService) ListAttachments(ctx context.Context, documentID uint64) ([]dto.AttachmentDTO, error) {
	attachments, err := s.attachmentRepo.FindAllByDocumentID(ctx, documentID)
	if err != nil {
		return nil, err
	}

	dtos := make([]dto.AttachmentDTO, len(attachments))
	for i, attachment := range attachments {
		dtos[i] = toAttachmentDTO(attachment)
	}
	return dtos, nil
}

// Delete убирает и блоб из хранилища, и строку из БД. Возвращает ID
// документа-владельца, чтобы вызывающая сторона обновила его карточку.
func (s *AttachmentService) Delete(ctx context.Context, attachmentID uint64) (*dto.DeleteAttachmentResultDTO, error) {
	attachment, err := s.attachmentRepo.FindByID(ctx, attachmentID)
	if err != nil {
		return nil, err
	}

	if err := s.fileStorage.Delete(attachment.FilePath); err != nil {
		s.logger.Error("ошибка удаления файла из хранилища", zap.String("path", attachment.FilePath), zap.Error(err))
		return nil, err
	}

	if err := s.attachmentRepo.DeleteAttachment(ctx, attachmentID); err != nil {
		return nil, err
	}

	return &dto.DeleteAttachmentResultDTO{DocumentID: attachment.DocumentID}, nil
}

func toAttachmentDTO(attachment entities.Attachment) dto.AttachmentDTO {
	return dto.AttachmentDTO{
		ID:         attachment.ID,
		DocumentID: attachment.DocumentID,
		FileName:   attachment.FileName,
		URL:        "/uploads/" + attachment.FilePath,
		FileType:   attachment.FileType,
		FileSize:   attachment.FileSize,
		CreatedAt:  attachment.CreatedAt.Local().Format(dateTimeLayout),
	}
}
