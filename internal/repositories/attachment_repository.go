// Файл: internal/repositories/attachment_repository.go
package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"document-system/internal/entities"
	apperrors "document-system/pkg/errors"
)

type AttachmentRepositoryInterface interface {
	Create(ctx context.Context, attachment *entities.Attachment) (uint64, error)
	FindAllByDocumentID(ctx context.Context, documentID uint64) ([]entities.Attachment, error)
	FindByID(ctx context.Context, id uint64) (*entities.Attachment, error)
	DeleteAttachment(ctx context.Context, id uint64) error
}

type attachmentRepository struct {
	storage *pgxpool.Pool
}

func NewAttachmentRepository(storage *pgxpool.Pool) AttachmentRepositoryInterface {
	return &attachmentRepository{storage: storage}
}

func (r *attachmentRepository) Create(ctx context.Context, attachment *entities.Attachment) (uint64, error) {
	query := `
		INSERT INTO attachments (document_id, user_id, file_name, file_path, file_type, file_size)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`
	err := r.storage.QueryRow(ctx, query,
		attachment.DocumentID, attachment.UserID, attachment.FileName,
		attachment.FilePath, attachment.FileType, attachment.FileSize,
	).Scan(&attachment.ID, &attachment.CreatedAt)
	return attachment.ID, err
}

func (r *attachmentRepository) FindAllByDocumentID(ctx context.Context, documentID uint64) ([]entities.Attachment, error) {
	query := `
		SELECT id, document_id, user_id, file_name, file_path, file_type, file_size, created_at
		FROM attachments
		WHERE document_id = $1
		ORDER BY created_at DESC, id DESC`
	rows, err := r.storage.Query(ctx, query, documentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	attachments := make([]entities.Attachment, 0)
	for rows.Next() {
		var a entities.Attachment
		if err := rows.Scan(&a.ID, &a.DocumentID, &a.UserID, &a.FileName, &a.FilePath, &a.FileType, &a.FileSize, &a.CreatedAt); err != nil {
			return nil, err
		}
		attachments = append(attachments, a)
	}
	return attachments, rows.Err()
}

func (r *attachmentRepository) FindByID(ctx context.Context, id uint64) (*entities.Attachment, error) {
	query := `SELECT id, document_id, user_id, file_name, file_path, file_type, file_size, created_at FROM attachments WHERE id = $1`
	var a entities.Attachment
	err := r.storage.QueryRow(ctx, query, id).Scan(&a.ID, &a.DocumentID, &a.UserID, &a.FileName, &a.FilePath, &a.FileType, &a.FileSize, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *attachmentRepository) DeleteAttachment(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, `DELETE FROM attachments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
