package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"document-system/internal/entities"
	apperrors "document-system/pkg/errors"
)

type DocumentCommentRepositoryInterface interface {
	CreateComment(ctx context.Context, documentID, authorID uint64, text string) (uint64, error)
	FindAllByDocumentID(ctx context.Context, documentID uint64) ([]entities.DocumentComment, error)
}

type DocumentCommentRepository struct {
	storage *pgxpool.Pool
}

func NewDocumentCommentRepository(storage *pgxpool.Pool) DocumentCommentRepositoryInterface {
	return &DocumentCommentRepository{storage: storage}
}

func (r *DocumentCommentRepository) CreateComment(ctx context.Context, documentID, authorID uint64, text string) (uint64, error) {
	query := `INSERT INTO document_comments (document_id, user_id, text) VALUES ($1, $2, $3) RETURNING id`

	var newID uint64
	err := r.storage.QueryRow(ctx, query, documentID, authorID, text).Scan(&newID)
	if err != nil {
		var pgErr interface{ SQLState() string }
		// 23503 — нарушение внешнего ключа: документа нет.
		if errors.As(err, &pgErr) && pgErr.SQLState() == "23503" {
			return 0, apperrors.ErrNotFound
		}
		return 0, fmt.Errorf("ошибка создания комментария: %w", err)
	}
	return newID, nil
}

// FindAllByDocumentID отдаёт комментарии документа, новые сверху.
func (r *DocumentCommentRepository) FindAllByDocumentID(ctx context.Context, documentID uint64) ([]entities.DocumentComment, error) {
	query := `
		SELECT c.id, c.document_id, c.user_id, c.text, c.created_at, u.fio AS author_fio
		FROM document_comments c
		LEFT JOIN users u ON c.user_id = u.id
		WHERE c.document_id = $1
		ORDER BY c.created_at DESC, c.id DESC`

	rows, err := r.storage.Query(ctx, query, documentID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при запросе комментариев: %w", err)
	}
	defer rows.Close()

	comments := make([]entities.DocumentComment, 0)
	for rows.Next() {
		var c entities.DocumentComment
		if err := rows.Scan(&c.ID, &c.DocumentID, &c.UserID, &c.Text, &c.CreatedAt, &c.AuthorFio); err != nil {
			return nil, fmt.Errorf("ошибка при сканировании комментария: %w", err)
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}
