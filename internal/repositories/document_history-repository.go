package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"document-system/internal/entities"
)

type DocumentHistoryRepositoryInterface interface {
	CreateInTx(ctx context.Context, tx pgx.Tx, history *entities.DocumentHistory) error
	FindAllByDocumentID(ctx context.Context, documentID uint64) ([]entities.DocumentHistory, error)
}

type DocumentHistoryRepository struct {
	storage *pgxpool.Pool
}

func NewDocumentHistoryRepository(storage *pgxpool.Pool) DocumentHistoryRepositoryInterface {
	return &DocumentHistoryRepository{storage: storage}
}

// CreateInTx пишет запись аудита в той же транзакции, что и само изменение.
// Обновлений и удалений у истории нет.
func (r *DocumentHistoryRepository) CreateInTx(ctx context.Context, tx pgx.Tx, history *entities.DocumentHistory) error {
	query := `
		INSERT INTO document_history (document_id, user_id, field_name, old_value, new_value)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := tx.Exec(ctx, query,
		history.DocumentID, history.UserID, history.FieldName,
		history.OldValue, history.NewValue)
	return err
}

func (r *DocumentHistoryRepository) FindAllByDocumentID(ctx context.Context, documentID uint64) ([]entities.DocumentHistory, error) {
	query := `
		SELECT h.id, h.document_id, h.user_id, h.field_name, h.old_value, h.new_value, h.created_at,
		       u.fio AS author_fio
		FROM document_history h
		LEFT JOIN users u ON h.user_id = u.id
		WHERE h.document_id = $1
		ORDER BY h.created_at DESC, h.id DESC`

	rows, err := r.storage.Query(ctx, query, documentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := make([]entities.DocumentHistory, 0)
	for rows.Next() {
		var h entities.DocumentHistory
		if err := rows.Scan(&h.ID, &h.DocumentID, &h.UserID, &h.FieldName, &h.OldValue, &h.NewValue, &h.CreatedAt, &h.AuthorFio); err != nil {
			return nil, err
		}
		history = append(history, h)
	}
	return history, rows.Err()
}
