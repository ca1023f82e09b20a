package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"document-system/internal/dto"
	"document-system/internal/entities"
	"document-system/pkg/constants"
	apperrors "document-system/pkg/errors"
)

const documentColumns = `
	d.id, d.identifier, d.full_name, d.channel, d.request_type,
	d.department_id, d.status, d.comment, d.file_path, d.is_closed,
	d.created_by, d.created_at, d.updated_at,
	dep.name AS department_name`

type DocumentRepositoryInterface interface {
	GetDocuments(ctx context.Context, limit, offset uint64) ([]entities.Document, uint64, error)
	FindDocument(ctx context.Context, id uint64) (*entities.Document, error)
	CreateDocument(ctx context.Context, createdBy uint64, dto dto.CreateDocumentDTO) (uint64, error)
	UpdateStatusInTx(ctx context.Context, tx pgx.Tx, id uint64, status string) error
	UpdateDepartmentInTx(ctx context.Context, tx pgx.Tx, id uint64, departmentID uint64) error
	CloseDocument(ctx context.Context, id uint64) error
	GetRegistry(ctx context.Context) ([]entities.Document, error)
}

type DocumentRepository struct {
	storage *pgxpool.Pool
}

func NewDocumentRepository(storage *pgxpool.Pool) DocumentRepositoryInterface {
	return &DocumentRepository{storage: storage}
}

func scanDocument(row pgx.Row) (*entities.Document, error) {
	var d entities.Document
	err := row.Scan(
		&d.ID, &d.Identifier, &d.FullName, &d.Channel, &d.RequestType,
		&d.DepartmentID, &d.Status, &d.Comment, &d.FilePath, &d.IsClosed,
		&d.CreatedBy, &d.CreatedAt, &d.UpdatedAt,
		&d.DepartmentName,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка сканирования document: %w", err)
	}
	return &d, nil
}

func (r *DocumentRepository) GetDocuments(ctx context.Context, limit, offset uint64) ([]entities.Document, uint64, error) {
	var total uint64
	if err := r.storage.QueryRow(ctx, `SELECT COUNT(*) FROM documents`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("ошибка подсчета документов: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM documents d
		LEFT JOIN departments dep ON d.department_id = dep.id
		ORDER BY d.created_at DESC
		LIMIT $1 OFFSET $2`, documentColumns)

	rows, err := r.storage.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	documents := make([]entities.Document, 0)
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, 0, err
		}
		documents = append(documents, *doc)
	}
	return documents, total, rows.Err()
}

func (r *DocumentRepository) FindDocument(ctx context.Context, id uint64) (*entities.Document, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM documents d
		LEFT JOIN departments dep ON d.department_id = dep.id
		WHERE d.id = $1`, documentColumns)
	return scanDocument(r.storage.QueryRow(ctx, query, id))
}

func (r *DocumentRepository) CreateDocument(ctx context.Context, createdBy uint64, dto dto.CreateDocumentDTO) (uint64, error) {
	status := dto.Status
	if status == "" {
		status = constants.StatusNew
	}

	var filePath *string
	if dto.FilePath != "" {
		filePath = &dto.FilePath
	}

	query := `
		INSERT INTO documents (identifier, full_name, channel, request_type, department_id, status, comment, file_path, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`

	var newID uint64
	err := r.storage.QueryRow(ctx, query,
		dto.Identifier, dto.FullName, dto.Channel, dto.RequestType,
		dto.DepartmentID, status, dto.Comment, filePath, createdBy,
	).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("ошибка создания документа: %w", err)
	}
	return newID, nil
}

// execUpdate выполняет апдейт через пул или транзакцию; ноль затронутых
// строк трактуется как отсутствие документа.
func (r *DocumentRepository) execUpdate(ctx context.Context, q querier, query string, args ...interface{}) error {
	result, err := q.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *DocumentRepository) UpdateStatusInTx(ctx context.Context, tx pgx.Tx, id uint64, status string) error {
	return r.execUpdate(ctx, tx, `UPDATE documents SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
}

func (r *DocumentRepository) UpdateDepartmentInTx(ctx context.Context, tx pgx.Tx, id uint64, departmentID uint64) error {
	return r.execUpdate(ctx, tx, `UPDATE documents SET department_id = $1, updated_at = NOW() WHERE id = $2`, departmentID, id)
}

// CloseDocument безусловно закрывает документ. Повторное закрытие —
// безвредный no-op-апдейт. Запись в историю здесь не делается.
func (r *DocumentRepository) CloseDocument(ctx context.Context, id uint64) error {
	return r.execUpdate(ctx, r.storage,
		`UPDATE documents SET is_closed = TRUE, status = $1, updated_at = NOW() WHERE id = $2`,
		constants.StatusClosed, id)
}

// GetRegistry отдаёт весь реестр документов для выгрузки в отчёт.
func (r *DocumentRepository) GetRegistry(ctx context.Context) ([]entities.Document, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM documents d
		LEFT JOIN departments dep ON d.department_id = dep.id
		ORDER BY d.created_at DESC`, documentColumns)

	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	documents := make([]entities.Document, 0)
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		documents = append(documents, *doc)
	}
	return documents, rows.Err()
}
