package services

import (
	"context"

	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"document-system/internal/dto"
	"document-system/internal/entities"
	"document-system/internal/repositories"
	"document-system/pkg/constants"
)

const dateTimeLayout = "2006-01-02 15:04:05"

type DocumentServiceInterface interface {
	GetDocuments(ctx context.Context, limit, offset uint64) ([]dto.DocumentDTO, uint64, error)
	FindDocument(ctx context.Context, id uint64) (*dto.DocumentDTO, error)
	CreateDocument(ctx context.Context, actorID uint64, documentData dto.CreateDocumentDTO) (uint64, error)
	ChangeStatus(ctx context.Context, documentID uint64, newStatus string, actorID uint64) (*dto.TransitionResultDTO, error)
	ChangeDepartment(ctx context.Context, documentID uint64, newDepartmentID uint64, actorID uint64) (*dto.TransitionResultDTO, error)
	CloseDocument(ctx context.Context, documentID uint64) error
}

type DocumentService struct {
	documentRepo   repositories.DocumentRepositoryInterface
	departmentRepo repositories.DepartmentRepositoryInterface
	historyRepo    repositories.DocumentHistoryRepositoryInterface
	txManager      repositories.TxManagerInterface
	logger         *zap.Logger
}

func NewDocumentService(
	documentRepo repositories.DocumentRepositoryInterface,
	departmentRepo repositories.DepartmentRepositoryInterface,
	historyRepo repositories.DocumentHistoryRepositoryInterface,
	txManager repositories.TxManagerInterface,
	logger *zap.Logger,
) DocumentServiceInterface {
	return &DocumentService{
		documentRepo:   documentRepo,
		departmentRepo: departmentRepo,
		historyRepo:    historyRepo,
		txManager:      txManager,
		logger:         logger,
	}
}

// auditedTransition — одна охраняемая смена поля документа. Статус и
// департамент отличаются только подписью поля, проверкой "то же значение"
// и форматом отображаемых значений, поэтому обе операции сведены к ней.
type auditedTransition struct {
	field    string
	oldValue string
	newValue string
	apply    func(ctx context.Context, tx pgx.Tx) error
}

// commitTransition применяет изменение и пишет ровно одну запись аудита
// в одной транзакции. Без закоммиченного изменения записи в истории нет.
func (s *DocumentService) commitTransition(ctx context.Context, documentID, actorID uint64, t auditedTransition) (*dto.TransitionResultDTO, error) {
	err := s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		if err := t.apply(ctx, tx); err != nil {
			return err
		}
		return s.historyRepo.CreateInTx(ctx, tx, &entities.DocumentHistory{
			DocumentID: documentID,
			UserID:     null.IntFrom(int(actorID)),
			FieldName:  t.field,
			OldValue:   t.oldValue,
			NewValue:   t.newValue,
		})
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("изменение документа принято",
		zap.Uint64("documentID", documentID),
		zap.String("field", t.field),
		zap.String("old", t.oldValue),
		zap.String("new", t.newValue),
		zap.Uint64("actorID", actorID),
	)

	return &dto.TransitionResultDTO{
		Accepted: true,
		OldValue: t.oldValue,
		NewValue: t.newValue,
	}, nil
}

func rejected(reason string) *dto.TransitionResultDTO {
	return &dto.TransitionResultDTO{Accepted: false, Reason: reason}
}

func (s *DocumentService) ChangeStatus(ctx context.Context, documentID uint64, newStatus string, actorID uint64) (*dto.TransitionResultDTO, error) {
	document, err := s.documentRepo.FindDocument(ctx, documentID)
	if err != nil {
		return nil, err
	}

	// Порядок проверок: закрыт -> пустой -> вне словаря -> совпадает с текущим.
	// Любой отказ — no-op без записи в БД.
	if document.IsClosed || newStatus == "" || !constants.IsValidStatus(newStatus) || newStatus == document.Status {
		return rejected("status unchanged"), nil
	}

	return s.commitTransition(ctx, documentID, actorID, auditedTransition{
		field:    constants.HistoryFieldStatus,
		oldValue: constants.StatusLabel(document.Status),
		newValue: constants.StatusLabel(newStatus),
		apply: func(ctx context.Context, tx pgx.Tx) error {
			return s.documentRepo.UpdateStatusInTx(ctx, tx, documentID, newStatus)
		},
	})
}

func (s *DocumentService) ChangeDepartment(ctx context.Context, documentID uint64, newDepartmentID uint64, actorID uint64) (*dto.TransitionResultDTO, error) {
	document, err := s.documentRepo.FindDocument(ctx, documentID)
	if err != nil {
		return nil, err
	}

	sameDepartment := document.DepartmentID.Valid && uint64(document.DepartmentID.Int) == newDepartmentID
	if document.IsClosed || newDepartmentID == 0 || sameDepartment {
		return rejected("department unchanged"), nil
	}

	newDepartment, err := s.departmentRepo.FindDepartment(ctx, newDepartmentID)
	if err != nil {
		return nil, err
	}

	oldName := constants.UnassignedLabel
	if document.DepartmentName.Valid {
		oldName = document.DepartmentName.String
	}

	return s.commitTransition(ctx, documentID, actorID, auditedTransition{
		field:    constants.HistoryFieldDepartment,
		oldValue: oldName,
		newValue: newDepartment.Name,
		apply: func(ctx context.Context, tx pgx.Tx) error {
			return s.documentRepo.UpdateDepartmentInTx(ctx, tx, documentID, newDepartmentID)
		},
	})
}

// CloseDocument закрывает документ безусловно и идемпотентно. Запись в
// историю при закрытии не делается — так ведёт себя исходная система.
func (s *DocumentService) CloseDocument(ctx context.Context, documentID uint64) error {
	return s.documentRepo.CloseDocument(ctx, documentID)
}

func (s *DocumentService) CreateDocument(ctx context.Context, actorID uint64, documentData dto.CreateDocumentDTO) (uint64, error) {
	newID, err := s.documentRepo.CreateDocument(ctx, actorID, documentData)
	if err != nil {
		return 0, err
	}
	s.logger.Info("создан документ", zap.Uint64("documentID", newID), zap.Uint64("actorID", actorID))
	return newID, nil
}

func (s *DocumentService) GetDocuments(ctx context.Context, limit, offset uint64) ([]dto.DocumentDTO, uint64, error) {
	documents, total, err := s.documentRepo.GetDocuments(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	dtos := make([]dto.DocumentDTO, len(documents))
	for i, document := range documents {
		dtos[i] = toDocumentDTO(document)
	}
	return dtos, total, nil
}

func (s *DocumentService) FindDocument(ctx context.Context, id uint64) (*dto.DocumentDTO, error) {
	document, err := s.documentRepo.FindDocument(ctx, id)
	if err != nil {
		return nil, err
	}
	result := toDocumentDTO(*document)
	return &result, nil
}

func toDocumentDTO(document entities.Document) dto.DocumentDTO {
	result := dto.DocumentDTO{
		ID:               document.ID,
		Identifier:       document.Identifier,
		FullName:         document.FullName,
		Channel:          document.Channel,
		ChannelLabel:     constants.ChannelLabel(document.Channel),
		RequestType:      document.RequestType,
		RequestTypeLabel: constants.RequestTypeLabel(document.RequestType),
		Status:           document.Status,
		StatusLabel:      constants.StatusLabel(document.Status),
		Comment:          document.Comment,
		FilePath:         document.FilePath.String,
		IsClosed:         document.IsClosed,
		CreatedAt:        document.CreatedAt.Local().Format(dateTimeLayout),
		UpdatedAt:        document.UpdatedAt.Local().Format(dateTimeLayout),
	}
	if document.DepartmentID.Valid {
		result.Department = &dto.ShortDepartmentDTO{
			ID:   uint64(document.DepartmentID.Int),
			Name: document.DepartmentName.String,
		}
	}
	return result
}
