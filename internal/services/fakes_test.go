package services

import (
	"context"
	"errors"
	"io"
	"sort"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"

	"document-system/internal/dto"
	"document-system/internal/entities"
	"document-system/pkg/constants"
	apperrors "document-system/pkg/errors"
)

// Фейки репозиториев для юнит-тестов сервисного слоя. Хранят всё в памяти
// и повторяют контрактное поведение настоящих репозиториев (ErrNotFound и т.д.).

type fakeTxManager struct {
	calls int
}

func (m *fakeTxManager) RunInTransaction(ctx context.Context, fn func(tx pgx.Tx) error) error {
	m.calls++
	return fn(nil)
}

type fakeDocumentRepo struct {
	documents map[uint64]*entities.Document
	deptNames map[uint64]string
	nextID    uint64
}

func newFakeDocumentRepo() *fakeDocumentRepo {
	return &fakeDocumentRepo{
		documents: make(map[uint64]*entities.Document),
		deptNames: make(map[uint64]string),
		nextID:    1,
	}
}

func (r *fakeDocumentRepo) add(doc entities.Document) uint64 {
	id := r.nextID
	r.nextID++
	doc.ID = id
	if doc.Status == "" {
		doc.Status = constants.StatusNew
	}
	now := time.Now()
	doc.CreatedAt = now
	doc.UpdatedAt = now
	r.documents[id] = &doc
	return id
}

func (r *fakeDocumentRepo) GetDocuments(ctx context.Context, limit, offset uint64) ([]entities.Document, uint64, error) {
	all, _ := r.GetRegistry(ctx)
	return all, uint64(len(all)), nil
}

func (r *fakeDocumentRepo) FindDocument(ctx context.Context, id uint64) (*entities.Document, error) {
	doc, ok := r.documents[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	copied := *doc
	return &copied, nil
}

func (r *fakeDocumentRepo) CreateDocument(ctx context.Context, createdBy uint64, d dto.CreateDocumentDTO) (uint64, error) {
	doc := entities.Document{
		Identifier:  d.Identifier,
		FullName:    d.FullName,
		Channel:     d.Channel,
		RequestType: d.RequestType,
		Status:      d.Status,
		Comment:     d.Comment,
		CreatedBy:   null.IntFrom(int(createdBy)),
	}
	if d.DepartmentID != nil {
		doc.DepartmentID = null.IntFrom(int(*d.DepartmentID))
		doc.DepartmentName = null.StringFrom(r.deptNames[*d.DepartmentID])
	}
	if d.FilePath != "" {
		doc.FilePath = null.StringFrom(d.FilePath)
	}
	return r.add(doc), nil
}

func (r *fakeDocumentRepo) UpdateStatusInTx(ctx context.Context, tx pgx.Tx, id uint64, status string) error {
	doc, ok := r.documents[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	doc.Status = status
	doc.UpdatedAt = time.Now()
	return nil
}

func (r *fakeDocumentRepo) UpdateDepartmentInTx(ctx context.Context, tx pgx.Tx, id uint64, departmentID uint64) error {
	doc, ok := r.documents[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	doc.DepartmentID = null.IntFrom(int(departmentID))
	doc.DepartmentName = null.StringFrom(r.deptNames[departmentID])
	doc.UpdatedAt = time.Now()
	return nil
}

func (r *fakeDocumentRepo) CloseDocument(ctx context.Context, id uint64) error {
	doc, ok := r.documents[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	doc.IsClosed = true
	doc.Status = constants.StatusClosed
	doc.UpdatedAt = time.Now()
	return nil
}

func (r *fakeDocumentRepo) GetRegistry(ctx context.Context) ([]entities.Document, error) {
	ids := make([]uint64, 0, len(r.documents))
	for id := range r.documents {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	documents := make([]entities.Document, 0, len(ids))
	for _, id := range ids {
		documents = append(documents, *r.documents[id])
	}
	return documents, nil
}

type fakeDepartmentRepo struct {
	departments map[uint64]entities.Department
	findCalls   int
}

func newFakeDepartmentRepo() *fakeDepartmentRepo {
	return &fakeDepartmentRepo{departments: make(map[uint64]entities.Department)}
}

func (r *fakeDepartmentRepo) add(id uint64, name string) {
	now := time.Now()
	r.departments[id] = entities.Department{ID: id, Name: name, CreatedAt: now, UpdatedAt: now}
}

func (r *fakeDepartmentRepo) GetDepartments(ctx context.Context, limit, offset uint64) ([]entities.Department, uint64, error) {
	list := make([]entities.Department, 0, len(r.departments))
	for _, d := range r.departments {
		list = append(list, d)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, uint64(len(list)), nil
}

func (r *fakeDepartmentRepo) FindDepartment(ctx context.Context, id uint64) (*entities.Department, error) {
	r.findCalls++
	d, ok := r.departments[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &d, nil
}

func (r *fakeDepartmentRepo) CreateDepartment(ctx context.Context, department entities.Department) (*entities.Department, error) {
	id := uint64(len(r.departments) + 1)
	r.add(id, department.Name)
	d := r.departments[id]
	return &d, nil
}

func (r *fakeDepartmentRepo) UpdateDepartment(ctx context.Context, id uint64, d dto.UpdateDepartmentDTO) (*entities.Department, error) {
	dep, ok := r.departments[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	if d.Name != nil {
		dep.Name = *d.Name
	}
	dep.UpdatedAt = time.Now()
	r.departments[id] = dep
	return &dep, nil
}

func (r *fakeDepartmentRepo) DeleteDepartment(ctx context.Context, id uint64) error {
	if _, ok := r.departments[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.departments, id)
	return nil
}

type fakeHistoryRepo struct {
	entries []entities.DocumentHistory
	failOn  string // имя поля, на котором CreateInTx вернет ошибку
}

var errHistoryWriteFailed = errors.New("history write failed")

func (r *fakeHistoryRepo) CreateInTx(ctx context.Context, tx pgx.Tx, history *entities.DocumentHistory) error {
	if r.failOn != "" && history.FieldName == r.failOn {
		return errHistoryWriteFailed
	}
	history.ID = uint64(len(r.entries) + 1)
	history.CreatedAt = time.Now()
	r.entries = append(r.entries, *history)
	return nil
}

func (r *fakeHistoryRepo) FindAllByDocumentID(ctx context.Context, documentID uint64) ([]entities.DocumentHistory, error) {
	result := make([]entities.DocumentHistory, 0)
	for i := len(r.entries) - 1; i >= 0; i-- {
		if r.entries[i].DocumentID == documentID {
			result = append(result, r.entries[i])
		}
	}
	return result, nil
}

type fakeCommentRepo struct {
	comments []entities.DocumentComment
}

func (r *fakeCommentRepo) CreateComment(ctx context.Context, documentID, authorID uint64, text string) (uint64, error) {
	id := uint64(len(r.comments) + 1)
	r.comments = append(r.comments, entities.DocumentComment{
		ID:         id,
		DocumentID: documentID,
		UserID:     null.IntFrom(int(authorID)),
		Text:       text,
		CreatedAt:  time.Now(),
		AuthorFio:  null.StringFrom("Оператор"),
	})
	return id, nil
}

func (r *fakeCommentRepo) FindAllByDocumentID(ctx context.Context, documentID uint64) ([]entities.DocumentComment, error) {
	result := make([]entities.DocumentComment, 0)
	for i := len(r.comments) - 1; i >= 0; i-- {
		if r.comments[i].DocumentID == documentID {
			result = append(result, r.comments[i])
		}
	}
	return result, nil
}

type fakeAttachmentRepo struct {
	attachments map[uint64]entities.Attachment
	nextID      uint64
	createErr   error
}

func newFakeAttachmentRepo() *fakeAttachmentRepo {
	return &fakeAttachmentRepo{attachments: make(map[uint64]entities.Attachment), nextID: 1}
}

func (r *fakeAttachmentRepo) Create(ctx context.Context, attachment *entities.Attachment) (uint64, error) {
	if r.createErr != nil {
		return 0, r.createErr
	}
	id := r.nextID
	r.nextID++
	attachment.ID = id
	attachment.CreatedAt = time.Now()
	r.attachments[id] = *attachment
	return id, nil
}

func (r *fakeAttachmentRepo) FindAllByDocumentID(ctx context.Context, documentID uint64) ([]entities.Attachment, error) {
	result := make([]entities.Attachment, 0)
	for _, a := range r.attachments {
		if a.DocumentID == documentID {
			result = append(result, a)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *fakeAttachmentRepo) FindByID(ctx context.Context, id uint64) (*entities.Attachment, error) {
	a, ok := r.attachments[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &a, nil
}

func (r *fakeAttachmentRepo) DeleteAttachment(ctx context.Context, id uint64) error {
	if _, ok := r.attachments[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.attachments, id)
	return nil
}

type fakeFileStorage struct {
	saved   []string
	deleted []string
	saveErr error
}

func (s *fakeFileStorage) Save(file io.Reader, originalFileName string, prefix string) (string, error) {
	if s.saveErr != nil {
		return "", s.saveErr
	}
	path := prefix + "/" + originalFileName
	s.saved = append(s.saved, path)
	return path, nil
}

func (s *fakeFileStorage) Delete(filePath string) error {
	s.deleted = append(s.deleted, filePath)
	return nil
}

func newCreateDocumentDTO(identifier string) dto.CreateDocumentDTO {
	return dto.CreateDocumentDTO{
		Identifier:  identifier,
		FullName:    "Тестовий Клієнт",
		Channel:     constants.ChannelPhone,
		RequestType: constants.RequestTypeQuestion,
	}
}

var errCacheMiss = errors.New("cache: key not found")

type fakeCacheRepo struct {
	values map[string]string
	sets   int
	dels   int
}

func newFakeCacheRepo() *fakeCacheRepo {
	return &fakeCacheRepo{values: make(map[string]string)}
}

func (c *fakeCacheRepo) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	c.sets++
	switch v := value.(type) {
	case string:
		c.values[key] = v
	case []byte:
		c.values[key] = string(v)
	}
	return nil
}

func (c *fakeCacheRepo) Get(ctx context.Context, key string) (string, error) {
	v, ok := c.values[key]
	if !ok {
		return "", errCacheMiss
	}
	return v, nil
}

func (c *fakeCacheRepo) Del(ctx context.Context, keys ...string) error {
	c.dels++
	for _, k := range keys {
		delete(c.values, k)
	}
	return nil
}
