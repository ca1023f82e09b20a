package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"document-system/internal/entities"
	apperrors "document-system/pkg/errors"
)

func newAttachmentServiceForTest() (*fakeDocumentRepo, *fakeAttachmentRepo, *fakeFileStorage, AttachmentServiceInterface) {
	documentRepo := newFakeDocumentRepo()
	attachmentRepo := newFakeAttachmentRepo()
	storage := &fakeFileStorage{}
	svc := NewAttachmentService(attachmentRepo, documentRepo, storage, zap.NewNop())
	return documentRepo, attachmentRepo, storage, svc
}

func TestUploadMissingFileRejected(t *testing.T) {
	documentRepo, attachmentRepo, storage, svc := newAttachmentServiceForTest()
	docID := documentRepo.add(entities.Document{Identifier: "AB-1"})

	res, err := svc.Upload(context.Background(), docID, testActorID, nil, "report.pdf", "application/pdf", 10)
	assert.Nil(t, res)

	var invalidInput *apperrors.InvalidInputError
	require.ErrorAs(t, err, &invalidInput)
	assert.Equal(t, "upload failed", invalidInput.Message)

	res, err = svc.Upload(context.Background(), docID, testActorID, strings.NewReader("data"), "", "application/pdf", 4)
	assert.Nil(t, res)
	require.ErrorAs(t, err, &invalidInput)
	assert.Equal(t, "upload failed", invalidInput.Message)

	assert.Empty(t, storage.saved)
	assert.Empty(t, attachmentRepo.attachments)
}

func TestUploadUnknownDocument(t *testing.T) {
	_, _, storage, svc := newAttachmentServiceForTest()

	res, err := svc.Upload(context.Background(), 99, testActorID, strings.NewReader("data"), "report.pdf", "application/pdf", 4)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Empty(t, storage.saved)
}

func TestUploadStoresFileAndRecord(t *testing.T) {
	documentRepo, attachmentRepo, storage, svc := newAttachmentServiceForTest()
	docID := documentRepo.add(entities.Document{Identifier: "AB-2"})

	res, err := svc.Upload(context.Background(), docID, testActorID, strings.NewReader("data"), "report.pdf", "application/pdf", 4)
	require.NoError(t, err)
	assert.Equal(t, docID, res.DocumentID)
	assert.Equal(t, "report.pdf", res.FileName)
	assert.Equal(t, "/uploads/documents/report.pdf", res.URL)
	assert.Equal(t, int64(4), res.FileSize)

	require.Len(t, storage.saved, 1)
	require.Len(t, attachmentRepo.attachments, 1)
}

func TestUploadCleansUpOrphanBlob(t *testing.T) {
	documentRepo, attachmentRepo, storage, svc := newAttachmentServiceForTest()
	attachmentRepo.createErr = errors.New("insert failed")
	docID := documentRepo.add(entities.Document{Identifier: "AB-3"})

	res, err := svc.Upload(context.Background(), docID, testActorID, strings.NewReader("data"), "report.pdf", "application/pdf", 4)
	assert.Nil(t, res)
	assert.Error(t, err)

	// Блоб сохранился, но запись не создана — файл должен быть подчищен.
	require.Len(t, storage.saved, 1)
	require.Len(t, storage.deleted, 1)
	assert.Equal(t, storage.saved[0], storage.deleted[0])
}

func TestDeleteAttachment(t *testing.T) {
	documentRepo, attachmentRepo, storage, svc := newAttachmentServiceForTest()
	docID := documentRepo.add(entities.Document{Identifier: "AB-4"})

	uploaded, err := svc.Upload(context.Background(), docID, testActorID, strings.NewReader("data"), "report.pdf", "application/pdf", 4)
	require.NoError(t, err)

	res, err := svc.Delete(context.Background(), uploaded.ID)
	require.NoError(t, err)
	assert.Equal(t, docID, res.DocumentID)
	assert.Empty(t, attachmentRepo.attachments)
	require.Len(t, storage.deleted, 1)

	_, err = svc.Delete(context.Background(), uploaded.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
