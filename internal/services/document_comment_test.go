package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"document-system/internal/entities"
	apperrors "document-system/pkg/errors"
)

func newCommentServiceForTest() (*fakeDocumentRepo, *fakeCommentRepo, DocumentCommentServiceInterface) {
	documentRepo := newFakeDocumentRepo()
	commentRepo := &fakeCommentRepo{}
	svc := NewDocumentCommentService(commentRepo, documentRepo, zap.NewNop())
	return documentRepo, commentRepo, svc
}

func TestAddCommentEmptyRejected(t *testing.T) {
	documentRepo, commentRepo, svc := newCommentServiceForTest()
	docID := documentRepo.add(entities.Document{Identifier: "AB-1"})

	for _, text := range []string{"", "   ", "\t\n"} {
		res, err := svc.AddComment(context.Background(), docID, testActorID, text)
		assert.Nil(t, res)

		var invalidInput *apperrors.InvalidInputError
		require.ErrorAs(t, err, &invalidInput)
		assert.Equal(t, "comment cannot be empty", invalidInput.Message)
	}

	assert.Empty(t, commentRepo.comments)
}

func TestAddCommentUnknownDocument(t *testing.T) {
	_, commentRepo, svc := newCommentServiceForTest()

	res, err := svc.AddComment(context.Background(), 99, testActorID, "Hello")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Empty(t, commentRepo.comments)
}

func TestAddCommentReturnsUpdatedList(t *testing.T) {
	documentRepo, _, svc := newCommentServiceForTest()
	docID := documentRepo.add(entities.Document{Identifier: "AB-2"})

	list, err := svc.AddComment(context.Background(), docID, testActorID, "Hello")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Hello", list[0].Text)
	assert.Equal(t, docID, list[0].DocumentID)
	assert.Equal(t, "Оператор", list[0].AuthorFio)

	// Текст сохраняется как есть, включая внутренние пробелы.
	list, err = svc.AddComment(context.Background(), docID, testActorID, "  с пробелами  ")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "  с пробелами  ", list[0].Text)
}

func TestListCommentsNewestFirst(t *testing.T) {
	documentRepo, _, svc := newCommentServiceForTest()
	docID := documentRepo.add(entities.Document{Identifier: "AB-3"})

	_, err := svc.AddComment(context.Background(), docID, testActorID, "первый")
	require.NoError(t, err)
	_, err = svc.AddComment(context.Background(), docID, testActorID, "второй")
	require.NoError(t, err)

	list, err := svc.ListComments(context.Background(), docID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "второй", list[0].Text)
	assert.Equal(t, "первый", list[1].Text)
}
