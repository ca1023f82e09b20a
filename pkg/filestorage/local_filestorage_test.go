package filestorage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndDelete(t *testing.T) {
	base := t.TempDir()
	storage, err := NewLocalFileStorage(base)
	require.NoError(t, err)

	path, err := storage.Save(strings.NewReader("содержимое"), "report.pdf", "documents")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, "documents/"))
	assert.True(t, strings.HasSuffix(path, ".pdf"))

	fullPath := filepath.Join(base, filepath.FromSlash(path))
	data, err := os.ReadFile(fullPath)
	require.NoError(t, err)
	assert.Equal(t, "содержимое", string(data))

	require.NoError(t, storage.Delete(path))
	_, err = os.Stat(fullPath)
	assert.True(t, os.IsNotExist(err))
}

func TestDeleteStripsURLPrefix(t *testing.T) {
	base := t.TempDir()
	storage, err := NewLocalFileStorage(base)
	require.NoError(t, err)

	path, err := storage.Save(strings.NewReader("x"), "a.txt", "documents")
	require.NoError(t, err)

	require.NoError(t, storage.Delete("/uploads/"+path))
	_, err = os.Stat(filepath.Join(base, filepath.FromSlash(path)))
	assert.True(t, os.IsNotExist(err))
}

func TestDeleteMissingFileIsNoop(t *testing.T) {
	storage, err := NewLocalFileStorage(t.TempDir())
	require.NoError(t, err)

	assert.NoError(t, storage.Delete("documents/2026/08/28/nope.pdf"))
}

func TestSaveGeneratesUniqueNames(t *testing.T) {
	storage, err := NewLocalFileStorage(t.TempDir())
	require.NoError(t, err)

	first, err := storage.Save(strings.NewReader("1"), "same.txt", "documents")
	require.NoError(t, err)
	second, err := storage.Save(strings.NewReader("2"), "same.txt", "documents")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
