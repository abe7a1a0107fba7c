package filestorage

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveOpenDeleteRoundTrip(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	storedName, err := storage.Save(strings.NewReader("pdf bytes"), "thesis.pdf")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(storedName, ".pdf"))
	// The stored name never leaks the original filename.
	assert.NotContains(t, storedName, "thesis")

	reader, err := storage.Open(storedName)
	require.NoError(t, err)
	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	require.NoError(t, reader.Close())
	assert.Equal(t, "pdf bytes", string(data))

	require.NoError(t, storage.Delete(storedName))
	_, err = storage.Open(storedName)
	assert.Error(t, err)
}

func TestSaveNilReader(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	_, err = storage.Save(nil, "thesis.pdf")
	assert.Error(t, err)
}

func TestDeleteMissingFileIsNoError(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	assert.NoError(t, storage.Delete("does-not-exist.pdf"))
	assert.NoError(t, storage.Delete(""))
}

func TestSaveDistinctNamesForSameFilename(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	first, err := storage.Save(strings.NewReader("v1"), "thesis.pdf")
	require.NoError(t, err)
	second, err := storage.Save(strings.NewReader("v2"), "thesis.pdf")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}
