package filestore_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fulfillment/internal/adapters/out/filestore"
	"fulfillment/internal/core/domain/model/evidence"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubIDGenerator struct {
	last int64
}

func (g *stubIDGenerator) Next() (int64, error) {
	g.last++
	return g.last, nil
}

func newTestStore(t *testing.T) (*filestore.LocalEvidenceStore, string) {
	t.Helper()
	root := t.TempDir()
	store, err := filestore.NewLocalEvidenceStore(root, &stubIDGenerator{})
	require.NoError(t, err)
	return store, root
}

func TestNewLocalEvidenceStore_BlankRoot(t *testing.T) {
	_, err := filestore.NewLocalEvidenceStore("", &stubIDGenerator{})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestStore_WritesFileAndMintsRecord(t *testing.T) {
	store, root := newTestStore(t)

	raw := []byte("jpeg bytes")
	file, err := store.Store(t.Context(), raw, "image/jpeg")
	require.NoError(t, err)

	assert.False(t, file.IsLinked())
	assert.Equal(t, int64(len(raw)), file.Size())
	assert.Equal(t, "image/jpeg", file.MimeType())
	assert.True(t, strings.HasSuffix(file.URL(), ".jpg"))

	written, err := os.ReadFile(filepath.Join(root, file.URL()))
	require.NoError(t, err)
	assert.Equal(t, raw, written)
}

func TestStore_PNGGetsPNGExtension(t *testing.T) {
	store, _ := newTestStore(t)

	file, err := store.Store(t.Context(), []byte("png bytes"), "image/png")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(file.URL(), ".png"))
}

func TestStore_RejectsOversizedUpload(t *testing.T) {
	store, root := newTestStore(t)

	raw := make([]byte, evidence.MaxFileSize+1)
	_, err := store.Store(t.Context(), raw, "image/jpeg")
	require.Error(t, err)
	assert.ErrorIs(t, err, evidence.ErrFileTooLarge)

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestStore_RejectsUnsupportedMediaType(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Store(t.Context(), []byte("<svg/>"), "image/svg+xml")
	require.Error(t, err)
	assert.ErrorIs(t, err, evidence.ErrUnsupportedMediaType)
}

func TestStore_RejectsEmptyUpload(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Store(t.Context(), nil, "image/jpeg")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestRemove_DeletesFile(t *testing.T) {
	store, root := newTestStore(t)

	file, err := store.Store(t.Context(), []byte("jpeg bytes"), "image/jpeg")
	require.NoError(t, err)

	require.NoError(t, store.Remove(t.Context(), file.URL()))

	_, err = os.Stat(filepath.Join(root, file.URL()))
	assert.True(t, os.IsNotExist(err))
}

func TestRemove_MissingFileIsNotAnError(t *testing.T) {
	store, _ := newTestStore(t)

	err := store.Remove(t.Context(), "gone.jpg")
	require.NoError(t, err)
}

func TestRemove_RejectsTraversal(t *testing.T) {
	store, _ := newTestStore(t)

	err := store.Remove(t.Context(), "../outside.jpg")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
