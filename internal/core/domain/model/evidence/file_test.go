package evidence_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/evidence"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustID(t *testing.T, v int64) kernel.ID {
	t.Helper()
	id, err := kernel.NewID(v)
	require.NoError(t, err)
	return id
}

func newTestFile(t *testing.T) *evidence.File {
	t.Helper()
	f, err := evidence.NewFile(
		mustID(t, 301), "/uploads/2026/09/photo.jpg", 120_000, "image/jpeg", time.Now())
	require.NoError(t, err)
	return f
}

func TestNewFile(t *testing.T) {
	t.Run("should create an unlinked file", func(t *testing.T) {
		f := newTestFile(t)

		assert.False(t, f.IsLinked())
		assert.IsType(t, evidence.Unlinked{}, f.Link())
		require.NoError(t, f.Validate())
	})

	t.Run("should reject a file over the size limit", func(t *testing.T) {
		_, err := evidence.NewFile(
			mustID(t, 301), "/uploads/big.png", evidence.MaxFileSize+1, "image/png", time.Now())

		require.ErrorIs(t, err, evidence.ErrFileTooLarge)
	})

	t.Run("should accept a file exactly at the size limit", func(t *testing.T) {
		_, err := evidence.NewFile(
			mustID(t, 301), "/uploads/full.png", evidence.MaxFileSize, "image/png", time.Now())

		require.NoError(t, err)
	})

	t.Run("should reject unsupported media types", func(t *testing.T) {
		for _, mime := range []string{"image/gif", "application/pdf", "text/plain", ""} {
			_, err := evidence.NewFile(
				mustID(t, 301), "/uploads/file", 1000, mime, time.Now())

			require.ErrorIs(t, err, evidence.ErrUnsupportedMediaType, "mime %q", mime)
		}
	})

	t.Run("should reject an empty or negative size", func(t *testing.T) {
		_, err := evidence.NewFile(
			mustID(t, 301), "/uploads/empty.jpg", 0, "image/jpeg", time.Now())

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestFile_LinkTo(t *testing.T) {
	t.Run("should link an unlinked file to an action", func(t *testing.T) {
		f := newTestFile(t)

		err := f.LinkTo(evidence.OrderActionLink{ActionID: mustID(t, 77)})

		require.NoError(t, err)
		assert.True(t, f.IsLinked())

		link, ok := f.Link().(evidence.OrderActionLink)
		require.True(t, ok)
		assert.True(t, link.ActionID.IsEqual(mustID(t, 77)))
	})

	t.Run("should overwrite a previous link", func(t *testing.T) {
		f := newTestFile(t)
		require.NoError(t, f.LinkTo(evidence.PackageLink{PackageID: mustID(t, 5)}))

		require.NoError(t, f.LinkTo(evidence.SkuLink{SkuID: mustID(t, 6)}))

		assert.IsType(t, evidence.SkuLink{}, f.Link())
	})

	t.Run("should reject a nil or unlinked target", func(t *testing.T) {
		f := newTestFile(t)

		require.Error(t, f.LinkTo(nil))
		require.Error(t, f.LinkTo(evidence.Unlinked{}))
		assert.False(t, f.IsLinked())
	})
}

func TestRestoreFile(t *testing.T) {
	t.Run("should restore a linked file", func(t *testing.T) {
		f, err := evidence.RestoreFile(
			mustID(t, 301), "/uploads/photo.jpg", 1000, "image/jpeg",
			evidence.OrderActionLink{ActionID: mustID(t, 77)}, time.Now())

		require.NoError(t, err)
		assert.True(t, f.IsLinked())
	})

	t.Run("should normalize a nil link to Unlinked", func(t *testing.T) {
		f, err := evidence.RestoreFile(
			mustID(t, 301), "/uploads/photo.jpg", 1000, "image/jpeg", nil, time.Now())

		require.NoError(t, err)
		assert.False(t, f.IsLinked())
	})
}
