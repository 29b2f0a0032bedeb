// Package filestore keeps evidence photo bytes on the local filesystem.
// Metadata lives in postgres; this store only owns the raw files and the
// URLs that point at them.
package filestore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/evidence"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
)

const dirPermissions = 0o755

const filePermissions = 0o644

// LocalEvidenceStore writes evidence photos under a root directory and
// returns URLs relative to it. Filenames are random, so two uploads of
// the same photo never collide.
type LocalEvidenceStore struct {
	root string
	gen  ports.IDGenerator
}

// NewLocalEvidenceStore creates a store rooted at root. The directory is
// created if missing.
func NewLocalEvidenceStore(root string, gen ports.IDGenerator) (*LocalEvidenceStore, error) {
	if root == "" {
		return nil, errs.NewValueIsRequiredError("root")
	}
	if gen == nil {
		return nil, errs.NewValueIsRequiredError("gen")
	}
	if err := os.MkdirAll(root, dirPermissions); err != nil {
		return nil, fmt.Errorf("create evidence root: %w", err)
	}

	return &LocalEvidenceStore{root: root, gen: gen}, nil
}

// Store validates the upload, writes the bytes, and returns the unlinked
// file record. Nothing touches disk when validation fails.
func (s *LocalEvidenceStore) Store(
	_ context.Context,
	raw []byte,
	mimeType string,
) (*evidence.File, error) {
	if len(raw) == 0 {
		return nil, errs.NewValueIsRequiredError("raw")
	}
	if int64(len(raw)) > evidence.MaxFileSize {
		return nil, evidence.ErrFileTooLarge
	}
	if !evidence.AllowedMediaType(mimeType) {
		return nil, evidence.ErrUnsupportedMediaType
	}

	rawID, err := s.gen.Next()
	if err != nil {
		return nil, err
	}
	id, err := kernel.NewID(rawID)
	if err != nil {
		return nil, err
	}

	url := uuid.NewString() + extensionFor(mimeType)
	path := filepath.Join(s.root, url)

	if err = os.WriteFile(path, raw, filePermissions); err != nil {
		return nil, fmt.Errorf("write evidence file: %w", err)
	}

	file, err := evidence.NewFile(id, url, int64(len(raw)), mimeType, time.Now())
	if err != nil {
		_ = os.Remove(path)
		return nil, err
	}

	return file, nil
}

// Remove deletes the bytes behind url. A url that already vanished is
// not an error; the cleanup job may retry after a partial run.
func (s *LocalEvidenceStore) Remove(_ context.Context, url string) error {
	clean := filepath.Clean(url)
	if clean == "" || strings.Contains(clean, "..") || filepath.IsAbs(clean) {
		return errs.NewValueIsInvalidError("url")
	}

	err := os.Remove(filepath.Join(s.root, clean))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove evidence file: %w", err)
	}
	return nil
}

func extensionFor(mimeType string) string {
	if mimeType == "image/png" {
		return ".png"
	}
	return ".jpg"
}
