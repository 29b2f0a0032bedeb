package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/evidence"
)

// EvidenceStore persists evidence photo bytes and mints their metadata
// records. Implementations enforce the upload limits (size, media type)
// before anything touches disk.
type EvidenceStore interface {
	// Store writes raw to the backing store and returns the unlinked file
	// record. Fails with evidence.ErrFileTooLarge or
	// evidence.ErrUnsupportedMediaType before writing anything.
	Store(ctx context.Context, raw []byte, mimeType string) (*evidence.File, error)

	// Remove deletes the stored bytes behind url. Used by the cleanup job
	// after the metadata row is gone.
	Remove(ctx context.Context, url string) error
}

// IDGenerator mints unique 64-bit identifiers for new rows and serials.
type IDGenerator interface {
	Next() (int64, error)
}
