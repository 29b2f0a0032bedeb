package ports

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/evidence"
	"fulfillment/internal/core/domain/model/kernel"
)

// EvidenceRepository defines the persistence contract for evidence file
// records. The bytes themselves live in the evidence store; this
// repository tracks metadata and link state.
type EvidenceRepository interface {
	// Add persists a new file record.
	Add(ctx context.Context, file *evidence.File) error

	// Update persists link-state changes to an existing record.
	Update(ctx context.Context, file *evidence.File) error

	// Get retrieves a file record by its unique identifier.
	Get(ctx context.Context, id kernel.ID) (*evidence.File, error)

	// GetMany retrieves the records for ids, failing if any is missing.
	GetMany(ctx context.Context, ids []kernel.ID) ([]*evidence.File, error)

	// GetUnlinkedBefore retrieves unlinked records uploaded before cutoff.
	// Used by the cleanup job.
	GetUnlinkedBefore(ctx context.Context, cutoff time.Time) ([]*evidence.File, error)

	// Delete removes a file record.
	Delete(ctx context.Context, id kernel.ID) error
}
