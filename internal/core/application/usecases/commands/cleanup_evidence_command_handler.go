package commands

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/core/ports"
)

// CleanupEvidenceCommandHandler deletes unlinked evidence files whose
// retention window has passed. The metadata rows go first, in one
// transaction; the stored bytes are removed afterwards, so a crash in
// between leaves only orphaned bytes, never dangling rows.
type CleanupEvidenceCommandHandler struct {
	uowFactory EvidenceUoWFactory
	store      ports.EvidenceStore
}

// NewCleanupEvidenceCommandHandler creates a handler for evidence sweeps.
func NewCleanupEvidenceCommandHandler(
	uowFactory EvidenceUoWFactory,
	store ports.EvidenceStore,
) CleanupEvidenceCommandHandler {
	return CleanupEvidenceCommandHandler{uowFactory: uowFactory, store: store}
}

// Handle runs one sweep and returns how many files were deleted.
func (h CleanupEvidenceCommandHandler) Handle(
	ctx context.Context,
	command CleanupEvidenceCommand,
) (int, error) {
	if err := command.Validate(); err != nil {
		return 0, err
	}

	cutoff := time.Now().Add(-command.TTL())

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	evidenceRepo := uow.EvidenceRepository()

	expired, err := evidenceRepo.GetUnlinkedBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	if len(expired) == 0 {
		return 0, uow.Commit(ctx)
	}

	for _, file := range expired {
		if err = evidenceRepo.Delete(ctx, file.ID()); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	var removeErrs []error
	for _, file := range expired {
		if err = h.store.Remove(ctx, file.URL()); err != nil {
			removeErrs = append(removeErrs, err)
		}
	}

	return len(expired), errors.Join(removeErrs...)
}
