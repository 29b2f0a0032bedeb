package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/evidence"
	"fulfillment/internal/core/ports"
)

// UploadEvidenceCommandHandler stores a photo and records its metadata.
// The bytes go to the store first; if the metadata insert fails the
// stored bytes are removed again, so the two never drift apart.
type UploadEvidenceCommandHandler struct {
	uowFactory EvidenceUoWFactory
	store      ports.EvidenceStore
}

// NewUploadEvidenceCommandHandler creates a handler for photo uploads.
func NewUploadEvidenceCommandHandler(
	uowFactory EvidenceUoWFactory,
	store ports.EvidenceStore,
) UploadEvidenceCommandHandler {
	return UploadEvidenceCommandHandler{uowFactory: uowFactory, store: store}
}

// Handle processes the upload and returns the unlinked file record.
func (h UploadEvidenceCommandHandler) Handle(
	ctx context.Context,
	command UploadEvidenceCommand,
) (*evidence.File, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	file, err := h.store.Store(ctx, command.Raw(), command.MimeType())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		_ = h.store.Remove(ctx, file.URL())
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.EvidenceRepository().Add(ctx, file); err != nil {
		_ = h.store.Remove(ctx, file.URL())
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		_ = h.store.Remove(ctx, file.URL())
		return nil, err
	}

	return file, nil
}
