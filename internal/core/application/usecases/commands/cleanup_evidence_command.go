package commands

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var ErrCleanupEvidenceCommandIsNotConstructed = errors.New(
	"CleanupEvidenceCommand must be created via NewCleanupEvidenceCommand constructor",
)

// CleanupEvidenceCommand represents a sweep of evidence photos that were
// uploaded but never attached to anything. Files younger than the TTL
// are left alone; their upload may still be mid-flight.
type CleanupEvidenceCommand struct {
	ttl time.Duration

	guard kernel.ConstructorGuard
}

// NewCleanupEvidenceCommand creates a cleanup command with the given
// retention window.
func NewCleanupEvidenceCommand(ttl time.Duration) (CleanupEvidenceCommand, error) {
	if ttl <= 0 {
		return CleanupEvidenceCommand{}, errs.NewValueIsInvalidError("ttl")
	}

	return CleanupEvidenceCommand{
		ttl:   ttl,
		guard: kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CleanupEvidenceCommand) Validate() error {
	return c.guard.Validate(ErrCleanupEvidenceCommandIsNotConstructed)
}

// TTL returns how long an unlinked file is retained.
func (c CleanupEvidenceCommand) TTL() time.Duration {
	return c.ttl
}
