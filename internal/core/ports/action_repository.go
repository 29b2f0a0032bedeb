package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/action"
	"fulfillment/internal/core/domain/model/kernel"
)

// ActionRepository defines the persistence contract for the append-only
// audit trail. There is no update: actions are immutable once written.
type ActionRepository interface {
	// Add appends a new action to the trail.
	Add(ctx context.Context, aggregate *action.Action) error

	// Get retrieves an action by its unique identifier.
	Get(ctx context.Context, id kernel.ID) (*action.Action, error)
}
