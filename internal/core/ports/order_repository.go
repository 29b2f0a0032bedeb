package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order entities.
type OrderRepository interface {
	// Add persists a new order.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its unique identifier.
	Get(ctx context.Context, id kernel.ID) (*order.Order, error)

	// GetBySN retrieves an order by its serial number.
	GetBySN(ctx context.Context, orderSN string) (*order.Order, error)

	// GetOwnedByShop retrieves the subset of ids that belong to shopID.
	// Used by package creation to reject foreign orders.
	GetOwnedByShop(ctx context.Context, shopID kernel.ID, ids []kernel.ID) ([]*order.Order, error)

	// GetLineItems retrieves the order's lines from the catalog. Package
	// creation snapshots them into package items.
	GetLineItems(ctx context.Context, orderID kernel.ID) ([]order.LineItem, error)
}
