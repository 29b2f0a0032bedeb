package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/directory"
	"fulfillment/internal/core/domain/model/kernel"
)

// DirectoryRepository resolves drivers and warehouses. The fulfillment
// core only reads these; their lifecycle is owned elsewhere.
type DirectoryRepository interface {
	// GetDriver retrieves a driver profile by id.
	GetDriver(ctx context.Context, id kernel.ID) (*directory.Driver, error)

	// GetWarehouse retrieves a warehouse record by id.
	GetWarehouse(ctx context.Context, id kernel.ID) (*directory.Warehouse, error)
}
