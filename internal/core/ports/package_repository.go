package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/prep"
)

// PackageRepository defines the persistence contract for prepare-goods
// package aggregates.
type PackageRepository interface {
	// Add persists a new package with its item snapshots.
	Add(ctx context.Context, aggregate *prep.Package) error

	// Update persists changes to an existing package.
	Update(ctx context.Context, aggregate *prep.Package) error

	// GetBySN retrieves a package by its serial number.
	GetBySN(ctx context.Context, prepareSN string) (*prep.Package, error)

	// GetActiveByOrder retrieves the non-complete package containing
	// orderID, or an ObjectNotFoundError when the order is unbatched.
	GetActiveByOrder(ctx context.Context, orderID kernel.ID) (*prep.Package, error)

	// ExistsActiveForOrders reports whether any of ids already belongs to a
	// non-complete package. Used to enforce one active package per order.
	ExistsActiveForOrders(ctx context.Context, ids []kernel.ID) (bool, error)

	// Claim atomically assigns driverID to the unclaimed package with the
	// given serial. It reports false when the package exists but another
	// driver already holds it.
	Claim(ctx context.Context, prepareSN string, driverID kernel.ID) (bool, error)
}
