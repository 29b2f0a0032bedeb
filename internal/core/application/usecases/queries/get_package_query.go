// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases and bypass
// the aggregates entirely.
package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/prep"
	"fulfillment/internal/pkg/errs"
)

var ErrGetPackageQueryIsNotConstructed = errors.New(
	"GetPackageQuery must be created via NewGetPackageQuery constructor",
)

// GetPackageQuery retrieves a single package by its prepare serial,
// with line items and the assigned driver and warehouse resolved.
//
// Example:
//
//	query, err := NewGetPackageQuery("PREP1756711800000")
//	if err != nil {
//	    return err
//	}
//
//	pkg, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get package: %w", err)
//	}
//
//	fmt.Printf("Package %s holds %d items\n", pkg.PrepareSN, len(pkg.Items))
type GetPackageQuery struct {
	prepareSN string

	guard kernel.ConstructorGuard
}

// NewGetPackageQuery creates a query for a single package lookup.
func NewGetPackageQuery(prepareSN string) (GetPackageQuery, error) {
	if prepareSN == "" {
		return GetPackageQuery{}, errs.NewValueIsRequiredError("prepareSN")
	}

	return GetPackageQuery{
		prepareSN: prepareSN,
		guard:     kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPackageQuery) Validate() error {
	return q.guard.Validate(ErrGetPackageQueryIsNotConstructed)
}

// PrepareSN returns the package serial to look up.
func (q GetPackageQuery) PrepareSN() string {
	return q.prepareSN
}

// GetPackageQueryResponse is the package read model. Driver and
// Warehouse are nil when nothing is assigned.
type GetPackageQueryResponse struct {
	ID          kernel.ID
	PrepareSN   string
	ShopID      kernel.ID
	OrderIDs    []kernel.ID
	Mode        prep.DeliveryMode
	Destination prep.DestinationType
	Status      prep.PrepareStatus
	Driver      *PackageDriverResponse
	Warehouse   *PackageWarehouseResponse
	Items       []PackageItemResponse
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PackageDriverResponse identifies the driver holding a package.
type PackageDriverResponse struct {
	ID    kernel.ID
	Name  string
	Phone string
}

// PackageWarehouseResponse identifies the warehouse a package routes through.
type PackageWarehouseResponse struct {
	ID   kernel.ID
	Code string
	Name string
}

// PackageItemResponse is a snapshotted order line inside a package.
type PackageItemResponse struct {
	ID          kernel.ID
	OrderID     kernel.ID
	ProductName string
	Quantity    int
}
