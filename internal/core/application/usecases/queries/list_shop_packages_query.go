package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/prep"
	"fulfillment/internal/pkg/errs"
)

var ErrListShopPackagesQueryIsNotConstructed = errors.New(
	"ListShopPackagesQuery must be created via NewListShopPackagesQuery constructor",
)

// ListShopPackagesQuery retrieves a shop's packages, newest first,
// optionally narrowed to a single status.
//
// Example:
//
//	status := prep.StatusPrepared
//	query, err := NewListShopPackagesQuery(shopID, &status, 20)
//	if err != nil {
//	    return err
//	}
//
//	packages, err := handler.Handle(ctx, query)
type ListShopPackagesQuery struct {
	shopID kernel.ID
	status *prep.PrepareStatus
	limit  int

	guard kernel.ConstructorGuard
}

// NewListShopPackagesQuery creates a shop listing query. A nil status
// means all statuses; a non-positive limit falls back to the default.
func NewListShopPackagesQuery(
	shopID kernel.ID,
	status *prep.PrepareStatus,
	limit int,
) (ListShopPackagesQuery, error) {
	if err := shopID.Validate(); err != nil {
		return ListShopPackagesQuery{}, errs.NewValueIsInvalidErrorWithCause("shopID", err)
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return ListShopPackagesQuery{}, err
		}
	}

	return ListShopPackagesQuery{
		shopID: shopID,
		status: status,
		limit:  clampListingLimit(limit),
		guard:  kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListShopPackagesQuery) Validate() error {
	return q.guard.Validate(ErrListShopPackagesQueryIsNotConstructed)
}

// ShopID returns the owning shop.
func (q ListShopPackagesQuery) ShopID() kernel.ID {
	return q.shopID
}

// Status returns the status filter, nil for all statuses.
func (q ListShopPackagesQuery) Status() *prep.PrepareStatus {
	return q.status
}

// Limit returns the maximum number of rows to return.
func (q ListShopPackagesQuery) Limit() int {
	return q.limit
}
