package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
)

var ErrListAvailablePackagesQueryIsNotConstructed = errors.New(
	"ListAvailablePackagesQuery must be created via NewListAvailablePackagesQuery constructor",
)

// ListAvailablePackagesQuery retrieves driver-mode packages that are
// prepared but not yet claimed by any driver. This is the board a
// driver browses before claiming work.
type ListAvailablePackagesQuery struct {
	limit int

	guard kernel.ConstructorGuard
}

// NewListAvailablePackagesQuery creates an availability listing query.
// A non-positive limit falls back to the default.
func NewListAvailablePackagesQuery(limit int) ListAvailablePackagesQuery {
	return ListAvailablePackagesQuery{
		limit: clampListingLimit(limit),
		guard: kernel.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q ListAvailablePackagesQuery) Validate() error {
	return q.guard.Validate(ErrListAvailablePackagesQueryIsNotConstructed)
}

// Limit returns the maximum number of rows to return.
func (q ListAvailablePackagesQuery) Limit() int {
	return q.limit
}
