package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var ErrListDriverPackagesQueryIsNotConstructed = errors.New(
	"ListDriverPackagesQuery must be created via NewListDriverPackagesQuery constructor",
)

// ListDriverPackagesQuery retrieves the packages a driver currently
// holds or has carried, newest first. Terminal packages are included
// so a driver can review finished runs.
type ListDriverPackagesQuery struct {
	driverID kernel.ID
	limit    int

	guard kernel.ConstructorGuard
}

// NewListDriverPackagesQuery creates a driver listing query.
// A non-positive limit falls back to the default.
func NewListDriverPackagesQuery(driverID kernel.ID, limit int) (ListDriverPackagesQuery, error) {
	if err := driverID.Validate(); err != nil {
		return ListDriverPackagesQuery{}, errs.NewValueIsInvalidErrorWithCause("driverID", err)
	}

	return ListDriverPackagesQuery{
		driverID: driverID,
		limit:    clampListingLimit(limit),
		guard:    kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListDriverPackagesQuery) Validate() error {
	return q.guard.Validate(ErrListDriverPackagesQueryIsNotConstructed)
}

// DriverID returns the driver whose packages are listed.
func (q ListDriverPackagesQuery) DriverID() kernel.ID {
	return q.driverID
}

// Limit returns the maximum number of rows to return.
func (q ListDriverPackagesQuery) Limit() int {
	return q.limit
}
