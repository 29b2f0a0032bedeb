package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListDriverPackagesQueryHandler retrieves a driver's packages.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type ListDriverPackagesQueryHandler struct {
	db *gorm.DB
}

// NewListDriverPackagesQueryHandler creates a handler for driver listings.
func NewListDriverPackagesQueryHandler(db *gorm.DB) ListDriverPackagesQueryHandler {
	return ListDriverPackagesQueryHandler{db: db}
}

// Handle executes the listing. Returns the newest packages first.
func (h ListDriverPackagesQueryHandler) Handle(
	ctx context.Context,
	query ListDriverPackagesQuery,
) ([]PackageSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT`+packageSummaryColumns+`
		FROM packages
		WHERE driver_id = ?
		ORDER BY created_at DESC
		LIMIT ?
	`, query.DriverID().Int64(), query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPackageSummaries(rows)
}
