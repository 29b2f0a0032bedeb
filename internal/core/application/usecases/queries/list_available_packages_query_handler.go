package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/prep"

	"gorm.io/gorm"
)

// ListAvailablePackagesQueryHandler retrieves unclaimed driver-mode
// packages. Uses direct SQL queries for optimal read performance in
// the CQRS pattern.
type ListAvailablePackagesQueryHandler struct {
	db *gorm.DB
}

// NewListAvailablePackagesQueryHandler creates a handler for the
// availability board.
func NewListAvailablePackagesQueryHandler(db *gorm.DB) ListAvailablePackagesQueryHandler {
	return ListAvailablePackagesQueryHandler{db: db}
}

// Handle executes the listing. Oldest packages come first so the
// longest-waiting work is claimed soonest.
func (h ListAvailablePackagesQueryHandler) Handle(
	ctx context.Context,
	query ListAvailablePackagesQuery,
) ([]PackageSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT`+packageSummaryColumns+`
		FROM packages
		WHERE delivery_mode = ?
		  AND status = ?
		  AND driver_id IS NULL
		ORDER BY created_at
		LIMIT ?
	`, int(prep.ThirdPartyDriver), int(prep.StatusPrepared), query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPackageSummaries(rows)
}
