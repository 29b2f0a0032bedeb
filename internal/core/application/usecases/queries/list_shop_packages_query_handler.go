package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListShopPackagesQueryHandler retrieves a shop's packages.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type ListShopPackagesQueryHandler struct {
	db *gorm.DB
}

// NewListShopPackagesQueryHandler creates a handler for shop listings.
func NewListShopPackagesQueryHandler(db *gorm.DB) ListShopPackagesQueryHandler {
	return ListShopPackagesQueryHandler{db: db}
}

// Handle executes the listing. Returns the newest packages first.
func (h ListShopPackagesQueryHandler) Handle(
	ctx context.Context,
	query ListShopPackagesQuery,
) ([]PackageSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT` + packageSummaryColumns + `
		FROM packages
		WHERE shop_id = ?`
	args := []any{query.ShopID().Int64()}

	if status := query.Status(); status != nil {
		sql += ` AND status = ?`
		args = append(args, int(*status))
	}

	sql += `
		ORDER BY created_at DESC
		LIMIT ?`
	args = append(args, query.Limit())

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPackageSummaries(rows)
}
