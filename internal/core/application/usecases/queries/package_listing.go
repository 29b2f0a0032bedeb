package queries

import (
	"database/sql"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/prep"
)

// Listings never return more rows than this, whatever the caller asks for.
const maxListingLimit = 200

const defaultListingLimit = 50

// PackageSummaryResponse is the package row shared by the listing
// queries. Line items are not loaded; use GetPackageQuery for the
// full read model.
type PackageSummaryResponse struct {
	ID          kernel.ID
	PrepareSN   string
	ShopID      kernel.ID
	OrderIDs    []kernel.ID
	Mode        prep.DeliveryMode
	Destination prep.DestinationType
	Status      prep.PrepareStatus
	DriverID    *kernel.ID
	WarehouseID *kernel.ID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// packageSummaryColumns is the select list scanPackageSummaries expects.
const packageSummaryColumns = `
	id,
	prepare_sn,
	shop_id,
	order_ids,
	delivery_mode,
	destination_type,
	status,
	driver_id,
	warehouse_id,
	created_at,
	updated_at`

func scanPackageSummaries(rows *sql.Rows) ([]PackageSummaryResponse, error) {
	summaries := make([]PackageSummaryResponse, 0)

	for rows.Next() {
		var (
			summary     PackageSummaryResponse
			id          int64
			shopID      int64
			orderIDs    string
			mode        int
			dest        int
			status      int
			driverID    sql.NullInt64
			warehouseID sql.NullInt64
		)

		err := rows.Scan(
			&id,
			&summary.PrepareSN,
			&shopID,
			&orderIDs,
			&mode,
			&dest,
			&status,
			&driverID,
			&warehouseID,
			&summary.CreatedAt,
			&summary.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		summary.ID, err = kernel.NewID(id)
		if err != nil {
			return nil, err
		}
		summary.ShopID, err = kernel.NewID(shopID)
		if err != nil {
			return nil, err
		}
		summary.OrderIDs, err = kernel.ParseIDs(orderIDs)
		if err != nil {
			return nil, err
		}
		summary.Mode = prep.DeliveryMode(mode)
		summary.Destination = prep.DestinationType(dest)
		summary.Status = prep.PrepareStatus(status)

		if driverID.Valid {
			parsed, idErr := kernel.NewID(driverID.Int64)
			if idErr != nil {
				return nil, idErr
			}
			summary.DriverID = &parsed
		}
		if warehouseID.Valid {
			parsed, idErr := kernel.NewID(warehouseID.Int64)
			if idErr != nil {
				return nil, idErr
			}
			summary.WarehouseID = &parsed
		}

		summaries = append(summaries, summary)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return summaries, nil
}

func clampListingLimit(limit int) int {
	if limit <= 0 {
		return defaultListingLimit
	}
	if limit > maxListingLimit {
		return maxListingLimit
	}
	return limit
}
