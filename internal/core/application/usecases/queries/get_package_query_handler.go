package queries

import (
	"context"
	"database/sql"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/prep"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetPackageQueryHandler retrieves a single package read model.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetPackageQueryHandler struct {
	db *gorm.DB
}

// NewGetPackageQueryHandler creates a handler for package lookups.
// Requires a GORM database connection for query execution.
func NewGetPackageQueryHandler(db *gorm.DB) GetPackageQueryHandler {
	return GetPackageQueryHandler{db: db}
}

// Handle executes the lookup. Returns errs.ErrObjectNotFound when no
// package carries the serial.
func (h GetPackageQueryHandler) Handle(
	ctx context.Context,
	query GetPackageQuery,
) (GetPackageQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPackageQueryResponse{}, err
	}

	var (
		response GetPackageQueryResponse
		id       int64
		shopID   int64
		orderIDs string
		mode     int
		dest     int
		status   int
	)
	var (
		driverID      sql.NullInt64
		driverName    sql.NullString
		driverPhone   sql.NullString
		warehouseID   sql.NullInt64
		warehouseCode sql.NullString
		warehouseName sql.NullString
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.prepare_sn,
			p.shop_id,
			p.order_ids,
			p.delivery_mode,
			p.destination_type,
			p.status,
			p.created_at,
			p.updated_at,
			d.id,
			d.name,
			d.phone,
			w.id,
			w.code,
			w.name
		FROM packages p
		LEFT JOIN drivers d ON d.id = p.driver_id
		LEFT JOIN warehouses w ON w.id = p.warehouse_id
		WHERE p.prepare_sn = ?
	`, query.PrepareSN()).Row()

	err := row.Scan(
		&id,
		&response.PrepareSN,
		&shopID,
		&orderIDs,
		&mode,
		&dest,
		&status,
		&response.CreatedAt,
		&response.UpdatedAt,
		&driverID,
		&driverName,
		&driverPhone,
		&warehouseID,
		&warehouseCode,
		&warehouseName,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetPackageQueryResponse{}, errs.NewObjectNotFoundError("prepareSN", query.PrepareSN())
		}
		return GetPackageQueryResponse{}, err
	}

	response.ID, err = kernel.NewID(id)
	if err != nil {
		return GetPackageQueryResponse{}, err
	}
	response.ShopID, err = kernel.NewID(shopID)
	if err != nil {
		return GetPackageQueryResponse{}, err
	}
	response.OrderIDs, err = kernel.ParseIDs(orderIDs)
	if err != nil {
		return GetPackageQueryResponse{}, err
	}
	response.Mode = prep.DeliveryMode(mode)
	response.Destination = prep.DestinationType(dest)
	response.Status = prep.PrepareStatus(status)

	if driverID.Valid {
		driver := PackageDriverResponse{
			Name:  driverName.String,
			Phone: driverPhone.String,
		}
		driver.ID, err = kernel.NewID(driverID.Int64)
		if err != nil {
			return GetPackageQueryResponse{}, err
		}
		response.Driver = &driver
	}
	if warehouseID.Valid {
		warehouse := PackageWarehouseResponse{
			Code: warehouseCode.String,
			Name: warehouseName.String,
		}
		warehouse.ID, err = kernel.NewID(warehouseID.Int64)
		if err != nil {
			return GetPackageQueryResponse{}, err
		}
		response.Warehouse = &warehouse
	}

	response.Items, err = h.loadItems(ctx, id)
	if err != nil {
		return GetPackageQueryResponse{}, err
	}

	return response, nil
}

func (h GetPackageQueryHandler) loadItems(
	ctx context.Context,
	packageID int64,
) ([]PackageItemResponse, error) {
	items := make([]PackageItemResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			product_name,
			quantity
		FROM package_items
		WHERE package_id = ?
		ORDER BY id
	`, packageID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item PackageItemResponse
		var itemID, orderID int64

		err = rows.Scan(&itemID, &orderID, &item.ProductName, &item.Quantity)
		if err != nil {
			return nil, err
		}

		item.ID, err = kernel.NewID(itemID)
		if err != nil {
			return nil, err
		}
		item.OrderID, err = kernel.NewID(orderID)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
