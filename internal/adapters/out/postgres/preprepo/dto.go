// Package preprepo provides data transfer objects and mapping functions
// for prepare-goods package persistence. The contained order ids keep
// their legacy comma-separated encoding so existing rows keep working.
package preprepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/prep"
)

// PackageDTO represents the database structure for persisting package
// aggregates. OrderIDs is the comma-separated decimal list the legacy
// store used; the domain never sees that encoding.
type PackageDTO struct {
	ID              int64  `gorm:"primaryKey"`
	PrepareSN       string `gorm:"uniqueIndex;size:64"`
	ShopID          int64  `gorm:"index"`
	OrderIDs        string `gorm:"column:order_ids;size:1024"`
	DeliveryMode    int
	DestinationType int
	Status          int    `gorm:"index"`
	WarehouseID     *int64
	DriverID        *int64 `gorm:"index"`

	Items []ItemDTO `gorm:"foreignKey:PackageID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for packages.
func (PackageDTO) TableName() string {
	return "packages"
}

// ItemDTO represents a snapshotted order line inside a package.
type ItemDTO struct {
	ID          int64 `gorm:"primaryKey"`
	PackageID   int64 `gorm:"index"`
	OrderID     int64 `gorm:"index"`
	OrderItemID int64
	ProductID   int64
	SkuID       int64
	ProductName string `gorm:"size:256"`
	Quantity    int
}

// TableName specifies the database table name for package items.
func (ItemDTO) TableName() string {
	return "package_items"
}

func fromDomain(pkg *prep.Package) PackageDTO {
	var warehouseID, driverID *int64
	if id := pkg.Warehouse(); id != nil {
		raw := id.Int64()
		warehouseID = &raw
	}
	if id := pkg.Driver(); id != nil {
		raw := id.Int64()
		driverID = &raw
	}

	items := make([]ItemDTO, 0, len(pkg.Items()))
	for _, item := range pkg.Items() {
		items = append(items, ItemDTO{
			ID:          item.ID().Int64(),
			PackageID:   pkg.ID().Int64(),
			OrderID:     item.OrderID().Int64(),
			OrderItemID: item.OrderItemID().Int64(),
			ProductID:   item.ProductID().Int64(),
			SkuID:       item.SkuID().Int64(),
			ProductName: item.ProductName(),
			Quantity:    item.Quantity(),
		})
	}

	return PackageDTO{
		ID:              pkg.ID().Int64(),
		PrepareSN:       pkg.PrepareSN(),
		ShopID:          pkg.ShopID().Int64(),
		OrderIDs:        kernel.JoinIDs(pkg.OrderIDs()),
		DeliveryMode:    int(pkg.Mode()),
		DestinationType: int(pkg.Destination()),
		Status:          int(pkg.Status()),
		WarehouseID:     warehouseID,
		DriverID:        driverID,
		Items:           items,
		CreatedAt:       pkg.CreatedAt(),
		UpdatedAt:       pkg.UpdatedAt(),
	}
}

func toDomain(dto PackageDTO) (*prep.Package, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}
	shopID, err := kernel.NewID(dto.ShopID)
	if err != nil {
		return nil, err
	}
	orderIDs, err := kernel.ParseIDs(dto.OrderIDs)
	if err != nil {
		return nil, err
	}

	warehouseID, err := optionalID(dto.WarehouseID)
	if err != nil {
		return nil, err
	}
	driverID, err := optionalID(dto.DriverID)
	if err != nil {
		return nil, err
	}

	items := make([]prep.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return prep.RestorePackage(
		id, dto.PrepareSN, shopID, orderIDs, items,
		prep.DeliveryMode(dto.DeliveryMode),
		prep.DestinationType(dto.DestinationType),
		warehouseID, driverID,
		prep.PrepareStatus(dto.Status),
		dto.CreatedAt, dto.UpdatedAt,
	)
}

func itemToDomain(dto ItemDTO) (prep.Item, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return prep.Item{}, err
	}
	orderID, err := kernel.NewID(dto.OrderID)
	if err != nil {
		return prep.Item{}, err
	}
	orderItemID, err := kernel.NewID(dto.OrderItemID)
	if err != nil {
		return prep.Item{}, err
	}
	productID, err := kernel.NewID(dto.ProductID)
	if err != nil {
		return prep.Item{}, err
	}
	skuID, err := kernel.NewID(dto.SkuID)
	if err != nil {
		return prep.Item{}, err
	}

	return prep.NewItem(id, orderID, orderItemID, productID, skuID, dto.ProductName, dto.Quantity)
}

func optionalID(v *int64) (*kernel.ID, error) {
	if v == nil {
		return nil, nil
	}
	id, err := kernel.NewID(*v)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
