// Package orderrepo provides data transfer objects and mapping functions
// for order persistence. It converts between the order domain entity and
// its relational representation.
package orderrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/prep"
)

// OrderDTO represents the database structure for persisting orders.
// Indexed by serial number and shop for the listing queries.
type OrderDTO struct {
	ID              int64  `gorm:"primaryKey"`
	OrderSN         string `gorm:"uniqueIndex;size:64"`
	UserID          int64  `gorm:"index"`
	ShopID          int64  `gorm:"index"`
	ReceiverName    string `gorm:"size:128"`
	ReceiverPhone   string `gorm:"size:32"`
	ReceiverAddress string `gorm:"size:512"`
	DestinationType int
	Status          int `gorm:"index"`
	ShippingStatus  int `gorm:"index"`
	WarehouseID     *int64
	DriverID        *int64 `gorm:"index"`

	ReceivedByDriverAt     *time.Time
	ArrivedAtWarehouseAt   *time.Time
	ShippedFromWarehouseAt *time.Time
	FinishedAt             *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for orders.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents a catalog line of an order. The fulfillment
// core only reads these; package creation snapshots them into package
// items.
type OrderItemDTO struct {
	ID          int64 `gorm:"primaryKey"`
	OrderID     int64 `gorm:"index"`
	ProductID   int64
	SkuID       int64
	ProductName string `gorm:"size:256"`
	Quantity    int
}

// TableName specifies the database table name for order lines.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(o *order.Order) OrderDTO {
	var warehouseID, driverID *int64
	if id := o.Warehouse(); id != nil {
		raw := id.Int64()
		warehouseID = &raw
	}
	if id := o.Driver(); id != nil {
		raw := id.Int64()
		driverID = &raw
	}

	return OrderDTO{
		ID:              o.ID().Int64(),
		OrderSN:         o.OrderSN(),
		UserID:          o.UserID().Int64(),
		ShopID:          o.ShopID().Int64(),
		ReceiverName:    o.Receiver().Name,
		ReceiverPhone:   o.Receiver().Phone,
		ReceiverAddress: o.Receiver().Address,
		DestinationType: int(o.Destination()),
		Status:          int(o.Status()),
		ShippingStatus:  int(o.ShippingStatus()),
		WarehouseID:     warehouseID,
		DriverID:        driverID,

		ReceivedByDriverAt:     o.ReceivedByDriverAt(),
		ArrivedAtWarehouseAt:   o.ArrivedAtWarehouseAt(),
		ShippedFromWarehouseAt: o.ShippedFromWarehouseAt(),
		FinishedAt:             o.FinishedAt(),

		CreatedAt: o.CreatedAt(),
		UpdatedAt: o.UpdatedAt(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}
	userID, err := kernel.NewID(dto.UserID)
	if err != nil {
		return nil, err
	}
	shopID, err := kernel.NewID(dto.ShopID)
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

	receiver := order.Receiver{
		Name:    dto.ReceiverName,
		Phone:   dto.ReceiverPhone,
		Address: dto.ReceiverAddress,
	}

	return order.RestoreOrder(
		id, dto.OrderSN, userID, shopID, receiver,
		prep.DestinationType(dto.DestinationType),
		order.Status(dto.Status), order.ShippingStatus(dto.ShippingStatus),
		warehouseID, driverID,
		dto.ReceivedByDriverAt, dto.ArrivedAtWarehouseAt,
		dto.ShippedFromWarehouseAt, dto.FinishedAt,
		dto.CreatedAt, dto.UpdatedAt,
	)
}

func lineToDomain(dto OrderItemDTO) (order.LineItem, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return order.LineItem{}, err
	}
	orderID, err := kernel.NewID(dto.OrderID)
	if err != nil {
		return order.LineItem{}, err
	}
	productID, err := kernel.NewID(dto.ProductID)
	if err != nil {
		return order.LineItem{}, err
	}
	skuID, err := kernel.NewID(dto.SkuID)
	if err != nil {
		return order.LineItem{}, err
	}

	return order.LineItem{
		ID:          id,
		OrderID:     orderID,
		ProductID:   productID,
		SkuID:       skuID,
		ProductName: dto.ProductName,
		Quantity:    dto.Quantity,
	}, nil
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
