package order

import "fulfillment/internal/core/domain/model/kernel"

// LineItem is a read model for one order line. The order catalog owns the
// lines; the fulfillment core only reads them to snapshot package items.
type LineItem struct {
	ID          kernel.ID
	OrderID     kernel.ID
	ProductID   kernel.ID
	SkuID       kernel.ID
	ProductName string
	Quantity    int
}
