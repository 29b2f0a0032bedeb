package prep

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// Item is an immutable snapshot of one order line taken when a package is
// created. A snapshot survives later edits to the order, so the audit
// trail always shows what the package actually contained.
type Item struct {
	id          kernel.ID
	orderID     kernel.ID
	orderItemID kernel.ID
	productID   kernel.ID
	skuID       kernel.ID
	productName string
	quantity    int
}

// NewItem creates a validated line-item snapshot.
func NewItem(id, orderID, orderItemID, productID, skuID kernel.ID, productName string, quantity int) (Item, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		orderItemID.Validate(),
		productID.Validate(),
		skuID.Validate(),
	); err != nil {
		return Item{}, err
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	return Item{
		id:          id,
		orderID:     orderID,
		orderItemID: orderItemID,
		productID:   productID,
		skuID:       skuID,
		productName: productName,
		quantity:    quantity,
	}, nil
}

// ID returns the snapshot's own identifier.
func (i Item) ID() kernel.ID { return i.id }

// OrderID returns the order the snapshot was taken from.
func (i Item) OrderID() kernel.ID { return i.orderID }

// OrderItemID returns the source order line identifier.
func (i Item) OrderItemID() kernel.ID { return i.orderItemID }

// ProductID returns the product identifier.
func (i Item) ProductID() kernel.ID { return i.productID }

// SkuID returns the stock keeping unit identifier.
func (i Item) SkuID() kernel.ID { return i.skuID }

// ProductName returns the product name captured at snapshot time.
func (i Item) ProductName() string { return i.productName }

// Quantity returns the number of units in the line.
func (i Item) Quantity() int { return i.quantity }
