package order

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/prep"
	"fulfillment/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not
// created through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Receiver holds the delivery contact captured when the order was placed.
type Receiver struct {
	Name    string
	Phone   string
	Address string
}

// Validate checks the receiver's required fields.
func (r Receiver) Validate() error {
	if r.Name == "" {
		return errs.NewValueIsRequiredError("receiverName")
	}
	if r.Address == "" {
		return errs.NewValueIsRequiredError("receiverAddress")
	}
	return nil
}

// Order is the per-order fulfillment entity. It tracks two status fields
// in lockstep: the shipping status, driven by the workflow of the package
// the order is batched in, and the commercial order status.
//
// Order enforces only local rules: the shipping status moves strictly
// forward and each transition method requires a legal starting point.
// Which steps an order visits (warehouse legs, driver legs) is decided by
// the package aggregate; the order does not know its workflow.
type Order struct {
	id             kernel.ID
	orderSN        string
	userID         kernel.ID
	shopID         kernel.ID
	receiver       Receiver
	destination    prep.DestinationType
	status         Status
	shippingStatus ShippingStatus
	warehouseID    *kernel.ID
	driverID       *kernel.ID

	receivedByDriverAt     *time.Time
	arrivedAtWarehouseAt   *time.Time
	shippedFromWarehouseAt *time.Time
	finishedAt             *time.Time

	createdAt time.Time
	updatedAt time.Time

	guard kernel.ConstructorGuard
}

// NewOrder creates a paid order awaiting preparation.
func NewOrder(id kernel.ID, orderSN string, userID, shopID kernel.ID, receiver Receiver, destination prep.DestinationType, now time.Time) (*Order, error) {
	o := &Order{
		status:         PendingShipment,
		shippingStatus: PendingPrepare,
		createdAt:      now,
		updatedAt:      now,
		guard:          kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrderSN(orderSN),
		o.setUserID(userID),
		o.setShopID(shopID),
		o.setReceiver(receiver),
		o.setDestination(destination),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistent storage with its
// status fields, references, and workflow timestamps intact.
func RestoreOrder(
	id kernel.ID,
	orderSN string,
	userID kernel.ID,
	shopID kernel.ID,
	receiver Receiver,
	destination prep.DestinationType,
	status Status,
	shippingStatus ShippingStatus,
	warehouseID *kernel.ID,
	driverID *kernel.ID,
	receivedByDriverAt *time.Time,
	arrivedAtWarehouseAt *time.Time,
	shippedFromWarehouseAt *time.Time,
	finishedAt *time.Time,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		warehouseID:            warehouseID,
		driverID:               driverID,
		receivedByDriverAt:     receivedByDriverAt,
		arrivedAtWarehouseAt:   arrivedAtWarehouseAt,
		shippedFromWarehouseAt: shippedFromWarehouseAt,
		finishedAt:             finishedAt,
		createdAt:              createdAt,
		updatedAt:              updatedAt,
		guard:                  kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrderSN(orderSN),
		o.setUserID(userID),
		o.setShopID(shopID),
		o.setReceiver(receiver),
		o.setDestination(destination),
		status.Validate(),
		shippingStatus.Validate(),
	); err != nil {
		return nil, err
	}

	o.status = status
	o.shippingStatus = shippingStatus
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.ID { return o.id }

// OrderSN returns the order's human-facing serial number.
func (o *Order) OrderSN() string { return o.orderSN }

// UserID returns the purchasing user's identifier.
func (o *Order) UserID() kernel.ID { return o.userID }

// ShopID returns the selling shop's identifier.
func (o *Order) ShopID() kernel.ID { return o.shopID }

// Receiver returns the delivery contact.
func (o *Order) Receiver() Receiver { return o.receiver }

// Destination returns where the goods are handed off.
func (o *Order) Destination() prep.DestinationType { return o.destination }

// Status returns the commercial order status.
func (o *Order) Status() Status { return o.status }

// ShippingStatus returns the current shipping status.
func (o *Order) ShippingStatus() ShippingStatus { return o.shippingStatus }

// Warehouse returns the warehouse the order routes through, or nil.
func (o *Order) Warehouse() *kernel.ID { return o.warehouseID }

// Driver returns the driver carrying the order, or nil.
func (o *Order) Driver() *kernel.ID { return o.driverID }

// ReceivedByDriverAt returns when a driver picked the goods up, or nil.
func (o *Order) ReceivedByDriverAt() *time.Time { return o.receivedByDriverAt }

// ArrivedAtWarehouseAt returns when the goods reached the warehouse, or nil.
func (o *Order) ArrivedAtWarehouseAt() *time.Time { return o.arrivedAtWarehouseAt }

// ShippedFromWarehouseAt returns when the goods left the warehouse, or nil.
func (o *Order) ShippedFromWarehouseAt() *time.Time { return o.shippedFromWarehouseAt }

// FinishedAt returns when the delivery finished, or nil.
func (o *Order) FinishedAt() *time.Time { return o.finishedAt }

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// UpdatedAt returns the last modification timestamp.
func (o *Order) UpdatedAt() time.Time { return o.updatedAt }

// MarkPrepared records that the merchant confirmed the goods.
func (o *Order) MarkPrepared(now time.Time) error {
	return o.advance(Prepared, now, PendingPrepare)
}

// PickupByDriver records that driverID collected the goods from the
// merchant.
func (o *Order) PickupByDriver(driverID kernel.ID, now time.Time) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	if err := o.advance(DriverPickup, now, Prepared); err != nil {
		return err
	}

	o.driverID = &driverID
	ts := now
	o.receivedByDriverAt = &ts
	return nil
}

// ArriveAtWarehouse records that the driver dropped the goods at the
// warehouse.
func (o *Order) ArriveAtWarehouse(now time.Time) error {
	if err := o.advance(DriverToWarehouse, now, DriverPickup); err != nil {
		return err
	}

	ts := now
	o.arrivedAtWarehouseAt = &ts
	return nil
}

// ReceiveAtWarehouse records that warehouse staff confirmed receipt. On
// merchant self-delivery the goods arrive straight from the Prepared
// state; on driver workflows they arrive from DriverToWarehouse.
func (o *Order) ReceiveAtWarehouse(now time.Time) error {
	return o.advance(WarehouseReceived, now, Prepared, DriverToWarehouse)
}

// ShipFromWarehouse records that the warehouse dispatched the goods to
// the user.
func (o *Order) ShipFromWarehouse(now time.Time) error {
	if err := o.advance(DriverToUser, now, WarehouseReceived); err != nil {
		return err
	}

	ts := now
	o.shippedFromWarehouseAt = &ts
	return nil
}

// CompleteDelivery records that the goods reached the recipient. Direct
// workflows arrive here from Prepared or DriverPickup, warehouse
// workflows from DriverToUser. The commercial status becomes Completed
// and the finish timestamp is set.
func (o *Order) CompleteDelivery(now time.Time) error {
	if err := o.advance(Delivered, now, Prepared, DriverPickup, DriverToUser); err != nil {
		return err
	}

	ts := now
	o.finishedAt = &ts
	o.status = Completed
	return nil
}

// Complete closes the shipping lifecycle after delivery.
func (o *Order) Complete(now time.Time) error {
	return o.advance(Complete, now, Delivered)
}

// advance moves the shipping status to target when the current status is
// one of from. Everything else fails with a ShippingTransitionError.
func (o *Order) advance(target ShippingStatus, now time.Time, from ...ShippingStatus) error {
	for _, s := range from {
		if o.shippingStatus == s {
			o.shippingStatus = target
			o.updatedAt = now
			return nil
		}
	}
	return NewShippingTransitionError(o.shippingStatus, target)
}

func (o *Order) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOrderSN(sn string) error {
	if sn == "" {
		return errs.NewValueIsRequiredError("orderSN")
	}
	o.orderSN = sn
	return nil
}

func (o *Order) setUserID(userID kernel.ID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("userID", err)
	}
	o.userID = userID
	return nil
}

func (o *Order) setShopID(shopID kernel.ID) error {
	if err := shopID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("shopID", err)
	}
	o.shopID = shopID
	return nil
}

func (o *Order) setDestination(destination prep.DestinationType) error {
	if destination != prep.ToWarehouse && destination != prep.ToUser {
		return errs.NewValueIsInvalidError("destinationType")
	}
	o.destination = destination
	return nil
}

func (o *Order) setReceiver(receiver Receiver) error {
	if err := receiver.Validate(); err != nil {
		return err
	}
	o.receiver = receiver
	return nil
}
