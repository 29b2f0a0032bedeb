package order

import (
	"errors"
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// ShippingStatus represents the delivery leg an order is currently on.
// The values are ordered: the status only ever moves forward, and which
// steps appear is decided by the workflow of the package the order is
// batched in, not by the order itself.
type ShippingStatus int

const (
	// PendingPrepare is the initial status before the merchant confirms
	// the goods.
	PendingPrepare ShippingStatus = iota

	// Prepared means the goods are confirmed and photographed.
	Prepared

	// DriverPickup means a third-party driver holds the goods.
	DriverPickup

	// DriverToWarehouse means the driver dropped the goods at the warehouse.
	DriverToWarehouse

	// WarehouseReceived means warehouse staff confirmed receipt.
	WarehouseReceived

	// DriverToUser means the goods left the warehouse toward the user.
	DriverToUser

	// Delivered means the goods reached the recipient.
	Delivered

	// Complete is the terminal shipping status.
	Complete
)

func shippingStatusStrings() map[ShippingStatus]string {
	return map[ShippingStatus]string{
		PendingPrepare:    "PendingPrepare",
		Prepared:          "Prepared",
		DriverPickup:      "DriverPickup",
		DriverToWarehouse: "DriverToWarehouse",
		WarehouseReceived: "WarehouseReceived",
		DriverToUser:      "DriverToUser",
		Delivered:         "Delivered",
		Complete:          "Complete",
	}
}

// String returns the human-readable name of the status, or "Unknown" for
// values outside the enum.
func (s ShippingStatus) String() string {
	if str, ok := shippingStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Validate checks that the value is one of the defined statuses.
func (s ShippingStatus) Validate() error {
	if _, ok := shippingStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("shippingStatus",
			fmt.Errorf("%d is not a valid shipping status", s))
	}
	return nil
}

// ErrShippingTransitionIsInvalid is raised when an order's shipping status
// would move backward or skip into a state its workflow never visits.
var ErrShippingTransitionIsInvalid = errors.New("invalid shipping status transition")

// ShippingTransitionError reports an illegal shipping-status move, naming
// both the current status and the attempted target.
type ShippingTransitionError struct {
	From ShippingStatus
	To   ShippingStatus
}

func NewShippingTransitionError(from, to ShippingStatus) *ShippingTransitionError {
	return &ShippingTransitionError{From: from, To: to}
}

func (e *ShippingTransitionError) Error() string {
	return fmt.Sprintf("%s: cannot move from %s to %s",
		ErrShippingTransitionIsInvalid, e.From, e.To)
}

func (e *ShippingTransitionError) Unwrap() error {
	return ErrShippingTransitionIsInvalid
}
