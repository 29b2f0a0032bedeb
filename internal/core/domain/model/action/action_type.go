package action

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Type identifies what happened to an order. Codes 0 through 5 mirror the
// workflow transitions and are written by the transition handlers; codes 6
// through 11 cover refund and return events, which are recorded as-is and
// never validated against a workflow path.
type Type int

const (
	// GoodsPrepared records the merchant confirming the goods.
	GoodsPrepared Type = iota

	// DriverPickup records a driver collecting the goods.
	DriverPickup

	// DriverToWarehouse records the driver handing over at the warehouse.
	DriverToWarehouse

	// WarehouseReceive records warehouse staff confirming receipt.
	WarehouseReceive

	// WarehouseShip records the warehouse dispatching to the user.
	WarehouseShip

	// DeliveryComplete records the goods reaching the recipient.
	DeliveryComplete

	// RefundRequest records a user asking for a refund.
	RefundRequest

	// RefundApproved records the merchant approving a refund.
	RefundApproved

	// RefundRejected records the merchant rejecting a refund.
	RefundRejected

	// ReturnGoods records the user sending goods back.
	ReturnGoods

	// RefundComplete records the refund settling.
	RefundComplete

	// OrderCancelled records the order being cancelled.
	OrderCancelled
)

func typeStrings() map[Type]string {
	return map[Type]string{
		GoodsPrepared:     "GoodsPrepared",
		DriverPickup:      "DriverPickup",
		DriverToWarehouse: "DriverToWarehouse",
		WarehouseReceive:  "WarehouseReceive",
		WarehouseShip:     "WarehouseShip",
		DeliveryComplete:  "DeliveryComplete",
		RefundRequest:     "RefundRequest",
		RefundApproved:    "RefundApproved",
		RefundRejected:    "RefundRejected",
		ReturnGoods:       "ReturnGoods",
		RefundComplete:    "RefundComplete",
		OrderCancelled:    "OrderCancelled",
	}
}

// String returns the human-readable name of the type, or "Unknown" for
// values outside the enum.
func (t Type) String() string {
	if str, ok := typeStrings()[t]; ok {
		return str
	}
	return "Unknown"
}

// Validate checks that the value is one of the defined action types.
func (t Type) Validate() error {
	if _, ok := typeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("actionType",
			fmt.Errorf("%d is not a valid action type", t))
	}
	return nil
}

// IsWorkflowStep reports whether the type corresponds to a workflow
// transition (codes 0 through 5). Everything else is an aftersales event.
func (t Type) IsWorkflowStep() bool {
	return t >= GoodsPrepared && t <= DeliveryComplete
}
