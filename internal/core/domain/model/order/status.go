package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the commercial lifecycle of an order, independent of
// its shipping progress. The numeric codes match the historical store.
type Status int

const (
	// PendingPayment means the order exists but has not been paid.
	PendingPayment Status = iota

	// PendingShipment means payment cleared and fulfillment may begin.
	PendingShipment

	// PendingReceipt means the goods are on their way to the user.
	PendingReceipt

	// Completed means the delivery finished.
	Completed

	// Cancelled means the order was cancelled before completion.
	Cancelled

	// AfterSales means the order entered a refund or return flow.
	AfterSales
)

func statusStrings() map[Status]string {
	return map[Status]string{
		PendingPayment:  "PendingPayment",
		PendingShipment: "PendingShipment",
		PendingReceipt:  "PendingReceipt",
		Completed:       "Completed",
		Cancelled:       "Cancelled",
		AfterSales:      "AfterSales",
	}
}

// String returns the human-readable name of the status, or "Unknown" for
// values outside the enum.
func (s Status) String() string {
	if str, ok := statusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Validate checks that the value is one of the defined statuses.
func (s Status) Validate() error {
	if _, ok := statusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("orderStatus",
			fmt.Errorf("%d is not a valid order status", s))
	}
	return nil
}
