package prep

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// PrepareStatus represents a package's position in its delivery workflow.
//
// StatusPending is the zero value and stands for the "not yet prepared"
// state (persisted as NULL in the legacy store). Every workflow starts at
// StatusPending and ends at StatusComplete; the legal path between the two
// depends on the package's workflow, see Workflow.Path.
type PrepareStatus int

const (
	// StatusPending means the package exists but the merchant has not yet
	// marked the goods as prepared.
	StatusPending PrepareStatus = iota

	// StatusPrepared means the merchant photographed and confirmed the goods.
	StatusPrepared

	// StatusDriverClaimed means a third-party driver claimed the package
	// and has picked the goods up from the merchant.
	StatusDriverClaimed

	// StatusDriverToWarehouse means the driver handed the goods over at the
	// warehouse.
	StatusDriverToWarehouse

	// StatusWarehouseReceived means warehouse staff confirmed receipt.
	StatusWarehouseReceived

	// StatusWarehouseShipped means the warehouse dispatched the goods to
	// the end user.
	StatusWarehouseShipped

	// StatusDelivered means the goods reached the recipient.
	StatusDelivered

	// StatusComplete is the terminal state; a complete package is immutable.
	StatusComplete
)

func prepareStatusStrings() map[PrepareStatus]string {
	return map[PrepareStatus]string{
		StatusPending:           "Pending",
		StatusPrepared:          "Prepared",
		StatusDriverClaimed:     "DriverClaimed",
		StatusDriverToWarehouse: "DriverToWarehouse",
		StatusWarehouseReceived: "WarehouseReceived",
		StatusWarehouseShipped:  "WarehouseShipped",
		StatusDelivered:         "Delivered",
		StatusComplete:          "Complete",
	}
}

// String returns the human-readable name of the status, or "Unknown" for
// values outside the enum.
func (s PrepareStatus) String() string {
	if str, ok := prepareStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Validate checks that the value is one of the defined statuses.
func (s PrepareStatus) Validate() error {
	if _, ok := prepareStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("prepareStatus",
			fmt.Errorf("%d is not a valid prepare status", s))
	}
	return nil
}

// IsTerminal reports whether the status is the final state of every
// workflow.
func (s PrepareStatus) IsTerminal() bool {
	return s == StatusComplete
}
