package prep

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
)

// DeliveryMode identifies who transports the goods from the merchant.
type DeliveryMode int

const (
	DeliveryModeUnknown DeliveryMode = iota

	// MerchantSelf means the merchant delivers with its own staff.
	MerchantSelf

	// ThirdPartyDriver means an independent driver claims and carries the
	// package.
	ThirdPartyDriver
)

// String returns the human-readable name of the mode.
func (m DeliveryMode) String() string {
	switch m {
	case MerchantSelf:
		return "MerchantSelf"
	case ThirdPartyDriver:
		return "ThirdPartyDriver"
	}
	return "Unknown"
}

// DestinationType identifies where the goods are handed off.
type DestinationType int

const (
	DestinationUnknown DestinationType = iota

	// ToWarehouse routes the goods through a warehouse before they reach
	// the end user.
	ToWarehouse

	// ToUser routes the goods directly to the end user.
	ToUser
)

// String returns the human-readable name of the destination type.
func (d DestinationType) String() string {
	switch d {
	case ToWarehouse:
		return "ToWarehouse"
	case ToUser:
		return "ToUser"
	}
	return "Unknown"
}

// Workflow is one of the four legal delivery paths, determined by the
// combination of delivery mode and destination type.
type Workflow int

const (
	WorkflowUnknown Workflow = iota

	// WorkflowMerchantWarehouse: merchant self-delivery through a warehouse.
	WorkflowMerchantWarehouse

	// WorkflowMerchantDirect: merchant self-delivery straight to the user.
	WorkflowMerchantDirect

	// WorkflowDriverWarehouse: third-party driver through a warehouse.
	WorkflowDriverWarehouse

	// WorkflowDriverDirect: third-party driver straight to the user.
	WorkflowDriverDirect
)

// String returns the human-readable name of the workflow.
func (w Workflow) String() string {
	switch w {
	case WorkflowMerchantWarehouse:
		return "MerchantWarehouse"
	case WorkflowMerchantDirect:
		return "MerchantDirect"
	case WorkflowDriverWarehouse:
		return "DriverWarehouse"
	case WorkflowDriverDirect:
		return "DriverDirect"
	}
	return "Unknown"
}

var (
	// ErrInvalidConfiguration is raised when a delivery mode, destination
	// type, or warehouse reference does not form a legal workflow.
	ErrInvalidConfiguration = errors.New("invalid delivery configuration")

	// ErrInvalidTransition is raised when a status change does not follow
	// the package's workflow path.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrInvalidAssignment is raised when a driver is assigned to a package
	// whose workflow has no driver leg.
	ErrInvalidAssignment = errors.New("invalid driver assignment")

	// ErrDriverAlreadyAssigned is raised when a driver tries to claim a
	// package that another driver already holds.
	ErrDriverAlreadyAssigned = errors.New("driver already assigned")
)

// InvalidTransitionError reports a status change that is not on the
// workflow's path. It always names both the current status and the
// attempted target so operators can see where a package got stuck.
type InvalidTransitionError struct {
	Workflow Workflow
	From     PrepareStatus
	To       PrepareStatus
}

func NewInvalidTransitionError(w Workflow, from, to PrepareStatus) *InvalidTransitionError {
	return &InvalidTransitionError{Workflow: w, From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: cannot move from %s to %s in workflow %s",
		ErrInvalidTransition, e.From, e.To, e.Workflow)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// Classify resolves the workflow for a delivery mode and destination type.
func Classify(mode DeliveryMode, destination DestinationType) (Workflow, error) {
	switch {
	case mode == MerchantSelf && destination == ToWarehouse:
		return WorkflowMerchantWarehouse, nil
	case mode == MerchantSelf && destination == ToUser:
		return WorkflowMerchantDirect, nil
	case mode == ThirdPartyDriver && destination == ToWarehouse:
		return WorkflowDriverWarehouse, nil
	case mode == ThirdPartyDriver && destination == ToUser:
		return WorkflowDriverDirect, nil
	}
	return WorkflowUnknown, fmt.Errorf("%w: mode %s, destination %s",
		ErrInvalidConfiguration, mode, destination)
}

func workflowPaths() map[Workflow][]PrepareStatus {
	return map[Workflow][]PrepareStatus{
		WorkflowMerchantWarehouse: {
			StatusPending, StatusPrepared, StatusWarehouseReceived,
			StatusWarehouseShipped, StatusDelivered, StatusComplete,
		},
		WorkflowMerchantDirect: {
			StatusPending, StatusPrepared, StatusDelivered, StatusComplete,
		},
		WorkflowDriverWarehouse: {
			StatusPending, StatusPrepared, StatusDriverClaimed,
			StatusDriverToWarehouse, StatusWarehouseReceived,
			StatusWarehouseShipped, StatusDelivered, StatusComplete,
		},
		WorkflowDriverDirect: {
			StatusPending, StatusPrepared, StatusDriverClaimed,
			StatusDelivered, StatusComplete,
		},
	}
}

// Path returns the full ordered status path for the workflow, starting at
// StatusPending and ending at StatusComplete. It returns nil for an
// unknown workflow.
func (w Workflow) Path() []PrepareStatus {
	path, ok := workflowPaths()[w]
	if !ok {
		return nil
	}
	out := make([]PrepareStatus, len(path))
	copy(out, path)
	return out
}

// ValidTransitions returns the statuses a package in the given workflow may
// move to from current. Workflows are strictly forward with no skips, so
// the result holds at most one element and is empty at StatusComplete or
// when current is not on the path.
func ValidTransitions(w Workflow, current PrepareStatus) []PrepareStatus {
	path, ok := workflowPaths()[w]
	if !ok {
		return nil
	}
	for i, s := range path {
		if s == current {
			if i == len(path)-1 {
				return []PrepareStatus{}
			}
			return []PrepareStatus{path[i+1]}
		}
	}
	return []PrepareStatus{}
}

// ValidateConfiguration checks that a delivery mode, destination type, and
// warehouse reference form a legal package setup. Warehouse-bound
// workflows require a warehouse; a surplus warehouse reference on a direct
// workflow is tolerated and kept on the package.
func ValidateConfiguration(mode DeliveryMode, destination DestinationType, warehouseID *kernel.ID) error {
	if _, err := Classify(mode, destination); err != nil {
		return err
	}
	if destination == ToWarehouse && warehouseID == nil {
		return fmt.Errorf("%w: destination %s requires a warehouse",
			ErrInvalidConfiguration, destination)
	}
	return nil
}

// ValidateDriverAssignment checks that the delivery mode allows a driver to
// claim the package.
func ValidateDriverAssignment(mode DeliveryMode) error {
	if mode != ThirdPartyDriver {
		return fmt.Errorf("%w: mode %s has no driver leg",
			ErrInvalidAssignment, mode)
	}
	return nil
}
