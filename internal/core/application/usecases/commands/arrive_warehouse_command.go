package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var ErrArriveWarehouseCommandIsNotConstructed = errors.New(
	"ArriveWarehouseCommand must be created via NewArriveWarehouseCommand constructor",
)

// ArriveWarehouseCommand represents a driver dropping an order's goods at
// the warehouse.
type ArriveWarehouseCommand struct {
	orderSN         string
	driverID        kernel.ID
	evidenceFileIDs []kernel.ID

	guard kernel.ConstructorGuard
}

// NewArriveWarehouseCommand creates a command for the warehouse-arrival
// step.
func NewArriveWarehouseCommand(orderSN string, driverID kernel.ID, evidenceFileIDs []kernel.ID) (ArriveWarehouseCommand, error) {
	cmd := ArriveWarehouseCommand{
		evidenceFileIDs: evidenceFileIDs,
		guard:           kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderSN(orderSN),
		cmd.setDriverID(driverID),
	); err != nil {
		return ArriveWarehouseCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ArriveWarehouseCommand) Validate() error {
	return c.guard.Validate(ErrArriveWarehouseCommandIsNotConstructed)
}

// OrderSN returns the order serial.
func (c ArriveWarehouseCommand) OrderSN() string {
	return c.orderSN
}

// DriverID returns the delivering driver.
func (c ArriveWarehouseCommand) DriverID() kernel.ID {
	return c.driverID
}

// EvidenceFileIDs returns the uploaded photo ids.
func (c ArriveWarehouseCommand) EvidenceFileIDs() []kernel.ID {
	return c.evidenceFileIDs
}

func (c *ArriveWarehouseCommand) setOrderSN(orderSN string) error {
	if orderSN == "" {
		return errs.NewValueIsRequiredError("orderSN")
	}
	c.orderSN = orderSN
	return nil
}

func (c *ArriveWarehouseCommand) setDriverID(driverID kernel.ID) error {
	if err := driverID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("driverID", err)
	}
	c.driverID = driverID
	return nil
}
