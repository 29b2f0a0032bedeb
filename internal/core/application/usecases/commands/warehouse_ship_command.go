package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var ErrWarehouseShipCommandIsNotConstructed = errors.New(
	"WarehouseShipCommand must be created via NewWarehouseShipCommand constructor",
)

// WarehouseShipCommand represents the warehouse dispatching an order's
// goods toward the end user.
type WarehouseShipCommand struct {
	orderSN         string
	actor           string
	evidenceFileIDs []kernel.ID

	guard kernel.ConstructorGuard
}

// NewWarehouseShipCommand creates a command for the warehouse-dispatch
// step.
func NewWarehouseShipCommand(orderSN, actor string, evidenceFileIDs []kernel.ID) (WarehouseShipCommand, error) {
	cmd := WarehouseShipCommand{
		evidenceFileIDs: evidenceFileIDs,
		guard:           kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderSN(orderSN),
		cmd.setActor(actor),
	); err != nil {
		return WarehouseShipCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c WarehouseShipCommand) Validate() error {
	return c.guard.Validate(ErrWarehouseShipCommandIsNotConstructed)
}

// OrderSN returns the order serial.
func (c WarehouseShipCommand) OrderSN() string {
	return c.orderSN
}

// Actor returns the staff reference performing the step.
func (c WarehouseShipCommand) Actor() string {
	return c.actor
}

// EvidenceFileIDs returns the uploaded photo ids, possibly empty.
func (c WarehouseShipCommand) EvidenceFileIDs() []kernel.ID {
	return c.evidenceFileIDs
}

func (c *WarehouseShipCommand) setOrderSN(orderSN string) error {
	if orderSN == "" {
		return errs.NewValueIsRequiredError("orderSN")
	}
	c.orderSN = orderSN
	return nil
}

func (c *WarehouseShipCommand) setActor(actor string) error {
	if actor == "" {
		return errs.NewValueIsRequiredError("actor")
	}
	c.actor = actor
	return nil
}
