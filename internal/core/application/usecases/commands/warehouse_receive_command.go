package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var ErrWarehouseReceiveCommandIsNotConstructed = errors.New(
	"WarehouseReceiveCommand must be created via NewWarehouseReceiveCommand constructor",
)

// WarehouseReceiveCommand represents warehouse staff confirming receipt of
// an order's goods. Evidence is optional for staff-side steps.
type WarehouseReceiveCommand struct {
	orderSN         string
	actor           string
	evidenceFileIDs []kernel.ID

	guard kernel.ConstructorGuard
}

// NewWarehouseReceiveCommand creates a command for the warehouse-receipt
// step.
func NewWarehouseReceiveCommand(orderSN, actor string, evidenceFileIDs []kernel.ID) (WarehouseReceiveCommand, error) {
	cmd := WarehouseReceiveCommand{
		evidenceFileIDs: evidenceFileIDs,
		guard:           kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderSN(orderSN),
		cmd.setActor(actor),
	); err != nil {
		return WarehouseReceiveCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c WarehouseReceiveCommand) Validate() error {
	return c.guard.Validate(ErrWarehouseReceiveCommandIsNotConstructed)
}

// OrderSN returns the order serial.
func (c WarehouseReceiveCommand) OrderSN() string {
	return c.orderSN
}

// Actor returns the staff reference performing the step.
func (c WarehouseReceiveCommand) Actor() string {
	return c.actor
}

// EvidenceFileIDs returns the uploaded photo ids, possibly empty.
func (c WarehouseReceiveCommand) EvidenceFileIDs() []kernel.ID {
	return c.evidenceFileIDs
}

func (c *WarehouseReceiveCommand) setOrderSN(orderSN string) error {
	if orderSN == "" {
		return errs.NewValueIsRequiredError("orderSN")
	}
	c.orderSN = orderSN
	return nil
}

func (c *WarehouseReceiveCommand) setActor(actor string) error {
	if actor == "" {
		return errs.NewValueIsRequiredError("actor")
	}
	c.actor = actor
	return nil
}
