package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var ErrPickupOrderCommandIsNotConstructed = errors.New(
	"PickupOrderCommand must be created via NewPickupOrderCommand constructor",
)

// PickupOrderCommand represents a driver collecting an order's goods from
// the merchant, with photo evidence of the handover.
type PickupOrderCommand struct {
	orderSN         string
	driverID        kernel.ID
	evidenceFileIDs []kernel.ID

	guard kernel.ConstructorGuard
}

// NewPickupOrderCommand creates a command for the driver-pickup step.
func NewPickupOrderCommand(orderSN string, driverID kernel.ID, evidenceFileIDs []kernel.ID) (PickupOrderCommand, error) {
	cmd := PickupOrderCommand{
		evidenceFileIDs: evidenceFileIDs,
		guard:           kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderSN(orderSN),
		cmd.setDriverID(driverID),
	); err != nil {
		return PickupOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PickupOrderCommand) Validate() error {
	return c.guard.Validate(ErrPickupOrderCommandIsNotConstructed)
}

// OrderSN returns the order serial.
func (c PickupOrderCommand) OrderSN() string {
	return c.orderSN
}

// DriverID returns the collecting driver.
func (c PickupOrderCommand) DriverID() kernel.ID {
	return c.driverID
}

// EvidenceFileIDs returns the uploaded photo ids.
func (c PickupOrderCommand) EvidenceFileIDs() []kernel.ID {
	return c.evidenceFileIDs
}

func (c *PickupOrderCommand) setOrderSN(orderSN string) error {
	if orderSN == "" {
		return errs.NewValueIsRequiredError("orderSN")
	}
	c.orderSN = orderSN
	return nil
}

func (c *PickupOrderCommand) setDriverID(driverID kernel.ID) error {
	if err := driverID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("driverID", err)
	}
	c.driverID = driverID
	return nil
}
