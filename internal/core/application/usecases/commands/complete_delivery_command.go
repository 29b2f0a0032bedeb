package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var ErrCompleteDeliveryCommandIsNotConstructed = errors.New(
	"CompleteDeliveryCommand must be created via NewCompleteDeliveryCommand constructor",
)

// CompleteDeliveryCommand represents the goods reaching the recipient,
// with photo evidence of the handover.
type CompleteDeliveryCommand struct {
	orderSN         string
	actor           string
	evidenceFileIDs []kernel.ID

	guard kernel.ConstructorGuard
}

// NewCompleteDeliveryCommand creates a command for the final delivery
// step.
func NewCompleteDeliveryCommand(orderSN, actor string, evidenceFileIDs []kernel.ID) (CompleteDeliveryCommand, error) {
	cmd := CompleteDeliveryCommand{
		evidenceFileIDs: evidenceFileIDs,
		guard:           kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderSN(orderSN),
		cmd.setActor(actor),
	); err != nil {
		return CompleteDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDeliveryCommandIsNotConstructed)
}

// OrderSN returns the order serial.
func (c CompleteDeliveryCommand) OrderSN() string {
	return c.orderSN
}

// Actor returns whoever completed the delivery.
func (c CompleteDeliveryCommand) Actor() string {
	return c.actor
}

// EvidenceFileIDs returns the uploaded photo ids.
func (c CompleteDeliveryCommand) EvidenceFileIDs() []kernel.ID {
	return c.evidenceFileIDs
}

func (c *CompleteDeliveryCommand) setOrderSN(orderSN string) error {
	if orderSN == "" {
		return errs.NewValueIsRequiredError("orderSN")
	}
	c.orderSN = orderSN
	return nil
}

func (c *CompleteDeliveryCommand) setActor(actor string) error {
	if actor == "" {
		return errs.NewValueIsRequiredError("actor")
	}
	c.actor = actor
	return nil
}
