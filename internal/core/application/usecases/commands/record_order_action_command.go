package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/action"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var ErrRecordOrderActionCommandIsNotConstructed = errors.New(
	"RecordOrderActionCommand must be created via NewRecordOrderActionCommand constructor",
)

// RecordOrderActionCommand represents a plain audit append with no status
// movement. Refund and return events (codes 6 through 11) are recorded
// this way.
type RecordOrderActionCommand struct {
	orderID         kernel.ID
	actionType      action.Type
	actor           string
	evidenceFileIDs []kernel.ID
	remark          string

	guard kernel.ConstructorGuard
}

// NewRecordOrderActionCommand creates a command for a generic audit
// append.
func NewRecordOrderActionCommand(
	orderID kernel.ID,
	actionType action.Type,
	actor string,
	evidenceFileIDs []kernel.ID,
	remark string,
) (RecordOrderActionCommand, error) {
	cmd := RecordOrderActionCommand{
		evidenceFileIDs: evidenceFileIDs,
		remark:          remark,
		guard:           kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActionType(actionType),
		cmd.setActor(actor),
	); err != nil {
		return RecordOrderActionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordOrderActionCommand) Validate() error {
	return c.guard.Validate(ErrRecordOrderActionCommandIsNotConstructed)
}

// OrderID returns the order the entry belongs to.
func (c RecordOrderActionCommand) OrderID() kernel.ID {
	return c.orderID
}

// ActionType returns what happened.
func (c RecordOrderActionCommand) ActionType() action.Type {
	return c.actionType
}

// Actor returns whoever triggered the event.
func (c RecordOrderActionCommand) Actor() string {
	return c.actor
}

// EvidenceFileIDs returns the uploaded photo ids, possibly empty.
func (c RecordOrderActionCommand) EvidenceFileIDs() []kernel.ID {
	return c.evidenceFileIDs
}

// Remark returns the free-form operator note, possibly empty.
func (c RecordOrderActionCommand) Remark() string {
	return c.remark
}

func (c *RecordOrderActionCommand) setOrderID(orderID kernel.ID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("orderID", err)
	}
	c.orderID = orderID
	return nil
}

func (c *RecordOrderActionCommand) setActionType(actionType action.Type) error {
	if err := actionType.Validate(); err != nil {
		return err
	}
	c.actionType = actionType
	return nil
}

func (c *RecordOrderActionCommand) setActor(actor string) error {
	if actor == "" {
		return errs.NewValueIsRequiredError("actor")
	}
	c.actor = actor
	return nil
}
