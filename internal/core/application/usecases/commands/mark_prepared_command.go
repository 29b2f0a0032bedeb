package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var ErrMarkPreparedCommandIsNotConstructed = errors.New(
	"MarkPreparedCommand must be created via NewMarkPreparedCommand constructor",
)

// MarkPreparedCommand represents the merchant confirming a package's goods
// with photo evidence. It is the first transition of every workflow.
type MarkPreparedCommand struct {
	prepareSN       string
	actor           string
	evidenceFileIDs []kernel.ID

	guard kernel.ConstructorGuard
}

// NewMarkPreparedCommand creates a command for the goods-prepared step.
func NewMarkPreparedCommand(prepareSN, actor string, evidenceFileIDs []kernel.ID) (MarkPreparedCommand, error) {
	cmd := MarkPreparedCommand{
		evidenceFileIDs: evidenceFileIDs,
		guard:           kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPrepareSN(prepareSN),
		cmd.setActor(actor),
	); err != nil {
		return MarkPreparedCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkPreparedCommand) Validate() error {
	return c.guard.Validate(ErrMarkPreparedCommandIsNotConstructed)
}

// PrepareSN returns the package serial.
func (c MarkPreparedCommand) PrepareSN() string {
	return c.prepareSN
}

// Actor returns the merchant reference performing the step.
func (c MarkPreparedCommand) Actor() string {
	return c.actor
}

// EvidenceFileIDs returns the uploaded photo ids.
func (c MarkPreparedCommand) EvidenceFileIDs() []kernel.ID {
	return c.evidenceFileIDs
}

func (c *MarkPreparedCommand) setPrepareSN(prepareSN string) error {
	if prepareSN == "" {
		return errs.NewValueIsRequiredError("prepareSN")
	}
	c.prepareSN = prepareSN
	return nil
}

func (c *MarkPreparedCommand) setActor(actor string) error {
	if actor == "" {
		return errs.NewValueIsRequiredError("actor")
	}
	c.actor = actor
	return nil
}
