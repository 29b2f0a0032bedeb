package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/prep"
	"fulfillment/internal/pkg/errs"
)

var ErrAdvancePackageStatusCommandIsNotConstructed = errors.New(
	"AdvancePackageStatusCommand must be created via NewAdvancePackageStatusCommand constructor",
)

// AdvancePackageStatusCommand represents a request to move a package one
// step forward along its workflow path.
type AdvancePackageStatusCommand struct {
	prepareSN string
	target    prep.PrepareStatus

	guard kernel.ConstructorGuard
}

// NewAdvancePackageStatusCommand creates a command to advance a package.
// The target must be a defined prepare status; whether it is reachable is
// decided by the aggregate inside the handler.
func NewAdvancePackageStatusCommand(prepareSN string, target prep.PrepareStatus) (AdvancePackageStatusCommand, error) {
	cmd := AdvancePackageStatusCommand{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPrepareSN(prepareSN),
		cmd.setTarget(target),
	); err != nil {
		return AdvancePackageStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvancePackageStatusCommand) Validate() error {
	return c.guard.Validate(ErrAdvancePackageStatusCommandIsNotConstructed)
}

// PrepareSN returns the package serial.
func (c AdvancePackageStatusCommand) PrepareSN() string {
	return c.prepareSN
}

// Target returns the requested prepare status.
func (c AdvancePackageStatusCommand) Target() prep.PrepareStatus {
	return c.target
}

func (c *AdvancePackageStatusCommand) setPrepareSN(prepareSN string) error {
	if prepareSN == "" {
		return errs.NewValueIsRequiredError("prepareSN")
	}
	c.prepareSN = prepareSN
	return nil
}

func (c *AdvancePackageStatusCommand) setTarget(target prep.PrepareStatus) error {
	if err := target.Validate(); err != nil {
		return err
	}
	c.target = target
	return nil
}
