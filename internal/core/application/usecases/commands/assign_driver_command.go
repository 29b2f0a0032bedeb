package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var ErrAssignDriverCommandIsNotConstructed = errors.New(
	"AssignDriverCommand must be created via NewAssignDriverCommand constructor",
)

// AssignDriverCommand represents a driver claiming an unassigned package.
// Claims race: two drivers may try the same package at once, and exactly
// one may win.
type AssignDriverCommand struct {
	prepareSN string
	driverID  kernel.ID

	guard kernel.ConstructorGuard
}

// NewAssignDriverCommand creates a command for a driver claim.
func NewAssignDriverCommand(prepareSN string, driverID kernel.ID) (AssignDriverCommand, error) {
	cmd := AssignDriverCommand{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPrepareSN(prepareSN),
		cmd.setDriverID(driverID),
	); err != nil {
		return AssignDriverCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignDriverCommand) Validate() error {
	return c.guard.Validate(ErrAssignDriverCommandIsNotConstructed)
}

// PrepareSN returns the package serial.
func (c AssignDriverCommand) PrepareSN() string {
	return c.prepareSN
}

// DriverID returns the claiming driver.
func (c AssignDriverCommand) DriverID() kernel.ID {
	return c.driverID
}

func (c *AssignDriverCommand) setPrepareSN(prepareSN string) error {
	if prepareSN == "" {
		return errs.NewValueIsRequiredError("prepareSN")
	}
	c.prepareSN = prepareSN
	return nil
}

func (c *AssignDriverCommand) setDriverID(driverID kernel.ID) error {
	if err := driverID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("driverID", err)
	}
	c.driverID = driverID
	return nil
}
