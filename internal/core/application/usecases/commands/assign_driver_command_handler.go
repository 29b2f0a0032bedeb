package commands

import (
	"context"
	"fmt"

	"fulfillment/internal/core/domain/model/prep"
)

// AssignDriverCommandHandler resolves the claim race. The repository
// performs a conditional write (assign only while no driver is set), so
// of two concurrent claims exactly one wins and the loser sees
// ErrDriverAlreadyAssigned.
type AssignDriverCommandHandler struct {
	uowFactory PackageUoWFactory
}

// NewAssignDriverCommandHandler creates a handler for driver claims.
func NewAssignDriverCommandHandler(uowFactory PackageUoWFactory) AssignDriverCommandHandler {
	return AssignDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the claim. Fails with an ObjectNotFoundError for an
// unknown serial or driver, ErrInvalidAssignment when the package's
// workflow has no driver leg or the driver is inactive, and
// ErrDriverAlreadyAssigned when another driver won.
func (h AssignDriverCommandHandler) Handle(ctx context.Context, command AssignDriverCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	packagesRepo := uow.PackageRepository()

	pkg, err := packagesRepo.GetBySN(ctx, command.PrepareSN())
	if err != nil {
		return err
	}

	if err := prep.ValidateDriverAssignment(pkg.Mode()); err != nil {
		return err
	}

	driver, err := uow.DirectoryRepository().GetDriver(ctx, command.DriverID())
	if err != nil {
		return err
	}
	if !driver.IsActive() {
		return fmt.Errorf("%w: driver %d is inactive", prep.ErrInvalidAssignment, command.DriverID().Int64())
	}

	claimed, err := packagesRepo.Claim(ctx, command.PrepareSN(), command.DriverID())
	if err != nil {
		return err
	}
	if !claimed {
		return fmt.Errorf("%w: package %s", prep.ErrDriverAlreadyAssigned, command.PrepareSN())
	}

	return uow.Commit(ctx)
}
