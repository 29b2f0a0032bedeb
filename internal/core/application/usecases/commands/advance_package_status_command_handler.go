package commands

import (
	"context"
	"time"
)

// AdvancePackageStatusCommandHandler moves a package forward along its
// workflow path. The aggregate rejects anything that is not the single
// next status.
type AdvancePackageStatusCommandHandler struct {
	uowFactory PackageUoWFactory
}

// NewAdvancePackageStatusCommandHandler creates a handler for package
// status advancement.
func NewAdvancePackageStatusCommandHandler(uowFactory PackageUoWFactory) AdvancePackageStatusCommandHandler {
	return AdvancePackageStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the advancement. Fails with an ObjectNotFoundError for
// an unknown serial and an InvalidTransitionError for an illegal move.
func (h AdvancePackageStatusCommandHandler) Handle(ctx context.Context, command AdvancePackageStatusCommand) error {
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

	if err := pkg.Advance(command.Target(), time.Now()); err != nil {
		return err
	}

	if err := packagesRepo.Update(ctx, pkg); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
