package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/action"
	"fulfillment/internal/core/domain/model/evidence"
	"fulfillment/internal/core/domain/model/prep"
	"fulfillment/internal/core/ports"
)

// MarkPreparedCommandHandler performs the goods-prepared step: the package
// moves to Prepared, every batched order follows, one GoodsPrepared audit
// entry is appended per order, and the evidence photos are linked to the
// package. All of it commits or rolls back as one transaction.
type MarkPreparedCommandHandler struct {
	uowFactory TransitionUoWFactory
	gen        ports.IDGenerator
}

// NewMarkPreparedCommandHandler creates a handler for the goods-prepared
// step.
func NewMarkPreparedCommandHandler(uowFactory TransitionUoWFactory, gen ports.IDGenerator) MarkPreparedCommandHandler {
	return MarkPreparedCommandHandler{
		uowFactory: uowFactory,
		gen:        gen,
	}
}

// Handle processes the goods-prepared step. Fails with an
// ObjectNotFoundError for an unknown serial and an InvalidTransitionError
// when the package is already past Pending.
func (h MarkPreparedCommandHandler) Handle(ctx context.Context, command MarkPreparedCommand) error {
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
	ordersRepo := uow.OrderRepository()
	actionsRepo := uow.ActionRepository()
	filesRepo := uow.EvidenceRepository()

	pkg, err := packagesRepo.GetBySN(ctx, command.PrepareSN())
	if err != nil {
		return err
	}

	now := time.Now()
	if err := pkg.Advance(prep.StatusPrepared, now); err != nil {
		return err
	}
	if err := packagesRepo.Update(ctx, pkg); err != nil {
		return err
	}

	for _, orderID := range pkg.OrderIDs() {
		o, err := ordersRepo.Get(ctx, orderID)
		if err != nil {
			return err
		}

		if err := o.MarkPrepared(now); err != nil {
			return err
		}
		if err := ordersRepo.Update(ctx, o); err != nil {
			return err
		}

		entry, err := buildAction(h.gen, o, action.GoodsPrepared,
			command.EvidenceFileIDs(), command.Actor(), "", now)
		if err != nil {
			return err
		}
		if err := actionsRepo.Add(ctx, entry); err != nil {
			return err
		}
	}

	// Preparation photos document the package, not any single order.
	if err := linkEvidence(ctx, filesRepo, command.EvidenceFileIDs(),
		evidence.PackageLink{PackageID: pkg.ID()}); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
