package commands

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/action"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/prep"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// ErrOrderNotPrepared is returned when a transition is requested for an
// order that was never batched into a package.
var ErrOrderNotPrepared = errors.New("order does not belong to any package")

// orderTransition is the shared core of the five workflow transition
// handlers. Within one transaction it loads the order and its active
// package, applies the order-level move, advances the package in
// lockstep, appends the audit entry, and links the evidence photos.
type orderTransition struct {
	uowFactory TransitionUoWFactory
	gen        ports.IDGenerator
}

// run executes the transition. check, when set, inspects the package
// before anything is written (driver-identity checks live there).
func (t orderTransition) run(
	ctx context.Context,
	orderSN string,
	actor string,
	evidenceIDs []kernel.ID,
	actionType action.Type,
	check func(*prep.Package) error,
	apply func(*order.Order, time.Time) error,
) error {
	uow := t.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ordersRepo := uow.OrderRepository()
	packagesRepo := uow.PackageRepository()

	o, err := ordersRepo.GetBySN(ctx, orderSN)
	if err != nil {
		return err
	}

	pkg, err := packagesRepo.GetActiveByOrder(ctx, o.ID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrOrderNotPrepared
	}
	if err != nil {
		return err
	}

	if check != nil {
		if err := check(pkg); err != nil {
			return err
		}
	}

	now := time.Now()
	if err := apply(o, now); err != nil {
		return err
	}
	if err := syncPackageStatus(pkg, o.ShippingStatus(), now); err != nil {
		return err
	}

	if err := ordersRepo.Update(ctx, o); err != nil {
		return err
	}
	if err := packagesRepo.Update(ctx, pkg); err != nil {
		return err
	}

	if _, err := appendAction(ctx, uow.ActionRepository(), uow.EvidenceRepository(),
		t.gen, o, actionType, evidenceIDs, actor, "", now); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// requireDriver checks that driverID is the driver holding the package.
func requireDriver(driverID kernel.ID) func(*prep.Package) error {
	return func(pkg *prep.Package) error {
		if pkg.Driver() == nil || !pkg.Driver().IsEqual(driverID) {
			return prep.ErrInvalidAssignment
		}
		return nil
	}
}
