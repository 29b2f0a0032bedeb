package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/action"
	"fulfillment/internal/core/domain/model/evidence"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/prep"
	"fulfillment/internal/core/ports"
)

// nextID mints a fresh identifier from the generator as a kernel.ID.
func nextID(gen ports.IDGenerator) (kernel.ID, error) {
	raw, err := gen.Next()
	if err != nil {
		return kernel.ID{}, err
	}
	return kernel.NewID(raw)
}

// buildAction mints an id and assembles an audit entry from the order's
// post-write state.
func buildAction(
	gen ports.IDGenerator,
	o *order.Order,
	actionType action.Type,
	evidenceIDs []kernel.ID,
	actor string,
	remark string,
	now time.Time,
) (*action.Action, error) {
	actionID, err := nextID(gen)
	if err != nil {
		return nil, err
	}

	snapshot := action.Snapshot{
		OrderStatus:    o.Status(),
		ShippingStatus: o.ShippingStatus(),
		Destination:    o.Destination(),
	}

	return action.NewAction(actionID, o.ID(), actionType, snapshot, evidenceIDs, actor, remark, now)
}

// appendAction writes one audit entry with the order's post-write snapshot
// and links the supplied evidence files to it. Runs inside the caller's
// transaction.
func appendAction(
	ctx context.Context,
	actions ports.ActionRepository,
	files ports.EvidenceRepository,
	gen ports.IDGenerator,
	o *order.Order,
	actionType action.Type,
	evidenceIDs []kernel.ID,
	actor string,
	remark string,
	now time.Time,
) (*action.Action, error) {
	entry, err := buildAction(gen, o, actionType, evidenceIDs, actor, remark, now)
	if err != nil {
		return nil, err
	}

	if err := actions.Add(ctx, entry); err != nil {
		return nil, err
	}

	if err := linkEvidence(ctx, files, evidenceIDs, evidence.OrderActionLink{ActionID: entry.ID()}); err != nil {
		return nil, err
	}

	return entry, nil
}

// linkEvidence binds every file in ids to target. Missing files surface as
// ObjectNotFoundError from the repository.
func linkEvidence(ctx context.Context, files ports.EvidenceRepository, ids []kernel.ID, target evidence.LinkTarget) error {
	if len(ids) == 0 {
		return nil
	}

	records, err := files.GetMany(ctx, ids)
	if err != nil {
		return err
	}

	for _, record := range records {
		if err := record.LinkTo(target); err != nil {
			return err
		}
		if err := files.Update(ctx, record); err != nil {
			return err
		}
	}
	return nil
}

// syncPackageStatus advances the package to the prepare status implied by
// the order's new shipping status. A package whose batch-mate already
// moved it is left alone.
func syncPackageStatus(pkg *prep.Package, shipping order.ShippingStatus, now time.Time) error {
	target := order.PrepareStatusFor(shipping)
	if pkg.Status() == target {
		return nil
	}
	return pkg.Advance(target, now)
}
