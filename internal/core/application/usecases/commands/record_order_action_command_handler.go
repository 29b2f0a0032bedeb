package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/ports"
)

// RecordOrderActionCommandHandler appends an audit entry without moving
// any status. Aftersales events (refunds, returns, cancellations) flow
// through here.
type RecordOrderActionCommandHandler struct {
	uowFactory ActionUoWFactory
	gen        ports.IDGenerator
}

// NewRecordOrderActionCommandHandler creates a handler for plain audit
// appends.
func NewRecordOrderActionCommandHandler(uowFactory ActionUoWFactory, gen ports.IDGenerator) RecordOrderActionCommandHandler {
	return RecordOrderActionCommandHandler{
		uowFactory: uowFactory,
		gen:        gen,
	}
}

// Handle appends the entry with the order's current status snapshot and
// links any supplied evidence files to it. Fails with an
// ObjectNotFoundError when the order or a file id is unknown.
func (h RecordOrderActionCommandHandler) Handle(ctx context.Context, command RecordOrderActionCommand) error {
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

	o, err := uow.OrderRepository().Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	if _, err := appendAction(ctx, uow.ActionRepository(), uow.EvidenceRepository(),
		h.gen, o, command.ActionType(), command.EvidenceFileIDs(),
		command.Actor(), command.Remark(), time.Now()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
