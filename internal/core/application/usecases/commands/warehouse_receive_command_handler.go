package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/action"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
)

// WarehouseReceiveCommandHandler performs the warehouse-receipt step. The
// order moves to WarehouseReceived, the package follows, and a
// WarehouseReceive audit entry is appended.
type WarehouseReceiveCommandHandler struct {
	transition orderTransition
}

// NewWarehouseReceiveCommandHandler creates a handler for the receipt step.
func NewWarehouseReceiveCommandHandler(uowFactory TransitionUoWFactory, gen ports.IDGenerator) WarehouseReceiveCommandHandler {
	return WarehouseReceiveCommandHandler{
		transition: orderTransition{uowFactory: uowFactory, gen: gen},
	}
}

// Handle processes the receipt. Fails with ErrOrderNotPrepared when the
// order was never batched.
func (h WarehouseReceiveCommandHandler) Handle(ctx context.Context, command WarehouseReceiveCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	return h.transition.run(ctx,
		command.OrderSN(), command.Actor(), command.EvidenceFileIDs(), action.WarehouseReceive,
		nil,
		func(o *order.Order, now time.Time) error {
			return o.ReceiveAtWarehouse(now)
		},
	)
}
