package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/action"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
)

// WarehouseShipCommandHandler performs the warehouse-dispatch step. The
// order moves to DriverToUser with its shipped-from-warehouse timestamp,
// the package advances to WarehouseShipped, and a WarehouseShip audit
// entry is appended.
type WarehouseShipCommandHandler struct {
	transition orderTransition
}

// NewWarehouseShipCommandHandler creates a handler for the dispatch step.
func NewWarehouseShipCommandHandler(uowFactory TransitionUoWFactory, gen ports.IDGenerator) WarehouseShipCommandHandler {
	return WarehouseShipCommandHandler{
		transition: orderTransition{uowFactory: uowFactory, gen: gen},
	}
}

// Handle processes the dispatch. Fails with ErrOrderNotPrepared when the
// order was never batched.
func (h WarehouseShipCommandHandler) Handle(ctx context.Context, command WarehouseShipCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	return h.transition.run(ctx,
		command.OrderSN(), command.Actor(), command.EvidenceFileIDs(), action.WarehouseShip,
		nil,
		func(o *order.Order, now time.Time) error {
			return o.ShipFromWarehouse(now)
		},
	)
}
