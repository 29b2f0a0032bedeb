package commands

import (
	"context"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/action"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
)

// ArriveWarehouseCommandHandler performs the warehouse-arrival step. The
// order moves to DriverToWarehouse with its arrival timestamp, the
// package follows, and a DriverToWarehouse audit entry is appended.
type ArriveWarehouseCommandHandler struct {
	transition orderTransition
}

// NewArriveWarehouseCommandHandler creates a handler for the arrival step.
func NewArriveWarehouseCommandHandler(uowFactory TransitionUoWFactory, gen ports.IDGenerator) ArriveWarehouseCommandHandler {
	return ArriveWarehouseCommandHandler{
		transition: orderTransition{uowFactory: uowFactory, gen: gen},
	}
}

// Handle processes the arrival. Fails with ErrOrderNotPrepared when the
// order was never batched, and with ErrInvalidAssignment when the caller
// is not the driver holding the package.
func (h ArriveWarehouseCommandHandler) Handle(ctx context.Context, command ArriveWarehouseCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	actor := fmt.Sprintf("driver:%s", command.DriverID())
	return h.transition.run(ctx,
		command.OrderSN(), actor, command.EvidenceFileIDs(), action.DriverToWarehouse,
		requireDriver(command.DriverID()),
		func(o *order.Order, now time.Time) error {
			return o.ArriveAtWarehouse(now)
		},
	)
}
