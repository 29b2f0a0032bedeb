package commands

import (
	"context"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/action"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
)

// PickupOrderCommandHandler performs the driver-pickup step. The order
// moves to DriverPickup with its received-by-driver timestamp, the
// package advances to DriverClaimed, and a DriverPickup audit entry is
// appended with the handover photos.
type PickupOrderCommandHandler struct {
	transition orderTransition
}

// NewPickupOrderCommandHandler creates a handler for the pickup step.
func NewPickupOrderCommandHandler(uowFactory TransitionUoWFactory, gen ports.IDGenerator) PickupOrderCommandHandler {
	return PickupOrderCommandHandler{
		transition: orderTransition{uowFactory: uowFactory, gen: gen},
	}
}

// Handle processes the pickup. Fails with ErrOrderNotPrepared when the
// order was never batched, and with ErrInvalidAssignment when the caller
// is not the driver holding the package.
func (h PickupOrderCommandHandler) Handle(ctx context.Context, command PickupOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	actor := fmt.Sprintf("driver:%s", command.DriverID())
	return h.transition.run(ctx,
		command.OrderSN(), actor, command.EvidenceFileIDs(), action.DriverPickup,
		requireDriver(command.DriverID()),
		func(o *order.Order, now time.Time) error {
			return o.PickupByDriver(command.DriverID(), now)
		},
	)
}
