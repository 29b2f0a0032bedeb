package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/action"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
)

// CompleteDeliveryCommandHandler performs the final delivery step. The
// order moves to Delivered with its finish timestamp, the commercial
// status closes to Completed, the package advances to Delivered, and a
// DeliveryComplete audit entry is appended with the handover photos.
type CompleteDeliveryCommandHandler struct {
	transition orderTransition
}

// NewCompleteDeliveryCommandHandler creates a handler for the delivery
// step.
func NewCompleteDeliveryCommandHandler(uowFactory TransitionUoWFactory, gen ports.IDGenerator) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{
		transition: orderTransition{uowFactory: uowFactory, gen: gen},
	}
}

// Handle processes the delivery. Fails with ErrOrderNotPrepared when the
// order was never batched.
func (h CompleteDeliveryCommandHandler) Handle(ctx context.Context, command CompleteDeliveryCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	return h.transition.run(ctx,
		command.OrderSN(), command.Actor(), command.EvidenceFileIDs(), action.DeliveryComplete,
		nil,
		func(o *order.Order, now time.Time) error {
			return o.CompleteDelivery(now)
		},
	)
}
