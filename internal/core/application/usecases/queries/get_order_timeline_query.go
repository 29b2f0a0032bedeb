package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var ErrGetOrderTimelineQueryIsNotConstructed = errors.New(
	"GetOrderTimelineQuery must be created via NewGetOrderTimelineQuery constructor",
)

// GetOrderTimelineQuery retrieves an order's full audit trail in
// chronological order with evidence photo URLs resolved. This backs
// the tracking view a user sees for their order.
//
// Example:
//
//	query, err := NewGetOrderTimelineQuery(orderID)
//	if err != nil {
//	    return err
//	}
//
//	timeline, err := handler.Handle(ctx, query)
//	for _, entry := range timeline {
//	    fmt.Printf("%s: %d photos\n", entry.Action.Type, len(entry.EvidenceURLs))
//	}
type GetOrderTimelineQuery struct {
	orderID kernel.ID

	guard kernel.ConstructorGuard
}

// NewGetOrderTimelineQuery creates a timeline query.
func NewGetOrderTimelineQuery(orderID kernel.ID) (GetOrderTimelineQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderTimelineQuery{}, errs.NewValueIsInvalidErrorWithCause("orderID", err)
	}

	return GetOrderTimelineQuery{
		orderID: orderID,
		guard:   kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderTimelineQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderTimelineQueryIsNotConstructed)
}

// OrderID returns the order whose timeline is assembled.
func (q GetOrderTimelineQuery) OrderID() kernel.ID {
	return q.orderID
}

// TimelineEntryResponse pairs an audit entry with its resolved photo
// URLs. A photo id that no longer resolves is skipped rather than
// failing the whole timeline.
type TimelineEntryResponse struct {
	Action       OrderActionResponse
	EvidenceURLs []string
}
