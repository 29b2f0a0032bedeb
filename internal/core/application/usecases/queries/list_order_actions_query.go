package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/action"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var ErrListOrderActionsQueryIsNotConstructed = errors.New(
	"ListOrderActionsQuery must be created via NewListOrderActionsQuery constructor",
)

// ListOrderActionsQuery retrieves an order's audit trail, optionally
// narrowed to a single action type.
//
// Example:
//
//	query, err := NewListOrderActionsQuery(orderID, nil, false)
//	if err != nil {
//	    return err
//	}
//
//	trail, err := handler.Handle(ctx, query)
//	for _, entry := range trail {
//	    fmt.Printf("%s at %s by %s\n", entry.Type, entry.CreatedAt, entry.CreatedBy)
//	}
type ListOrderActionsQuery struct {
	orderID     kernel.ID
	actionType  *action.Type
	newestFirst bool

	guard kernel.ConstructorGuard
}

// NewListOrderActionsQuery creates an audit trail query. A nil
// actionType means all types. With newestFirst false the trail reads
// chronologically.
func NewListOrderActionsQuery(
	orderID kernel.ID,
	actionType *action.Type,
	newestFirst bool,
) (ListOrderActionsQuery, error) {
	if err := orderID.Validate(); err != nil {
		return ListOrderActionsQuery{}, errs.NewValueIsInvalidErrorWithCause("orderID", err)
	}
	if actionType != nil {
		if err := actionType.Validate(); err != nil {
			return ListOrderActionsQuery{}, err
		}
	}

	return ListOrderActionsQuery{
		orderID:     orderID,
		actionType:  actionType,
		newestFirst: newestFirst,
		guard:       kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrderActionsQuery) Validate() error {
	return q.guard.Validate(ErrListOrderActionsQueryIsNotConstructed)
}

// OrderID returns the order whose trail is listed.
func (q ListOrderActionsQuery) OrderID() kernel.ID {
	return q.orderID
}

// ActionType returns the type filter, nil for all types.
func (q ListOrderActionsQuery) ActionType() *action.Type {
	return q.actionType
}

// NewestFirst reports whether the trail is returned in reverse
// chronological order.
func (q ListOrderActionsQuery) NewestFirst() bool {
	return q.newestFirst
}
