package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/action"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var ErrGetLatestOrderActionQueryIsNotConstructed = errors.New(
	"GetLatestOrderActionQuery must be created via NewGetLatestOrderActionQuery constructor",
)

// GetLatestOrderActionQuery retrieves the most recent audit entry for
// an order, optionally of a single action type. Aftersales flows use
// the type filter to find the open refund request.
type GetLatestOrderActionQuery struct {
	orderID    kernel.ID
	actionType *action.Type

	guard kernel.ConstructorGuard
}

// NewGetLatestOrderActionQuery creates a latest-entry query. A nil
// actionType means any type.
func NewGetLatestOrderActionQuery(
	orderID kernel.ID,
	actionType *action.Type,
) (GetLatestOrderActionQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetLatestOrderActionQuery{}, errs.NewValueIsInvalidErrorWithCause("orderID", err)
	}
	if actionType != nil {
		if err := actionType.Validate(); err != nil {
			return GetLatestOrderActionQuery{}, err
		}
	}

	return GetLatestOrderActionQuery{
		orderID:    orderID,
		actionType: actionType,
		guard:      kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetLatestOrderActionQuery) Validate() error {
	return q.guard.Validate(ErrGetLatestOrderActionQueryIsNotConstructed)
}

// OrderID returns the order to inspect.
func (q GetLatestOrderActionQuery) OrderID() kernel.ID {
	return q.orderID
}

// ActionType returns the type filter, nil for any type.
func (q GetLatestOrderActionQuery) ActionType() *action.Type {
	return q.actionType
}
