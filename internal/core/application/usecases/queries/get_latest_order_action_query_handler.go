package queries

import (
	"context"
	"database/sql"
	"errors"

	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetLatestOrderActionQueryHandler retrieves the most recent audit
// entry for an order. Uses direct SQL queries for optimal read
// performance in the CQRS pattern.
type GetLatestOrderActionQueryHandler struct {
	db *gorm.DB
}

// NewGetLatestOrderActionQueryHandler creates a handler for
// latest-entry lookups.
func NewGetLatestOrderActionQueryHandler(db *gorm.DB) GetLatestOrderActionQueryHandler {
	return GetLatestOrderActionQueryHandler{db: db}
}

// Handle executes the lookup. Returns errs.ErrObjectNotFound when the
// order has no matching entries.
func (h GetLatestOrderActionQueryHandler) Handle(
	ctx context.Context,
	query GetLatestOrderActionQuery,
) (OrderActionResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderActionResponse{}, err
	}

	sqlText := `
		SELECT` + orderActionColumns + `
		FROM order_actions
		WHERE order_id = ?`
	args := []any{query.OrderID().Int64()}

	if actionType := query.ActionType(); actionType != nil {
		sqlText += ` AND action_type = ?`
		args = append(args, int(*actionType))
	}

	sqlText += `
		ORDER BY created_at DESC, id DESC
		LIMIT 1`

	row := h.db.WithContext(ctx).Raw(sqlText, args...).Row()

	entry, err := scanOrderAction(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return OrderActionResponse{}, errs.NewObjectNotFoundError(
				"orderID", query.OrderID().Int64())
		}
		return OrderActionResponse{}, err
	}

	return entry, nil
}
