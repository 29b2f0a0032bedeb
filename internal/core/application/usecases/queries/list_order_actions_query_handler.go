package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListOrderActionsQueryHandler retrieves an order's audit trail.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type ListOrderActionsQueryHandler struct {
	db *gorm.DB
}

// NewListOrderActionsQueryHandler creates a handler for audit trail listings.
func NewListOrderActionsQueryHandler(db *gorm.DB) ListOrderActionsQueryHandler {
	return ListOrderActionsQueryHandler{db: db}
}

// Handle executes the listing. Ties on created_at break by id, which
// rises monotonically, so the trail order is stable.
func (h ListOrderActionsQueryHandler) Handle(
	ctx context.Context,
	query ListOrderActionsQuery,
) ([]OrderActionResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT` + orderActionColumns + `
		FROM order_actions
		WHERE order_id = ?`
	args := []any{query.OrderID().Int64()}

	if actionType := query.ActionType(); actionType != nil {
		sql += ` AND action_type = ?`
		args = append(args, int(*actionType))
	}

	if query.NewestFirst() {
		sql += `
		ORDER BY created_at DESC, id DESC`
	} else {
		sql += `
		ORDER BY created_at, id`
	}

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderActions(rows)
}
