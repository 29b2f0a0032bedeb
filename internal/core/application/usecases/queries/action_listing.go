package queries

import (
	"database/sql"
	"time"

	"fulfillment/internal/core/domain/model/action"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/prep"
)

// OrderActionResponse is the audit trail row shared by the action
// queries. The snapshot fields record the order state at the moment
// the action was written, not the current state.
type OrderActionResponse struct {
	ID              kernel.ID
	OrderID         kernel.ID
	Type            action.Type
	OrderStatus     order.Status
	ShippingStatus  order.ShippingStatus
	Destination     prep.DestinationType
	EvidenceFileIDs []kernel.ID
	CreatedBy       string
	Remark          string
	CreatedAt       time.Time
}

// orderActionColumns is the select list scanOrderActions expects.
const orderActionColumns = `
	id,
	order_id,
	action_type,
	order_status,
	shipping_status,
	destination_type,
	logistics_voucher_file,
	created_by,
	remark,
	created_at`

func scanOrderActions(rows *sql.Rows) ([]OrderActionResponse, error) {
	actions := make([]OrderActionResponse, 0)

	for rows.Next() {
		entry, err := scanOrderAction(rows)
		if err != nil {
			return nil, err
		}
		actions = append(actions, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return actions, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrderAction(row rowScanner) (OrderActionResponse, error) {
	var (
		entry       OrderActionResponse
		id          int64
		orderID     int64
		actionType  int
		orderStatus int
		shipping    int
		dest        int
		evidenceIDs string
	)

	err := row.Scan(
		&id,
		&orderID,
		&actionType,
		&orderStatus,
		&shipping,
		&dest,
		&evidenceIDs,
		&entry.CreatedBy,
		&entry.Remark,
		&entry.CreatedAt,
	)
	if err != nil {
		return OrderActionResponse{}, err
	}

	entry.ID, err = kernel.NewID(id)
	if err != nil {
		return OrderActionResponse{}, err
	}
	entry.OrderID, err = kernel.NewID(orderID)
	if err != nil {
		return OrderActionResponse{}, err
	}
	entry.EvidenceFileIDs, err = kernel.ParseIDs(evidenceIDs)
	if err != nil {
		return OrderActionResponse{}, err
	}
	entry.Type = action.Type(actionType)
	entry.OrderStatus = order.Status(orderStatus)
	entry.ShippingStatus = order.ShippingStatus(shipping)
	entry.Destination = prep.DestinationType(dest)

	return entry, nil
}
