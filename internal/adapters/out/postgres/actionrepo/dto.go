// Package actionrepo provides data transfer objects and mapping functions
// for the append-only audit trail. The evidence file ids keep their legacy
// comma-separated encoding in the logistics_voucher_file column.
package actionrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/action"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/prep"
)

// ActionDTO represents the database structure for persisting audit
// actions. Rows are immutable once written.
type ActionDTO struct {
	ID              int64 `gorm:"primaryKey"`
	OrderID         int64 `gorm:"index"`
	ActionType      int   `gorm:"index"`
	OrderStatus     int
	ShippingStatus  int
	DestinationType int
	EvidenceFileIDs string `gorm:"column:logistics_voucher_file;size:1024"`
	CreatedBy       string `gorm:"size:128"`
	Remark          string `gorm:"size:1024"`
	CreatedAt       time.Time
}

// TableName specifies the database table name for audit actions.
func (ActionDTO) TableName() string {
	return "order_actions"
}

func fromDomain(a *action.Action) ActionDTO {
	return ActionDTO{
		ID:              a.ID().Int64(),
		OrderID:         a.OrderID().Int64(),
		ActionType:      int(a.Type()),
		OrderStatus:     int(a.Snapshot().OrderStatus),
		ShippingStatus:  int(a.Snapshot().ShippingStatus),
		DestinationType: int(a.Snapshot().Destination),
		EvidenceFileIDs: kernel.JoinIDs(a.EvidenceFileIDs()),
		CreatedBy:       a.CreatedBy(),
		Remark:          a.Remark(),
		CreatedAt:       a.CreatedAt(),
	}
}

func toDomain(dto ActionDTO) (*action.Action, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.NewID(dto.OrderID)
	if err != nil {
		return nil, err
	}
	evidenceIDs, err := kernel.ParseIDs(dto.EvidenceFileIDs)
	if err != nil {
		return nil, err
	}

	snapshot := action.Snapshot{
		OrderStatus:    order.Status(dto.OrderStatus),
		ShippingStatus: order.ShippingStatus(dto.ShippingStatus),
		Destination:    prep.DestinationType(dto.DestinationType),
	}

	return action.RestoreAction(
		id, orderID, action.Type(dto.ActionType), snapshot,
		evidenceIDs, dto.CreatedBy, dto.Remark, dto.CreatedAt,
	)
}
