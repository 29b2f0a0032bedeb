package orderrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an existing order to the database.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetBySN retrieves an order by its serial number.
func (r *GormOrderRepository) GetBySN(ctx context.Context, orderSN string) (*order.Order, error) {
	if orderSN == "" {
		return nil, errs.NewValueIsRequiredError("orderSN")
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_sn = ?", orderSN).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", orderSN)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetOwnedByShop retrieves the subset of ids that belong to shopID.
func (r *GormOrderRepository) GetOwnedByShop(ctx context.Context, shopID kernel.ID, ids []kernel.ID) ([]*order.Order, error) {
	if err := shopID.Validate(); err != nil {
		return nil, err
	}

	raw := make([]int64, len(ids))
	for i, id := range ids {
		raw[i] = id.Int64()
	}

	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).
		Find(&dtos, "shop_id = ? AND id IN ?", shopID.Int64(), raw).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// GetLineItems retrieves the order's catalog lines.
func (r *GormOrderRepository) GetLineItems(ctx context.Context, orderID kernel.ID) ([]order.LineItem, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderItemDTO
	if err := r.db.WithContext(ctx).
		Order("id").
		Find(&dtos, "order_id = ?", orderID.Int64()).Error; err != nil {
		return nil, err
	}

	lines := make([]order.LineItem, 0, len(dtos))
	for _, dto := range dtos {
		line, err := lineToDomain(dto)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return lines, nil
}
