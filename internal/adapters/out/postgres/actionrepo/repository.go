package actionrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/action"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormActionRepository implements ActionRepository using GORM. The trail
// is append-only, so there is no update path.
type GormActionRepository struct {
	db *gorm.DB
}

// NewGormActionRepository creates a new GORM action repository.
func NewGormActionRepository(db *gorm.DB) *GormActionRepository {
	return &GormActionRepository{db: db}
}

// Add appends a new action to the trail.
func (r *GormActionRepository) Add(ctx context.Context, aggregate *action.Action) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves an action by ID.
func (r *GormActionRepository) Get(ctx context.Context, id kernel.ID) (*action.Action, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ActionDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("action", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
