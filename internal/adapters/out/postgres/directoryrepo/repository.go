package directoryrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/directory"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDirectoryRepository implements DirectoryRepository using GORM.
type GormDirectoryRepository struct {
	db *gorm.DB
}

// NewGormDirectoryRepository creates a new GORM directory repository.
func NewGormDirectoryRepository(db *gorm.DB) *GormDirectoryRepository {
	return &GormDirectoryRepository{db: db}
}

// GetDriver retrieves a driver profile by ID.
func (r *GormDirectoryRepository) GetDriver(ctx context.Context, id kernel.ID) (*directory.Driver, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DriverDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("driver", id.String())
		}
		return nil, err
	}

	return driverToDomain(dto)
}

// GetWarehouse retrieves a warehouse record by ID.
func (r *GormDirectoryRepository) GetWarehouse(ctx context.Context, id kernel.ID) (*directory.Warehouse, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto WarehouseDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("warehouse", id.String())
		}
		return nil, err
	}

	return warehouseToDomain(dto)
}
