package preprepo

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/prep"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// containsOrderExpr matches an id inside the comma-separated order_ids
// column. The list is wrapped in commas on both sides so id 12 cannot
// match 112.
const containsOrderExpr = "(',' || order_ids || ',') LIKE ?"

func containsOrderPattern(id kernel.ID) string {
	return "%," + id.String() + ",%"
}

// GormPackageRepository implements PackageRepository using GORM.
type GormPackageRepository struct {
	db *gorm.DB
}

// NewGormPackageRepository creates a new GORM package repository.
func NewGormPackageRepository(db *gorm.DB) *GormPackageRepository {
	return &GormPackageRepository{db: db}
}

// Add saves a new package with its item snapshots.
func (r *GormPackageRepository) Add(ctx context.Context, aggregate *prep.Package) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves changes to an existing package. Item snapshots are
// immutable and are not written again.
func (r *GormPackageRepository) Update(ctx context.Context, aggregate *prep.Package) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&PackageDTO{}).
		Omit(clause.Associations).
		Where("id = ?", dto.ID).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// GetBySN retrieves a package by its serial number.
func (r *GormPackageRepository) GetBySN(ctx context.Context, prepareSN string) (*prep.Package, error) {
	if prepareSN == "" {
		return nil, errs.NewValueIsRequiredError("prepareSN")
	}

	var dto PackageDTO
	if err := r.db.WithContext(ctx).
		Preload("Items").
		First(&dto, "prepare_sn = ?", prepareSN).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("package", prepareSN)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetActiveByOrder retrieves the non-complete package containing orderID.
func (r *GormPackageRepository) GetActiveByOrder(ctx context.Context, orderID kernel.ID) (*prep.Package, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto PackageDTO
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("status <> ?", prep.StatusComplete).
		Where(containsOrderExpr, containsOrderPattern(orderID)).
		First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("package", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ExistsActiveForOrders reports whether any of ids already belongs to a
// non-complete package.
func (r *GormPackageRepository) ExistsActiveForOrders(ctx context.Context, ids []kernel.ID) (bool, error) {
	if len(ids) == 0 {
		return false, nil
	}

	contains := r.db.Where(containsOrderExpr, containsOrderPattern(ids[0]))
	for _, id := range ids[1:] {
		contains = contains.Or(containsOrderExpr, containsOrderPattern(id))
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&PackageDTO{}).
		Where("status <> ?", prep.StatusComplete).
		Where(contains).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// Claim atomically assigns driverID to the unclaimed package with the
// given serial. The condition on driver_id makes concurrent claims safe:
// the database lets exactly one of them through.
func (r *GormPackageRepository) Claim(ctx context.Context, prepareSN string, driverID kernel.ID) (bool, error) {
	if prepareSN == "" {
		return false, errs.NewValueIsRequiredError("prepareSN")
	}
	if err := driverID.Validate(); err != nil {
		return false, err
	}

	result := r.db.WithContext(ctx).Model(&PackageDTO{}).
		Where("prepare_sn = ? AND driver_id IS NULL", prepareSN).
		Updates(map[string]any{
			"driver_id":  driverID.Int64(),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}
