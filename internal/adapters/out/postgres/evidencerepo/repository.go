package evidencerepo

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/evidence"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormEvidenceRepository implements EvidenceRepository using GORM.
type GormEvidenceRepository struct {
	db *gorm.DB
}

// NewGormEvidenceRepository creates a new GORM evidence repository.
func NewGormEvidenceRepository(db *gorm.DB) *GormEvidenceRepository {
	return &GormEvidenceRepository{db: db}
}

// Add saves a new file record.
func (r *GormEvidenceRepository) Add(ctx context.Context, file *evidence.File) error {
	if err := file.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(file)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves link-state changes to an existing record. Unlinking writes
// NULLs back, so the update works on a column map rather than a struct.
func (r *GormEvidenceRepository) Update(ctx context.Context, file *evidence.File) error {
	if err := file.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(file)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&FileDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"url":       dto.URL,
			"size":      dto.Size,
			"mime_type": dto.MimeType,
			"biz_type":  dto.BizType,
			"biz_id":    dto.BizID,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Get retrieves a file record by ID.
func (r *GormEvidenceRepository) Get(ctx context.Context, id kernel.ID) (*evidence.File, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto FileDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("evidenceFile", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetMany retrieves the records for ids, failing if any is missing.
func (r *GormEvidenceRepository) GetMany(ctx context.Context, ids []kernel.ID) ([]*evidence.File, error) {
	if len(ids) == 0 {
		return []*evidence.File{}, nil
	}

	raw := make([]int64, len(ids))
	for i, id := range ids {
		raw[i] = id.Int64()
	}

	var dtos []FileDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "id IN ?", raw).Error; err != nil {
		return nil, err
	}
	if len(dtos) != len(ids) {
		return nil, errs.NewObjectNotFoundError("evidenceFileIDs", kernel.JoinIDs(ids))
	}

	files := make([]*evidence.File, 0, len(dtos))
	for _, dto := range dtos {
		file, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}

	return files, nil
}

// GetUnlinkedBefore retrieves unlinked records uploaded before cutoff.
func (r *GormEvidenceRepository) GetUnlinkedBefore(ctx context.Context, cutoff time.Time) ([]*evidence.File, error) {
	var dtos []FileDTO
	if err := r.db.WithContext(ctx).
		Find(&dtos, "biz_type IS NULL AND uploaded_at < ?", cutoff).Error; err != nil {
		return nil, err
	}

	files := make([]*evidence.File, 0, len(dtos))
	for _, dto := range dtos {
		file, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}

	return files, nil
}

// Delete removes a file record.
func (r *GormEvidenceRepository) Delete(ctx context.Context, id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Delete(&FileDTO{}, "id = ?", id.Int64()).Error
}
