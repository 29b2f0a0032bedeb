// Package evidencerepo provides data transfer objects and mapping
// functions for evidence file records. The link target maps to the legacy
// (biz_type, biz_id) column pair.
package evidencerepo

import (
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/evidence"
	"fulfillment/internal/core/domain/model/kernel"
)

// Legacy biz_type discriminators.
const (
	bizTypeOrderAction = "order_action"
	bizTypePackage     = "prepare_goods"
	bizTypeSku         = "product_sku"
)

// FileDTO represents the database structure for persisting evidence file
// records. A NULL biz_type means the file was uploaded but never linked.
type FileDTO struct {
	ID         int64  `gorm:"primaryKey"`
	URL        string `gorm:"size:512"`
	Size       int64
	MimeType   string  `gorm:"size:64"`
	BizType    *string `gorm:"size:32;index:idx_evidence_biz"`
	BizID      *int64  `gorm:"index:idx_evidence_biz"`
	UploadedAt time.Time
}

// TableName specifies the database table name for evidence files.
func (FileDTO) TableName() string {
	return "evidence_files"
}

func fromDomain(f *evidence.File) (FileDTO, error) {
	bizType, bizID, err := linkToColumns(f.Link())
	if err != nil {
		return FileDTO{}, err
	}

	return FileDTO{
		ID:         f.ID().Int64(),
		URL:        f.URL(),
		Size:       f.Size(),
		MimeType:   f.MimeType(),
		BizType:    bizType,
		BizID:      bizID,
		UploadedAt: f.UploadedAt(),
	}, nil
}

func toDomain(dto FileDTO) (*evidence.File, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	link, err := columnsToLink(dto.BizType, dto.BizID)
	if err != nil {
		return nil, err
	}

	return evidence.RestoreFile(id, dto.URL, dto.Size, dto.MimeType, link, dto.UploadedAt)
}

func linkToColumns(link evidence.LinkTarget) (*string, *int64, error) {
	switch target := link.(type) {
	case evidence.Unlinked, nil:
		return nil, nil, nil
	case evidence.OrderActionLink:
		return columns(bizTypeOrderAction, target.ActionID)
	case evidence.PackageLink:
		return columns(bizTypePackage, target.PackageID)
	case evidence.SkuLink:
		return columns(bizTypeSku, target.SkuID)
	}
	return nil, nil, fmt.Errorf("unknown link target %T", link)
}

func columns(bizType string, id kernel.ID) (*string, *int64, error) {
	raw := id.Int64()
	return &bizType, &raw, nil
}

func columnsToLink(bizType *string, bizID *int64) (evidence.LinkTarget, error) {
	if bizType == nil || bizID == nil {
		return evidence.Unlinked{}, nil
	}

	id, err := kernel.NewID(*bizID)
	if err != nil {
		return nil, err
	}

	switch *bizType {
	case bizTypeOrderAction:
		return evidence.OrderActionLink{ActionID: id}, nil
	case bizTypePackage:
		return evidence.PackageLink{PackageID: id}, nil
	case bizTypeSku:
		return evidence.SkuLink{SkuID: id}, nil
	}
	return nil, fmt.Errorf("unknown biz_type %q", *bizType)
}
