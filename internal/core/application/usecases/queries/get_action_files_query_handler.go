package queries

import (
	"context"
	"database/sql"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetActionFilesQueryHandler resolves the evidence photos of an audit
// entry. Uses direct SQL queries for optimal read performance in the
// CQRS pattern.
type GetActionFilesQueryHandler struct {
	db *gorm.DB
}

// NewGetActionFilesQueryHandler creates a handler for evidence lookups.
func NewGetActionFilesQueryHandler(db *gorm.DB) GetActionFilesQueryHandler {
	return GetActionFilesQueryHandler{db: db}
}

// Handle executes the lookup. Returns errs.ErrObjectNotFound when the
// audit entry does not exist; an entry without photos yields an empty
// slice.
func (h GetActionFilesQueryHandler) Handle(
	ctx context.Context,
	query GetActionFilesQuery,
) ([]EvidenceFileResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var evidenceIDs string
	row := h.db.WithContext(ctx).Raw(`
		SELECT logistics_voucher_file
		FROM order_actions
		WHERE id = ?
	`, query.ActionID().Int64()).Row()

	if err := row.Scan(&evidenceIDs); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.NewObjectNotFoundError("actionID", query.ActionID().Int64())
		}
		return nil, err
	}

	ids, err := kernel.ParseIDs(evidenceIDs)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []EvidenceFileResponse{}, nil
	}

	return h.loadFiles(ctx, ids)
}

func (h GetActionFilesQueryHandler) loadFiles(
	ctx context.Context,
	ids []kernel.ID,
) ([]EvidenceFileResponse, error) {
	raw := make([]int64, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Int64())
	}

	files := make([]EvidenceFileResponse, 0, len(ids))

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			url,
			size,
			mime_type,
			uploaded_at
		FROM evidence_files
		WHERE id IN ?
		ORDER BY id
	`, raw).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var file EvidenceFileResponse
		var id int64

		err = rows.Scan(&id, &file.URL, &file.Size, &file.MimeType, &file.UploadedAt)
		if err != nil {
			return nil, err
		}

		file.ID, err = kernel.NewID(id)
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return files, nil
}
