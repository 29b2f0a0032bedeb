package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var ErrGetActionFilesQueryIsNotConstructed = errors.New(
	"GetActionFilesQuery must be created via NewGetActionFilesQuery constructor",
)

// GetActionFilesQuery retrieves the evidence photos attached to a
// single audit entry.
type GetActionFilesQuery struct {
	actionID kernel.ID

	guard kernel.ConstructorGuard
}

// NewGetActionFilesQuery creates an evidence lookup query.
func NewGetActionFilesQuery(actionID kernel.ID) (GetActionFilesQuery, error) {
	if err := actionID.Validate(); err != nil {
		return GetActionFilesQuery{}, errs.NewValueIsInvalidErrorWithCause("actionID", err)
	}

	return GetActionFilesQuery{
		actionID: actionID,
		guard:    kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetActionFilesQuery) Validate() error {
	return q.guard.Validate(ErrGetActionFilesQueryIsNotConstructed)
}

// ActionID returns the audit entry whose files are listed.
func (q GetActionFilesQuery) ActionID() kernel.ID {
	return q.actionID
}

// EvidenceFileResponse is the evidence photo read model.
type EvidenceFileResponse struct {
	ID         kernel.ID
	URL        string
	Size       int64
	MimeType   string
	UploadedAt time.Time
}
