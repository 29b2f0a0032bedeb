package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/evidence"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var ErrUploadEvidenceCommandIsNotConstructed = errors.New(
	"UploadEvidenceCommand must be created via NewUploadEvidenceCommand constructor",
)

// UploadEvidenceCommand represents a photo upload. The file lands
// unlinked; a later workflow step or audit append attaches it.
type UploadEvidenceCommand struct {
	raw      []byte
	mimeType string

	guard kernel.ConstructorGuard
}

// NewUploadEvidenceCommand creates an upload command. Size and media
// type limits are checked here so an oversized upload never reaches the
// store.
func NewUploadEvidenceCommand(raw []byte, mimeType string) (UploadEvidenceCommand, error) {
	cmd := UploadEvidenceCommand{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRaw(raw),
		cmd.setMimeType(mimeType),
	); err != nil {
		return UploadEvidenceCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UploadEvidenceCommand) Validate() error {
	return c.guard.Validate(ErrUploadEvidenceCommandIsNotConstructed)
}

// Raw returns the photo bytes.
func (c UploadEvidenceCommand) Raw() []byte {
	return c.raw
}

// MimeType returns the declared media type.
func (c UploadEvidenceCommand) MimeType() string {
	return c.mimeType
}

func (c *UploadEvidenceCommand) setRaw(raw []byte) error {
	if len(raw) == 0 {
		return errs.NewValueIsRequiredError("raw")
	}
	if int64(len(raw)) > evidence.MaxFileSize {
		return evidence.ErrFileTooLarge
	}
	c.raw = raw
	return nil
}

func (c *UploadEvidenceCommand) setMimeType(mimeType string) error {
	if mimeType == "" {
		return errs.NewValueIsRequiredError("mimeType")
	}
	if !evidence.AllowedMediaType(mimeType) {
		return evidence.ErrUnsupportedMediaType
	}
	c.mimeType = mimeType
	return nil
}
