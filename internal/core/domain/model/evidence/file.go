package evidence

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// MaxFileSize is the largest evidence photo accepted, in bytes.
const MaxFileSize = 4 << 20

var (
	// ErrFileIsNotConstructed is returned when a File instance was not
	// created through NewFile or RestoreFile.
	ErrFileIsNotConstructed = errors.New("File must be created via NewFile constructor")

	// ErrFileTooLarge is raised when an upload exceeds MaxFileSize.
	ErrFileTooLarge = errors.New("file exceeds maximum size")

	// ErrUnsupportedMediaType is raised for anything except JPEG and PNG.
	ErrUnsupportedMediaType = errors.New("unsupported media type")
)

// AllowedMediaType reports whether mime is an accepted evidence format.
func AllowedMediaType(mime string) bool {
	return mime == "image/jpeg" || mime == "image/png"
}

// File is a stored evidence photo. Files arrive unlinked from the upload
// endpoint and are bound to an owner (action, package, or SKU) by the
// handler that consumes them.
type File struct {
	id         kernel.ID
	url        string
	size       int64
	mimeType   string
	link       LinkTarget
	uploadedAt time.Time

	guard kernel.ConstructorGuard
}

// NewFile creates an unlinked evidence file after checking the size and
// media-type limits the store enforces on upload.
func NewFile(id kernel.ID, url string, size int64, mimeType string, now time.Time) (*File, error) {
	f := &File{
		link:       Unlinked{},
		uploadedAt: now,
		guard:      kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		f.setID(id),
		f.setURL(url),
		f.setSize(size),
		f.setMimeType(mimeType),
	); err != nil {
		return nil, err
	}

	return f, nil
}

// RestoreFile reconstructs a file from persistent storage with its link
// intact. A nil link is normalized to Unlinked.
func RestoreFile(id kernel.ID, url string, size int64, mimeType string, link LinkTarget, uploadedAt time.Time) (*File, error) {
	f, err := NewFile(id, url, size, mimeType, uploadedAt)
	if err != nil {
		return nil, err
	}

	if link != nil {
		f.link = link
	}
	return f, nil
}

// Validate ensures the File instance was properly constructed.
func (f *File) Validate() error {
	if f == nil {
		return ErrFileIsNotConstructed
	}
	return f.guard.Validate(ErrFileIsNotConstructed)
}

// ID returns the file's unique identifier.
func (f *File) ID() kernel.ID { return f.id }

// URL returns where the stored bytes can be fetched.
func (f *File) URL() string { return f.url }

// Size returns the stored size in bytes.
func (f *File) Size() int64 { return f.size }

// MimeType returns the media type recorded at upload.
func (f *File) MimeType() string { return f.mimeType }

// Link returns what the file is attached to.
func (f *File) Link() LinkTarget { return f.link }

// UploadedAt returns when the file was stored.
func (f *File) UploadedAt() time.Time { return f.uploadedAt }

// IsLinked reports whether the file has an owner.
func (f *File) IsLinked() bool {
	_, unlinked := f.link.(Unlinked)
	return !unlinked
}

// LinkTo binds the file to target. The link is a weak reference with no
// ownership: relinking a linked file overwrites the previous link.
func (f *File) LinkTo(target LinkTarget) error {
	if target == nil {
		return errs.NewValueIsRequiredError("linkTarget")
	}
	if _, unlinked := target.(Unlinked); unlinked {
		return errs.NewValueIsInvalidError("linkTarget")
	}

	f.link = target
	return nil
}

func (f *File) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	f.id = id
	return nil
}

func (f *File) setURL(url string) error {
	if url == "" {
		return errs.NewValueIsRequiredError("url")
	}
	f.url = url
	return nil
}

func (f *File) setSize(size int64) error {
	if size <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("size",
			fmt.Errorf("%d is not greater than 0", size))
	}
	if size > MaxFileSize {
		return fmt.Errorf("%w: %d bytes, limit is %d", ErrFileTooLarge, size, MaxFileSize)
	}
	f.size = size
	return nil
}

func (f *File) setMimeType(mimeType string) error {
	if !AllowedMediaType(mimeType) {
		return fmt.Errorf("%w: %s", ErrUnsupportedMediaType, mimeType)
	}
	f.mimeType = mimeType
	return nil
}
