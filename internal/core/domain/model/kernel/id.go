package kernel

import (
	"fmt"
	"strconv"
	"strings"

	"fulfillment/internal/pkg/errs"
)

// ErrIDIsNotConstructed indicates that an ID was not created through one of
// the constructor functions. It is returned when validating a zero-value ID.
var ErrIDIsNotConstructed = errs.NewValueIsRequiredError("ID must be created via NewID or IDFromString")

// ID is a value object wrapping a positive 64-bit snowflake identifier.
// It identifies orders, packages, audit actions, evidence files, drivers,
// warehouses, and shops throughout the domain.
//
// The zero value is invalid; construct through NewID or IDFromString.
// ID is immutable and safe for concurrent use.
type ID struct {
	value int64
}

// NewID wraps a raw identifier. Returns an error unless value is positive.
func NewID(value int64) (ID, error) {
	if value <= 0 {
		return ID{}, errs.NewValueIsInvalidErrorWithCause("id",
			fmt.Errorf("%d is not a positive identifier", value))
	}
	return ID{value: value}, nil
}

// IDFromString parses the decimal string representation of an identifier.
func IDFromString(s string) (ID, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return ID{}, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return NewID(v)
}

// Int64 returns the raw identifier value.
func (id ID) Int64() int64 {
	return id.value
}

// String returns the decimal representation of the identifier.
func (id ID) String() string {
	return strconv.FormatInt(id.value, 10)
}

// IsEqual reports whether two IDs carry the same value.
func (id ID) IsEqual(other ID) bool {
	return id.value == other.value
}

// IsZero reports whether the ID is the (invalid) zero value.
func (id ID) IsZero() bool {
	return id.value == 0
}

// Validate returns ErrIDIsNotConstructed for the zero value.
func (id ID) Validate() error {
	if id.value == 0 {
		return ErrIDIsNotConstructed
	}
	return nil
}

// JoinIDs encodes ids as a comma-separated list of decimal integers.
// This is the legacy persisted representation of a package's contained
// orders and an action's evidence files; it must round-trip byte-for-byte
// against the existing store.
func JoinIDs(ids []ID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = id.String()
	}
	return strings.Join(parts, ",")
}

// ParseIDs decodes a comma-separated list of decimal integers.
// Empty input yields an empty slice.
func ParseIDs(s string) ([]ID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return []ID{}, nil
	}
	parts := strings.Split(s, ",")
	ids := make([]ID, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) == "" {
			continue
		}
		id, err := IDFromString(p)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
