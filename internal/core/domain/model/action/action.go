package action

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/prep"
	"fulfillment/internal/pkg/errs"
)

// ErrActionIsNotConstructed is returned when an Action instance was not
// created through NewAction or RestoreAction.
var ErrActionIsNotConstructed = errors.New("Action must be created via NewAction constructor")

// Snapshot freezes the order's state at the moment an action was taken.
// The audit trail stays truthful even after the order moves on.
type Snapshot struct {
	OrderStatus    order.Status
	ShippingStatus order.ShippingStatus
	Destination    prep.DestinationType
}

// Validate checks the snapshot's status fields.
func (s Snapshot) Validate() error {
	return errors.Join(
		s.OrderStatus.Validate(),
		s.ShippingStatus.Validate(),
	)
}

// Action is one immutable entry in an order's audit trail. Entries are
// append-only: they carry a state snapshot, the actor who triggered the
// event, and the ids of the evidence photos taken on the spot.
type Action struct {
	id              kernel.ID
	orderID         kernel.ID
	actionType      Type
	snapshot        Snapshot
	evidenceFileIDs []kernel.ID
	createdBy       string
	remark          string
	createdAt       time.Time

	guard kernel.ConstructorGuard
}

// NewAction creates a validated audit entry. evidenceFileIDs may be empty
// for staff-side steps that carry no photos.
func NewAction(
	id kernel.ID,
	orderID kernel.ID,
	actionType Type,
	snapshot Snapshot,
	evidenceFileIDs []kernel.ID,
	createdBy string,
	remark string,
	now time.Time,
) (*Action, error) {
	a := &Action{
		remark:    remark,
		createdAt: now,
		guard:     kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setOrderID(orderID),
		a.setType(actionType),
		a.setSnapshot(snapshot),
		a.setEvidenceFileIDs(evidenceFileIDs),
		a.setCreatedBy(createdBy),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAction reconstructs an audit entry from persistent storage.
func RestoreAction(
	id kernel.ID,
	orderID kernel.ID,
	actionType Type,
	snapshot Snapshot,
	evidenceFileIDs []kernel.ID,
	createdBy string,
	remark string,
	createdAt time.Time,
) (*Action, error) {
	return NewAction(id, orderID, actionType, snapshot, evidenceFileIDs, createdBy, remark, createdAt)
}

// Validate ensures the Action instance was properly constructed.
func (a *Action) Validate() error {
	if a == nil {
		return ErrActionIsNotConstructed
	}
	return a.guard.Validate(ErrActionIsNotConstructed)
}

// IsEqual compares two actions by their unique identifiers.
func (a *Action) IsEqual(other *Action) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// ID returns the action's unique identifier.
func (a *Action) ID() kernel.ID { return a.id }

// OrderID returns the order the action belongs to.
func (a *Action) OrderID() kernel.ID { return a.orderID }

// Type returns what happened.
func (a *Action) Type() Type { return a.actionType }

// Snapshot returns the order state frozen at action time.
func (a *Action) Snapshot() Snapshot { return a.snapshot }

// EvidenceFileIDs returns the linked evidence photo ids.
func (a *Action) EvidenceFileIDs() []kernel.ID {
	out := make([]kernel.ID, len(a.evidenceFileIDs))
	copy(out, a.evidenceFileIDs)
	return out
}

// CreatedBy returns the actor reference that triggered the action.
func (a *Action) CreatedBy() string { return a.createdBy }

// Remark returns the free-form operator note, possibly empty.
func (a *Action) Remark() string { return a.remark }

// CreatedAt returns when the action was recorded.
func (a *Action) CreatedAt() time.Time { return a.createdAt }

func (a *Action) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Action) setOrderID(orderID kernel.ID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("orderID", err)
	}
	a.orderID = orderID
	return nil
}

func (a *Action) setType(t Type) error {
	if err := t.Validate(); err != nil {
		return err
	}
	a.actionType = t
	return nil
}

func (a *Action) setSnapshot(s Snapshot) error {
	if err := s.Validate(); err != nil {
		return err
	}
	a.snapshot = s
	return nil
}

func (a *Action) setEvidenceFileIDs(ids []kernel.ID) error {
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("evidenceFileIDs", err)
		}
	}
	a.evidenceFileIDs = make([]kernel.ID, len(ids))
	copy(a.evidenceFileIDs, ids)
	return nil
}

func (a *Action) setCreatedBy(createdBy string) error {
	if createdBy == "" {
		return errs.NewValueIsRequiredError("createdBy")
	}
	a.createdBy = createdBy
	return nil
}
