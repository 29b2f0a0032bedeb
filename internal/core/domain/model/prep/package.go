package prep

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrPackageIsNotConstructed is returned when a Package instance was not
// created through NewPackage or RestorePackage.
var ErrPackageIsNotConstructed = errors.New("Package must be created via NewPackage constructor")

// Package is the prepare-goods aggregate root. It batches one or more
// orders from a single shop, carries the delivery configuration that
// determines the workflow, and walks the workflow's prepare-status path
// from Pending to Complete.
//
// Package follows these invariants:
//   - Must reference at least one order
//   - Delivery mode, destination type, and warehouse reference must form a
//     legal workflow (see ValidateConfiguration)
//   - Status moves strictly forward along the workflow path, one step at a
//     time
//   - A driver may be set once, and only on third-party workflows
//   - Can only be created through NewPackage or RestorePackage
type Package struct {
	id          kernel.ID
	prepareSN   string
	shopID      kernel.ID
	orderIDs    []kernel.ID
	items       []Item
	mode        DeliveryMode
	destination DestinationType
	workflow    Workflow
	status      PrepareStatus
	warehouseID *kernel.ID
	driverID    *kernel.ID
	createdAt   time.Time
	updatedAt   time.Time

	guard kernel.ConstructorGuard
}

// NewPackage creates a fresh package in the Pending state. The serial is
// minted by the caller (the create handler owns the identifier generator);
// items are the line snapshots of every order in orderIDs.
func NewPackage(
	id kernel.ID,
	prepareSN string,
	shopID kernel.ID,
	orderIDs []kernel.ID,
	items []Item,
	mode DeliveryMode,
	destination DestinationType,
	warehouseID *kernel.ID,
	now time.Time,
) (*Package, error) {
	p := &Package{
		status:    StatusPending,
		createdAt: now,
		updatedAt: now,
		guard:     kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setPrepareSN(prepareSN),
		p.setShopID(shopID),
		p.setOrderIDs(orderIDs),
		p.setConfiguration(mode, destination, warehouseID),
	); err != nil {
		return nil, err
	}

	p.items = items
	return p, nil
}

// RestorePackage reconstructs a package from persistent storage, including
// its current status and driver assignment. The restored aggregate behaves
// identically to one that walked the workflow in memory.
func RestorePackage(
	id kernel.ID,
	prepareSN string,
	shopID kernel.ID,
	orderIDs []kernel.ID,
	items []Item,
	mode DeliveryMode,
	destination DestinationType,
	warehouseID *kernel.ID,
	driverID *kernel.ID,
	status PrepareStatus,
	createdAt time.Time,
	updatedAt time.Time,
) (*Package, error) {
	p := &Package{
		createdAt: createdAt,
		updatedAt: updatedAt,
		guard:     kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setPrepareSN(prepareSN),
		p.setShopID(shopID),
		p.setOrderIDs(orderIDs),
		p.setConfiguration(mode, destination, warehouseID),
		p.setStatus(status),
	); err != nil {
		return nil, err
	}

	if driverID != nil {
		if err := p.setDriver(*driverID); err != nil {
			return nil, err
		}
	}

	p.items = items
	return p, nil
}

// Validate ensures the Package instance was properly constructed.
func (p *Package) Validate() error {
	if p == nil {
		return ErrPackageIsNotConstructed
	}
	return p.guard.Validate(ErrPackageIsNotConstructed)
}

// IsEqual compares two packages by their unique identifiers.
func (p *Package) IsEqual(other *Package) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the package's unique identifier.
func (p *Package) ID() kernel.ID { return p.id }

// PrepareSN returns the package's human-facing serial number.
func (p *Package) PrepareSN() string { return p.prepareSN }

// ShopID returns the owning shop's identifier.
func (p *Package) ShopID() kernel.ID { return p.shopID }

// OrderIDs returns the identifiers of the orders batched in the package.
func (p *Package) OrderIDs() []kernel.ID {
	out := make([]kernel.ID, len(p.orderIDs))
	copy(out, p.orderIDs)
	return out
}

// Items returns the line-item snapshots taken at creation time.
func (p *Package) Items() []Item {
	out := make([]Item, len(p.items))
	copy(out, p.items)
	return out
}

// Mode returns the delivery mode.
func (p *Package) Mode() DeliveryMode { return p.mode }

// Destination returns the destination type.
func (p *Package) Destination() DestinationType { return p.destination }

// Workflow returns the workflow derived from the delivery configuration.
func (p *Package) Workflow() Workflow { return p.workflow }

// Status returns the package's current prepare status.
func (p *Package) Status() PrepareStatus { return p.status }

// Warehouse returns the warehouse identifier, or nil on direct workflows.
func (p *Package) Warehouse() *kernel.ID { return p.warehouseID }

// Driver returns the assigned driver's identifier, or nil while the
// package is unclaimed.
func (p *Package) Driver() *kernel.ID { return p.driverID }

// CreatedAt returns the creation timestamp.
func (p *Package) CreatedAt() time.Time { return p.createdAt }

// UpdatedAt returns the last modification timestamp.
func (p *Package) UpdatedAt() time.Time { return p.updatedAt }

// ContainsOrder reports whether the given order is part of the package.
func (p *Package) ContainsOrder(orderID kernel.ID) bool {
	for _, id := range p.orderIDs {
		if id.IsEqual(orderID) {
			return true
		}
	}
	return false
}

// NextStatus returns the single status the package may advance to, or
// false when the package is complete.
func (p *Package) NextStatus() (PrepareStatus, bool) {
	next := ValidTransitions(p.workflow, p.status)
	if len(next) == 0 {
		return p.status, false
	}
	return next[0], true
}

// Advance moves the package to target if target is the next status on the
// workflow path. Any other move fails with an InvalidTransitionError that
// names both the current status and the attempted target.
func (p *Package) Advance(target PrepareStatus, now time.Time) error {
	if err := target.Validate(); err != nil {
		return err
	}

	next, ok := p.NextStatus()
	if !ok || next != target {
		return NewInvalidTransitionError(p.workflow, p.status, target)
	}

	p.status = target
	p.updatedAt = now
	return nil
}

// AssignDriver records that driverID claimed the package. The workflow
// must have a driver leg and the package must still be unclaimed; a second
// claim fails with ErrDriverAlreadyAssigned.
func (p *Package) AssignDriver(driverID kernel.ID, now time.Time) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	if err := ValidateDriverAssignment(p.mode); err != nil {
		return err
	}
	if p.driverID != nil {
		return fmt.Errorf("%w: package %s is held by driver %s",
			ErrDriverAlreadyAssigned, p.prepareSN, p.driverID)
	}

	p.driverID = &driverID
	p.updatedAt = now
	return nil
}

func (p *Package) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Package) setPrepareSN(sn string) error {
	if sn == "" {
		return errs.NewValueIsRequiredError("prepareSN")
	}
	p.prepareSN = sn
	return nil
}

func (p *Package) setShopID(shopID kernel.ID) error {
	if err := shopID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("shopID", err)
	}
	p.shopID = shopID
	return nil
}

func (p *Package) setOrderIDs(orderIDs []kernel.ID) error {
	if len(orderIDs) == 0 {
		return errs.NewValueIsRequiredError("orderIDs")
	}
	for _, id := range orderIDs {
		if err := id.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("orderIDs", err)
		}
	}
	p.orderIDs = make([]kernel.ID, len(orderIDs))
	copy(p.orderIDs, orderIDs)
	return nil
}

func (p *Package) setConfiguration(mode DeliveryMode, destination DestinationType, warehouseID *kernel.ID) error {
	if err := ValidateConfiguration(mode, destination, warehouseID); err != nil {
		return err
	}

	workflow, err := Classify(mode, destination)
	if err != nil {
		return err
	}

	p.mode = mode
	p.destination = destination
	p.workflow = workflow
	if warehouseID != nil {
		id := *warehouseID
		p.warehouseID = &id
	}
	return nil
}

func (p *Package) setDriver(driverID kernel.ID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	if err := ValidateDriverAssignment(p.mode); err != nil {
		return err
	}
	p.driverID = &driverID
	return nil
}

func (p *Package) setStatus(status PrepareStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	p.status = status
	return nil
}
