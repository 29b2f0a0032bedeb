package directory

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrWarehouseIsNotConstructed is returned when a Warehouse instance was
// not created through NewWarehouse.
var ErrWarehouseIsNotConstructed = errors.New("Warehouse must be created via NewWarehouse constructor")

// Warehouse is a transfer point that warehouse-bound workflows route
// through.
type Warehouse struct {
	id            kernel.ID
	code          string
	name          string
	contactPerson string
	contactPhone  string
	address       string
	city          string

	guard kernel.ConstructorGuard
}

// NewWarehouse creates a validated warehouse record.
func NewWarehouse(id kernel.ID, code, name, contactPerson, contactPhone, address, city string) (*Warehouse, error) {
	w := &Warehouse{
		contactPerson: contactPerson,
		contactPhone:  contactPhone,
		address:       address,
		city:          city,
		guard:         kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		w.setID(id),
		w.setCode(code),
		w.setName(name),
	); err != nil {
		return nil, err
	}

	return w, nil
}

// Validate ensures the Warehouse instance was properly constructed.
func (w *Warehouse) Validate() error {
	if w == nil {
		return ErrWarehouseIsNotConstructed
	}
	return w.guard.Validate(ErrWarehouseIsNotConstructed)
}

// ID returns the warehouse's unique identifier.
func (w *Warehouse) ID() kernel.ID { return w.id }

// Code returns the short unique warehouse code.
func (w *Warehouse) Code() string { return w.code }

// Name returns the warehouse's display name.
func (w *Warehouse) Name() string { return w.name }

// ContactPerson returns the on-site contact, possibly empty.
func (w *Warehouse) ContactPerson() string { return w.contactPerson }

// ContactPhone returns the on-site phone, possibly empty.
func (w *Warehouse) ContactPhone() string { return w.contactPhone }

// Address returns the street address.
func (w *Warehouse) Address() string { return w.address }

// City returns the city.
func (w *Warehouse) City() string { return w.city }

func (w *Warehouse) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	w.id = id
	return nil
}

func (w *Warehouse) setCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("code")
	}
	w.code = code
	return nil
}

func (w *Warehouse) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	w.name = name
	return nil
}
