package directory

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrDriverIsNotConstructed is returned when a Driver instance was not
// created through NewDriver.
var ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")

// Driver is a registered third-party courier. The fulfillment core only
// needs enough of the profile to resolve claims and display listings;
// account management lives elsewhere.
type Driver struct {
	id           kernel.ID
	name         string
	phone        string
	vehiclePlate string
	active       bool

	guard kernel.ConstructorGuard
}

// NewDriver creates a validated driver profile.
func NewDriver(id kernel.ID, name, phone, vehiclePlate string, active bool) (*Driver, error) {
	d := &Driver{
		vehiclePlate: vehiclePlate,
		active:       active,
		guard:        kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
		d.setPhone(phone),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// Validate ensures the Driver instance was properly constructed.
func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

// ID returns the driver's unique identifier.
func (d *Driver) ID() kernel.ID { return d.id }

// Name returns the driver's display name.
func (d *Driver) Name() string { return d.name }

// Phone returns the driver's contact number.
func (d *Driver) Phone() string { return d.phone }

// VehiclePlate returns the registered plate, possibly empty.
func (d *Driver) VehiclePlate() string { return d.vehiclePlate }

// IsActive reports whether the driver may claim packages.
func (d *Driver) IsActive() bool { return d.active }

func (d *Driver) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	d.name = name
	return nil
}

func (d *Driver) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	d.phone = phone
	return nil
}
