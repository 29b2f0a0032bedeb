package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/prep"
	"fulfillment/internal/pkg/errs"
)

var ErrCreatePackageCommandIsNotConstructed = errors.New(
	"CreatePackageCommand must be created via NewCreatePackageCommand constructor",
)

// CreatePackageCommand represents a request to batch one or more of a
// shop's orders into a prepare-goods package.
//
// Example:
//
//	cmd, err := NewCreatePackageCommand(orderIDs, shopID,
//	    prep.ThirdPartyDriver, prep.ToWarehouse, &warehouseID)
//	if err != nil {
//	    return fmt.Errorf("invalid package request: %w", err)
//	}
//	pkg, err := handler.Handle(ctx, cmd)
type CreatePackageCommand struct {
	orderIDs    []kernel.ID
	shopID      kernel.ID
	mode        prep.DeliveryMode
	destination prep.DestinationType
	warehouseID *kernel.ID

	guard kernel.ConstructorGuard
}

// NewCreatePackageCommand creates a command to build a package. Validates
// that the order list is nonempty, the shop id is valid, and the delivery
// configuration forms one of the four legal workflows.
func NewCreatePackageCommand(
	orderIDs []kernel.ID,
	shopID kernel.ID,
	mode prep.DeliveryMode,
	destination prep.DestinationType,
	warehouseID *kernel.ID,
) (CreatePackageCommand, error) {
	cmd := CreatePackageCommand{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderIDs(orderIDs),
		cmd.setShopID(shopID),
		cmd.setConfiguration(mode, destination, warehouseID),
	); err != nil {
		return CreatePackageCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePackageCommand) Validate() error {
	return c.guard.Validate(ErrCreatePackageCommandIsNotConstructed)
}

// OrderIDs returns the orders to batch.
func (c CreatePackageCommand) OrderIDs() []kernel.ID {
	return c.orderIDs
}

// ShopID returns the owning shop.
func (c CreatePackageCommand) ShopID() kernel.ID {
	return c.shopID
}

// Mode returns the delivery mode.
func (c CreatePackageCommand) Mode() prep.DeliveryMode {
	return c.mode
}

// Destination returns the destination type.
func (c CreatePackageCommand) Destination() prep.DestinationType {
	return c.destination
}

// WarehouseID returns the warehouse reference, or nil on direct workflows.
func (c CreatePackageCommand) WarehouseID() *kernel.ID {
	return c.warehouseID
}

func (c *CreatePackageCommand) setOrderIDs(orderIDs []kernel.ID) error {
	if len(orderIDs) == 0 {
		return errs.NewValueIsRequiredError("orderIDs")
	}
	for _, id := range orderIDs {
		if err := id.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("orderIDs", err)
		}
	}
	c.orderIDs = orderIDs
	return nil
}

func (c *CreatePackageCommand) setShopID(shopID kernel.ID) error {
	if err := shopID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("shopID", err)
	}
	c.shopID = shopID
	return nil
}

func (c *CreatePackageCommand) setConfiguration(mode prep.DeliveryMode, destination prep.DestinationType, warehouseID *kernel.ID) error {
	if err := prep.ValidateConfiguration(mode, destination, warehouseID); err != nil {
		return err
	}
	c.mode = mode
	c.destination = destination
	c.warehouseID = warehouseID
	return nil
}
