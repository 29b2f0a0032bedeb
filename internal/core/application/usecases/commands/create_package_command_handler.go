package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/prep"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/snowflake"
)

var (
	// ErrOrderAlreadyPrepared is returned when a supplied order already
	// belongs to a non-complete package.
	ErrOrderAlreadyPrepared = errors.New("order already belongs to an active package")
)

// CreatePackageCommandHandler builds a prepare-goods package from a shop's
// orders. The package row, its item snapshots, and the one-active-package
// check all happen inside a single transaction.
type CreatePackageCommandHandler struct {
	uowFactory CreatePackageUoWFactory
	gen        ports.IDGenerator
}

// NewCreatePackageCommandHandler creates a handler for package creation.
func NewCreatePackageCommandHandler(uowFactory CreatePackageUoWFactory, gen ports.IDGenerator) CreatePackageCommandHandler {
	return CreatePackageCommandHandler{
		uowFactory: uowFactory,
		gen:        gen,
	}
}

// Handle processes the creation command. Fails with an ObjectNotFoundError
// when none of the supplied orders belong to the shop, and with
// ErrOrderAlreadyPrepared when any of them is already batched.
func (h CreatePackageCommandHandler) Handle(ctx context.Context, command CreatePackageCommand) (*prep.Package, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ordersRepo := uow.OrderRepository()
	packagesRepo := uow.PackageRepository()

	owned, err := ordersRepo.GetOwnedByShop(ctx, command.ShopID(), command.OrderIDs())
	if err != nil {
		return nil, err
	}
	if len(owned) != len(command.OrderIDs()) {
		return nil, errs.NewObjectNotFoundError("orderIDs", command.OrderIDs())
	}

	taken, err := packagesRepo.ExistsActiveForOrders(ctx, command.OrderIDs())
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrOrderAlreadyPrepared
	}

	if command.Destination() == prep.ToWarehouse {
		if _, err := uow.DirectoryRepository().GetWarehouse(ctx, *command.WarehouseID()); err != nil {
			return nil, err
		}
	}

	packageID, err := nextID(h.gen)
	if err != nil {
		return nil, err
	}
	prepareSN := fmt.Sprintf("PREP%d", snowflake.Decompose(packageID.Int64()).TimestampMs)

	items, err := h.snapshotItems(ctx, ordersRepo, command)
	if err != nil {
		return nil, err
	}

	pkg, err := prep.NewPackage(
		packageID, prepareSN,
		command.ShopID(), command.OrderIDs(), items,
		command.Mode(), command.Destination(), command.WarehouseID(),
		time.Now(),
	)
	if err != nil {
		return nil, err
	}

	if err := packagesRepo.Add(ctx, pkg); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return pkg, nil
}

// snapshotItems copies every line of every batched order into package
// items with freshly minted ids.
func (h CreatePackageCommandHandler) snapshotItems(ctx context.Context, ordersRepo ports.OrderRepository, command CreatePackageCommand) ([]prep.Item, error) {
	var items []prep.Item
	for _, orderID := range command.OrderIDs() {
		lines, err := ordersRepo.GetLineItems(ctx, orderID)
		if err != nil {
			return nil, err
		}

		for _, line := range lines {
			itemID, err := nextID(h.gen)
			if err != nil {
				return nil, err
			}

			item, err := prep.NewItem(
				itemID, orderID, line.ID, line.ProductID, line.SkuID,
				line.ProductName, line.Quantity)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
	}
	return items, nil
}
