package cmd

import (
	"fulfillment/internal/adapters/out/filestore"
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/snowflake"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use case handlers. Each Create
// method hands out a fresh handler over the shared infrastructure.
type CompositionRoot struct {
	gormDB        *gorm.DB
	uowFactory    postgres.GormUnitOfWorkFactory
	idGenerator   ports.IDGenerator
	evidenceStore ports.EvidenceStore
}

// NewCompositionRoot builds the root from config and an open database
// connection.
func NewCompositionRoot(config Config, gormDB *gorm.DB) (CompositionRoot, error) {
	idGenerator, err := snowflake.NewGenerator(config.MachineID)
	if err != nil {
		return CompositionRoot{}, err
	}

	evidenceStore, err := filestore.NewLocalEvidenceStore(config.EvidenceRoot, idGenerator)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:        gormDB,
		uowFactory:    *postgres.NewGormUnitOfWorkFactory(gormDB),
		idGenerator:   idGenerator,
		evidenceStore: evidenceStore,
	}, nil
}

func (c *CompositionRoot) CreateCreatePackageCommandHandler() commands.CreatePackageCommandHandler {
	var f commands.CreatePackageUoWFactory = FuncCreatePackageUoWFactory(func() commands.CreatePackageUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreatePackageCommandHandler(f, c.idGenerator)
}

func (c *CompositionRoot) CreateMarkPreparedCommandHandler() commands.MarkPreparedCommandHandler {
	return commands.NewMarkPreparedCommandHandler(c.transitionUoWFactory(), c.idGenerator)
}

func (c *CompositionRoot) CreateAssignDriverCommandHandler() commands.AssignDriverCommandHandler {
	return commands.NewAssignDriverCommandHandler(c.packageUoWFactory())
}

func (c *CompositionRoot) CreateAdvancePackageStatusCommandHandler() commands.AdvancePackageStatusCommandHandler {
	return commands.NewAdvancePackageStatusCommandHandler(c.packageUoWFactory())
}

func (c *CompositionRoot) CreatePickupOrderCommandHandler() commands.PickupOrderCommandHandler {
	return commands.NewPickupOrderCommandHandler(c.transitionUoWFactory(), c.idGenerator)
}

func (c *CompositionRoot) CreateArriveWarehouseCommandHandler() commands.ArriveWarehouseCommandHandler {
	return commands.NewArriveWarehouseCommandHandler(c.transitionUoWFactory(), c.idGenerator)
}

func (c *CompositionRoot) CreateWarehouseReceiveCommandHandler() commands.WarehouseReceiveCommandHandler {
	return commands.NewWarehouseReceiveCommandHandler(c.transitionUoWFactory(), c.idGenerator)
}

func (c *CompositionRoot) CreateWarehouseShipCommandHandler() commands.WarehouseShipCommandHandler {
	return commands.NewWarehouseShipCommandHandler(c.transitionUoWFactory(), c.idGenerator)
}

func (c *CompositionRoot) CreateCompleteDeliveryCommandHandler() commands.CompleteDeliveryCommandHandler {
	return commands.NewCompleteDeliveryCommandHandler(c.transitionUoWFactory(), c.idGenerator)
}

func (c *CompositionRoot) CreateRecordOrderActionCommandHandler() commands.RecordOrderActionCommandHandler {
	var f commands.ActionUoWFactory = FuncActionUoWFactory(func() commands.ActionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecordOrderActionCommandHandler(f, c.idGenerator)
}

func (c *CompositionRoot) CreateUploadEvidenceCommandHandler() commands.UploadEvidenceCommandHandler {
	return commands.NewUploadEvidenceCommandHandler(c.evidenceUoWFactory(), c.evidenceStore)
}

func (c *CompositionRoot) CreateCleanupEvidenceCommandHandler() commands.CleanupEvidenceCommandHandler {
	return commands.NewCleanupEvidenceCommandHandler(c.evidenceUoWFactory(), c.evidenceStore)
}

func (c *CompositionRoot) CreateGetPackageQueryHandler() queries.GetPackageQueryHandler {
	return queries.NewGetPackageQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListShopPackagesQueryHandler() queries.ListShopPackagesQueryHandler {
	return queries.NewListShopPackagesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListDriverPackagesQueryHandler() queries.ListDriverPackagesQueryHandler {
	return queries.NewListDriverPackagesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListAvailablePackagesQueryHandler() queries.ListAvailablePackagesQueryHandler {
	return queries.NewListAvailablePackagesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrderActionsQueryHandler() queries.ListOrderActionsQueryHandler {
	return queries.NewListOrderActionsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetLatestOrderActionQueryHandler() queries.GetLatestOrderActionQueryHandler {
	return queries.NewGetLatestOrderActionQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActionFilesQueryHandler() queries.GetActionFilesQueryHandler {
	return queries.NewGetActionFilesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderTimelineQueryHandler() queries.GetOrderTimelineQueryHandler {
	return queries.NewGetOrderTimelineQueryHandler(c.gormDB)
}

func (c *CompositionRoot) packageUoWFactory() commands.PackageUoWFactory {
	return FuncPackageUoWFactory(func() commands.PackageUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) transitionUoWFactory() commands.TransitionUoWFactory {
	return FuncTransitionUoWFactory(func() commands.TransitionUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) evidenceUoWFactory() commands.EvidenceUoWFactory {
	return FuncEvidenceUoWFactory(func() commands.EvidenceUoW {
		return c.uowFactory.Create()
	})
}

type FuncPackageUoWFactory func() commands.PackageUoW

func (f FuncPackageUoWFactory) Create() commands.PackageUoW {
	return f()
}

type FuncCreatePackageUoWFactory func() commands.CreatePackageUoW

func (f FuncCreatePackageUoWFactory) Create() commands.CreatePackageUoW {
	return f()
}

type FuncTransitionUoWFactory func() commands.TransitionUoW

func (f FuncTransitionUoWFactory) Create() commands.TransitionUoW {
	return f()
}

type FuncActionUoWFactory func() commands.ActionUoW

func (f FuncActionUoWFactory) Create() commands.ActionUoW {
	return f()
}

type FuncEvidenceUoWFactory func() commands.EvidenceUoW

func (f FuncEvidenceUoWFactory) Create() commands.EvidenceUoW {
	return f()
}
