package queries_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/directoryrepo"
	"fulfillment/internal/adapters/out/postgres/preprepo"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/prep"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetPackageQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetPackageQueryHandler
}

func (suite *GetPackageQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&preprepo.PackageDTO{},
		&preprepo.ItemDTO{},
		&directoryrepo.DriverDTO{},
		&directoryrepo.WarehouseDTO{},
	)
	suite.Require().NoError(err)

	suite.handler = queries.NewGetPackageQueryHandler(db)
}

func (suite *GetPackageQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetPackageQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec(
		"TRUNCATE TABLE packages, package_items, drivers, warehouses CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetPackageQueryHandlerTestSuite) TestHandle_ClaimedPackage_ResolvesDriverAndWarehouse() {
	suite.seedDriver(555, "Riley Chen", "555-0155")
	suite.seedWarehouse(900, "WH-EAST", "East Hub")
	pkg := suite.seedPackage("PREP1756711800000", suite.idPtr(900), suite.idPtr(555))

	query, err := queries.NewGetPackageQuery("PREP1756711800000")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.True(result.ID.IsEqual(pkg.ID()))
	suite.Equal("PREP1756711800000", result.PrepareSN)
	suite.Equal(prep.ThirdPartyDriver, result.Mode)
	suite.Equal(prep.ToWarehouse, result.Destination)
	suite.Equal(prep.StatusDriverClaimed, result.Status)

	suite.Require().NotNil(result.Driver)
	suite.Equal("Riley Chen", result.Driver.Name)
	suite.Equal("555-0155", result.Driver.Phone)

	suite.Require().NotNil(result.Warehouse)
	suite.Equal("WH-EAST", result.Warehouse.Code)
	suite.Equal("East Hub", result.Warehouse.Name)

	suite.Require().Len(result.Items, 1)
	suite.Equal("Canvas Tote", result.Items[0].ProductName)
	suite.Equal(2, result.Items[0].Quantity)
}

func (suite *GetPackageQueryHandlerTestSuite) TestHandle_UnclaimedPackage_NilDriver() {
	suite.seedWarehouse(900, "WH-EAST", "East Hub")
	suite.seedPackage("PREP1756711800001", suite.idPtr(900), nil)

	query, err := queries.NewGetPackageQuery("PREP1756711800001")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Nil(result.Driver)
	suite.Require().NotNil(result.Warehouse)
}

func (suite *GetPackageQueryHandlerTestSuite) TestHandle_UnknownSerial_ReturnsNotFound() {
	query, err := queries.NewGetPackageQuery("PREP0000000000000")
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetPackageQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetPackageQuery{}

	_, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewGetPackageQuery constructor")
}

func (suite *GetPackageQueryHandlerTestSuite) seedPackage(
	prepareSN string,
	warehouseID *kernel.ID,
	driverID *kernel.ID,
) *prep.Package {
	item, err := prep.NewItem(
		suite.mustID(1001), suite.mustID(101), suite.mustID(2001),
		suite.mustID(3001), suite.mustID(4001), "Canvas Tote", 2,
	)
	suite.Require().NoError(err)

	status := prep.StatusPrepared
	if driverID != nil {
		status = prep.StatusDriverClaimed
	}

	now := time.Now().UTC().Truncate(time.Second)
	pkg, err := prep.RestorePackage(
		suite.mustID(501), prepareSN, suite.mustID(42),
		[]kernel.ID{suite.mustID(101)}, []prep.Item{item},
		prep.ThirdPartyDriver, prep.ToWarehouse,
		warehouseID, driverID, status, now, now,
	)
	suite.Require().NoError(err)

	repo := preprepo.NewGormPackageRepository(suite.db)
	err = repo.Add(context.Background(), pkg)
	suite.Require().NoError(err)

	return pkg
}

func (suite *GetPackageQueryHandlerTestSuite) seedDriver(id int64, name, phone string) {
	err := suite.db.Create(&directoryrepo.DriverDTO{
		ID:           id,
		Name:         name,
		Phone:        phone,
		VehiclePlate: "8XK-4021",
		Active:       true,
	}).Error
	suite.Require().NoError(err)
}

func (suite *GetPackageQueryHandlerTestSuite) seedWarehouse(id int64, code, name string) {
	err := suite.db.Create(&directoryrepo.WarehouseDTO{
		ID:            id,
		Code:          code,
		Name:          name,
		ContactPerson: "Sam Ortiz",
		ContactPhone:  "555-0190",
		Address:       "4 Dock Rd",
		City:          "Portside",
	}).Error
	suite.Require().NoError(err)
}

func (suite *GetPackageQueryHandlerTestSuite) mustID(v int64) kernel.ID {
	id, err := kernel.NewID(v)
	suite.Require().NoError(err)
	return id
}

func (suite *GetPackageQueryHandlerTestSuite) idPtr(v int64) *kernel.ID {
	id := suite.mustID(v)
	return &id
}

func TestGetPackageQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetPackageQueryHandlerTestSuite))
}
