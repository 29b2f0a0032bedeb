package queries_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/actionrepo"
	"fulfillment/internal/adapters/out/postgres/evidencerepo"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/action"
	"fulfillment/internal/core/domain/model/evidence"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/prep"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetActionFilesQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetActionFilesQueryHandler
}

func (suite *GetActionFilesQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&actionrepo.ActionDTO{}, &evidencerepo.FileDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetActionFilesQueryHandler(db)
}

func (suite *GetActionFilesQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetActionFilesQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE order_actions, evidence_files CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetActionFilesQueryHandlerTestSuite) TestHandle_ResolvesLinkedFiles() {
	suite.seedFile(8001, "uploads/prep.jpg", 2048, "image/jpeg")
	suite.seedFile(8002, "uploads/label.png", 4096, "image/png")
	suite.seedFile(8003, "uploads/other.jpg", 1024, "image/jpeg")
	suite.seedAction(9001, []kernel.ID{suite.mustID(8001), suite.mustID(8002)})

	query, err := queries.NewGetActionFilesQuery(suite.mustID(9001))
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	suite.True(result[0].ID.IsEqual(suite.mustID(8001)))
	suite.Equal("uploads/prep.jpg", result[0].URL)
	suite.Equal(int64(2048), result[0].Size)
	suite.Equal("image/jpeg", result[0].MimeType)

	suite.True(result[1].ID.IsEqual(suite.mustID(8002)))
	suite.Equal("uploads/label.png", result[1].URL)
	suite.Equal("image/png", result[1].MimeType)
}

func (suite *GetActionFilesQueryHandlerTestSuite) TestHandle_ActionWithoutPhotos_ReturnsEmpty() {
	suite.seedAction(9001, nil)

	query, err := queries.NewGetActionFilesQuery(suite.mustID(9001))
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetActionFilesQueryHandlerTestSuite) TestHandle_UnknownAction_ReturnsNotFound() {
	query, err := queries.NewGetActionFilesQuery(suite.mustID(9999))
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetActionFilesQueryHandlerTestSuite) seedAction(id int64, evidenceIDs []kernel.ID) {
	snapshot := action.Snapshot{
		OrderStatus:    order.PendingShipment,
		ShippingStatus: order.Prepared,
		Destination:    prep.ToUser,
	}

	entry, err := action.RestoreAction(
		suite.mustID(id), suite.mustID(101), action.GoodsPrepared, snapshot,
		evidenceIDs, "shop:42", "", time.Now().UTC().Truncate(time.Second),
	)
	suite.Require().NoError(err)

	repo := actionrepo.NewGormActionRepository(suite.db)
	err = repo.Add(context.Background(), entry)
	suite.Require().NoError(err)
}

func (suite *GetActionFilesQueryHandlerTestSuite) seedFile(id int64, url string, size int64, mimeType string) {
	file, err := evidence.NewFile(
		suite.mustID(id), url, size, mimeType, time.Now().UTC())
	suite.Require().NoError(err)

	repo := evidencerepo.NewGormEvidenceRepository(suite.db)
	err = repo.Add(context.Background(), file)
	suite.Require().NoError(err)
}

func (suite *GetActionFilesQueryHandlerTestSuite) mustID(v int64) kernel.ID {
	id, err := kernel.NewID(v)
	suite.Require().NoError(err)
	return id
}

func TestGetActionFilesQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetActionFilesQueryHandlerTestSuite))
}
