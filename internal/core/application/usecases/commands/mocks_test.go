package commands_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/action"
	"fulfillment/internal/core/domain/model/directory"
	"fulfillment/internal/core/domain/model/evidence"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/prep"
	"fulfillment/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetBySN(ctx context.Context, orderSN string) (*order.Order, error) {
	args := m.Called(ctx, orderSN)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetOwnedByShop(ctx context.Context, shopID kernel.ID, ids []kernel.ID) ([]*order.Order, error) {
	args := m.Called(ctx, shopID, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetLineItems(ctx context.Context, orderID kernel.ID) ([]order.LineItem, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.LineItem), args.Error(1)
}

type MockPackageRepository struct{ mock.Mock }

func (m *MockPackageRepository) Add(ctx context.Context, p *prep.Package) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPackageRepository) Update(ctx context.Context, p *prep.Package) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPackageRepository) GetBySN(ctx context.Context, prepareSN string) (*prep.Package, error) {
	args := m.Called(ctx, prepareSN)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*prep.Package), args.Error(1)
}

func (m *MockPackageRepository) GetActiveByOrder(ctx context.Context, orderID kernel.ID) (*prep.Package, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*prep.Package), args.Error(1)
}

func (m *MockPackageRepository) ExistsActiveForOrders(ctx context.Context, ids []kernel.ID) (bool, error) {
	args := m.Called(ctx, ids)
	return args.Bool(0), args.Error(1)
}

func (m *MockPackageRepository) Claim(ctx context.Context, prepareSN string, driverID kernel.ID) (bool, error) {
	args := m.Called(ctx, prepareSN, driverID)
	return args.Bool(0), args.Error(1)
}

type MockActionRepository struct{ mock.Mock }

func (m *MockActionRepository) Add(ctx context.Context, a *action.Action) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockActionRepository) Get(ctx context.Context, id kernel.ID) (*action.Action, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*action.Action), args.Error(1)
}

type MockDirectoryRepository struct{ mock.Mock }

func (m *MockDirectoryRepository) GetDriver(ctx context.Context, id kernel.ID) (*directory.Driver, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*directory.Driver), args.Error(1)
}

func (m *MockDirectoryRepository) GetWarehouse(ctx context.Context, id kernel.ID) (*directory.Warehouse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*directory.Warehouse), args.Error(1)
}

type MockEvidenceRepository struct{ mock.Mock }

func (m *MockEvidenceRepository) Add(ctx context.Context, f *evidence.File) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockEvidenceRepository) Update(ctx context.Context, f *evidence.File) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockEvidenceRepository) Get(ctx context.Context, id kernel.ID) (*evidence.File, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*evidence.File), args.Error(1)
}

func (m *MockEvidenceRepository) GetMany(ctx context.Context, ids []kernel.ID) ([]*evidence.File, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*evidence.File), args.Error(1)
}

func (m *MockEvidenceRepository) GetUnlinkedBefore(ctx context.Context, cutoff time.Time) ([]*evidence.File, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*evidence.File), args.Error(1)
}

func (m *MockEvidenceRepository) Delete(ctx context.Context, id kernel.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockUnitOfWork satisfies every unit-of-work interface the handlers
// declare; each test wires only the repositories its handler touches.
type MockUnitOfWork struct{ mock.Mock }

func (m *MockUnitOfWork) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUnitOfWork) PackageRepository() ports.PackageRepository {
	args := m.Called()
	return args.Get(0).(ports.PackageRepository)
}

func (m *MockUnitOfWork) ActionRepository() ports.ActionRepository {
	args := m.Called()
	return args.Get(0).(ports.ActionRepository)
}

func (m *MockUnitOfWork) EvidenceRepository() ports.EvidenceRepository {
	args := m.Called()
	return args.Get(0).(ports.EvidenceRepository)
}

func (m *MockUnitOfWork) DirectoryRepository() ports.DirectoryRepository {
	args := m.Called()
	return args.Get(0).(ports.DirectoryRepository)
}

type MockPackageUoWFactory struct{ mock.Mock }

func (m *MockPackageUoWFactory) Create() commands.PackageUoW {
	args := m.Called()
	return args.Get(0).(commands.PackageUoW)
}

type MockCreatePackageUoWFactory struct{ mock.Mock }

func (m *MockCreatePackageUoWFactory) Create() commands.CreatePackageUoW {
	args := m.Called()
	return args.Get(0).(commands.CreatePackageUoW)
}

type MockTransitionUoWFactory struct{ mock.Mock }

func (m *MockTransitionUoWFactory) Create() commands.TransitionUoW {
	args := m.Called()
	return args.Get(0).(commands.TransitionUoW)
}

type MockActionUoWFactory struct{ mock.Mock }

func (m *MockActionUoWFactory) Create() commands.ActionUoW {
	args := m.Called()
	return args.Get(0).(commands.ActionUoW)
}

type MockEvidenceUoWFactory struct{ mock.Mock }

func (m *MockEvidenceUoWFactory) Create() commands.EvidenceUoW {
	args := m.Called()
	return args.Get(0).(commands.EvidenceUoW)
}

type MockEvidenceStore struct{ mock.Mock }

func (m *MockEvidenceStore) Store(ctx context.Context, raw []byte, mimeType string) (*evidence.File, error) {
	args := m.Called(ctx, raw, mimeType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*evidence.File), args.Error(1)
}

func (m *MockEvidenceStore) Remove(ctx context.Context, url string) error {
	args := m.Called(ctx, url)
	return args.Error(0)
}

// stubIDGenerator hands out sequential ids.
type stubIDGenerator struct{ last int64 }

func (g *stubIDGenerator) Next() (int64, error) {
	g.last++
	return g.last, nil
}

func mustID(t *testing.T, v int64) kernel.ID {
	t.Helper()
	id, err := kernel.NewID(v)
	require.NoError(t, err)
	return id
}

func restoreTestOrder(t *testing.T, shipping order.ShippingStatus, destination prep.DestinationType) *order.Order {
	t.Helper()
	now := time.Now()
	o, err := order.RestoreOrder(
		mustID(t, 101), "SN20260901-001",
		mustID(t, 7), mustID(t, 42),
		order.Receiver{Name: "Jordan Lee", Phone: "555-0100", Address: "12 Harbor St"},
		destination,
		order.PendingShipment, shipping,
		nil, nil, nil, nil, nil, nil,
		now, now)
	require.NoError(t, err)
	return o
}

func restoreTestPackage(t *testing.T, mode prep.DeliveryMode, destination prep.DestinationType, status prep.PrepareStatus, driverID *kernel.ID) *prep.Package {
	t.Helper()
	var warehouseID *kernel.ID
	if destination == prep.ToWarehouse {
		id := mustID(t, 900)
		warehouseID = &id
	}
	item, err := prep.NewItem(
		mustID(t, 1001), mustID(t, 101), mustID(t, 2001),
		mustID(t, 3001), mustID(t, 4001), "Canvas Tote", 2)
	require.NoError(t, err)

	now := time.Now()
	pkg, err := prep.RestorePackage(
		mustID(t, 501), "PREP1756711800000",
		mustID(t, 42), []kernel.ID{mustID(t, 101)}, []prep.Item{item},
		mode, destination, warehouseID, driverID,
		status, now, now)
	require.NoError(t, err)
	return pkg
}
