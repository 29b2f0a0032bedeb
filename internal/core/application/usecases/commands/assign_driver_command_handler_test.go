package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/directory"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/prep"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testDriver(t *testing.T, id kernel.ID, active bool) *directory.Driver {
	t.Helper()
	driver, err := directory.NewDriver(id, "Riley Chen", "555-0155", "B 777 XY", active)
	require.NoError(t, err)
	return driver
}

func TestAssignDriverCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	driverID := mustID(t, 555)
	cmd, err := commands.NewAssignDriverCommand("PREP1756711800000", driverID)
	require.NoError(t, err)

	pkg := restoreTestPackage(t, prep.ThirdPartyDriver, prep.ToWarehouse, prep.StatusPrepared, nil)

	packagesRepo := new(MockPackageRepository)
	directoryRepo := new(MockDirectoryRepository)
	uow := new(MockUnitOfWork)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PackageRepository").Return(packagesRepo).Once(),
		packagesRepo.On("GetBySN", ctx, cmd.PrepareSN()).Return(pkg, nil).Once(),
		uow.On("DirectoryRepository").Return(directoryRepo).Once(),
		directoryRepo.On("GetDriver", ctx, driverID).Return(testDriver(t, driverID, true), nil).Once(),
		packagesRepo.On("Claim", ctx, cmd.PrepareSN(), driverID).Return(true, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPackageUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignDriverCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	packagesRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestAssignDriverCommandHandler_Handle_MerchantWorkflow(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAssignDriverCommand("PREP1756711800000", mustID(t, 555))
	require.NoError(t, err)

	pkg := restoreTestPackage(t, prep.MerchantSelf, prep.ToWarehouse, prep.StatusPrepared, nil)

	packagesRepo := new(MockPackageRepository)
	uow := new(MockUnitOfWork)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PackageRepository").Return(packagesRepo).Once(),
		packagesRepo.On("GetBySN", ctx, cmd.PrepareSN()).Return(pkg, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPackageUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignDriverCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, prep.ErrInvalidAssignment)
	packagesRepo.AssertNotCalled(t, "Claim", mock.Anything, mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestAssignDriverCommandHandler_Handle_ClaimLost(t *testing.T) {
	ctx := t.Context()
	driverID := mustID(t, 555)
	cmd, err := commands.NewAssignDriverCommand("PREP1756711800000", driverID)
	require.NoError(t, err)

	pkg := restoreTestPackage(t, prep.ThirdPartyDriver, prep.ToUser, prep.StatusPrepared, nil)

	packagesRepo := new(MockPackageRepository)
	directoryRepo := new(MockDirectoryRepository)
	uow := new(MockUnitOfWork)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PackageRepository").Return(packagesRepo).Once(),
		packagesRepo.On("GetBySN", ctx, cmd.PrepareSN()).Return(pkg, nil).Once(),
		uow.On("DirectoryRepository").Return(directoryRepo).Once(),
		directoryRepo.On("GetDriver", ctx, driverID).Return(testDriver(t, driverID, true), nil).Once(),
		packagesRepo.On("Claim", ctx, cmd.PrepareSN(), driverID).Return(false, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPackageUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignDriverCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, prep.ErrDriverAlreadyAssigned)
	assert.Contains(t, err.Error(), cmd.PrepareSN())
	uow.AssertExpectations(t)
}

func TestAssignDriverCommandHandler_Handle_InactiveDriver(t *testing.T) {
	ctx := t.Context()
	driverID := mustID(t, 555)
	cmd, err := commands.NewAssignDriverCommand("PREP1756711800000", driverID)
	require.NoError(t, err)

	pkg := restoreTestPackage(t, prep.ThirdPartyDriver, prep.ToUser, prep.StatusPrepared, nil)

	packagesRepo := new(MockPackageRepository)
	directoryRepo := new(MockDirectoryRepository)
	uow := new(MockUnitOfWork)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PackageRepository").Return(packagesRepo).Once(),
		packagesRepo.On("GetBySN", ctx, cmd.PrepareSN()).Return(pkg, nil).Once(),
		uow.On("DirectoryRepository").Return(directoryRepo).Once(),
		directoryRepo.On("GetDriver", ctx, driverID).Return(testDriver(t, driverID, false), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPackageUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignDriverCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, prep.ErrInvalidAssignment)
	packagesRepo.AssertNotCalled(t, "Claim", mock.Anything, mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}
