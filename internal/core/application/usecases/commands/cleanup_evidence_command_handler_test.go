package commands_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/evidence"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func restoreUnlinkedFile(t *testing.T, id int64, url string) *evidence.File {
	t.Helper()
	file, err := evidence.RestoreFile(
		mustID(t, id), url, 2048, "image/jpeg", nil, time.Now().Add(-48*time.Hour))
	require.NoError(t, err)
	return file
}

func TestCleanupEvidenceCommandHandler_Handle_Success(t *testing.T) {
	stale1 := restoreUnlinkedFile(t, 8001, "a.jpg")
	stale2 := restoreUnlinkedFile(t, 8002, "b.jpg")

	uow := &MockUnitOfWork{}
	evidenceRepo := &MockEvidenceRepository{}
	store := &MockEvidenceStore{}

	factory := &MockEvidenceUoWFactory{}
	factory.On("Create").Return(uow)

	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("EvidenceRepository").Return(evidenceRepo)
	evidenceRepo.On("GetUnlinkedBefore", mock.Anything, mock.Anything).
		Return([]*evidence.File{stale1, stale2}, nil)
	evidenceRepo.On("Delete", mock.Anything, stale1.ID()).Return(nil)
	evidenceRepo.On("Delete", mock.Anything, stale2.ID()).Return(nil)
	uow.On("Commit", mock.Anything).Return(nil)
	uow.On("Rollback", mock.Anything).Return(nil)
	store.On("Remove", mock.Anything, "a.jpg").Return(nil)
	store.On("Remove", mock.Anything, "b.jpg").Return(nil)

	handler := commands.NewCleanupEvidenceCommandHandler(factory, store)
	cmd, err := commands.NewCleanupEvidenceCommand(24 * time.Hour)
	require.NoError(t, err)

	removed, err := handler.Handle(t.Context(), cmd)

	require.NoError(t, err)
	assert.Equal(t, 2, removed)
	evidenceRepo.AssertExpectations(t)
	store.AssertExpectations(t)
}

func TestCleanupEvidenceCommandHandler_Handle_NothingExpired(t *testing.T) {
	uow := &MockUnitOfWork{}
	evidenceRepo := &MockEvidenceRepository{}
	store := &MockEvidenceStore{}

	factory := &MockEvidenceUoWFactory{}
	factory.On("Create").Return(uow)

	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("EvidenceRepository").Return(evidenceRepo)
	evidenceRepo.On("GetUnlinkedBefore", mock.Anything, mock.Anything).
		Return([]*evidence.File{}, nil)
	uow.On("Commit", mock.Anything).Return(nil)
	uow.On("Rollback", mock.Anything).Return(nil)

	handler := commands.NewCleanupEvidenceCommandHandler(factory, store)
	cmd, err := commands.NewCleanupEvidenceCommand(24 * time.Hour)
	require.NoError(t, err)

	removed, err := handler.Handle(t.Context(), cmd)

	require.NoError(t, err)
	assert.Zero(t, removed)
	store.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything)
}

func TestCleanupEvidenceCommandHandler_Handle_DeleteFails_NoBytesRemoved(t *testing.T) {
	stale := restoreUnlinkedFile(t, 8001, "a.jpg")

	uow := &MockUnitOfWork{}
	evidenceRepo := &MockEvidenceRepository{}
	store := &MockEvidenceStore{}

	factory := &MockEvidenceUoWFactory{}
	factory.On("Create").Return(uow)

	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("EvidenceRepository").Return(evidenceRepo)
	evidenceRepo.On("GetUnlinkedBefore", mock.Anything, mock.Anything).
		Return([]*evidence.File{stale}, nil)
	evidenceRepo.On("Delete", mock.Anything, stale.ID()).Return(assert.AnError)
	uow.On("Rollback", mock.Anything).Return(nil)

	handler := commands.NewCleanupEvidenceCommandHandler(factory, store)
	cmd, err := commands.NewCleanupEvidenceCommand(24 * time.Hour)
	require.NoError(t, err)

	removed, err := handler.Handle(t.Context(), cmd)

	require.Error(t, err)
	assert.Zero(t, removed)
	store.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestNewCleanupEvidenceCommand_NonPositiveTTL(t *testing.T) {
	_, err := commands.NewCleanupEvidenceCommand(0)
	require.Error(t, err)
}
