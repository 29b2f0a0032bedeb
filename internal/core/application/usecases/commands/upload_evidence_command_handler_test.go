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

func TestUploadEvidenceCommandHandler_Handle_Success(t *testing.T) {
	raw := []byte("jpeg bytes")
	stored, err := evidence.NewFile(mustID(t, 8001), "abc.jpg", int64(len(raw)), "image/jpeg", time.Now())
	require.NoError(t, err)

	uow := &MockUnitOfWork{}
	evidenceRepo := &MockEvidenceRepository{}
	store := &MockEvidenceStore{}

	factory := &MockEvidenceUoWFactory{}
	factory.On("Create").Return(uow)

	store.On("Store", mock.Anything, raw, "image/jpeg").Return(stored, nil)
	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("EvidenceRepository").Return(evidenceRepo)
	evidenceRepo.On("Add", mock.Anything, stored).Return(nil)
	uow.On("Commit", mock.Anything).Return(nil)
	uow.On("Rollback", mock.Anything).Return(nil)

	handler := commands.NewUploadEvidenceCommandHandler(factory, store)
	cmd, err := commands.NewUploadEvidenceCommand(raw, "image/jpeg")
	require.NoError(t, err)

	file, err := handler.Handle(t.Context(), cmd)

	require.NoError(t, err)
	assert.True(t, file.ID().IsEqual(stored.ID()))
	assert.False(t, file.IsLinked())
	evidenceRepo.AssertExpectations(t)
}

func TestUploadEvidenceCommandHandler_Handle_MetadataFails_BytesRemoved(t *testing.T) {
	raw := []byte("jpeg bytes")
	stored, err := evidence.NewFile(mustID(t, 8001), "abc.jpg", int64(len(raw)), "image/jpeg", time.Now())
	require.NoError(t, err)

	uow := &MockUnitOfWork{}
	evidenceRepo := &MockEvidenceRepository{}
	store := &MockEvidenceStore{}

	factory := &MockEvidenceUoWFactory{}
	factory.On("Create").Return(uow)

	store.On("Store", mock.Anything, raw, "image/jpeg").Return(stored, nil)
	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("EvidenceRepository").Return(evidenceRepo)
	evidenceRepo.On("Add", mock.Anything, stored).Return(assert.AnError)
	uow.On("Rollback", mock.Anything).Return(nil)
	store.On("Remove", mock.Anything, "abc.jpg").Return(nil)

	handler := commands.NewUploadEvidenceCommandHandler(factory, store)
	cmd, err := commands.NewUploadEvidenceCommand(raw, "image/jpeg")
	require.NoError(t, err)

	_, err = handler.Handle(t.Context(), cmd)

	require.Error(t, err)
	store.AssertCalled(t, "Remove", mock.Anything, "abc.jpg")
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestNewUploadEvidenceCommand_Oversized(t *testing.T) {
	raw := make([]byte, evidence.MaxFileSize+1)
	_, err := commands.NewUploadEvidenceCommand(raw, "image/jpeg")
	require.Error(t, err)
	assert.ErrorIs(t, err, evidence.ErrFileTooLarge)
}

func TestNewUploadEvidenceCommand_UnsupportedType(t *testing.T) {
	_, err := commands.NewUploadEvidenceCommand([]byte("<svg/>"), "image/svg+xml")
	require.Error(t, err)
	assert.ErrorIs(t, err, evidence.ErrUnsupportedMediaType)
}
