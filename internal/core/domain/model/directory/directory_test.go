package directory_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/directory"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustID(t *testing.T, v int64) kernel.ID {
	t.Helper()
	id, err := kernel.NewID(v)
	require.NoError(t, err)
	return id
}

func TestNewDriver(t *testing.T) {
	t.Run("should create a valid driver", func(t *testing.T) {
		d, err := directory.NewDriver(mustID(t, 555), "Sam Park", "555-0101", "AB-123", true)

		require.NoError(t, err)
		assert.Equal(t, "Sam Park", d.Name())
		assert.True(t, d.IsActive())
		require.NoError(t, d.Validate())
	})

	t.Run("should require name and phone", func(t *testing.T) {
		_, err := directory.NewDriver(mustID(t, 555), "", "555-0101", "", true)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = directory.NewDriver(mustID(t, 555), "Sam Park", "", "", true)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestNewWarehouse(t *testing.T) {
	t.Run("should create a valid warehouse", func(t *testing.T) {
		w, err := directory.NewWarehouse(
			mustID(t, 700), "WH-EAST", "East Hub", "Kim Doe", "555-0200", "9 Dock Rd", "Portsville")

		require.NoError(t, err)
		assert.Equal(t, "WH-EAST", w.Code())
		require.NoError(t, w.Validate())
	})

	t.Run("should require code and name", func(t *testing.T) {
		_, err := directory.NewWarehouse(mustID(t, 700), "", "East Hub", "", "", "", "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = directory.NewWarehouse(mustID(t, 700), "WH-EAST", "", "", "", "", "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
