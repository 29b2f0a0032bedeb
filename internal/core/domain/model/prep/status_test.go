package prep_test

import (
	"fmt"
	"testing"

	"fulfillment/internal/core/domain/model/prep"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrepareStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(prep.StatusPending))
		assert.Equal(t, 1, int(prep.StatusPrepared))
		assert.Equal(t, 2, int(prep.StatusDriverClaimed))
		assert.Equal(t, 3, int(prep.StatusDriverToWarehouse))
		assert.Equal(t, 4, int(prep.StatusWarehouseReceived))
		assert.Equal(t, 5, int(prep.StatusWarehouseShipped))
		assert.Equal(t, 6, int(prep.StatusDelivered))
		assert.Equal(t, 7, int(prep.StatusComplete))
	})
}

func TestPrepareStatus_String(t *testing.T) {
	t.Run("should return names for defined statuses", func(t *testing.T) {
		cases := map[prep.PrepareStatus]string{
			prep.StatusPending:           "Pending",
			prep.StatusPrepared:          "Prepared",
			prep.StatusDriverClaimed:     "DriverClaimed",
			prep.StatusDriverToWarehouse: "DriverToWarehouse",
			prep.StatusWarehouseReceived: "WarehouseReceived",
			prep.StatusWarehouseShipped:  "WarehouseShipped",
			prep.StatusDelivered:         "Delivered",
			prep.StatusComplete:          "Complete",
		}

		for status, want := range cases {
			assert.Equal(t, want, status.String())
		}
	})

	t.Run("should return Unknown for out-of-range values", func(t *testing.T) {
		assert.Equal(t, "Unknown", prep.PrepareStatus(-1).String())
		assert.Equal(t, "Unknown", prep.PrepareStatus(8).String())
	})
}

func TestPrepareStatus_Validate(t *testing.T) {
	t.Run("should validate every defined status", func(t *testing.T) {
		for s := prep.StatusPending; s <= prep.StatusComplete; s++ {
			require.NoError(t, s.Validate())
		}
	})

	t.Run("should reject values outside the enum", func(t *testing.T) {
		for _, s := range []prep.PrepareStatus{-1, 8, 100} {
			t.Run(fmt.Sprintf("should reject status value %d", int(s)), func(t *testing.T) {
				err := s.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
			})
		}
	})
}

func TestPrepareStatus_IsTerminal(t *testing.T) {
	t.Run("should be terminal only at Complete", func(t *testing.T) {
		for s := prep.StatusPending; s < prep.StatusComplete; s++ {
			assert.False(t, s.IsTerminal(), "%s should not be terminal", s)
		}
		assert.True(t, prep.StatusComplete.IsTerminal())
	})
}
