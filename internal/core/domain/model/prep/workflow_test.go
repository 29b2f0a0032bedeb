package prep_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/prep"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func warehouseRef(t *testing.T) *kernel.ID {
	t.Helper()
	id, err := kernel.NewID(9001)
	require.NoError(t, err)
	return &id
}

func TestClassify(t *testing.T) {
	t.Run("should resolve all four workflows", func(t *testing.T) {
		cases := []struct {
			mode        prep.DeliveryMode
			destination prep.DestinationType
			want        prep.Workflow
		}{
			{prep.MerchantSelf, prep.ToWarehouse, prep.WorkflowMerchantWarehouse},
			{prep.MerchantSelf, prep.ToUser, prep.WorkflowMerchantDirect},
			{prep.ThirdPartyDriver, prep.ToWarehouse, prep.WorkflowDriverWarehouse},
			{prep.ThirdPartyDriver, prep.ToUser, prep.WorkflowDriverDirect},
		}

		for _, tc := range cases {
			got, err := prep.Classify(tc.mode, tc.destination)

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		}
	})

	t.Run("should reject unknown mode or destination", func(t *testing.T) {
		_, err := prep.Classify(prep.DeliveryModeUnknown, prep.ToUser)
		require.ErrorIs(t, err, prep.ErrInvalidConfiguration)

		_, err = prep.Classify(prep.MerchantSelf, prep.DestinationUnknown)
		require.ErrorIs(t, err, prep.ErrInvalidConfiguration)
	})
}

func TestWorkflow_Path(t *testing.T) {
	t.Run("should start at Pending and end at Complete", func(t *testing.T) {
		workflows := []prep.Workflow{
			prep.WorkflowMerchantWarehouse,
			prep.WorkflowMerchantDirect,
			prep.WorkflowDriverWarehouse,
			prep.WorkflowDriverDirect,
		}

		for _, w := range workflows {
			path := w.Path()

			require.NotEmpty(t, path, "workflow %s should have a path", w)
			assert.Equal(t, prep.StatusPending, path[0])
			assert.Equal(t, prep.StatusComplete, path[len(path)-1])
		}
	})

	t.Run("should match the published workflow table", func(t *testing.T) {
		assert.Equal(t, []prep.PrepareStatus{
			prep.StatusPending, prep.StatusPrepared, prep.StatusWarehouseReceived,
			prep.StatusWarehouseShipped, prep.StatusDelivered, prep.StatusComplete,
		}, prep.WorkflowMerchantWarehouse.Path())

		assert.Equal(t, []prep.PrepareStatus{
			prep.StatusPending, prep.StatusPrepared,
			prep.StatusDelivered, prep.StatusComplete,
		}, prep.WorkflowMerchantDirect.Path())

		assert.Equal(t, []prep.PrepareStatus{
			prep.StatusPending, prep.StatusPrepared, prep.StatusDriverClaimed,
			prep.StatusDriverToWarehouse, prep.StatusWarehouseReceived,
			prep.StatusWarehouseShipped, prep.StatusDelivered, prep.StatusComplete,
		}, prep.WorkflowDriverWarehouse.Path())

		assert.Equal(t, []prep.PrepareStatus{
			prep.StatusPending, prep.StatusPrepared, prep.StatusDriverClaimed,
			prep.StatusDelivered, prep.StatusComplete,
		}, prep.WorkflowDriverDirect.Path())
	})

	t.Run("should return nil for unknown workflow", func(t *testing.T) {
		assert.Nil(t, prep.WorkflowUnknown.Path())
	})
}

func TestValidTransitions(t *testing.T) {
	t.Run("should return exactly the next status on the path", func(t *testing.T) {
		workflows := []prep.Workflow{
			prep.WorkflowMerchantWarehouse,
			prep.WorkflowMerchantDirect,
			prep.WorkflowDriverWarehouse,
			prep.WorkflowDriverDirect,
		}

		for _, w := range workflows {
			path := w.Path()
			for i := 0; i < len(path)-1; i++ {
				next := prep.ValidTransitions(w, path[i])

				require.Len(t, next, 1, "workflow %s at %s", w, path[i])
				assert.Equal(t, path[i+1], next[0])
			}
		}
	})

	t.Run("should return nothing at Complete", func(t *testing.T) {
		assert.Empty(t, prep.ValidTransitions(prep.WorkflowMerchantDirect, prep.StatusComplete))
	})

	t.Run("should return nothing for statuses off the path", func(t *testing.T) {
		assert.Empty(t, prep.ValidTransitions(prep.WorkflowMerchantDirect, prep.StatusDriverClaimed))
		assert.Empty(t, prep.ValidTransitions(prep.WorkflowDriverDirect, prep.StatusWarehouseReceived))
	})
}

func TestValidateConfiguration(t *testing.T) {
	t.Run("should require a warehouse on warehouse-bound workflows", func(t *testing.T) {
		err := prep.ValidateConfiguration(prep.MerchantSelf, prep.ToWarehouse, nil)

		require.ErrorIs(t, err, prep.ErrInvalidConfiguration)
		assert.Contains(t, err.Error(), "requires a warehouse")
	})

	t.Run("should tolerate a surplus warehouse on direct workflows", func(t *testing.T) {
		require.NoError(t, prep.ValidateConfiguration(prep.ThirdPartyDriver, prep.ToUser, warehouseRef(t)))
		require.NoError(t, prep.ValidateConfiguration(prep.MerchantSelf, prep.ToUser, warehouseRef(t)))
	})

	t.Run("should accept legal combinations", func(t *testing.T) {
		require.NoError(t, prep.ValidateConfiguration(prep.MerchantSelf, prep.ToWarehouse, warehouseRef(t)))
		require.NoError(t, prep.ValidateConfiguration(prep.MerchantSelf, prep.ToUser, nil))
		require.NoError(t, prep.ValidateConfiguration(prep.ThirdPartyDriver, prep.ToWarehouse, warehouseRef(t)))
		require.NoError(t, prep.ValidateConfiguration(prep.ThirdPartyDriver, prep.ToUser, nil))
	})
}

func TestValidateDriverAssignment(t *testing.T) {
	t.Run("should allow a driver only on third-party workflows", func(t *testing.T) {
		require.NoError(t, prep.ValidateDriverAssignment(prep.ThirdPartyDriver))

		err := prep.ValidateDriverAssignment(prep.MerchantSelf)
		require.ErrorIs(t, err, prep.ErrInvalidAssignment)
	})
}

func TestInvalidTransitionError(t *testing.T) {
	t.Run("should name current and target statuses", func(t *testing.T) {
		err := prep.NewInvalidTransitionError(
			prep.WorkflowDriverWarehouse, prep.StatusPrepared, prep.StatusDelivered)

		assert.Contains(t, err.Error(), "Prepared")
		assert.Contains(t, err.Error(), "Delivered")
		assert.Contains(t, err.Error(), "DriverWarehouse")
	})

	t.Run("should unwrap to the transition sentinel", func(t *testing.T) {
		err := prep.NewInvalidTransitionError(
			prep.WorkflowMerchantDirect, prep.StatusPending, prep.StatusComplete)

		assert.ErrorIs(t, err, prep.ErrInvalidTransition)
	})
}
