package snowflake

import (
	"testing"
	"time"

	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGenerator(t *testing.T) {
	t.Run("should accept machine ids within range", func(t *testing.T) {
		for _, id := range []int64{0, 1, 512, MaxMachineID} {
			g, err := NewGenerator(id)
			require.NoError(t, err)
			require.NotNil(t, g)
		}
	})

	t.Run("should reject machine ids outside range", func(t *testing.T) {
		for _, id := range []int64{-1, MaxMachineID + 1, 5000} {
			g, err := NewGenerator(id)
			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
			assert.Nil(t, g)
		}
	})
}

func TestGenerator_Next(t *testing.T) {
	t.Run("should round-trip through Decompose", func(t *testing.T) {
		g, err := NewGenerator(42)
		require.NoError(t, err)

		before := time.Now().UnixMilli()
		id, err := g.Next()
		require.NoError(t, err)
		after := time.Now().UnixMilli()

		parts := Decompose(id)
		assert.Equal(t, int64(42), parts.MachineID)
		assert.GreaterOrEqual(t, parts.TimestampMs, before)
		assert.LessOrEqual(t, parts.TimestampMs, after+1)
	})

	t.Run("should issue strictly increasing ids", func(t *testing.T) {
		g, err := NewGenerator(1)
		require.NoError(t, err)

		var last int64
		for i := 0; i < 10000; i++ {
			id, nextErr := g.Next()
			require.NoError(t, nextErr)
			require.Greater(t, id, last)
			last = id
		}
	})

	t.Run("should increment sequence inside one millisecond", func(t *testing.T) {
		g, err := NewGenerator(7)
		require.NoError(t, err)

		frozen := time.Now().UnixMilli()
		g.now = func() int64 { return frozen }

		first, err := g.Next()
		require.NoError(t, err)
		second, err := g.Next()
		require.NoError(t, err)

		assert.Equal(t, Decompose(first).TimestampMs, Decompose(second).TimestampMs)
		assert.Equal(t, Decompose(first).Sequence+1, Decompose(second).Sequence)
	})

	t.Run("should fail on clock regression", func(t *testing.T) {
		g, err := NewGenerator(7)
		require.NoError(t, err)

		_, err = g.Next()
		require.NoError(t, err)

		g.now = func() int64 { return g.lastTimestamp - 10 }
		_, err = g.Next()
		require.ErrorIs(t, err, ErrClockRegression)
	})

	t.Run("should be safe for concurrent use", func(t *testing.T) {
		g, err := NewGenerator(3)
		require.NoError(t, err)

		const workers = 8
		const perWorker = 500
		ids := make(chan int64, workers*perWorker)
		done := make(chan struct{})

		for w := 0; w < workers; w++ {
			go func() {
				for i := 0; i < perWorker; i++ {
					id, nextErr := g.Next()
					if nextErr == nil {
						ids <- id
					}
				}
				done <- struct{}{}
			}()
		}
		for w := 0; w < workers; w++ {
			<-done
		}
		close(ids)

		seen := make(map[int64]struct{}, workers*perWorker)
		for id := range ids {
			_, dup := seen[id]
			require.False(t, dup, "duplicate id %d", id)
			seen[id] = struct{}{}
		}
		assert.Len(t, seen, workers*perWorker)
	})
}

func TestParts_Time(t *testing.T) {
	parts := Parts{TimestampMs: Epoch}
	assert.Equal(t, time.UnixMilli(Epoch), parts.Time())
}
