package worker

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapPreservesInputOrder(t *testing.T) {
	items := []int{5, 3, 8, 1}

	results := Map(context.Background(), items, 4, func(_ context.Context, n int) (string, error) {
		// Later inputs finish first; results must still line up with inputs.
		time.Sleep(time.Duration(n) * time.Millisecond)
		return fmt.Sprintf("v%d", n), nil
	})

	require.Len(t, results, 4)
	for i, r := range results {
		assert.Equal(t, items[i], r.Input)
		assert.Equal(t, fmt.Sprintf("v%d", items[i]), r.Value)
		assert.NoError(t, r.Err)
	}
}

func TestMapIsolatesFailures(t *testing.T) {
	errBoom := errors.New("boom")
	items := []int{1, 2, 3}

	results := Map(context.Background(), items, 2, func(_ context.Context, n int) (int, error) {
		if n == 2 {
			return 0, errBoom
		}
		return n * 10, nil
	})

	require.Len(t, results, 3)
	assert.NoError(t, results[0].Err)
	assert.Equal(t, 10, results[0].Value)
	assert.ErrorIs(t, results[1].Err, errBoom)
	assert.NoError(t, results[2].Err)
	assert.Equal(t, 30, results[2].Value)
}

func TestMapRespectsConcurrencyLimit(t *testing.T) {
	var inFlight, peak atomic.Int32
	items := make([]int, 20)

	Map(context.Background(), items, 3, func(_ context.Context, _ int) (struct{}, error) {
		cur := inFlight.Add(1)
		for {
			p := peak.Load()
			if cur <= p || peak.CompareAndSwap(p, cur) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		inFlight.Add(-1)
		return struct{}{}, nil
	})

	assert.LessOrEqual(t, peak.Load(), int32(3))
	assert.Greater(t, peak.Load(), int32(0))
}

func TestMapEmptyInput(t *testing.T) {
	results := Map(context.Background(), []int{}, 8, func(_ context.Context, _ int) (int, error) {
		return 0, nil
	})
	assert.Empty(t, results)
}
