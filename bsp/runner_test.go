package bsp_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arborix/partkit/bsp"
)

// TestRunDeliversNextSuperstep verifies the one-superstep message delay:
// a message sent during superstep s is visible only from superstep s+1.
func TestRunDeliversNextSuperstep(t *testing.T) {
	var mu sync.Mutex
	seenAt := make(map[bsp.VertexID]int)

	compute := func(ctx context.Context, superstep int, v bsp.VertexID, inbox []bsp.Message, send func(bsp.VertexID, interface{})) error {
		if v == 1 && superstep == 0 {
			send(2, "hello")
		}
		if v == 2 {
			mu.Lock()
			if len(inbox) > 0 {
				seenAt[2] = superstep
			}
			mu.Unlock()
		}
		return nil
	}

	halt := func(superstep int) bool { return superstep >= 2 }
	err := bsp.Run(context.Background(), []bsp.VertexID{1, 2}, 5, compute, halt)
	require.NoError(t, err)
	require.Equal(t, 1, seenAt[2], "message sent at superstep 0 must be delivered at superstep 1")
}

func TestRunPropagatesComputeError(t *testing.T) {
	boom := require.New(t)
	sentinel := context.Canceled

	compute := func(ctx context.Context, superstep int, v bsp.VertexID, inbox []bsp.Message, send func(bsp.VertexID, interface{})) error {
		return sentinel
	}
	err := bsp.Run(context.Background(), []bsp.VertexID{1}, 3, compute, func(int) bool { return false })
	boom.ErrorIs(err, sentinel)
}

func TestRunHaltsOnSignal(t *testing.T) {
	var calls int
	compute := func(ctx context.Context, superstep int, v bsp.VertexID, inbox []bsp.Message, send func(bsp.VertexID, interface{})) error {
		calls++
		return nil
	}
	err := bsp.Run(context.Background(), []bsp.VertexID{1}, 100, compute, func(s int) bool { return s >= 0 })
	require.NoError(t, err)
	require.Equal(t, 1, calls, "halt at superstep 0 should stop after the first activation")
}
