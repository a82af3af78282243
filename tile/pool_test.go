package tile_test

import (
	"errors"
	"fmt"
	"runtime"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmtrmail/decades-documentation/tile"
)

// TestNewPool_Defaults: non-positive sizes fall back to GOMAXPROCS.
func TestNewPool_Defaults(t *testing.T) {
	assert.Equal(t, runtime.GOMAXPROCS(0), tile.NewPool(0).Workers())
	assert.Equal(t, runtime.GOMAXPROCS(0), tile.NewPool(-2).Workers())
	assert.Equal(t, 7, tile.NewPool(7).Workers())
}

// TestPool_Run: every tile runs exactly once with its own index.
func TestPool_Run(t *testing.T) {
	const workers = 8
	p := tile.NewPool(workers)

	seen := make([]atomic.Int32, workers)
	err := p.Run(func(id int) error {
		seen[id].Add(1)

		return nil
	})
	require.NoError(t, err)
	for i := range seen {
		assert.Equal(t, int32(1), seen[i].Load(), "tile %d", i)
	}
}

// TestPool_Run_ErrorPropagates: a failing tile's error comes back from the
// join; the other tiles still complete.
func TestPool_Run_ErrorPropagates(t *testing.T) {
	p := tile.NewPool(4)
	boom := errors.New("boom")

	var completed atomic.Int32
	err := p.Run(func(id int) error {
		if id == 2 {
			return boom
		}
		completed.Add(1)

		return nil
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, int32(3), completed.Load())
}

// TestPool_NilBody guards both run entry points.
func TestPool_NilBody(t *testing.T) {
	err := tile.NewPool(2).Run(nil)
	assert.ErrorIs(t, err, tile.ErrNilBody)

	err = tile.NewPool(2).RunPhased(nil)
	assert.ErrorIs(t, err, tile.ErrNilBody)
}

// TestPool_RunPhased: writes made in phase one are visible to every tile in
// phase two, through the barrier handed to the body.
func TestPool_RunPhased(t *testing.T) {
	const workers = 6
	p := tile.NewPool(workers)

	phase1 := make([]int, workers)
	err := p.RunPhased(func(id int, b *tile.Barrier) error {
		if b.Parties() != workers {
			return fmt.Errorf("barrier sized %d, want %d", b.Parties(), workers)
		}

		phase1[id] = id * id
		b.Wait()

		for i, v := range phase1 {
			if v != i*i {
				return fmt.Errorf("tile %d saw stale slot %d", id, i)
			}
		}

		return nil
	})
	require.NoError(t, err)
}
