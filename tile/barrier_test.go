package tile_test

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/nmtrmail/decades-documentation/tile"
)

// TestNewBarrier_Validation rejects sizes below one party.
func TestNewBarrier_Validation(t *testing.T) {
	_, err := tile.NewBarrier(0)
	assert.ErrorIs(t, err, tile.ErrBarrierParties)

	_, err = tile.NewBarrier(-3)
	assert.ErrorIs(t, err, tile.ErrBarrierParties)

	b, err := tile.NewBarrier(4)
	require.NoError(t, err)
	assert.Equal(t, 4, b.Parties())
}

// TestBarrier_HoldsUntilLastArrival: with 4 parties, 3 waiters stay blocked
// until the 4th arrives, then all release together.
func TestBarrier_HoldsUntilLastArrival(t *testing.T) {
	b, err := tile.NewBarrier(4)
	require.NoError(t, err)

	var released atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b.Wait()
			released.Add(1)
		}()
	}

	// Give the three waiters ample time to park; none may pass early.
	time.Sleep(50 * time.Millisecond)
	require.Zero(t, released.Load())

	// The 4th arrival releases everyone, itself included.
	b.Wait()
	wg.Wait()
	assert.Equal(t, int32(3), released.Load())
}

// TestBarrier_Reuse cycles one barrier repeatedly. After each rendezvous
// every party observes the full increment count of the cycle; a second
// rendezvous keeps fast parties from racing into the next increment before
// the slow ones have checked.
func TestBarrier_Reuse(t *testing.T) {
	const parties = 3
	const cycles = 5

	b, err := tile.NewBarrier(parties)
	require.NoError(t, err)

	var counter atomic.Int64
	var g errgroup.Group
	for p := 0; p < parties; p++ {
		g.Go(func() error {
			for c := 0; c < cycles; c++ {
				counter.Add(1)
				b.Wait()
				if got, want := counter.Load(), int64((c+1)*parties); got != want {
					return fmt.Errorf("cycle %d: counter %d, want %d", c, got, want)
				}
				b.Wait()
			}

			return nil
		})
	}
	require.NoError(t, g.Wait())
}

// TestBarrier_PhaseVisibility: writes made before a party's Wait are
// visible to every party after its own Wait returns.
func TestBarrier_PhaseVisibility(t *testing.T) {
	const parties = 4
	b, err := tile.NewBarrier(parties)
	require.NoError(t, err)

	buf := make([]int, parties) // one slot per party, written pre-barrier
	var g errgroup.Group
	for p := 0; p < parties; p++ {
		p := p // per-iteration copy: go directive below 1.22 shares the loop variable
		g.Go(func() error {
			buf[p] = p + 1
			b.Wait()
			for i, v := range buf {
				if v != i+1 {
					return fmt.Errorf("party %d: slot %d holds %d", p, i, v)
				}
			}

			return nil
		})
	}
	require.NoError(t, g.Wait())
}

// TestBarrier_SingleParty: a one-party barrier never blocks.
func TestBarrier_SingleParty(t *testing.T) {
	b, err := tile.NewBarrier(1)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		b.Wait()
	}
	assert.Equal(t, 1, b.Parties())
}
