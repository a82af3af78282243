package tile

import (
	"fmt"
	"sync"
)

// Barrier is a reusable counting rendezvous for a fixed number of parties.
// Each Wait blocks until all parties have arrived; the last arrival wakes
// every waiter at once and resets the barrier for the next cycle.
//
// There is no timeout and no deadlock detection: if a party never arrives,
// the remaining Waits block forever.
type Barrier struct {
	mu      sync.Mutex
	cond    *sync.Cond
	parties int
	arrived int
	gen     uint64 // cycle counter; waiters watch it advance
}

// NewBarrier builds a barrier for parties concurrent participants, fixed
// for the barrier's lifetime. parties < 1 is ErrBarrierParties.
func NewBarrier(parties int) (*Barrier, error) {
	if parties < 1 {
		return nil, fmt.Errorf("tile.NewBarrier: %d parties: %w", parties, ErrBarrierParties)
	}

	b := &Barrier{parties: parties}
	b.cond = sync.NewCond(&b.mu)

	return b, nil
}

// Parties returns the fixed participant count.
func (b *Barrier) Parties() int { return b.parties }

// Wait blocks until all parties have called Wait in the current cycle. The
// last arrival releases every waiter simultaneously via a broadcast and
// resets the barrier. Auto-reset makes the barrier immediately reusable.
//
// Memory effects of work done before any party's Wait are visible to every
// party after its own Wait returns.
func (b *Barrier) Wait() {
	b.mu.Lock()
	defer b.mu.Unlock()

	gen := b.gen
	b.arrived++
	if b.arrived == b.parties {
		// Last arrival: advance the cycle and wake everyone.
		b.arrived = 0
		b.gen++
		b.cond.Broadcast()

		return
	}

	// The generation check guards against spurious wakeups and keeps a
	// fast next-cycle arrival from slipping past this cycle's sleepers.
	for gen == b.gen {
		b.cond.Wait()
	}
}
