package tile

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Pool launches one goroutine per execution tile and joins them. The worker
// count is fixed at construction; every run spans exactly that many tiles,
// indexed 0..Workers()-1.
type Pool struct {
	workers int
}

// NewPool builds a pool of the given size. workers <= 0 selects
// runtime.GOMAXPROCS(0).
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	return &Pool{workers: workers}
}

// Workers returns the tile count of one run.
func (p *Pool) Workers() int { return p.workers }

// Run executes body once per tile, concurrently, and waits for all tiles to
// finish. The first non-nil error is returned; a failing tile is fatal for
// the run as a whole, but running tiles are not interrupted.
func (p *Pool) Run(body func(tile int) error) error {
	if body == nil {
		return tileErrorf("tile.Pool.Run", ErrNilBody)
	}

	var g errgroup.Group
	for t := 0; t < p.workers; t++ {
		t := t // per-iteration copy: go directive below 1.22 shares the loop variable
		g.Go(func() error { return body(t) })
	}

	return g.Wait()
}

// RunPhased executes body once per tile with a fresh barrier sized to the
// pool, for kernels whose tiles proceed in lockstep phases. Every tile must
// reach each b.Wait() the same number of times: a tile that returns early
// stops arriving and the remaining tiles block forever, per the barrier's
// no-timeout contract.
func (p *Pool) RunPhased(body func(tile int, b *Barrier) error) error {
	const op = "tile.Pool.RunPhased"
	if body == nil {
		return tileErrorf(op, ErrNilBody)
	}
	bar, err := NewBarrier(p.workers)
	if err != nil {
		return tileErrorf(op, err)
	}

	var g errgroup.Group
	for t := 0; t < p.workers; t++ {
		t := t // per-iteration copy: go directive below 1.22 shares the loop variable
		g.Go(func() error { return body(t, bar) })
	}

	return g.Wait()
}
