package tile_test

import (
	"fmt"

	"github.com/nmtrmail/decades-documentation/tile"
)

// ExamplePool_RunPhased sums per-tile partials with a rendezvous between
// the write phase and the reduce phase.
func ExamplePool_RunPhased() {
	p := tile.NewPool(4)
	partial := make([]float64, p.Workers())
	total := make([]float64, p.Workers())

	err := p.RunPhased(func(id int, b *tile.Barrier) error {
		partial[id] = float64(id + 1) // phase one: local work
		b.Wait()

		var sum float64 // phase two: every partial is visible
		for _, v := range partial {
			sum += v
		}
		total[id] = sum

		return nil
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(total)
	// Output:
	// [10 10 10 10]
}
