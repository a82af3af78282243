// Package tile runs fixed-size groups of concurrent execution units and
// synchronizes them.
//
// A Pool launches one goroutine per tile and joins them, reporting the
// first error. A Barrier is a reusable counting rendezvous: every party
// blocks in Wait until the last arrives, then all release at once through a
// condition-variable broadcast and the barrier resets for the next cycle.
//
// The barrier has no timeout and no deadlock detection: a missing party
// blocks the rest forever. Size it to the exact number of participating
// goroutines and make every participant call Wait the same number of times
// per run.
package tile
