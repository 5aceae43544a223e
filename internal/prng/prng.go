// Package prng provides the process-wide pseudo-random source used by the
// XOR constraint generator. A single shared *rand.Rand backs XOR sampling
// by default (Handles built with New use their own source), guarded by a
// mutex so concurrent callers (there are none in
// the single-threaded engine itself, but the hosting CLI or test suite may
// call Seed concurrently with a running trial) don't race.
//
// Grounded on the rand.Source handling in go-air/gini's gen/rands.go
// (RandSr takes an explicit rand.Source rather than relying on the
// package-level default), generalized here into an explicit handle that
// can also be seeded globally for backward-compatible ergonomics per
// spec.md §9's design note on global mutable state.
package prng

import (
	"math/rand"
	"sync"
)

var (
	mu     sync.Mutex
	shared = rand.New(rand.NewSource(1))
)

// Seed reseeds the process-wide generator. Callers wanting reproducible
// trials must call this before invoking the trial controller.
func Seed(seed int64) {
	mu.Lock()
	defer mu.Unlock()
	shared = rand.New(rand.NewSource(seed))
}

// Handle is a thin, lock-protected wrapper over a *rand.Rand. The XOR
// generator (and through it the trial controller) draws from a *Handle
// rather than touching the shared global directly, so a caller who wants full isolation (e.g. running
// several independent counters in the same process) can construct one
// with New instead of relying on the package-wide default.
type Handle struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New returns a Handle seeded independently of the process-wide generator.
func New(seed int64) *Handle {
	return &Handle{rng: rand.New(rand.NewSource(seed))}
}

// Default returns a Handle backed by the process-wide shared generator.
func Default() *Handle {
	return &Handle{rng: nil}
}

// Float64 returns a pseudo-random number in [0, 1).
func (h *Handle) Float64() float64 {
	if h.rng != nil {
		h.mu.Lock()
		defer h.mu.Unlock()
		return h.rng.Float64()
	}
	mu.Lock()
	defer mu.Unlock()
	return shared.Float64()
}

// Intn returns a pseudo-random number in [0, n).
func (h *Handle) Intn(n int) int {
	if h.rng != nil {
		h.mu.Lock()
		defer h.mu.Unlock()
		return h.rng.Intn(n)
	}
	mu.Lock()
	defer mu.Unlock()
	return shared.Intn(n)
}
