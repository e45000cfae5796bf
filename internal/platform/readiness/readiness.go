// Package readiness gates API traffic on store initialization. The gate
// starts not-ready, flips to ready exactly once after the store has been
// opened and seeded, and stays failed forever if initialization errors
// (there is no retry).
package readiness

import (
	"sync"

	"github.com/budgetplanner/budget_planner_app/internal/apperrors"
)

// Gate is the observable readiness state of the application.
type Gate struct {
	mu    sync.RWMutex
	ready bool
	err   error
}

// NewGate returns a gate in the not-ready state.
func NewGate() *Gate {
	return &Gate{}
}

// MarkReady flips the gate to ready. It is a no-op after MarkFailed.
func (g *Gate) MarkReady() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.err == nil {
		g.ready = true
	}
}

// MarkFailed records a terminal initialization error. The gate can never
// become ready afterwards.
func (g *Gate) MarkFailed(err error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.err = err
	g.ready = false
}

// Ready reports whether initialization completed successfully.
func (g *Gate) Ready() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.ready
}

// Err returns the initialization error, if any.
func (g *Gate) Err() error {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.err
}

// Check returns nil once the gate is ready, the initialization error after
// a failure, and apperrors.ErrNotReady while still initializing.
func (g *Gate) Check() error {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.ready {
		return nil
	}
	if g.err != nil {
		return g.err
	}
	return apperrors.ErrNotReady
}
