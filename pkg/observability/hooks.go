// Package observability provides hooks for metrics, tracing, and logging.
//
// The solver and pipeline call into these hooks without depending on any
// particular backend. A binary registers its own implementations at startup;
// everything else sees no-op defaults.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetSolveHooks(&mySolveHooks{})
//	    observability.SetMemoHooks(&myMemoHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Solve().OnSolveStart(ctx, x, y, z)
//	// ... solve ...
//	observability.Solve().OnSolveComplete(ctx, x, y, z, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Solve Hooks
// =============================================================================

// SolveHooks receives events from the solve pipeline.
type SolveHooks interface {
	// Single solves. err is the solve error, including unreachable targets.
	OnSolveStart(ctx context.Context, x, y, z float64)
	OnSolveComplete(ctx context.Context, x, y, z float64, duration time.Duration, err error)

	// Reachability sweeps over an n×n grid at height z.
	OnSweepStart(ctx context.Context, z float64, n int)
	OnSweepComplete(ctx context.Context, z float64, n, reachable int, duration time.Duration, err error)
}

// =============================================================================
// Memo Hooks
// =============================================================================

// MemoHooks receives events from the solve memo.
type MemoHooks interface {
	OnMemoHit(ctx context.Context)
	OnMemoMiss(ctx context.Context)
	OnMemoEvict(ctx context.Context)
}

// =============================================================================
// Render Hooks
// =============================================================================

// RenderHooks receives events from output rendering.
type RenderHooks interface {
	OnRenderStart(ctx context.Context, formats []string)
	OnRenderComplete(ctx context.Context, formats []string, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopSolveHooks is a no-op implementation of SolveHooks.
type NoopSolveHooks struct{}

func (NoopSolveHooks) OnSolveStart(context.Context, float64, float64, float64) {}
func (NoopSolveHooks) OnSolveComplete(context.Context, float64, float64, float64, time.Duration, error) {
}
func (NoopSolveHooks) OnSweepStart(context.Context, float64, int) {}
func (NoopSolveHooks) OnSweepComplete(context.Context, float64, int, int, time.Duration, error) {
}

// NoopMemoHooks is a no-op implementation of MemoHooks.
type NoopMemoHooks struct{}

func (NoopMemoHooks) OnMemoHit(context.Context)   {}
func (NoopMemoHooks) OnMemoMiss(context.Context)  {}
func (NoopMemoHooks) OnMemoEvict(context.Context) {}

// NoopRenderHooks is a no-op implementation of RenderHooks.
type NoopRenderHooks struct{}

func (NoopRenderHooks) OnRenderStart(context.Context, []string)                          {}
func (NoopRenderHooks) OnRenderComplete(context.Context, []string, time.Duration, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	solveHooks  SolveHooks  = NoopSolveHooks{}
	memoHooks   MemoHooks   = NoopMemoHooks{}
	renderHooks RenderHooks = NoopRenderHooks{}
	hooksMu     sync.RWMutex
)

// SetSolveHooks registers custom solve hooks. Nil is ignored.
func SetSolveHooks(h SolveHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		solveHooks = h
	}
}

// SetMemoHooks registers custom memo hooks. Nil is ignored.
func SetMemoHooks(h MemoHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		memoHooks = h
	}
}

// SetRenderHooks registers custom render hooks. Nil is ignored.
func SetRenderHooks(h RenderHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		renderHooks = h
	}
}

// Solve returns the registered solve hooks.
func Solve() SolveHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return solveHooks
}

// Memo returns the registered memo hooks.
func Memo() MemoHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return memoHooks
}

// Render returns the registered render hooks.
func Render() RenderHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return renderHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	solveHooks = NoopSolveHooks{}
	memoHooks = NoopMemoHooks{}
	renderHooks = NoopRenderHooks{}
}
