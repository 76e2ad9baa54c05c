package config

import (
	"sync"
	"sync/atomic"

	"github.com/matzehuels/linkage/pkg/linkage"
)

// Holder owns the canonical arm configuration.
//
// Snapshot is lock-free and always returns a complete value. Writers are
// serialized so that Update sees the latest configuration.
type Holder struct {
	cur atomic.Pointer[linkage.ArmConfig]
	mu  sync.Mutex
}

// NewHolder creates a holder seeded with cfg, which must be valid.
func NewHolder(cfg linkage.ArmConfig) (*Holder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	h := &Holder{}
	h.cur.Store(&cfg)
	return h, nil
}

// Snapshot returns a copy of the current configuration.
func (h *Holder) Snapshot() linkage.ArmConfig {
	return *h.cur.Load()
}

// Replace swaps in cfg after validating it. On error the current value is kept.
func (h *Holder) Replace(cfg linkage.ArmConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.cur.Store(&cfg)
	return nil
}

// Update applies fn to the current configuration and stores the result.
// fn may be called with a value that is already a copy; returning an error
// leaves the holder unchanged.
func (h *Holder) Update(fn func(linkage.ArmConfig) (linkage.ArmConfig, error)) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	next, err := fn(*h.cur.Load())
	if err != nil {
		return err
	}
	if err := next.Validate(); err != nil {
		return err
	}
	h.cur.Store(&next)
	return nil
}
