package pipeline

import (
	"context"
	"math"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/matzehuels/linkage/pkg/linkage"
	"github.com/matzehuels/linkage/pkg/observability"
)

// Memo caches solve results keyed on the exact bits of the configuration
// and target. Solve is pure, so a hit is always equivalent to re-solving.
// A nil *Memo disables caching. Memo is safe for concurrent use.
type Memo struct {
	cache *lru.Cache[memoKey, memoEntry]
}

type memoKey struct {
	ad, de, ab, bc, cd uint64
	x, y, z            uint64
}

type memoEntry struct {
	layout linkage.Layout
	err    error
}

// NewMemo creates a memo holding up to size solves.
func NewMemo(size int) (*Memo, error) {
	c, err := lru.NewWithEvict(size, func(memoKey, memoEntry) {
		observability.Memo().OnMemoEvict(context.Background())
	})
	if err != nil {
		return nil, err
	}
	return &Memo{cache: c}, nil
}

func keyFor(cfg linkage.ArmConfig, t linkage.Target) memoKey {
	return memoKey{
		ad: math.Float64bits(cfg.AD),
		de: math.Float64bits(cfg.DE),
		ab: math.Float64bits(cfg.AB),
		bc: math.Float64bits(cfg.BC),
		cd: math.Float64bits(cfg.CD),
		x:  math.Float64bits(t.X),
		y:  math.Float64bits(t.Y),
		z:  math.Float64bits(t.Z),
	}
}

func (m *Memo) get(ctx context.Context, k memoKey) (memoEntry, bool) {
	if m == nil {
		return memoEntry{}, false
	}
	e, ok := m.cache.Get(k)
	if ok {
		observability.Memo().OnMemoHit(ctx)
	} else {
		observability.Memo().OnMemoMiss(ctx)
	}
	return e, ok
}

func (m *Memo) add(k memoKey, e memoEntry) {
	if m == nil {
		return
	}
	m.cache.Add(k, e)
}

// Len returns the number of cached solves.
func (m *Memo) Len() int {
	if m == nil {
		return 0
	}
	return m.cache.Len()
}

// Purge drops every cached solve.
func (m *Memo) Purge() {
	if m == nil {
		return
	}
	m.cache.Purge()
}
