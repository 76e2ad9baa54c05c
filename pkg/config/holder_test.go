package config

import (
	"errors"
	"sync"
	"testing"

	"github.com/matzehuels/linkage/pkg/linkage"
)

func TestNewHolderRejectsInvalid(t *testing.T) {
	cfg := linkage.DefaultConfig()
	cfg.DE = -1
	if _, err := NewHolder(cfg); err == nil {
		t.Fatal("NewHolder() should reject an invalid config")
	}
}

func TestHolderSnapshotIsACopy(t *testing.T) {
	h, err := NewHolder(linkage.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}

	snap := h.Snapshot()
	snap.AD = 99
	if h.Snapshot().AD != linkage.DefaultAD {
		t.Error("mutating a snapshot must not change the holder")
	}
}

func TestHolderReplace(t *testing.T) {
	h, _ := NewHolder(linkage.DefaultConfig())

	next := linkage.ArmConfig{AD: 1, DE: 1, AB: 1, BC: 1, CD: 1}
	if err := h.Replace(next); err != nil {
		t.Fatalf("Replace() error: %v", err)
	}
	if h.Snapshot() != next {
		t.Errorf("Snapshot() = %+v, want %+v", h.Snapshot(), next)
	}

	bad := next
	bad.BC = 0
	if err := h.Replace(bad); err == nil {
		t.Fatal("Replace() should reject an invalid config")
	}
	if h.Snapshot() != next {
		t.Error("a rejected Replace must keep the previous value")
	}
}

func TestHolderUpdate(t *testing.T) {
	h, _ := NewHolder(linkage.DefaultConfig())

	err := h.Update(func(c linkage.ArmConfig) (linkage.ArmConfig, error) {
		return Set(c, "a1", 0.8)
	})
	if err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if h.Snapshot().AD != 0.8 {
		t.Errorf("AD = %v, want 0.8", h.Snapshot().AD)
	}

	sentinel := errors.New("abort")
	err = h.Update(func(c linkage.ArmConfig) (linkage.ArmConfig, error) {
		c.AD = 5
		return c, sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Errorf("Update() error = %v, want sentinel", err)
	}
	if h.Snapshot().AD != 0.8 {
		t.Error("a failed Update must keep the previous value")
	}
}

// Readers must only ever observe one of the whole values written.
func TestHolderConcurrentSnapshots(t *testing.T) {
	small := linkage.ArmConfig{AD: 1, DE: 1, AB: 1, BC: 1, CD: 1}
	large := linkage.ArmConfig{AD: 2, DE: 2, AB: 2, BC: 2, CD: 2}
	h, _ := NewHolder(small)

	var wg sync.WaitGroup
	stop := make(chan struct{})

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			cfg := small
			if i%2 == 0 {
				cfg = large
			}
			_ = h.Replace(cfg)
		}
		close(stop)
	}()

	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				if s := h.Snapshot(); s != small && s != large {
					t.Errorf("observed torn config %+v", s)
					return
				}
			}
		}()
	}
	wg.Wait()
}
