package linkage

import (
	"math"
	"testing"

	errs "github.com/matzehuels/linkage/pkg/errors"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	want := ArmConfig{AD: 0.6, DE: 0.5, AB: 0.3, BC: 0.4, CD: 0.2}
	if cfg != want {
		t.Errorf("DefaultConfig() = %+v, want %+v", cfg, want)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestArmConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ArmConfig)
		wantErr bool
	}{
		{"valid", func(*ArmConfig) {}, false},
		{"zero AD", func(c *ArmConfig) { c.AD = 0 }, true},
		{"negative CD", func(c *ArmConfig) { c.CD = -0.1 }, true},
		{"NaN BC", func(c *ArmConfig) { c.BC = math.NaN() }, true},
		{"infinite DE", func(c *ArmConfig) { c.DE = math.Inf(1) }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errs.Is(err, errs.ErrCodeInvalidConfig) {
				t.Errorf("Validate() code = %v, want %v", errs.GetCode(err), errs.ErrCodeInvalidConfig)
			}
		})
	}
}

func TestArmConfigLengthRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	for i, name := range SegmentNames {
		v := float64(i+1) / 10
		updated, err := cfg.WithLength(name, v)
		if err != nil {
			t.Fatalf("WithLength(%s) error: %v", name, err)
		}
		if got := updated.Length(name); got != v {
			t.Errorf("Length(%s) = %v, want %v", name, got, v)
		}
	}
	if cfg != DefaultConfig() {
		t.Error("WithLength must not mutate the receiver")
	}
}

func TestArmConfigUnknownSegment(t *testing.T) {
	if _, err := DefaultConfig().WithLength("XY", 1); !errs.Is(err, errs.ErrCodeInvalidSegment) {
		t.Errorf("WithLength(XY) error = %v, want INVALID_SEGMENT", err)
	}
	if !math.IsNaN(DefaultConfig().Length("XY")) {
		t.Error("Length(XY) should be NaN")
	}
}

func TestReach(t *testing.T) {
	cfg := ArmConfig{AD: 0.5, DE: 0.25, AB: 0.125, BC: 0.25, CD: 1}
	if cfg.LiftReach() != 0.75 {
		t.Errorf("LiftReach() = %v", cfg.LiftReach())
	}
	if cfg.SupportReach() != 0.375 {
		t.Errorf("SupportReach() = %v", cfg.SupportReach())
	}
}

func TestTarget(t *testing.T) {
	if !(Target{X: -1, Y: 1, Z: 0}).InUnitCube() {
		t.Error("(-1, 1, 0) is inside the unit cube")
	}
	if (Target{X: 1.5}).InUnitCube() {
		t.Error("(1.5, 0, 0) is outside the unit cube")
	}
	if d := (Target{X: 0.6, Y: 0, Z: 0.8}).Dist(); math.Abs(d-1) > 1e-12 {
		t.Errorf("Dist() = %v, want 1", d)
	}
}

func TestLayoutSegments(t *testing.T) {
	l, err := Solve(DefaultConfig(), Target{X: 0.8})
	if err != nil {
		t.Fatal(err)
	}
	segs := l.Segments()
	if len(segs) != len(SegmentNames) {
		t.Fatalf("Segments() = %d, want %d", len(segs), len(SegmentNames))
	}
	cfg := DefaultConfig()
	for i, s := range segs {
		if s.Name != SegmentNames[i] {
			t.Errorf("segment %d = %s, want %s", i, s.Name, SegmentNames[i])
		}
		if math.Abs(s.Length()-cfg.Length(s.Name)) > 1e-9 {
			t.Errorf("segment %s length = %v, want %v", s.Name, s.Length(), cfg.Length(s.Name))
		}
	}
	if len(l.Joints()) != 5 {
		t.Errorf("Joints() = %d entries, want 5", len(l.Joints()))
	}
}
