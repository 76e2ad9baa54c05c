package render

import (
	"encoding/json"
	"testing"

	"github.com/matzehuels/linkage/pkg/linkage"
)

func TestRenderJSON(t *testing.T) {
	f := solvedFrame(t, linkage.Target{X: 0.8})
	data, err := RenderJSON(f, WithJSONStyle(StyleBlueprint), WithJSONScale(200))
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}

	var out jsonOutput
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}
	if !out.OK || out.Error != nil {
		t.Fatalf("ok = %v, error = %+v", out.OK, out.Error)
	}
	if len(out.Joints) != 5 {
		t.Errorf("Joints count = %d, want 5", len(out.Joints))
	}
	if out.Joints["E"].X != 0.8 {
		t.Errorf("E.x = %v, want 0.8", out.Joints["E"].X)
	}
	if out.Angles == nil || out.Angles.Angle1 != f.Layout.Angle1 {
		t.Errorf("Angles = %+v", out.Angles)
	}
	if out.Style != StyleBlueprint || out.Scale != 200 {
		t.Errorf("style/scale = %q/%v", out.Style, out.Scale)
	}
	if out.Config != linkage.DefaultConfig() {
		t.Errorf("Config = %+v", out.Config)
	}
}

func TestRenderJSONFailure(t *testing.T) {
	f := solvedFrame(t, linkage.Target{X: 1, Y: 1, Z: 1})
	data, err := RenderJSON(f)
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}

	var out jsonOutput
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}
	if out.OK {
		t.Fatal("ok = true for unreachable target")
	}
	if out.Joints != nil || out.Angles != nil {
		t.Error("failed frame should not carry a layout")
	}
	if out.Error == nil {
		t.Fatal("missing error object")
	}
	if out.Error.Kind != "LiftArmUnreachable" {
		t.Errorf("Kind = %q", out.Error.Kind)
	}
	if out.Error.Code != "LIFT_ARM_UNREACHABLE" {
		t.Errorf("Code = %q", out.Error.Code)
	}
	if out.Error.Message != linkage.OutOfRangeMessage {
		t.Errorf("Message = %q", out.Error.Message)
	}
	if out.Error.Reach != 1.1 {
		t.Errorf("Reach = %v, want 1.1", out.Error.Reach)
	}
}
