package render

import (
	"encoding/json"
	"errors"

	errs "github.com/matzehuels/linkage/pkg/errors"
	"github.com/matzehuels/linkage/pkg/geom"
	"github.com/matzehuels/linkage/pkg/linkage"
)

// JSONOption configures [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	style string
	scale float64
}

// WithJSONStyle records the style name used for the matching SVG.
func WithJSONStyle(s string) JSONOption { return func(r *jsonRenderer) { r.style = s } }

// WithJSONScale records the figure scale used for the matching SVG.
func WithJSONScale(scale float64) JSONOption { return func(r *jsonRenderer) { r.scale = scale } }

type jsonOutput struct {
	Config linkage.ArmConfig    `json:"config"`
	Target linkage.Target       `json:"target"`
	OK     bool                 `json:"ok"`
	Error  *jsonError           `json:"error,omitempty"`
	Joints map[string]jsonPoint `json:"joints,omitempty"`
	Angles *jsonAngles          `json:"angles,omitempty"`
	Style  string               `json:"style,omitempty"`
	Scale  float64              `json:"scale,omitempty"`
}

type jsonPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type jsonAngles struct {
	Angle1  float64 `json:"angle1"`
	Angle2  float64 `json:"angle2"`
	Angle3  float64 `json:"angle3"`
	Degrees struct {
		Angle1 float64 `json:"angle1"`
		Angle2 float64 `json:"angle2"`
		Angle3 float64 `json:"angle3"`
	} `json:"degrees"`
}

type jsonError struct {
	Code     string  `json:"code"`
	Kind     string  `json:"kind,omitempty"`
	Message  string  `json:"message"`
	Detail   string  `json:"detail"`
	Distance float64 `json:"distance,omitempty"`
	Reach    float64 `json:"reach,omitempty"`
}

// RenderJSON exports a frame as a pretty-printed JSON document. Angles are
// reported in radians with a degree copy. A failed frame carries an error
// object and no joints.
func RenderJSON(f Frame, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		Config: f.Config,
		Target: f.Target,
		OK:     f.OK(),
		Style:  r.style,
		Scale:  r.scale,
	}

	if f.OK() {
		out.Joints = make(map[string]jsonPoint, 5)
		for name, p := range f.Layout.Joints() {
			out.Joints[name] = jsonPoint{X: p.X, Y: p.Y}
		}
		a := &jsonAngles{Angle1: f.Layout.Angle1, Angle2: f.Layout.Angle2, Angle3: f.Layout.Angle3}
		a.Degrees.Angle1 = geom.Degrees(a.Angle1)
		a.Degrees.Angle2 = geom.Degrees(a.Angle2)
		a.Degrees.Angle3 = geom.Degrees(a.Angle3)
		out.Angles = a
	} else {
		out.Error = buildJSONError(f.Err)
	}

	return json.MarshalIndent(out, "", "  ")
}

func buildJSONError(err error) *jsonError {
	je := &jsonError{
		Code:    string(errs.GetCode(err)),
		Message: errs.UserMessage(err),
		Detail:  err.Error(),
	}
	var se *linkage.SolveError
	if errors.As(err, &se) {
		je.Kind = se.Kind.String()
		je.Distance = se.Distance
		je.Reach = se.Reach
	}
	return je
}
