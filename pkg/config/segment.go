package config

import (
	"strconv"
	"strings"

	errs "github.com/matzehuels/linkage/pkg/errors"
	"github.com/matzehuels/linkage/pkg/linkage"
)

// aliases maps the settings-panel input names onto segment names.
var aliases = map[string]string{
	"a1": linkage.SegmentAD,
	"a2": linkage.SegmentDE,
	"b1": linkage.SegmentAB,
	"b2": linkage.SegmentBC,
	"b3": linkage.SegmentCD,
}

// SegmentName canonicalizes a segment name. It accepts AD, DE, AB, BC and CD
// in any case, and the panel names a1, a2, b1, b2 and b3.
func SegmentName(name string) (string, error) {
	n := strings.TrimSpace(name)
	if seg, ok := aliases[strings.ToLower(n)]; ok {
		return seg, nil
	}
	upper := strings.ToUpper(n)
	for _, seg := range linkage.SegmentNames {
		if seg == upper {
			return seg, nil
		}
	}
	return "", errs.New(errs.ErrCodeInvalidSegment, "unknown segment %q (want one of AD, DE, AB, BC, CD)", name)
}

// Set returns cfg with the named segment set to v. The result is validated.
func Set(cfg linkage.ArmConfig, name string, v float64) (linkage.ArmConfig, error) {
	seg, err := SegmentName(name)
	if err != nil {
		return cfg, err
	}
	if err := errs.ValidateLength(seg, v); err != nil {
		return cfg, err
	}
	return cfg.WithLength(seg, v)
}

// Apply applies "name=value" assignments to cfg in order.
func Apply(cfg linkage.ArmConfig, assignments []string) (linkage.ArmConfig, error) {
	out := cfg
	for _, a := range assignments {
		name, raw, ok := strings.Cut(a, "=")
		if !ok {
			return cfg, errs.New(errs.ErrCodeInvalidInput, "invalid assignment %q (want name=value)", a)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return cfg, errs.Wrap(errs.ErrCodeInvalidInput, err, "invalid length for %s", strings.TrimSpace(name))
		}
		if out, err = Set(out, name, v); err != nil {
			return cfg, err
		}
	}
	return out, nil
}
