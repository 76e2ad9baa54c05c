package config

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	errs "github.com/matzehuels/linkage/pkg/errors"
	"github.com/matzehuels/linkage/pkg/linkage"
)

// DefaultScale is the figure scale in pixels per unit length.
const DefaultScale = 300.0

// File is the on-disk settings document.
type File struct {
	Arm    linkage.ArmConfig `toml:"arm"`
	Render Render            `toml:"render"`
}

// Render holds figure settings.
type Render struct {
	Scale float64 `toml:"scale"` // pixels per unit length
}

// Default returns the settings used when no file exists.
func Default() File {
	return File{
		Arm:    linkage.DefaultConfig(),
		Render: Render{Scale: DefaultScale},
	}
}

// Validate checks every value in f.
func (f File) Validate() error {
	if err := f.Arm.Validate(); err != nil {
		return err
	}
	if f.Render.Scale <= 0 {
		return errs.New(errs.ErrCodeInvalidConfig, "render.scale must be positive, got %v", f.Render.Scale)
	}
	return nil
}

// Decode reads settings from r on top of the defaults.
// Unknown keys are rejected so that typos do not silently fall back.
func Decode(r io.Reader) (File, error) {
	f := Default()
	md, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return File{}, errs.Wrap(errs.ErrCodeInvalidConfig, err, "parse settings")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return File{}, errs.New(errs.ErrCodeInvalidConfig, "unknown settings: %s", strings.Join(keys, ", "))
	}
	if err := f.Validate(); err != nil {
		return File{}, err
	}
	return f, nil
}

// Load reads settings from path.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return File{}, errs.Wrap(errs.ErrCodeFileNotFound, err, "settings file %s", path)
		}
		return File{}, err
	}
	return Decode(bytes.NewReader(data))
}

// LoadOrDefault reads settings from path, falling back to [Default] when the
// file does not exist. Any other error is returned.
func LoadOrDefault(path string) (File, bool, error) {
	f, err := Load(path)
	if errs.Is(err, errs.ErrCodeFileNotFound) {
		return Default(), false, nil
	}
	if err != nil {
		return File{}, false, err
	}
	return f, true, nil
}

// Encode writes f as TOML.
func Encode(w io.Writer, f File) error {
	return toml.NewEncoder(w).Encode(f)
}

// Write saves f to path, creating parent directories as needed.
func Write(path string, f File) error {
	if err := f.Validate(); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := Encode(&buf, f); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}
