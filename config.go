package image3d

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidConfig     = errors.New("invalid config")
	ErrUnsupportedFormat = errors.New("unsupported config format")
)

// ScreenPolicy selects how the pipeline maps world coordinates onto the canvas.
type ScreenPolicy string

const (
	// ScreenFixedCenter centers the world origin on the canvas without rescaling; zoom and pan are applied around the canvas center.
	ScreenFixedCenter ScreenPolicy = "fixed-center"
	// ScreenAutoFit scales and translates the geometry so that its padded 2D bounding box fills the canvas.
	ScreenAutoFit ScreenPolicy = "auto-fit"
)

// RotationMode selects how rotate intents are accumulated and applied.
type RotationMode string

const (
	// RotationMatrix accumulates every rotate step into one composed transform, in whichever plane was active at the time.
	RotationMatrix RotationMode = "matrix"
	// RotationAngle accumulates a single wrapped angle, applied as one rotation in the fixed plane Config.AnglePlane.
	RotationAngle RotationMode = "angle"
	// RotationDegenerate accumulates like RotationMatrix, but builds each step with RotateDegenerate.
	RotationDegenerate RotationMode = "degenerate"
)

// Config holds every tunable of mesh generation, interaction, and rendering.
type Config struct {
	// Radius of the generated mesh in world units. When 0, the radius is derived from the canvas size (see RadiusFor).
	Radius float64 `toml:"radius" yaml:"radius"`
	// RadiusFactor is the fraction of min(width, height) used as the radius when Radius is 0. When 0 as well,
	// 0.3 is used (0.5 with foreshortening enabled).
	RadiusFactor float64 `toml:"radius_factor" yaml:"radius_factor"`

	NAlpha int `toml:"n_alpha" yaml:"n_alpha"` // Latitude subdivisions; non-positive values clamp to a single band
	NBeta  int `toml:"n_beta" yaml:"n_beta"`   // Longitude subdivisions; non-positive values clamp to a single band

	RotationStepDegrees float64 `toml:"rotation_step_degrees" yaml:"rotation_step_degrees"`
	PanStep             float64 `toml:"pan_step" yaml:"pan_step"`
	ZoomRatio           float64 `toml:"zoom_ratio" yaml:"zoom_ratio"` // Each zoom tick multiplies or divides the zoom by 1+ZoomRatio

	ScreenPolicy   ScreenPolicy `toml:"screen_policy" yaml:"screen_policy"`
	RotationMode   RotationMode `toml:"rotation_mode" yaml:"rotation_mode"`
	Foreshortening bool         `toml:"foreshortening" yaml:"foreshortening"`

	// AnglePlane is the plane the accumulated angle is applied in under RotationAngle ("xy", "xz" or "yz"). Selecting a
	// plane interactively does not move it.
	AnglePlane string `toml:"angle_plane" yaml:"angle_plane"`

	// Parallelism is the number of goroutines transforming polygons; 0 or 1 transforms on the calling goroutine.
	Parallelism int `toml:"parallelism" yaml:"parallelism"`

	Width  int `toml:"width" yaml:"width"`
	Height int `toml:"height" yaml:"height"`

	StrokeColor     string `toml:"stroke_color" yaml:"stroke_color"`
	FillColor       string `toml:"fill_color" yaml:"fill_color"`
	BackgroundColor string `toml:"background_color" yaml:"background_color"`
}

// DefaultConfig returns the stock configuration: a 30x30 tessellation, 10 degree rotation steps, 100 unit pan steps,
// 5% zoom steps, and a fixed-center screen mapping, drawn black on white.
func DefaultConfig() Config {
	return Config{
		NAlpha:              30,
		NBeta:               30,
		RotationStepDegrees: 10,
		PanStep:             100,
		ZoomRatio:           0.05,
		ScreenPolicy:        ScreenFixedCenter,
		RotationMode:        RotationMatrix,
		AnglePlane:          "xy",
		Width:               960,
		Height:              720,
		StrokeColor:         "#000000",
		FillColor:           "#ffffff",
		BackgroundColor:     "#ffffff",
	}
}

// Validate returns an error wrapping ErrInvalidConfig describing the first invalid setting found.
func (cfg Config) Validate() error {

	if cfg.Radius < 0 {
		return fmt.Errorf("%w: radius %v is negative", ErrInvalidConfig, cfg.Radius)
	}

	if cfg.RadiusFactor < 0 {
		return fmt.Errorf("%w: radius_factor %v is negative", ErrInvalidConfig, cfg.RadiusFactor)
	}

	if cfg.ZoomRatio <= -1 {
		return fmt.Errorf("%w: zoom_ratio %v must be greater than -1", ErrInvalidConfig, cfg.ZoomRatio)
	}

	switch cfg.ScreenPolicy {
	case ScreenFixedCenter, ScreenAutoFit:
	default:
		return fmt.Errorf("%w: unknown screen_policy %q", ErrInvalidConfig, cfg.ScreenPolicy)
	}

	switch cfg.RotationMode {
	case RotationMatrix, RotationAngle, RotationDegenerate:
	default:
		return fmt.Errorf("%w: unknown rotation_mode %q", ErrInvalidConfig, cfg.RotationMode)
	}

	if _, ok := ParsePlane(cfg.AnglePlane); !ok {
		return fmt.Errorf("%w: unknown angle_plane %q", ErrInvalidConfig, cfg.AnglePlane)
	}

	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("%w: canvas size %dx%d must be positive", ErrInvalidConfig, cfg.Width, cfg.Height)
	}

	if cfg.Parallelism < 0 {
		return fmt.Errorf("%w: parallelism %d is negative", ErrInvalidConfig, cfg.Parallelism)
	}

	for _, c := range []string{cfg.StrokeColor, cfg.FillColor, cfg.BackgroundColor} {
		if _, err := ParseHexColor(c); err != nil {
			return err
		}
	}

	return nil

}

// Plane returns the plane AnglePlane names, PlaneXY if it is empty or unknown.
func (cfg Config) Plane() RotationPlane {
	plane, _ := ParsePlane(cfg.AnglePlane)
	return plane
}

// RotationStep returns the rotation step in radians.
func (cfg Config) RotationStep() float64 {
	return ToRadians(cfg.RotationStepDegrees)
}

// RadiusFor returns the mesh radius to use for a canvas of the given size.
func (cfg Config) RadiusFor(width, height float64) float64 {
	if cfg.Radius > 0 {
		return cfg.Radius
	}
	factor := cfg.RadiusFactor
	if factor == 0 {
		factor = 0.3
		if cfg.Foreshortening {
			factor = 0.5
		}
	}
	return min(width, height) * factor
}

// Colors returns the parsed stroke, fill, and background colors. Unparseable colors fall back to black, white, and white;
// call Validate to catch them beforehand.
func (cfg Config) Colors() (stroke, fill, background Color) {
	stroke, err := ParseHexColor(cfg.StrokeColor)
	if err != nil {
		stroke = NewColor(0, 0, 0, 1)
	}
	fill, err = ParseHexColor(cfg.FillColor)
	if err != nil {
		fill = NewColor(1, 1, 1, 1)
	}
	background, err = ParseHexColor(cfg.BackgroundColor)
	if err != nil {
		background = NewColor(1, 1, 1, 1)
	}
	return stroke, fill, background
}

// LoadConfig reads a config file, layered over DefaultConfig, and validates it. The format is picked from the extension:
// .toml, or .yaml / .yml. Unknown keys are an error.
func LoadConfig(path string) (Config, error) {

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	cfg, err := DecodeConfig(data, filepath.Ext(path))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil

}

// DecodeConfig decodes config data in the format named by ext (".toml", ".yaml" or ".yml"), layered over DefaultConfig,
// and validates the result.
func DecodeConfig(data []byte, ext string) (Config, error) {

	cfg := DefaultConfig()

	switch strings.ToLower(ext) {
	case ".toml":
		if err := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields().Decode(&cfg); err != nil {
			return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil

}

// EncodeConfig encodes the config in the format named by ext.
func EncodeConfig(cfg Config, ext string) ([]byte, error) {
	switch strings.ToLower(ext) {
	case ".toml":
		return toml.Marshal(cfg)
	case ".yaml", ".yml":
		return yaml.Marshal(cfg)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
}
