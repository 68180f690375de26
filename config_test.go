package image3d

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {

	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 30, cfg.NAlpha)
	assert.Equal(t, 30, cfg.NBeta)
	assert.Equal(t, 10.0, cfg.RotationStepDegrees)
	assert.Equal(t, 100.0, cfg.PanStep)
	assert.Equal(t, 0.05, cfg.ZoomRatio)
	assert.Equal(t, ScreenFixedCenter, cfg.ScreenPolicy)
	assert.Equal(t, RotationMatrix, cfg.RotationMode)
	assert.Equal(t, PlaneXY, cfg.Plane())

}

func TestRadiusFor(t *testing.T) {

	cfg := DefaultConfig()
	assert.InDelta(t, 0.3*600, cfg.RadiusFor(800, 600), tolerance)

	cfg.Foreshortening = true
	assert.InDelta(t, 0.5*600, cfg.RadiusFor(800, 600), tolerance)

	cfg.RadiusFactor = 0.25
	assert.InDelta(t, 0.25*400, cfg.RadiusFor(400, 900), tolerance)

	cfg.Radius = 42
	assert.Equal(t, 42.0, cfg.RadiusFor(400, 900))

}

func TestValidate(t *testing.T) {

	broken := []func(cfg *Config){
		func(cfg *Config) { cfg.Radius = -1 },
		func(cfg *Config) { cfg.RadiusFactor = -0.1 },
		func(cfg *Config) { cfg.ZoomRatio = -1 },
		func(cfg *Config) { cfg.ScreenPolicy = "stretch" },
		func(cfg *Config) { cfg.RotationMode = "quaternion" },
		func(cfg *Config) { cfg.AnglePlane = "xw" },
		func(cfg *Config) { cfg.Width = 0 },
		func(cfg *Config) { cfg.Height = -10 },
		func(cfg *Config) { cfg.Parallelism = -2 },
		func(cfg *Config) { cfg.FillColor = "white" },
	}

	for i, breakIt := range broken {
		cfg := DefaultConfig()
		breakIt(&cfg)
		assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig, "case %d", i)
	}

	// Non-positive subdivisions are clamped when generating, not rejected.
	cfg := DefaultConfig()
	cfg.NAlpha, cfg.NBeta = -3, 0
	assert.NoError(t, cfg.Validate())

}

func TestDecodeConfig(t *testing.T) {

	toml := []byte(`
n_alpha = 12
screen_policy = "auto-fit"
foreshortening = true
fill_color = "#ff8800"
`)

	cfg, err := DecodeConfig(toml, ".toml")
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.NAlpha)
	assert.Equal(t, 30, cfg.NBeta, "unset keys keep their defaults")
	assert.Equal(t, ScreenAutoFit, cfg.ScreenPolicy)
	assert.True(t, cfg.Foreshortening)

	_, fill, _ := cfg.Colors()
	assert.Equal(t, MustParseHexColor("#ff8800"), fill)

	yaml := []byte(`
n_beta: 8
rotation_mode: degenerate
pan_step: 25
`)

	cfg, err = DecodeConfig(yaml, ".YML")
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.NBeta)
	assert.Equal(t, RotationDegenerate, cfg.RotationMode)
	assert.Equal(t, 25.0, cfg.PanStep)

	cfg, err = DecodeConfig(nil, ".yaml")
	require.NoError(t, err, "an empty file is the default config")
	assert.Equal(t, DefaultConfig(), cfg)

}

func TestDecodeConfigErrors(t *testing.T) {

	_, err := DecodeConfig([]byte("unknown_key = 1\n"), ".toml")
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = DecodeConfig([]byte("unknown_key: 1\n"), ".yaml")
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = DecodeConfig([]byte("screen_policy = \"sideways\"\n"), ".toml")
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = DecodeConfig([]byte("{}"), ".json")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

}

func TestEncodeConfigRoundTrip(t *testing.T) {

	cfg := DefaultConfig()
	cfg.RotationMode = RotationAngle
	cfg.AnglePlane = "yz"
	cfg.Parallelism = 3

	for _, ext := range []string{".toml", ".yaml"} {
		data, err := EncodeConfig(cfg, ext)
		require.NoError(t, err)
		decoded, err := DecodeConfig(data, ext)
		require.NoError(t, err)
		assert.Equal(t, cfg, decoded, ext)
	}

	_, err := EncodeConfig(cfg, ".ini")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

}

func TestLoadConfig(t *testing.T) {

	path := filepath.Join(t.TempDir(), "image3d.toml")
	require.NoError(t, os.WriteFile(path, []byte("width = 320\nheight = 200\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 320, cfg.Width)
	assert.Equal(t, 200, cfg.Height)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

}

func TestParseHexColor(t *testing.T) {

	c, err := ParseHexColor("#ff000080")
	require.NoError(t, err)
	assert.Equal(t, float32(1), c.R)
	assert.InDelta(t, 128.0/255, c.A, 1e-6)
	assert.Equal(t, "#ff000080", c.Hex())

	c, err = ParseHexColor("00ff00")
	require.NoError(t, err)
	assert.Equal(t, NewColor(0, 1, 0, 1), c)

	for _, bad := range []string{"", "#fff", "#gggggg", "#1234567"} {
		_, err := ParseHexColor(bad)
		assert.ErrorIs(t, err, ErrInvalidConfig, bad)
	}

	assert.Panics(t, func() { MustParseHexColor("nope") })

}

func TestAnglePlane(t *testing.T) {

	cfg := DefaultConfig()
	for name, plane := range map[string]RotationPlane{"": PlaneXY, "xy": PlaneXY, "XZ": PlaneXZ, "yz": PlaneYZ} {
		cfg.AnglePlane = name
		require.NoError(t, cfg.Validate(), name)
		assert.Equal(t, plane, cfg.Plane(), name)
	}

	cfg, err := DecodeConfig([]byte("rotation_mode = \"angle\"\nangle_plane = \"xz\"\n"), ".toml")
	require.NoError(t, err)
	assert.Equal(t, PlaneXZ, cfg.Plane())

	_, err = DecodeConfig([]byte("angle_plane: diagonal\n"), ".yaml")
	assert.ErrorIs(t, err, ErrInvalidConfig)

}
