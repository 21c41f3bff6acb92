package render

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Settings configures a render run: image size, sample/pass schedule, and
// integrator parameters. Loadable from YAML per §EXPANSION's ambient
// configuration surface; CLI flags are deliberately absent (spec §6).
type Settings struct {
	Width         int `yaml:"width"`
	Height        int `yaml:"height"`
	SamplesPerPass int `yaml:"samples_per_pass"`
	MaxPasses     int `yaml:"max_passes"`
	MaxDepth      int `yaml:"max_depth"`
	TileSize      int `yaml:"tile_size"`
	Workers       int `yaml:"workers"`
	FovXDegrees   float64 `yaml:"fov_x_degrees"`
}

// DefaultSettings returns the reference configuration, matching the
// teacher's DefaultProgressiveConfig() pattern of shipping one sane
// built-in default instead of requiring every field to be set.
func DefaultSettings() Settings {
	return Settings{
		Width:          800,
		Height:         600,
		SamplesPerPass: 1,
		MaxPasses:      128,
		MaxDepth:       8,
		TileSize:       32,
		Workers:        0, // 0 means runtime.GOMAXPROCS(0)
		FovXDegrees:    60,
	}
}

// LoadSettings reads a YAML settings file, overlaying it onto
// DefaultSettings so a partial file only needs to specify what it changes.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, errors.Wrapf(err, "render: read settings file %q", path)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, errors.Wrapf(err, "render: parse settings file %q", path)
	}
	if s.Width <= 0 || s.Height <= 0 {
		return Settings{}, errors.Errorf("render: settings %q must have positive width/height, got %dx%d", path, s.Width, s.Height)
	}
	return s, nil
}
