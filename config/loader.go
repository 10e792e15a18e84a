package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/storykit/core/errors"
)

// Load reads a preset file. The format is chosen by extension: .yml/.yaml
// or .toml.
func Load(path string) (Presets, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Presets{}, errors.ConfigNotFound(path)
		}
		return Presets{}, errors.Wrap(err, errors.ErrCodeConfigInvalid, "read preset file")
	}

	var p Presets
	switch filepath.Ext(path) {
	case ".toml":
		if err := toml.Unmarshal(data, &p); err != nil {
			return Presets{}, errors.Wrap(err, errors.ErrCodeConfigInvalid, "parse preset file").
				WithDetail("path", path)
		}
	case ".yml", ".yaml":
		if err := yaml.Unmarshal(data, &p); err != nil {
			return Presets{}, errors.Wrap(err, errors.ErrCodeConfigInvalid, "parse preset file").
				WithDetail("path", path)
		}
	default:
		return Presets{}, errors.ConfigInvalid("unsupported preset file extension: " + filepath.Ext(path))
	}

	return p, nil
}

// LoadWithBuiltin returns the built-in presets with the given file overlaid.
// An empty path returns the built-ins unchanged.
func LoadWithBuiltin(path string) (Presets, error) {
	base := Builtin()
	if path == "" {
		return base, nil
	}

	override, err := Load(path)
	if err != nil {
		return Presets{}, err
	}

	return Merge(base, override), nil
}
