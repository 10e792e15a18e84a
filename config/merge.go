package config

// Merge overlays override presets on base, returning the result. The merge
// is per mode and per field: an override file that only sets one field for
// one mode leaves everything else from base intact.
func Merge(base, override Presets) Presets {
	result := base

	if override.Version != "" {
		result.Version = override.Version
	}

	if len(override.Modes) > 0 {
		merged := make(map[string]Preset, len(base.Modes)+len(override.Modes))
		for name, preset := range base.Modes {
			merged[name] = preset
		}
		for name, preset := range override.Modes {
			merged[name] = mergePreset(merged[name], preset)
		}
		result.Modes = merged
	}

	return result
}

func mergePreset(base, override Preset) Preset {
	result := base

	if override.CanShowBookend != nil {
		result.CanShowBookend = override.CanShowBookend
	}
	if override.CanShowPageHelp != nil {
		result.CanShowPageHelp = override.CanShowPageHelp
	}
	if override.CanShowSharingUIs != nil {
		result.CanShowSharingUIs = override.CanShowSharingUIs
	}
	if override.CanShowSystemButtons != nil {
		result.CanShowSystemButtons = override.CanShowSystemButtons
	}
	if override.Muted != nil {
		result.Muted = override.Muted
	}

	return result
}
