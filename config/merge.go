package config

// mergeConfigs merges override configuration into base. Scalars win when set
// in the override; a non-nil seed list replaces the base list; extension
// sections are replaced key by key.
func mergeConfigs(base, override *Config) *Config {
	result := *base

	if override.Version != "" {
		result.Version = override.Version
	}

	if override.Seed != nil {
		result.Seed = append([]SeedRecord(nil), override.Seed...)
	}

	if override.Store.Path != "" {
		result.Store.Path = override.Store.Path
	}
	if override.Store.Autosave != nil {
		v := *override.Store.Autosave
		result.Store.Autosave = &v
	}
	if override.Store.Watch != nil {
		v := *override.Store.Watch
		result.Store.Watch = &v
	}

	if override.TUI.Theme != "" {
		result.TUI.Theme = override.TUI.Theme
	}
	if override.TUI.Keymap != "" {
		result.TUI.Keymap = override.TUI.Keymap
	}
	if override.TUI.Title != "" {
		result.TUI.Title = override.TUI.Title
	}

	if len(base.Extensions) > 0 || len(override.Extensions) > 0 {
		result.Extensions = make(map[string]interface{}, len(base.Extensions)+len(override.Extensions))
		for k, v := range base.Extensions {
			result.Extensions[k] = v
		}
		for k, v := range override.Extensions {
			result.Extensions[k] = v
		}
	}

	return &result
}
