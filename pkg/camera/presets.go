package camera

// Preset names for common configurations
const (
	PresetDefault = "default"
	PresetLegacy  = "legacy"
	Preset1080p   = "1080p"
	PresetFast    = "fast"
)

// Presets returns all available preset configurations.
func Presets() map[string]Config {
	return map[string]Config{
		PresetDefault: DefaultConfig(),
		PresetLegacy:  LegacyConfig(),
		Preset1080p:   HD1080Config(),
		PresetFast:    FastConfig(),
	}
}

// PresetNames returns the list of available preset names.
func PresetNames() []string {
	return []string{
		PresetDefault,
		PresetLegacy,
		Preset1080p,
		PresetFast,
	}
}

// GetPreset returns a preset config by name, or nil if not found.
func GetPreset(name string) *Config {
	presets := Presets()
	if cfg, ok := presets[name]; ok {
		return &cfg
	}
	return nil
}

// HD1080Config captures 1080p and downscales.
// Sharper landmarks on cameras with noisy 720p modes.
func HD1080Config() Config {
	cfg := DefaultConfig()
	cfg.CaptureWidth = 1920
	cfg.CaptureHeight = 1080
	return cfg
}

// FastConfig asks for 60 FPS for smoother cursor motion.
func FastConfig() Config {
	cfg := DefaultConfig()
	cfg.Framerate = 60
	return cfg
}
