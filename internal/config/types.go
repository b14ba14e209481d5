package config

import "time"

// Config represents the full focuskit configuration document.
type Config struct {
	Version    string           `yaml:"version" validate:"required,semver"`
	Log        LogConfig        `yaml:"log"`
	Trap       TrapConfig       `yaml:"trap"`
	Navigation NavigationConfig `yaml:"navigation"`
	Announcer  AnnouncerConfig  `yaml:"announcer"`
}

// LogConfig selects the logging backend and verbosity.
type LogConfig struct {
	Level   string `yaml:"level,omitempty" validate:"omitempty,oneof=debug info warn error"`
	Format  string `yaml:"format,omitempty" validate:"omitempty,oneof=text console json logfmt"`
	Backend string `yaml:"backend,omitempty" validate:"omitempty,oneof=charm zerolog"`
}

// TrapConfig holds defaults for focus traps.
type TrapConfig struct {
	EscapeDeactivates bool   `yaml:"escape_deactivates"`
	InitialFocus      string `yaml:"initial_focus,omitempty" validate:"omitempty,selector"`
}

// NavigationConfig holds defaults for roving-focus navigators.
type NavigationConfig struct {
	Orientation string `yaml:"orientation,omitempty" validate:"omitempty,orientation"`
	Loop        bool   `yaml:"loop"`
	// Columns is required for grid navigation; see validateNavigation.
	Columns     int        `yaml:"columns,omitempty" validate:"gte=0,lte=64"`
	FocusWithin bool       `yaml:"focus_within"`
	Keys        KeysConfig `yaml:"keys,omitempty"`
}

// KeysConfig overrides navigator bindings. Empty lists keep the defaults.
// Key names use bubbletea notation ("up", "ctrl+n", "j").
type KeysConfig struct {
	Up       []string `yaml:"up,omitempty" validate:"omitempty,dive,required"`
	Down     []string `yaml:"down,omitempty" validate:"omitempty,dive,required"`
	Left     []string `yaml:"left,omitempty" validate:"omitempty,dive,required"`
	Right    []string `yaml:"right,omitempty" validate:"omitempty,dive,required"`
	Home     []string `yaml:"home,omitempty" validate:"omitempty,dive,required"`
	End      []string `yaml:"end,omitempty" validate:"omitempty,dive,required"`
	Activate []string `yaml:"activate,omitempty" validate:"omitempty,dive,required"`
}

// AnnouncerConfig holds live announcer settings.
type AnnouncerConfig struct {
	Politeness string        `yaml:"politeness,omitempty" validate:"omitempty,politeness"`
	Duration   time.Duration `yaml:"duration" validate:"gte=0s,lte=10m"`
	Dedupe     bool          `yaml:"dedupe"`
}

// Default returns the configuration used when no file is supplied. Parsed
// files are decoded on top of it, so omitted keys keep these values.
func Default() *Config {
	return &Config{
		Version: "1.0.0",
		Log: LogConfig{
			Level:   "info",
			Format:  "text",
			Backend: "charm",
		},
		Trap: TrapConfig{
			EscapeDeactivates: true,
		},
		Navigation: NavigationConfig{
			Orientation: "vertical",
			Loop:        true,
		},
		Announcer: AnnouncerConfig{
			Politeness: "polite",
			Duration:   5 * time.Second,
			Dedupe:     true,
		},
	}
}
