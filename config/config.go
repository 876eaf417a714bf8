package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to environment overrides, e.g. PLATFORMER_LOGLEVEL
// or PLATFORMER_WINDOW_SCALE.
const EnvPrefix = "PLATFORMER"

// WindowSettings sizes the ebiten window.
type WindowSettings struct {
	Width  int     `mapstructure:"width"`
	Height int     `mapstructure:"height"`
	Scale  float64 `mapstructure:"scale"`
}

// Settings are the host settings shared by the window and headless runners.
type Settings struct {
	LogLevel string `mapstructure:"logLevel"`
	// Level is the level name to load.
	Level string `mapstructure:"level"`
	// Tuning is the tuning prefab file.
	Tuning string `mapstructure:"tuning"`
	// Script drives the actor in headless runs.
	Script string `mapstructure:"script"`
	Ticks  int    `mapstructure:"ticks"`
	// StepMs is the fixed step used by headless runs.
	StepMs float64 `mapstructure:"stepMs"`
	// Watch enables prefab hot reload.
	Watch  bool           `mapstructure:"watch"`
	Debug  bool           `mapstructure:"debug"`
	Window WindowSettings `mapstructure:"window"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logLevel", "info")
	v.SetDefault("level", "default")
	v.SetDefault("tuning", "tuning.yaml")
	v.SetDefault("script", "runner")
	v.SetDefault("ticks", 600)
	v.SetDefault("stepMs", 1000.0/60.0)
	v.SetDefault("watch", true)
	v.SetDefault("debug", false)

	v.SetDefault("window.width", 960)
	v.SetDefault("window.height", 600)
	v.SetDefault("window.scale", 1.0)
}

// Load reads settings from defaults, the optional config file at path and
// PLATFORMER_* environment variables, in increasing priority.
func Load(path string) (*Settings, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Settings) Validate() error {
	if s.Ticks < 0 {
		return fmt.Errorf("config: ticks must not be negative, got %d", s.Ticks)
	}
	if s.StepMs <= 0 {
		return fmt.Errorf("config: stepMs must be positive, got %v", s.StepMs)
	}
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		return fmt.Errorf("config: window size must be positive, got %dx%d", s.Window.Width, s.Window.Height)
	}
	if s.Window.Scale <= 0 {
		return fmt.Errorf("config: window scale must be positive, got %v", s.Window.Scale)
	}
	return nil
}
