package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Env holds host options read from the environment.
type Env struct {
	// ConfigPath is the binding file. Empty selects the built-in bindings.
	ConfigPath string `env:"ACTIONMAP_CONFIG"`
	// LogLevel is one of debug, info, warn or error.
	LogLevel string `env:"ACTIONMAP_LOG_LEVEL" envDefault:"info"`
	// FrameInterval is the time between frame resets.
	FrameInterval time.Duration `env:"ACTIONMAP_FRAME_INTERVAL" envDefault:"16ms"`
	// Watch reloads the binding file when it changes.
	Watch bool `env:"ACTIONMAP_WATCH"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadEnv reads Env from the process environment.
func LoadEnv() (Env, error) {
	var e Env
	if err := ParseEnv(&e); err != nil {
		return Env{}, err
	}
	return e, nil
}
