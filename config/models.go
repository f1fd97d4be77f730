package config

import (
	"errors"
	"fmt"
	"time"
)

// Config holds application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	HTTP     HTTPConfig     `mapstructure:"http"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Registry RegistryConfig `mapstructure:"registry"`
	Static   StaticConfig   `mapstructure:"static"`
}

// Validate ensures required fields are present.
func (c Config) Validate() error {
	if c.Server.Port == 0 {
		return errors.New("server.port is required")
	}
	if c.Static.Dir == "" {
		return errors.New("static.dir is required")
	}
	return nil
}

// ServerAddr returns host:port for HTTP server binding.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// ServerConfig contains HTTP server options.
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// HTTPConfig contains transport settings.
type HTTPConfig struct {
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

// LoggingConfig contains logger preferences.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// RegistryConfig describes activity registry startup options.
type RegistryConfig struct {
	// SeedPath optionally points at a JSON file replacing the built-in seed set.
	SeedPath string `mapstructure:"seed_path"`
	// EnforceCapacity rejects signups once a roster reaches max_participants.
	// Off by default: capacity is informational in the reference behavior.
	EnforceCapacity bool `mapstructure:"enforce_capacity"`
}

// StaticConfig describes the static landing page location.
type StaticConfig struct {
	Dir string `mapstructure:"dir"`
}
