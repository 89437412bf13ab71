// Package config loads server configuration from an optional TOML file
// with environment variable overrides.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/pelletier/go-toml/v2"
)

// Duration decodes duration strings like "10s" from TOML and from
// environment overrides.
type Duration time.Duration

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// SetValue satisfies the cleanenv setter so env overrides use the same
// string format as the file.
func (d *Duration) SetValue(s string) error { return d.UnmarshalText([]byte(s)) }

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Config holds the runtime settings for the server.
type Config struct {
	Addr            string   `toml:"addr" env:"TASKDECK_ADDR"`
	LogLevel        string   `toml:"log_level" env:"TASKDECK_LOG_LEVEL"`
	Locale          string   `toml:"locale" env:"TASKDECK_LOCALE"`
	ShutdownTimeout Duration `toml:"shutdown_timeout" env:"TASKDECK_SHUTDOWN_TIMEOUT"`
	SeedFile        string   `toml:"seed_file" env:"TASKDECK_SEED_FILE"`
}

// Default returns the configuration used when no file or environment
// overrides are present.
func Default() Config {
	return Config{
		Addr:            ":8080",
		LogLevel:        "info",
		Locale:          "en",
		ShutdownTimeout: Duration(10 * time.Second),
	}
}

// Load reads the TOML file at path (skipped when path is empty or the
// file does not exist), then applies environment overrides on top.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// Missing file falls through to defaults.
		case err != nil:
			return cfg, fmt.Errorf("read config: %w", err)
		default:
			if err := toml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return cfg, fmt.Errorf("read env: %w", err)
	}
	return cfg, nil
}
