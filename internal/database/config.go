package database

import (
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/datbridge/odbcgo/internal/errs"
)

// Config holds all settings needed to load the driver manager and connect.
type Config struct {
	// LibraryPath overrides the platform-standard ODBC driver-manager
	// library. Empty means the platform default (libodbc on Linux,
	// libiodbc on macOS, odbc32 on Windows).
	LibraryPath string `yaml:"library_path"`

	// DSN is the full driver-native connection string.
	// Example: "Driver={SQL Server};Server=db1;Database=app;Uid=u;Pwd=p"
	// It is never parsed — only forwarded to the driver.
	DSN string `yaml:"dsn"`

	// Logging
	LogLevel  string `yaml:"log_level"`  // debug, info, warn, error
	LogFormat string `yaml:"log_format"` // json, console
}

// DefaultConfig returns production-ready defaults with no DSN set.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:  "info",
		LogFormat: "json",
	}
}

// LoadConfig reads a YAML config file. Fields absent from the file keep
// their DefaultConfig values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.Wrap(errs.ErrKindInvalidInput, "cannot read config file", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errs.Wrap(errs.ErrKindInvalidInput, "cannot parse config file", err)
	}
	return cfg, nil
}
