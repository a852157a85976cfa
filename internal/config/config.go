package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds tunable defaults for the installer. Every field has a working
// default, so running without a settings file is the common case.
type Config struct {
	// InstallRoot overrides the stock per-platform MATLAB install root.
	InstallRoot string `yaml:"install_root"`
	// LinkPath is where the MATLAB symlink is maintained on POSIX systems.
	LinkPath string `yaml:"link_path"`
	// AutomatedModeTimeout is passed to the installer in automated mode,
	// in the installer's own time unit.
	AutomatedModeTimeout int `yaml:"automated_mode_timeout"`
	// ElevateCommand is prepended to spawned commands when privileges are
	// required, e.g. "sudo" or "doas".
	ElevateCommand string `yaml:"elevate_command"`
	// LogLevel sets the minimum log level (debug, info, warn, error).
	LogLevel string `yaml:"log_level"`
}

const (
	// DefaultConfigFilename is the default name of the settings file.
	DefaultConfigFilename = "matlab-easy-install.yaml"

	// DefaultLinkPath is the stock location of the MATLAB symlink.
	DefaultLinkPath = "/usr/local/bin/matlab"

	// DefaultAutomatedModeTimeout matches the timeout used for unattended
	// runs of the vendor installer GUI.
	DefaultAutomatedModeTimeout = 5000

	// DefaultElevateCommand is the stock privilege elevation command.
	DefaultElevateCommand = "sudo"

	// DefaultFilePermissions is used when saving the settings file.
	DefaultFilePermissions = 0o600
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errInvalidTimeout is returned for negative automated mode timeouts.
	errInvalidTimeout = errors.New("automated mode timeout must be positive")
)

// Default returns a configuration with all stock values applied.
func Default() *Config {
	return &Config{
		LinkPath:             DefaultLinkPath,
		AutomatedModeTimeout: DefaultAutomatedModeTimeout,
		ElevateCommand:       DefaultElevateCommand,
		LogLevel:             "info",
	}
}

// Load reads configuration from the provided path. An empty path selects
// DefaultConfigFilename and, when that file does not exist, returns the
// defaults instead of an error; an explicitly named file must exist.
func Load(path string) (*Config, error) {
	usingDefaultPath := path == ""
	if usingDefaultPath {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if usingDefaultPath && errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}

		return nil, fmt.Errorf("read settings: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(contents, cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	// Restrict permissions.
	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate checks the provided settings and fills empty fields with defaults.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if cfg.LinkPath == "" {
		cfg.LinkPath = DefaultLinkPath
	}

	if cfg.ElevateCommand == "" {
		cfg.ElevateCommand = DefaultElevateCommand
	}

	if cfg.AutomatedModeTimeout == 0 {
		cfg.AutomatedModeTimeout = DefaultAutomatedModeTimeout
	}

	if cfg.AutomatedModeTimeout < 0 {
		return fmt.Errorf("%d: %w", cfg.AutomatedModeTimeout, errInvalidTimeout)
	}

	return nil
}
