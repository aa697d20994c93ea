package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Logging contains configuration for diagnostic log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
	File   string `toml:"file"`
}

// Settings holds tool behaviour that is independent of the decoder paths.
type Settings struct {
	Logging Logging `toml:"logging"`
}

// DefaultSettingsPath returns the absolute path of the default settings file.
func DefaultSettingsPath() (string, error) {
	return expandPath(defaultSettingsPath)
}

// LoadSettings reads the optional TOML settings file. A missing file is not an
// error: defaults are returned and exists reports false.
func LoadSettings(path string) (Settings, string, bool, error) {
	settings := DefaultSettings()

	resolved := strings.TrimSpace(path)
	if resolved == "" {
		var err error
		if resolved, err = DefaultSettingsPath(); err != nil {
			return settings, "", false, err
		}
	} else {
		var err error
		if resolved, err = expandPath(resolved); err != nil {
			return settings, "", false, err
		}
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return settings, resolved, false, nil
		}
		return settings, resolved, false, fmt.Errorf("open settings: %w", err)
	}
	defer file.Close()

	if err := toml.NewDecoder(file).Decode(&settings); err != nil {
		return settings, resolved, true, fmt.Errorf("parse settings: %w", err)
	}
	if err := settings.normalize(); err != nil {
		return settings, resolved, true, err
	}
	return settings, resolved, true, nil
}

func (s *Settings) normalize() error {
	s.Logging.Format = strings.ToLower(strings.TrimSpace(s.Logging.Format))
	if s.Logging.Format == "" {
		s.Logging.Format = defaultLogFormat
	}
	s.Logging.Level = strings.ToLower(strings.TrimSpace(s.Logging.Level))
	if s.Logging.Level == "" {
		s.Logging.Level = defaultLogLevel
	}
	switch s.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", s.Logging.Format)
	}
	switch s.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error, got %q", s.Logging.Level)
	}
	if file := strings.TrimSpace(s.Logging.File); file != "" {
		expanded, err := expandPath(file)
		if err != nil {
			return fmt.Errorf("logging.file: %w", err)
		}
		s.Logging.File = expanded
	}
	return nil
}
