package config

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

//go:embed sample_config.json
var sampleConfig string

const (
	// FileName is the configuration file looked up in the working directory.
	FileName = "Config_decode.json"
	// TraceFileName is the captured trace expected under DartFolderPath.
	TraceFileName = "dart.bin"
	// DecoderFileName is the decoder executable expected under DartFolderPath.
	DecoderFileName = "SysTraceParser.exe"
	// OutputSuffix is appended to the product name to form the decode output file.
	OutputSuffix = "_decode.txt"
)

var (
	ErrNotFound   = errors.New("config file not found")
	ErrParse      = errors.New("failed to parse config JSON")
	ErrIncomplete = errors.New("config is missing required paths")
)

// Config holds the three paths a decode run needs.
type Config struct {
	TokenBasePath  string `json:"TokenBasePath"`
	DartFolderPath string `json:"DartFolderPath"`
	GloggPath      string `json:"GloggPath"`
}

// Load reads, validates, and normalizes the configuration file. An empty path
// selects FileName in the current directory. The resolved file path is
// returned alongside the config so callers can report it.
func Load(path string) (*Config, string, error) {
	resolved, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", err
	}

	info, err := os.Stat(resolved)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, resolved, fmt.Errorf("%w: %s", ErrNotFound, resolved)
		}
		return nil, resolved, fmt.Errorf("%w: %s: %w", ErrNotFound, resolved, err)
	}
	if !info.Mode().IsRegular() {
		return nil, resolved, fmt.Errorf("%w: %s is not a regular file", ErrNotFound, resolved)
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		return nil, resolved, fmt.Errorf("%w: read %s: %w", ErrNotFound, resolved, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, resolved, err
	}
	return cfg, resolved, nil
}

// Parse decodes and validates configuration content.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	cfg.trim()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func resolveConfigPath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		path = FileName
	}
	expanded, err := expandPath(path)
	if err != nil {
		return "", err
	}
	return filepath.Abs(expanded)
}

// DartBinPath returns the trace file the decoder reads.
func (c *Config) DartBinPath() string {
	return filepath.Join(c.DartFolderPath, TraceFileName)
}

// DecoderPath returns the SysTraceParser executable path.
func (c *Config) DecoderPath() string {
	return filepath.Join(c.DartFolderPath, DecoderFileName)
}

// OutputPath returns where the decoder writes the text output for product.
// The product name is used verbatim.
func (c *Config) OutputPath(product string) string {
	return filepath.Join(c.DartFolderPath, product+OutputSuffix)
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	return filepath.Clean(pathValue), nil
}

// ExpandPath exposes the tilde expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
