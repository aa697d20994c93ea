package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"dartdecode/internal/config"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, config.FileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadMissingFile(t *testing.T) {
	_, resolved, err := config.Load(filepath.Join(t.TempDir(), config.FileName))
	if !errors.Is(err, config.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path even on failure")
	}
}

func TestLoadDirectoryIsNotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.FileName)
	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	_, _, err := config.Load(path)
	if !errors.Is(err, config.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for a directory, got %v", err)
	}
	if !strings.Contains(err.Error(), "not a regular file") {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `{"TokenBasePath": "/t",`)
	_, _, err := config.Load(path)
	if !errors.Is(err, config.ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
}

func TestLoadWrongFieldTypeIsParseError(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `{"TokenBasePath": 5, "DartFolderPath": "/d", "GloggPath": "/g"}`)
	if _, _, err := config.Load(path); !errors.Is(err, config.ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
}

func TestLoadIncomplete(t *testing.T) {
	cases := []struct {
		name    string
		content string
		missing string
	}{
		{"token base absent", `{"DartFolderPath":"/d","GloggPath":"/g/glogg"}`, "TokenBasePath"},
		{"dart folder empty", `{"TokenBasePath":"/t","DartFolderPath":"","GloggPath":"/g/glogg"}`, "DartFolderPath"},
		{"glogg whitespace", `{"TokenBasePath":"/t","DartFolderPath":"/d","GloggPath":"   "}`, "GloggPath"},
		{"null document", `null`, "TokenBasePath, DartFolderPath, GloggPath"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tc.content)
			_, _, err := config.Load(path)
			if !errors.Is(err, config.ErrIncomplete) {
				t.Fatalf("expected ErrIncomplete, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.missing) {
				t.Fatalf("expected %q in %q", tc.missing, err.Error())
			}
		})
	}
}

func TestLoadValidConfigDerivesPaths(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `{"TokenBasePath":"/t","DartFolderPath":"/d","GloggPath":"/g/glogg","Extra":"ignored"}`)
	cfg, resolved, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved != path {
		t.Fatalf("resolved = %q, want %q", resolved, path)
	}
	if cfg.TokenBasePath != "/t" || cfg.DartFolderPath != "/d" || cfg.GloggPath != "/g/glogg" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if got := cfg.DartBinPath(); got != "/d/dart.bin" {
		t.Fatalf("DartBinPath = %q", got)
	}
	if got := cfg.DecoderPath(); got != "/d/SysTraceParser.exe" {
		t.Fatalf("DecoderPath = %q", got)
	}
	if got := cfg.OutputPath("Jolt-A"); got != "/d/Jolt-A_decode.txt" {
		t.Fatalf("OutputPath = %q", got)
	}
}

func TestLoadDefaultsToWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{"TokenBasePath":"/t","DartFolderPath":"/d","GloggPath":"glogg"}`)
	t.Chdir(dir)

	cfg, resolved, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if filepath.Base(resolved) != config.FileName {
		t.Fatalf("expected default file name, got %q", resolved)
	}
	if cfg.GloggPath != "glogg" {
		t.Fatalf("bare viewer name should be kept, got %q", cfg.GloggPath)
	}
}

func TestLoadExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	path := writeConfig(t, t.TempDir(), `{"TokenBasePath":"~/tokens","DartFolderPath":" ~/dart ","GloggPath":"~/bin/glogg"}`)

	cfg, _, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.TokenBasePath != filepath.Join(home, "tokens") {
		t.Fatalf("TokenBasePath = %q", cfg.TokenBasePath)
	}
	if cfg.DartFolderPath != filepath.Join(home, "dart") {
		t.Fatalf("DartFolderPath = %q", cfg.DartFolderPath)
	}
	if cfg.GloggPath != filepath.Join(home, "bin", "glogg") {
		t.Fatalf("GloggPath = %q", cfg.GloggPath)
	}
}

func TestCreateSampleLoadsCleanly(t *testing.T) {
	target := filepath.Join(t.TempDir(), "nested", config.FileName)
	if err := config.CreateSample(target); err != nil {
		t.Fatalf("CreateSample returned error: %v", err)
	}
	if _, _, err := config.Load(target); err != nil {
		t.Fatalf("sample config should validate, got %v", err)
	}
}

func TestLoadSettingsDefaultsWhenMissing(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	settings, resolved, exists, err := config.LoadSettings("")
	if err != nil {
		t.Fatalf("LoadSettings returned error: %v", err)
	}
	if exists {
		t.Fatal("expected settings file to be absent")
	}
	if resolved == "" {
		t.Fatal("expected resolved settings path")
	}
	if settings != config.DefaultSettings() {
		t.Fatalf("expected defaults, got %+v", settings)
	}
}

func TestLoadSettingsCustomFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.toml")

	custom := config.Settings{Logging: config.Logging{Format: "JSON", Level: "Debug", File: filepath.Join(dir, "decode.log")}}
	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal settings: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}

	settings, _, exists, err := config.LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected settings file to exist")
	}
	if settings.Logging.Format != "json" || settings.Logging.Level != "debug" {
		t.Fatalf("expected normalized logging settings, got %+v", settings.Logging)
	}
	if settings.Logging.File != filepath.Join(dir, "decode.log") {
		t.Fatalf("unexpected log file %q", settings.Logging.File)
	}
}

func TestLoadSettingsRejectsUnknownFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	if err := os.WriteFile(path, []byte("[logging]\nformat = \"xml\"\n"), 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}
	if _, _, _, err := config.LoadSettings(path); err == nil || !strings.Contains(err.Error(), "logging.format") {
		t.Fatalf("expected logging.format error, got %v", err)
	}
}
