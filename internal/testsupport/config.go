package testsupport

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"dartdecode/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
	tokens  []string
	trace   bool
	decoder string
}

// NewConfig produces a config seeded with unique temp directories per test.
// The token base and dart folder exist but are empty unless options populate
// them.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := &config.Config{
		TokenBasePath:  filepath.Join(base, "tokens"),
		DartFolderPath: filepath.Join(base, "dart"),
		GloggPath:      filepath.Join(base, "bin", "glogg"),
	}
	for _, dir := range []string{cfg.TokenBasePath, cfg.DartFolderPath} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     cfg,
	}
	for _, opt := range opts {
		opt(builder)
	}

	for _, rel := range builder.tokens {
		WriteFile(t, filepath.Join(cfg.TokenBasePath, filepath.FromSlash(rel)), 16)
	}
	if builder.trace {
		WriteFile(t, cfg.DartBinPath(), 64)
	}
	if builder.decoder != "" {
		writeExecutable(t, cfg.DecoderPath(), builder.decoder)
	}
	return cfg
}

// WithTokenFiles creates files below the token base. Paths are slash separated
// and relative to the base, for example "JOLT-A/x.tok".
func WithTokenFiles(paths ...string) ConfigOption {
	return func(b *configBuilder) {
		b.tokens = append(b.tokens, paths...)
	}
}

// WithDecoderInputs writes dart.bin and a SysTraceParser.exe stub that runs
// script with /bin/sh.
func WithDecoderInputs(script string) ConfigOption {
	return func(b *configBuilder) {
		b.trace = true
		if script == "" {
			script = "exit 0"
		}
		b.decoder = script
	}
}

// WithStubbedViewer writes a viewer stub at GloggPath.
func WithStubbedViewer() ConfigOption {
	return func(b *configBuilder) {
		writeExecutable(b.t, b.cfg.GloggPath, "exit 0")
	}
}

// WithGloggPath overrides the viewer path.
func WithGloggPath(path string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.GloggPath = path
	}
}

// WriteConfigFile stores cfg as Config_decode.json inside dir and returns the
// file path.
func WriteConfigFile(t testing.TB, dir string, cfg *config.Config) string {
	t.Helper()

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	path := filepath.Join(dir, config.FileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.DartFolderPath)
}

func writeExecutable(t testing.TB, path, body string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	script := []byte("#!/bin/sh\n" + body + "\n")
	if err := os.WriteFile(path, script, 0o755); err != nil {
		t.Fatalf("write stub %s: %v", path, err)
	}
}
