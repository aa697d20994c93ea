package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"dartdecode/internal/config"
	"dartdecode/internal/decoder"
	"dartdecode/internal/testsupport"
	"dartdecode/internal/tokens"
	"dartdecode/internal/workflow"
)

func TestCLIDecodeInteractive(t *testing.T) {
	env := setupCLITestEnv(t,
		testsupport.WithTokenFiles("family/JOLT-A/x.tok"),
		testsupport.WithDecoderInputs(`echo "decoding $*"`),
	)

	stdout, _, err := runCLI(t, []string{"--no-viewer"}, env.configPath, "Jolt-A\nnope\nJOLT\n")
	if err != nil {
		t.Fatalf("decode failed: %v\n%s", err, stdout)
	}

	tokenPath := filepath.Join(env.cfg.TokenBasePath, "family", "JOLT-A")
	output := filepath.Join(env.cfg.DartFolderPath, "Jolt-A_decode.txt")
	for _, want := range []string{
		"Hi ESRVT team...",
		"=== Dart Logs Decoder ===",
		"Enter product name: ",
		"✅ Found token path: " + tokenPath,
		"🚀 Running command:",
		"-slotconfig Tron -showslot true -showslotabbr true",
		"decoding -i " + env.cfg.DartBinPath() + " -o " + output + " -t " + tokenPath,
		"✅ Decode completed! Output saved to:\n" + output,
	} {
		if !strings.Contains(stdout, want) {
			t.Fatalf("expected %q in output:\n%s", want, stdout)
		}
	}
	if got := strings.Count(stdout, "Enter device type (jedi/jolt): "); got != 2 {
		t.Fatalf("expected device prompt twice, got %d:\n%s", got, stdout)
	}
	if strings.Contains(stdout, "Opening with Glogg") {
		t.Fatalf("viewer should be skipped with --no-viewer:\n%s", stdout)
	}
}

func TestCLIDecodeFlagsSkipPrompts(t *testing.T) {
	env := setupCLITestEnv(t,
		testsupport.WithTokenFiles("jedi-b/y.tok"),
		testsupport.WithDecoderInputs(`echo "decoding $*"`),
		testsupport.WithStubbedViewer(),
	)

	stdout, _, err := runCLI(t, []string{"decode", "--product", "JEDI-B", "--device", "jedi"}, env.configPath, "")
	if err != nil {
		t.Fatalf("decode failed: %v\n%s", err, stdout)
	}
	if strings.Contains(stdout, "Enter ") {
		t.Fatalf("no prompt expected:\n%s", stdout)
	}
	if strings.Contains(stdout, "-slotconfig") {
		t.Fatalf("jedi must not add jolt flags:\n%s", stdout)
	}
	if !strings.Contains(stdout, "📂 Opening with Glogg...") {
		t.Fatalf("expected viewer line:\n%s", stdout)
	}
}

func TestCLIDecodeViewerFailureStillSucceeds(t *testing.T) {
	env := setupCLITestEnv(t,
		testsupport.WithTokenFiles("JOLT-A/x.tok"),
		testsupport.WithDecoderInputs(""),
	)

	stdout, _, err := runCLI(t, []string{"-p", "Jolt-A", "-d", "jolt"}, env.configPath, "")
	if err != nil {
		t.Fatalf("viewer failure must not fail the run: %v", err)
	}
	if !strings.Contains(stdout, "❌ Could not open with Glogg") {
		t.Fatalf("expected viewer failure line:\n%s", stdout)
	}
}

func TestCLIDecodeUnknownProduct(t *testing.T) {
	env := setupCLITestEnv(t,
		testsupport.WithTokenFiles("JOLT-A/x.tok"),
		testsupport.WithDecoderInputs(`touch "$0.ran"`),
	)

	stdout, _, err := runCLI(t, nil, env.configPath, "Nonexistent\n")
	if !errors.Is(err, tokens.ErrNotFound) {
		t.Fatalf("expected tokens.ErrNotFound, got %v", err)
	}
	if workflow.KindOf(err) != workflow.KindTokenPathNotFound {
		t.Fatalf("unexpected kind %q", workflow.KindOf(err))
	}
	if strings.Contains(stdout, "Running command") {
		t.Fatalf("decoder must not run:\n%s", stdout)
	}
	if _, statErr := os.Stat(env.cfg.DecoderPath() + ".ran"); !os.IsNotExist(statErr) {
		t.Fatal("decoder process was started")
	}
}

func TestCLIDecodeProcessFailure(t *testing.T) {
	env := setupCLITestEnv(t,
		testsupport.WithTokenFiles("JOLT-A/x.tok"),
		testsupport.WithDecoderInputs("exit 4"),
	)

	_, _, err := runCLI(t, []string{"--product", "jolt-a", "--device", "jolt"}, env.configPath, "")
	var procErr *decoder.ProcessError
	if !errors.As(err, &procErr) {
		t.Fatalf("expected ProcessError, got %v", err)
	}
	if procErr.ExitCode != 4 {
		t.Fatalf("exit code = %d", procErr.ExitCode)
	}
	if msg := renderFailure(err, false); msg != "❌ error running SysTraceParser.exe: exit status 4" {
		t.Fatalf("unexpected failure line %q", msg)
	}
}

func TestCLIDecodeMissingTrace(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithTokenFiles("JOLT-A/x.tok"))

	_, _, err := runCLI(t, []string{"--product", "Jolt-A"}, env.configPath, "")
	if workflow.KindOf(err) != workflow.KindMissingDecoderBinary {
		t.Fatalf("expected missing dart.bin, got %v", err)
	}
}

func TestCLIDecodeMissingConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)

	stdout, _, err := runCLI(t, nil, filepath.Join(dir, config.FileName), "")
	if !errors.Is(err, config.ErrNotFound) {
		t.Fatalf("expected config.ErrNotFound, got %v", err)
	}
	if strings.Contains(stdout, "Enter product name") {
		t.Fatalf("should abort before prompting:\n%s", stdout)
	}
}

func TestCLIDecodeRejectsInvalidDeviceFlag(t *testing.T) {
	env := setupCLITestEnv(t)
	_, _, err := runCLI(t, []string{"--device", "sith"}, env.configPath, "")
	if !errors.Is(err, decoder.ErrUnknownDevice) {
		t.Fatalf("expected ErrUnknownDevice, got %v", err)
	}
}

func TestCLIResolve(t *testing.T) {
	env := setupCLITestEnv(t,
		testsupport.WithTokenFiles("a/Jolt-B/empty.keep", "z/JOLT-B/tokens.dat"),
	)

	stdout, _, err := runCLI(t, []string{"resolve", "jolt-b"}, env.configPath, "")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if want := filepath.Join(env.cfg.TokenBasePath, "a", "Jolt-B"); strings.TrimSpace(stdout) != want {
		t.Fatalf("resolve = %q, want %q", strings.TrimSpace(stdout), want)
	}
}

func TestCLIResolveEmptyMatch(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithTokenFiles("z/JOLT-B/tokens.dat"))
	testsupport.MkdirAll(t, env.cfg.TokenBasePath, "a", "Jolt-B", "slot")

	if _, _, err := runCLI(t, []string{"resolve", "jolt-b"}, env.configPath, ""); !errors.Is(err, tokens.ErrNotFound) {
		t.Fatalf("expected empty match to stop the search, got %v", err)
	}

	stdout, _, err := runCLI(t, []string{"resolve", "--skip-empty", "jolt-b"}, env.configPath, "")
	if err != nil {
		t.Fatalf("resolve --skip-empty failed: %v", err)
	}
	if want := filepath.Join(env.cfg.TokenBasePath, "z", "JOLT-B"); strings.TrimSpace(stdout) != want {
		t.Fatalf("resolve = %q, want %q", strings.TrimSpace(stdout), want)
	}
}

func TestCLICheck(t *testing.T) {
	env := setupCLITestEnv(t,
		testsupport.WithDecoderInputs(""),
		testsupport.WithStubbedViewer(),
	)

	stdout, _, err := runCLI(t, []string{"check"}, env.configPath, "")
	if err != nil {
		t.Fatalf("check failed: %v\n%s", err, stdout)
	}
	for _, want := range []string{"Token base", "Dart folder", "Trace file", "Decoder", "Viewer", "Ready to decode"} {
		if !strings.Contains(stdout, want) {
			t.Fatalf("expected %q in output:\n%s", want, stdout)
		}
	}
}

func TestCLICheckReportsFailures(t *testing.T) {
	env := setupCLITestEnv(t)

	stdout, _, err := runCLI(t, []string{"check"}, env.configPath, "")
	if err == nil {
		t.Fatalf("expected failure without decoder inputs:\n%s", stdout)
	}
	if !strings.Contains(stdout, "FAIL") {
		t.Fatalf("expected FAIL rows:\n%s", stdout)
	}
}

func TestCLIConfigInitAndValidate(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	target := filepath.Join(dir, "nested", config.FileName)

	stdout, _, err := runCLI(t, []string{"config", "init", "--path", target}, "", "")
	if err != nil {
		t.Fatalf("config init failed: %v", err)
	}
	if !strings.Contains(stdout, target) {
		t.Fatalf("expected target path in output:\n%s", stdout)
	}

	if _, _, err := runCLI(t, []string{"config", "init", "--path", target}, "", ""); err == nil {
		t.Fatal("expected error when config exists without --overwrite")
	}
	if _, _, err := runCLI(t, []string{"config", "init", "--path", target, "--overwrite"}, "", ""); err != nil {
		t.Fatalf("config init --overwrite failed: %v", err)
	}

	stdout, _, err = runCLI(t, []string{"config", "validate"}, target, "")
	if err != nil {
		t.Fatalf("config validate failed: %v", err)
	}
	if !strings.Contains(stdout, "Configuration valid") {
		t.Fatalf("unexpected validate output:\n%s", stdout)
	}
}

func TestCLIConfigValidateIncomplete(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	path := filepath.Join(dir, config.FileName)
	if err := os.WriteFile(path, []byte(`{"TokenBasePath":"/t"}`), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, _, err := runCLI(t, []string{"config", "validate"}, path, "")
	if !errors.Is(err, config.ErrIncomplete) {
		t.Fatalf("expected ErrIncomplete, got %v", err)
	}
	if !strings.Contains(err.Error(), "DartFolderPath") || !strings.Contains(err.Error(), "GloggPath") {
		t.Fatalf("expected missing fields in message: %v", err)
	}
}

func TestRenderStatusLine(t *testing.T) {
	if got := renderStatusLine(statusOK, "done", false); got != "✅ done" {
		t.Fatalf("unexpected %q", got)
	}
	if got := renderStatusLine(statusError, "boom", true); got != ansiRed+"❌ boom"+ansiReset {
		t.Fatalf("unexpected %q", got)
	}
}
