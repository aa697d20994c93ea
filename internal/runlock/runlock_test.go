package runlock_test

import (
	"errors"
	"path/filepath"
	"testing"

	"dartdecode/internal/runlock"
)

func TestAcquireIsExclusivePerOutput(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(t.TempDir(), "Jolt-A_decode.txt")

	first, err := runlock.Acquire(dir, output)
	if err != nil {
		t.Fatalf("first Acquire returned error: %v", err)
	}
	t.Cleanup(func() { _ = first.Release() })

	if _, err := runlock.Acquire(dir, output); !errors.Is(err, runlock.ErrBusy) {
		t.Fatalf("expected ErrBusy, got %v", err)
	}

	other, err := runlock.Acquire(dir, filepath.Join(filepath.Dir(output), "Jedi_decode.txt"))
	if err != nil {
		t.Fatalf("different output should not conflict: %v", err)
	}
	_ = other.Release()

	if err := first.Release(); err != nil {
		t.Fatalf("Release returned error: %v", err)
	}
	again, err := runlock.Acquire(dir, output)
	if err != nil {
		t.Fatalf("Acquire after release returned error: %v", err)
	}
	_ = again.Release()
}

func TestPathForIsStable(t *testing.T) {
	dir := t.TempDir()
	a := runlock.PathFor(dir, "/d/out.txt")
	b := runlock.PathFor(dir, "/d/out.txt")
	if a != b {
		t.Fatalf("expected stable lock path, got %q and %q", a, b)
	}
	if filepath.Dir(a) != dir {
		t.Fatalf("lock path %q not inside %q", a, dir)
	}
	if a == runlock.PathFor(dir, "/d/other.txt") {
		t.Fatal("expected distinct lock paths for distinct outputs")
	}
}

func TestReleaseNilLock(t *testing.T) {
	var lock *runlock.Lock
	if err := lock.Release(); err != nil {
		t.Fatalf("Release on nil lock returned error: %v", err)
	}
	if lock.Path() != "" {
		t.Fatal("expected empty path for nil lock")
	}
}
