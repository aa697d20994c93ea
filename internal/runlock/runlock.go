// Package runlock keeps two decode runs from writing the same output file.
//
// Locks are advisory flock files in a lock directory (the OS temp directory
// by default) named after a hash of the absolute output path, so nothing is
// created next to the decoder output.
package runlock

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
)

// ErrBusy reports that another run holds the lock for the same output.
var ErrBusy = errors.New("another decode run is writing this output")

// Lock is a held run lock.
type Lock struct {
	fl *flock.Flock
}

// PathFor returns the lock file used for output inside dir. An empty dir
// selects the OS temp directory.
func PathFor(dir, output string) string {
	if strings.TrimSpace(dir) == "" {
		dir = os.TempDir()
	}
	key := output
	if abs, err := filepath.Abs(output); err == nil {
		key = abs
	}
	sum := sha256.Sum256([]byte(key))
	return filepath.Join(dir, "dartdecode-"+hex.EncodeToString(sum[:8])+".lock")
}

// Acquire takes the lock for output without blocking.
func Acquire(dir, output string) (*Lock, error) {
	path := PathFor(dir, output)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}
	fl := flock.New(path)
	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock %s: %w", path, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrBusy, output)
	}
	return &Lock{fl: fl}, nil
}

// Path returns the lock file path.
func (l *Lock) Path() string {
	if l == nil || l.fl == nil {
		return ""
	}
	return l.fl.Path()
}

// Release unlocks. It is safe to call on a nil lock.
func (l *Lock) Release() error {
	if l == nil || l.fl == nil {
		return nil
	}
	return l.fl.Unlock()
}
