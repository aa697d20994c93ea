//go:build !unix

package preflight

import (
	"os"
	"path/filepath"
)

func accessDir(path string, writable bool) error {
	dir, err := os.Open(path)
	if err != nil {
		return err
	}
	dir.Close()
	if !writable {
		return nil
	}
	probe, err := os.CreateTemp(path, ".dartdecode-probe-*")
	if err != nil {
		return err
	}
	name := probe.Name()
	probe.Close()
	return os.Remove(filepath.Clean(name))
}

func accessFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	return f.Close()
}
