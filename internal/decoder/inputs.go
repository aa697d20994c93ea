package decoder

import (
	"errors"
	"fmt"
	"os"
)

var (
	// ErrMissingTrace reports that dart.bin is absent.
	ErrMissingTrace = errors.New("dart.bin file not found")
	// ErrMissingExecutable reports that SysTraceParser.exe is absent.
	ErrMissingExecutable = errors.New("SysTraceParser executable not found")
)

// FileCheck reports whether path is an existing regular file.
type FileCheck func(path string) bool

// IsRegularFile follows symlinks and reports whether path is a regular file.
func IsRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// CheckInputs verifies the trace file and then the decoder executable.
func CheckInputs(tracePath, decoderPath string, exists FileCheck) error {
	if exists == nil {
		exists = IsRegularFile
	}
	if !exists(tracePath) {
		return fmt.Errorf("%w: %s", ErrMissingTrace, tracePath)
	}
	if !exists(decoderPath) {
		return fmt.Errorf("%w: %s", ErrMissingExecutable, decoderPath)
	}
	return nil
}
