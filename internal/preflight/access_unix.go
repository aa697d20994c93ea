//go:build unix

package preflight

import "golang.org/x/sys/unix"

func accessDir(path string, writable bool) error {
	mode := uint32(unix.R_OK | unix.X_OK)
	if writable {
		mode |= unix.W_OK
	}
	return unix.Access(path, mode)
}

func accessFile(path string) error {
	return unix.Access(path, unix.R_OK)
}
