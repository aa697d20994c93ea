//go:build unix

package decoder

import (
	"os/exec"
	"syscall"
)

// detach moves the viewer into its own process group so it survives the
// terminal signals sent to this tool.
func detach(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}
