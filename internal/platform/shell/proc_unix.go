//go:build unix

package shell

import (
	"os/exec"
	"syscall"
)

// isolate puts the shell in its own process group so cancellation
// reaches every tool in a pipeline, not only sh.
func isolate(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		if cmd.Process == nil {
			return nil
		}
		return syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
	}
}
