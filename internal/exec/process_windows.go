// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Windows-specific interrupt forwarding

//go:build windows

package exec

import (
	"os/exec"
)

// interruptProcess stops the child.
// Windows has no way to deliver Ctrl+C to a single console process, so it is killed.
func interruptProcess(cmd *exec.Cmd) error {
	if cmd.Process == nil {
		return nil
	}
	return cmd.Process.Kill()
}
