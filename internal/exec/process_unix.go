// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Unix-specific interrupt forwarding

//go:build !windows

package exec

import (
	"os"
	"os/exec"
)

// interruptProcess asks the child to stop.
// The child stays in the terminal's foreground process group so it can read
// stdin, which means a terminal Ctrl-C reaches it directly as well.
func interruptProcess(cmd *exec.Cmd) error {
	if cmd.Process == nil {
		return nil
	}
	return cmd.Process.Signal(os.Interrupt)
}
