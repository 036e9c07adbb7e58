// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Execution types

package exec

import (
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/sony-level/clrun/internal/lang"
	"github.com/sony-level/clrun/internal/prereq"
)

// DefaultGracePeriod is how long an interrupted binary may take to exit before it is killed
const DefaultGracePeriod = 2 * time.Second

// RunnerConfig configures the compiler invoker and binary runner
type RunnerConfig struct {
	Stdin       io.Reader
	Stdout      io.Writer
	Stderr      io.Writer
	Timeout     time.Duration   // Limit for the binary's run time; zero means none
	GracePeriod time.Duration   // Delay between interrupt and kill
	Checker     *prereq.Checker // Supplies install hints when a compiler is missing
	Logger      *zap.Logger
}

// Job describes one compile-and-run cycle
type Job struct {
	Invocation lang.Invocation
	Compiler   string // Compiler frontend to invoke
	BinaryPath string // Where the compiler writes the binary
}

// RunResult contains the outcome of running the compiled binary
type RunResult struct {
	Success   bool
	ExitCode  int // -1 when the binary was terminated by a signal
	Duration  time.Duration
	TimedOut  bool
	Cancelled bool // the wrapper was interrupted while the binary ran
}

// ExitStatus maps the binary's outcome to the wrapper's exit code
func (r *RunResult) ExitStatus() int {
	if r.Success {
		return 0
	}
	return 1
}
