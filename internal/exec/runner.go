// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Compile, run and clean up a single source file

package exec

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/sony-level/clrun/internal/apperr"
	"github.com/sony-level/clrun/internal/prereq"
	"github.com/sony-level/clrun/internal/workspace"
)

// Runner invokes the compiler and the produced binary
type Runner struct {
	config *RunnerConfig
	log    *zap.Logger
}

// NewRunner creates a new runner.
// Nil streams default to the process's own stdin, stdout and stderr.
func NewRunner(config *RunnerConfig) *Runner {
	cfg := RunnerConfig{}
	if config != nil {
		cfg = *config
	}
	if cfg.Stdin == nil {
		cfg.Stdin = os.Stdin
	}
	if cfg.Stdout == nil {
		cfg.Stdout = os.Stdout
	}
	if cfg.Stderr == nil {
		cfg.Stderr = os.Stderr
	}
	if cfg.GracePeriod <= 0 {
		cfg.GracePeriod = DefaultGracePeriod
	}
	if cfg.Checker == nil {
		cfg.Checker = prereq.NewChecker()
	}

	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return &Runner{config: &cfg, log: log}
}

// Execute compiles the job's source, runs the binary and deletes it.
// The binary's own failure is reported through RunResult, not as an error.
func (r *Runner) Execute(ctx context.Context, job *Job) (*RunResult, error) {
	if err := r.Compile(ctx, job.Compiler, job.Invocation.SourcePath, job.BinaryPath); err != nil {
		return nil, err
	}

	result, runErr := r.RunBinary(ctx, job.BinaryPath)

	if err := workspace.RemoveBinary(job.BinaryPath); err != nil {
		if runErr != nil {
			r.log.Warn("cleanup after failed launch", zap.String("binary", job.BinaryPath), zap.Error(err))
			return nil, runErr
		}
		return nil, apperr.Execution("Failed to delete binary file", err)
	}
	r.log.Debug("removed binary", zap.String("binary", job.BinaryPath))

	if runErr != nil {
		return nil, runErr
	}
	return result, nil
}

// Compile runs `<compiler> <source> -o <output>`.
// Compiler diagnostics go to the configured stdout and stderr.
func (r *Runner) Compile(ctx context.Context, compiler, source, output string) error {
	if !utf8.ValidString(output) {
		return apperr.Environment("Path is not valid UTF-8", nil)
	}

	args := []string{source, "-o", output}
	r.log.Debug("compiling", zap.String("compiler", compiler), zap.Strings("args", args))
	if ce := r.log.Check(zap.DebugLevel, "compiler version"); ce != nil {
		ce.Write(zap.String("compiler", compiler), zap.String("version", r.config.Checker.Version(compiler)))
	}

	cmd := exec.CommandContext(ctx, compiler, args...)
	cmd.Stdout = r.config.Stdout
	cmd.Stderr = r.config.Stderr

	if err := cmd.Start(); err != nil {
		failure := apperr.Toolchain("Failed to run "+compiler, err)
		if check := r.config.Checker.CheckTool(compiler); !check.Found {
			failure = failure.WithHint(r.config.Checker.GetInstallGuide(compiler))
		}
		return failure
	}

	if err := cmd.Wait(); err != nil {
		// A failed compile may still leave a partial artifact
		_ = workspace.RemoveBinary(output)

		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			r.log.Debug("compiler exited", zap.Int("code", exitErr.ExitCode()))
			return apperr.Toolchain("Compile failed", nil)
		}
		return apperr.Toolchain("Compile failed", err)
	}

	return nil
}

// RunBinary executes path with no arguments and waits for it.
// Only a launch failure is returned as an error.
func (r *Runner) RunBinary(ctx context.Context, path string) (*RunResult, error) {
	runCtx := ctx
	if r.config.Timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, r.config.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(runCtx, path)
	cmd.Stdin = r.config.Stdin
	cmd.Stdout = r.config.Stdout
	cmd.Stderr = r.config.Stderr
	cmd.Cancel = func() error { return interruptProcess(cmd) }
	cmd.WaitDelay = r.config.GracePeriod

	r.log.Debug("running binary", zap.String("binary", path))
	start := time.Now()

	if err := cmd.Start(); err != nil {
		return nil, apperr.Execution("Failed to run binary file", err)
	}

	err := cmd.Wait()
	result := &RunResult{Duration: time.Since(start)}

	switch {
	case ctx.Err() != nil:
		result.Cancelled = true
	case errors.Is(runCtx.Err(), context.DeadlineExceeded):
		result.TimedOut = true
	}

	if err == nil && !result.Cancelled && !result.TimedOut {
		result.Success = true
		result.ExitCode = 0
	} else {
		result.ExitCode = -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
		}
	}

	r.log.Debug("binary exited",
		zap.Int("code", result.ExitCode),
		zap.Bool("timed_out", result.TimedOut),
		zap.Bool("cancelled", result.Cancelled),
		zap.Duration("duration", result.Duration))

	return result, nil
}
