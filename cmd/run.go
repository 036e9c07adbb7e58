/*
Copyright © 2026 ソニーレベル <C7kali3@gmail.com>

*/
package cmd

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/sony-level/clrun/internal/apperr"
	"github.com/sony-level/clrun/internal/cli"
	"github.com/sony-level/clrun/internal/config"
	"github.com/sony-level/clrun/internal/exec"
	"github.com/sony-level/clrun/internal/logging"
	"github.com/sony-level/clrun/internal/workspace"
)

// executeRun parses args, then compiles and runs the requested file.
// Every error is rendered once to streams.Err; the return value is the exit status.
func executeRun(ctx context.Context, args []string, streams Streams) int {
	req, err := cli.Parse(args)
	if err != nil {
		cli.RenderError(streams.Err, err)
		return 1
	}

	switch req.Mode {
	case cli.ModeHelp:
		fmt.Fprintln(streams.Out, cli.HelpMessage)
		return req.ExitCode
	case cli.ModeVersion:
		fmt.Fprintln(streams.Out, cli.VersionString())
		return 0
	}

	// Home lookup errors surface from workspace.Resolve unless build_dir is set
	home, homeErr := os.UserHomeDir()

	cfg, err := config.Load(home)
	if err != nil {
		cli.RenderError(streams.Err, apperr.Environment("Invalid configuration", err))
		return 1
	}

	log := logging.New(streams.Err, cfg.Verbose)
	defer func() { _ = log.Sync() }()

	if cfg.Source != "" {
		log.Debug("loaded config", zap.String("path", cfg.Source))
	}

	ws, err := workspace.Resolve(&workspace.WorkspaceConfig{
		Dir:     cfg.BuildDir,
		HomeDir: func() (string, error) { return home, homeErr },
	})
	if err != nil {
		cli.RenderError(streams.Err, err)
		return 1
	}
	log.Debug("workspace ready", zap.String("dir", ws.Dir), zap.Bool("created", ws.Created))

	if n, err := ws.SweepStale(cfg.StaleAfter); err != nil {
		log.Warn("failed to sweep stale binaries", zap.Error(err))
	} else if n > 0 {
		log.Debug("swept stale binaries", zap.Int("count", n))
	}

	runID, err := workspace.GenerateRunID()
	if err != nil {
		cli.RenderError(streams.Err, apperr.Environment("Failed to name binary file", err))
		return 1
	}

	compiler := cfg.CompilerFor(req.Invocation.Language)
	job := &exec.Job{
		Invocation: req.Invocation,
		Compiler:   compiler,
		BinaryPath: ws.BinaryPath(runID),
	}

	runner := exec.NewRunner(&exec.RunnerConfig{
		Stdin:   streams.In,
		Stdout:  streams.Out,
		Stderr:  streams.Err,
		Timeout: cfg.RunTimeout,
		Logger:  log,
	})

	// Keep the wrapper alive on the first Ctrl-C so the binary is still removed
	ctx, stop := notifyInterrupt(ctx)
	defer stop()

	log.Debug("starting run",
		zap.String("language", req.Invocation.Language.DisplayName()),
		zap.String("source", req.Invocation.SourcePath),
		zap.String("run_id", runID))

	result, err := runner.Execute(ctx, job)
	if err != nil {
		cli.RenderError(streams.Err, err)
		return 1
	}

	if result.TimedOut {
		cli.RenderError(streams.Err, apperr.Execution(fmt.Sprintf("Binary timed out after %v", cfg.RunTimeout), nil))
	}

	return result.ExitStatus()
}
