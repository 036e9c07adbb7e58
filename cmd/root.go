/*
Copyright © 2026 ソニーレベル <C7kali3@gmail.com>

*/
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/sony-level/clrun/internal/cli"
)

// exitError carries the process exit status out of RunE
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

// Streams are the standard streams a command runs with
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// NewRootCmd builds the clrun command.
// Cobra's flag parsing is disabled: the first positional token decides
// between options, a language, or an error, and later tokens are ignored.
func NewRootCmd(streams Streams) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "clrun <language> <filename>",
		Short: "Compile and run a single C or C++ file",
		Long: `clrun compiles a single C or C++ source file with clang or clang++,
runs the resulting binary, and deletes it afterward.

The binary is staged in ~/.clrun/build. clrun exits 0 when the program
succeeds and 1 when compilation or the program fails.

Examples:
  clrun c hello.c
  clrun cpp main.cpp
  clrun c++ main.cc`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, args []string) error {
			code := executeRun(cmd.Context(), args, streams)
			if code != 0 {
				return &exitError{code: code}
			}
			return nil
		},
	}

	rootCmd.SetIn(streams.In)
	rootCmd.SetOut(streams.Out)
	rootCmd.SetErr(streams.Err)
	return rootCmd
}

// ExecuteArgs runs clrun with args and returns the process exit status
func ExecuteArgs(ctx context.Context, args []string, streams Streams) int {
	rootCmd := NewRootCmd(streams)
	// A nil slice makes cobra fall back to os.Args
	if args == nil {
		args = []string{}
	}
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	var exit *exitError
	if errors.As(err, &exit) {
		return exit.code
	}
	cli.RenderError(streams.Err, err)
	return 1
}

// Execute runs clrun against the process arguments and exits.
// This is called by main.main().
func Execute() {
	os.Exit(ExecuteArgs(context.Background(), os.Args[1:], Streams{
		In:  os.Stdin,
		Out: os.Stdout,
		Err: os.Stderr,
	}))
}
