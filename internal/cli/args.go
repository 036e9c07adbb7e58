// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Positional argument parsing: clrun [options] | clrun <language> <filename>

package cli

import (
	"strings"

	"github.com/sony-level/clrun/internal/apperr"
	"github.com/sony-level/clrun/internal/lang"
)

// Mode is what the invocation asks for
type Mode int

const (
	// ModeHelp prints the help text
	ModeHelp Mode = iota
	// ModeVersion prints the version string
	ModeVersion
	// ModeRun compiles and runs a source file
	ModeRun
)

// Request is the parsed form of the argument vector
type Request struct {
	Mode       Mode
	ExitCode   int // exit status after printing help or version
	Invocation lang.Invocation
}

// Parse interprets args, which exclude the program name.
// Only the first two tokens are inspected; anything after is ignored.
func Parse(args []string) (*Request, error) {
	if len(args) == 0 {
		return &Request{Mode: ModeHelp}, nil
	}

	first := args[0]
	if first == "" {
		return &Request{Mode: ModeHelp, ExitCode: 1}, nil
	}

	if strings.HasPrefix(first, "-") {
		return parseOption(first)
	}

	language, ok := lang.Parse(first)
	if !ok {
		return nil, apperr.Usagef("Unsupported language: %s", first)
	}

	if len(args) < 2 || args[1] == "" {
		return nil, apperr.Usagef("No input file")
	}

	return &Request{
		Mode: ModeRun,
		Invocation: lang.Invocation{
			Language:   language,
			SourcePath: args[1],
		},
	}, nil
}

func parseOption(opt string) (*Request, error) {
	switch opt {
	case "-h", "--help":
		return &Request{Mode: ModeHelp}, nil
	case "-v", "--version":
		return &Request{Mode: ModeVersion}, nil
	}
	return nil, apperr.Usagef("unexpected argument '%s' found", opt).WithArg(opt)
}
