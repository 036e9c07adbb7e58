// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Help, usage and version texts, and the error renderer

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sony-level/clrun/internal/apperr"
)

// Version of the CLI
const Version = "0.2.0"

const HelpMessage = `Clang/Clang++ Runner

Usage:
  clrun [options]
  clrun <language> <filename>

Languages:
  c         Compile and run as a C program
  cpp       Compile and run as a C++ program
  c++       Alias for cpp

Options:
  -h, --help       Show this help message
  -v, --version    Show version information`

const UsageMessage = `Usage:
  clrun [options]
  clrun <language> <filename>

For more information, try '--help'.`

// VersionString returns the string printed by --version
func VersionString() string {
	return "clrun " + Version
}

// RenderError writes err to w with a bold red "error:" prefix.
// An offending argument quoted in the message is shown in bold yellow.
// Colors are only emitted when w is a terminal.
func RenderError(w io.Writer, err error) {
	renderError(lipgloss.NewRenderer(w), w, err)
}

func renderError(r *lipgloss.Renderer, w io.Writer, err error) {
	prefix := r.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("1")).
		Render("error:")

	e, ok := apperr.As(err)
	if !ok {
		fmt.Fprintf(w, "%s %v\n", prefix, err)
		return
	}

	msg := e.Error()
	if e.Arg != "" {
		quoted := "'" + e.Arg + "'"
		highlighted := r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("3")).
			Render(quoted)
		msg = strings.Replace(msg, quoted, highlighted, 1)
	}

	fmt.Fprintf(w, "%s %s\n", prefix, msg)
	if e.Hint != "" {
		fmt.Fprintf(w, "\n%s\n", e.Hint)
	}
	if e.Kind == apperr.KindUsage {
		fmt.Fprintf(w, "\n%s\n", UsageMessage)
	}
}
