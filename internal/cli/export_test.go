// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>

package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// RenderErrorANSI renders err as if w were a 16-color terminal
func RenderErrorANSI(w io.Writer, err error) {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(termenv.ANSI)
	renderError(r, w, err)
}
