// Package ui holds terminal helpers shared by the interactive commands.
package ui

import (
	"io"
	"os"

	"golang.org/x/term"
)

// DefaultWidth is used when the output is not a terminal.
const DefaultWidth = 80

type fileDescriptor interface {
	Fd() uintptr
}

// IsTerminal reports whether stream is attached to a terminal.
func IsTerminal(stream any) bool {
	file, ok := stream.(fileDescriptor)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}

// ColorEnabled reports whether styled output should be written to w.
// NO_COLOR and TERM=dumb turn styling off.
func ColorEnabled(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return IsTerminal(w)
}

// Width returns the terminal width of w, or DefaultWidth.
func Width(w io.Writer) int {
	file, ok := w.(fileDescriptor)
	if !ok {
		return DefaultWidth
	}
	width, _, err := term.GetSize(int(file.Fd()))
	if err != nil || width <= 0 {
		return DefaultWidth
	}
	return width
}
