//go:build !js && !wasm

// Package tty provides utilities for TTY (terminal) detection.
// This package uses golang.org/x/term for TTY detection and terminal size
// queries.
package tty

import (
	"os"

	"golang.org/x/term"
)

// IsStdoutTerminal returns true if stdout is connected to a terminal.
func IsStdoutTerminal() bool {
	return IsTerminal(os.Stdout)
}

// IsStderrTerminal returns true if stderr is connected to a terminal.
func IsStderrTerminal() bool {
	return IsTerminal(os.Stderr)
}

// IsTerminal returns true if f is connected to a terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Columns returns the width of the terminal f is connected to.
// The second result is false when f is not a terminal or its size
// cannot be queried.
func Columns(f *os.File) (int, bool) {
	if f == nil {
		return 0, false
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return 0, false
	}
	return width, true
}
