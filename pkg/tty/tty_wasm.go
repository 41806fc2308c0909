//go:build js || wasm

package tty

import "os"

// IsStdoutTerminal returns false in Wasm environments (no TTY support).
func IsStdoutTerminal() bool {
	return false
}

// IsStderrTerminal returns false in Wasm environments (no TTY support).
func IsStderrTerminal() bool {
	return false
}

// IsTerminal returns false in Wasm environments (no TTY support).
func IsTerminal(*os.File) bool {
	return false
}

// Columns reports no terminal width in Wasm environments.
func Columns(*os.File) (int, bool) {
	return 0, false
}
