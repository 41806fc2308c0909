// Package console formats user-facing CLI messages and prompts.
//
// Messages are styled with the lipgloss palette from pkg/styles when stderr
// is a terminal and left as plain text otherwise, so piped output stays
// free of escape sequences.
package console

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/github/gh-progress/pkg/logger"
	"github.com/github/gh-progress/pkg/styles"
	"github.com/github/gh-progress/pkg/tty"
)

var consoleLog = logger.New("console:console")

// isTTY checks if stderr, where CLI messages are written, is a terminal
func isTTY() bool {
	return tty.IsStderrTerminal()
}

// applyStyle conditionally applies styling based on TTY status
func applyStyle(style lipgloss.Style, text string) string {
	if isTTY() {
		return style.Render(text)
	}
	return text
}

// FormatSuccessMessage formats a success message with styling
func FormatSuccessMessage(message string) string {
	return applyStyle(styles.Success, "✓ ") + message
}

// FormatInfoMessage formats an informational message
func FormatInfoMessage(message string) string {
	return applyStyle(styles.Info, "ℹ ") + message
}

// FormatWarningMessage formats a warning message
func FormatWarningMessage(message string) string {
	return applyStyle(styles.Warning, "⚠ ") + message
}

// FormatErrorMessage formats a simple error message (for stderr output)
func FormatErrorMessage(message string) string {
	return applyStyle(styles.Error, "✗ ") + message
}

// FormatProgressMessage formats a progress/activity message
func FormatProgressMessage(message string) string {
	return applyStyle(styles.Progress, "🔨 ") + message
}

// FormatMutedText styles secondary details such as timings
func FormatMutedText(text string) string {
	return applyStyle(styles.Muted, text)
}

// IsAccessibleMode reports whether animations and rich prompts should be
// replaced by plain, screen-reader friendly output. It is enabled by the
// ACCESSIBLE environment variable or a dumb terminal.
func IsAccessibleMode() bool {
	accessible := os.Getenv("ACCESSIBLE") != "" || os.Getenv("TERM") == "dumb"
	if accessible {
		consoleLog.Print("Accessible mode enabled")
	}
	return accessible
}
