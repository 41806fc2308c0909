package constants

import (
	"fmt"
	"time"
)

// CLIName is the binary name used in user-facing output.
const CLIName CommandName = "gh-progress"

// CommandName represents a CLI command or binary name.
type CommandName string

// String returns the string representation of the command name
func (c CommandName) String() string {
	return string(c)
}

// Glyph represents a single bar glyph character such as "=" or "█".
// This semantic type distinguishes glyphs from arbitrary strings in bar
// configuration.
type Glyph string

// String returns the string representation of the glyph
func (g Glyph) String() string {
	return string(g)
}

// IsValid returns true if the glyph is non-empty
func (g Glyph) IsValid() bool {
	return len(g) > 0
}

// Columns represents a terminal width in character cells.
type Columns int

// String returns the string representation of the column count
func (c Columns) String() string {
	return fmt.Sprintf("%d", c)
}

// IsValid returns true if the column count is positive
func (c Columns) IsValid() bool {
	return c > 0
}

// DefaultRenderThrottle is the minimum interval between two non-forced
// renders of a progress bar.
const DefaultRenderThrottle = 16 * time.Millisecond

// DefaultCompleteGlyph fills the finished part of a bar.
const DefaultCompleteGlyph Glyph = "="

// DefaultIncompleteGlyph fills the unfinished part of a bar.
const DefaultIncompleteGlyph Glyph = "-"

// DefaultTerminalColumns is used when a terminal does not report its width.
const DefaultTerminalColumns Columns = 80

// DefaultFormat is the template used by the CLI when none is given.
const DefaultFormat = "[:bar] :current/:total :percent eta :eta"
