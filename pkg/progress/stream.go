package progress

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/github/gh-progress/pkg/constants"
	"github.com/github/gh-progress/pkg/tty"
)

// Stream is the output a bar draws on. Cursor methods mirror the ANSI
// terminal controls a bar needs and are only called when IsTTY is true.
type Stream interface {
	io.Writer

	// IsTTY reports whether the stream is an interactive terminal.
	IsTTY() bool

	// Columns returns the current terminal width. It is queried per frame.
	Columns() int

	// MoveCursorRows moves the cursor dy rows down, or up when negative.
	MoveCursorRows(dy int)

	// ClearScreenDown erases from the cursor to the end of the screen.
	ClearScreenDown()

	// CursorToColumn moves the cursor to column x, counted from 0.
	CursorToColumn(x int)

	// ClearLineRight erases from the cursor to the end of the line.
	ClearLineRight()
}

// ANSI control sequences
const (
	ansiCursorUp        = "\x1b[%dA"
	ansiCursorDown      = "\x1b[%dB"
	ansiCursorColumn    = "\x1b[%dG"
	ansiClearScreenDown = "\x1b[0J"
	ansiClearLineRight  = "\x1b[0K"
)

// TerminalStream is a Stream writing ANSI control sequences to a file,
// usually os.Stderr or os.Stdout.
type TerminalStream struct {
	file              *os.File
	tty               bool
	reserveLastColumn bool
}

// NewTerminalStream wraps f. Terminal detection happens once, here.
func NewTerminalStream(f *os.File) *TerminalStream {
	return &TerminalStream{
		file:              f,
		tty:               tty.IsTerminal(f),
		reserveLastColumn: runtime.GOOS == "windows",
	}
}

func (s *TerminalStream) Write(p []byte) (int, error) {
	return s.file.Write(p)
}

func (s *TerminalStream) IsTTY() bool { return s.tty }

// Columns returns the terminal width, or 80 when it cannot be queried.
func (s *TerminalStream) Columns() int {
	if cols, ok := tty.Columns(s.file); ok && constants.Columns(cols).IsValid() {
		return cols
	}
	return int(constants.DefaultTerminalColumns)
}

func (s *TerminalStream) MoveCursorRows(dy int) {
	switch {
	case dy < 0:
		fmt.Fprintf(s.file, ansiCursorUp, -dy)
	case dy > 0:
		fmt.Fprintf(s.file, ansiCursorDown, dy)
	}
}

func (s *TerminalStream) ClearScreenDown() {
	_, _ = io.WriteString(s.file, ansiClearScreenDown)
}

func (s *TerminalStream) CursorToColumn(x int) {
	fmt.Fprintf(s.file, ansiCursorColumn, x+1)
}

func (s *TerminalStream) ClearLineRight() {
	_, _ = io.WriteString(s.file, ansiClearLineRight)
}

// ReservesLastColumn reports whether bars leave the last terminal column
// empty. This is the case on Windows, whose console wraps as soon as the
// last column is written.
func (s *TerminalStream) ReservesLastColumn() bool { return s.reserveLastColumn }
