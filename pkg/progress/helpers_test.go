//go:build !integration

package progress

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// fakeTerminal is a Stream that records every call and keeps a minimal model
// of the screen so tests can assert on what a user would see.
type fakeTerminal struct {
	tty     bool
	columns int
	reserve bool

	ops    []string
	writes int

	screen []string
	row    int
	col    int
}

func newFakeTerminal(columns int) *fakeTerminal {
	return &fakeTerminal{tty: true, columns: columns, screen: []string{""}}
}

func (f *fakeTerminal) Write(p []byte) (int, error) {
	f.ops = append(f.ops, fmt.Sprintf("write %q", string(p)))
	f.writes++
	for _, r := range string(p) {
		switch r {
		case '\r':
			f.col = 0
		case '\n':
			f.row++
			f.col = 0
			for len(f.screen) <= f.row {
				f.screen = append(f.screen, "")
			}
		default:
			line := []rune(f.screen[f.row])
			for len(line) < f.col {
				line = append(line, ' ')
			}
			if f.col < len(line) {
				line[f.col] = r
			} else {
				line = append(line, r)
			}
			f.screen[f.row] = string(line)
			f.col++
		}
	}
	return len(p), nil
}

func (f *fakeTerminal) IsTTY() bool              { return f.tty }
func (f *fakeTerminal) Columns() int             { return f.columns }
func (f *fakeTerminal) ReservesLastColumn() bool { return f.reserve }

func (f *fakeTerminal) MoveCursorRows(dy int) {
	f.ops = append(f.ops, fmt.Sprintf("move %d", dy))
	f.row = max(0, f.row+dy)
}

func (f *fakeTerminal) ClearScreenDown() {
	f.ops = append(f.ops, "clear-down")
	f.truncateLine()
	f.screen = f.screen[:f.row+1]
}

func (f *fakeTerminal) CursorToColumn(x int) {
	f.ops = append(f.ops, fmt.Sprintf("column %d", x))
	f.col = x
}

func (f *fakeTerminal) ClearLineRight() {
	f.ops = append(f.ops, "clear-right")
	f.truncateLine()
}

func (f *fakeTerminal) truncateLine() {
	line := []rune(f.screen[f.row])
	if f.col < len(line) {
		f.screen[f.row] = string(line[:f.col])
	}
}

// visible returns the screen with trailing empty rows removed.
func (f *fakeTerminal) visible() []string {
	end := len(f.screen)
	for end > 0 && f.screen[end-1] == "" {
		end--
	}
	return f.screen[:end]
}

func (f *fakeTerminal) transcript() string {
	return strings.Join(f.ops, "\n") + "\n"
}

func (f *fakeTerminal) reset() {
	f.ops = nil
	f.writes = 0
}

type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// newTestBar builds a bar on a fake terminal and clock with throttling off
// unless opts sets it.
func newTestBar(t *testing.T, format string, opts Options) (*Bar, *fakeTerminal, *fakeClock) {
	t.Helper()
	term := newFakeTerminal(80)
	clock := newFakeClock()
	if opts.Stream == nil {
		opts.Stream = term
	}
	if opts.RenderThrottle == nil {
		opts.RenderThrottle = Throttle(0)
	}
	opts.Now = clock.Now

	bar, err := NewWithOptions(format, opts)
	require.NoError(t, err, "should create bar")
	return bar, term, clock
}
