package progress

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/github/gh-progress/pkg/constants"
	"github.com/github/gh-progress/pkg/logger"
)

var barLog = logger.New("progress:bar")

var (
	// ErrMissingFormat is returned when a bar is created without a template.
	ErrMissingFormat = errors.New("progress bar format template is required")

	// ErrMissingTotal is returned when a bar is created without a positive total.
	ErrMissingTotal = errors.New("progress bar total must be a positive number")
)

// Options configures a Bar. Only Total is required.
type Options struct {
	// Current is the starting tick count.
	Current int

	// Total is the tick count at which the bar completes.
	Total int

	// Width is the maximum bar glyph width in columns.
	// Default: Total
	Width int

	// Stream receives the rendered frames.
	// Default: a TerminalStream on os.Stderr
	Stream Stream

	// Complete, Incomplete and Head are the bar glyph characters.
	// Head replaces the last complete character and defaults to Complete.
	Complete   string
	Incomplete string
	Head       string

	// RenderThrottle is the minimum interval between two non-forced renders.
	// Nil selects the 16ms default; a zero duration renders on every call.
	RenderThrottle *time.Duration

	// Clear removes the bar from the terminal when it terminates.
	Clear bool

	// Callback runs once when the bar completes.
	Callback func(*Bar)

	// CallbackOnTerminate runs Callback after the termination output
	// instead of before it.
	CallbackOnTerminate bool

	// Now is the wall-clock source.
	// Default: time.Now
	Now func() time.Time
}

// Throttle returns a RenderThrottle value for d.
func Throttle(d time.Duration) *time.Duration {
	return &d
}

// New creates a bar for format that completes after total ticks.
func New(format string, total int) (*Bar, error) {
	return NewWithOptions(format, Options{Total: total})
}

// NewWithOptions creates a bar for format configured by opts.
func NewWithOptions(format string, opts Options) (*Bar, error) {
	if format == "" {
		return nil, ErrMissingFormat
	}
	if opts.Total <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrMissingTotal, opts.Total)
	}

	b := &Bar{
		stream:              opts.Stream,
		format:              splitLines(format),
		total:               opts.Total,
		width:               opts.Width,
		current:             opts.Current,
		throttle:            constants.DefaultRenderThrottle,
		clearOnTerminate:    opts.Clear,
		callbackOnTerminate: opts.CallbackOnTerminate,
		callback:            opts.Callback,
		now:                 opts.Now,
		chars: glyphs{
			complete:   opts.Complete,
			incomplete: opts.Incomplete,
			head:       opts.Head,
		},
		cleared: true,
	}

	if b.stream == nil {
		b.stream = NewTerminalStream(os.Stderr)
	}
	if b.width <= 0 {
		b.width = b.total
	}
	if opts.RenderThrottle != nil {
		b.throttle = max(0, *opts.RenderThrottle)
	}
	if b.callback == nil {
		b.callback = func(*Bar) {}
	}
	if b.now == nil {
		b.now = time.Now
	}
	if !constants.Glyph(b.chars.complete).IsValid() {
		b.chars.complete = constants.DefaultCompleteGlyph.String()
	}
	if !constants.Glyph(b.chars.incomplete).IsValid() {
		b.chars.incomplete = constants.DefaultIncompleteGlyph.String()
	}
	if !constants.Glyph(b.chars.head).IsValid() {
		b.chars.head = b.chars.complete
	}

	barLog.Printf("Created bar: lines=%d, total=%d, width=%d, throttle=%s, tty=%t",
		len(b.format), b.total, b.width, b.throttle, b.stream.IsTTY())
	return b, nil
}

// splitLines splits a template into frame lines, accepting both "\n" and
// "\r\n" separators.
func splitLines(format string) []string {
	lines := strings.Split(format, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
