//go:build !integration

package progress

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderSuppressedWithoutTTY(t *testing.T) {
	term := newFakeTerminal(80)
	term.tty = false
	bar, _, _ := newTestBar(t, "[:bar] :percent", Options{Total: 2, Stream: term})

	bar.Tick(nil)
	bar.Render(Tokens{"a": 1}, true)
	bar.Tick(nil)

	assert.Empty(t, term.ops, "nothing should be written to a non-interactive stream")
	assert.True(t, bar.Completed())
	assert.Equal(t, Tokens{"a": 1}, bar.Snapshot().Tokens, "tokens are still replaced")
}

func TestRenderThrottle(t *testing.T) {
	bar, term, clock := newTestBar(t, ":current", Options{
		Total:          10,
		RenderThrottle: Throttle(100 * time.Millisecond),
	})

	bar.Tick(nil)
	assert.Equal(t, 1, term.writes, "first render always proceeds")

	clock.Advance(50 * time.Millisecond)
	bar.Tick(nil)
	assert.Equal(t, 1, term.writes, "render inside the throttle interval should be skipped")
	assert.Equal(t, 1, bar.Snapshot().Metrics.Current.Raw, "metrics stay stale while throttled")

	clock.Advance(60 * time.Millisecond)
	bar.Tick(nil)
	assert.Equal(t, 2, term.writes)
	assert.Equal(t, []string{"3"}, term.visible())

	bar.Render(nil, true)
	assert.Equal(t, 3, term.writes, "forced render ignores the throttle")
}

func TestRenderSkipsIdenticalFrames(t *testing.T) {
	bar, term, _ := newTestBar(t, "[:bar]", Options{Total: 100, Width: 10})

	bar.Tick(nil)
	term.reset()
	bar.Tick(nil)
	bar.Render(nil, false)

	assert.Empty(t, term.ops, "unchanged frame should not be redrawn")
}

func TestRenderForceRedrawsIdenticalFrames(t *testing.T) {
	bar, term, _ := newTestBar(t, ":total", Options{Total: 100})

	bar.Render(nil, false)
	term.reset()
	bar.Render(nil, true)

	assert.Equal(t, []string{"clear-down", "column 0", "clear-right", `write "100"`}, term.ops)
}

func TestRenderRedrawsWhenLineCountChanges(t *testing.T) {
	bar, term, _ := newTestBar(t, "a", Options{Total: 10})

	bar.Render(nil, false)
	bar.lastDraw = []string{"a", "b"}
	bar.cleared = true
	term.reset()

	bar.Render(nil, false)
	assert.Equal(t, []string{`write "a"`}, term.ops)
}

func TestRenderMetrics(t *testing.T) {
	bar, term, clock := newTestBar(t, ":current/:total :percent :elapsed :eta :rate", Options{Total: 10})

	bar.Tick(nil)
	assert.Equal(t, []string{"1/10 10% 0 ms 0 ms 0.00"}, term.visible(), "zero elapsed time degrades to zero rate")

	clock.Advance(2 * time.Second)
	bar.Add(4, nil)
	assert.Equal(t, []string{"5/10 50% 2 seconds 2 seconds 2.50"}, term.visible())

	m := bar.Snapshot().Metrics
	assert.Equal(t, 5, m.Current.Raw)
	assert.Equal(t, 10, m.Total.Raw)
	assert.Equal(t, 50, m.Percent.Raw)
	assert.InDelta(t, 2000, m.Elapsed.Raw, 0.001)
	assert.InDelta(t, 2000, m.ETA.Raw, 0.001)
	assert.InDelta(t, 2.5, m.Rate.Raw, 0.001)
}

func TestRenderBeforeFirstTick(t *testing.T) {
	bar, term, _ := newTestBar(t, ":percent :elapsed :eta :rate", Options{Total: 10})

	bar.Render(nil, true)

	assert.Equal(t, []string{"0% 0 ms 0 ms 0.00"}, term.visible())
	m := bar.Snapshot().Metrics
	assert.True(t, math.IsNaN(m.Elapsed.Raw), "elapsed is unknown before the first tick")
	assert.True(t, math.IsNaN(m.ETA.Raw))
}

func TestRenderETAAtZeroCount(t *testing.T) {
	bar, _, clock := newTestBar(t, ":eta", Options{Total: 10})

	bar.Add(0, nil)
	clock.Advance(time.Second)
	bar.Render(nil, true)

	m := bar.Snapshot().Metrics
	assert.True(t, math.IsInf(m.ETA.Raw, 1), "division by a zero count is not finite")
	assert.Equal(t, "0 ms", m.ETA.Formatted)
}

func TestRenderETAComplete(t *testing.T) {
	bar, _, clock := newTestBar(t, ":eta", Options{Total: 4})

	bar.Tick(nil)
	clock.Advance(time.Second)
	bar.Add(3, nil)

	assert.Zero(t, bar.Snapshot().Metrics.ETA.Raw, "eta is zero at 100%")
}

func TestRenderLineSubstitution(t *testing.T) {
	tests := []struct {
		name     string
		format   string
		tokens   Tokens
		expected string
	}{
		{
			name:     "all built-in tokens",
			format:   ":current of :total (:percent)",
			expected: "3 of 10 (30%)",
		},
		{
			name:     "first occurrence only",
			format:   ":current :current",
			expected: "3 :current",
		},
		{
			name:     "caller tokens",
			format:   ":file -> :dest",
			tokens:   Tokens{"file": "a.txt", "dest": 42},
			expected: "a.txt -> 42",
		},
		{
			name:     "built-in wins over caller token",
			format:   ":current",
			tokens:   Tokens{"current": "x"},
			expected: "3",
		},
		{
			name:     "built-in prefix wins over longer caller token",
			format:   ":currentFile",
			tokens:   Tokens{"currentFile": "x"},
			expected: "3File",
		},
		{
			name:     "longest caller token first",
			format:   ":file :f",
			tokens:   Tokens{"f": "short", "file": "long.txt"},
			expected: "long.txt short",
		},
		{
			name:     "values are not rescanned",
			format:   ":msg",
			tokens:   Tokens{"msg": ":total"},
			expected: ":total",
		},
		{
			name:     "unknown tokens stay literal",
			format:   "at 10:30 :nope",
			expected: "at 10:30 :nope",
		},
		{
			name:     "trailing colon",
			format:   "done:",
			expected: "done:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar, term, _ := newTestBar(t, tt.format, Options{Total: 10})
			bar.Add(3, tt.tokens)
			require.Len(t, term.visible(), 1)
			assert.Equal(t, tt.expected, term.visible()[0])
		})
	}
}

func TestRenderMultiLine(t *testing.T) {
	bar, term, _ := newTestBar(t, "downloading :file\n[:bar] :percent", Options{Total: 4, Width: 8})

	bar.Tick(Tokens{"file": "a.bin"})
	assert.Equal(t, []string{"downloading a.bin", "[==------] 25%"}, term.visible())

	bar.Tick(Tokens{"file": "b.bin"})
	assert.Equal(t, []string{"downloading b.bin", "[====----] 50%"}, term.visible(), "frame should be replaced in place")
}

func TestRenderBarFitsTerminal(t *testing.T) {
	bar, term, _ := newTestBar(t, "[:bar] :percent", Options{Total: 100})
	term.columns = 20

	bar.Render(nil, true)
	assert.Equal(t, []string{"[---------------] 0%"}, term.visible(), "bar should fill the remaining 15 columns")

	term.reserve = true
	bar.Render(nil, true)
	assert.Equal(t, []string{"[--------------] 0%"}, term.visible(), "one column is kept free when the stream reserves it")

	term.columns = 4
	bar.Render(nil, true)
	assert.Equal(t, []string{"[] 0%"}, term.visible(), "no room leaves an empty bar")
}

func TestRenderBarIgnoresEscapeSequences(t *testing.T) {
	bar, term, _ := newTestBar(t, "\x1b[32m:percent\x1b[0m :bar", Options{Total: 100})
	term.columns = 10

	bar.Render(nil, true)

	assert.Equal(t, "-------", bar.Snapshot().Metrics.Bar.Raw, "styled percent takes 3 columns")
	assert.Equal(t, []string{"\x1b[32m0%\x1b[0m -------"}, term.visible())
}

func TestRenderBarSizedBeforeCallerTokens(t *testing.T) {
	tests := []struct {
		name     string
		format   string
		tokens   Tokens
		expected string
	}{
		{
			name:     "short value",
			format:   ":bar :file",
			tokens:   Tokens{"file": "a"},
			expected: "-------------- a",
		},
		{
			name:     "long value",
			format:   ":bar :file",
			tokens:   Tokens{"file": "archive.tar.gz"},
			expected: "-------------- archive.tar.gz",
		},
		{
			name:     "styled value",
			format:   ":file :bar",
			tokens:   Tokens{"file": "\x1b[1mx\x1b[0m"},
			expected: "\x1b[1mx\x1b[0m --------------",
		},
		{
			name:     "built-ins are measured by value",
			format:   ":bar :percent :file",
			tokens:   Tokens{"file": "a"},
			expected: "----------- 0% a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar, term, _ := newTestBar(t, tt.format, Options{Total: 100})
			term.columns = 20

			bar.Render(tt.tokens, true)
			assert.Equal(t, []string{tt.expected}, term.visible())
		})
	}
}
