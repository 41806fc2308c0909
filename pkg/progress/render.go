package progress

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/github/gh-progress/pkg/logger"
)

var renderLog = logger.New("progress:render")

// Metric is a derived value together with its template representation.
type Metric[T any] struct {
	Raw       T
	Formatted string
}

// Metrics is the derived state of a bar. It is rebuilt from scratch on every
// render that is not throttled.
type Metrics struct {
	Current Metric[int]
	Total   Metric[int]
	// Elapsed and ETA are in milliseconds.
	Elapsed Metric[float64]
	ETA     Metric[float64]
	Percent Metric[int]
	// Rate is in ticks per second.
	Rate Metric[float64]
	Bar  Metric[string]
}

type token struct {
	name  string
	value string
}

const barToken = "bar"

// tokens returns the built-in substitutions in precedence order.
func (m Metrics) tokens() []token {
	return []token{
		{barToken, m.Bar.Formatted},
		{"current", m.Current.Formatted},
		{"total", m.Total.Formatted},
		{"elapsed", m.Elapsed.Formatted},
		{"percent", m.Percent.Formatted},
		{"eta", m.ETA.Formatted},
		{"rate", m.Rate.Formatted},
	}
}

// Render draws the bar if the stream is a terminal, the throttle interval has
// passed and the frame differs from the one on screen. force skips the
// throttle and the comparison. Non-nil tokens replace the caller tokens even
// when nothing is drawn.
func (b *Bar) Render(tokens Tokens, force bool) {
	if tokens != nil {
		b.tokens = tokens
	}
	if !b.stream.IsTTY() {
		return
	}

	now := b.now()
	if !force && b.rendered && b.throttle > 0 && now.Sub(b.lastRender) < b.throttle {
		return
	}
	b.rendered = true
	b.lastRender = now

	ratio := b.ratio()
	b.metrics = b.computeMetrics(now, ratio)

	table := b.tokenTable()
	lines := make([]string, len(b.format))
	for i, line := range b.format {
		lines[i] = b.renderLine(line, table, ratio)
	}

	if force || !slices.Equal(lines, b.lastDraw) {
		if renderLog.Enabled() {
			renderLog.Printf("Drawing frame: lines=%d, current=%d, force=%t", len(lines), b.current, force)
		}
		b.draw(lines)
	}
}

func (b *Bar) ratio() float64 {
	return min(max(float64(b.current)/float64(b.total), 0), 1)
}

func (b *Bar) computeMetrics(now time.Time, ratio float64) Metrics {
	var m Metrics

	m.Current = Metric[int]{Raw: b.current, Formatted: strconv.Itoa(b.current)}
	m.Total = Metric[int]{Raw: b.total, Formatted: strconv.Itoa(b.total)}

	percent := int(math.Floor(ratio * 100))
	m.Percent = Metric[int]{Raw: percent, Formatted: strconv.Itoa(percent) + "%"}

	elapsed := math.NaN()
	if !b.start.IsZero() {
		elapsed = float64(now.Sub(b.start)) / float64(time.Millisecond)
	}
	m.Elapsed = Metric[float64]{Raw: elapsed, Formatted: HumanTime(elapsed)}

	// A zero count makes the estimate non-finite, which formats as "0 ms".
	var eta float64
	if percent != 100 {
		eta = elapsed * (float64(b.total)/float64(b.current) - 1)
	}
	m.ETA = Metric[float64]{Raw: eta, Formatted: HumanTime(eta)}

	rate := float64(b.current) / (elapsed / 1000)
	m.Rate = Metric[float64]{Raw: rate, Formatted: formatRate(rate)}

	return m
}

func formatRate(rate float64) string {
	if rate == 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
		return "0.00"
	}
	return strconv.FormatFloat(rate, 'f', 2, 64)
}

// tokenTable lists the built-in tokens followed by the caller tokens, longest
// name first so that ":file" is not consumed by a ":f" token.
func (b *Bar) tokenTable() []token {
	table := b.metrics.tokens()

	extra := make([]token, 0, len(b.tokens))
	for name, value := range b.tokens {
		if name == "" {
			continue
		}
		extra = append(extra, token{name: name, value: formatToken(value)})
	}
	slices.SortFunc(extra, func(a, c token) int {
		return cmp.Or(cmp.Compare(len(c.name), len(a.name)), cmp.Compare(a.name, c.name))
	})

	return append(table, extra...)
}

func formatToken(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprint(value)
}

// renderLine substitutes tokens in a single pass over line. Each token name
// is replaced at its first occurrence only; substituted values are never
// rescanned. The bar glyph is sized against the line with the built-in
// tokens filled in and caller tokens still in their ":name" form, then
// inserted.
func (b *Bar) renderLine(line string, table []token, ratio float64) string {
	var out, measured strings.Builder
	out.Grow(len(line))
	measured.Grow(len(line))

	used := make(map[string]bool, len(table))
	builtins := len(b.metrics.tokens())
	barAt := -1

	for i := 0; i < len(line); {
		if line[i] != ':' {
			next := strings.IndexByte(line[i:], ':')
			if next < 0 {
				next = len(line) - i
			}
			out.WriteString(line[i : i+next])
			measured.WriteString(line[i : i+next])
			i += next
			continue
		}

		idx, ok := matchToken(line[i+1:], table, used)
		if !ok {
			out.WriteByte(':')
			measured.WriteByte(':')
			i++
			continue
		}
		t := table[idx]
		used[t.name] = true
		switch {
		case t.name == barToken:
			barAt = out.Len()
		case idx < builtins:
			out.WriteString(t.value)
			measured.WriteString(t.value)
		default:
			out.WriteString(t.value)
			measured.WriteString(":" + t.name)
		}
		i += 1 + len(t.name)
	}

	rendered := out.String()
	if barAt < 0 {
		return rendered
	}

	bar := b.glyph(measured.String(), ratio)
	b.metrics.Bar = Metric[string]{Raw: bar, Formatted: bar}
	return rendered[:barAt] + bar + rendered[barAt:]
}

// matchToken returns the index in table of the first unused token that rest
// starts with.
func matchToken(rest string, table []token, used map[string]bool) (int, bool) {
	for i, t := range table {
		if !used[t.name] && strings.HasPrefix(rest, t.name) {
			return i, true
		}
	}
	return -1, false
}
