package progress

import (
	"maps"
	"math"
	"time"
)

// Tokens maps caller-defined template token names, without the leading
// colon, to the values substituted for them. Values are formatted with
// fmt.Sprint.
//
// A nil Tokens leaves the bar's current tokens in place. Any non-nil value,
// including an empty map, replaces them.
type Tokens map[string]any

// Bar is a terminal progress bar. It is not safe for concurrent use.
type Bar struct {
	stream              Stream
	format              []string
	total               int
	width               int
	chars               glyphs
	throttle            time.Duration
	clearOnTerminate    bool
	callbackOnTerminate bool
	callback            func(*Bar)
	now                 func() time.Time

	current    int
	start      time.Time
	lastRender time.Time
	rendered   bool
	tokens     Tokens
	metrics    Metrics
	completed  bool

	// lastDraw and cleared are only changed together by the output methods.
	lastDraw []string
	cleared  bool
}

// Tick advances the bar by one. See Add.
func (b *Bar) Tick(tokens Tokens) {
	b.Add(1, tokens)
}

// Add advances the bar by amount, which may be zero, and renders it. When the
// count reaches the total the bar renders a final frame, terminates and runs
// its callback. Calls after completion are ignored.
func (b *Bar) Add(amount int, tokens Tokens) {
	if b.completed {
		barLog.Printf("Ignoring tick after completion: amount=%d", amount)
		return
	}
	if tokens != nil {
		b.tokens = tokens
	}

	if b.current == 0 && b.start.IsZero() {
		b.start = b.now()
	}

	b.current += amount
	b.Render(nil, false)

	if b.current >= b.total {
		barLog.Printf("Bar complete: current=%d, total=%d", b.current, b.total)
		b.Render(nil, true)
		b.completed = true
		if !b.callbackOnTerminate {
			b.callback(b)
		}
		b.Terminate()
	}
}

// Update moves the bar to ratio of its total. The target count is rounded
// down, so Update(0.5) on a total of 3 moves the count to 1. A NaN ratio
// leaves the count unchanged and infinite ratios are clamped to [0, 1].
func (b *Bar) Update(ratio float64, tokens Tokens) {
	if math.IsNaN(ratio) {
		barLog.Print("Ignoring NaN update ratio")
		b.Add(0, tokens)
		return
	}
	if math.IsInf(ratio, 0) {
		ratio = min(max(ratio, 0), 1)
	}
	goal := int(math.Floor(ratio * float64(b.total)))
	b.Add(goal-b.current, tokens)
}

// Current returns the current tick count.
func (b *Bar) Current() int { return b.current }

// Total returns the tick count at which the bar completes.
func (b *Bar) Total() int { return b.total }

// Completed reports whether the bar has reached its total.
func (b *Bar) Completed() bool { return b.completed }

// Snapshot is the state of a bar as of its last render.
type Snapshot struct {
	Metrics Metrics
	Tokens  Tokens
}

// Snapshot returns the metrics computed by the last render together with a
// copy of the caller tokens.
func (b *Bar) Snapshot() Snapshot {
	return Snapshot{
		Metrics: b.metrics,
		Tokens:  maps.Clone(b.tokens),
	}
}

// Values returns every token name mapped to its formatted value. Built-in
// tokens take precedence over caller tokens with the same name.
func (s Snapshot) Values() map[string]string {
	values := make(map[string]string, len(s.Tokens)+7)
	for name, value := range s.Tokens {
		values[name] = formatToken(value)
	}
	for _, t := range s.Metrics.tokens() {
		values[t.name] = t.value
	}
	return values
}
