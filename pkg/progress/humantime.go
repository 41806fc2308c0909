package progress

import (
	"math"
	"strconv"
	"strings"
	"time"
)

var timeUnits = []struct {
	name    string
	seconds float64
	modulo  float64
}{
	{"day", 86400, 0},
	{"hour", 3600, 24},
	{"minute", 60, 60},
	{"second", 1, 60},
}

// HumanTime formats a duration in milliseconds for display, for example
// "999 ms" or "1 day 1 hour 1 minute 1 second". Negative durations are
// formatted by magnitude and non-finite ones as "0 ms". Units with a zero
// value are left out.
func HumanTime(ms float64) string {
	if math.IsNaN(ms) || math.IsInf(ms, 0) {
		return "0 ms"
	}
	ms = math.Abs(ms)
	if ms < 1000 {
		return strconv.Itoa(int(ms)) + " ms"
	}

	secs := math.Floor(ms / 1000)
	parts := make([]string, 0, len(timeUnits))
	for _, u := range timeUnits {
		v := math.Floor(secs / u.seconds)
		if u.modulo > 0 {
			v = math.Mod(v, u.modulo)
		}
		if v == 0 {
			continue
		}
		label := u.name
		if v != 1 {
			label += "s"
		}
		parts = append(parts, strconv.FormatFloat(v, 'f', 0, 64)+" "+label)
	}
	return strings.Join(parts, " ")
}

// FormatDuration formats d with HumanTime.
func FormatDuration(d time.Duration) string {
	return HumanTime(float64(d) / float64(time.Millisecond))
}
