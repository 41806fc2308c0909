// Package logger provides namespaced debug logging controlled by the DEBUG
// environment variable.
//
// Loggers are created once per file with a "package:file" namespace:
//
//	var barLog = logger.New("progress:bar")
//
//	barLog.Printf("rendering %d lines", n)
//
// Nothing is written unless DEBUG matches the namespace. DEBUG holds a
// comma-separated list of patterns where "*" matches any run of characters
// and a leading "-" excludes matching namespaces:
//
//	DEBUG=*                      # everything
//	DEBUG=progress:*             # every logger in the progress package
//	DEBUG=*,-progress:render     # everything except the render logger
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// Logger writes debug lines for a single namespace.
type Logger struct {
	namespace string
	enabled   bool

	mu   sync.Mutex
	out  io.Writer
	last time.Time
}

var (
	debugEnv     = os.Getenv("DEBUG")
	debugEnvOnce sync.Once
	patterns     []string
)

// New creates a logger for namespace. Whether it is enabled is decided once,
// from the DEBUG environment variable at process start.
func New(namespace string) *Logger {
	return &Logger{
		namespace: namespace,
		enabled:   computeEnabled(namespace),
		out:       os.Stderr,
	}
}

// Enabled reports whether the logger writes anything. Callers can use it to
// skip building expensive log arguments.
func (l *Logger) Enabled() bool {
	return l.enabled
}

// Printf writes a formatted debug line.
func (l *Logger) Printf(format string, args ...any) {
	if !l.enabled {
		return
	}
	l.write(fmt.Sprintf(format, args...))
}

// Print writes its arguments as a debug line.
func (l *Logger) Print(args ...any) {
	if !l.enabled {
		return
	}
	l.write(fmt.Sprint(args...))
}

func (l *Logger) write(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	var delta time.Duration
	if !l.last.IsZero() {
		delta = now.Sub(l.last)
	}
	l.last = now

	fmt.Fprintf(l.out, "%s %s +%s\n", l.namespace, msg, delta.Round(time.Millisecond))
}

func computeEnabled(namespace string) bool {
	debugEnvOnce.Do(func() {
		patterns = parsePatterns(debugEnv)
	})
	return matchPatterns(namespace, patterns)
}

func parsePatterns(env string) []string {
	var result []string
	for _, p := range strings.Split(env, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}

// matchPatterns applies include patterns first, then exclusions.
func matchPatterns(namespace string, pats []string) bool {
	enabled := false
	for _, p := range pats {
		if strings.HasPrefix(p, "-") {
			continue
		}
		if matchWildcard(p, namespace) {
			enabled = true
			break
		}
	}
	if !enabled {
		return false
	}
	for _, p := range pats {
		if rest, ok := strings.CutPrefix(p, "-"); ok && matchWildcard(rest, namespace) {
			return false
		}
	}
	return true
}

// matchWildcard matches s against pattern where "*" matches any run of
// characters, including none.
func matchWildcard(pattern, s string) bool {
	parts := strings.Split(pattern, "*")
	if len(parts) == 1 {
		return pattern == s
	}
	if !strings.HasPrefix(s, parts[0]) {
		return false
	}
	s = s[len(parts[0]):]
	for _, mid := range parts[1 : len(parts)-1] {
		idx := strings.Index(s, mid)
		if idx < 0 {
			return false
		}
		s = s[idx+len(mid):]
	}
	return strings.HasSuffix(s, parts[len(parts)-1])
}
