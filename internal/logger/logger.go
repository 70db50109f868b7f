// Package logger provides namespaced debug loggers that stay silent unless
// their namespace is enabled.
//
// Loggers are usually created once per file:
//
//	var log = logger.New("loop:repl")
//
// and enabled at startup with a comma-separated pattern list, for example
// "*", "loop:*" or "*,-loop:input". A leading "-" excludes matching
// namespaces and "*" matches any run of characters. Enabled loggers write
// lines of the form "<namespace> <message> +<delta>ms" to stderr.
package logger

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"sync"
	"time"
)

var (
	mu       sync.Mutex
	output   io.Writer = os.Stderr
	includes []*regexp.Regexp
	excludes []*regexp.Regexp
)

// Logger writes debug output for a single namespace
type Logger struct {
	namespace string
	last      time.Time
}

// New creates a logger for the given namespace
func New(namespace string) *Logger {
	return &Logger{namespace: namespace}
}

// SetPatterns replaces the set of enabled namespaces. An empty string
// disables every logger.
func SetPatterns(patterns string) {
	mu.Lock()
	defer mu.Unlock()

	includes, excludes = nil, nil
	for _, p := range strings.Split(patterns, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if rest, ok := strings.CutPrefix(p, "-"); ok {
			excludes = append(excludes, compile(rest))
			continue
		}
		includes = append(includes, compile(p))
	}
}

// SetOutput redirects all loggers. It returns the previous writer.
func SetOutput(w io.Writer) io.Writer {
	mu.Lock()
	defer mu.Unlock()

	prev := output
	output = w
	return prev
}

func compile(pattern string) *regexp.Regexp {
	expr := strings.ReplaceAll(regexp.QuoteMeta(pattern), `\*`, ".*")
	return regexp.MustCompile("^" + expr + "$")
}

// Enabled reports whether the logger's namespace matches the current patterns
func (l *Logger) Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return l.enabledLocked()
}

func (l *Logger) enabledLocked() bool {
	for _, re := range excludes {
		if re.MatchString(l.namespace) {
			return false
		}
	}
	for _, re := range includes {
		if re.MatchString(l.namespace) {
			return true
		}
	}
	return false
}

// Printf formats according to fmt.Printf and writes the line if enabled
func (l *Logger) Printf(format string, args ...any) {
	l.write(fmt.Sprintf(format, args...))
}

// Print concatenates its arguments like fmt.Sprint and writes the line if enabled
func (l *Logger) Print(args ...any) {
	l.write(fmt.Sprint(args...))
}

func (l *Logger) write(msg string) {
	mu.Lock()
	defer mu.Unlock()

	if !l.enabledLocked() {
		return
	}

	now := time.Now()
	var delta time.Duration
	if !l.last.IsZero() {
		delta = now.Sub(l.last)
	}
	l.last = now

	fmt.Fprintf(output, "%s %s +%dms\n", l.namespace, msg, delta.Milliseconds())
}
