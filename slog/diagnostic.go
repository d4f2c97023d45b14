// Package slog provides log/slog based decorators for wallparse services.
package slog

import (
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/fwojciec/wallparse"
	"golang.org/x/time/rate"
)

// Default throttling for repeated diagnostics: the first
// DefaultDiagnosticBurst of a kind are logged, then at most one per
// DefaultDiagnosticInterval.
const (
	DefaultDiagnosticBurst    = 5
	DefaultDiagnosticInterval = time.Minute
)

// Ensure DiagnosticLogger implements wallparse.DiagnosticSink.
var _ wallparse.DiagnosticSink = (*DiagnosticLogger)(nil)

// DiagnosticLogger writes diagnostics as warnings. Large exports repeat the
// same unknown class thousands of times, so each distinct kind/element/value
// gets its own token bucket and repeats beyond it are only counted.
// It is safe for concurrent use.
type DiagnosticLogger struct {
	logger *slog.Logger
	every  time.Duration
	burst  int

	mu         sync.Mutex
	limiters   map[string]*rate.Limiter
	suppressed map[string]suppressed
}

type suppressed struct {
	d     wallparse.Diagnostic
	count int
}

// DiagnosticOption configures a DiagnosticLogger.
type DiagnosticOption func(*DiagnosticLogger)

// WithThrottle sets how many identical diagnostics are logged before
// throttling and how often one more is let through afterwards.
// A non-positive every never lets more through.
func WithThrottle(burst int, every time.Duration) DiagnosticOption {
	return func(l *DiagnosticLogger) {
		l.burst = burst
		l.every = every
	}
}

// NewDiagnosticLogger creates a new DiagnosticLogger.
func NewDiagnosticLogger(logger *slog.Logger, opts ...DiagnosticOption) *DiagnosticLogger {
	l := &DiagnosticLogger{
		logger:     logger,
		every:      DefaultDiagnosticInterval,
		burst:      DefaultDiagnosticBurst,
		limiters:   make(map[string]*rate.Limiter),
		suppressed: make(map[string]suppressed),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Report logs d unless identical diagnostics are being throttled.
func (l *DiagnosticLogger) Report(d wallparse.Diagnostic) {
	key := string(d.Kind) + "\x00" + d.Element + "\x00" + d.Value

	l.mu.Lock()
	limiter, ok := l.limiters[key]
	if !ok {
		limit := rate.Limit(0)
		if l.every > 0 {
			limit = rate.Every(l.every)
		}
		limiter = rate.NewLimiter(limit, l.burst)
		l.limiters[key] = limiter
	}
	allow := limiter.Allow()
	if !allow {
		s := l.suppressed[key]
		s.d = d
		s.count++
		l.suppressed[key] = s
	}
	l.mu.Unlock()

	if !allow {
		return
	}
	l.logger.Warn("diagnostic",
		"kind", string(d.Kind),
		"element", d.Element,
		"value", d.Value,
		"detail", d.Message,
	)
}

// Flush logs one summary line per throttled diagnostic and resets the
// counters. It returns the total number of suppressed diagnostics.
func (l *DiagnosticLogger) Flush() int {
	l.mu.Lock()
	keys := make([]string, 0, len(l.suppressed))
	for k := range l.suppressed {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	entries := make([]suppressed, 0, len(keys))
	for _, k := range keys {
		entries = append(entries, l.suppressed[k])
	}
	l.suppressed = make(map[string]suppressed)
	l.mu.Unlock()

	total := 0
	for _, s := range entries {
		total += s.count
		l.logger.Warn("diagnostics suppressed",
			"kind", string(s.d.Kind),
			"element", s.d.Element,
			"value", s.d.Value,
			"count", s.count,
		)
	}
	return total
}
