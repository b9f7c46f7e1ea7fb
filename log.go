package procstream

import (
	"log/slog"
	"sync/atomic"
)

// customLogger holds a caller-supplied logger, stored as an atomic pointer so
// reads and writes are data-race-free. A nil value means no custom logger has
// been set; logger() falls back to a cached default.
var customLogger atomic.Pointer[slog.Logger]

// defaultLogger caches the default-derived logger (slog.Default() with the
// procstream component attribute) so it is not re-created on every logger()
// call. If slog.SetDefault is called after the first logger() call, the
// cached value will not reflect the change; call SetLogger(nil) to clear the
// cache and pick up the new default.
var defaultLogger atomic.Pointer[slog.Logger]

// SetLogger replaces the package-level logger used by procstream. The
// provided logger should already carry any desired attributes; procstream
// will not add its own. Passing nil resets to the default: slog.Default()
// with a "component" attribute, re-derived on the next use and then cached.
//
// SetLogger is safe to call concurrently with other procstream operations.
func SetLogger(l *slog.Logger) {
	customLogger.Store(l)
	// Clear the cached default so the next logger() call re-derives it
	// from slog.Default().
	defaultLogger.Store(nil)
}

// logger returns the current package-level logger. Safe to call from
// multiple goroutines; never returns nil.
func logger() *slog.Logger {
	if l := customLogger.Load(); l != nil {
		return l
	}
	if l := defaultLogger.Load(); l != nil {
		return l
	}
	l := slog.Default().With("component", "procstream")
	// CompareAndSwap avoids overwriting a concurrently cached value. If
	// another goroutine already stored a logger, use theirs.
	if defaultLogger.CompareAndSwap(nil, l) {
		return l
	}
	if l2 := defaultLogger.Load(); l2 != nil {
		return l2
	}
	return l
}
