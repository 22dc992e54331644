package hands

import (
	"io"
	"log/slog"
	"sync/atomic"
)

// logger is initialized in its declaration so that package-level data built
// during initialization can already log through it.
var logger = func() *atomic.Pointer[slog.Logger] {
	p := new(atomic.Pointer[slog.Logger])
	p.Store(discardLogger())
	return p
}()

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// SetLogger replaces the package logger. A nil logger restores the default,
// which discards everything.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = discardLogger()
	}
	logger.Store(l)
}

func currentLogger() *slog.Logger {
	return logger.Load()
}
