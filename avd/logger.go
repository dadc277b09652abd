package avd

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler discarding all records.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger used during conversions.
// By default, nothing is logged. Pass nil to restore this behavior.
//
// Log levels used:
//   - [slog.LevelDebug]: skipped shapes (invalid polygons, ignored elements)
//   - [slog.LevelWarn]: unsupported elements, in WarnErrorMode
//
// SetLogger is safe for concurrent use.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
