package lensdemo

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/gg"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called while another goroutine is logging.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for lensdemo and its sub-packages.
// By default, lensdemo produces no log output.
//
// The logger is forwarded to [gg.SetLogger], so the diagram package and the
// gg rasterizer it draws with log through the same handler.
// Pass nil to restore the default silent behavior.
//
// Log levels used by lensdemo:
//   - [slog.LevelDebug]: per-step details (blur sigmas, band pixel counts)
//   - [slog.LevelInfo]: files written
//   - [slog.LevelWarn]: skipped optional inputs
func SetLogger(l *slog.Logger) {
	gg.SetLogger(l)
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by lensdemo.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
