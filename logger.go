package svgmesh

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/svgmesh/tess"
)

// nopHandler drops every record and reports every level as disabled.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var (
	silent = slog.New(nopHandler{})

	current atomic.Pointer[slog.Logger]
)

func init() {
	current.Store(silent)
}

// SetLogger routes svgmesh diagnostics to l, or silences them when l is nil.
// The gpu package logs through Logger; the tess package, which svgmesh
// imports, is handed l directly.
//
// Records by level:
//   - Debug: one record per fill or stroke pass, paint that fell back to
//     FallbackColor, fills that left poly2tri for the sweep, GPU uploads
//   - Info: mesh counts at the end of Tessellate
//   - Warn: strokes dropped after a triangulation error
//
// For example, to see every pass:
//
//	svgmesh.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	current.Store(l)
	tess.SetLogger(l)
}

// Logger returns the logger set by SetLogger.
func Logger() *slog.Logger {
	return current.Load()
}
