package plot

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// silent drops every record. Enabled reports false so slog never builds
// the record in the first place.
type silent struct{}

func (silent) Enabled(context.Context, slog.Level) bool  { return false }
func (silent) Handle(context.Context, slog.Record) error { return nil }
func (silent) WithAttrs([]slog.Attr) slog.Handler        { return silent{} }
func (silent) WithGroup(string) slog.Handler             { return silent{} }

var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(slog.New(silent{}))
}

// SetLogger installs the logger used by plot and its sub-packages. Nil
// restores the default, which writes nothing. Loggers obtained from
// [ComponentLogger] before the call follow the new logger.
//
// Levels:
//   - [slog.LevelDebug]: per-trace diagnostics such as segment counts,
//     point joins, skipped fills and duplicate trace keys
//   - [slog.LevelWarn]: degraded renders such as missing axes
//
// Safe for concurrent use.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(silent{})
	}
	current.Store(l)
}

// Logger returns the logger installed by [SetLogger].
func Logger() *slog.Logger {
	return current.Load()
}

// ComponentLogger returns a logger tagged with component=name that
// resolves the installed logger on every record. Renderers keep it for
// their lifetime and still pick up a later [SetLogger].
func ComponentLogger(name string) *slog.Logger {
	return slog.New(follow{ops: []handlerOp{{attrs: []slog.Attr{slog.String("component", name)}}}})
}

// handlerOp is one WithAttrs or WithGroup call, replayed onto the
// installed handler at log time.
type handlerOp struct {
	group string
	attrs []slog.Attr
}

type follow struct {
	ops []handlerOp
}

func (f follow) handler() slog.Handler {
	h := current.Load().Handler()
	if _, ok := h.(silent); ok {
		return h
	}
	for _, op := range f.ops {
		if op.group != "" {
			h = h.WithGroup(op.group)
		} else {
			h = h.WithAttrs(op.attrs)
		}
	}
	return h
}

func (f follow) Enabled(ctx context.Context, level slog.Level) bool {
	return current.Load().Handler().Enabled(ctx, level)
}

func (f follow) Handle(ctx context.Context, r slog.Record) error {
	return f.handler().Handle(ctx, r)
}

func (f follow) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return f
	}
	return follow{ops: append(f.ops[:len(f.ops):len(f.ops)], handlerOp{attrs: attrs})}
}

func (f follow) WithGroup(name string) slog.Handler {
	if name == "" {
		return f
	}
	return follow{ops: append(f.ops[:len(f.ops):len(f.ops)], handlerOp{group: name})}
}
