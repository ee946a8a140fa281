//go:build !wiredebug

package internal

import (
	"context"
	"log/slog"
)

const Debug = false

func LogEnabled(l *slog.Logger, lvl slog.Level) bool {
	return l != nil && l.Handler().Enabled(context.Background(), lvl)
}

// LogAttrs is a no-op unless a logger was explicitly configured. Kept as a
// function call (rather than inlining l.Log at each call site) so the
// wiredebug build can swap in reason-printing without touching callers.
// args is a flat list of alternating key, value pairs, the same
// convention as [slog.Logger.Log].
func LogAttrs(l *slog.Logger, level slog.Level, msg string, args ...any) {
	if l != nil {
		l.Log(context.Background(), level, msg, args...)
	}
}
