//go:build wiredebug

package internal

import (
	"context"
	"fmt"
	"log/slog"
)

// Debug reports whether the parser was built with the wiredebug tag.
// It is a compile-time constant; package wire does not consult it; the
// tag takes effect through the LogAttrs variant compiled in.
const Debug = true

func LogEnabled(l *slog.Logger, lvl slog.Level) bool {
	return true
}

// LogAttrs prints a failure reason even when l is nil, since parse
// diagnostics are most useful exactly when the caller didn't wire up
// a logger (e.g. a fuzz corpus regression run). args is a flat list of
// alternating key, value pairs, the same convention as [slog.Logger.Log].
func LogAttrs(l *slog.Logger, level slog.Level, msg string, args ...any) {
	if l == nil {
		print(level.String(), " ", msg)
		for i := 0; i+1 < len(args); i += 2 {
			print(" ", fmtArg(args[i]), "=", fmtArg(args[i+1]))
		}
		println()
		return
	}
	l.Log(context.Background(), level, msg, args...)
}

func fmtArg(a any) string {
	switch v := a.(type) {
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
