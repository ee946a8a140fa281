// Package wirelog provides preconfigured [log/slog] loggers for the
// httpcheck CLI harness, formatted so [wire.Slice] and [wire.HeaderID]
// values print as header names and byte ranges instead of raw integers.
package wirelog

import (
	"log/slog"
	"os"
	"sync/atomic"
	"time"

	"github.com/golang-cz/devslog"
	conslog "github.com/phsym/console-slog"
	slogfmt "github.com/samber/slog-formatter"

	"github.com/JulianDavis/uurl/wire"
)

var newHandler = slogfmt.NewFormatterHandler(
	slogfmt.ErrorFormatter("error"),
	slogfmt.FormatByType(func(id wire.HeaderID) slog.Value {
		return slog.StringValue(id.String())
	}),
	slogfmt.FormatByType(func(s wire.Slice) slog.Value {
		return slog.GroupValue(
			slog.Int("start", int(s.Start)),
			slog.Int("end", int(s.End)),
		)
	}),
)

var console = slog.New(newHandler(
	conslog.NewHandler(os.Stdout, &conslog.HandlerOptions{
		AddSource:  false,
		Level:      slog.LevelDebug,
		TimeFormat: time.Kitchen,
	}),
))

// Console returns the logger configured for human-facing console output.
func Console() *slog.Logger { return console }

var develop = slog.New(newHandler(
	devslog.NewHandler(os.Stdout, &devslog.Options{
		HandlerOptions: &slog.HandlerOptions{
			AddSource: true,
			Level:     slog.LevelDebug,
		},
		SortKeys:   true,
		TimeFormat: time.Kitchen,
	}),
))

// Develop returns the logger configured for extended output, selected by
// httpcheck's -dev flag.
func Develop() *slog.Logger { return develop }

var noop = slog.New(noopHandler{})

// Noop returns a logger that writes nothing.
func Noop() *slog.Logger { return noop }

var _default atomic.Pointer[slog.Logger]

// Default returns the default logger. It is [Noop] until SetDefault is
// called.
func Default() *slog.Logger { return _default.Load() }

// SetDefault overwrites the default logger. A nil l resets it to Noop.
func SetDefault(l *slog.Logger) {
	if l == nil {
		l = noop
	}
	_default.Store(l)
}

func init() {
	_default.Store(noop)
}
