package internal

import "log/slog"

// LevelTrace sits below [slog.LevelDebug]. Package wire logs its
// parse-failure diagnostic at this level.
const LevelTrace slog.Level = slog.LevelDebug - 2
