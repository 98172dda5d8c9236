// Package tislog provides the package-level logger every component in
// this module logs through, built on log/slog. The CLI's level set
// (none|err|warn|notice|info|trace|debug) doesn't line up one-to-one with
// slog's four built-in levels, so notice and trace are modeled as custom
// slog.Level values rather than forcing a lossy mapping.
package tislog

import (
	"context"
	"log/slog"
	"os"
)

// LevelTrace and LevelNotice extend slog's four built-in levels to cover
// the two extra levels the CLI's --loglevel flag accepts.
const (
	LevelTrace  = slog.LevelDebug - 4
	LevelNotice = slog.LevelInfo + 2
)

// Logger is the package-level logger every component writes through.
// SetLevel (called once, from the CLI) replaces it with one honoring the
// user's requested verbosity; until then it defaults to LevelInfo on
// stderr.
var Logger = slog.New(newHandler(slog.LevelInfo))

// ParseLevel resolves one of the CLI's named levels to a slog.Level.
// slog has no true "silent" level, so "none" maps to slog.LevelError+4,
// above every built-in level; "err" maps to slog.LevelError itself.
func ParseLevel(name string) (slog.Level, bool) {
	switch name {
	case "none":
		return slog.LevelError + 4, true
	case "err":
		return slog.LevelError, true
	case "warn":
		return slog.LevelWarn, true
	case "notice":
		return LevelNotice, true
	case "info":
		return slog.LevelInfo, true
	case "trace":
		return LevelTrace, true
	case "debug":
		return slog.LevelDebug, true
	default:
		return 0, false
	}
}

// SetLevel replaces Logger with one filtering below level.
func SetLevel(level slog.Level) {
	Logger = slog.New(newHandler(level))
}

func newHandler(level slog.Level) slog.Handler {
	return slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: replaceLevelName,
	})
}

// replaceLevelName renders LevelTrace/LevelNotice with their own names
// instead of slog's default "DEBUG-4"/"INFO+2".
func replaceLevelName(_ []string, a slog.Attr) slog.Attr {
	if a.Key != slog.LevelKey {
		return a
	}
	lvl, ok := a.Value.Any().(slog.Level)
	if !ok {
		return a
	}
	switch lvl {
	case LevelTrace:
		a.Value = slog.StringValue("TRACE")
	case LevelNotice:
		a.Value = slog.StringValue("NOTICE")
	}
	return a
}

// Enabled reports whether a record at level would be logged, letting
// callers skip building an expensive trace payload (a per-cycle field
// dump) when trace logging is off.
func Enabled(ctx context.Context, level slog.Level) bool {
	return Logger.Enabled(ctx, level)
}
