// Package logging builds the slog loggers used by the commands.
package logging

import (
	"io"
	"log/slog"
	"time"

	"github.com/fatih/color"
	"github.com/lmittmann/tint"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

var (
	Levels  = []string{"debug", "info", "warn", "error"}
	Formats = []string{FormatText, FormatJSON}
)

// levelSilent is above every level slog emits.
const levelSilent = slog.Level(100)

func ParseLevel(levelStr string) slog.Level {
	switch levelStr {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New returns a logger writing to w. The text format is meant for terminals,
// the json format for machines.
func New(w io.Writer, levelStr, formatStr string) *slog.Logger {
	level := ParseLevel(levelStr)

	if formatStr == FormatJSON {
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
	}

	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:       level,
		TimeFormat:  time.DateTime,
		ReplaceAttr: rewriteLogLevel,
	}))
}

// Nop returns a logger that discards everything.
func Nop() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: levelSilent}))
}

func rewriteLogLevel(groups []string, a slog.Attr) slog.Attr {
	if a.Key != slog.LevelKey || len(groups) != 0 {
		return a
	}

	level, ok := a.Value.Any().(slog.Level)
	if !ok {
		return a
	}

	switch level {
	case slog.LevelDebug:
		a.Value = slog.StringValue("DEBUG")
	case slog.LevelInfo:
		a.Value = slog.StringValue(color.GreenString("INFO"))
	case slog.LevelWarn:
		a.Value = slog.StringValue(color.YellowString("WARN"))
	case slog.LevelError:
		a.Value = slog.StringValue(color.RedString("ERROR"))
	}

	return a
}
