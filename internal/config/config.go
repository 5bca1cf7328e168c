// Package config registers the flags shared by every command. Each flag can
// also be set through an environment variable.
package config

import (
	"io"
	"log/slog"

	"github.com/alecthomas/kingpin"
	"github.com/sourcegraph/containment/internal/logging"
	"github.com/sourcegraph/containment/internal/reader"
	"github.com/sourcegraph/containment/rules"
)

type Config struct {
	Format         string
	BufferCapacity int
	LogLevel       string
	LogFormat      string
	Progress       bool
}

// Register adds the shared flags to app. Values are available after app.Parse.
func Register(app *kingpin.Application) *Config {
	config := &Config{}

	app.Flag("format", "The rule line format.").
		Envar("CONTAINMENT_FORMAT").
		Default(string(rules.FormatSentence)).
		EnumVar(&config.Format, rules.Formats...)

	app.Flag("buffer-capacity", "Set the max line size.").
		Envar("CONTAINMENT_BUFFER_CAPACITY").
		Default("1000000").
		IntVar(&config.BufferCapacity)

	app.Flag("log-level", "Minimum level of log messages.").
		Envar("CONTAINMENT_LOG_LEVEL").
		Default("warn").
		EnumVar(&config.LogLevel, logging.Levels...)

	app.Flag("log-format", "Log output format.").
		Envar("CONTAINMENT_LOG_FORMAT").
		Default(logging.FormatText).
		EnumVar(&config.LogFormat, logging.Formats...)

	app.Flag("progress", "Show progress while reading rules.").
		Envar("CONTAINMENT_PROGRESS").
		BoolVar(&config.Progress)

	return config
}

func (c *Config) RuleFormat() (rules.Format, error) {
	return rules.ParseFormat(c.Format)
}

func (c *Config) Logger(w io.Writer) *slog.Logger {
	return logging.New(w, c.LogLevel, c.LogFormat)
}

// LineCapacity returns the configured max line size, falling back to the
// reader default for non-positive values.
func (c *Config) LineCapacity() int {
	if c.BufferCapacity <= 0 {
		return reader.DefaultBufferCapacity
	}

	return c.BufferCapacity
}
