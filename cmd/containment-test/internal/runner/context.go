package runner

import (
	"log/slog"

	"github.com/sourcegraph/containment/rules"
)

type RunnerContext struct {
	Format         rules.Format
	BufferCapacity int
	Logger         *slog.Logger
}

func NewRunnerContext(format rules.Format, bufferCapacity int, logger *slog.Logger) *RunnerContext {
	return &RunnerContext{
		Format:         format,
		BufferCapacity: bufferCapacity,
		Logger:         logger,
	}
}
