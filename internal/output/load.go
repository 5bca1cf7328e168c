package output

import (
	"io"

	"github.com/sourcegraph/containment/graph"
	"github.com/sourcegraph/containment/internal/reader"
	"github.com/sourcegraph/containment/rules"
)

// LoadGraph reads a rule file into a graph, optionally reporting progress.
func LoadGraph(r io.Reader, format rules.Format, bufferCapacity int, progress bool) (*graph.Graph, reader.Stats, error) {
	var (
		g     *graph.Graph
		stats reader.Stats
	)

	err := WithProgress(progress, func(update Update) error {
		var err error
		g, stats, err = reader.Load(r, format, bufferCapacity, func(stats reader.Stats) {
			update("Read %d lines, %d rules", stats.Lines, stats.Rules)
		})

		return err
	})

	return g, stats, err
}
