package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/sourcegraph/containment/graph"
	"github.com/sourcegraph/containment/internal/output"
)

const version = "0.1.0"

func main() {
	if err := realMain(); err != nil {
		fmt.Fprint(os.Stderr, fmt.Sprintf("error: %v\n", err))
		os.Exit(1)
	}
}

func realMain() error {
	command, err := parseArgs(os.Args[1:])
	if err != nil {
		return err
	}

	defer rulesFile.Close()

	logger := cfg.Logger(os.Stderr)

	format, err := cfg.RuleFormat()
	if err != nil {
		return err
	}

	g, stats, err := output.LoadGraph(rulesFile, format, cfg.LineCapacity(), cfg.Progress)
	if err != nil {
		return err
	}

	logger.Info("loaded rules",
		"file", rulesFile.Name(),
		"lines", stats.Lines,
		"rules", stats.Rules,
		"containers", g.Len(),
		"edges", g.Edges(),
	)

	return query(os.Stdout, logger, g, command)
}

func query(w io.Writer, logger *slog.Logger, g *graph.Graph, command string) error {
	switch command {
	case ancestorsCommand.FullCommand():
		key := lookup(logger, g, *ancestorsKey)
		for _, ancestor := range g.Ancestors(key) {
			fmt.Fprintln(w, ancestor)
		}

	case countCommand.FullCommand():
		key := lookup(logger, g, *countKey)
		fmt.Fprintln(w, len(g.Ancestors(key)))

	case totalCommand.FullCommand():
		key := lookup(logger, g, *totalKey)

		if !*skipCycleCheck {
			if err := g.CheckAcyclicFrom(key); err != nil {
				return err
			}
		}

		total, err := g.TotalContained(key)
		if err != nil {
			return err
		}

		fmt.Fprintln(w, total)

	default:
		return errors.Errorf("unknown command %q", command)
	}

	return nil
}

func lookup(logger *slog.Logger, g *graph.Graph, words []string) string {
	key := containerName(words)
	if !g.Has(key) {
		logger.Warn("container does not appear in any rule", "container", key)
	}

	logger.Debug("querying container", "container", graph.Normalize(key), "parents", len(g.Parents(key)), "children", len(g.Children(key)))
	return key
}
