package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/alecthomas/kingpin"
	"github.com/pkg/errors"
	"github.com/sourcegraph/containment/graph"
	"github.com/sourcegraph/containment/internal/config"
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
	app := kingpin.New("containment-extractor", "containment-extractor extracts the subgraph around a given container.").Version(version)
	container := app.Arg("container", "The container to extract.").Required().String()
	rulesFile := app.Arg("rules-file", "The rule file to read.").Default("rules.txt").File()
	depth := app.Arg("depth", "The maximum number of hops from the container.").Default("2").Int()
	cfg := config.Register(app)

	_, err := app.Parse(os.Args[1:])
	if err != nil {
		return err
	}

	defer (*rulesFile).Close()

	logger := cfg.Logger(os.Stderr)

	format, err := cfg.RuleFormat()
	if err != nil {
		return err
	}

	g, stats, err := output.LoadGraph(*rulesFile, format, cfg.LineCapacity(), cfg.Progress)
	if err != nil {
		return err
	}

	if !g.Has(*container) {
		return errors.Errorf("container %q does not appear in any rule", *container)
	}

	sub := g.Neighborhood(*container, *depth)
	logger.Info("extracted subgraph",
		"rules", stats.Rules,
		"containers", sub.Len(),
		"edges", sub.Edges(),
		"depth", *depth,
	)

	display(os.Stdout, sub, graph.Normalize(*container))
	return nil
}

// display writes g as a DOT digraph with edges labelled by amount. The
// focus container is highlighted.
func display(w io.Writer, g *graph.Graph, focus string) {
	fmt.Fprintf(w, "digraph {\n")

	for _, name := range g.Names() {
		if name == focus {
			fmt.Fprintf(w, "\t%q [style=filled]\n", name)
		} else {
			fmt.Fprintf(w, "\t%q\n", name)
		}
	}

	fmt.Fprintf(w, "\n")

	for _, owner := range g.Names() {
		children := g.Children(owner)

		targets := make([]string, 0, len(children))
		for target := range children {
			targets = append(targets, target)
		}
		sort.Strings(targets)

		for _, target := range targets {
			fmt.Fprintf(w, "\t%q -> %q [label=\"%d\"]\n", owner, target, children[target])
		}
	}

	fmt.Fprintf(w, "}\n")
}
