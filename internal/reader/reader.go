package reader

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/sourcegraph/containment/graph"
	"github.com/sourcegraph/containment/rules"
)

// DefaultBufferCapacity is the default max line size in bytes.
const DefaultBufferCapacity = 1000000

// LineContext holds a line index and the text read from that line.
type LineContext struct {
	Index int
	Text  string
}

// Read calls fn with every non-blank line of r. Line indexes start at one and
// count blank lines. Reading stops early when fn returns false.
func Read(r io.Reader, bufferCapacity int, fn func(lineContext LineContext) bool) error {
	if bufferCapacity <= 0 {
		bufferCapacity = DefaultBufferCapacity
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, min(4096, bufferCapacity)), bufferCapacity)

	index := 0
	for scanner.Scan() {
		index++

		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		if !fn(LineContext{Index: index, Text: line}) {
			break
		}
	}

	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "scanner")
	}

	return nil
}

// Stats counts what Load consumed.
type Stats struct {
	Lines int
	Rules int
}

// Progress is called after every ingested line.
type Progress func(stats Stats)

// Load parses every line of r in the given format and ingests the resulting
// rules into a new graph. Owners of lines without rules still become
// containers. The first malformed line aborts the load.
func Load(r io.Reader, format rules.Format, bufferCapacity int, progress Progress) (*graph.Graph, Stats, error) {
	g := graph.New()
	stats := Stats{}

	var loadErr error
	err := Read(r, bufferCapacity, func(lineContext LineContext) bool {
		owner, lineRules, err := rules.Parse(format, lineContext.Text)
		if err != nil {
			loadErr = errors.Wrapf(err, "line %d", lineContext.Index)
			return false
		}

		g.Ensure(owner)
		for _, rule := range lineRules {
			if err := g.AddRule(rule.Owner, rule.Target, rule.Amount); err != nil {
				loadErr = errors.Wrapf(err, "line %d", lineContext.Index)
				return false
			}
		}

		stats.Lines++
		stats.Rules += len(lineRules)
		if progress != nil {
			progress(stats)
		}

		return true
	})

	if err != nil {
		return nil, stats, err
	}
	if loadErr != nil {
		return nil, stats, loadErr
	}

	return g, stats, nil
}
