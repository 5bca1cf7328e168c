package runner

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/sourcegraph/containment/graph"
	"github.com/sourcegraph/containment/internal/reader"
)

type Runner struct {
	Context *RunnerContext
}

// Failure is an expectation that did not hold.
type Failure struct {
	Index     int
	Container string
	Message   string
}

func (f Failure) String() string {
	return fmt.Sprintf("#%d %s: %s", f.Index+1, f.Container, f.Message)
}

// Run loads the rules and checks every test spec against them. An error is
// returned only when the inputs cannot be read.
func (r *Runner) Run(rulesFile, testsFile io.Reader) (int, []Failure, error) {
	testSpecs, err := ReadTestSpecs(testsFile)
	if err != nil {
		return 0, nil, err
	}

	g, stats, err := reader.Load(rulesFile, r.Context.Format, r.Context.BufferCapacity, nil)
	if err != nil {
		return 0, nil, err
	}

	r.Context.Logger.Info("loaded rules", "rules", stats.Rules, "containers", g.Len(), "specs", len(testSpecs))

	c := &checker{graph: g}
	var failures []Failure
	for i, testSpec := range testSpecs {
		for _, message := range c.check(testSpec) {
			failures = append(failures, Failure{Index: i, Container: testSpec.Container, Message: message})
		}
	}

	return len(testSpecs), failures, nil
}

type checker struct {
	graph *graph.Graph
}

func (c *checker) check(testSpec TestSpec) []string {
	var messages []string
	key := testSpec.Container

	if !c.graph.Has(key) {
		messages = append(messages, "container does not appear in any rule")
	}

	if testSpec.Ancestors != nil {
		if message := compareSets("ancestors", testSpec.Ancestors, c.graph.Ancestors(key)); message != "" {
			messages = append(messages, message)
		}
	}

	if testSpec.AncestorCount != nil {
		if count := len(c.graph.Ancestors(key)); count != *testSpec.AncestorCount {
			messages = append(messages, fmt.Sprintf("expected %d ancestors, got %d", *testSpec.AncestorCount, count))
		}
	}

	if testSpec.Descendants != nil {
		if message := compareSets("descendants", testSpec.Descendants, c.graph.Descendants(key)); message != "" {
			messages = append(messages, message)
		}
	}

	if testSpec.Total != nil {
		total, err := c.total(key)
		if err != nil {
			messages = append(messages, err.Error())
		} else if total != *testSpec.Total {
			messages = append(messages, fmt.Sprintf("expected a total of %d, got %d", *testSpec.Total, total))
		}
	}

	return messages
}

// total refuses to sum when a cycle is reachable from key.
func (c *checker) total(key string) (uint64, error) {
	if err := c.graph.CheckAcyclicFrom(key); err != nil {
		return 0, err
	}

	return c.graph.TotalContained(key)
}

func compareSets(name string, expected, actual []string) string {
	want := map[string]struct{}{}
	for _, key := range expected {
		want[graph.Normalize(key)] = struct{}{}
	}

	got := map[string]struct{}{}
	for _, key := range actual {
		got[key] = struct{}{}
	}

	var missing, unexpected []string
	for key := range want {
		if _, ok := got[key]; !ok {
			missing = append(missing, key)
		}
	}
	for key := range got {
		if _, ok := want[key]; !ok {
			unexpected = append(unexpected, key)
		}
	}

	if len(missing) == 0 && len(unexpected) == 0 {
		return ""
	}

	sort.Strings(missing)
	sort.Strings(unexpected)

	var parts []string
	if len(missing) > 0 {
		parts = append(parts, "missing "+strings.Join(missing, ", "))
	}
	if len(unexpected) > 0 {
		parts = append(parts, "unexpected "+strings.Join(unexpected, ", "))
	}

	return fmt.Sprintf("%s differ: %s", name, strings.Join(parts, "; "))
}
