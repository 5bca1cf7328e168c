package graph

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rule struct {
	owner  string
	target string
	amount uint64
}

// newTestGraph builds a graph from rules, failing the test on any ingestion error.
func newTestGraph(t *testing.T, rules ...rule) *Graph {
	t.Helper()
	g := New()
	for _, r := range rules {
		require.NoError(t, g.AddRule(r.owner, r.target, r.amount))
	}

	return g
}

func TestNormalize(t *testing.T) {
	testCases := map[string]string{
		"shiny gold":       "shiny gold",
		"  Shiny   GOLD  ": "shiny gold",
		"dark\torange":     "dark orange",
		"":                 "",
		"   ":              "",
	}

	for input, expected := range testCases {
		assert.Equal(t, expected, Normalize(input), "input %q", input)
	}
}

func TestEnsure_Idempotent(t *testing.T) {
	g := New()

	first := g.Ensure("light red")
	second := g.Ensure("Light  Red")
	other := g.Ensure("bright white")

	assert.Equal(t, first, second)
	assert.NotEqual(t, first, other)
	assert.Equal(t, 2, g.Len())
	assert.Empty(t, g.Children("light red"))
	assert.Empty(t, g.Parents("light red"))
}

func TestAddRule_ForwardReference(t *testing.T) {
	g := newTestGraph(t, rule{"a", "b", 1})

	require.True(t, g.Has("a"))
	require.True(t, g.Has("b"))
	assert.Equal(t, map[string]uint64{"b": 1}, g.Children("a"))
	assert.Equal(t, []string{"a"}, g.Parents("b"))
	assert.Equal(t, 1, g.Edges())
}

func TestAddRule_Overwrites(t *testing.T) {
	g := newTestGraph(t, rule{"a", "b", 5}, rule{"a", "b", 3})

	assert.Equal(t, map[string]uint64{"b": 3}, g.Children("a"))
	assert.Equal(t, []string{"a"}, g.Parents("b"))
	assert.Equal(t, 1, g.Edges())
}

func TestAddRule_ZeroAmount(t *testing.T) {
	g := newTestGraph(t, rule{"x", "y", 0})

	assert.True(t, g.Has("x"))
	assert.True(t, g.Has("y"))
	assert.Empty(t, g.Children("x"))
	assert.Empty(t, g.Ancestors("y"))
	assert.Equal(t, 0, g.Edges())
}

func TestAddRule_EmptyKey(t *testing.T) {
	g := New()

	assert.Equal(t, ErrEmptyKey, g.AddRule("", "b", 1))
	assert.Equal(t, ErrEmptyKey, g.AddRule("a", "   ", 1))
	assert.Equal(t, 0, g.Len())
}

func TestAddRule_ReciprocalEdges(t *testing.T) {
	g := newTestGraph(t,
		rule{"light red", "bright white", 1},
		rule{"light red", "muted yellow", 2},
		rule{"dark orange", "bright white", 3},
		rule{"dark orange", "muted yellow", 4},
		rule{"bright white", "shiny gold", 1},
	)

	for _, owner := range g.Names() {
		for target := range g.Children(owner) {
			assert.Contains(t, g.Parents(target), owner, "%s -> %s", owner, target)
		}
	}
}

func TestNames_Sorted(t *testing.T) {
	g := newTestGraph(t, rule{"c", "a", 1}, rule{"b", "a", 1})

	if diff := cmp.Diff([]string{"a", "b", "c"}, g.Names()); diff != "" {
		t.Errorf("unexpected names (-want +got):\n%s", diff)
	}
}
