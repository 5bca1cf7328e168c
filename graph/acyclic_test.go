package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckAcyclic(t *testing.T) {
	assert.NoError(t, New().CheckAcyclic())
	assert.NoError(t, newTestGraph(t, exampleRules...).CheckAcyclic())
}

func TestCheckAcyclic_Diamond(t *testing.T) {
	g := newTestGraph(t,
		rule{"a", "b", 1},
		rule{"a", "c", 1},
		rule{"b", "d", 1},
		rule{"c", "d", 1},
	)

	assert.NoError(t, g.CheckAcyclic())
}

func TestCheckAcyclic_Cycle(t *testing.T) {
	g := newTestGraph(t,
		rule{"root", "a", 1},
		rule{"a", "b", 1},
		rule{"b", "c", 1},
		rule{"c", "a", 1},
	)

	err := g.CheckAcyclic()
	require.Error(t, err)

	cycleErr, ok := err.(*CycleError)
	require.True(t, ok, "expected *CycleError, got %T", err)
	assert.Equal(t, []string{"a", "b", "c", "a"}, cycleErr.Path)
	assert.Equal(t, "containment cycle: a -> b -> c -> a", cycleErr.Error())
}

func TestCheckAcyclic_SelfLoop(t *testing.T) {
	g := newTestGraph(t, rule{"a", "a", 1})

	err := g.CheckAcyclic()
	require.Error(t, err)
	assert.Equal(t, []string{"a", "a"}, err.(*CycleError).Path)
}

func TestCheckAcyclic_ZeroAmountIsNotAnEdge(t *testing.T) {
	g := newTestGraph(t, rule{"a", "b", 1}, rule{"b", "a", 0})

	assert.NoError(t, g.CheckAcyclic())
}

func TestCheckAcyclicFrom(t *testing.T) {
	g := newTestGraph(t,
		rule{"a", "b", 2},
		rule{"x", "y", 1},
		rule{"y", "x", 1},
	)

	require.Error(t, g.CheckAcyclic())
	assert.NoError(t, g.CheckAcyclicFrom("a"))
	assert.NoError(t, g.CheckAcyclicFrom("b"))
	assert.NoError(t, g.CheckAcyclicFrom("unknown"))

	err := g.CheckAcyclicFrom("x")
	require.Error(t, err)
	assert.Equal(t, []string{"x", "y", "x"}, err.(*CycleError).Path)
}

func TestCheckAcyclicFrom_CycleBelowRoot(t *testing.T) {
	g := newTestGraph(t,
		rule{"root", "a", 1},
		rule{"a", "b", 1},
		rule{"b", "a", 1},
		rule{"c", "root", 1},
	)

	err := g.CheckAcyclicFrom("c")
	require.Error(t, err)
	assert.Equal(t, []string{"a", "b", "a"}, err.(*CycleError).Path)
}
