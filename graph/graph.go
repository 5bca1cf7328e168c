// Package graph resolves "container X holds N units of container Y" rules.
//
// Container identifiers are interned into a dense index once on ingestion.
// Edges live in two index-keyed tables owned by the graph: children (with
// amounts) and parents (reachability only). Both tables are written by
// AddRule and nothing else, so they never disagree.
//
// A Graph is built by a single caller and is read-only once querying starts.
// Concurrent queries are safe after the last AddRule call; mutation during a
// query is not.
package graph

import (
	"sort"
	"strings"
)

type Graph struct {
	names    []string
	index    map[string]int
	children []map[int]uint64
	parents  []map[int]struct{}
	edges    int
}

func New() *Graph {
	return &Graph{
		index: map[string]int{},
	}
}

// Normalize lower-cases a container identifier and collapses runs of
// whitespace into a single space.
func Normalize(key string) string {
	return strings.ToLower(strings.Join(strings.Fields(key), " "))
}

// Ensure returns the index of the container identified by key, creating an
// empty container on first mention.
func (g *Graph) Ensure(key string) int {
	key = Normalize(key)
	if i, ok := g.index[key]; ok {
		return i
	}

	i := len(g.names)
	g.names = append(g.names, key)
	g.index[key] = i
	g.children = append(g.children, map[int]uint64{})
	g.parents = append(g.parents, map[int]struct{}{})
	return i
}

// AddRule declares that owner directly holds amount units of target. A
// repeated declaration for the same pair replaces the previous amount. An
// amount of zero creates both containers but no edge.
func (g *Graph) AddRule(owner, target string, amount uint64) error {
	if Normalize(owner) == "" || Normalize(target) == "" {
		return ErrEmptyKey
	}

	o := g.Ensure(owner)
	t := g.Ensure(target)
	if amount == 0 {
		return nil
	}

	if _, ok := g.children[o][t]; !ok {
		g.edges++
	}

	g.children[o][t] = amount
	g.parents[t][o] = struct{}{}
	return nil
}

func (g *Graph) Len() int {
	return len(g.names)
}

// Edges returns the number of distinct owner/target pairs with a positive amount.
func (g *Graph) Edges() int {
	return g.edges
}

func (g *Graph) Has(key string) bool {
	_, ok := g.lookup(key)
	return ok
}

// Names returns every container identifier in sorted order.
func (g *Graph) Names() []string {
	names := append([]string(nil), g.names...)
	sort.Strings(names)
	return names
}

// Children returns a copy of the direct contents of key.
func (g *Graph) Children(key string) map[string]uint64 {
	children := map[string]uint64{}
	if i, ok := g.lookup(key); ok {
		for c, amount := range g.children[i] {
			children[g.names[c]] = amount
		}
	}

	return children
}

// Parents returns the sorted identifiers of containers directly holding key.
func (g *Graph) Parents(key string) []string {
	i, ok := g.lookup(key)
	if !ok {
		return []string{}
	}

	parents := make([]int, 0, len(g.parents[i]))
	for p := range g.parents[i] {
		parents = append(parents, p)
	}

	return g.sortedNames(parents)
}

//
// Helpers

func (g *Graph) lookup(key string) (int, bool) {
	i, ok := g.index[Normalize(key)]
	return i, ok
}

func (g *Graph) sortedNames(indices []int) []string {
	names := make([]string, 0, len(indices))
	for _, i := range indices {
		names = append(names, g.names[i])
	}

	sort.Strings(names)
	return names
}
