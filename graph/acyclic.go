package graph

import "sort"

const (
	unvisited = iota
	inProgress
	done
)

type dfsFrame struct {
	index int
	next  []int
}

// CheckAcyclic walks every container once and returns a *CycleError for the
// first containment cycle found, or nil. Containers and children are visited
// in name order so the reported cycle is stable across runs.
func (g *Graph) CheckAcyclic() error {
	return g.checkAcyclic(g.byName(allIndices(len(g.names))))
}

// CheckAcyclicFrom is CheckAcyclic restricted to the containers reachable
// from key. Cycles elsewhere in the graph are ignored. An unknown key is
// trivially acyclic.
func (g *Graph) CheckAcyclicFrom(key string) error {
	root, ok := g.lookup(key)
	if !ok {
		return nil
	}

	return g.checkAcyclic([]int{root})
}

func (g *Graph) checkAcyclic(roots []int) error {
	state := make([]uint8, len(g.names))

	for _, root := range roots {
		if state[root] != unvisited {
			continue
		}

		state[root] = inProgress
		stack := []dfsFrame{{index: root, next: g.sortedChildren(root)}}

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if len(top.next) == 0 {
				state[top.index] = done
				stack = stack[:len(stack)-1]
				continue
			}

			c := top.next[0]
			top.next = top.next[1:]

			switch state[c] {
			case inProgress:
				return g.cycleError(stack, c)
			case unvisited:
				state[c] = inProgress
				stack = append(stack, dfsFrame{index: c, next: g.sortedChildren(c)})
			}
		}
	}

	return nil
}

func (g *Graph) cycleError(stack []dfsFrame, closing int) *CycleError {
	i := len(stack) - 1
	for i > 0 && stack[i].index != closing {
		i--
	}

	path := make([]string, 0, len(stack)-i+1)
	for _, f := range stack[i:] {
		path = append(path, g.names[f.index])
	}

	return &CycleError{Path: append(path, g.names[closing])}
}

func (g *Graph) sortedChildren(n int) []int {
	children := make([]int, 0, len(g.children[n]))
	for c := range g.children[n] {
		children = append(children, c)
	}

	return g.byName(children)
}

func (g *Graph) byName(indices []int) []int {
	sort.Slice(indices, func(i, j int) bool {
		return g.names[indices[i]] < g.names[indices[j]]
	})

	return indices
}

func allIndices(n int) []int {
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}

	return indices
}
