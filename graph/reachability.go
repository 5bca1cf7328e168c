package graph

// Ancestors returns every container that directly or transitively holds key,
// sorted. The key itself is never part of the result, even when it sits on a
// cycle. An unknown key has no ancestors.
func (g *Graph) Ancestors(key string) []string {
	start, ok := g.lookup(key)
	if !ok {
		return []string{}
	}

	return g.sortedNames(g.closure(start, func(n int, push func(int)) {
		for p := range g.parents[n] {
			push(p)
		}
	}))
}

// Descendants returns every container that key directly or transitively
// holds, sorted, excluding key itself.
func (g *Graph) Descendants(key string) []string {
	start, ok := g.lookup(key)
	if !ok {
		return []string{}
	}

	return g.sortedNames(g.closure(start, func(n int, push func(int)) {
		for c := range g.children[n] {
			push(c)
		}
	}))
}

// closure expands an explicit frontier seeded with the direct neighbours of
// start. Each index is expanded at most once; an index already visited or
// already pending is never pushed again.
func (g *Graph) closure(start int, neighbors func(n int, push func(int))) []int {
	visited := make([]bool, len(g.names))
	pending := make([]bool, len(g.names))

	var frontier []int
	push := func(n int) {
		if !visited[n] && !pending[n] {
			pending[n] = true
			frontier = append(frontier, n)
		}
	}

	neighbors(start, push)

	var reached []int
	for len(frontier) > 0 {
		n := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
		pending[n] = false

		if visited[n] {
			continue
		}

		visited[n] = true
		if n != start {
			reached = append(reached, n)
		}

		neighbors(n, push)
	}

	return reached
}

// Neighborhood returns the subgraph of containers within depth hops of key,
// following edges in either direction, with every edge between them. A depth
// of zero yields key alone.
func (g *Graph) Neighborhood(key string, depth int) *Graph {
	sub := New()
	start, ok := g.lookup(key)
	if !ok {
		return sub
	}

	distance := map[int]int{start: 0}
	queue := []int{start}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]

		if distance[n] >= depth {
			continue
		}

		visit := func(m int) {
			if _, ok := distance[m]; !ok {
				distance[m] = distance[n] + 1
				queue = append(queue, m)
			}
		}

		for c := range g.children[n] {
			visit(c)
		}
		for p := range g.parents[n] {
			visit(p)
		}
	}

	members := make([]int, 0, len(distance))
	for n := range distance {
		members = append(members, n)
	}

	for _, name := range g.sortedNames(members) {
		sub.Ensure(name)
	}

	for n := range distance {
		for c, amount := range g.children[n] {
			if _, ok := distance[c]; ok {
				// both endpoints are non-empty names taken from g
				_ = sub.AddRule(g.names[n], g.names[c], amount)
			}
		}
	}

	return sub
}
