package graph

import (
	"math/bits"

	"github.com/pkg/errors"
)

type frame struct {
	index      int
	multiplier uint64
}

// TotalContained returns how many container units key holds, directly or
// transitively, multiplying amounts along every path. Key itself is not
// counted. An unknown key holds nothing.
//
// The subgraph reachable from key must be acyclic; on a cycle this method
// either reports ErrOverflow or does not terminate. Callers that cannot
// vouch for their rules should run CheckAcyclicFrom first.
func (g *Graph) TotalContained(key string) (uint64, error) {
	root, ok := g.lookup(key)
	if !ok {
		return 0, nil
	}

	var total uint64
	stack := []frame{{index: root, multiplier: 1}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for c, amount := range g.children[f.index] {
			hi, product := bits.Mul64(f.multiplier, amount)
			if hi != 0 {
				return 0, errors.Wrapf(ErrOverflow, "%q inside %q", g.names[c], g.names[root])
			}

			sum, carry := bits.Add64(total, product, 0)
			if carry != 0 {
				return 0, errors.Wrapf(ErrOverflow, "total for %q", g.names[root])
			}
			total = sum

			stack = append(stack, frame{index: c, multiplier: product})
		}
	}

	return total, nil
}
