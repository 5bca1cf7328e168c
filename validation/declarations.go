package validation

import (
	"github.com/sourcegraph/containment/graph"
	"github.com/sourcegraph/containment/internal/reader"
	"github.com/sourcegraph/containment/rules"
)

// stashDeclaration records the first line declaring owner. A second line for
// the same owner is reported against both lines.
func (v *Validator) stashDeclaration(lineContext reader.LineContext, owner string) bool {
	key := graph.Normalize(owner)
	if previous, ok := v.declarations[key]; ok {
		if v.format == rules.FormatSentence {
			v.addError("container %s declared multiple times", key).Link(lineContext, previous)
			return false
		}

		return true
	}

	v.declarations[key] = lineContext
	return true
}

func (v *Validator) isDeclared(container string) bool {
	_, ok := v.declarations[graph.Normalize(container)]
	return ok
}
