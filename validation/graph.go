package validation

import (
	"strings"

	"github.com/sourcegraph/containment/graph"
	"github.com/sourcegraph/containment/internal/reader"
)

// ValidateGraph runs the checks that need every rule. It must be called after
// the last ValidateLine.
func (v *Validator) ValidateGraph(stopOnError bool) bool {
	processors := []func() bool{
		v.ensureNoSelfContainment,
		v.ensureAcyclic,
	}

	if v.options.RequireDeclarations {
		processors = append(processors, v.ensureTargetsDeclared)
	}

	valid := true
	for _, f := range processors {
		if !f() {
			valid = false
			if stopOnError {
				return false
			}
		}
	}

	return valid
}

func (v *Validator) ensureNoSelfContainment() bool {
	return v.forEachEdgeRule(func(stashed stashedRule) bool {
		key := keyOf(stashed.rule)
		if key.owner != key.target {
			return true
		}

		v.addError("container %s contains itself", key.owner).Link(stashed.lineContext)
		return false
	})
}

func (v *Validator) ensureAcyclic() bool {
	err := v.graph.CheckAcyclic()
	if err == nil {
		return true
	}

	cycleErr, ok := err.(*graph.CycleError)
	if !ok {
		v.addError("cycle check failed: %v", err)
		return false
	}

	// a self loop is already reported by ensureNoSelfContainment
	if len(cycleErr.Path) == 2 {
		return false
	}

	var lineContexts []reader.LineContext
	for i := 1; i < len(cycleErr.Path); i++ {
		if stashed, ok := v.pairs[pairKey{owner: cycleErr.Path[i-1], target: cycleErr.Path[i]}]; ok {
			lineContexts = append(lineContexts, stashed.lineContext)
		}
	}

	v.addError("containers form a cycle: %s", strings.Join(cycleErr.Path, " -> ")).Link(lineContexts...)
	return false
}

func (v *Validator) ensureTargetsDeclared() bool {
	reported := map[string]struct{}{}

	return v.forEachRule(func(stashed stashedRule) bool {
		target := graph.Normalize(stashed.rule.Target)
		if v.isDeclared(target) {
			return true
		}

		if _, ok := reported[target]; !ok {
			reported[target] = struct{}{}
			v.addError("container %s is never declared", target).Link(stashed.lineContext)
		}

		return false
	})
}
