package validation

import (
	"strings"

	"github.com/sourcegraph/containment/graph"
	"github.com/sourcegraph/containment/internal/reader"
	"github.com/sourcegraph/containment/rules"
	"github.com/xeipuuv/gojsonschema"
)

// ValidateLine checks a single rule line and stashes its rules for graph
// validation. Lines that fail to parse are reported and dropped.
func (v *Validator) ValidateLine(lineContext reader.LineContext) bool {
	v.lines++

	if v.format == rules.FormatJSON && !v.options.DisableJSONSchema {
		if !v.validateSchema(lineContext) {
			return false
		}
	}

	owner, lineRules, err := rules.Parse(v.format, lineContext.Text)
	if err != nil {
		v.addError("failed to parse rule: %v", err).Link(lineContext)
		return false
	}

	ok := true
	if f, exists := v.lineValidators[v.format]; exists {
		ok = f(lineContext, owner, lineRules)
	}

	if !v.stashRules(lineContext, owner, lineRules) {
		ok = false
	}

	return ok
}

//
// Line Validators

func (v *Validator) setupLineValidators() map[rules.Format]LineValidator {
	return map[rules.Format]LineValidator{
		rules.FormatSentence: v.validateSentenceLine,
		rules.FormatJSON:     v.validateJSONLine,
	}
}

// validateSentenceLine requires each owner to be described by one line, as a
// sentence lists the complete contents of its owner.
func (v *Validator) validateSentenceLine(lineContext reader.LineContext, owner string, lineRules []rules.Rule) bool {
	ok := v.stashDeclaration(lineContext, owner)

	seen := map[string]struct{}{}
	for _, rule := range lineRules {
		target := graph.Normalize(rule.Target)
		if _, exists := seen[target]; exists {
			ok = false
			v.addError("container %s listed multiple times inside %s", target, graph.Normalize(owner)).Link(lineContext)
		}

		seen[target] = struct{}{}
	}

	return ok
}

// validateJSONLine allows an owner/target pair to be repeated only with the
// same amount.
func (v *Validator) validateJSONLine(lineContext reader.LineContext, owner string, lineRules []rules.Rule) bool {
	v.stashDeclaration(lineContext, owner)

	ok := true
	for _, rule := range lineRules {
		previous, exists := v.pairs[keyOf(rule)]
		if exists && previous.rule.Amount != rule.Amount {
			ok = false
			v.addError(
				"conflicting amounts for %s inside %s: %d and %d",
				graph.Normalize(rule.Target),
				graph.Normalize(rule.Owner),
				previous.rule.Amount,
				rule.Amount,
			).Link(lineContext, previous.lineContext)
		}
	}

	return ok
}

//
// Helpers

func (v *Validator) validateSchema(lineContext reader.LineContext) bool {
	result, err := v.schema.Validate(gojsonschema.NewStringLoader(lineContext.Text))
	if err != nil {
		v.addError("failed schema validation: %v", err).Link(lineContext)
		return false
	}

	if !result.Valid() {
		var descriptions []string
		for _, resultError := range result.Errors() {
			descriptions = append(descriptions, resultError.String())
		}

		v.addError("failed schema validation: %s", strings.Join(descriptions, "; ")).Link(lineContext)
		return false
	}

	return true
}

func (v *Validator) stashRules(lineContext reader.LineContext, owner string, lineRules []rules.Rule) bool {
	v.graph.Ensure(owner)

	ok := true
	for _, rule := range lineRules {
		if err := v.graph.AddRule(rule.Owner, rule.Target, rule.Amount); err != nil {
			v.addError("rejected rule %q: %v", rule.String(), err).Link(lineContext)
			ok = false
			continue
		}

		stashed := stashedRule{rule: rule, lineContext: lineContext}
		v.rules = append(v.rules, stashed)
		v.pairs[keyOf(rule)] = stashed
	}

	return ok
}

func keyOf(rule rules.Rule) pairKey {
	return pairKey{owner: graph.Normalize(rule.Owner), target: graph.Normalize(rule.Target)}
}
