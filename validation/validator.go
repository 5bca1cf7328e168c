package validation

import (
	"github.com/sourcegraph/containment/graph"
	"github.com/sourcegraph/containment/internal/reader"
	"github.com/sourcegraph/containment/rules"
	"github.com/xeipuuv/gojsonschema"
)

type LineValidator func(lineContext reader.LineContext, owner string, lineRules []rules.Rule) bool

type Options struct {
	// DisableJSONSchema skips schema validation of json rule lines.
	DisableJSONSchema bool

	// RequireDeclarations reports targets that never appear as an owner.
	RequireDeclarations bool
}

type Validator struct {
	schema         *gojsonschema.Schema
	format         rules.Format
	options        Options
	lineValidators map[rules.Format]LineValidator
	rules          []stashedRule
	declarations   map[string]reader.LineContext
	pairs          map[pairKey]stashedRule
	graph          *graph.Graph
	lines          int
	errors         []ValidationError
}

type stashedRule struct {
	rule        rules.Rule
	lineContext reader.LineContext
}

type pairKey struct {
	owner  string
	target string
}

// NewValidator creates a validator for rule lines in the given format. The
// schema is only consulted for json lines and may be nil when the schema check
// is disabled.
func NewValidator(schema *gojsonschema.Schema, format rules.Format, options Options) *Validator {
	validator := &Validator{
		schema:       schema,
		format:       format,
		options:      options,
		declarations: map[string]reader.LineContext{},
		pairs:        map[pairKey]stashedRule{},
		graph:        graph.New(),
	}

	validator.lineValidators = validator.setupLineValidators()
	return validator
}

// Graph returns the graph built from every rule accepted so far.
func (v *Validator) Graph() *graph.Graph {
	return v.graph
}

// Lines returns the number of lines validated so far.
func (v *Validator) Lines() int {
	return v.lines
}
