package validation

import (
	"fmt"

	"github.com/sourcegraph/containment/internal/reader"
)

type ValidationError struct {
	Message       string
	RelevantLines []reader.LineContext
}

// Link attaches the lines that caused the error.
func (ve *ValidationError) Link(lineContexts ...reader.LineContext) {
	ve.RelevantLines = append(ve.RelevantLines, lineContexts...)
}

func (v *Validator) Errors() []ValidationError {
	return v.errors[:]
}

//
// Helpers

func (v *Validator) addError(message string, args ...interface{}) *ValidationError {
	v.errors = append(v.errors, ValidationError{Message: fmt.Sprintf(message, args...)})
	return &v.errors[len(v.errors)-1]
}
