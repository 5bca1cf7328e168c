package main

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/sourcegraph/containment/internal/reader"
	"github.com/sourcegraph/containment/validation"
	"github.com/stretchr/testify/assert"
)

func TestPrintErrors(t *testing.T) {
	color.NoColor = true

	errs := []validation.ValidationError{
		{
			Message: "containment cycle: a -> b -> a",
			RelevantLines: []reader.LineContext{
				{Index: 1, Text: "a bags contain 1 b bag."},
				{Index: 3, Text: "b bags contain 1 a bag."},
			},
		},
		{Message: "c is never declared"},
	}

	var buf bytes.Buffer
	printErrors(&buf, errs)

	expected := "Found 2 errors\n\n" +
		"1) containment cycle: a -> b -> a\n" +
		"\ton line #1: a bags contain 1 b bag.\n" +
		"\ton line #3: b bags contain 1 a bag.\n" +
		"2) c is never declared\n" +
		"\n"

	assert.Equal(t, expected, buf.String())
}
