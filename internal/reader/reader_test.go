package reader

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/sourcegraph/containment/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleSentences = `light red bags contain 1 bright white bag, 2 muted yellow bags.
dark orange bags contain 3 bright white bags, 4 muted yellow bags.
bright white bags contain 1 shiny gold bag.
muted yellow bags contain 2 shiny gold bags, 9 faded blue bags.
shiny gold bags contain 1 dark olive bag, 2 vibrant plum bags.
dark olive bags contain 3 faded blue bags, 4 dotted black bags.
vibrant plum bags contain 5 faded blue bags, 6 dotted black bags.
faded blue bags contain no other bags.
dotted black bags contain no other bags.
`

func TestRead(t *testing.T) {
	var lines []LineContext
	err := Read(strings.NewReader("a\n\n  \nb\n"), 0, func(lineContext LineContext) bool {
		lines = append(lines, lineContext)
		return true
	})

	require.NoError(t, err)
	assert.Equal(t, []LineContext{{Index: 1, Text: "a"}, {Index: 4, Text: "b"}}, lines)
}

func TestRead_StopsEarly(t *testing.T) {
	count := 0
	err := Read(strings.NewReader("a\nb\nc\n"), 0, func(lineContext LineContext) bool {
		count++
		return lineContext.Index < 2
	})

	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestRead_LineTooLong(t *testing.T) {
	err := Read(strings.NewReader(strings.Repeat("x", 100)+"\n"), 16, func(lineContext LineContext) bool {
		return true
	})

	assert.Error(t, err)
}

func TestLoad_Sentences(t *testing.T) {
	var last Stats
	g, stats, err := Load(strings.NewReader(exampleSentences), rules.FormatSentence, 0, func(stats Stats) {
		last = stats
	})

	require.NoError(t, err)
	assert.Equal(t, Stats{Lines: 9, Rules: 13}, stats)
	assert.Equal(t, stats, last)
	assert.Equal(t, 9, g.Len())
	assert.Equal(t, []string{"bright white", "dark orange", "light red", "muted yellow"}, g.Ancestors("shiny gold"))

	total, err := g.TotalContained("shiny gold")
	require.NoError(t, err)
	assert.Equal(t, uint64(32), total)
}

func TestLoad_JSON(t *testing.T) {
	input := `{"owner": "a", "target": "b", "amount": 2}
{"owner": "b", "target": "c", "amount": 3}
{"owner": "c", "target": "d", "amount": 1}
`

	g, stats, err := Load(strings.NewReader(input), rules.FormatJSON, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, Stats{Lines: 3, Rules: 3}, stats)

	total, err := g.TotalContained("a")
	require.NoError(t, err)
	assert.Equal(t, uint64(11), total)
}

func TestLoad_JSONMissingAmount(t *testing.T) {
	input := `{"owner": "a", "target": "b", "amount": 1}
{"owner": "b", "target": "c"}
`

	_, _, err := Load(strings.NewReader(input), rules.FormatJSON, 0, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
	assert.Equal(t, rules.ErrMalformedRule, errors.Cause(err))
}

func TestLoad_Malformed(t *testing.T) {
	input := "a bags contain 1 b bag.\na bags contain lots of b bags.\n"

	_, stats, err := Load(strings.NewReader(input), rules.FormatSentence, 0, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
	assert.Equal(t, rules.ErrMalformedRule, errors.Cause(err))
	assert.Equal(t, 1, stats.Lines)
}
