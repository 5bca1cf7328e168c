package output

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/sourcegraph/containment/internal/reader"
	"github.com/sourcegraph/containment/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithProgress_Disabled(t *testing.T) {
	calls := 0
	err := WithProgress(false, func(update Update) error {
		update("%d lines", 10)
		calls++
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestWithProgress_PropagatesError(t *testing.T) {
	expected := errors.New("read failed")
	err := WithProgress(false, func(update Update) error {
		return expected
	})

	assert.Equal(t, expected, err)
}

func TestLoadGraph(t *testing.T) {
	input := "a bags contain 2 b bags.\nb bags contain 3 c bags.\nc bags contain no other bags.\n"

	g, stats, err := LoadGraph(strings.NewReader(input), rules.FormatSentence, 0, false)
	require.NoError(t, err)
	assert.Equal(t, reader.Stats{Lines: 3, Rules: 2}, stats)

	total, err := g.TotalContained("a")
	require.NoError(t, err)
	assert.Equal(t, uint64(8), total)
}

func TestLoadGraph_Error(t *testing.T) {
	_, _, err := LoadGraph(strings.NewReader("not a rule\n"), rules.FormatSentence, 0, false)
	assert.Equal(t, rules.ErrMalformedRule, errors.Cause(err))
}
