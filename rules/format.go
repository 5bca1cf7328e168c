package rules

import (
	"github.com/pkg/errors"
)

type Format string

const (
	FormatSentence Format = "sentence"
	FormatJSON     Format = "json"
)

// Formats lists the accepted values for command-line flags.
var Formats = []string{string(FormatSentence), string(FormatJSON)}

func ParseFormat(value string) (Format, error) {
	switch Format(value) {
	case FormatSentence, FormatJSON:
		return Format(value), nil
	}

	return "", errors.Errorf("unknown rule format %q", value)
}

// Parse decodes a line in the given format. The owner is returned even when
// the line holds no rules.
func Parse(format Format, line string) (string, []Rule, error) {
	switch format {
	case FormatSentence:
		return ParseSentence(line)

	case FormatJSON:
		rule, err := ParseJSON(line)
		if err != nil {
			return "", nil, err
		}

		return rule.Owner, []Rule{*rule}, nil
	}

	return "", nil, errors.Errorf("unknown rule format %q", format)
}
