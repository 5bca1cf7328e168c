package rules

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var (
	sentencePattern = regexp.MustCompile(`^(.+?) bags? contain (.+?)\.?$`)
	contentPattern  = regexp.MustCompile(`^(\d+) (.+?) bags?$`)
)

const noContents = "no other bags"

// ParseSentence decodes a line such as
//
//	light red bags contain 1 bright white bag, 2 muted yellow bags.
//
// into its owner and zero or more rules. A line ending in "no other bags"
// declares the owner with no rules.
func ParseSentence(line string) (string, []Rule, error) {
	match := sentencePattern.FindStringSubmatch(strings.TrimSpace(line))
	if match == nil {
		return "", nil, errors.Wrapf(ErrMalformedRule, "expected \"<owner> bags contain ...\", got %q", line)
	}

	owner := strings.TrimSpace(match[1])
	if owner == "" {
		return "", nil, errors.Wrap(ErrMalformedRule, "empty owner")
	}

	contents := strings.TrimSpace(match[2])
	if contents == noContents {
		return owner, nil, nil
	}

	var rules []Rule
	for _, part := range strings.Split(contents, ",") {
		rule, err := parseContent(owner, strings.TrimSpace(part))
		if err != nil {
			return "", nil, err
		}

		rules = append(rules, rule)
	}

	return owner, rules, nil
}

func parseContent(owner, part string) (Rule, error) {
	match := contentPattern.FindStringSubmatch(part)
	if match == nil {
		return Rule{}, errors.Wrapf(ErrMalformedRule, "expected \"<amount> <target> bags\", got %q", part)
	}

	amount, err := strconv.ParseUint(match[1], 10, 64)
	if err != nil {
		return Rule{}, errors.Wrapf(ErrMalformedRule, "amount %q: %v", match[1], err)
	}

	target := strings.TrimSpace(match[2])
	if target == "" {
		return Rule{}, errors.Wrap(ErrMalformedRule, "empty target")
	}

	return Rule{Owner: owner, Target: target, Amount: amount}, nil
}
