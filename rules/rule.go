// Package rules decodes rule lines into (owner, target, amount) tuples.
package rules

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// ErrMalformedRule is the cause of every parse failure in this package.
var ErrMalformedRule = errors.New("malformed rule")

// Rule declares that Owner directly holds Amount units of Target.
type Rule struct {
	Owner  string `json:"owner"`
	Target string `json:"target"`
	Amount uint64 `json:"amount"`
}

func (r Rule) String() string {
	return fmt.Sprintf("%s contains %d %s", r.Owner, r.Amount, r.Target)
}

type jsonRule struct {
	Owner  string  `json:"owner"`
	Target string  `json:"target"`
	Amount *uint64 `json:"amount"`
}

// ParseJSON decodes a single rule object such as
// {"owner": "light red", "target": "bright white", "amount": 1}. All three
// fields are required.
func ParseJSON(line string) (*Rule, error) {
	var payload jsonRule
	if err := json.Unmarshal([]byte(line), &payload); err != nil {
		return nil, errors.Wrapf(ErrMalformedRule, "json: %v", err)
	}

	rule := &Rule{
		Owner:  strings.TrimSpace(payload.Owner),
		Target: strings.TrimSpace(payload.Target),
	}

	if rule.Owner == "" || rule.Target == "" {
		return nil, errors.Wrap(ErrMalformedRule, "json: owner and target are required")
	}

	if payload.Amount == nil {
		return nil, errors.Wrap(ErrMalformedRule, "json: amount is required")
	}
	rule.Amount = *payload.Amount

	return rule, nil
}
