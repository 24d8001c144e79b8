package when

import (
	"strconv"

	"github.com/dshills/keybind/internal/log"
)

// Normalize returns the canonical form of r: NotEqual with operand true
// becomes Equal with operand false, and a nil operand becomes true.
// Normalize is idempotent.
func Normalize(r Rule) Rule {
	if r.Operand == nil {
		r.Operand = true
	}
	if r.Operator == NotEqual {
		if b, ok := r.Operand.(bool); ok && b {
			r.Operator = Equal
			r.Operand = false
		}
	}
	return r
}

// NormalizeAll normalizes every rule. A nil or empty input returns nil.
func NormalizeAll(rules []Rule) []Rule {
	if len(rules) == 0 {
		return nil
	}
	out := make([]Rule, len(rules))
	for i, r := range rules {
		out[i] = Normalize(r)
	}
	return out
}

// Matches evaluates a single rule against ctx. An unknown operator is
// logged and treated as satisfied.
func Matches(ctx Context, r Rule) bool {
	value := ctx.Get(r.Key)
	switch r.Operator {
	case Equal:
		if b, ok := r.Operand.(bool); ok && !b {
			return !truthy(value)
		}
		return value == r.operand()
	case NotEqual:
		return value != r.operand()
	default:
		log.Warn("unknown context operator, treating rule as satisfied",
			"key", r.Key, "operator", int(r.Operator))
		return true
	}
}

// MatchesAll reports whether every rule matches ctx. An empty rule list
// always matches.
func MatchesAll(ctx Context, rules []Rule) bool {
	for _, r := range rules {
		if !Matches(ctx, r) {
			return false
		}
	}
	return true
}

// RuleKey returns the canonical "<key>;<op>;<operand>" string of r used for
// set comparisons. The rule is not normalized first; callers normalize.
// String operands are quoted so they never collide with booleans.
func RuleKey(r Rule) string {
	var operand string
	switch v := r.operand().(type) {
	case bool:
		operand = strconv.FormatBool(v)
	case string:
		operand = strconv.Quote(v)
	default:
		operand = "true"
	}
	return r.Key + ";" + r.Operator.String() + ";" + operand
}

// EntirelyIncludes reports whether rule set a contains every canonical rule
// of b. It is a syntactic subset test: an empty b is included in anything,
// an empty a includes nothing else. Logically related but differently
// written rules (x == 1 versus x != 2) are not recognized.
func EntirelyIncludes(a, b []Rule) bool {
	if len(b) == 0 {
		return true
	}
	if len(a) == 0 {
		return false
	}

	keys := make(map[string]struct{}, len(a))
	for _, r := range a {
		keys[RuleKey(Normalize(r))] = struct{}{}
	}
	for _, r := range b {
		if _, ok := keys[RuleKey(Normalize(r))]; !ok {
			return false
		}
	}
	return true
}
