package when

import "fmt"

// Operator is a rule comparison operator.
type Operator int

const (
	// Equal tests ctx[key] == operand.
	Equal Operator = iota
	// NotEqual tests ctx[key] != operand.
	NotEqual
)

// String returns the operator as written in when text.
func (o Operator) String() string {
	switch o {
	case Equal:
		return "=="
	case NotEqual:
		return "!="
	default:
		return fmt.Sprintf("Operator(%d)", int(o))
	}
}

// Rule is one clause of a when expression.
type Rule struct {
	// Key names the context entry under test.
	Key string

	// Operator defaults to Equal.
	Operator Operator

	// Operand is nil, a bool or a string. Nil means true.
	Operand any
}

// Has returns a rule that holds when key is truthy.
func Has(key string) Rule {
	return Rule{Key: key}
}

// Not returns a rule that holds when key is falsy.
func Not(key string) Rule {
	return Rule{Key: key, Operator: NotEqual, Operand: true}
}

// Eq returns a rule comparing key with value.
func Eq(key string, value any) Rule {
	return Rule{Key: key, Operator: Equal, Operand: value}
}

// Ne returns a rule that holds when key differs from value.
func Ne(key string, value any) Rule {
	return Rule{Key: key, Operator: NotEqual, Operand: value}
}

// operand returns the rule's operand with the nil default applied.
func (r Rule) operand() any {
	if r.Operand == nil {
		return true
	}
	return r.Operand
}

// Context is a snapshot of named flags describing UI state. Values are
// bool or string; a missing key is treated as unset.
type Context map[string]any

// Set stores a value and returns the context for chaining.
func (c Context) Set(key string, value any) Context {
	c[key] = value
	return c
}

// Get returns the value stored under key, or nil.
func (c Context) Get(key string) any {
	if c == nil {
		return nil
	}
	return c[key]
}

// Clone returns a shallow copy of the context.
func (c Context) Clone() Context {
	if c == nil {
		return nil
	}
	clone := make(Context, len(c))
	for k, v := range c {
		clone[k] = v
	}
	return clone
}

// truthy reports whether a context value counts as set.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	default:
		return true
	}
}
