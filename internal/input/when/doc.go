// Package when evaluates keybinding context rules.
//
// A binding's "when" clause is a list of rules joined by "&&". Each rule
// tests one key of a Context snapshot:
//
//	editorTextFocus              key is truthy
//	!editorReadonly              key is falsy
//	resourceLangId == 'go'       key equals a string
//	inDebugMode != true          key differs from true
//
// Rules are compared for conflict detection by their canonical RuleKey
// after Normalize, which folds "!= true" into "== false" so both spellings
// of a negation share one representation.
package when
