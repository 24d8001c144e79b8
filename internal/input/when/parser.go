package when

import "strings"

// Parse reads a when expression such as "editorTextFocus && !inSearch"
// into rules. Parsing is best effort and never fails: empty clauses are
// skipped and an unrecognized operand is kept as raw text.
func Parse(text string) []Rule {
	var rules []Rule
	for _, clause := range strings.Split(text, "&&") {
		clause = strings.TrimSpace(clause)
		if clause == "" {
			continue
		}
		rules = append(rules, parseClause(clause))
	}
	return rules
}

func parseClause(clause string) Rule {
	if strings.HasPrefix(clause, "!") {
		return Rule{Key: strings.TrimSpace(clause[1:]), Operator: NotEqual, Operand: true}
	}
	if k, v, found := strings.Cut(clause, "=="); found {
		return Rule{Key: strings.TrimSpace(k), Operator: Equal, Operand: parseOperand(v)}
	}
	if k, v, found := strings.Cut(clause, "!="); found {
		return Rule{Key: strings.TrimSpace(k), Operator: NotEqual, Operand: parseOperand(v)}
	}
	return Rule{Key: clause}
}

// parseOperand converts operand text: "true"/"false" become booleans,
// quoted text becomes the unquoted string, anything else stays raw.
func parseOperand(text string) any {
	text = strings.TrimSpace(text)
	switch text {
	case "true":
		return true
	case "false":
		return false
	}
	if len(text) >= 2 {
		first, last := text[0], text[len(text)-1]
		if (first == '\'' || first == '"') && first == last {
			return text[1 : len(text)-1]
		}
	}
	return text
}

// Format writes rules back as a when expression joined by " && ".
// Both negative forms, NotEqual true and Equal false, render as "!key", so
// formatting is not a perfect inverse of Parse at the rule level.
func Format(rules []Rule) string {
	parts := make([]string, 0, len(rules))
	for _, r := range rules {
		parts = append(parts, formatRule(r))
	}
	return strings.Join(parts, " && ")
}

func formatRule(r Rule) string {
	operand := r.operand()
	switch r.Operator {
	case Equal:
		if b, ok := operand.(bool); ok {
			if b {
				return r.Key
			}
			return "!" + r.Key
		}
	case NotEqual:
		if b, ok := operand.(bool); ok && b {
			return "!" + r.Key
		}
	}
	return r.Key + " " + r.Operator.String() + " " + formatOperand(operand)
}

func formatOperand(v any) string {
	switch t := v.(type) {
	case bool:
		if t {
			return "true"
		}
		return "false"
	case string:
		return "'" + t + "'"
	default:
		return "true"
	}
}
