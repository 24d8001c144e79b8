package when

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		text string
		want []Rule
	}{
		{"", nil},
		{"   ", nil},
		{"editorTextFocus", []Rule{{Key: "editorTextFocus"}}},
		{"!editorReadonly", []Rule{{Key: "editorReadonly", Operator: NotEqual, Operand: true}}},
		{"! spaced", []Rule{{Key: "spaced", Operator: NotEqual, Operand: true}}},
		{"a && !b", []Rule{{Key: "a"}, {Key: "b", Operator: NotEqual, Operand: true}}},
		{"lang == 'go'", []Rule{{Key: "lang", Operator: Equal, Operand: "go"}}},
		{`lang == "go"`, []Rule{{Key: "lang", Operator: Equal, Operand: "go"}}},
		{"lang==go", []Rule{{Key: "lang", Operator: Equal, Operand: "go"}}},
		{"debug != true", []Rule{{Key: "debug", Operator: NotEqual, Operand: true}}},
		{"debug == false", []Rule{{Key: "debug", Operator: Equal, Operand: false}}},
		{"a &&  && b", []Rule{{Key: "a"}, {Key: "b"}}},
		{"x == ", []Rule{{Key: "x", Operator: Equal, Operand: ""}}},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.text))
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		rules []Rule
		want  string
	}{
		{nil, ""},
		{[]Rule{Has("a")}, "a"},
		{[]Rule{Has("a"), Not("b")}, "a && !b"},
		{[]Rule{Eq("b", false)}, "!b"},
		{[]Rule{Eq("a", true)}, "a"},
		{[]Rule{Eq("lang", "go")}, "lang == 'go'"},
		{[]Rule{Ne("lang", "go")}, "lang != 'go'"},
		{[]Rule{Ne("debug", false)}, "debug != false"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.rules))
		})
	}
}

func TestFormatCollapsesNegativeForms(t *testing.T) {
	assert.Equal(t, Format([]Rule{Not("x")}), Format([]Rule{Eq("x", false)}))
}

func TestParseFormatRoundTrip(t *testing.T) {
	inputs := []string{
		"editorTextFocus",
		"editorTextFocus && !editorReadonly",
		"resourceLangId == 'go' && !inDebugMode",
		"panelFocus != 'terminal'",
		"debug != false",
	}

	for _, in := range inputs {
		rules := Parse(in)
		assert.Equal(t, in, Format(rules))
		assert.Equal(t, NormalizeAll(rules), NormalizeAll(Parse(Format(rules))))
	}
}
