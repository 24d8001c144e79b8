package keymap

import (
	"strconv"
	"strings"

	"github.com/dshills/keybind/internal/input/key"
	"github.com/dshills/keybind/internal/input/when"
)

const (
	// dumpKeyWidth is the column width the quoted key and its comma are
	// padded to.
	dumpKeyWidth = 25

	// dumpWhenIndent lines the "when" continuation up under "command".
	dumpWhenIndent = "                                     "
)

// DefaultKeybindings renders every registered default binding, shadowed or
// not, in the aligned array format users copy into their overrides file:
//
//	[
//	{ "key": "ctrl+k ctrl+s",          "command": "openKeybindings" },
//	{ "key": "ctrl+p",                 "command": "quickOpen",
//	                                     "when": "editorTextFocus" },
//	]
func (t *Table) DefaultKeybindings() string {
	var sb strings.Builder
	sb.WriteString("[\n")
	for _, item := range t.defaults {
		writeDumpEntry(&sb, key.Write(item.Keybinding, t.platform), item.Command, when.Format(item.When))
	}
	sb.WriteString("]\n")
	return sb.String()
}

func writeDumpEntry(sb *strings.Builder, keyText, command, whenText string) {
	sb.WriteString(`{ "key": `)
	sb.WriteString(rightPad(strconv.Quote(keyText)+",", dumpKeyWidth))
	sb.WriteString(` "command": `)
	sb.WriteString(strconv.Quote(command))
	if whenText != "" {
		sb.WriteString(",\n")
		sb.WriteString(dumpWhenIndent)
		sb.WriteString(`"when": `)
		sb.WriteString(strconv.Quote(whenText))
	}
	sb.WriteString(" },\n")
}

// rightPad pads s with spaces to width; longer strings are left alone.
func rightPad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
