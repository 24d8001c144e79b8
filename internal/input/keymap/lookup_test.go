package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dshills/keybind/internal/input/key"
)

func TestLookupKeybindingNewestFirst(t *testing.T) {
	table := buildLinux(
		[]Source{
			{Key: "ctrl+shift+p", Command: "showCommands"},
			{Key: "f1", Command: "showCommands"},
		},
		[]Source{{Key: "ctrl+alt+p", Command: "showCommands"}},
	)

	assert.Equal(t, []string{"ctrl+alt+p", "f1", "ctrl+shift+p"}, table.LookupText("showCommands"))
}

func TestLookupKeybindingUnknownCommand(t *testing.T) {
	table := buildLinux(DefaultSource(), nil)
	assert.Empty(t, table.LookupKeybinding("no.such.command"))
	assert.NotNil(t, table.LookupKeybinding("no.such.command"))
}

func TestLookupKeybindingRemovesDuplicates(t *testing.T) {
	table := BuildFromSource(DefaultSource(), nil, WithPlatform(key.Mac))
	assert.Equal(t, []key.Chord{key.Read("cmd+shift+z", key.Mac)}, table.LookupKeybinding("redo"))
	assert.Equal(t, []string{"shift+cmd+z"}, table.LookupText("redo"))
	assert.Len(t, table.Items("redo"), 2)
}

func TestShadowedSorted(t *testing.T) {
	table := buildLinux(
		[]Source{
			{Key: "ctrl+p", Command: "quickOpen"},
			{Key: "ctrl+e", Command: "quickOpen"},
		},
		[]Source{
			{Key: "ctrl+p", Command: "other"},
			{Key: "ctrl+e", Command: "other"},
		},
	)

	shadowed := table.Shadowed("quickOpen")
	assert.Equal(t, []key.Chord{chord(t, "ctrl+e"), chord(t, "ctrl+p")}, shadowed)
	assert.Empty(t, table.Shadowed("other"))
	assert.Len(t, table.Diagnostics(), 2)
}

func TestCommandsSorted(t *testing.T) {
	table := buildLinux([]Source{
		{Key: "ctrl+b", Command: "b"},
		{Key: "ctrl+a", Command: "a"},
		{Key: "ctrl+c", Command: "c"},
	}, nil)
	assert.Equal(t, []string{"a", "b", "c"}, table.Commands())
}
