package keymap

// Default weights. Lower weights register first, so bindings in a later
// group win over an equal binding in an earlier one.
const (
	WeightEditorCore = 0
	WeightEditor     = 100
	WeightWorkbench  = 200
)

// DefaultSource returns the built-in bindings. Key is the non-Mac text;
// Mac, when set, is used on macOS instead.
func DefaultSource() []Source {
	return []Source{
		// Clipboard and history
		{Key: "ctrl+z", Mac: "cmd+z", Command: "undo", Weight: WeightEditorCore},
		{Key: "ctrl+y", Mac: "cmd+shift+z", Command: "redo", Weight: WeightEditorCore},
		{Key: "ctrl+shift+z", Mac: "cmd+shift+z", Command: "redo", Weight: WeightEditorCore},
		{Key: "ctrl+x", Mac: "cmd+x", Command: "editor.action.clipboardCutAction", Weight: WeightEditorCore},
		{Key: "ctrl+c", Mac: "cmd+c", Command: "editor.action.clipboardCopyAction", Weight: WeightEditorCore},
		{Key: "ctrl+v", Mac: "cmd+v", Command: "editor.action.clipboardPasteAction", Weight: WeightEditorCore},
		{Key: "ctrl+a", Mac: "cmd+a", Command: "editor.action.selectAll", Weight: WeightEditorCore},

		// Cursor movement
		{Key: "ctrl+home", Mac: "cmd+uparrow", Command: "cursorTop", When: "editorTextFocus", Weight: WeightEditorCore},
		{Key: "ctrl+end", Mac: "cmd+downarrow", Command: "cursorBottom", When: "editorTextFocus", Weight: WeightEditorCore},
		{Key: "ctrl+g", Command: "workbench.action.gotoLine", Weight: WeightEditorCore},
		{Key: "ctrl+shift+\\", Mac: "cmd+shift+\\", Command: "editor.action.jumpToBracket", When: "editorTextFocus", Weight: WeightEditorCore},

		// Editing
		{Key: "ctrl+/", Mac: "cmd+/", Command: "editor.action.commentLine", When: "editorTextFocus && !editorReadonly", Weight: WeightEditor},
		{Key: "ctrl+k ctrl+c", Mac: "cmd+k cmd+c", Command: "editor.action.addCommentLine", When: "editorTextFocus && !editorReadonly", Weight: WeightEditor},
		{Key: "ctrl+k ctrl+u", Mac: "cmd+k cmd+u", Command: "editor.action.removeCommentLine", When: "editorTextFocus && !editorReadonly", Weight: WeightEditor},
		{Key: "ctrl+shift+k", Mac: "cmd+shift+k", Command: "editor.action.deleteLines", When: "editorTextFocus && !editorReadonly", Weight: WeightEditor},
		{Key: "alt+uparrow", Command: "editor.action.moveLinesUpAction", When: "editorTextFocus && !editorReadonly", Weight: WeightEditor},
		{Key: "alt+downarrow", Command: "editor.action.moveLinesDownAction", When: "editorTextFocus && !editorReadonly", Weight: WeightEditor},
		{Key: "ctrl+]", Mac: "cmd+]", Command: "editor.action.indentLines", When: "editorTextFocus && !editorReadonly", Weight: WeightEditor},
		{Key: "ctrl+[", Mac: "cmd+[", Command: "editor.action.outdentLines", When: "editorTextFocus && !editorReadonly", Weight: WeightEditor},
		{Key: "ctrl+shift+i", Mac: "alt+shift+f", Command: "editor.action.formatDocument", When: "editorTextFocus && !editorReadonly", Weight: WeightEditor},
		{Key: "ctrl+k ctrl+f", Mac: "cmd+k cmd+f", Command: "editor.action.formatSelection", When: "editorHasSelection && !editorReadonly", Weight: WeightEditor},
		{Key: "f2", Command: "editor.action.rename", When: "editorTextFocus && !editorReadonly", Weight: WeightEditor},
		{Key: "f12", Command: "editor.action.revealDefinition", When: "editorTextFocus", Weight: WeightEditor},
		{Key: "shift+f12", Command: "editor.action.goToReferences", When: "editorTextFocus", Weight: WeightEditor},
		{Key: "ctrl+space", Mac: "ctrl+space", Command: "editor.action.triggerSuggest", When: "editorTextFocus && !editorReadonly", Weight: WeightEditor},
		{Key: "escape", Command: "closeFindWidget", When: "findWidgetVisible", Weight: WeightEditor},
		{Key: "escape", Command: "hideSuggestWidget", When: "suggestWidgetVisible", Weight: WeightEditor},

		// Search
		{Key: "ctrl+f", Mac: "cmd+f", Command: "actions.find", Weight: WeightEditor},
		{Key: "ctrl+h", Mac: "alt+cmd+f", Command: "editor.action.startFindReplaceAction", Weight: WeightEditor},
		{Key: "f3", Mac: "cmd+g", Command: "editor.action.nextMatchFindAction", When: "editorFocus", Weight: WeightEditor},
		{Key: "shift+f3", Mac: "cmd+shift+g", Command: "editor.action.previousMatchFindAction", When: "editorFocus", Weight: WeightEditor},

		// Workbench
		{Key: "ctrl+p", Mac: "cmd+p", Command: "workbench.action.quickOpen", Weight: WeightWorkbench},
		{Key: "ctrl+shift+p", Mac: "cmd+shift+p", Command: "workbench.action.showCommands", Weight: WeightWorkbench},
		{Key: "f1", Command: "workbench.action.showCommands", Weight: WeightWorkbench},
		{Key: "ctrl+s", Mac: "cmd+s", Command: "workbench.action.files.save", Weight: WeightWorkbench},
		{Key: "ctrl+k s", Mac: "cmd+alt+s", Command: "workbench.action.files.saveAll", Weight: WeightWorkbench},
		{Key: "ctrl+n", Mac: "cmd+n", Command: "workbench.action.files.newUntitledFile", Weight: WeightWorkbench},
		{Key: "ctrl+o", Mac: "cmd+o", Command: "workbench.action.files.openFile", Weight: WeightWorkbench},
		{Key: "ctrl+w", Mac: "cmd+w", Command: "workbench.action.closeActiveEditor", Weight: WeightWorkbench},
		{Key: "ctrl+k ctrl+w", Mac: "cmd+k cmd+w", Command: "workbench.action.closeAllEditors", Weight: WeightWorkbench},
		{Key: "ctrl+tab", Mac: "ctrl+tab", Command: "workbench.action.nextEditor", Weight: WeightWorkbench},
		{Key: "ctrl+shift+tab", Mac: "ctrl+shift+tab", Command: "workbench.action.previousEditor", Weight: WeightWorkbench},
		{Key: "ctrl+b", Mac: "cmd+b", Command: "workbench.action.toggleSidebarVisibility", Weight: WeightWorkbench},
		{Key: "ctrl+`", Mac: "ctrl+`", Command: "workbench.action.terminal.toggleTerminal", Weight: WeightWorkbench},
		{Key: "ctrl+,", Mac: "cmd+,", Command: "workbench.action.openSettings", Weight: WeightWorkbench},
		{Key: "ctrl+k ctrl+s", Mac: "cmd+k cmd+s", Command: "workbench.action.openKeybindings", Weight: WeightWorkbench},
		{Key: "ctrl+k ctrl+t", Mac: "cmd+k cmd+t", Command: "workbench.action.selectTheme", Weight: WeightWorkbench},
		{Key: "ctrl+k z", Mac: "cmd+k z", Command: "workbench.action.toggleZenMode", Weight: WeightWorkbench},
		{Key: "ctrl+=", Mac: "cmd+=", Command: "workbench.action.zoomIn", Weight: WeightWorkbench},
		{Key: "ctrl+-", Mac: "cmd+-", Command: "workbench.action.zoomOut", Weight: WeightWorkbench},
		{Key: "f11", Mac: "ctrl+cmd+f", Command: "workbench.action.toggleFullScreen", Weight: WeightWorkbench},
		{Key: "ctrl+q", Mac: "cmd+q", Command: "workbench.action.quit", Weight: WeightWorkbench},
	}
}
