// Package keybindings reads and edits the user keybindings override file.
//
// The file is a JSON array of binding objects in the same layout the
// default dump prints, so users can paste entries straight across:
//
//	[
//	    // Line comments and trailing commas are allowed.
//	    { "key": "ctrl+p", "command": "myCustomOpen" },
//	    { "key": "ctrl+k ctrl+x", "mac": "cmd+k cmd+x", "command": "trim",
//	      "when": "editorTextFocus && !editorReadonly" },
//	]
package keybindings

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/dshills/keybind/internal/input/keymap"
	"github.com/dshills/keybind/internal/log"
)

// ParseError reports an override file that is not a JSON array.
type ParseError struct {
	Path    string
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ErrNotArray is wrapped by ParseError when the document root is not an
// array.
var ErrNotArray = errors.New("keybindings file must contain a JSON array")

// ErrInvalidJSON is wrapped by ParseError when the document does not parse.
var ErrInvalidJSON = errors.New("invalid JSON")

// Read loads the override file at path. A missing file yields no entries
// and no error.
func Read(path string) ([]keymap.Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading keybindings file %s: %w", path, err)
	}
	return parse(path, data)
}

// Parse decodes override file content.
func Parse(data []byte) ([]keymap.Source, error) {
	return parse("<input>", data)
}

func parse(source string, data []byte) ([]keymap.Source, error) {
	data = pretty.Spec(data)
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	if !gjson.ValidBytes(data) {
		return nil, &ParseError{Path: source, Message: ErrInvalidJSON.Error(), Err: ErrInvalidJSON}
	}

	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return nil, &ParseError{Path: source, Message: ErrNotArray.Error(), Err: ErrNotArray}
	}

	var entries []keymap.Source
	for i, value := range root.Array() {
		src, ok := decodeEntry(value)
		if !ok {
			log.Warn("skipping keybinding entry", "file", source, "index", i, "entry", value.Raw)
			continue
		}
		entries = append(entries, src)
	}
	return entries, nil
}

// decodeEntry reads one binding object. Entries without a string key and
// command are rejected.
func decodeEntry(value gjson.Result) (keymap.Source, bool) {
	if !value.IsObject() {
		return keymap.Source{}, false
	}
	k := value.Get("key")
	cmd := value.Get("command")
	if k.Type != gjson.String || cmd.Type != gjson.String || cmd.Str == "" {
		return keymap.Source{}, false
	}
	return keymap.Source{
		Key:     k.Str,
		Mac:     value.Get("mac").String(),
		Command: cmd.Str,
		When:    value.Get("when").String(),
	}, true
}

// Append adds src to the end of the override file at path, creating the
// file and its directory when needed. The file is rewritten in a uniform
// indented layout; comments are not preserved.
func Append(path string, src keymap.Source) error {
	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("reading keybindings file %s: %w", path, err)
	}

	data = pretty.Spec(data)
	if len(bytes.TrimSpace(data)) == 0 {
		data = []byte("[]")
	}
	if !gjson.ValidBytes(data) || !gjson.ParseBytes(data).IsArray() {
		return &ParseError{Path: path, Message: ErrNotArray.Error(), Err: ErrNotArray}
	}

	entry, err := encodeEntry(src)
	if err != nil {
		return err
	}
	data, err = sjson.SetRawBytes(data, "-1", entry)
	if err != nil {
		return fmt.Errorf("appending keybinding: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating keybindings directory: %w", err)
	}
	return writeFile(path, pretty.PrettyOptions(data, &pretty.Options{Width: 100, Indent: "    "}))
}

// encodeEntry builds a binding object with fields in key, mac, command,
// when order; empty optional fields are left out.
func encodeEntry(src keymap.Source) ([]byte, error) {
	obj := []byte("{}")
	fields := []struct {
		name  string
		value string
		skip  bool
	}{
		{"key", src.Key, false},
		{"mac", src.Mac, src.Mac == ""},
		{"command", src.Command, false},
		{"when", src.When, src.When == ""},
	}

	var err error
	for _, f := range fields {
		if f.skip {
			continue
		}
		if obj, err = sjson.SetBytes(obj, f.name, f.value); err != nil {
			return nil, fmt.Errorf("encoding keybinding %s: %w", f.name, err)
		}
	}
	return obj, nil
}

// writeFile replaces path atomically through a temporary file.
func writeFile(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".keybindings-*.json")
	if err != nil {
		return fmt.Errorf("writing keybindings file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		log.CloseError("keybindings temp file", tmp.Close())
		return fmt.Errorf("writing keybindings file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing keybindings file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("writing keybindings file: %w", err)
	}
	return nil
}
