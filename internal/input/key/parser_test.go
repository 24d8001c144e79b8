package key

import (
	"testing"
)

func TestReadSinglePress(t *testing.T) {
	tests := []struct {
		text     string
		platform Platform
		want     Chord
	}{
		{"a", Linux, Encode(ModNone, KeyA)},
		{"A", Linux, Encode(ModNone, KeyA)},
		{"  f5  ", Linux, Encode(ModNone, F5)},
		{"ctrl+s", Linux, Encode(ModCtrlCmd, KeyS)},
		{"ctrl-s", Linux, Encode(ModCtrlCmd, KeyS)},
		{"Ctrl+Shift+P", Linux, Encode(ModCtrlCmd|ModShift, KeyP)},
		{"alt+f4", Windows, Encode(ModAlt, F4)},
		{"win+e", Windows, Encode(ModWinCtrl, KeyE)},
		{"meta+e", Linux, Encode(ModWinCtrl, KeyE)},
		{"cmd+e", Linux, Encode(ModWinCtrl, KeyE)},
		{"ctrl+up", Linux, Encode(ModCtrlCmd, UpArrow)},
		{"shift+left", Linux, Encode(ModShift, LeftArrow)},
		{"ctrl+-", Linux, Encode(ModCtrlCmd, Minus)},
		{"ctrl+=", Linux, Encode(ModCtrlCmd, Equal)},
		{"-", Linux, Encode(ModNone, Minus)},
		{"shift", Linux, Encode(ModNone, Shift)},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := Read(tt.text, tt.platform); got != tt.want {
				t.Errorf("Read(%q, %v) = %#x, want %#x", tt.text, tt.platform, got, tt.want)
			}
		})
	}
}

func TestReadMacRemapping(t *testing.T) {
	tests := []struct {
		text string
		want Chord
	}{
		{"cmd+s", Encode(ModCtrlCmd, KeyS)},
		{"meta+s", Encode(ModCtrlCmd, KeyS)},
		{"win+s", Encode(ModCtrlCmd, KeyS)},
		{"ctrl+s", Encode(ModWinCtrl, KeyS)},
		{"ctrl+cmd+s", Encode(ModWinCtrl|ModCtrlCmd, KeyS)},
	}

	for _, tt := range tests {
		if got := Read(tt.text, Mac); got != tt.want {
			t.Errorf("Read(%q, Mac) = %#x, want %#x", tt.text, got, tt.want)
		}
	}
}

func TestReadChord(t *testing.T) {
	got := Read("ctrl+k ctrl+s", Linux)
	want := NewChord(Encode(ModCtrlCmd, KeyK), Encode(ModCtrlCmd, KeyS))
	if got != want {
		t.Fatalf("Read chord = %#x, want %#x", got, want)
	}

	if got := Read("ctrl+k   ctrl+s", Linux); got != want {
		t.Errorf("extra spaces: got %#x, want %#x", got, want)
	}
	if got := Read("ctrl+k ", Linux); got != Encode(ModCtrlCmd, KeyK) {
		t.Errorf("trailing space should read as a single press, got %#x", got)
	}
}

func TestReadChordWithUnknownSecondPress(t *testing.T) {
	want := Encode(ModCtrlCmd, KeyK)
	for _, text := range []string{"ctrl+k nosuchkey", "ctrl+k ctrl+"} {
		if got := Read(text, Linux); got != want {
			t.Errorf("Read(%q) = %#x, want first press %#x", text, got, want)
		}
	}
}

func TestReadUnbound(t *testing.T) {
	tests := []string{
		"",
		"   ",
		"ctrl+",
		"ctrl+nosuchkey",
		"hyper+a",
		"a b c",
		"ctrl++",
	}

	for _, text := range tests {
		if got := Read(text, Linux); got != None {
			t.Errorf("Read(%q) = %#x, want None", text, got)
		}
	}
}

func TestWrite(t *testing.T) {
	tests := []struct {
		chord    Chord
		platform Platform
		want     string
	}{
		{None, Linux, ""},
		{Encode(ModNone, KeyA), Linux, "a"},
		{Encode(ModCtrlCmd|ModShift, KeyP), Linux, "ctrl+shift+p"},
		{Encode(ModAlt|ModShift|ModCtrlCmd|ModWinCtrl, F1), Linux, "ctrl+shift+alt+win+f1"},
		{Encode(ModCtrlCmd, KeyS), Mac, "cmd+s"},
		{Encode(ModWinCtrl, KeyS), Mac, "ctrl+s"},
		{Encode(ModWinCtrl|ModCtrlCmd|ModShift, KeyS), Mac, "ctrl+shift+cmd+s"},
		{NewChord(Encode(ModCtrlCmd, KeyK), Encode(ModCtrlCmd, KeyS)), Linux, "ctrl+k ctrl+s"},
		{NewChord(Encode(ModCtrlCmd, KeyK), Encode(ModNone, F12)), Mac, "cmd+k f12"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := Write(tt.chord, tt.platform); got != tt.want {
				t.Errorf("Write(%#x, %v) = %q, want %q", tt.chord, tt.platform, got, tt.want)
			}
		})
	}
}

func TestTextRoundTrip(t *testing.T) {
	inputs := []string{
		"a",
		"ctrl+s",
		"shift+alt+f10",
		"ctrl+k ctrl+s",
		"ctrl+k shift+uparrow",
		"meta+e",
		"cmd+shift+p",
		"ctrl+cmd+win+alt+shift+numpad_add",
		"ctrl+\\",
		"ctrl+`",
		"escape escape",
		"up",
	}

	for _, p := range []Platform{Linux, Windows, Mac} {
		for _, in := range inputs {
			first := Read(in, p)
			if first == None {
				t.Fatalf("Read(%q, %v) = None", in, p)
			}
			again := Read(Write(first, p), p)
			if again != first {
				t.Errorf("%v: Read(Write(Read(%q))) = %#x, want %#x (text %q)",
					p, in, again, first, Write(first, p))
			}
		}
	}
}

func TestNormalize(t *testing.T) {
	if got := Normalize("Shift+Ctrl+P", Linux); got != "ctrl+shift+p" {
		t.Errorf("Normalize = %q, want %q", got, "ctrl+shift+p")
	}
	if got := Normalize("ctrl+up", Linux); got != "ctrl+uparrow" {
		t.Errorf("Normalize = %q, want %q", got, "ctrl+uparrow")
	}
	if got := Normalize("bogus", Linux); got != "" {
		t.Errorf("Normalize(bogus) = %q, want empty", got)
	}
}

func TestParsePlatform(t *testing.T) {
	tests := []struct {
		in      string
		want    Platform
		wantErr bool
	}{
		{"mac", Mac, false},
		{"Darwin", Mac, false},
		{"linux", Linux, false},
		{"windows", Windows, false},
		{"auto", CurrentPlatform(), false},
		{"", CurrentPlatform(), false},
		{"amiga", Linux, true},
	}

	for _, tt := range tests {
		got, err := ParsePlatform(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePlatform(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParsePlatform(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestPlatformModifiers(t *testing.T) {
	if Linux.Ctrl() != ModCtrlCmd || Linux.Meta() != ModWinCtrl {
		t.Errorf("linux modifiers = %v, %v", Linux.Ctrl(), Linux.Meta())
	}
	if Mac.Ctrl() != ModWinCtrl || Mac.Meta() != ModCtrlCmd {
		t.Errorf("mac modifiers = %v, %v", Mac.Ctrl(), Mac.Meta())
	}
}
