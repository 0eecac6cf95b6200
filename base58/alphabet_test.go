package base58

import (
	"errors"
	"strings"
	"testing"
)

func TestNewAlphabet(t *testing.T) {
	t.Run("Valid", testNewAlphabetValid)
	t.Run("Length", testNewAlphabetLength)
	t.Run("Duplicate", testNewAlphabetDuplicate)
	t.Run("NonPrintable", testNewAlphabetNonPrintable)
}

func testNewAlphabetValid(t *testing.T) {
	s := Bitcoin.String()
	a, err := NewAlphabet(s)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < Radix; i++ {
		c := a.Char(i)
		if c != s[i] {
			t.Errorf("Char(%d) = %q, want %q", i, c, s[i])
		}
		if got := a.Index(c); got != i {
			t.Errorf("Index(%q) = %d, want %d", c, got, i)
		}
	}
}

func testNewAlphabetLength(t *testing.T) {
	for _, s := range []string{"", "123", Bitcoin.String()[:57], Bitcoin.String() + "!"} {
		_, err := NewAlphabet(s)
		if !errors.Is(err, ErrInvalidAlphabetLength) {
			t.Errorf("NewAlphabet(len %d): got %v, want ErrInvalidAlphabetLength", len(s), err)
		}
	}
}

func testNewAlphabetDuplicate(t *testing.T) {
	s := "1" + Bitcoin.String()[:57]
	_, err := NewAlphabet(s)
	if !errors.Is(err, ErrDuplicateCharacter) {
		t.Fatalf("NewAlphabet(%q): got %v, want ErrDuplicateCharacter", s, err)
	}
	if !strings.Contains(err.Error(), `'1' at 0 and 1`) {
		t.Errorf("error %q does not name the duplicate positions", err)
	}
}

func testNewAlphabetNonPrintable(t *testing.T) {
	for _, c := range []byte{' ', '\n', 0x7f, 0xc3} {
		s := string([]byte{c}) + Bitcoin.String()[1:]
		_, err := NewAlphabet(s)
		if !errors.Is(err, ErrInvalidAlphabetCharacter) {
			t.Errorf("NewAlphabet with %q: got %v, want ErrInvalidAlphabetCharacter", c, err)
		}
	}
}

func TestMustNewAlphabetPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustNewAlphabet(short): want panic")
		}
	}()
	MustNewAlphabet("abc")
}

func TestIndexInvalid(t *testing.T) {
	for _, c := range []byte{'0', 'O', 'I', 'l', ' ', '\t', '+', '/', 0, 0x7f, 0x80, 0xff} {
		if got := Bitcoin.Index(c); got != -1 {
			t.Errorf("Bitcoin.Index(%q) = %d, want -1", c, got)
		}
	}
}

func TestPreset(t *testing.T) {
	tests := []struct {
		name string
		want *Alphabet
	}{
		{"", Bitcoin},
		{"bitcoin", Bitcoin},
		{"Bitcoin", Bitcoin},
		{"monero", Monero},
		{"RIPPLE", Ripple},
		{"flickr", Flickr},
	}
	for _, tt := range tests {
		got, err := Preset(tt.name)
		if err != nil {
			t.Fatalf("Preset(%q): %v", tt.name, err)
		}
		if got != tt.want {
			t.Errorf("Preset(%q) = %s, want %s", tt.name, got, tt.want)
		}
	}

	if _, err := Preset("base64"); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("Preset(base64): got %v, want ErrUnknownPreset", err)
	}
}

func TestPresetDeterministic(t *testing.T) {
	for _, name := range PresetNames() {
		a, _ := Preset(name)
		b, err := NewAlphabet(a.String())
		if err != nil {
			t.Fatalf("NewAlphabet(%s): %v", name, err)
		}
		if *a != *b {
			t.Errorf("rebuilding %s yields a different table", name)
		}
	}
}

func TestPresetNames(t *testing.T) {
	got := strings.Join(PresetNames(), ",")
	if want := "bitcoin,flickr,monero,ripple"; got != want {
		t.Errorf("PresetNames() = %s, want %s", got, want)
	}
}
