// Package base58 provides Base58 encoding and decoding for arbitrary byte slices.
// The default alphabet is the Bitcoin one, which excludes 0, O, I, and l to avoid ambiguity.
package base58

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Radix is the number of symbols in every alphabet.
const Radix = 58

var (
	// ErrInvalidAlphabetLength is returned when a custom alphabet is not exactly 58 bytes.
	ErrInvalidAlphabetLength = errors.New("base58: alphabet must be 58 characters")

	// ErrDuplicateCharacter is returned when a custom alphabet repeats a character.
	ErrDuplicateCharacter = errors.New("base58: duplicate alphabet character")

	// ErrInvalidAlphabetCharacter is returned when a custom alphabet holds a
	// byte outside printable ASCII.
	ErrInvalidAlphabetCharacter = errors.New("base58: alphabet character is not printable ASCII")

	// ErrUnknownPreset is returned by Preset for names it does not know.
	ErrUnknownPreset = errors.New("base58: unknown alphabet preset")
)

// Alphabet maps the 58 digit values to characters and back.
// An Alphabet is immutable once built and safe for concurrent use.
type Alphabet struct {
	encode [Radix]byte
	decode [128]int8 // -1 marks characters outside the alphabet
}

// Built-in alphabets.
var (
	Bitcoin = MustNewAlphabet("123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz")

	// Monero uses the Bitcoin characters.
	Monero = MustNewAlphabet("123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz")

	Ripple = MustNewAlphabet("rpshnaf39wBUDNEGHJKLM4PQRST7VWXYZ2bcdeCg65jkm8oFqi1tuvAxyz")
	Flickr = MustNewAlphabet("123456789abcdefghijkmnopqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ")
)

var presets = map[string]*Alphabet{
	"bitcoin": Bitcoin,
	"monero":  Monero,
	"ripple":  Ripple,
	"flickr":  Flickr,
}

// NewAlphabet builds an Alphabet from 58 distinct printable ASCII characters.
// The character at index 0 is the zero-symbol.
func NewAlphabet(s string) (*Alphabet, error) {
	if len(s) != Radix {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidAlphabetLength, len(s))
	}

	a := new(Alphabet)
	for i := range a.decode {
		a.decode[i] = -1
	}
	for i := 0; i < Radix; i++ {
		c := s[i]
		if c <= ' ' || c > '~' {
			return nil, fmt.Errorf("%w: %q at %d", ErrInvalidAlphabetCharacter, c, i)
		}
		if prev := a.decode[c]; prev >= 0 {
			return nil, fmt.Errorf("%w: %q at %d and %d", ErrDuplicateCharacter, c, prev, i)
		}
		a.encode[i] = c
		a.decode[c] = int8(i)
	}
	return a, nil
}

// MustNewAlphabet is like NewAlphabet but panics on error.
func MustNewAlphabet(s string) *Alphabet {
	a, err := NewAlphabet(s)
	if err != nil {
		panic(err)
	}
	return a
}

// Preset returns the built-in alphabet with the given name.
// The name is case-insensitive; the empty name selects Bitcoin.
func Preset(name string) (*Alphabet, error) {
	if name == "" {
		return Bitcoin, nil
	}
	a, ok := presets[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return a, nil
}

// PresetNames returns the names accepted by Preset, sorted.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Char returns the character for digit value i. It panics if i is not in [0, 58).
func (a *Alphabet) Char(i int) byte {
	return a.encode[i]
}

// Index returns the digit value of c, or -1 if c is not in the alphabet.
func (a *Alphabet) Index(c byte) int {
	if c >= 128 {
		return -1
	}
	return int(a.decode[c])
}

// String returns the 58 characters of the alphabet in digit order.
func (a *Alphabet) String() string {
	return string(a.encode[:])
}
