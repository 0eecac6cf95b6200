package base58

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

var (
	// ErrInvalidCharacter matches every *CharacterError.
	ErrInvalidCharacter = errors.New("base58: invalid character")

	// ErrBufferTooSmall is returned by EncodeInto and DecodeInto when dst cannot hold the result.
	ErrBufferTooSmall = errors.New("base58: buffer too small")

	// ErrChecksum is returned by CheckDecode when the trailing checksum does not match.
	ErrChecksum = errors.New("base58: checksum mismatch")

	// ErrInvalidFormat is returned by CheckDecode when the input is too short to hold
	// a version byte and a checksum.
	ErrInvalidFormat = errors.New("base58: invalid check format")
)

// CharacterError reports a character that is not part of the alphabet.
type CharacterError struct {
	Char rune // the offending character, utf8.RuneError if it is not valid UTF-8
	Pos  int  // byte offset of Char in the input
}

func (e *CharacterError) Error() string {
	if e.Char < utf8.RuneSelf {
		return fmt.Sprintf("base58: invalid character %q at position %d", e.Char, e.Pos)
	}
	return fmt.Sprintf("base58: invalid non-ASCII character %q at position %d", e.Char, e.Pos)
}

// Is reports whether target is ErrInvalidCharacter.
func (e *CharacterError) Is(target error) bool {
	return target == ErrInvalidCharacter
}

func invalidChar(s string, pos int) error {
	c := rune(s[pos])
	if c >= utf8.RuneSelf {
		c, _ = utf8.DecodeRuneInString(s[pos:])
	}
	return &CharacterError{Char: c, Pos: pos}
}
