package bs58

import (
	"database/sql"
	"database/sql/driver"
	"encoding"
	"encoding/gob"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/paraglidehq/bs58/base58"
)

// Compile-time interface checks for Bytes
var (
	_ fmt.Stringer               = Bytes(nil)
	_ driver.Valuer              = Bytes(nil)
	_ sql.Scanner                = (*Bytes)(nil)
	_ encoding.TextMarshaler     = Bytes(nil)
	_ encoding.TextUnmarshaler   = (*Bytes)(nil)
	_ encoding.BinaryMarshaler   = Bytes(nil)
	_ encoding.BinaryUnmarshaler = (*Bytes)(nil)
	_ json.Marshaler             = Bytes(nil)
	_ json.Unmarshaler           = (*Bytes)(nil)
	_ gob.GobEncoder             = Bytes(nil)
	_ gob.GobDecoder             = (*Bytes)(nil)
)

// Bytes is a byte slice whose external representation is Base58 text in
// DefaultAlphabet.
type Bytes []byte

func (b Bytes) IsEmpty() bool {
	return len(b) == 0
}

func (b Bytes) String() string {
	return b.Format(DefaultAlphabet)
}

// Format returns the Base58 encoding of b in the given alphabet.
func (b Bytes) Format(a *base58.Alphabet) string {
	return a.Encode(b)
}

// MarshalText implements encoding.TextMarshaler
func (b Bytes) MarshalText() ([]byte, error) {
	return DefaultAlphabet.AppendEncode(nil, b), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (b *Bytes) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// MarshalJSON implements json.Marshaler. nil marshals to null, matching Value.
func (b Bytes) MarshalJSON() ([]byte, error) {
	if b == nil {
		return []byte("null"), nil
	}
	out := make([]byte, 0, base58.MaxEncodedLen(len(b))+2)
	out = append(out, '"')
	out = DefaultAlphabet.AppendEncode(out, b)
	return append(out, '"'), nil
}

// UnmarshalJSON implements json.Unmarshaler
func (b *Bytes) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*b = nil
		return nil
	}
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return errors.New("bs58: invalid JSON string")
	}
	return b.UnmarshalText(data[1 : len(data)-1])
}

// Value implements driver.Valuer. Bytes are stored as Base58 text; nil is NULL.
func (b Bytes) Value() (driver.Value, error) {
	if b == nil {
		return nil, nil
	}
	return b.String(), nil
}

// Scan implements sql.Scanner for database retrieval
func (b *Bytes) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*b = nil
		return nil
	case Bytes:
		*b = append(Bytes(nil), v...)
		return nil
	case []byte:
		return b.UnmarshalText(v)
	case string:
		return b.UnmarshalText([]byte(v))
	default:
		return fmt.Errorf("bs58: cannot scan %T", src)
	}
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (b Bytes) MarshalBinary() ([]byte, error) {
	return append([]byte(nil), b...), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (b *Bytes) UnmarshalBinary(data []byte) error {
	*b = append(Bytes(nil), data...)
	return nil
}

// GobEncode implements gob.GobEncoder.
func (b Bytes) GobEncode() ([]byte, error) {
	return b.MarshalBinary()
}

// GobDecode implements gob.GobDecoder.
func (b *Bytes) GobDecode(data []byte) error {
	return b.UnmarshalBinary(data)
}

// Parse decodes Base58 text in DefaultAlphabet.
func Parse(s string) (Bytes, error) {
	return ParseAlphabet(s, DefaultAlphabet)
}

// ParseAlphabet decodes Base58 text in the given alphabet.
func ParseAlphabet(s string, a *base58.Alphabet) (Bytes, error) {
	b, err := a.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("bs58: %w", err)
	}
	return b, nil
}

// Parse decodes s into the receiver.
func (b *Bytes) Parse(s string) error {
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// FromString returns the Bytes encoded by s.
// Alias for Parse.
func FromString(s string) (Bytes, error) {
	return Parse(s)
}

// FromStringOrNil returns the Bytes encoded by s.
// Returns nil on error.
func FromStringOrNil(s string) Bytes {
	b, err := Parse(s)
	if err != nil {
		return nil
	}
	return b
}

// Must panics if err is not nil
func Must(b Bytes, err error) Bytes {
	if err != nil {
		panic(err)
	}
	return b
}
