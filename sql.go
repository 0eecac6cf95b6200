package bs58

import (
	"database/sql"
	"database/sql/driver"
	"encoding"
	"encoding/json"
)

// NullBytes can be used with the standard sql package to represent a
// Bytes value that can be NULL in the database.
type NullBytes struct {
	Bytes Bytes
	Valid bool
}

// Compile-time interface checks for NullBytes
var (
	_ driver.Valuer            = NullBytes{}
	_ sql.Scanner              = (*NullBytes)(nil)
	_ json.Marshaler           = NullBytes{}
	_ json.Unmarshaler         = (*NullBytes)(nil)
	_ encoding.TextMarshaler   = NullBytes{}
	_ encoding.TextUnmarshaler = (*NullBytes)(nil)
)

// Value implements the driver.Valuer interface.
func (n NullBytes) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Bytes.String(), nil
}

// Scan implements the sql.Scanner interface.
func (n *NullBytes) Scan(src interface{}) error {
	if src == nil {
		n.Bytes, n.Valid = nil, false
		return nil
	}

	err := n.Bytes.Scan(src)
	n.Valid = (err == nil)
	return err
}

var nullJSON = []byte("null")

// MarshalJSON marshals the NullBytes as null or the nested Bytes as a string.
func (n NullBytes) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return nullJSON, nil
	}
	return n.Bytes.MarshalJSON()
}

// UnmarshalJSON unmarshals a NullBytes.
func (n *NullBytes) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		n.Bytes, n.Valid = nil, false
		return nil
	}
	err := n.Bytes.UnmarshalJSON(b)
	n.Valid = (err == nil)
	return err
}

// MarshalText implements encoding.TextMarshaler.
func (n NullBytes) MarshalText() ([]byte, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Bytes.MarshalText()
}

// UnmarshalText implements encoding.TextUnmarshaler.
// Empty text is NULL.
func (n *NullBytes) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		n.Bytes, n.Valid = nil, false
		return nil
	}
	err := n.Bytes.UnmarshalText(b)
	n.Valid = (err == nil)
	return err
}
