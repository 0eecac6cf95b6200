// Package bs58 provides Bytes, a byte slice that renders as Base58 text
// in JSON, text, and database/sql.
package bs58

import "github.com/paraglidehq/bs58/base58"

// DefaultAlphabet is used by String, Parse, and the marshalling methods.
// Set it once at startup, before any values are encoded.
var DefaultAlphabet = base58.Bitcoin

// SetAlphabet sets DefaultAlphabet to the named preset.
func SetAlphabet(name string) error {
	a, err := base58.Preset(name)
	if err != nil {
		return err
	}
	DefaultAlphabet = a
	return nil
}
