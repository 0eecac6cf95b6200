package base58

import (
	"bytes"

	"github.com/minio/sha256-simd"
)

// checksumLen is the number of double SHA-256 bytes appended by CheckEncode.
const checksumLen = 4

func checksum(b []byte) [checksumLen]byte {
	h := sha256.Sum256(b)
	h = sha256.Sum256(h[:])
	var sum [checksumLen]byte
	copy(sum[:], h[:checksumLen])
	return sum
}

// CheckEncode encodes payload in Base58Check form using the Bitcoin alphabet.
func CheckEncode(payload []byte, version byte) string {
	return Bitcoin.CheckEncode(payload, version)
}

// CheckDecode decodes Base58Check text using the Bitcoin alphabet.
func CheckDecode(s string) ([]byte, byte, error) {
	return Bitcoin.CheckDecode(s)
}

// CheckEncode prepends version to payload, appends the first four bytes of
// the double SHA-256 of both and returns the Base58 encoding of the result.
func (a *Alphabet) CheckEncode(payload []byte, version byte) string {
	b := make([]byte, 0, 1+len(payload)+checksumLen)
	b = append(b, version)
	b = append(b, payload...)
	sum := checksum(b)
	b = append(b, sum[:]...)
	return a.Encode(b)
}

// CheckDecode reverses CheckEncode, verifying the checksum.
func (a *Alphabet) CheckDecode(s string) (payload []byte, version byte, err error) {
	b, err := a.Decode(s)
	if err != nil {
		return nil, 0, err
	}
	if len(b) < 1+checksumLen {
		return nil, 0, ErrInvalidFormat
	}
	body := b[:len(b)-checksumLen]
	sum := checksum(body)
	if !bytes.Equal(sum[:], b[len(b)-checksumLen:]) {
		return nil, 0, ErrChecksum
	}
	return body[1:], body[0], nil
}
