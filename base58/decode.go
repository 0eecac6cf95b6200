package base58

// chunkDigits input characters are folded into the limbs per pass; 58^5 < 2^32.
const chunkDigits = 5

// MaxDecodedLen returns an upper bound on the length of the bytes decoded
// from n characters. Every leading zero-symbol decodes to a byte of its own.
func MaxDecodedLen(n int) int {
	return n
}

// Decode decodes Base58 text using the Bitcoin alphabet.
func Decode(s string) ([]byte, error) {
	return Bitcoin.Decode(s)
}

// Decode returns the bytes represented by the Base58 text s.
// A character outside the alphabet yields a *CharacterError and no data.
func (a *Alphabet) Decode(s string) ([]byte, error) {
	if len(s) == 0 {
		return []byte{}, nil
	}
	b, err := a.AppendDecode(make([]byte, 0, len(s)), s)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// AppendDecode appends the bytes represented by s to dst and returns the
// extended slice. On error dst is returned unchanged along with the error.
func (a *Alphabet) AppendDecode(dst []byte, s string) ([]byte, error) {
	zero := a.encode[0]
	zeros := 0
	for zeros < len(s) && s[zeros] == zero {
		zeros++
	}

	// Little-endian 32-bit limbs holding the value of s[zeros:].
	limbs := make([]uint32, 0, (len(s)-zeros)*733/1000/4+1)
	for i := zeros; i < len(s); {
		var carry, mul uint64 = 0, 1
		for n := 0; n < chunkDigits && i < len(s); n, i = n+1, i+1 {
			d := a.Index(s[i])
			if d < 0 {
				return dst, invalidChar(s, i)
			}
			carry = carry*Radix + uint64(d)
			mul *= Radix
		}

		for j := range limbs {
			carry += uint64(limbs[j]) * mul
			limbs[j] = uint32(carry)
			carry >>= 32
		}
		for carry > 0 {
			limbs = append(limbs, uint32(carry))
			carry >>= 32
		}
	}

	n := len(dst)
	dst = append(dst, make([]byte, zeros+len(limbs)*4)...)
	out := dst[n+zeros:]
	for j, limb := range limbs {
		k := len(out) - 4*j
		out[k-1] = byte(limb)
		out[k-2] = byte(limb >> 8)
		out[k-3] = byte(limb >> 16)
		out[k-4] = byte(limb >> 24)
	}

	// Drop the high zero bytes of the most significant limb.
	pad := 0
	for pad < len(out) && out[pad] == 0 {
		pad++
	}
	copy(out, out[pad:])
	return dst[:len(dst)-pad], nil
}

// DecodeInto writes the bytes represented by s into dst and returns the
// number of bytes written. It returns ErrBufferTooSmall, leaving dst
// untouched, if dst is too short; MaxDecodedLen gives a safe size.
// The output is built in dst itself when dst has room for it.
func (a *Alphabet) DecodeInto(dst []byte, s string) (int, error) {
	out, err := a.AppendDecode(dst[:0:len(dst)], s)
	if err != nil {
		return 0, err
	}
	return fitInto(dst, out)
}
