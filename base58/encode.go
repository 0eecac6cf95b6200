package base58

import "slices"

const (
	// limbRadix is 58^5, the largest power of 58 that fits in 32 bits.
	limbRadix  = Radix * Radix * Radix * Radix * Radix
	limbDigits = 5
	// chunkBytes input bytes are folded into the limbs per pass.
	chunkBytes = 4
)

// MaxEncodedLen returns an upper bound on the length of the encoding of n bytes.
func MaxEncodedLen(n int) int {
	return n*138/100 + 1
}

// Encode returns the Base58 encoding of src using the Bitcoin alphabet.
func Encode(src []byte) string {
	return Bitcoin.Encode(src)
}

// Encode returns the Base58 encoding of src.
// Each leading zero byte of src becomes one zero-symbol.
func (a *Alphabet) Encode(src []byte) string {
	if len(src) == 0 {
		return ""
	}
	return string(a.AppendEncode(nil, src))
}

// AppendEncode appends the Base58 encoding of src to dst and returns the extended slice.
func (a *Alphabet) AppendEncode(dst, src []byte) []byte {
	zeros := 0
	for zeros < len(src) && src[zeros] == 0 {
		zeros++
	}

	// Little-endian limbs in radix 58^5 holding the value of src[zeros:].
	rest := src[zeros:]
	limbs := make([]uint32, 0, MaxEncodedLen(len(rest))/limbDigits+1)
	for len(rest) > 0 {
		n := min(chunkBytes, len(rest))
		var carry uint64
		for _, b := range rest[:n] {
			carry = carry<<8 | uint64(b)
		}
		rest = rest[n:]

		shift := uint(8 * n)
		for j := range limbs {
			carry += uint64(limbs[j]) << shift
			limbs[j] = uint32(carry % limbRadix)
			carry /= limbRadix
		}
		for carry > 0 {
			limbs = append(limbs, uint32(carry%limbRadix))
			carry /= limbRadix
		}
	}

	dst = slices.Grow(dst, zeros+len(limbs)*limbDigits)
	for range zeros {
		dst = append(dst, a.encode[0])
	}

	// Digits come out least significant first and are reversed in place.
	start := len(dst)
	for j, limb := range limbs {
		top := j == len(limbs)-1
		for k := 0; k < limbDigits; k++ {
			if top && limb == 0 {
				break
			}
			dst = append(dst, a.encode[limb%Radix])
			limb /= Radix
		}
	}
	slices.Reverse(dst[start:])
	return dst
}

// EncodeInto writes the Base58 encoding of src into dst and returns the
// number of bytes written. It returns ErrBufferTooSmall, leaving dst
// untouched, if dst is too short; MaxEncodedLen gives a safe size.
// The output is built in dst itself when dst has room for it.
func (a *Alphabet) EncodeInto(dst, src []byte) (int, error) {
	return fitInto(dst, a.AppendEncode(dst[:0:len(dst)], src))
}

// fitInto reports how much of dst out occupies. out was appended to
// dst[:0:len(dst)], so it either shares dst's array or was reallocated
// because the reservation did not fit.
func fitInto(dst, out []byte) (int, error) {
	if len(out) > len(dst) {
		return 0, ErrBufferTooSmall
	}
	if len(out) > 0 && &out[0] != &dst[0] {
		copy(dst, out)
	}
	return len(out), nil
}
