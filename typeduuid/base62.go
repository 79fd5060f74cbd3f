package typeduuid

import (
	"fmt"
	"math"
	"math/bits"
)

// Base62 digit table, digit-value order: 0-9, A-Z, a-z.
const base62Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// maxBase62Digits is the length of 2^128-1 in base62.
const maxBase62Digits = 22

// maxHiBeforeShift is the largest high word that can be multiplied by 62
// without overflowing 128 bits.
const maxHiBeforeShift = math.MaxUint64 / 62

var base62Values [256]int8

func init() {
	for i := range base62Values {
		base62Values[i] = -1
	}
	for i := 0; i < len(base62Alphabet); i++ {
		base62Values[base62Alphabet[i]] = int8(i)
	}
}

// encodeBase62 converts a 128-bit unsigned integer, given as two 64-bit
// halves, to its minimal-length base62 representation. Zero encodes as "0".
func encodeBase62(hi, lo uint64) string {
	if hi == 0 && lo == 0 {
		return "0"
	}

	var buf [maxBase62Digits]byte
	i := len(buf)
	for hi != 0 || lo != 0 {
		var rem uint64
		if hi == 0 {
			rem = lo % 62
			lo /= 62
		} else {
			// Long division of the 128-bit value by 62: divide the high
			// word first, then fold its remainder into the low word.
			qhi := hi / 62
			r := hi % 62
			qlo, rlo := bits.Div64(r, lo, 62)
			hi, lo, rem = qhi, qlo, rlo
		}
		i--
		buf[i] = base62Alphabet[rem]
	}

	return string(buf[i:])
}

// decodeBase62 converts a base62 string back to a 128-bit unsigned integer.
// It fails on empty input, on bytes outside the alphabet, and on values
// that do not fit in 128 bits.
func decodeBase62(s string) (hi, lo uint64, err error) {
	if s == "" {
		return 0, 0, fmt.Errorf("%w: empty input", ErrMalformedShortEncoding)
	}

	for i := 0; i < len(s); i++ {
		d := base62Values[s[i]]
		if d < 0 {
			return 0, 0, fmt.Errorf("%w: invalid character %q at position %d", ErrMalformedShortEncoding, s[i], i)
		}

		// value = value*62 + d, rejecting 128-bit overflow at each step.
		if hi > maxHiBeforeShift {
			return 0, 0, fmt.Errorf("%w: value exceeds 128 bits", ErrMalformedShortEncoding)
		}
		mulHi, mulLo := bits.Mul64(lo, 62)
		newHi, carry := bits.Add64(hi*62, mulHi, 0)
		if carry != 0 {
			return 0, 0, fmt.Errorf("%w: value exceeds 128 bits", ErrMalformedShortEncoding)
		}
		newLo, carry := bits.Add64(mulLo, uint64(d), 0)
		newHi, carry = bits.Add64(newHi, 0, carry)
		if carry != 0 {
			return 0, 0, fmt.Errorf("%w: value exceeds 128 bits", ErrMalformedShortEncoding)
		}
		hi, lo = newHi, newLo
	}

	return hi, lo, nil
}
