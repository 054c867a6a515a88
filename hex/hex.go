// Package hex implements constant-time hexadecimal encoding and
// decoding.
//
// It backs the hex input and output formats of the b64 command
// and is interchangeable with encoding/hex for those uses.
package hex

import (
	"encoding/hex"

	"github.com/hisamafahri/lagon/internal/subtle"
)

// ErrLength reports an attempt to decode an odd-length input.
var ErrLength = hex.ErrLength

// InvalidByteError values describe errors resulting from an
// invalid byte in a hex string.
type InvalidByteError = hex.InvalidByteError

// EncodedLen returns the length of an encoding of n source
// bytes.
// Specifically, it returns n * 2.
func EncodedLen(n int) int { return n * 2 }

// DecodedLen returns the length of a decoding of x source bytes.
// Specifically, it returns x / 2.
func DecodedLen(x int) int { return x / 2 }

// Encode encodes src into EncodedLen(len(src)) bytes of dst
// using lowercase characters and returns the number of bytes
// written.
//
// Encode runs in constant time for the length of src.
func Encode(dst, src []byte) int {
	j := 0
	for _, v := range src {
		dst[j] = nibble(uint(v >> 4))
		dst[j+1] = nibble(uint(v & 0x0f))
		j += 2
	}
	return len(src) * 2
}

// nibble converts c in [0, 15] to '0' ... '9' or 'a' ... 'f'.
func nibble(c uint) byte {
	// 87 + c is 'a' ... 'f' for c >= 10. For c < 10, c-10
	// borrows and the mask moves the result back by 39 to
	// '0' ... '9'.
	const mask = ^uint(38)
	return byte(87 + c + (((c - 10) >> 8) & mask))
}

// EncodeToString returns the hexadecimal encoding of src.
//
// EncodeToString runs in constant time for the length of src.
func EncodeToString(src []byte) string {
	dst := make([]byte, EncodedLen(len(src)))
	Encode(dst, src)
	return string(dst)
}

// Decode decodes src into DecodedLen(len(src)) bytes of dst and
// returns the number of bytes written.
//
// Decode expects that src contains only hexadecimal characters
// and that src has even length. If the input is malformed,
// Decode returns the number of bytes decoded before the first
// invalid character along with an InvalidByteError, or
// ErrLength.
//
// Decode runs in constant time for the length of src.
func Decode(dst, src []byte) (int, error) {
	var (
		failed  int
		badIdx  int
		badChar int
		acc     byte
	)
	for j := 0; j < len(src); j++ {
		c := uint(src[j])

		// '0' ... '9': c^'0' is in [0, 9] and num0 is 0xff.
		num := c ^ '0'
		num0 := (num - 10) >> 8

		// 'a' ... 'f' and 'A' ... 'F': clearing bit 5 folds
		// lowercase onto uppercase, after which alpha is in
		// [10, 15] and alpha0 is 0xff.
		alpha := (c & ^uint(32)) - 55
		alpha0 := ((alpha - 10) ^ (alpha - 16)) >> 8

		bad := subtle.ConstantTimeByteEq(byte(num0|alpha0), 0)
		badIdx = subtle.FirstIndex(failed, bad, badIdx, j/2)
		badChar = subtle.FirstIndex(failed, bad, badChar, int(c))
		failed |= bad

		val := byte(num0&num | alpha0&alpha)
		if j%2 == 0 {
			acc = val << 4
		} else {
			dst[j/2] = acc | val
		}
	}

	// Like encoding/hex, report an invalid character before an
	// invalid length.
	if failed != 0 {
		return badIdx, InvalidByteError(badChar)
	}
	if len(src)%2 == 1 {
		return len(src) / 2, ErrLength
	}
	return len(src) / 2, nil
}

// DecodeString returns the bytes represented by the hexadecimal
// string s.
//
// DecodeString runs in constant time for the length of s.
func DecodeString(s string) ([]byte, error) {
	src := []byte(s)
	n, err := Decode(src, src)
	return src[:n], err
}
