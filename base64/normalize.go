package base64

import "github.com/hisamafahri/lagon/internal/subtle"

// Normalize returns s with every ASCII whitespace character
// (space, tab, LF, FF, CR) removed. The remaining characters
// keep their relative order.
//
// Normalize runs in constant time for the length of s.
func Normalize(s string) string {
	buf := []byte(s)
	return string(buf[:compact(buf, buf)])
}

// compact copies the non-whitespace bytes of src to the front of
// dst and returns how many were copied. dst must be at least as
// long as src and may alias it.
func compact(dst, src []byte) int {
	offset := 0
	for _, c := range src {
		// Always write; a whitespace byte is overwritten by
		// the next one.
		dst[offset] = c
		offset += subtle.ConstantTimeIsSpace(c) ^ 1
	}
	return offset
}

// originalOffset maps i, an index into the output of compact,
// back to an offset into src.
func originalOffset(src []byte, i int) int {
	for j, c := range src {
		if subtle.ConstantTimeIsSpace(c) == 1 {
			continue
		}
		if i == 0 {
			return j
		}
		i--
	}
	return len(src)
}
