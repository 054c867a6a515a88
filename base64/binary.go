package base64

import (
	"strings"
	"unicode/utf8"
)

// EncodeBinaryString encodes a binary string: a string whose
// characters are each in [U+0000, U+00FF] and stand for one byte
// each. It is the equivalent of the browser's btoa.
//
// A character above U+00FF, or invalid UTF-8, is rejected with a
// *ByteRangeError rather than truncated.
func (e *Encoding) EncodeBinaryString(s string) (string, error) {
	src := make([]byte, 0, utf8.RuneCountInString(s))
	for i, r := range s {
		if r > 0xff {
			return "", &ByteRangeError{Offset: i, Rune: r}
		}
		src = append(src, byte(r))
	}
	return e.EncodeToString(src), nil
}

// DecodeBinaryString decodes s like DecodeString and returns the
// bytes as a binary string, one character per byte.
func (e *Encoding) DecodeBinaryString(s string) (string, error) {
	buf, err := e.DecodeString(s)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.Grow(len(buf) * 2)
	for _, c := range buf {
		b.WriteRune(rune(c))
	}
	return b.String(), nil
}

// EncodeBinaryString encodes s with StdEncoding.
func EncodeBinaryString(s string) (string, error) {
	return StdEncoding.EncodeBinaryString(s)
}

// DecodeBinaryString decodes s with StdEncoding.
func DecodeBinaryString(s string) (string, error) {
	return StdEncoding.DecodeBinaryString(s)
}
