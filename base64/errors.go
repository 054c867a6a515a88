package base64

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrCorrupt is returned when the Base64-encoded input is
// incorrect.
//
// Decoding errors are *InvalidCharacterError values that wrap
// ErrCorrupt, so errors.Is(err, ErrCorrupt) reports any of them.
var ErrCorrupt = errors.New("base64: input is corrupt")

// InvalidCharacterError describes input that cannot be decoded.
type InvalidCharacterError struct {
	// Offset is the byte offset of Char in the original,
	// un-normalized input. It is -1 when the input has no
	// offending character but an impossible length.
	Offset int
	// Char is the offending character.
	Char rune
	// Len is the length of the input after whitespace removal.
	Len int
}

func (e *InvalidCharacterError) Error() string {
	if e.Offset < 0 {
		return fmt.Sprintf("base64: invalid input length %d", e.Len)
	}
	return fmt.Sprintf("base64: illegal character %q at offset %d", e.Char, e.Offset)
}

// Unwrap returns ErrCorrupt.
func (e *InvalidCharacterError) Unwrap() error {
	return ErrCorrupt
}

// Name returns the DOMException name browsers use for the same
// failure.
func (e *InvalidCharacterError) Name() string {
	return "InvalidCharacterError"
}

// ByteRangeError is returned when a binary string contains a
// character that does not fit in a byte.
type ByteRangeError struct {
	// Offset is the byte offset of Rune in the input string.
	Offset int
	// Rune is the offending character. Invalid UTF-8 is
	// reported as utf8.RuneError.
	Rune rune
}

func (e *ByteRangeError) Error() string {
	return fmt.Sprintf("base64: character %U at offset %d is outside the byte range", e.Rune, e.Offset)
}

// Name returns "ByteRangeError".
func (e *ByteRangeError) Name() string {
	return "ByteRangeError"
}

// corruptInputError builds the error for a failed decode of src.
// bad indexes the normalized input, or is -1 for a length error.
func corruptInputError(src []byte, bad, n int) error {
	if bad < 0 {
		return &InvalidCharacterError{Offset: -1, Len: n}
	}
	off := originalOffset(src, bad)
	r, _ := utf8.DecodeRune(src[off:])
	return &InvalidCharacterError{Offset: off, Char: r, Len: n}
}
