package base64

import (
	"encoding/base64"

	"github.com/hisamafahri/lagon/internal/subtle"
)

const (
	StdPadding = base64.StdPadding // standard padding '='
	NoPadding  = base64.NoPadding  // no padding
)

// StdEncoding is the standard Base64 encoding.
//
// It uses the following table:
//
//    ABCDEFGHIJKLMNOPQRSTUVWXYZ
//    abcdefghijklmnopqrstuvwxyz
//    0123456789
//    +/
//
var StdEncoding = &Encoding{
	lookup:    stdLookup,
	revLookup: stdRevLookup,
	swar:      true,
	padChar:   StdPadding,
}

// RawStdEncoding is the unpadded standard Base64 encoding.
var RawStdEncoding = StdEncoding.WithPadding(NoPadding)

// URLEncoding is the base64url Base64 encoding.
//
// It uses the following table:
//
//    ABCDEFGHIJKLMNOPQRSTUVWXYZ
//    abcdefghijklmnopqrstuvwxyz
//    0123456789
//    -_
//
var URLEncoding = &Encoding{
	lookup:    urlLookup,
	revLookup: urlRevLookup,
	padChar:   StdPadding,
}

// RawURLEncoding is the unpadded base64url Base64 encoding.
var RawURLEncoding = URLEncoding.WithPadding(NoPadding)

// Encoding is a particular Base64 encoding.
//
// An Encoding is immutable; its methods return modified copies.
// It is safe for concurrent use.
type Encoding struct {
	lookup    func(c uint) byte
	revLookup func(c uint) byte
	swar      bool
	padChar   rune
	strict    bool
}

// NewEncoding returns a padded Encoding defined by alphabet,
// which must be a 64-byte string of distinct ASCII characters
// that does not contain the padding character '=' or ASCII
// whitespace.
//
// Lookups for a custom alphabet index a table with the data
// being encoded, so they do not run in constant time.
func NewEncoding(alphabet string) *Encoding {
	if len(alphabet) != 64 {
		panic("base64: encoding alphabet is not 64 bytes long")
	}
	var seen [128]bool
	for i := 0; i < len(alphabet); i++ {
		c := alphabet[i]
		switch {
		case c >= 0x80:
			panic("base64: encoding alphabet contains non-ASCII characters")
		case subtle.ConstantTimeIsSpace(c) == 1, c == '=':
			panic("base64: encoding alphabet contains whitespace or padding")
		case seen[c]:
			panic("base64: encoding alphabet contains duplicate symbols")
		}
		seen[c] = true
	}
	t := newTable(alphabet)
	return &Encoding{
		lookup:    t.lookup,
		revLookup: t.revLookup,
		padChar:   StdPadding,
	}
}

// Strict returns an identical Encoding that operates in "strict"
// mode where all padding bits MUST be zero (see section 3.5 of
// RFC 4648).
//
// Browsers do not decode strictly.
func (e Encoding) Strict() *Encoding {
	e.strict = true
	return &e
}

// WithPadding returns an identical Encoding that uses the
// specified padding character, or no padding if r is NoPadding.
//
// The padding character must be ASCII and cannot be whitespace
// or a character in the encoding's alphabet.
func (e Encoding) WithPadding(r rune) *Encoding {
	if r != NoPadding {
		switch {
		case r < 0, r >= 0x80, subtle.ConstantTimeIsSpace(byte(r)) == 1:
			panic("base64: invalid padding")
		case e.revLookup(uint(r)) != 0xff:
			panic("base64: padding contained in alphabet")
		}
	}
	e.padChar = r
	return &e
}

// EncodedLen returns the size in bytes of the Base64 encoding
// of n source bytes.
func (e *Encoding) EncodedLen(n int) int {
	if e.padChar == NoPadding {
		return (n*8 + 5) / 6
	}
	return (n + 2) / 3 * 4
}

// DecodedLen returns the maximum length in bytes of the data
// decoded from n bytes of Base64-encoded input.
//
// Padding is optional when decoding, so the result does not
// depend on whether e is padded.
func (e *Encoding) DecodedLen(n int) int {
	return n/4*3 + n%4*6/8
}

// Encode encodes src, writing EncodedLen(len(src)) bytes to dst.
//
// Encode runs in constant time for the length of src, except
// for encodings created by NewEncoding.
func (e *Encoding) Encode(dst, src []byte) {
	if len(src) == 0 {
		return
	}

	n := len(src) / 3 * 4
	src = encodeBlocks(dst, src, e.lookup, e.swar)
	dst = dst[n:]

	switch len(src) {
	case 2:
		v := uint(src[0])<<16 | uint(src[1])<<8
		dst[0] = e.lookup(v >> 18 & 0x3f)
		dst[1] = e.lookup(v >> 12 & 0x3f)
		dst[2] = e.lookup(v >> 6 & 0x3f)
		if e.padChar != NoPadding {
			dst[3] = byte(e.padChar)
		}
	case 1:
		v := uint(src[0]) << 16
		dst[0] = e.lookup(v >> 18 & 0x3f)
		dst[1] = e.lookup(v >> 12 & 0x3f)
		if e.padChar != NoPadding {
			dst[2] = byte(e.padChar)
			dst[3] = byte(e.padChar)
		}
	}
}

// EncodeToString encodes src.
//
// EncodeToString runs in constant time for the length of src,
// except for encodings created by NewEncoding.
func (e *Encoding) EncodeToString(src []byte) string {
	dst := make([]byte, e.EncodedLen(len(src)))
	e.Encode(dst, src)
	return string(dst)
}

// Decode decodes src using the forgiving-base64 algorithm,
// writing at most DecodedLen(len(src)) bytes to dst. It returns
// the number of bytes written.
//
// ASCII whitespace anywhere in src is ignored. If e is padded,
// one or two trailing padding characters are removed when the
// remaining input is a multiple of four characters long; padding
// is never required. This is the WHATWG forgiving-base64 decode
// (https://infra.spec.whatwg.org/#forgiving-base64-decode), so
// "AB=" is an error, as it is for atob.
//
// If src cannot be decoded, Decode writes nothing to dst and
// returns an *InvalidCharacterError.
//
// Decode runs in constant time for the length of src, except
// for encodings created by NewEncoding. Building the error, if
// any, does not.
//
// See the package docs for a comparison with encoding/base64.
func (e *Encoding) Decode(dst, src []byte) (int, error) {
	buf := make([]byte, len(src))
	m := compact(buf, src)
	tmp := make([]byte, e.DecodedLen(m))
	n, bad := e.decode(tmp, buf[:m])
	if bad != none {
		subtle.Wipe(tmp)
		return 0, corruptInputError(src, bad, m)
	}
	copy(dst[:n], tmp[:n])
	subtle.Wipe(tmp)
	return n, nil
}

// DecodeString decodes s using the forgiving-base64 algorithm
// described by Decode.
//
// Unlike encoding/base64, DecodeString never returns partially
// decoded data: on error the result is nil.
func (e *Encoding) DecodeString(s string) ([]byte, error) {
	src := []byte(s)
	buf := make([]byte, len(src))
	m := compact(buf, src)
	dst := make([]byte, e.DecodedLen(m))
	n, bad := e.decode(dst, buf[:m])
	if bad != none {
		subtle.Wipe(dst)
		return nil, corruptInputError(src, bad, m)
	}
	return dst[:n], nil
}

// none is the index decode returns for valid input.
const none = -2

// decode decodes the whitespace-free input src into dst.
//
// It returns the number of bytes written and none, or the index of
// the first offending character in src, or -1 if the length of
// src is impossible.
func (e *Encoding) decode(dst, src []byte) (n, bad int) {
	if len(src)%4 == 1 {
		// No number of bytes encodes to a single dangling
		// character.
		return 0, -1
	}
	if e.padChar != NoPadding && len(src)%4 == 0 && len(src) > 0 {
		// Only strip the second to last character if the last
		// one was also padding.
		t := subtle.ConstantTimeByteEq(src[len(src)-1], byte(e.padChar))
		t += subtle.ConstantTimeByteEq(src[len(src)-2], byte(e.padChar)) & t
		src = src[:len(src)-t]
	}

	var (
		// failed is 1 once an invalid character has been seen.
		failed int
		// acc accumulates the 6-bit values of the current
		// 4-character block.
		acc uint
	)
	bad = none
	for i := 0; i < len(src); i++ {
		c := e.revLookup(uint(src[i]))

		hit := subtle.ConstantTimeByteEq(c, 0xff)
		bad = subtle.FirstIndex(failed, hit, bad, i)
		failed |= hit

		acc = acc<<6 | uint(c&0x3f)
		if i%4 == 3 {
			dst[n+0] = byte(acc >> 16)
			dst[n+1] = byte(acc >> 8)
			dst[n+2] = byte(acc)
			n += 3
			acc = 0
		}
	}

	// The final partial block carries 2 or 4 spare bits.
	var spare uint
	switch len(src) % 4 {
	case 3:
		dst[n+0] = byte(acc >> 10)
		dst[n+1] = byte(acc >> 2)
		spare = acc & 0x3
		n += 2
	case 2:
		dst[n+0] = byte(acc >> 4)
		spare = acc & 0xf
		n++
	}
	if e.strict {
		hit := subtle.ConstantTimeEq(int32(spare), 0) ^ 1
		bad = subtle.FirstIndex(failed, hit, bad, len(src)-1)
	}
	return n, bad
}

// EncodeToString returns the standard Base64 encoding of src.
func EncodeToString(src []byte) string {
	return StdEncoding.EncodeToString(src)
}

// DecodeString decodes s with StdEncoding. It is the byte-level
// equivalent of the browser's atob.
func DecodeString(s string) ([]byte, error) {
	return StdEncoding.DecodeString(s)
}
