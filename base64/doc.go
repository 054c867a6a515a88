// Package base64 implements the "forgiving-base64" decoding and
// the canonical encoding used by the browser's atob and btoa, as
// specified by the WHATWG infra standard on top of RFC 4648.
//
// Comparison to encoding/base64
//
// This package is almost, but not exactly a drop-in replacement
// for encoding/base64.
//
// Unlike encoding/base64, this package ignores all ASCII
// whitespace (space, tab, LF, FF, CR) wherever it appears, and
// never requires padding. "SGk" and "S G k =" both decode to "Hi".
// A length that leaves a single dangling character, a stray
// padding character, or any other character outside the alphabet
// is still rejected.
//
// Unlike encoding/base64, this package does not return partial
// Base64-decoded data. For example:
//
//    src := []byte("aGVsb?8=")
//    base64.StdEncoding.Decode(dst, src) // 3, CorruptInputError(5)
//    StdEncoding.Decode(dst, src)        // 0, &InvalidCharacterError{Offset: 5}
//
// Given the input "aGVsb?8=" encoding/base64 decodes the first
// block before failing. This package leaves dst untouched.
//
// Binary strings
//
// Browsers represent bytes as strings whose characters are each
// in [U+0000, U+00FF]. EncodeBinaryString and DecodeBinaryString
// convert between that form and Base64.
package base64
