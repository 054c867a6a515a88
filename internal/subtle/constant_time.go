// Package subtle implements the constant-time helpers shared by
// the base64 and hex codecs.
package subtle

import "crypto/subtle"

// ConstantTimeByteEq returns 1 if x == y and 0 otherwise.
func ConstantTimeByteEq(x, y uint8) int {
	return subtle.ConstantTimeByteEq(x, y)
}

// ConstantTimeEq returns 1 if x == y and 0 otherwise.
func ConstantTimeEq(x, y int32) int {
	return subtle.ConstantTimeEq(x, y)
}

// ConstantTimeSelect returns x if v == 1 and y if v == 0.
// Its behavior is undefined if v takes any other value.
func ConstantTimeSelect(v, x, y int) int {
	return subtle.ConstantTimeSelect(v, x, y)
}

// ConstantTimeIsSpace returns 1 if c is ASCII whitespace as
// defined by the WHATWG infra standard (space, tab, LF, FF, CR)
// and 0 otherwise.
func ConstantTimeIsSpace(c byte) int {
	return ConstantTimeByteEq(c, ' ') |
		ConstantTimeByteEq(c, '\t') |
		ConstantTimeByteEq(c, '\n') |
		ConstantTimeByteEq(c, '\f') |
		ConstantTimeByteEq(c, '\r')
}

// FirstIndex records, in constant time, the first position at
// which a condition held.
//
// It is the constant-time equivalent of
//
//    if found == 0 && hit == 1 {
//        idx = i
//    }
//
// and returns the (possibly unchanged) index. found and hit must
// be 0 or 1.
func FirstIndex(found, hit, idx, i int) int {
	return ConstantTimeSelect(found, idx,
		ConstantTimeSelect(hit, i, idx))
}
