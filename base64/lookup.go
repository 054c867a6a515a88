package base64

import "encoding/binary"

// stdLookup converts the 6-bit value c to its corresponding
// character in the standard alphabet.
//
// c must be in [0, 63].
//
// See http://0x80.pl/notesen/2016-01-12-sse-base64-encoding.html
func stdLookup(c uint) byte {
	s := uint('A')
	s += (26 - c - 1) >> 8 & 6
	s -= (52 - c - 1) >> 8 & 75
	s -= (62 - c - 1) >> 8 & 15
	s += (63 - c - 1) >> 8 & 3
	return byte(c + s)
}

// stdRevLookup converts the character c of the standard alphabet
// to its 6-bit value.
//
// If c is not in the alphabet stdRevLookup returns 0xff.
func stdRevLookup(c uint) byte {
	// Each range check yields the shift s that maps the range
	// onto its 6-bit values mod 64:
	//
	//    'A' ... 'Z'  s = 191
	//    'a' ... 'z'  s = 185
	//    '0' ... '9'  s = 4
	//    '+'          s = 19
	//    '/'          s = 16
	//
	// and zero otherwise.
	s := ((((64 - c) & (c - 91)) >> 8) & 191) ^
		((((96 - c) & (c - 123)) >> 8) & 185) ^
		((((47 - c) & (c - 58)) >> 8) & 4) ^
		((((42 - c) & (c - 44)) >> 8) & 19) ^
		((((46 - c) & (c - 48)) >> 8) & 16)
	return revResult(s, c)
}

// urlLookup converts the 6-bit value c to its corresponding
// character in the base64url alphabet.
//
// c must be in [0, 63].
func urlLookup(c uint) byte {
	// Guess that c is in [0, 25], then walk the shift forward
	// one range at a time:
	//
	//    [26, 51]  'a' - 26 = 'A' + 6
	//    [52, 61]  '0' - 52 = 'A' + 6 - 75
	//    62        '-' - 62 = 'A' + 6 - 75 - 13
	//    63        '_' - 63 = 'A' + 6 - 75 - 13 + 49
	s := uint('A')
	s += (26 - c - 1) >> 8 & 6
	s -= (52 - c - 1) >> 8 & 75
	s -= (62 - c - 1) >> 8 & 13
	s += (63 - c - 1) >> 8 & 49
	return byte(c + s)
}

// urlRevLookup converts the character c of the base64url
// alphabet to its 6-bit value.
//
// If c is not in the alphabet urlRevLookup returns 0xff.
func urlRevLookup(c uint) byte {
	//    'A' ... 'Z'  s = 191
	//    'a' ... 'z'  s = 185
	//    '0' ... '9'  s = 4
	//    '-'          s = 17
	//    '_'          s = 32
	s := ((((64 - c) & (c - 91)) >> 8) & 191) ^
		((((96 - c) & (c - 123)) >> 8) & 185) ^
		((((47 - c) & (c - 58)) >> 8) & 4) ^
		((((44 - c) & (c - 46)) >> 8) & 17) ^
		((((94 - c) & (c - 96)) >> 8) & 32)
	return revResult(s, c)
}

// revResult finishes a reverse lookup. A zero shift means c
// matched no range, so the result is 0xff.
func revResult(s, c uint) byte {
	// Every valid shift is non-zero and less than 256, so
	// 0-s borrows into [16:8] only when c was valid.
	return byte((s+c)&0x3f | ((((0 - s) >> 8) & 0xff) ^ 0xff))
}

// stdLookupSWAR3 converts the 3 source bytes in [32:8] into
// 4 characters of the standard alphabet, little-endian.
//
// See http://0x80.pl/articles/avx512-foundation-base64.html
func stdLookupSWAR3(u uint32) uint32 {
	// AAAAAAAA BBBBBBBB CCCCCCCC ........
	// =>
	// ..CCCCCC ..BBBBCC ..AABBBB ..AAAAAA
	var c uint32
	c |= (u >> 26) & 0x00_00_00_3f
	c |= (u >> 12) & 0x00_00_3f_00
	c |= (u << 2) & 0x00_3f_00_00
	c |= (u << 16) & 0x3f_00_00_00

	const (
		msb = 0x80808080
	)

	// if c[i] >= 26 { s[i] ^= 6 }
	c0 := (c + 0x66666666) & msb
	c0 -= c0 >> 7
	c0 &= 0x06060606

	// if c[i] >= 52 { s[i] ^= 187&0x7f }
	c1 := (c + 0x4c4c4c4c) & msb
	c1msb := c1
	c1 -= c1 >> 7
	c1 &= 0x3b3b3b3b

	// if c[i] >= 62 { s[i] ^= 17 }
	c2 := (c + 0x42424242) & msb
	c2 -= c2 >> 7
	c2 &= 0x11111111

	// if c[i] >= 63 { s[i] ^= 29 }
	c3 := (c + 0x41414141) & msb
	c3 -= c3 >> 7
	c3 &= 0x1d1d1d1d

	s := 0x41414141 ^ c0 ^ c1 ^ c2 ^ c3

	return (c + s) ^ c1msb
}

// table is the lookup data for a caller-supplied alphabet.
//
// Unlike the built-in alphabets, lookups index memory with
// secret data.
type table struct {
	enc [64]byte
	dec [256]byte
}

func newTable(alphabet string) *table {
	t := &table{}
	for i := range t.dec {
		t.dec[i] = 0xff
	}
	for i := 0; i < len(alphabet); i++ {
		t.enc[i] = alphabet[i]
		t.dec[alphabet[i]] = byte(i)
	}
	return t
}

func (t *table) lookup(c uint) byte {
	return t.enc[c&0x3f]
}

func (t *table) revLookup(c uint) byte {
	return t.dec[c&0xff]
}

// encodeBlocks encodes every complete 3-byte block of src and
// returns the unconsumed tail.
func encodeBlocks(dst, src []byte, lookup func(uint) byte, swar bool) []byte {
	if swar {
		for len(src) >= 3 {
			v := uint32(src[0])<<16 | uint32(src[1])<<8 | uint32(src[2])
			binary.LittleEndian.PutUint32(dst, stdLookupSWAR3(v<<8))
			src = src[3:]
			dst = dst[4:]
		}
		return src
	}
	for len(src) >= 3 {
		v := uint(src[0])<<16 | uint(src[1])<<8 | uint(src[2])
		dst[0] = lookup(v >> 18 & 0x3f)
		dst[1] = lookup(v >> 12 & 0x3f)
		dst[2] = lookup(v >> 6 & 0x3f)
		dst[3] = lookup(v & 0x3f)
		src = src[3:]
		dst = dst[4:]
	}
	return src
}
