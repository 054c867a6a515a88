package hex

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEncodeStdlib(t *testing.T) {
	src := make([]byte, 1024)
	if _, err := rand.Read(src); err != nil {
		t.Fatal(err)
	}
	for i := range src {
		want := hex.EncodeToString(src[:i])
		got := EncodeToString(src[:i])
		if want != got {
			t.Fatalf("#%d: mismatch: %s", i, cmp.Diff(want, got))
		}
	}
}

func TestDecodeStdlib(t *testing.T) {
	src := make([]byte, 1024)
	if _, err := rand.Read(src); err != nil {
		t.Fatal(err)
	}
	for i := range src {
		s := hex.EncodeToString(src[:i])
		if i%2 == 0 {
			s = string(bytes.ToUpper([]byte(s)))
		}
		got, err := DecodeString(s)
		if err != nil {
			t.Fatalf("#%d: %v", i, err)
		}
		if !bytes.Equal(got, src[:i]) {
			t.Fatalf("#%d: mismatch: %s", i, cmp.Diff(src[:i], got))
		}
	}
}

func TestDecodeChars(t *testing.T) {
	for i := 0; i < 256; i++ {
		c := byte(i)
		src := []byte{'0', c}
		_, want := hex.Decode(make([]byte, 1), src)
		_, got := Decode(make([]byte, 1), src)
		if got != want {
			t.Fatalf("%q: expected %v, got %v", c, want, got)
		}
	}
}

func TestDecodeErrors(t *testing.T) {
	for _, tc := range []struct {
		in  string
		n   int
		err error
	}{
		{"", 0, nil},
		{"0", 0, ErrLength},
		{"abc", 1, ErrLength},
		{"zd4aa", 0, InvalidByteError('z')},
		{"d4aaz", 2, InvalidByteError('z')},
		{"30313", 2, ErrLength},
		{"0g", 0, InvalidByteError('g')},
		{"00gg", 1, InvalidByteError('g')},
		{"0\x01", 0, InvalidByteError('\x01')},
		{"ffeed", 2, ErrLength},
	} {
		n, err := Decode(make([]byte, DecodedLen(len(tc.in))), []byte(tc.in))
		if n != tc.n || err != tc.err {
			t.Fatalf("%q: expected (%d, %v), got (%d, %v)",
				tc.in, tc.n, tc.err, n, err)
		}
	}
}
