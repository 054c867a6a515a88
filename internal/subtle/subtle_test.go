package subtle

import (
	"testing"
	"time"

	"golang.org/x/exp/rand"
)

func TestConstantTimeIsSpace(t *testing.T) {
	for i := 0; i < 256; i++ {
		c := byte(i)
		var want bool
		switch c {
		case ' ', '\t', '\n', '\f', '\r':
			want = true
		}
		if got := ConstantTimeIsSpace(c) == 1; got != want {
			t.Fatalf("%#02x: expected %t", c, want)
		}
	}
}

func TestFirstIndex(t *testing.T) {
	d := 2 * time.Second
	if testing.Short() {
		d = 100 * time.Millisecond
	}
	tm := time.NewTimer(d)

	seed := uint64(time.Now().UnixNano())
	t.Logf("seed: %#x", seed)
	rng := rand.New(rand.NewSource(seed))

	hits := make([]int, 64)
	for i := 0; ; i++ {
		select {
		case <-tm.C:
			t.Logf("iter: %d", i)
			return
		default:
		}

		want := -1
		for j := range hits {
			hits[j] = 0
			if rng.Intn(16) == 0 {
				hits[j] = 1
				if want < 0 {
					want = j
				}
			}
		}

		idx, found := -1, 0
		for j, hit := range hits {
			idx = FirstIndex(found, hit, idx, j)
			found |= hit
		}
		if idx != want {
			t.Fatalf("#%d: %v: expected %d, got %d", i, hits, want, idx)
		}
	}
}

func TestWipe(t *testing.T) {
	x := []byte("sensitive")
	Wipe(x)
	for i, c := range x {
		if c != 0 {
			t.Fatalf("#%d: expected 0, got %#02x", i, c)
		}
	}
}
