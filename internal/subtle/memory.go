package subtle

import "runtime"

// Wipe sets every byte in x to zero.
//
// The codecs call it on their output buffers before reporting an
// error so that no partially decoded data escapes.
//
//go:noinline
func Wipe(x []byte) {
	for i := range x {
		x[i] = 0
	}
	// Keep the loop from being eliminated as a dead store.
	runtime.KeepAlive(x)
}
