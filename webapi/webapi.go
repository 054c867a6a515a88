// Package webapi exposes the base64 codec under the names and
// contract of the browser's atob and btoa so that a JavaScript
// host can install them as globals.
package webapi

import (
	"fmt"

	"github.com/hisamafahri/lagon/base64"
)

// Atob decodes data, which may contain ASCII whitespace and may
// omit padding, and returns the result as a binary string: one
// character in [U+0000, U+00FF] per decoded byte.
//
// It fails with a *base64.InvalidCharacterError.
func Atob(data string) (string, error) {
	return base64.DecodeBinaryString(data)
}

// Btoa encodes the binary string data.
//
// It fails with a *base64.ByteRangeError if data contains a
// character above U+00FF.
func Btoa(data string) (string, error) {
	return base64.EncodeBinaryString(data)
}

// Globals is the subset of a host's global object needed to
// install functions. goja's *Runtime and *Object satisfy it.
type Globals interface {
	Set(name string, value any) error
}

// Bindings returns the functions Register installs, keyed by
// global name.
func Bindings() map[string]func(string) (string, error) {
	return map[string]func(string) (string, error){
		"atob": Atob,
		"btoa": Btoa,
	}
}

// Register installs atob and btoa on g.
func Register(g Globals) error {
	fns := Bindings()
	for _, name := range []string{"atob", "btoa"} {
		if err := g.Set(name, fns[name]); err != nil {
			return fmt.Errorf("webapi: registering %s: %w", name, err)
		}
	}
	return nil
}
