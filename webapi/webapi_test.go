package webapi

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hisamafahri/lagon/base64"
)

// These mirror the runtime's JavaScript test suite.
func TestAtob(t *testing.T) {
	got, err := Atob("Hello World")
	if err != nil {
		t.Fatal(err)
	}
	if want := "\x1dée¡j+\u0095"; got != want {
		t.Fatalf("mismatch: %s", cmp.Diff(want, got))
	}
}

func TestBtoa(t *testing.T) {
	got, err := Btoa("\x1Dée¡j+\u0095")
	if err != nil {
		t.Fatal(err)
	}
	if got != "HelloWorlQ==" {
		t.Fatalf("expected %q, got %q", "HelloWorlQ==", got)
	}
}

func TestRoundTrip(t *testing.T) {
	for _, s := range []string{"", "Hello World", "\x00\x01\x02ÿ"} {
		enc, err := Btoa(s)
		if err != nil {
			t.Fatalf("%q: %v", s, err)
		}
		dec, err := Atob(enc)
		if err != nil {
			t.Fatalf("%q: %v", enc, err)
		}
		if dec != s {
			t.Fatalf("mismatch: %s", cmp.Diff(s, dec))
		}
	}
}

func TestErrors(t *testing.T) {
	if _, err := Atob("A"); !errors.Is(err, base64.ErrCorrupt) {
		t.Fatalf("expected ErrCorrupt, got %v", err)
	}
	_, err := Btoa("Ā")
	var bre *base64.ByteRangeError
	if !errors.As(err, &bre) {
		t.Fatalf("expected *base64.ByteRangeError, got %v", err)
	}
}

type globals struct {
	vals map[string]any
	fail string
}

func (g *globals) Set(name string, value any) error {
	if name == g.fail {
		return errors.New("read-only")
	}
	g.vals[name] = value
	return nil
}

func TestRegister(t *testing.T) {
	g := &globals{vals: make(map[string]any)}
	if err := Register(g); err != nil {
		t.Fatal(err)
	}
	atob, ok := g.vals["atob"].(func(string) (string, error))
	if !ok {
		t.Fatalf("atob has type %T", g.vals["atob"])
	}
	btoa, ok := g.vals["btoa"].(func(string) (string, error))
	if !ok {
		t.Fatalf("btoa has type %T", g.vals["btoa"])
	}
	enc, err := btoa("Hi")
	if err != nil {
		t.Fatal(err)
	}
	dec, err := atob(enc)
	if err != nil {
		t.Fatal(err)
	}
	if dec != "Hi" {
		t.Fatalf("expected %q, got %q", "Hi", dec)
	}
}

func TestRegisterError(t *testing.T) {
	g := &globals{vals: make(map[string]any), fail: "btoa"}
	err := Register(g)
	if err == nil {
		t.Fatal("expected an error")
	}
	if want := "webapi: registering btoa: read-only"; err.Error() != want {
		t.Fatalf("expected %q, got %q", want, err.Error())
	}
}
