package privilege

import (
	"errors"
	"testing"
)

func TestIsElevatedQueryError(t *testing.T) {
	c := &Checker{query: func() (bool, error) { return true, errors.New("access denied") }}
	if c.IsElevated() {
		t.Fatalf("expected false on query failure")
	}
}

func TestIsElevatedQueryPanic(t *testing.T) {
	c := &Checker{query: func() (bool, error) { panic("shell32 missing") }}
	if c.IsElevated() {
		t.Fatalf("expected false on query panic")
	}
}

func TestIsElevatedPassesResult(t *testing.T) {
	for _, want := range []bool{true, false} {
		want := want
		c := &Checker{query: func() (bool, error) { return want, nil }}
		if got := c.IsElevated(); got != want {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestPlatformQueryDoesNotPanic(t *testing.T) {
	_ = New(nil).IsElevated()
}
