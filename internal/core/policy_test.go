package core

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

type fixedChecker bool

func (c fixedChecker) IsElevated() bool { return bool(c) }

type fakeConfirmer struct {
	answer  bool
	asked   int
	paused  int
	printed strings.Builder
}

func (c *fakeConfirmer) Printf(format string, args ...interface{}) {
	fmt.Fprintf(&c.printed, format, args...)
}

func (c *fakeConfirmer) Confirm(prompt string) bool {
	c.asked++
	return c.answer
}

func (c *fakeConfirmer) Pause() { c.paused++ }

func TestGateBlockWithoutElevation(t *testing.T) {
	g, err := NewGate(fixedChecker(false), map[string]AdminPolicy{"2": PolicyBlock}, nil)
	if err != nil {
		t.Fatalf("new gate: %v", err)
	}
	c := &fakeConfirmer{answer: true}
	if g.Allow("2", "SFC", c) {
		t.Fatalf("expected block")
	}
	if c.asked != 0 || c.paused != 1 {
		t.Fatalf("unexpected interaction: asked=%d paused=%d", c.asked, c.paused)
	}
	if !strings.Contains(c.printed.String(), "SFC requires administrator privileges") {
		t.Fatalf("unexpected message: %s", c.printed.String())
	}
}

func TestGateInformAsks(t *testing.T) {
	g, err := NewGate(fixedChecker(false), map[string]AdminPolicy{"20": PolicyInform}, nil)
	if err != nil {
		t.Fatalf("new gate: %v", err)
	}
	yes := &fakeConfirmer{answer: true}
	if !g.Allow("20", "winget", yes) || yes.asked != 1 {
		t.Fatalf("expected confirmation to allow")
	}
	no := &fakeConfirmer{answer: false}
	if g.Allow("20", "winget", no) {
		t.Fatalf("expected decline to deny")
	}
}

func TestGateElevatedSkipsChecks(t *testing.T) {
	g, err := NewGate(fixedChecker(true), map[string]AdminPolicy{"2": PolicyBlock, "20": PolicyInform}, nil)
	if err != nil {
		t.Fatalf("new gate: %v", err)
	}
	c := &fakeConfirmer{}
	if !g.Allow("2", "SFC", c) || !g.Allow("20", "winget", c) {
		t.Fatalf("expected allow when elevated")
	}
	if c.asked != 0 || c.paused != 0 {
		t.Fatalf("no interaction expected when elevated")
	}
}

func TestGateOverrides(t *testing.T) {
	g, err := NewGate(fixedChecker(false), map[string]AdminPolicy{"2": PolicyBlock}, map[string]string{"2": "inform", "6": "BLOCK"})
	if err != nil {
		t.Fatalf("new gate: %v", err)
	}
	if g.Policy("2") != PolicyInform || g.Policy("6") != PolicyBlock || g.Policy("7") != PolicyNone {
		t.Fatalf("unexpected policies: %s %s %s", g.Policy("2"), g.Policy("6"), g.Policy("7"))
	}
}

func TestGateRejectsUnknownPolicy(t *testing.T) {
	_, err := NewGate(fixedChecker(false), nil, map[string]string{"2": "maybe"})
	if !errors.Is(err, errInvalidArguments) {
		t.Fatalf("expected invalid arguments, got %v", err)
	}
	if _, err := NewGate(nil, nil, nil); err == nil {
		t.Fatalf("expected error for nil checker")
	}
}
