package command

import (
	"testing"

	"github.com/atomicstack/menutree/internal/menu"
)

type fakePointer struct {
	at    menu.Element
	calls int
}

func (p *fakePointer) SetPointAt(e menu.Element) {
	p.at = e
	p.calls++
}

func TestNavigateMovesPointer(t *testing.T) {
	root := menu.Demo()
	target, _ := root.Option(2)
	p := &fakePointer{at: root}

	New().Execute(Navigate{Pointer: p, Target: target})

	if p.at != target {
		t.Fatalf("expected pointer at %q, got %q", target.Title(), p.at.Title())
	}
	if p.calls != 1 {
		t.Fatalf("expected a single pointer update, got %d", p.calls)
	}
}

func TestBlankLeavesPointer(t *testing.T) {
	root := menu.Demo()
	p := &fakePointer{at: root}
	New().Execute(Blank{})
	if p.at != root || p.calls != 0 {
		t.Fatalf("expected pointer untouched")
	}
}

func TestExecuteNilCommandIsSkipped(t *testing.T) {
	New().Execute(nil)
}

func TestDescribe(t *testing.T) {
	root := menu.Demo()
	target, _ := root.Option(0)
	name, path := describe(Navigate{Pointer: &fakePointer{}, Target: target})
	if name != "navigate" || path != "1" {
		t.Fatalf("expected navigate 1, got %s %s", name, path)
	}
	if name, _ := describe(Blank{}); name != "blank" {
		t.Fatalf("expected blank, got %s", name)
	}
}
