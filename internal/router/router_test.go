package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/intervue-ai/intervue/internal/screen"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title   string
	initRan bool
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.title }
func (s *stubScreen) Title() string                           { return s.title }

func TestPush(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Push(s2)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "second" {
		t.Errorf("expected active 'second', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init to run on pushed screen")
	}
}

func TestPopNeverEmptiesStack(t *testing.T) {
	s1 := &stubScreen{title: "only"}
	r := New(s1)

	r.Pop()
	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after pop on single-screen stack, got %d", r.Depth())
	}

	r.Push(&stubScreen{title: "second"})
	r.Pop()
	if r.Active().Title() != "only" {
		t.Errorf("expected active 'only' after pop, got %q", r.Active().Title())
	}
}

func TestReplace(t *testing.T) {
	r := New(&stubScreen{title: "first"})
	r.Push(&stubScreen{title: "second"})

	repl := &stubScreen{title: "replacement"}
	r.Replace(repl)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2 after replace, got %d", r.Depth())
	}
	if r.Active().Title() != "replacement" {
		t.Errorf("expected active 'replacement', got %q", r.Active().Title())
	}
	if !repl.initRan {
		t.Error("expected Init to run on replacement screen")
	}
}

func TestResetDiscardsWholeStack(t *testing.T) {
	r := New(&stubScreen{title: "first"})
	r.Push(&stubScreen{title: "second"})
	r.Push(&stubScreen{title: "third"})

	fresh := &stubScreen{title: "fresh"}
	r.Update(ResetStackMsg{Screen: fresh})

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after reset, got %d", r.Depth())
	}
	if r.Active().Title() != "fresh" {
		t.Errorf("expected active 'fresh', got %q", r.Active().Title())
	}
	if !fresh.initRan {
		t.Error("expected Init to run on reset screen")
	}
}
