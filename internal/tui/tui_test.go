// tui_test.go
package tui

import (
	"strings"
	"testing"
)

func TestHandleChoice(t *testing.T) {
	m := &model{}
	m.Init()

	next, cmd := m.handleChoice("1")
	if cmd != nil {
		t.Error("demo choice should not quit")
	}
	got := next.(*model)
	if len(got.messages) == 0 || !strings.Contains(strings.Join(got.messages, "\n"), "Krod Pxqgr") {
		t.Errorf("choice 1 did not run the Caesar demo: %v", got.messages)
	}

	next, cmd = m.handleChoice("0")
	if cmd == nil {
		t.Error("choice 0 should quit")
	}

	next, _ = m.handleChoice("9")
	got = next.(*model)
	if len(got.messages) != 1 || !strings.Contains(got.messages[0], "Unknown choice") {
		t.Errorf("bad choice message: %v", got.messages)
	}
}

func TestViewShowsMenu(t *testing.T) {
	m := &model{}
	m.Init()
	view := m.View()
	for _, want := range []string{"[1]", "[4]", "[0] Exit"} {
		if !strings.Contains(view, want) {
			t.Errorf("view is missing %q", want)
		}
	}
}
