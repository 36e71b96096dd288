package auth

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestAnyInputSubmits(t *testing.T) {
	t.Parallel()
	m := New()
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("expected submit command on empty form")
	}
	if _, ok := cmd().(SubmittedMsg); !ok {
		t.Fatalf("expected SubmittedMsg")
	}
}

func TestToggleSignUpMovesFocusToName(t *testing.T) {
	t.Parallel()
	m := New()
	if m.SignUp() || m.focus != 1 {
		t.Fatalf("login mode starts on the email field, got focus %d", m.focus)
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	if !m.SignUp() || m.focus != 0 {
		t.Fatalf("sign-up mode starts on the name field, got focus %d", m.focus)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.focus != 1 {
		t.Fatalf("login focus must cycle over email and password only, got %d", m.focus)
	}
}
