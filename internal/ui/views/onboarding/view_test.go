package onboarding

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	onboardingin "careernav/internal/modules/onboarding/adapter/in"
	onboardingusecase "careernav/internal/modules/onboarding/usecase"
)

func newView() Model {
	m := New(onboardingin.NewTUIHandler(onboardingusecase.NewInteractor(nil)))
	m.Activate()
	return m
}

func TestIncompleteStepShowsHint(t *testing.T) {
	t.Parallel()

	m := newView()
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Fatalf("blocked advance should not emit a command")
	}
	if m.Draft().Step != 1 {
		t.Fatalf("expected to stay on step 1, got %d", m.Draft().Step)
	}
	if m.hint == "" {
		t.Fatalf("expected a hint explaining the blocked step")
	}
}

func TestTypingUpdatesDraft(t *testing.T) {
	t.Parallel()

	m := newView()
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Asha")})
	if got := m.Draft().Name; got != "Asha" {
		t.Fatalf("expected name in draft, got %q", got)
	}
}

func TestActivateStartsFreshDraft(t *testing.T) {
	t.Parallel()

	m := newView()
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Asha")})
	m.Activate()
	if m.Draft().Name != "" || m.name.Value() != "" || m.Draft().Step != 1 {
		t.Fatalf("expected reset draft, got %+v", m.Draft())
	}
}
