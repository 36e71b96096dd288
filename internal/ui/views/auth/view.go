package auth

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"careernav/internal/ui/theme"
)

// SubmittedMsg is sent when the learner submits the sign-in or sign-up form.
// Any input is accepted.
type SubmittedMsg struct{}

// Model is the stub learner sign-in form. It toggles between login and
// sign-up but never validates anything.
type Model struct {
	inputs []textinput.Model
	focus  int
	signUp bool
}

func New() Model {
	m := Model{}
	m.reset()
	return m
}

func (m *Model) reset() {
	name := textinput.New()
	name.Placeholder = "e.g., Ananya Sharma"
	email := textinput.New()
	email.Placeholder = "you@example.com"
	password := textinput.New()
	password.Placeholder = "••••••••"
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	m.inputs = []textinput.Model{name, email, password}
	m.focus = m.firstField()
	m.inputs[m.focus].Focus()
}

// Activate resets the form for a fresh visit.
func (m *Model) Activate() tea.Cmd {
	m.reset()
	return textinput.Blink
}

func (m Model) SignUp() bool { return m.signUp }

func (m Model) firstField() int {
	if m.signUp {
		return 0
	}
	return 1
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "enter":
			return m, func() tea.Msg { return SubmittedMsg{} }
		case "ctrl+t":
			m.signUp = !m.signUp
			m.setFocus(m.firstField())
			return m, nil
		case "tab", "down":
			m.setFocus(m.next(1))
			return m, nil
		case "shift+tab", "up":
			m.setFocus(m.next(-1))
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m Model) next(delta int) int {
	first := m.firstField()
	n := len(m.inputs) - first
	return first + ((m.focus-first)+delta+n)%n
}

func (m *Model) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
}

func (m Model) View() string {
	var sb strings.Builder
	if m.signUp {
		sb.WriteString(theme.Title.Render("Create Account") + "\n")
		sb.WriteString(theme.Muted.Render("Sign up to get started") + "\n\n")
		sb.WriteString(label("Full Name", m.focus == 0) + "\n" + m.inputs[0].View() + "\n\n")
	} else {
		sb.WriteString(theme.Title.Render("Welcome Back") + "\n")
		sb.WriteString(theme.Muted.Render("Login to continue your journey") + "\n\n")
	}
	sb.WriteString(label("Email Address", m.focus == 1) + "\n" + m.inputs[1].View() + "\n\n")
	sb.WriteString(label("Password", m.focus == 2) + "\n" + m.inputs[2].View() + "\n\n")

	action, other := "Login", "Sign Up"
	if m.signUp {
		action, other = "Sign Up", "Login"
	}
	sb.WriteString(theme.Hot.Render("[enter] "+action) + "   " + theme.Muted.Render("[ctrl+t] "+other) + "\n\n")
	sb.WriteString(theme.Muted.Render("[ctrl+a] Login as Admin"))
	return theme.Pane.Width(56).Render(sb.String())
}

func label(text string, focused bool) string {
	if focused {
		return theme.Focused.Render("> " + text)
	}
	return theme.Muted.Render("  " + text)
}
