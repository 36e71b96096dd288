package adminlogin

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"careernav/internal/ui/theme"
)

// InvalidCredentials is shown inline after a rejected attempt.
const InvalidCredentials = "Invalid username or password."

// SubmittedMsg carries the typed credentials to the root model, which owns
// the check.
type SubmittedMsg struct {
	Username string
	Password string
}

type Model struct {
	username textinput.Model
	password textinput.Model
	focus    int
	err      string
}

func New() Model {
	m := Model{}
	m.reset()
	return m
}

func (m *Model) reset() {
	m.username = textinput.New()
	m.username.Placeholder = "admin"
	m.password = textinput.New()
	m.password.Placeholder = "password"
	m.password.EchoMode = textinput.EchoPassword
	m.password.EchoCharacter = '•'
	m.focus = 0
	m.err = ""
	m.username.Focus()
}

// Activate clears the form for a fresh visit.
func (m *Model) Activate() tea.Cmd {
	m.reset()
	return textinput.Blink
}

// Reject keeps the typed values and shows the inline error. Retries are
// unlimited.
func (m *Model) Reject() {
	m.err = InvalidCredentials
}

func (m Model) Error() string { return m.err }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "enter":
			if m.focus == 0 {
				m.toggleFocus()
				return m, nil
			}
			user, pass := m.username.Value(), m.password.Value()
			return m, func() tea.Msg { return SubmittedMsg{Username: user, Password: pass} }
		case "tab", "shift+tab", "up", "down":
			m.toggleFocus()
			return m, nil
		}
	}
	var cmd tea.Cmd
	if m.focus == 0 {
		m.username, cmd = m.username.Update(msg)
	} else {
		m.password, cmd = m.password.Update(msg)
	}
	return m, cmd
}

func (m *Model) toggleFocus() {
	if m.focus == 0 {
		m.username.Blur()
		m.password.Focus()
		m.focus = 1
		return
	}
	m.password.Blur()
	m.username.Focus()
	m.focus = 0
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Admin Login") + "\n\n")
	sb.WriteString(fieldLabel("Username", m.focus == 0) + "\n" + m.username.View() + "\n\n")
	sb.WriteString(fieldLabel("Password", m.focus == 1) + "\n" + m.password.View() + "\n\n")
	if m.err != "" {
		sb.WriteString(theme.Error.Render(m.err) + "\n\n")
	}
	sb.WriteString(theme.Muted.Render("enter: next/login  tab: switch field"))
	return theme.Pane.Width(48).Render(sb.String())
}

func fieldLabel(text string, focused bool) string {
	if focused {
		return theme.Focused.Render("> " + text)
	}
	return theme.Muted.Render("  " + text)
}
