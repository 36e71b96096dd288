package onboarding

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	onboardingdto "careernav/internal/modules/onboarding/dto"
	"careernav/internal/ui/theme"
)

// Port is the minimal interface this view needs from the onboarding use-case.
type Port interface {
	Draft() onboardingdto.DraftOutput
	SetField(field onboardingdto.Field, value string) (onboardingdto.DraftOutput, error)
	Answer(question int, option string) (onboardingdto.DraftOutput, error)
	Next() onboardingdto.AdvanceOutput
	Back() onboardingdto.DraftOutput
	Reset() onboardingdto.DraftOutput
	Questions() []onboardingdto.Question
	Educations() []string
}

// CompletedMsg is sent once the last step is submitted.
type CompletedMsg struct {
	Profile onboardingdto.Profile
	Score   int
}

var stepTitles = [...]string{
	"",
	"Personal & Educational Details",
	"Your Skills",
	"Aptitude Check",
	"Career Aspirations",
}

type Model struct {
	port       Port
	draft      onboardingdto.DraftOutput
	questions  []onboardingdto.Question
	educations []string

	name        textinput.Model
	stream      textinput.Model
	skills      textinput.Model
	aspirations textinput.Model

	focus int
	hint  string
	width int
}

func New(port Port) Model {
	m := Model{
		port:       port,
		questions:  port.Questions(),
		educations: port.Educations(),
	}
	m.resetInputs()
	m.draft = port.Draft()
	m.syncFocus()
	return m
}

// Activate starts a fresh draft.
func (m *Model) Activate() tea.Cmd {
	m.draft = m.port.Reset()
	m.resetInputs()
	m.focus = 0
	m.hint = ""
	m.syncFocus()
	return textinput.Blink
}

func (m Model) Draft() onboardingdto.DraftOutput { return m.draft }

func (m *Model) resetInputs() {
	m.name = newInput("e.g., Ananya Sharma")
	m.stream = newInput("e.g., Mechanical Engineering")
	m.skills = newInput("e.g., Python, Communication, Data Analysis")
	m.aspirations = newInput("e.g., Work in IT, Start my own business")
}

func newInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 256
	ti.Width = 48
	return ti
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			return m.advance()
		case "esc":
			m.draft = m.port.Back()
			m.focus = 0
			m.hint = ""
			m.syncFocus()
			return m, nil
		case "tab", "down":
			m.moveFocus(1)
			return m, nil
		case "shift+tab", "up":
			m.moveFocus(-1)
			return m, nil
		case "left", "right":
			if m.onChoice() {
				delta := 1
				if msg.String() == "left" {
					delta = -1
				}
				m.cycleChoice(delta)
				return m, nil
			}
		}
	}

	field, input := m.activeInput()
	if input == nil {
		return m, nil
	}
	var cmd tea.Cmd
	*input, cmd = input.Update(msg)
	m.setField(field, input.Value())
	return m, cmd
}

func (m Model) advance() (Model, tea.Cmd) {
	before := m.draft.Step
	out := m.port.Next()
	m.draft = out.Draft
	if out.Completed {
		m.resetInputs()
		m.focus = 0
		m.hint = ""
		m.syncFocus()
		profile, score := out.Profile, out.Score
		return m, func() tea.Msg { return CompletedMsg{Profile: profile, Score: score} }
	}
	if m.draft.Step == before {
		m.hint = "Complete every field on this step to continue."
		return m, nil
	}
	m.hint = ""
	m.focus = 0
	m.syncFocus()
	return m, nil
}

func (m *Model) setField(field onboardingdto.Field, value string) {
	draft, err := m.port.SetField(field, value)
	m.draft = draft
	if err != nil {
		m.hint = err.Error()
	}
}

func (m Model) fieldCount() int {
	switch m.draft.Step {
	case 1:
		if m.draft.StreamKind == "none" {
			return 2
		}
		return 3
	case 3:
		return len(m.questions)
	default:
		return 1
	}
}

func (m *Model) moveFocus(delta int) {
	n := m.fieldCount()
	m.focus = (m.focus + delta + n) % n
	m.syncFocus()
}

// activeInput returns the focused text input, or nil when a choice field has
// focus.
func (m *Model) activeInput() (onboardingdto.Field, *textinput.Model) {
	switch m.draft.Step {
	case 1:
		switch {
		case m.focus == 0:
			return onboardingdto.FieldName, &m.name
		case m.focus == 2 && m.draft.StreamKind == "text":
			return onboardingdto.FieldStream, &m.stream
		}
	case 2:
		return onboardingdto.FieldSkills, &m.skills
	case 4:
		return onboardingdto.FieldAspirations, &m.aspirations
	}
	return "", nil
}

func (m Model) onChoice() bool {
	switch m.draft.Step {
	case 1:
		return m.focus == 1 || (m.focus == 2 && m.draft.StreamKind == "choice")
	case 3:
		return true
	}
	return false
}

func (m *Model) cycleChoice(delta int) {
	switch {
	case m.draft.Step == 1 && m.focus == 1:
		next := cycle(m.educations, m.draft.Education, delta)
		m.setField(onboardingdto.FieldEducation, next)
		m.stream.SetValue("")
	case m.draft.Step == 1 && m.focus == 2:
		m.setField(onboardingdto.FieldStream, cycle(m.draft.StreamOptions, m.draft.Stream, delta))
	case m.draft.Step == 3 && m.focus < len(m.questions):
		q := m.questions[m.focus]
		option := cycle(q.Options, m.draft.Answers[m.focus], delta)
		draft, err := m.port.Answer(m.focus, option)
		m.draft = draft
		if err != nil {
			m.hint = err.Error()
		}
	}
}

// cycle steps through options starting from current. An unset current value
// moves to the first or last option.
func cycle(options []string, current string, delta int) string {
	if len(options) == 0 {
		return ""
	}
	idx := -1
	for i, o := range options {
		if o == current {
			idx = i
		}
	}
	n := len(options)
	if idx < 0 {
		if delta < 0 {
			return options[n-1]
		}
		return options[0]
	}
	return options[(idx+delta+n)%n]
}

func (m *Model) syncFocus() {
	for _, in := range []*textinput.Model{&m.name, &m.stream, &m.skills, &m.aspirations} {
		in.Blur()
	}
	if _, in := m.activeInput(); in != nil {
		in.Focus()
	}
}

func (m Model) View() string {
	d := m.draft
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Build Your Profile") + "\n")
	sb.WriteString(theme.Muted.Render(fmt.Sprintf("Step %d of %d", d.Step, d.TotalSteps)) + "  ")
	sb.WriteString(theme.ProgressBar(d.Progress*100, 30) + "\n\n")
	if d.Step > 0 && d.Step < len(stepTitles) {
		sb.WriteString(theme.Hot.Render(stepTitles[d.Step]) + "\n\n")
	}

	switch d.Step {
	case 1:
		sb.WriteString(label("Full Name", m.focus == 0) + "\n" + m.name.View() + "\n\n")
		edu := d.Education
		if edu == "" {
			edu = "Select your education level"
		}
		sb.WriteString(label("Highest Education", m.focus == 1) + "\n" + chooser(edu, m.focus == 1) + "\n\n")
		switch d.StreamKind {
		case "choice":
			stream := d.Stream
			if stream == "" {
				stream = "Select your stream"
			}
			sb.WriteString(label(d.StreamLabel, m.focus == 2) + "\n" + chooser(stream, m.focus == 2) + "\n\n")
		case "text":
			sb.WriteString(label(d.StreamLabel, m.focus == 2) + "\n" + m.stream.View() + "\n\n")
		}
	case 2:
		sb.WriteString(label("List your skills (comma-separated)", true) + "\n" + m.skills.View() + "\n\n")
	case 3:
		for i, q := range m.questions {
			sb.WriteString(label(fmt.Sprintf("%d. %s", i+1, q.Prompt), m.focus == i) + "\n")
			for _, o := range q.Options {
				mark := "( )"
				if d.Answers[i] == o {
					mark = "(•)"
				}
				sb.WriteString("    " + mark + " " + o + "\n")
			}
			sb.WriteString("\n")
		}
	case 4:
		sb.WriteString(label("What are your career goals? (comma-separated)", true) + "\n" + m.aspirations.View() + "\n\n")
		sb.WriteString(theme.Muted.Render(fmt.Sprintf("Aptitude check: %d/%d correct", d.Score, len(m.questions))) + "\n\n")
	}

	if m.hint != "" {
		sb.WriteString(theme.Error.Render(m.hint) + "\n")
	}
	next := "Next"
	if d.FinalStep {
		next = "Finish"
	}
	nextLabel := theme.Hot.Render("[enter] " + next)
	if !d.CanAdvance {
		nextLabel = theme.Muted.Render("[enter] " + next + " (incomplete)")
	}
	backLabel := theme.Muted.Render("[esc] Back")
	if !d.CanGoBack {
		backLabel = ""
	}
	sb.WriteString(nextLabel + "  " + backLabel + "\n")
	sb.WriteString(theme.Muted.Render("tab/↑↓: field  ←/→: choose"))
	return theme.Pane.Width(72).Render(sb.String())
}

func label(text string, focused bool) string {
	if focused {
		return theme.Focused.Render("> " + text)
	}
	return theme.Muted.Render("  " + text)
}

func chooser(value string, focused bool) string {
	if focused {
		return theme.Focused.Render("  ◂ " + value + " ▸")
	}
	return "    " + value
}
