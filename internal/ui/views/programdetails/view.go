package programdetails

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	catalogdto "careernav/internal/modules/catalog/dto"
	"careernav/internal/ui/theme"
)

// BackMsg asks the root model to return to the admin panel.
type BackMsg struct{}

type Model struct {
	program  catalogdto.Program
	viewport viewport.Model
	renderer *glamour.TermRenderer
	width    int
}

func New() Model {
	r, _ := glamour.NewTermRenderer(glamour.WithStylePath("dark"), glamour.WithWordWrap(80))
	return Model{viewport: viewport.New(80, 20), renderer: r}
}

// Show replaces the displayed program.
func (m *Model) Show(p catalogdto.Program) {
	m.program = p
	m.viewport.SetContent(m.render())
	m.viewport.GotoTop()
}

func (m Model) Program() catalogdto.Program { return m.program }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-2, 4)
		if r, err := glamour.NewTermRenderer(glamour.WithStylePath("dark"), glamour.WithWordWrap(msg.Width)); err == nil {
			m.renderer = r
		}
		m.viewport.SetContent(m.render())
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "b", "backspace":
			return m, func() tea.Msg { return BackMsg{} }
		}
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.viewport.View() + "\n" + theme.Muted.Render("esc: back to admin panel  ↑/↓: scroll")
}

// Markdown renders a program as a CommonMark document.
func Markdown(p catalogdto.Program) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", p.Name)
	fmt.Fprintf(&sb, "**Provider:** %s  \n**NSQF Level:** %d  \n**Duration:** %s\n\n", p.Provider, p.NSQF, p.Duration)
	sb.WriteString("## Program Description\n\n" + p.Description + "\n\n")
	sb.WriteString("## Learning Outcomes\n\n")
	for _, o := range p.LearningOutcomes {
		sb.WriteString("- " + o + "\n")
	}
	sb.WriteString("\n## Potential Job Roles\n\n")
	for _, j := range p.PotentialJobs {
		sb.WriteString("- " + j + "\n")
	}
	return sb.String()
}

func (m Model) render() string {
	if m.program.Name == "" {
		return theme.Muted.Render("No program selected")
	}
	md := Markdown(m.program)
	if m.renderer != nil {
		if out, err := m.renderer.Render(md); err == nil {
			return out
		}
	}
	return md
}
