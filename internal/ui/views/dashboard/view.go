package dashboard

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	careerdetaildto "careernav/internal/modules/careerdetail/dto"
	catalogdto "careernav/internal/modules/catalog/dto"
	onboardingdto "careernav/internal/modules/onboarding/dto"
	"careernav/internal/ui/theme"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type PathwayPort interface {
	RecommendedPathway(ctx context.Context) (catalogdto.PathwayOutput, error)
	TogglePathwayStep(current catalogdto.PathwayOutput, step int) (catalogdto.PathwayOutput, error)
}

type DetailsPort interface {
	Open(ctx context.Context, programName string) (careerdetaildto.FetchState, func() careerdetaildto.Result)
	Apply(result careerdetaildto.Result) (careerdetaildto.FetchState, bool)
	Close() careerdetaildto.FetchState
	Format(text string) careerdetaildto.Rendered
}

// ─── messages ────────────────────────────────────────────────────────────────

type PathwayLoadedMsg struct {
	Pathway catalogdto.PathwayOutput
	Err     error
}

// DetailsResultMsg carries a finished career-detail request. Results from a
// superseded or closed request are dropped by the flow.
type DetailsResultMsg struct {
	Result careerdetaildto.Result
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	pathwayPort PathwayPort
	details     DetailsPort

	profile *onboardingdto.Profile
	pathway catalogdto.PathwayOutput
	cursor  int
	loading bool
	err     error

	modal    bool
	fetch    careerdetaildto.FetchState
	spinner  spinner.Model
	viewport viewport.Model
	renderer *glamour.TermRenderer

	width  int
	height int
}

func New(pathwayPort PathwayPort, details DetailsPort) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	r, _ := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(60),
	)
	return Model{
		pathwayPort: pathwayPort,
		details:     details,
		spinner:     sp,
		viewport:    viewport.New(64, 16),
		renderer:    r,
	}
}

// Activate shows the dashboard for profile and reloads the pathway.
func (m *Model) Activate(profile *onboardingdto.Profile) tea.Cmd {
	m.profile = profile
	m.loading = true
	m.cursor = 0
	m.err = nil
	return tea.Batch(m.loadPathwayCmd(), m.spinner.Tick)
}

// Deactivate closes the details modal, cancelling any request in flight.
func (m *Model) Deactivate() {
	if m.modal {
		m.fetch = m.details.Close()
		m.modal = false
	}
}

func (m Model) ModalOpen() bool                   { return m.modal }
func (m Model) Fetch() careerdetaildto.FetchState { return m.fetch }
func (m Model) Pathway() catalogdto.PathwayOutput { return m.pathway }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case PathwayLoadedMsg:
		m.loading = false
		m.err = msg.Err
		if msg.Err == nil {
			m.pathway = msg.Pathway
		}
		return m, nil

	case DetailsResultMsg:
		state, applied := m.details.Apply(msg.Result)
		if applied && m.modal {
			m.fetch = state
			m.viewport.SetContent(m.renderDetails())
			m.viewport.GotoTop()
		}
		return m, nil

	case spinner.TickMsg:
		if m.loading || (m.modal && m.fetch.Loading()) {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		if m.modal {
			return m.updateModal(msg)
		}
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.pathway.Steps)-1 {
				m.cursor++
			}
		case " ", "x":
			if step, ok := m.selected(); ok {
				updated, err := m.pathwayPort.TogglePathwayStep(m.pathway, step.Step)
				if err == nil {
					m.pathway = updated
				}
			}
		case "enter", "l":
			if step, ok := m.selected(); ok {
				return m.openDetails(step.ProgramName)
			}
		}
	}
	return m, nil
}

func (m Model) updateModal(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.Deactivate()
		return m, nil
	case "r":
		return m.openDetails(m.fetch.ProgramName)
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// openDetails starts a fetch. Re-opening the same program always fetches
// again.
func (m Model) openDetails(programName string) (Model, tea.Cmd) {
	state, run := m.details.Open(context.Background(), programName)
	m.modal = true
	m.fetch = state
	m.viewport.SetContent("")
	fetch := func() tea.Msg { return DetailsResultMsg{Result: run()} }
	return m, tea.Batch(fetch, m.spinner.Tick)
}

func (m Model) selected() (catalogdto.PathwayStep, bool) {
	if m.cursor < 0 || m.cursor >= len(m.pathway.Steps) {
		return catalogdto.PathwayStep{}, false
	}
	return m.pathway.Steps[m.cursor], true
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(max(m.width, 20), max(m.height, 3), lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading your pathway…")
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), "  ", m.renderPathway())
	if !m.modal {
		return body
	}
	return lipgloss.Place(max(m.width, lipgloss.Width(body)), max(m.height, lipgloss.Height(body)),
		lipgloss.Center, lipgloss.Center, m.renderModal())
}

func (m Model) renderSidebar() string {
	var sb strings.Builder
	if p := m.profile; p != nil {
		sb.WriteString(theme.Title.Render(p.Name) + "\n")
		sb.WriteString(theme.Muted.Render(fmt.Sprintf("%s (%s)", p.Education, p.Stream)) + "\n\n")
	}
	sb.WriteString(theme.Hot.Render("Pathway Progress") + "\n")
	sb.WriteString(theme.ProgressBar(m.pathway.Progress, 20) + "\n\n")
	if p := m.profile; p != nil {
		sb.WriteString(theme.Hot.Render("Skills") + "\n" + theme.Chips(p.Skills) + "\n\n")
		sb.WriteString(theme.Hot.Render("Aspirations") + "\n" + theme.Chips(p.Aspirations))
	}
	return theme.Pane.Width(34).Render(sb.String())
}

func (m Model) renderPathway() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Your Personalized Learning Pathway") + "\n\n")
	if m.err != nil {
		sb.WriteString(theme.Error.Render("Could not load pathway: "+m.err.Error()) + "\n")
	}
	for i, s := range m.pathway.Steps {
		marker := fmt.Sprintf("(%d)", s.Step)
		name := s.ProgramName
		if s.Completed {
			marker = theme.Done.Render("(✓)")
			name = theme.Done.Render(name)
		}
		cursor := "  "
		if i == m.cursor {
			cursor = theme.Focused.Render("▸ ")
			name = theme.Focused.Render(s.ProgramName)
		}
		sb.WriteString(cursor + marker + " " + name + "\n")
		sb.WriteString("      " + theme.Muted.Render(fmt.Sprintf("NSQF Level %d · %s · %s", s.NSQFLevel, s.Duration, s.Mode)) + "\n\n")
	}
	sb.WriteString(theme.Muted.Render("↑/↓: select  space: mark complete  enter: learn more"))
	return sb.String()
}

func (m Model) renderModal() string {
	var body string
	switch {
	case m.fetch.Loading():
		body = m.spinner.View() + " Fetching career insights…"
	case m.fetch.Failed():
		body = theme.Error.Render("Error Fetching Details") + "\n\n" + theme.Muted.Render(m.fetch.Text) +
			"\n\n" + theme.Muted.Render("r: retry")
	default:
		body = m.viewport.View()
	}
	header := theme.Title.Render(m.fetch.ProgramName) + "  " + theme.Muted.Render("esc: close")
	return theme.Modal.Width(m.viewport.Width + 4).Render(header + "\n\n" + body)
}

func (m Model) renderDetails() string {
	rendered := m.details.Format(m.fetch.Text)
	if m.renderer != nil {
		if out, err := m.renderer.Render(rendered.Markdown); err == nil {
			return out
		}
	}
	return rendered.Markdown
}

func (m *Model) resize() {
	w := m.width * 2 / 3
	if w < 40 {
		w = 40
	}
	m.viewport.Width = w
	m.viewport.Height = max(m.height-10, 6)
	if r, err := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(w-2),
	); err == nil {
		m.renderer = r
	}
}

func (m Model) loadPathwayCmd() tea.Cmd {
	return func() tea.Msg {
		pathway, err := m.pathwayPort.RecommendedPathway(context.Background())
		return PathwayLoadedMsg{Pathway: pathway, Err: err}
	}
}
