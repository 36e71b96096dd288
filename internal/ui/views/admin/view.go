package admin

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	catalogdto "careernav/internal/modules/catalog/dto"
	"careernav/internal/ui/theme"
)

type Port interface {
	ListLearners(ctx context.Context) ([]catalogdto.Learner, error)
	ListPrograms(ctx context.Context) ([]catalogdto.Program, error)
}

type LoadedMsg struct {
	Learners []catalogdto.Learner
	Programs []catalogdto.Program
	Err      error
}

// SelectProgramMsg asks the root model to open the details page.
type SelectProgramMsg struct {
	Program catalogdto.Program
}

type pane int

const (
	paneUsers pane = iota
	panePrograms
)

type Model struct {
	port     Port
	users    table.Model
	programs table.Model
	rows     []catalogdto.Program
	active   pane
	err      error
	width    int
}

func New(port Port) Model {
	users := table.New(
		table.WithColumns([]table.Column{
			{Title: "Name", Width: 16},
			{Title: "Education", Width: 22},
			{Title: "Skills", Width: 30},
			{Title: "Progress", Width: 8},
		}),
		table.WithHeight(6),
	)
	programs := table.New(
		table.WithColumns([]table.Column{
			{Title: "ID", Width: 5},
			{Title: "Program Name", Width: 36},
			{Title: "NSQF", Width: 5},
			{Title: "Provider", Width: 20},
			{Title: "Duration", Width: 10},
		}),
		table.WithHeight(6),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.BorderForeground(theme.Surface1).Foreground(theme.Sapphire).Bold(true)
	styles.Selected = styles.Selected.Foreground(theme.Base).Background(theme.Lavender)
	users.SetStyles(styles)
	programs.SetStyles(styles)

	m := Model{port: port, users: users, programs: programs}
	m.focus(paneUsers)
	return m
}

// Activate reloads both tables.
func (m *Model) Activate() tea.Cmd {
	return m.loadCmd()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case LoadedMsg:
		m.err = msg.Err
		if msg.Err != nil {
			return m, nil
		}
		userRows := make([]table.Row, 0, len(msg.Learners))
		for _, l := range msg.Learners {
			userRows = append(userRows, table.Row{l.Name, l.Education, strings.Join(l.Skills, ", "), l.Progress})
		}
		m.users.SetRows(userRows)
		programRows := make([]table.Row, 0, len(msg.Programs))
		for _, p := range msg.Programs {
			programRows = append(programRows, table.Row{p.ID, p.Name, fmt.Sprintf("%d", p.NSQF), p.Provider, p.Duration})
		}
		m.rows = msg.Programs
		m.programs.SetRows(programRows)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "shift+tab":
			if m.active == paneUsers {
				m.focus(panePrograms)
			} else {
				m.focus(paneUsers)
			}
			return m, nil
		case "enter":
			if m.active == panePrograms {
				if p, ok := m.SelectedProgram(); ok {
					return m, func() tea.Msg { return SelectProgramMsg{Program: p} }
				}
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	if m.active == paneUsers {
		m.users, cmd = m.users.Update(msg)
	} else {
		m.programs, cmd = m.programs.Update(msg)
	}
	return m, cmd
}

func (m Model) SelectedProgram() (catalogdto.Program, bool) {
	i := m.programs.Cursor()
	if i < 0 || i >= len(m.rows) {
		return catalogdto.Program{}, false
	}
	return m.rows[i], true
}

func (m *Model) focus(p pane) {
	m.active = p
	if p == paneUsers {
		m.users.Focus()
		m.programs.Blur()
	} else {
		m.programs.Focus()
		m.users.Blur()
	}
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Admin Panel") + "\n\n")
	if m.err != nil {
		sb.WriteString(theme.Error.Render("Could not load data: "+m.err.Error()) + "\n\n")
	}
	usersPane, programsPane := theme.Pane, theme.Pane
	if m.active == paneUsers {
		usersPane = theme.PaneActive
	} else {
		programsPane = theme.PaneActive
	}
	sb.WriteString(lipgloss.JoinVertical(lipgloss.Left,
		usersPane.Render(theme.Hot.Render("User Management")+"\n"+m.users.View()),
		programsPane.Render(theme.Hot.Render("Program Management")+"\n"+m.programs.View()),
	))
	sb.WriteString("\n" + theme.Muted.Render("tab: switch table  ↑/↓: move  enter: view program"))
	return sb.String()
}

func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		learners, err := m.port.ListLearners(ctx)
		if err != nil {
			return LoadedMsg{Err: err}
		}
		programs, err := m.port.ListPrograms(ctx)
		return LoadedMsg{Learners: learners, Programs: programs, Err: err}
	}
}
