package blog

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	catalogdto "careernav/internal/modules/catalog/dto"
	"careernav/internal/ui/theme"
)

type Port interface {
	ListPosts(ctx context.Context) ([]catalogdto.Post, error)
}

type LoadedMsg struct {
	Posts []catalogdto.Post
	Err   error
}

type Model struct {
	port     Port
	posts    []catalogdto.Post
	viewport viewport.Model
	spinner  spinner.Model
	renderer *glamour.TermRenderer
	loading  bool
}

func New(port Port) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)
	r, _ := glamour.NewTermRenderer(glamour.WithStylePath("dark"), glamour.WithWordWrap(80))
	return Model{port: port, viewport: viewport.New(80, 20), spinner: sp, renderer: r}
}

func (m *Model) Activate() tea.Cmd {
	m.loading = true
	return tea.Batch(m.loadCmd(), m.spinner.Tick)
}

func (m Model) Posts() []catalogdto.Post { return m.posts }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-2, 4)
		if r, err := glamour.NewTermRenderer(glamour.WithStylePath("dark"), glamour.WithWordWrap(msg.Width)); err == nil {
			m.renderer = r
		}
		if !m.loading {
			m.viewport.SetContent(m.render(nil))
		}
		return m, nil
	case LoadedMsg:
		m.loading = false
		if msg.Err == nil {
			m.posts = msg.Posts
		}
		m.viewport.SetContent(m.render(msg.Err))
		m.viewport.GotoTop()
		return m, nil
	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.loading {
		return m.spinner.View() + " Loading articles…"
	}
	return m.viewport.View()
}

func Markdown(posts []catalogdto.Post) string {
	var sb strings.Builder
	sb.WriteString("# Career Insights Blog\n\n")
	sb.WriteString("Stay updated with the latest trends, tips, and guides for your career journey.\n\n")
	for _, p := range posts {
		sb.WriteString("---\n\n")
		sb.WriteString("*" + p.Category + "*\n\n")
		sb.WriteString("## " + p.Title + "\n\n")
		sb.WriteString(p.Excerpt + "\n\n")
	}
	return sb.String()
}

func (m Model) render(err error) string {
	if err != nil {
		return theme.Error.Render("Could not load articles: " + err.Error())
	}
	md := Markdown(m.posts)
	if m.renderer != nil {
		if out, rerr := m.renderer.Render(md); rerr == nil {
			return out
		}
	}
	return md
}

func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		posts, err := m.port.ListPosts(context.Background())
		return LoadedMsg{Posts: posts, Err: err}
	}
}
