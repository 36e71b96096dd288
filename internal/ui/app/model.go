package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	careerdetaildto "careernav/internal/modules/careerdetail/dto"
	catalogdto "careernav/internal/modules/catalog/dto"
	navigationdto "careernav/internal/modules/navigation/dto"
	onboardingdto "careernav/internal/modules/onboarding/dto"
	"careernav/internal/ui/components"
	"careernav/internal/ui/theme"
	adminview "careernav/internal/ui/views/admin"
	adminloginview "careernav/internal/ui/views/adminlogin"
	authview "careernav/internal/ui/views/auth"
	blogview "careernav/internal/ui/views/blog"
	dashboardview "careernav/internal/ui/views/dashboard"
	landingview "careernav/internal/ui/views/landing"
	onboardingview "careernav/internal/ui/views/onboarding"
	programview "careernav/internal/ui/views/programdetails"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type NavigationPort interface {
	Session() navigationdto.SessionOutput
	Go(ctx context.Context, raw string) (navigationdto.SessionOutput, error)
	Navigate(ctx context.Context, target navigationdto.ScreenKind) navigationdto.SessionOutput
	CompleteOnboarding(ctx context.Context, profile onboardingdto.Profile) navigationdto.SessionOutput
	CompleteAdminLogin(ctx context.Context, username, password string) (navigationdto.SessionOutput, bool)
	CompleteAuth(ctx context.Context) navigationdto.SessionOutput
	SelectProgram(ctx context.Context, program catalogdto.Program) navigationdto.SessionOutput
	BackFromProgram(ctx context.Context) navigationdto.SessionOutput
	Logout(ctx context.Context) navigationdto.SessionOutput
}

type CatalogPort interface {
	ListLearners(ctx context.Context) ([]catalogdto.Learner, error)
	ListPrograms(ctx context.Context) ([]catalogdto.Program, error)
	RecommendedPathway(ctx context.Context) (catalogdto.PathwayOutput, error)
	TogglePathwayStep(current catalogdto.PathwayOutput, step int) (catalogdto.PathwayOutput, error)
	ListPosts(ctx context.Context) ([]catalogdto.Post, error)
}

type DetailsPort interface {
	Open(ctx context.Context, programName string) (careerdetaildto.FetchState, func() careerdetaildto.Result)
	Apply(result careerdetaildto.Result) (careerdetaildto.FetchState, bool)
	Close() careerdetaildto.FetchState
	Format(text string) careerdetaildto.Rendered
}

// ─── key bindings ────────────────────────────────────────────────────────────

type keyMap struct {
	Home      key.Binding
	Dashboard key.Binding
	Blog      key.Binding
	Admin     key.Binding
	Account   key.Binding
	Palette   key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Home:      key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "home")),
		Dashboard: key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "dashboard")),
		Blog:      key.NewBinding(key.WithKeys("ctrl+b"), key.WithHelp("ctrl+b", "blog")),
		Admin:     key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("ctrl+a", "admin")),
		Account:   key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "login/logout")),
		Palette:   key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "palette")),
		Help:      key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "help")),
		Quit:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Dashboard, k.Blog, k.Account, k.Palette, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Home, k.Dashboard, k.Blog, k.Admin},
		{k.Account, k.Palette},
		{k.Help, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It renders exactly one screen, the one
// the navigation controller reports, plus the header and status bar. Screen
// views never switch screens themselves; they emit messages handled here.
type Model struct {
	nav     NavigationPort
	details DetailsPort
	session navigationdto.SessionOutput

	landing    landingview.Model
	auth       authview.Model
	adminLogin adminloginview.Model
	onboarding onboardingview.Model
	dashboard  dashboardview.Model
	admin      adminview.Model
	program    programview.Model
	blog       blogview.Model

	keys     keyMap
	help     help.Model
	showHelp bool
	palette  components.Palette
	status   string
	width    int
	height   int
}

func NewModel(nav NavigationPort, wizard onboardingview.Port, catalog CatalogPort, details DetailsPort) Model {
	return Model{
		nav:        nav,
		details:    details,
		session:    nav.Session(),
		landing:    landingview.New(),
		auth:       authview.New(),
		adminLogin: adminloginview.New(),
		onboarding: onboardingview.New(wizard),
		dashboard:  dashboardview.New(catalog, details),
		admin:      adminview.New(catalog),
		program:    programview.New(),
		blog:       blogview.New(catalog),
		keys:       defaultKeys(),
		help:       help.New(),
		palette:    components.NewPalette(),
		status:     "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("AI Career Navigator")
}

func (m Model) Screen() navigationdto.ScreenKind { return m.session.Screen }
func (m Model) Status() string                   { return m.status }

// ─── update ──────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.palette.Visible() {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		return m, cmd
	}

	ctx := context.Background()
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.palette.SetWidth(min(msg.Width-4, 80))
		m.propagateSize()
		return m, nil

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "ready"
		return m, nil

	case components.NavigateMsg:
		return m.show(m.nav.Navigate(ctx, msg.Target))

	case authview.SubmittedMsg:
		return m.show(m.nav.CompleteAuth(ctx))

	case adminloginview.SubmittedMsg:
		out, ok := m.nav.CompleteAdminLogin(ctx, msg.Username, msg.Password)
		if !ok {
			m.adminLogin.Reject()
			m.status = "admin login rejected"
			return m, nil
		}
		m.status = "signed in as admin"
		return m.show(out)

	case onboardingview.CompletedMsg:
		m.status = fmt.Sprintf("welcome, %s! aptitude check %d/3", msg.Profile.Name, msg.Score)
		return m.show(m.nav.CompleteOnboarding(ctx, msg.Profile))

	case adminview.SelectProgramMsg:
		return m.show(m.nav.SelectProgram(ctx, msg.Program))

	case programview.BackMsg:
		return m.show(m.nav.BackFromProgram(ctx))

	case dashboardview.PathwayLoadedMsg, dashboardview.DetailsResultMsg:
		var cmd tea.Cmd
		m.dashboard, cmd = m.dashboard.Update(msg)
		return m, cmd

	case adminview.LoadedMsg:
		var cmd tea.Cmd
		m.admin, cmd = m.admin.Update(msg)
		return m, cmd

	case blogview.LoadedMsg:
		var cmd tea.Cmd
		m.blog, cmd = m.blog.Update(msg)
		return m, cmd

	case spinner.TickMsg:
		var dCmd, bCmd tea.Cmd
		m.dashboard, dCmd = m.dashboard.Update(msg)
		m.blog, bCmd = m.blog.Update(msg)
		return m, tea.Batch(dCmd, bCmd)

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "esc" || key.Matches(msg, m.keys.Help) || msg.String() == "?" {
				m.showHelp = false
			}
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.showHelp = true
			return m, nil
		case key.Matches(msg, m.keys.Palette):
			cmd := m.palette.Open()
			return m, cmd
		case key.Matches(msg, m.keys.Home):
			return m.show(m.nav.Navigate(ctx, navigationdto.ScreenLanding))
		case key.Matches(msg, m.keys.Dashboard):
			return m.show(m.nav.Navigate(ctx, navigationdto.ScreenDashboard))
		case key.Matches(msg, m.keys.Blog):
			return m.show(m.nav.Navigate(ctx, navigationdto.ScreenBlog))
		case key.Matches(msg, m.keys.Admin):
			return m.show(m.nav.Navigate(ctx, navigationdto.ScreenAdmin))
		case key.Matches(msg, m.keys.Account):
			if m.session.Profile != nil {
				return m.logout()
			}
			return m.show(m.nav.Navigate(ctx, navigationdto.ScreenAuth))
		}
		if !m.textEntry() && !m.dashboard.ModalOpen() {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "?":
				m.showHelp = true
				return m, nil
			case ":":
				cmd := m.palette.Open()
				return m, cmd
			}
		}
	}

	return m.updateScreen(msg)
}

func (m Model) updateScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.session.Screen {
	case navigationdto.ScreenLanding:
		m.landing, cmd = m.landing.Update(msg)
	case navigationdto.ScreenAuth:
		m.auth, cmd = m.auth.Update(msg)
	case navigationdto.ScreenAdminLogin:
		m.adminLogin, cmd = m.adminLogin.Update(msg)
	case navigationdto.ScreenOnboarding:
		m.onboarding, cmd = m.onboarding.Update(msg)
	case navigationdto.ScreenDashboard:
		m.dashboard, cmd = m.dashboard.Update(msg)
	case navigationdto.ScreenAdmin:
		m.admin, cmd = m.admin.Update(msg)
	case navigationdto.ScreenProgramDetails:
		m.program, cmd = m.program.Update(msg)
	case navigationdto.ScreenBlog:
		m.blog, cmd = m.blog.Update(msg)
	}
	return m, cmd
}

// show applies a new session snapshot and prepares the screen it names.
func (m Model) show(out navigationdto.SessionOutput) (tea.Model, tea.Cmd) {
	prev := m.session
	m.session = out
	if prev.Screen == navigationdto.ScreenDashboard && out.Screen != navigationdto.ScreenDashboard {
		m.dashboard.Deactivate()
	}
	if prev.Screen == out.Screen && out.Screen != navigationdto.ScreenProgramDetails {
		return m, nil
	}

	switch out.Screen {
	case navigationdto.ScreenAuth:
		cmd := m.auth.Activate()
		return m, cmd
	case navigationdto.ScreenAdminLogin:
		cmd := m.adminLogin.Activate()
		return m, cmd
	case navigationdto.ScreenOnboarding:
		cmd := m.onboarding.Activate()
		return m, cmd
	case navigationdto.ScreenDashboard:
		cmd := m.dashboard.Activate(out.Profile)
		return m, cmd
	case navigationdto.ScreenAdmin:
		cmd := m.admin.Activate()
		return m, cmd
	case navigationdto.ScreenProgramDetails:
		if out.Program != nil {
			m.program.Show(*out.Program)
		}
	case navigationdto.ScreenBlog:
		cmd := m.blog.Activate()
		return m, cmd
	}
	return m, nil
}

func (m Model) logout() (tea.Model, tea.Cmd) {
	m.status = "logged out"
	return m.show(m.nav.Logout(context.Background()))
}

// textEntry reports whether the current screen consumes printable keys.
func (m Model) textEntry() bool {
	switch m.session.Screen {
	case navigationdto.ScreenAuth, navigationdto.ScreenAdminLogin, navigationdto.ScreenOnboarding:
		return true
	}
	return false
}

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: max(m.height-4, 1)}
	m.landing, _ = m.landing.Update(sz)
	m.onboarding, _ = m.onboarding.Update(sz)
	m.dashboard, _ = m.dashboard.Update(sz)
	m.admin, _ = m.admin.Update(sz)
	m.program, _ = m.program.Update(sz)
	m.blog, _ = m.blog.Update(sz)
}

// ─── palette execution ───────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return m, nil
	}
	switch parts[0] {
	case "go":
		if len(parts) < 2 {
			m.status = "usage: go <screen>"
			return m, nil
		}
		out, err := m.nav.Go(context.Background(), strings.Join(parts[1:], " "))
		if err != nil {
			m.status = err.Error()
			return m, nil
		}
		return m.show(out)
	case "logout":
		return m.logout()
	case "onboarding:reset":
		if m.session.Screen == navigationdto.ScreenOnboarding {
			cmd := m.onboarding.Activate()
			return m, cmd
		}
		return m.show(m.nav.Navigate(context.Background(), navigationdto.ScreenOnboarding))
	case "help":
		m.showHelp = true
		return m, nil
	case "quit":
		return m, tea.Quit
	default:
		m.status = "unknown command: " + parts[0]
	}
	return m, nil
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	header := m.renderHeader()
	statusBar := m.renderStatusBar()
	contentH := max(m.height-lipgloss.Height(header)-lipgloss.Height(statusBar), 1)

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH, lipgloss.Center, lipgloss.Center, m.palette.View())
	default:
		content = m.activeView()
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
}

func (m Model) activeView() string {
	switch m.session.Screen {
	case navigationdto.ScreenLanding:
		return m.landing.View()
	case navigationdto.ScreenAuth:
		return m.auth.View()
	case navigationdto.ScreenAdminLogin:
		return m.adminLogin.View()
	case navigationdto.ScreenOnboarding:
		return m.onboarding.View()
	case navigationdto.ScreenDashboard:
		return m.dashboard.View()
	case navigationdto.ScreenAdmin:
		return m.admin.View()
	case navigationdto.ScreenProgramDetails:
		return m.program.View()
	case navigationdto.ScreenBlog:
		return m.blog.View()
	}
	return ""
}

func (m Model) renderHeader() string {
	item := func(label string, kind navigationdto.ScreenKind) string {
		if m.session.Screen == kind {
			return theme.NavActive.Render(label)
		}
		return theme.NavItem.Render(label)
	}
	parts := []string{item("Dashboard", navigationdto.ScreenDashboard), item("Blog", navigationdto.ScreenBlog)}
	if m.session.Profile != nil {
		parts = append(parts, theme.NavItem.Render("Logout"))
	} else {
		parts = append(parts, item("Login", navigationdto.ScreenAuth))
	}
	if m.session.AdminAuthenticated {
		parts = append(parts, item("Admin", navigationdto.ScreenAdmin))
	}
	bar := theme.Hero.Render("AI Career Navigator") + "   " + strings.Join(parts, " ")
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := theme.Muted.Render("["+string(m.session.Screen)+"]") + " " + m.status
	right := theme.Muted.Render("f1:help  ctrl+p:palette  ctrl+c:quit")
	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}
