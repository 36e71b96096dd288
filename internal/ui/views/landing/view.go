package landing

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	navigationdto "careernav/internal/modules/navigation/dto"
	"careernav/internal/ui/components"
	"careernav/internal/ui/theme"
)

type feature struct {
	title string
	text  string
}

var features = []feature{
	{"Multi-step Onboarding", "Build a comprehensive learner profile through a simple onboarding process."},
	{"Personalized Recommendations", "Receive career pathways tailored to your skills and aspirations."},
	{"NSQF Mapping", "Every recommended program is mapped to the National Skills Qualifications Framework."},
	{"Skill Progression", "Track your learning journey and your progress towards your career goals."},
}

const mission = "We aim to bridge the gap between education and employment in India by providing " +
	"personalized vocational guidance, connecting learners with NSQF-aligned programs."

type Model struct {
	width  int
	height int
}

func New() Model { return Model{} }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "enter", "g":
			return m, components.Navigate(navigationdto.ScreenAuth)
		case "b":
			return m, components.Navigate(navigationdto.ScreenBlog)
		}
	}
	return m, nil
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(theme.Hero.Render("AI-Powered Career Navigator") + "\n\n")
	sb.WriteString(theme.Muted.Render("Discover personalized vocational pathways aligned with your profile and market demands.") + "\n\n")
	sb.WriteString(theme.Hot.Render("[enter] Get Started") + "   " + theme.Muted.Render("[b] Blog") + "\n\n")

	cardW := 34
	if m.width > 0 && m.width/2-4 > cardW {
		cardW = m.width/2 - 4
	}
	cards := make([]string, 0, len(features))
	for _, f := range features {
		cards = append(cards, theme.Pane.Width(cardW).Render(theme.Title.Render(f.title)+"\n"+f.text))
	}
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards[0], cards[1]) + "\n")
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards[2], cards[3]) + "\n\n")
	sb.WriteString(theme.Title.Render("Our Mission") + "\n")
	sb.WriteString(lipgloss.NewStyle().Width(max(m.width-4, 40)).Render(mission))
	return sb.String()
}
