package theme

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	Base     = lipgloss.Color("#1e1e2e")
	Mantle   = lipgloss.Color("#181825")
	Surface0 = lipgloss.Color("#313244")
	Surface1 = lipgloss.Color("#45475a")
	Text     = lipgloss.Color("#cdd6f4")
	Subtext0 = lipgloss.Color("#a6adc8")
	Lavender = lipgloss.Color("#b4befe")
	Mauve    = lipgloss.Color("#cba6f7")
	Sapphire = lipgloss.Color("#74c7ec")
	Green    = lipgloss.Color("#a6e3a1")
	Peach    = lipgloss.Color("#fab387")
	Red      = lipgloss.Color("#f38ba8")

	App = lipgloss.NewStyle().
		Background(Base).
		Foreground(Text).
		Padding(1, 2)

	Pane = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Surface1).
		Background(Mantle).
		Foreground(Text).
		Padding(1)

	PaneActive = Pane.BorderForeground(Lavender)

	Modal = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Mauve).
		Background(Mantle).
		Foreground(Text).
		Padding(1, 2)

	Title   = lipgloss.NewStyle().Foreground(Sapphire).Bold(true)
	Hero    = lipgloss.NewStyle().Foreground(Mauve).Bold(true)
	Muted   = lipgloss.NewStyle().Foreground(Subtext0)
	Hot     = lipgloss.NewStyle().Foreground(Peach).Bold(true)
	Done    = lipgloss.NewStyle().Foreground(Green)
	Error   = lipgloss.NewStyle().Foreground(Red).Bold(true)
	Focused = lipgloss.NewStyle().Foreground(Lavender).Bold(true)

	Chip = lipgloss.NewStyle().
		Foreground(Base).
		Background(Lavender).
		Padding(0, 1)

	NavActive = lipgloss.NewStyle().Foreground(Base).Background(Lavender).Padding(0, 1)
	NavItem   = lipgloss.NewStyle().Foreground(Subtext0).Padding(0, 1)
)

// ProgressBar draws a fixed-width bar for a percentage in [0, 100].
func ProgressBar(percent float64, width int) string {
	if width < 4 {
		width = 4
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := int(percent / 100 * float64(width))
	bar := lipgloss.NewStyle().Foreground(Green).Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(Surface1).Render(strings.Repeat("░", width-filled))
	return fmt.Sprintf("%s %3.0f%%", bar, percent)
}

// Chips renders tags on one line.
func Chips(items []string) string {
	if len(items) == 0 {
		return Muted.Render("(none)")
	}
	parts := make([]string, 0, len(items))
	for _, it := range items {
		parts = append(parts, Chip.Render(it))
	}
	return strings.Join(parts, " ")
}
