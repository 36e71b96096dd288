package components

import (
	tea "github.com/charmbracelet/bubbletea"

	navigationdto "careernav/internal/modules/navigation/dto"
)

// NavigateMsg asks the root model to move to another screen. Screens never
// switch themselves; the navigation controller decides where a request lands.
type NavigateMsg struct {
	Target navigationdto.ScreenKind
}

func Navigate(target navigationdto.ScreenKind) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Target: target} }
}
