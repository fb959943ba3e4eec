package ui

import tea "github.com/charmbracelet/bubbletea"

// NavigateMsg asks the app to change route.
type NavigateMsg struct {
	Path string
}

// StepRouteMsg moves to the previous (-1) or next (+1) route, wrapping.
type StepRouteMsg struct {
	Delta int
}

// ToggleThemeMsg flips between light and dark.
type ToggleThemeMsg struct{}

// SubmitContactMsg submits the contact form if the contact page is mounted (SPC c s).
type SubmitContactMsg struct{}

// FocusContactMsg focuses the first contact field (SPC c f).
type FocusContactMsg struct{}

func navigateCmd(path string) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Path: path} }
}

func msgCmd(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
