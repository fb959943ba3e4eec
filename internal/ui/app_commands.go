package ui

import (
	"strconv"
	"strings"

	"folio/internal/nav"

	tea "github.com/charmbracelet/bubbletea"
)

// leaderRouteKeys maps SPC g <key> to a route.
var leaderRouteKeys = map[string]string{
	"h": nav.PathHome,
	"a": nav.PathAbout,
	"s": nav.PathSkills,
	"p": nav.PathProjects,
	"e": nav.PathExperience,
	"c": nav.PathContact,
}

// newAppRegistry builds the global key bindings for entries.
//
// Single keys: q quits, t toggles the theme, 1-9 jump to a route, h/l and
// left/right step through routes. Leader sequences mirror them under SPC and
// add the contact form actions, which are live on the contact route only.
func newAppRegistry(entries []nav.Entry) *KeybindRegistry {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("q", tea.Quit, "Quit")
	reg.BindWithDesc("ctrl+c", tea.Quit, "Quit")
	reg.BindWithDesc("t", msgCmd(ToggleThemeMsg{}), "Toggle theme")
	reg.BindWithDesc("h", msgCmd(StepRouteMsg{Delta: -1}), "Previous page")
	reg.BindWithDesc("left", msgCmd(StepRouteMsg{Delta: -1}), "Previous page")
	reg.BindWithDesc("l", msgCmd(StepRouteMsg{Delta: 1}), "Next page")
	reg.BindWithDesc("right", msgCmd(StepRouteMsg{Delta: 1}), "Next page")
	for i, e := range entries {
		if i >= 9 {
			break
		}
		reg.BindWithDesc(strconv.Itoa(i+1), navigateCmd(e.Path), e.Label)
	}

	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	reg.BindWithDesc("SPC t", msgCmd(ToggleThemeMsg{}), "Toggle theme")
	for k, path := range leaderRouteKeys {
		reg.BindWithDesc("SPC g "+k, navigateCmd(path), labelFor(entries, path))
	}
	contactOnly := []string{nav.PathContact}
	reg.BindWithDescForRoutes("SPC c s", msgCmd(SubmitContactMsg{}), "Send message", contactOnly)
	reg.BindWithDescForRoutes("SPC c f", msgCmd(FocusContactMsg{}), "Focus form", contactOnly)
	return reg
}

func labelFor(entries []nav.Entry, path string) string {
	if i := nav.ActiveIndex(entries, path); i >= 0 {
		return entries[i].Label
	}
	return strings.TrimPrefix(path, "/")
}
