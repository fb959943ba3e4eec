package ui

import (
	"folio/internal/nav"

	tea "github.com/charmbracelet/bubbletea"
)

// handleKey routes a key press. Order: ctrl+c always quits; an open overlay
// takes everything; a page with a focused text control comes next; then the
// global bindings; finally the page, if it is interactive.
func (a *AppModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}
	if cmd, open := a.Overlays.HandleKey(msg); open {
		return cmd
	}
	if a.interactive() && a.page.CapturesInput() {
		return a.updatePage(msg)
	}
	if consumed, cmd := a.KeyHandler.Handle(msg); consumed {
		return cmd
	}
	return a.updatePage(msg)
}

// handleMouse hit-tests the bars, then forwards body events to the page with
// Y relative to the top of the body.
func (a *AppModel) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if a.Overlays.Len() > 0 {
		return nil
	}
	click := msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft
	header := a.Navbar.HeaderHeight()
	footerTop := a.height - a.Navbar.FooterHeight()

	switch {
	case msg.Y < header:
		if a.Navbar.Layout() == nav.TopBar {
			return a.barEvent(msg.X, msg.Y, msg, click)
		}
		if click && a.Navbar.ToggleHit(msg.X, msg.Y) {
			return msgCmd(ToggleThemeMsg{})
		}
		return nil
	case a.Navbar.FooterHeight() > 0 && msg.Y >= footerTop:
		return a.barEvent(msg.X, msg.Y-footerTop, msg, click)
	}

	a.Navbar.SetHover(-1)
	msg.Y -= header
	return a.updatePage(msg)
}

func (a *AppModel) barEvent(x, y int, msg tea.MouseMsg, click bool) tea.Cmd {
	hit, ok := a.Navbar.HitTest(x, y)
	if msg.Action == tea.MouseActionMotion {
		if ok && !hit.Toggle {
			a.Navbar.SetHover(hit.Entry)
		} else {
			a.Navbar.SetHover(-1)
		}
		return nil
	}
	if !click || !ok {
		return nil
	}
	if hit.Toggle {
		return msgCmd(ToggleThemeMsg{})
	}
	if path, ok := a.router.PathAt(hit.Entry); ok {
		return navigateCmd(path)
	}
	return nil
}
