package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Overlay is a modal view drawn over the page. While any overlay is open it
// receives all input; the page underneath gets none.
type Overlay struct {
	View    View
	Dismiss []string // keys that close it (e.g. "esc", "enter")
}

// IsDismissKey reports whether key closes this overlay.
func (o *Overlay) IsDismissKey(key string) bool {
	for _, k := range o.Dismiss {
		if k == key {
			return true
		}
	}
	return false
}

// OverlayStack manages a stack of overlays (topmost receives input first).
type OverlayStack struct {
	Stack []Overlay
}

// Push adds an overlay to the top of the stack.
func (s *OverlayStack) Push(o Overlay) {
	s.Stack = append(s.Stack, o)
}

// Pop removes and returns the top overlay.
func (s *OverlayStack) Pop() (Overlay, bool) {
	top, ok := s.Peek()
	if ok {
		s.Stack = s.Stack[:len(s.Stack)-1]
	}
	return top, ok
}

// Peek returns the top overlay without removing it.
func (s *OverlayStack) Peek() (Overlay, bool) {
	if len(s.Stack) == 0 {
		return Overlay{}, false
	}
	return s.Stack[len(s.Stack)-1], true
}

// Len returns the number of overlays in the stack.
func (s *OverlayStack) Len() int {
	return len(s.Stack)
}

// HandleKey routes a key press to the top overlay, popping it on a dismiss
// key. It reports whether an overlay was open.
func (s *OverlayStack) HandleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	top, ok := s.Peek()
	if !ok {
		return nil, false
	}
	if top.IsDismissKey(msg.String()) {
		s.Pop()
		return nil, true
	}
	return s.UpdateTop(msg)
}

// UpdateTop passes msg to the top overlay's Update and replaces its View with the result.
// Returns the cmd from the overlay's Update. Caller must run the cmd.
func (s *OverlayStack) UpdateTop(msg tea.Msg) (tea.Cmd, bool) {
	if len(s.Stack) == 0 {
		return nil, false
	}
	top := &s.Stack[len(s.Stack)-1]
	newView, cmd := top.View.Update(msg)
	top.View = newView
	return cmd, true
}

// Render centers the top overlay in a width x height area, or returns "" when empty.
func (s *OverlayStack) Render(width, height int, bg string) string {
	top, ok := s.Peek()
	if !ok {
		return ""
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, top.View.View(),
		lipgloss.WithWhitespaceBackground(lipgloss.Color(bg)))
}
