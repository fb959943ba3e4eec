package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// noticeDismissKeys close a NoticeModal.
var noticeDismissKeys = []string{"enter", "esc", " "}

// NoticeModal is a blocking message the user must acknowledge. Enter or Esc
// dismisses it.
type NoticeModal struct {
	Text   string
	styles Styles
}

var _ View = (*NoticeModal)(nil)

// NewNoticeModal returns a notice showing text.
func NewNoticeModal(text string, st Styles) *NoticeModal {
	return &NoticeModal{Text: text, styles: st}
}

// Overlay wraps the notice for an OverlayStack.
func (m *NoticeModal) Overlay() Overlay {
	return Overlay{View: m, Dismiss: noticeDismissKeys}
}

// Init implements View.
func (m *NoticeModal) Init() tea.Cmd { return nil }

// Update implements View.
func (m *NoticeModal) Update(tea.Msg) (View, tea.Cmd) { return m, nil }

// View implements View.
func (m *NoticeModal) View() string {
	st := m.styles
	body := st.Danger.Bold(true).Render(m.Text) + "\n\n" + st.Hint.Render("enter to dismiss")
	return st.BoxDanger.Render(body)
}
