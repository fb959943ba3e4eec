package ui

import (
	"strings"

	"folio/internal/content"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ProjectModal shows the long form of one project. It is rendered by the
// projects page from its current selection; it holds no selection itself.
type ProjectModal struct {
	Project content.Project
	styles  Styles
	width   int
}

var _ View = (*ProjectModal)(nil)

// NewProjectModal returns a detail modal for p sized to fit width columns.
func NewProjectModal(p content.Project, st Styles, width int) *ProjectModal {
	return &ProjectModal{Project: p, styles: st, width: width}
}

// Init implements View.
func (m *ProjectModal) Init() tea.Cmd { return nil }

// Update implements View. Keys are interpreted by the owning page.
func (m *ProjectModal) Update(tea.Msg) (View, tea.Cmd) { return m, nil }

// View implements View.
func (m *ProjectModal) View() string {
	st := m.styles
	w := min(max(m.width-8, 24), 72)
	inner := w - 6
	text := func(s lipgloss.Style, v string) string { return s.Width(inner).Render(v) }

	var tags []string
	for _, t := range m.Project.Tech {
		tags = append(tags, st.Tag.Render(t))
	}
	var features []string
	for _, f := range m.Project.Features {
		features = append(features, text(st.Base, "• "+f))
	}

	parts := []string{
		text(st.Accent, m.Project.Title),
		"",
		text(st.Base, m.Project.LongDescription),
		"",
		text(st.Title, "Key Features"),
		strings.Join(features, "\n"),
		"",
		text(st.Title, "Technologies"),
		strings.Join(tags, st.Base.Render(" ")),
		"",
		text(st.Hint, "esc close · n/p next/prev"),
	}
	return st.Box.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
