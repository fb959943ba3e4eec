package ui

import (
	"strings"
	"time"

	"folio/internal/content"
	"folio/internal/nav"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	aboutMargin  = "-100px"
	aboutStagger = 150 * time.Millisecond
)

// AboutPage shows the bio, quick facts and interests.
type AboutPage struct {
	*scroller
	profile content.Profile
}

var _ Page = (*AboutPage)(nil)

// NewAboutPage mounts the about page.
func NewAboutPage(env Env) *AboutPage {
	p := &AboutPage{profile: content.Owner()}
	h := content.HeadingFor("about")
	p.scroller = newScroller(env, []block{
		{id: "heading", render: func(w int, st Styles, _ time.Time) string {
			return heading(h.Lead, h.Accent, h.Subtitle, w, st)
		}},
		{id: "bio", render: p.renderBio, reveal: &revealSpec{margin: aboutMargin}},
		{id: "facts", render: p.renderFacts, reveal: &revealSpec{margin: aboutMargin, delay: aboutStagger}},
		{id: "interests", render: p.renderInterests, reveal: &revealSpec{margin: aboutMargin, delay: 2 * aboutStagger}},
	})
	return p
}

// Path implements Page.
func (p *AboutPage) Path() string { return nav.PathAbout }

// Init implements View.
func (p *AboutPage) Init() tea.Cmd { return nil }

// SetSize implements Page.
func (p *AboutPage) SetSize(width, height int) tea.Cmd { return p.setSize(width, height) }

// Restyle implements Page.
func (p *AboutPage) Restyle() { p.restyle() }

// CapturesInput implements Page.
func (p *AboutPage) CapturesInput() bool { return false }

// Teardown implements Page.
func (p *AboutPage) Teardown() { p.teardown() }

// Update implements View.
func (p *AboutPage) Update(msg tea.Msg) (View, tea.Cmd) {
	cmd, _ := p.update(msg)
	return p, cmd
}

// View implements View.
func (p *AboutPage) View() string { return p.view() }

func (p *AboutPage) cardStyle(id string, st Styles) lipgloss.Style {
	if p.hovered == id {
		return st.CardHover
	}
	return st.Card
}

func (p *AboutPage) renderBio(width int, st Styles, _ time.Time) string {
	avatar := st.Accent.Padding(1, 2).Render(p.profile.Initials)
	text := st.Base.Width(max(10, width-lipgloss.Width(avatar)-6)).Render(p.profile.Bio)
	body := lipgloss.JoinHorizontal(lipgloss.Center, avatar, st.Base.Render("  "), text)
	return p.cardStyle("bio", st).Width(width - 2).Render(body)
}

func (p *AboutPage) renderFacts(width int, st Styles, _ time.Time) string {
	lines := []string{
		st.Accent.Render("⌖ ") + st.Base.Render(p.profile.Location),
		st.Accent.Render("◆ ") + st.Base.Render(p.profile.Experience),
	}
	return p.cardStyle("facts", st).Width(width - 2).Render(strings.Join(lines, "\n"))
}

func (p *AboutPage) renderInterests(width int, st Styles, _ time.Time) string {
	title := st.Title.Render("Interests")
	var rows []string
	var row []string
	rowWidth := 0
	for _, in := range p.profile.Interests {
		tag := st.Tag.Render(in)
		if rowWidth > 0 && rowWidth+lipgloss.Width(tag)+1 > width-6 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row, rowWidth = nil, 0
		}
		if rowWidth > 0 {
			row = append(row, st.Base.Render(" "))
			rowWidth++
		}
		row = append(row, tag)
		rowWidth += lipgloss.Width(tag)
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	body := title + "\n\n" + strings.Join(rows, "\n")
	return p.cardStyle("interests", st).Width(width - 2).Render(body)
}
