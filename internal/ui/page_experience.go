package ui

import (
	"fmt"
	"strings"
	"time"

	"folio/internal/content"
	"folio/internal/nav"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const experienceMargin = "-100px"

// ExperiencePage draws the roles as a vertical timeline.
type ExperiencePage struct {
	*scroller
	roles []content.Role
}

var _ Page = (*ExperiencePage)(nil)

// NewExperiencePage mounts the experience page.
func NewExperiencePage(env Env) *ExperiencePage {
	p := &ExperiencePage{roles: content.Roles()}
	h := content.HeadingFor("experience")
	blocks := []block{{id: "heading", render: func(w int, st Styles, _ time.Time) string {
		return heading(h.Lead, h.Accent, h.Subtitle, w, st)
	}}}
	for i := range p.roles {
		blocks = append(blocks, block{
			id:     fmt.Sprintf("role-%d", i),
			render: func(w int, st Styles, _ time.Time) string { return p.renderRole(i, w, st) },
			reveal: &revealSpec{margin: experienceMargin, delay: time.Duration(i) * 200 * time.Millisecond},
		})
	}
	p.scroller = newScroller(env, blocks)
	return p
}

// Path implements Page.
func (p *ExperiencePage) Path() string { return nav.PathExperience }

// Init implements View.
func (p *ExperiencePage) Init() tea.Cmd { return nil }

// SetSize implements Page.
func (p *ExperiencePage) SetSize(width, height int) tea.Cmd { return p.setSize(width, height) }

// Restyle implements Page.
func (p *ExperiencePage) Restyle() { p.restyle() }

// CapturesInput implements Page.
func (p *ExperiencePage) CapturesInput() bool { return false }

// Teardown implements Page.
func (p *ExperiencePage) Teardown() { p.teardown() }

// Update implements View.
func (p *ExperiencePage) Update(msg tea.Msg) (View, tea.Cmd) {
	cmd, _ := p.update(msg)
	return p, cmd
}

// View implements View.
func (p *ExperiencePage) View() string { return p.view() }

func (p *ExperiencePage) renderRole(i, width int, st Styles) string {
	r := p.roles[i]
	inner := width - 10
	var highlights []string
	for _, h := range r.Highlights {
		highlights = append(highlights, st.Base.Width(inner).Render("▸ "+h))
	}
	card := st.Card.Width(width - 6).Render(lipgloss.JoinVertical(lipgloss.Left,
		st.Accent.Render(r.Title),
		st.Title.Render(r.Company),
		st.Muted.Render(r.Location+" · "+r.Period),
		"",
		st.Base.Width(inner).Render(r.Description),
		"",
		strings.Join(highlights, "\n"),
	))

	// Timeline rail: a dot beside the card's first row, a line below it.
	h := lipgloss.Height(card)
	rail := make([]string, h)
	for row := range rail {
		switch {
		case row == 1:
			rail[row] = st.Accent.Render("●")
		default:
			rail[row] = st.Muted.Render("│")
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(rail, "\n"), st.Base.Render("  "), card)
}
