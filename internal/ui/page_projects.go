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

const (
	projectsMargin  = "-50px"
	projectsStagger = 150 * time.Millisecond
)

// ProjectsPage lists project cards. Enter or a click opens the selected
// project in a modal; n and p move the selection while it is open.
type ProjectsPage struct {
	*scroller
	projects []content.Project

	cursor int
	// selected is the project shown in the modal; 0 when closed.
	selected int
}

var _ Page = (*ProjectsPage)(nil)

// NewProjectsPage mounts the projects page.
func NewProjectsPage(env Env) *ProjectsPage {
	p := &ProjectsPage{projects: content.Projects()}
	h := content.HeadingFor("projects")
	blocks := []block{{id: "heading", render: func(w int, st Styles, _ time.Time) string {
		return heading(h.Lead, h.Accent, h.Subtitle, w, st)
	}}}
	for i := range p.projects {
		blocks = append(blocks, block{
			id:     projectCardID(p.projects[i].ID),
			render: func(w int, st Styles, _ time.Time) string { return p.renderCard(i, w, st) },
			reveal: &revealSpec{margin: projectsMargin, delay: time.Duration(i) * projectsStagger},
		})
	}
	p.scroller = newScroller(env, blocks)
	return p
}

func projectCardID(id int) string { return fmt.Sprintf("project-%d", id) }

// Path implements Page.
func (p *ProjectsPage) Path() string { return nav.PathProjects }

// Init implements View.
func (p *ProjectsPage) Init() tea.Cmd { return nil }

// SetSize implements Page.
func (p *ProjectsPage) SetSize(width, height int) tea.Cmd { return p.setSize(width, height) }

// Restyle implements Page.
func (p *ProjectsPage) Restyle() { p.restyle() }

// CapturesInput reports whether the detail modal is open.
func (p *ProjectsPage) CapturesInput() bool { return p.selected != 0 }

// Teardown implements Page.
func (p *ProjectsPage) Teardown() { p.teardown() }

// Select opens the modal on project id. Selecting while open replaces the
// shown project. Unknown ids are ignored.
func (p *ProjectsPage) Select(id int) bool {
	for i, pr := range p.projects {
		if pr.ID == id {
			p.selected = id
			p.cursor = i
			p.refresh()
			return true
		}
	}
	return false
}

// Selected returns the project shown in the modal.
func (p *ProjectsPage) Selected() (content.Project, bool) {
	if p.selected == 0 {
		return content.Project{}, false
	}
	for _, pr := range p.projects {
		if pr.ID == p.selected {
			return pr, true
		}
	}
	return content.Project{}, false
}

// Dismiss closes the modal.
func (p *ProjectsPage) Dismiss() {
	p.selected = 0
	p.refresh()
}

// Cursor returns the index of the highlighted card.
func (p *ProjectsPage) Cursor() int { return p.cursor }

// Update implements View.
func (p *ProjectsPage) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if p.selected != 0 {
			return p, p.modalKey(msg)
		}
		switch msg.String() {
		case "j", "down":
			return p, p.moveCursor(1)
		case "k", "up":
			return p, p.moveCursor(-1)
		case "enter":
			p.Select(p.projects[p.cursor].ID)
			return p, nil
		}
	case tea.MouseMsg:
		if p.selected != 0 {
			return p, nil
		}
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if id := p.blockAt(msg.Y); id != "" {
				for _, pr := range p.projects {
					if projectCardID(pr.ID) == id {
						p.Select(pr.ID)
						return p, nil
					}
				}
			}
		}
	}
	cmd, _ := p.update(msg)
	return p, cmd
}

func (p *ProjectsPage) modalKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "q":
		p.Dismiss()
	case "n", "right", "l":
		p.Select(p.projects[(p.cursor+1)%len(p.projects)].ID)
	case "p", "left", "h":
		p.Select(p.projects[(p.cursor-1+len(p.projects))%len(p.projects)].ID)
	}
	return nil
}

func (p *ProjectsPage) moveCursor(delta int) tea.Cmd {
	if len(p.projects) == 0 {
		return nil
	}
	p.cursor = (p.cursor + delta + len(p.projects)) % len(p.projects)
	p.refresh()
	return p.scrollTo(projectCardID(p.projects[p.cursor].ID))
}

// View implements View. The modal, when open, is centered over the list.
func (p *ProjectsPage) View() string {
	body := p.view()
	pr, ok := p.Selected()
	if !ok {
		return body
	}
	modal := NewProjectModal(pr, p.styles, p.width).View()
	return lipgloss.Place(p.vp.Width, p.vp.Height, lipgloss.Center, lipgloss.Center, modal,
		lipgloss.WithWhitespaceBackground(lipgloss.Color(p.styles.Palette.Background)))
}

func (p *ProjectsPage) renderCard(i, width int, st Styles) string {
	pr := p.projects[i]
	style := st.Card
	if i == p.cursor || p.hovered == projectCardID(pr.ID) {
		style = st.CardHover
	}
	inner := width - 6
	var tags []string
	for _, t := range pr.Tech {
		tags = append(tags, st.Tag.Render(t))
	}
	lines := []string{
		st.Accent.Width(inner).Render(pr.Title),
		st.Muted.Width(inner).Render(pr.Description),
		"",
		strings.Join(tags, st.Base.Render(" ")),
		st.Hint.Render("enter for details"),
	}
	return style.Width(width - 2).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
