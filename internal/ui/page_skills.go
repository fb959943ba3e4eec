package ui

import (
	"fmt"
	"strings"
	"time"

	"folio/internal/anim"
	"folio/internal/content"
	"folio/internal/nav"
	"folio/internal/ui/textutil"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	skillsMargin  = "-50px"
	skillsStagger = 100 * time.Millisecond
	barDelay      = 300 * time.Millisecond
	barDuration   = time.Second
)

// SkillsPage shows one card per skill category with proficiency bars that
// fill once the card is revealed.
type SkillsPage struct {
	*scroller
	categories []content.SkillCategory
}

var _ Page = (*SkillsPage)(nil)

// NewSkillsPage mounts the skills page.
func NewSkillsPage(env Env) *SkillsPage {
	p := &SkillsPage{categories: content.Skills()}
	h := content.HeadingFor("skills")
	blocks := []block{{id: "heading", render: func(w int, st Styles, _ time.Time) string {
		return heading(h.Lead, h.Accent, h.Subtitle, w, st)
	}}}
	for i := range p.categories {
		blocks = append(blocks, block{
			id:     skillCardID(i),
			render: func(w int, st Styles, now time.Time) string { return p.renderCategory(i, w, st, now) },
			reveal: &revealSpec{margin: skillsMargin, delay: time.Duration(i) * skillsStagger},
		})
	}
	p.scroller = newScroller(env, blocks)
	p.scroller.animating = p.barsAnimating
	return p
}

func skillCardID(i int) string { return fmt.Sprintf("skills-%d", i) }

// Path implements Page.
func (p *SkillsPage) Path() string { return nav.PathSkills }

// Init implements View.
func (p *SkillsPage) Init() tea.Cmd { return nil }

// SetSize implements Page.
func (p *SkillsPage) SetSize(width, height int) tea.Cmd { return p.setSize(width, height) }

// Restyle implements Page.
func (p *SkillsPage) Restyle() { p.restyle() }

// CapturesInput implements Page.
func (p *SkillsPage) CapturesInput() bool { return false }

// Teardown implements Page.
func (p *SkillsPage) Teardown() { p.teardown() }

// Update implements View.
func (p *SkillsPage) Update(msg tea.Msg) (View, tea.Cmd) {
	cmd, _ := p.update(msg)
	return p, cmd
}

// View implements View.
func (p *SkillsPage) View() string { return p.view() }

// BarFill returns how full category i's bars are, from 0 to 1.
func (p *SkillsPage) BarFill(i int) float64 {
	return p.barFill(i, p.now())
}

func (p *SkillsPage) barFill(i int, now time.Time) float64 {
	at, ok := p.revealed(skillCardID(i))
	if !ok {
		return 0
	}
	return anim.EaseOutCubic(anim.Progress(at.Add(barDelay), barDuration, now))
}

func (p *SkillsPage) barsAnimating(now time.Time) bool {
	for i := range p.categories {
		if _, ok := p.revealed(skillCardID(i)); ok && p.barFill(i, now) < 1 {
			return true
		}
	}
	return false
}

func (p *SkillsPage) renderCategory(i, width int, st Styles, now time.Time) string {
	c := p.categories[i]
	style := st.Card
	if p.hovered == skillCardID(i) {
		style = st.CardHover
	}
	inner := width - 6
	fill := p.barFill(i, now)

	bar := progress.New(
		progress.WithSolidFill(st.Palette.Primary),
		progress.WithoutPercentage(),
		progress.WithWidth(max(4, inner)),
	)
	bar.EmptyColor = st.Palette.Border

	lines := []string{st.Title.Render(c.Icon + " " + c.Title), ""}
	for _, s := range c.Skills {
		pct := fmt.Sprintf("%d%%", s.Level)
		name := textutil.Truncate(s.Name, max(1, inner-len(pct)-1))
		gap := strings.Repeat(" ", max(1, inner-textutil.VisualWidth(name)-len(pct)))
		lines = append(lines,
			st.Base.Render(name+gap)+st.Muted.Render(pct),
			bar.ViewAs(fill*float64(s.Level)/100),
		)
	}
	return style.Width(width - 2).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
