package ui

import (
	"strings"
	"time"

	"folio/internal/anim"
	"folio/internal/content"
	"folio/internal/nav"
	"folio/internal/task"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	typeInterval  = 100 * time.Millisecond
	blinkInterval = 530 * time.Millisecond
	iconStagger   = 200 * time.Millisecond
)

type typeMsg struct{}

type blinkMsg struct{}

// HomePage is the landing hero: the owner's name, a typed-out role, calls to
// action and social links.
type HomePage struct {
	*scroller
	profile content.Profile

	typed    int // runes of the role shown so far
	cursorOn bool
}

var _ Page = (*HomePage)(nil)

// NewHomePage mounts the home page.
func NewHomePage(env Env) *HomePage {
	p := &HomePage{profile: content.Owner(), cursorOn: true}
	p.scroller = newScroller(env, []block{
		{id: "hero", render: p.renderHero},
		{id: "icons", render: p.renderIcons, reveal: &revealSpec{delay: 400 * time.Millisecond}},
		{id: "links", render: p.renderLinks, reveal: &revealSpec{delay: 600 * time.Millisecond}},
	})
	p.scroller.animating = p.iconsAnimating
	return p
}

// Path implements Page.
func (p *HomePage) Path() string { return nav.PathHome }

// Init starts the typewriter and the cursor blink.
func (p *HomePage) Init() tea.Cmd {
	_, typeCmd := p.sched.After(typeInterval, typeMsg{})
	_, blinkCmd := p.sched.After(blinkInterval, blinkMsg{})
	return tea.Batch(typeCmd, blinkCmd)
}

// Typed returns the portion of the role typed so far.
func (p *HomePage) Typed() string {
	return string([]rune(p.profile.Role)[:p.typed])
}

// CursorVisible reports the blink phase.
func (p *HomePage) CursorVisible() bool { return p.cursorOn }

// SetSize implements Page.
func (p *HomePage) SetSize(width, height int) tea.Cmd { return p.setSize(width, height) }

// Restyle implements Page.
func (p *HomePage) Restyle() { p.restyle() }

// CapturesInput implements Page.
func (p *HomePage) CapturesInput() bool { return false }

// Teardown implements Page.
func (p *HomePage) Teardown() { p.teardown() }

// Update implements View.
func (p *HomePage) Update(msg tea.Msg) (View, tea.Cmd) {
	if f, ok := msg.(task.Fired); ok && p.sched.Owns(f) {
		switch f.Msg.(type) {
		case typeMsg:
			return p, p.typeNext()
		case blinkMsg:
			p.cursorOn = !p.cursorOn
			p.refresh()
			_, cmd := p.sched.After(blinkInterval, blinkMsg{})
			return p, cmd
		}
	}
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "p":
			return p, navigateCmd(nav.PathProjects)
		case "c":
			return p, navigateCmd(nav.PathContact)
		}
	}
	cmd, _ := p.update(msg)
	return p, cmd
}

func (p *HomePage) typeNext() tea.Cmd {
	total := len([]rune(p.profile.Role))
	if p.typed < total {
		p.typed++
	}
	p.refresh()
	if p.typed >= total {
		return nil
	}
	_, cmd := p.sched.After(typeInterval, typeMsg{})
	return cmd
}

func (p *HomePage) iconsAnimating(now time.Time) bool {
	at, ok := p.revealed("icons")
	if !ok {
		return false
	}
	last := at.Add(time.Duration(len(p.profile.Icons)) * iconStagger)
	return anim.Progress(last, revealDuration, now) < 1
}

// View implements View. The hero fades out as the page scrolls.
func (p *HomePage) View() string {
	return p.view()
}

func (p *HomePage) heroOpacity() float64 {
	half := p.vp.Height / 2
	if half <= 0 {
		return 1
	}
	return 1 - anim.Clamp01(float64(p.vp.YOffset)/float64(half))
}

func (p *HomePage) renderHero(width int, st Styles, _ time.Time) string {
	center := func(s string) string {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, s,
			lipgloss.WithWhitespaceBackground(lipgloss.Color(st.Palette.Background)))
	}
	avatar := st.CardHover.Bold(true).Foreground(lipgloss.Color(st.Palette.Primary)).
		Padding(1, 3).Render(p.profile.Initials)

	cursor := " "
	if p.cursorOn {
		cursor = "|"
	}
	role := st.Muted.Render(p.Typed()) + st.Accent.Render(cursor)
	name := st.Title.Render("Hi, I'm ") + st.Accent.Render(p.profile.Name)
	tagline := lipgloss.NewStyle().Inherit(st.Muted).Width(min(width, 60)).Align(lipgloss.Center).
		Render(p.profile.Tagline)
	ctas := st.ButtonOn.Render("p  View Projects") + st.Base.Render("   ") + st.Button.Render("c  Get in Touch")

	lines := []string{"", center(avatar), "", center(name), center(role), "", center(tagline), "", center(ctas), ""}
	out := strings.Join(lines, "\n")
	if o := p.heroOpacity(); o < 1 {
		out = anim.Fade(out, o, st.Palette.Foreground, st.Palette.Background)
	}
	return out
}

func (p *HomePage) renderIcons(width int, st Styles, now time.Time) string {
	at, ok := p.revealed("icons")
	var parts []string
	for i, ic := range p.profile.Icons {
		o := 0.0
		if ok {
			o = anim.EaseOutCubic(anim.Progress(at.Add(time.Duration(i)*iconStagger), revealDuration, now))
		}
		cell := st.Card.Render(ic.Icon + " " + ic.Label)
		if o < 1 {
			cell = anim.Fade(cell, o, st.Palette.Foreground, st.Palette.Background)
		}
		parts = append(parts, cell)
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	if lipgloss.Width(row) > width {
		half := (len(parts) + 1) / 2
		row = lipgloss.JoinVertical(lipgloss.Center,
			lipgloss.JoinHorizontal(lipgloss.Top, parts[:half]...),
			lipgloss.JoinHorizontal(lipgloss.Top, parts[half:]...))
	}
	return row
}

func (p *HomePage) renderLinks(_ int, st Styles, _ time.Time) string {
	var links []string
	for _, s := range p.profile.Socials {
		links = append(links, st.Accent.Render(s.Label)+st.Muted.Render(" "+s.Href))
	}
	return "\n" + strings.Join(links, "\n") + "\n"
}
