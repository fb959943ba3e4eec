package ui

import (
	"strings"
	"time"

	"folio/internal/anim"
	"folio/internal/reveal"
	"folio/internal/task"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// Page is one routed screen. A Page is mounted when its route starts entering
// and torn down when it has finished exiting.
type Page interface {
	View
	Path() string
	SetSize(width, height int) tea.Cmd
	// Restyle is called after the theme changes.
	Restyle()
	// CapturesInput reports whether a text control has focus, in which case
	// global single-key bindings are suspended.
	CapturesInput() bool
	// Teardown cancels every timer the page started and releases its reveal records.
	Teardown()
}

// revealDuration is how long a revealed block takes to fade in.
const revealDuration = 600 * time.Millisecond

// maxContentWidth keeps text readable on wide terminals.
const maxContentWidth = 84

// block is one vertically stacked region of a page.
type block struct {
	id     string
	render func(width int, st Styles, now time.Time) string
	// reveal is nil for blocks that are visible from mount.
	reveal *revealSpec
}

type revealSpec struct {
	margin string
	delay  time.Duration // stagger after the block enters the viewport
}

// scroller is the scrollable body shared by all pages: it stacks blocks in a
// viewport, tracks which blocks have been revealed, and fades them in.
type scroller struct {
	env     Env
	sched   *task.Scheduler
	tracker *reveal.Tracker
	vp      viewport.Model
	styles  Styles

	blocks   []block
	bounds   map[string]reveal.Bounds
	revealAt map[string]time.Time
	hovered  string

	// animating lets a page keep frames coming for its own effects.
	animating    func(now time.Time) bool
	framePending bool
	width        int
}

type frameMsg struct{}

type revealStartMsg struct{ id string }

func newScroller(env Env, blocks []block) *scroller {
	env = env.withDefaults()
	s := &scroller{
		env:      env,
		sched:    task.New(env.Ctx, env.Clock),
		tracker:  reveal.NewTracker(nil),
		vp:       viewport.New(0, 0),
		styles:   env.styles(),
		blocks:   blocks,
		bounds:   make(map[string]reveal.Bounds),
		revealAt: make(map[string]time.Time),
	}
	for i, b := range s.blocks {
		if b.reveal == nil {
			continue
		}
		if _, err := s.tracker.Observe(b.id, reveal.Options{TriggerOnce: true, RootMargin: b.reveal.margin}); err != nil {
			env.Logger.Debug("block not observed; showing it immediately", zap.String("block", b.id), zap.Error(err))
			s.blocks[i].reveal = nil
		}
	}
	return s
}

func (s *scroller) now() time.Time { return s.sched.Clock().Now() }

// contentWidth is the width blocks render at.
func (s *scroller) contentWidth() int {
	w := s.width - 2
	if w > maxContentWidth {
		w = maxContentWidth
	}
	if w < 10 {
		w = 10
	}
	return w
}

func (s *scroller) setSize(width, height int) tea.Cmd {
	s.width = width
	s.vp.Width = width
	s.vp.Height = height
	s.refresh()
	return s.checkReveal()
}

func (s *scroller) restyle() {
	s.styles = s.env.styles()
	s.refresh()
}

// refresh re-renders every block and rebuilds the viewport content.
func (s *scroller) refresh() {
	now := s.now()
	w := s.contentWidth()
	p := s.styles.Palette
	var parts []string
	row := 0
	for _, b := range s.blocks {
		out := b.render(w, s.styles, now)
		if o := s.opacity(b, now); o < 1 {
			out = anim.Fade(out, o, p.Foreground, p.Background)
		}
		out = lipgloss.PlaceHorizontal(s.width, lipgloss.Center, out,
			lipgloss.WithWhitespaceBackground(lipgloss.Color(p.Background)))
		h := lipgloss.Height(out)
		s.bounds[b.id] = reveal.Bounds{Top: row, Height: h}
		row += h
		parts = append(parts, out)
	}
	s.vp.SetContent(strings.Join(parts, "\n"))
}

func (s *scroller) opacity(b block, now time.Time) float64 {
	if b.reveal == nil {
		return 1
	}
	at, ok := s.revealAt[b.id]
	if !ok {
		return 0
	}
	return anim.EaseOutCubic(anim.Progress(at, revealDuration, now))
}

// revealed reports whether id has started fading in, and when.
func (s *scroller) revealed(id string) (time.Time, bool) {
	at, ok := s.revealAt[id]
	return at, ok
}

// checkReveal evaluates the tracker against the current scroll position.
func (s *scroller) checkReveal() tea.Cmd {
	if s.vp.Height <= 0 {
		return nil
	}
	events := s.tracker.Update(s.bounds, reveal.Viewport{Top: s.vp.YOffset, Height: s.vp.Height})
	var cmds []tea.Cmd
	now := s.now()
	for _, ev := range events {
		if ev.State != reveal.Visible {
			continue
		}
		delay := s.delayFor(ev.ID)
		if delay <= 0 {
			s.revealAt[ev.ID] = now
			continue
		}
		_, cmd := s.sched.After(delay, revealStartMsg{id: ev.ID})
		cmds = append(cmds, cmd)
	}
	if len(events) > 0 {
		cmds = append(cmds, s.ensureFrames())
	}
	return tea.Batch(cmds...)
}

func (s *scroller) delayFor(id string) time.Duration {
	for _, b := range s.blocks {
		if b.id == id && b.reveal != nil {
			return b.reveal.delay
		}
	}
	return 0
}

func (s *scroller) isAnimating(now time.Time) bool {
	for _, b := range s.blocks {
		if at, ok := s.revealAt[b.id]; ok && anim.Progress(at, revealDuration, now) < 1 {
			return true
		}
	}
	return s.animating != nil && s.animating(now)
}

// ensureFrames schedules the next animation frame if one is not already pending.
func (s *scroller) ensureFrames() tea.Cmd {
	if s.framePending || !s.isAnimating(s.now()) {
		return nil
	}
	_, cmd := s.sched.After(anim.FrameInterval, frameMsg{})
	if cmd != nil {
		s.framePending = true
	}
	return cmd
}

// update handles scrolling, frames and reveal timers. handled is false for
// messages the page should interpret itself.
func (s *scroller) update(msg tea.Msg) (cmd tea.Cmd, handled bool) {
	switch msg := msg.(type) {
	case task.Fired:
		if !s.sched.Owns(msg) {
			return nil, true
		}
		switch inner := msg.Msg.(type) {
		case frameMsg:
			s.framePending = false
			s.refresh()
			return s.ensureFrames(), true
		case revealStartMsg:
			s.revealAt[inner.id] = s.now()
			s.refresh()
			return s.ensureFrames(), true
		}
		return nil, false
	case tea.KeyMsg:
		before := s.vp.YOffset
		var vcmd tea.Cmd
		s.vp, vcmd = s.vp.Update(msg)
		if s.vp.YOffset == before {
			return vcmd, false
		}
		s.refresh()
		return tea.Batch(vcmd, s.checkReveal()), true
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionMotion {
			if id := s.blockAt(msg.Y); id != s.hovered {
				s.hovered = id
				s.refresh()
			}
			return nil, false
		}
		if msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown {
			var vcmd tea.Cmd
			s.vp, vcmd = s.vp.Update(msg)
			s.refresh()
			return tea.Batch(vcmd, s.checkReveal()), true
		}
	}
	return nil, false
}

// blockAt returns the id of the block drawn at body row y, or "".
func (s *scroller) blockAt(y int) string {
	row := y + s.vp.YOffset
	for _, b := range s.blocks {
		bd, ok := s.bounds[b.id]
		if ok && row >= bd.Top && row < bd.Top+bd.Height {
			return b.id
		}
	}
	return ""
}

// scrollTo makes block id visible.
func (s *scroller) scrollTo(id string) tea.Cmd {
	bd, ok := s.bounds[id]
	if !ok {
		return nil
	}
	switch {
	case bd.Top < s.vp.YOffset:
		s.vp.SetYOffset(bd.Top)
	case bd.Top+bd.Height > s.vp.YOffset+s.vp.Height:
		s.vp.SetYOffset(bd.Top + bd.Height - s.vp.Height)
	default:
		return nil
	}
	return s.checkReveal()
}

func (s *scroller) view() string {
	return s.vp.View()
}

func (s *scroller) teardown() {
	s.sched.Close()
	s.tracker.Close()
}

// heading renders a page title with its accented word and subtitle.
func heading(lead, accent, subtitle string, width int, st Styles) string {
	title := st.Title.Render(lead+" ") + st.Accent.Render(accent)
	lines := []string{"", title, st.Muted.Render(subtitle), ""}
	for i, l := range lines {
		lines[i] = lipgloss.PlaceHorizontal(width, lipgloss.Center, l,
			lipgloss.WithWhitespaceBackground(lipgloss.Color(st.Palette.Background)))
	}
	return strings.Join(lines, "\n")
}
