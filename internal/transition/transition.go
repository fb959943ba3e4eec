// Package transition sequences route changes: the visible page fades out,
// then the incoming page fades in with a short upward slide.
//
// Exit always finishes before enter begins, so two pages are never drawn at
// once. Starting a new transition mid-flight abandons the old one and exits
// whatever is visible from its current opacity; nothing is queued.
package transition

import (
	"math"
	"time"

	"folio/internal/anim"
)

// Phase is the transition stage.
type Phase int

const (
	Idle Phase = iota
	Exiting
	Entering
)

func (p Phase) String() string {
	switch p {
	case Exiting:
		return "exiting"
	case Entering:
		return "entering"
	default:
		return "idle"
	}
}

// Config sets the fixed durations. Durations apply to a full 0↔1 fade and
// are scaled down when a fade starts part-way.
type Config struct {
	Exit  time.Duration
	Enter time.Duration
	Slide int // rows the entering page travels
}

// DefaultConfig mirrors a quick fade-out followed by a softer fade-in.
func DefaultConfig() Config {
	return Config{Exit: 200 * time.Millisecond, Enter: 300 * time.Millisecond, Slide: 2}
}

// Frame is what should be drawn at one instant.
type Frame struct {
	Phase   Phase
	Page    string  // the only page drawn
	Opacity float64 // 0..1
	Offset  int     // vertical offset in rows
}

// Transition is driven by explicit timestamps so it is deterministic under test.
type Transition struct {
	cfg   Config
	phase Phase
	from  string
	to    string

	start     time.Time
	startOpac float64
	dur       time.Duration
}

// New returns an idle transition showing page.
func New(cfg Config, page string) *Transition {
	return &Transition{cfg: cfg, phase: Idle, to: page, from: page}
}

// Target returns the page being transitioned to (or shown, when idle).
func (t *Transition) Target() string { return t.to }

// Start begins a transition to page at now.
func (t *Transition) Start(page string, now time.Time) {
	cur := t.Advance(now)
	t.to = page
	if cur.Page == page {
		// Heading back to what is already on screen: fade it straight back in.
		t.beginEnter(now, cur.Opacity)
		return
	}
	t.from = cur.Page
	if cur.Opacity <= 0 {
		t.beginEnter(now, 0)
		return
	}
	t.phase = Exiting
	t.start = now
	t.startOpac = cur.Opacity
	t.dur = time.Duration(float64(t.cfg.Exit) * cur.Opacity)
}

// Active reports whether a transition is in progress at now.
func (t *Transition) Active(now time.Time) bool {
	return t.Advance(now).Phase != Idle
}

// Interactive reports whether the target page may receive input at now.
// Nothing is interactive while the previous page is still fading out.
func (t *Transition) Interactive(now time.Time) bool {
	return t.Advance(now).Phase != Exiting
}

// Advance moves the state machine to now and returns the frame to draw.
func (t *Transition) Advance(now time.Time) Frame {
	if t.phase == Exiting {
		p := anim.Progress(t.start, t.dur, now)
		if p < 1 {
			o := t.startOpac * (1 - anim.EaseInOutCubic(p))
			return Frame{Phase: Exiting, Page: t.from, Opacity: o}
		}
		t.beginEnter(t.start.Add(t.dur), 0)
	}
	if t.phase == Entering {
		p := anim.Progress(t.start, t.dur, now)
		if p < 1 {
			o := t.startOpac + (1-t.startOpac)*anim.EaseOutCubic(p)
			return Frame{Phase: Entering, Page: t.to, Opacity: o, Offset: t.offset(o)}
		}
		t.phase = Idle
		t.from = t.to
	}
	return Frame{Phase: Idle, Page: t.to, Opacity: 1}
}

func (t *Transition) beginEnter(at time.Time, fromOpacity float64) {
	t.phase = Entering
	t.start = at
	t.startOpac = fromOpacity
	t.dur = time.Duration(float64(t.cfg.Enter) * (1 - fromOpacity))
}

func (t *Transition) offset(opacity float64) int {
	return int(math.Round(float64(t.cfg.Slide) * (1 - opacity)))
}
