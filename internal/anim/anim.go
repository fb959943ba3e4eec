// Package anim holds the animation primitives shared by transitions, reveals
// and navigation: easing curves, opacity rendering and springs.
package anim

import (
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/lucasb-eyer/go-colorful"
)

// FPS is the animation frame rate.
const FPS = 60

// FrameInterval is the delay between animation frames.
const FrameInterval = time.Second / FPS

// EaseOutCubic decelerates toward the end.
func EaseOutCubic(p float64) float64 {
	p = Clamp01(p)
	return 1 - math.Pow(1-p, 3)
}

// EaseInOutCubic accelerates then decelerates.
func EaseInOutCubic(p float64) float64 {
	p = Clamp01(p)
	if p < 0.5 {
		return 4 * p * p * p
	}
	return 1 - math.Pow(-2*p+2, 3)/2
}

// Clamp01 limits p to [0, 1].
func Clamp01(p float64) float64 {
	return math.Max(0, math.Min(1, p))
}

// Progress returns how far now is through [start, start+d], clamped to [0, 1].
// A non-positive duration is always complete.
func Progress(start time.Time, d time.Duration, now time.Time) float64 {
	if d <= 0 {
		return 1
	}
	return Clamp01(float64(now.Sub(start)) / float64(d))
}

// Fade renders content at the given opacity by blending its text toward the
// background. Fully opaque content is returned unchanged; fully transparent
// content becomes blank lines of the same shape so layout does not jump.
func Fade(content string, opacity float64, fg, bg string) string {
	opacity = Clamp01(opacity)
	if opacity >= 1 {
		return content
	}
	plain := ansi.Strip(content)
	if opacity <= 0 {
		return blank(plain)
	}
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(Blend(bg, fg, opacity))).
		Background(lipgloss.Color(bg))
	lines := strings.Split(plain, "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = style.Render(l)
		}
	}
	return strings.Join(lines, "\n")
}

// Blend mixes from toward to by t in Lab space and returns a hex color.
// Unparseable colors fall back to to.
func Blend(from, to string, t float64) string {
	a, errA := colorful.Hex(from)
	b, errB := colorful.Hex(to)
	if errA != nil || errB != nil {
		return to
	}
	return a.BlendLab(b, Clamp01(t)).Clamped().Hex()
}

// Shift moves content down by rows (up when negative), preserving height.
func Shift(content string, rows int) string {
	if rows == 0 {
		return content
	}
	lines := strings.Split(content, "\n")
	n := len(lines)
	if rows >= n || -rows >= n {
		return blank(ansi.Strip(content))
	}
	pad := make([]string, abs(rows))
	if rows > 0 {
		return strings.Join(append(pad, lines[:n-rows]...), "\n")
	}
	return strings.Join(append(lines[-rows:], pad...), "\n")
}

func blank(plain string) string {
	lines := strings.Split(plain, "\n")
	for i := range lines {
		lines[i] = ""
	}
	return strings.Join(lines, "\n")
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Spring animates a scalar toward a target with a damped harmonic spring.
type Spring struct {
	spring   harmonica.Spring
	Pos      float64
	velocity float64
	Target   float64
}

// NewSpring builds a spring from a stiffness/damping pair as used by CSS
// animation libraries, starting at rest at pos.
func NewSpring(stiffness, damping, pos float64) Spring {
	freq := math.Sqrt(stiffness)
	ratio := damping / (2 * freq)
	return Spring{
		spring: harmonica.NewSpring(harmonica.FPS(FPS), freq, ratio),
		Pos:    pos,
		Target: pos,
	}
}

// Step advances the spring by one frame.
func (s *Spring) Step() {
	s.Pos, s.velocity = s.spring.Update(s.Pos, s.velocity, s.Target)
	if s.Settled() {
		s.Pos, s.velocity = s.Target, 0
	}
}

// Settled reports whether the spring is at rest at its target.
func (s *Spring) Settled() bool {
	return math.Abs(s.Pos-s.Target) < 0.01 && math.Abs(s.velocity) < 0.01
}
