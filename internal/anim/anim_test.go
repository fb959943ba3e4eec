package anim

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestEasing_Endpoints(t *testing.T) {
	for name, ease := range map[string]func(float64) float64{
		"out":   EaseOutCubic,
		"inout": EaseInOutCubic,
	} {
		t.Run(name, func(t *testing.T) {
			assert.InDelta(t, 0, ease(0), 1e-9)
			assert.InDelta(t, 1, ease(1), 1e-9)
			assert.InDelta(t, 1, ease(2), 1e-9, "clamped above")
			assert.InDelta(t, 0, ease(-1), 1e-9, "clamped below")
			assert.Greater(t, ease(0.6), ease(0.4))
		})
	}
}

func TestProgress(t *testing.T) {
	start := time.Unix(100, 0)
	assert.InDelta(t, 0, Progress(start, time.Second, start), 1e-9)
	assert.InDelta(t, 0.5, Progress(start, time.Second, start.Add(500*time.Millisecond)), 1e-9)
	assert.InDelta(t, 1, Progress(start, time.Second, start.Add(5*time.Second)), 1e-9)
	assert.InDelta(t, 1, Progress(start, 0, start), 1e-9)
}

func TestFade(t *testing.T) {
	content := "hello\n\nworld"

	assert.Equal(t, content, Fade(content, 1, "#ffffff", "#000000"))
	assert.Equal(t, "\n\n", Fade(content, 0, "#ffffff", "#000000"), "transparent keeps shape")

	half := Fade(content, 0.5, "#ffffff", "#000000")
	assert.Equal(t, content, ansi.Strip(half), "text survives partial fade")
	assert.Equal(t, 3, strings.Count(half, "\n")+1)
}

func TestBlend(t *testing.T) {
	assert.Equal(t, "#000000", Blend("#000000", "#ffffff", 0))
	assert.Equal(t, "#ffffff", Blend("#000000", "#ffffff", 1))
	assert.Equal(t, "#ffffff", Blend("not-a-color", "#ffffff", 0.3))
}

func TestShift(t *testing.T) {
	content := "a\nb\nc"
	assert.Equal(t, "\na\nb", Shift(content, 1))
	assert.Equal(t, "b\nc\n", Shift(content, -1))
	assert.Equal(t, content, Shift(content, 0))
	assert.Equal(t, "\n\n", Shift(content, 5))
}

func TestSpring_SettlesOnTarget(t *testing.T) {
	s := NewSpring(400, 30, 0)
	assert.True(t, s.Settled())

	s.Target = 20
	assert.False(t, s.Settled())
	for range 10 * FPS {
		s.Step()
		if s.Settled() {
			break
		}
	}
	assert.True(t, s.Settled())
	assert.Equal(t, 20.0, s.Pos)
}
