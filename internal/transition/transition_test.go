package transition

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }

func TestTransition_IdleShowsPage(t *testing.T) {
	tr := New(DefaultConfig(), "/")
	f := tr.Advance(t0)
	assert.Equal(t, Frame{Phase: Idle, Page: "/", Opacity: 1}, f)
	assert.False(t, tr.Active(t0))
	assert.True(t, tr.Interactive(t0))
}

func TestTransition_ExitThenEnter(t *testing.T) {
	cfg := DefaultConfig()
	tr := New(cfg, "/")
	tr.Start("/about", t0)

	f := tr.Advance(t0)
	assert.Equal(t, Exiting, f.Phase)
	assert.Equal(t, "/", f.Page)
	assert.InDelta(t, 1, f.Opacity, 1e-9)
	assert.False(t, tr.Interactive(t0))

	f = tr.Advance(t0.Add(cfg.Exit / 2))
	assert.Equal(t, Exiting, f.Phase)
	assert.Less(t, f.Opacity, 1.0)

	f = tr.Advance(t0.Add(cfg.Exit))
	assert.Equal(t, Entering, f.Phase)
	assert.Equal(t, "/about", f.Page)
	assert.InDelta(t, 0, f.Opacity, 1e-9)
	assert.Equal(t, cfg.Slide, f.Offset)

	f = tr.Advance(t0.Add(cfg.Exit + cfg.Enter))
	assert.Equal(t, Frame{Phase: Idle, Page: "/about", Opacity: 1}, f)
}

func TestTransition_NeverTwoOpaquePages(t *testing.T) {
	cfg := DefaultConfig()
	tr := New(cfg, "/")
	tr.Start("/skills", t0)

	seenFullOutgoing, seenFullIncoming := false, false
	for step := 0; step <= 60; step++ {
		f := tr.Advance(t0.Add(ms(step * 10)))
		// Only one page is ever drawn per frame.
		switch f.Page {
		case "/":
			assert.NotEqual(t, Entering, f.Phase)
			if f.Opacity >= 1 {
				seenFullOutgoing = true
				assert.False(t, seenFullIncoming, "outgoing opaque after incoming was opaque")
			}
		case "/skills":
			assert.NotEqual(t, Exiting, f.Phase)
			if f.Opacity >= 1 {
				seenFullIncoming = true
			}
		default:
			t.Fatalf("unexpected page %q", f.Page)
		}
	}
	assert.True(t, seenFullOutgoing)
	assert.True(t, seenFullIncoming)
}

func TestTransition_SecondStartAbandonsFirstDuringExit(t *testing.T) {
	cfg := DefaultConfig()
	tr := New(cfg, "/")
	tr.Start("/about", t0)

	mid := t0.Add(cfg.Exit / 2)
	before := tr.Advance(mid)
	tr.Start("/contact", mid)

	f := tr.Advance(mid)
	assert.Equal(t, Exiting, f.Phase)
	assert.Equal(t, "/", f.Page, "continues from the page that is actually visible")
	assert.InDelta(t, before.Opacity, f.Opacity, 1e-9, "no jump in opacity")

	// The remaining exit is proportional to the remaining opacity.
	end := mid.Add(time.Duration(float64(cfg.Exit) * before.Opacity))
	f = tr.Advance(end)
	assert.Equal(t, Entering, f.Phase)
	assert.Equal(t, "/contact", f.Page, "/about never appears")
	assert.Equal(t, "/contact", tr.Target())
}

func TestTransition_SecondStartDuringEnterExitsIncoming(t *testing.T) {
	cfg := DefaultConfig()
	tr := New(cfg, "/")
	tr.Start("/about", t0)

	during := t0.Add(cfg.Exit + cfg.Enter/2)
	before := tr.Advance(during)
	require.Equal(t, Entering, before.Phase)

	tr.Start("/projects", during)
	f := tr.Advance(during)
	assert.Equal(t, Exiting, f.Phase)
	assert.Equal(t, "/about", f.Page)
	assert.InDelta(t, before.Opacity, f.Opacity, 1e-9)
}

func TestTransition_ReturnToVisiblePageFadesBackIn(t *testing.T) {
	cfg := DefaultConfig()
	tr := New(cfg, "/")
	tr.Start("/about", t0)

	mid := t0.Add(cfg.Exit / 2)
	before := tr.Advance(mid)
	tr.Start("/", mid)

	f := tr.Advance(mid)
	assert.Equal(t, Entering, f.Phase)
	assert.Equal(t, "/", f.Page)
	assert.InDelta(t, before.Opacity, f.Opacity, 1e-9)

	f = tr.Advance(mid.Add(cfg.Enter))
	assert.Equal(t, Idle, f.Phase)
	assert.Equal(t, "/", f.Page)
}

func TestTransition_InputCannotExtend(t *testing.T) {
	cfg := DefaultConfig()
	tr := New(cfg, "/")
	tr.Start("/about", t0)

	// Sampling often does not change the schedule.
	for i := 0; i < 100; i++ {
		tr.Advance(t0.Add(ms(i)))
	}
	assert.False(t, tr.Active(t0.Add(cfg.Exit+cfg.Enter)))
}
