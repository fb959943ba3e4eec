package ui

import (
	"strings"

	"folio/internal/anim"
	"folio/internal/nav"
	"folio/internal/theme"
	"folio/internal/ui/textutil"

	"github.com/charmbracelet/lipgloss"
)

// Indicator spring for the sliding active marker.
const (
	indicatorStiffness = 400
	indicatorDamping   = 30
)

// brand is drawn at the left of the top bar.
const brand = " RS "

// zone is a clickable column range on the navbar's item row.
type zone struct {
	x0, x1 int // [x0, x1)
	index  int // entry index, or toggleIndex
}

const toggleIndex = -1

// Hit is the result of a navbar hit test.
type Hit struct {
	Entry  int  // entry index, valid when !Toggle
	Toggle bool // the theme toggle
}

// Navbar renders the route list in either layout. The active entry is
// derived from the current path by exact match; the indicator slides to it
// on a spring.
type Navbar struct {
	entries    []nav.Entry
	breakpoint int

	width  int
	layout nav.Layout
	active int
	hover  int

	indicator anim.Spring
	zones     []zone
}

// NewNavbar returns a navbar for entries with path active.
func NewNavbar(entries []nav.Entry, path string, breakpoint int) *Navbar {
	if breakpoint <= 0 {
		breakpoint = nav.DefaultBreakpoint
	}
	return &Navbar{
		entries:    entries,
		breakpoint: breakpoint,
		active:     nav.ActiveIndex(entries, path),
		hover:      -1,
		indicator:  anim.NewSpring(indicatorStiffness, indicatorDamping, 0),
	}
}

// SetWidth recomputes the layout for a terminal width. The indicator jumps
// to the active entry instead of sliding.
func (n *Navbar) SetWidth(width int) {
	n.width = width
	n.layout = nav.LayoutFor(width, n.breakpoint)
	n.zones = n.computeZones()
	x := float64(n.indicatorX())
	n.indicator = anim.NewSpring(indicatorStiffness, indicatorDamping, x)
}

// Layout returns the current placement.
func (n *Navbar) Layout() nav.Layout { return n.layout }

// Active returns the active entry index, or -1.
func (n *Navbar) Active() int { return n.active }

// SetPath marks the entry matching path active and starts the indicator moving.
func (n *Navbar) SetPath(path string) {
	n.active = nav.ActiveIndex(n.entries, path)
	n.indicator.Target = float64(n.indicatorX())
}

// SetHover highlights entry i; -1 clears.
func (n *Navbar) SetHover(i int) { n.hover = i }

// Step advances the indicator one frame.
func (n *Navbar) Step() { n.indicator.Step() }

// Settled reports whether the indicator is at rest.
func (n *Navbar) Settled() bool { return n.indicator.Settled() }

// Height returns the rows the bar occupies.
func (n *Navbar) Height() int { return 2 }

// HeaderHeight is the rows above the page body.
func (n *Navbar) HeaderHeight() int {
	if n.layout == nav.TopBar {
		return n.Height()
	}
	return 1 // floating theme toggle row
}

// FooterHeight is the rows below the page body.
func (n *Navbar) FooterHeight() int {
	if n.layout == nav.BottomBar {
		return n.Height()
	}
	return 0
}

// itemRow is the bar-relative row holding the clickable items.
func (n *Navbar) itemRow() int {
	if n.layout == nav.TopBar {
		return 0
	}
	return 1
}

// HitTest maps a click on the bar (bar-relative coordinates) to an entry or the toggle.
func (n *Navbar) HitTest(x, y int) (Hit, bool) {
	if y != n.itemRow() {
		return Hit{}, false
	}
	for _, z := range n.zones {
		if x >= z.x0 && x < z.x1 {
			if z.index == toggleIndex {
				return Hit{Toggle: true}, true
			}
			return Hit{Entry: z.index}, true
		}
	}
	return Hit{}, false
}

// ToggleHit reports whether (x, y) on the floating toggle row hits the toggle.
func (n *Navbar) ToggleHit(x, y int) bool {
	return y == 0 && x >= n.width-toggleWidth
}

const toggleWidth = 5

func (n *Navbar) label(e nav.Entry) string {
	if n.layout == nav.BottomBar && n.width < len(n.entries)*10 {
		return e.Icon
	}
	return e.Icon + " " + e.Label
}

func (n *Navbar) computeZones() []zone {
	var zones []zone
	if n.layout == nav.TopBar {
		x := textutil.VisualWidth(brand) + 2
		for i, e := range n.entries {
			w := textutil.VisualWidth(n.label(e)) + 2 // item padding
			zones = append(zones, zone{x0: x, x1: x + w, index: i})
			x += w
		}
		zones = append(zones, zone{x0: n.width - toggleWidth, x1: n.width, index: toggleIndex})
		return zones
	}
	cell := n.cellWidth()
	for i := range n.entries {
		zones = append(zones, zone{x0: i * cell, x1: (i + 1) * cell, index: i})
	}
	return zones
}

func (n *Navbar) cellWidth() int {
	if len(n.entries) == 0 {
		return 0
	}
	return n.width / len(n.entries)
}

func (n *Navbar) indicatorX() int {
	for _, z := range n.zones {
		if z.index == n.active {
			return z.x0
		}
	}
	return 0
}

func (n *Navbar) indicatorWidth() int {
	for _, z := range n.zones {
		if z.index == n.active {
			return z.x1 - z.x0
		}
	}
	return 0
}

func toggleGlyph(m theme.Mode) string {
	if m == theme.Dark {
		return "☾"
	}
	return "☀"
}

// View renders the bar (both rows) for mode.
func (n *Navbar) View(st Styles, mode theme.Mode) string {
	items := n.renderItems(st)
	ind := n.renderIndicator(st)
	if n.layout == nav.TopBar {
		toggle := st.Accent.Render(textutil.PadLeftVisual(toggleGlyph(mode)+" ", toggleWidth))
		left := st.Accent.Render(brand) + st.Base.Render("  ") + items
		gap := n.width - lipgloss.Width(left) - lipgloss.Width(toggle)
		if gap < 0 {
			gap = 0
		}
		row := left + st.Base.Render(strings.Repeat(" ", gap)) + toggle
		return row + "\n" + ind
	}
	return ind + "\n" + items
}

// FloatingToggle renders the top-right toggle row used with the bottom bar.
func (n *Navbar) FloatingToggle(st Styles, mode theme.Mode) string {
	glyph := st.Accent.Render(textutil.PadLeftVisual("["+toggleGlyph(mode)+"] ", toggleWidth))
	return st.Base.Render(strings.Repeat(" ", max(0, n.width-toggleWidth))) + glyph
}

func (n *Navbar) renderItems(st Styles) string {
	var b strings.Builder
	for i, e := range n.entries {
		style := st.NavItem
		switch {
		case i == n.active:
			style = st.NavActive
		case i == n.hover:
			style = st.NavHover
		}
		text := n.label(e)
		if n.layout == nav.BottomBar {
			text = textutil.Center(text, max(0, n.cellWidth()-2))
		}
		b.WriteString(style.Render(text))
	}
	out := b.String()
	if n.layout == nav.BottomBar {
		out += st.Base.Render(strings.Repeat(" ", max(0, n.width-lipgloss.Width(out))))
	}
	return out
}

func (n *Navbar) renderIndicator(st Styles) string {
	if n.active < 0 {
		return st.Base.Render(strings.Repeat(" ", n.width))
	}
	x := int(n.indicator.Pos + 0.5)
	w := n.indicatorWidth()
	if x < 0 {
		x = 0
	}
	if x+w > n.width {
		w = max(0, n.width-x)
	}
	glyph := "▔"
	if n.layout == nav.BottomBar {
		glyph = "▁"
	}
	bar := lipgloss.NewStyle().
		Foreground(lipgloss.Color(st.Palette.Primary)).
		Background(lipgloss.Color(st.Palette.Background)).
		Render(strings.Repeat(glyph, w))
	return st.Base.Render(strings.Repeat(" ", x)) + bar +
		st.Base.Render(strings.Repeat(" ", max(0, n.width-x-w)))
}
