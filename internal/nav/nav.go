// Package nav defines folio's static routes and the route-aware navigation policy.
package nav

import (
	"errors"
	"fmt"
)

// Route paths.
const (
	PathHome       = "/"
	PathAbout      = "/about"
	PathSkills     = "/skills"
	PathProjects   = "/projects"
	PathExperience = "/experience"
	PathContact    = "/contact"
)

// DefaultBreakpoint is the terminal width (columns) at and above which the
// top bar is used.
const DefaultBreakpoint = 96

// Entry is one navigation item.
type Entry struct {
	Path  string
	Label string
	Icon  string
}

// entries is in display order.
var entries = []Entry{
	{Path: PathHome, Label: "Home", Icon: "⌂"},
	{Path: PathAbout, Label: "About", Icon: "☺"},
	{Path: PathSkills, Label: "Skills", Icon: "⌘"},
	{Path: PathProjects, Label: "Projects", Icon: "▦"},
	{Path: PathExperience, Label: "Experience", Icon: "✦"},
	{Path: PathContact, Label: "Contact", Icon: "✉"},
}

// Entries returns a copy of the navigation entries in display order.
func Entries() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// ActiveIndex returns the index of the entry whose path equals path exactly, or -1.
func ActiveIndex(list []Entry, path string) int {
	for i, e := range list {
		if e.Path == path {
			return i
		}
	}
	return -1
}

// Layout is the navigation bar placement.
type Layout int

const (
	TopBar Layout = iota
	BottomBar
)

func (l Layout) String() string {
	switch l {
	case TopBar:
		return "TopBar"
	case BottomBar:
		return "BottomBar"
	default:
		return "Unknown"
	}
}

// LayoutFor picks the bar placement for a terminal width.
func LayoutFor(width, breakpoint int) Layout {
	if width >= breakpoint {
		return TopBar
	}
	return BottomBar
}

// ErrUnknownRoute is returned when navigating to a path with no page.
var ErrUnknownRoute = errors.New("unknown route")

// Router owns the active route.
type Router struct {
	entries []Entry
	current string
}

// NewRouter starts at initial. An unknown initial path starts at Home and
// is reported as ErrUnknownRoute; the returned Router is usable either way.
func NewRouter(initial string) (*Router, error) {
	r := &Router{entries: Entries(), current: PathHome}
	return r, r.Navigate(initial)
}

// Current returns the active path.
func (r *Router) Current() string { return r.current }

// Entries returns the router's entries in display order.
func (r *Router) Entries() []Entry { return r.entries }

// Navigate makes path active. Unknown paths leave the route unchanged.
func (r *Router) Navigate(path string) error {
	if ActiveIndex(r.entries, path) < 0 {
		return fmt.Errorf("%w: %q", ErrUnknownRoute, path)
	}
	r.current = path
	return nil
}

// Step moves by delta entries, wrapping around, and returns the new path.
func (r *Router) Step(delta int) string {
	n := len(r.entries)
	i := ActiveIndex(r.entries, r.current)
	next := ((i+delta)%n + n) % n
	r.current = r.entries[next].Path
	return r.current
}

// PathAt returns the path of the 0-based entry index.
func (r *Router) PathAt(i int) (string, bool) {
	if i < 0 || i >= len(r.entries) {
		return "", false
	}
	return r.entries[i].Path, true
}
