package ui

import (
	"folio/internal/theme"

	"github.com/charmbracelet/lipgloss"
)

// Palette is the set of theme colors, as hex strings so they can be blended.
type Palette struct {
	Background string
	Foreground string
	Muted      string
	Primary    string // titles, active items, indicator
	Accent     string // second gradient stop
	Card       string
	Border     string
	Danger     string
	Success    string
}

var (
	darkPalette = Palette{
		Background: "#0f1117",
		Foreground: "#e6e8ee",
		Muted:      "#8b93a7",
		Primary:    "#38bdf8",
		Accent:     "#a78bfa",
		Card:       "#171a23",
		Border:     "#2a2f3d",
		Danger:     "#f87171",
		Success:    "#34d399",
	}
	lightPalette = Palette{
		Background: "#f8fafc",
		Foreground: "#0f172a",
		Muted:      "#64748b",
		Primary:    "#0284c7",
		Accent:     "#7c3aed",
		Card:       "#ffffff",
		Border:     "#cbd5e1",
		Danger:     "#dc2626",
		Success:    "#059669",
	}
)

// PaletteFor returns the palette for a theme mode.
func PaletteFor(m theme.Mode) Palette {
	if m == theme.Light {
		return lightPalette
	}
	return darkPalette
}

// Styles contains shared style definitions used across pages and modals.
// Every style paints the palette background so themed cells never show
// the terminal's own background.
type Styles struct {
	Palette Palette

	Base    lipgloss.Style // normal text
	Title   lipgloss.Style // bold foreground
	Accent  lipgloss.Style // bold primary, for highlighted words
	Muted   lipgloss.Style
	Hint    lipgloss.Style // key hints
	Danger  lipgloss.Style
	Success lipgloss.Style

	Card      lipgloss.Style // rounded card
	CardHover lipgloss.Style // card under the pointer or selected
	Tag       lipgloss.Style
	Button    lipgloss.Style
	ButtonOn  lipgloss.Style // focused or primary button

	Box       lipgloss.Style // modal
	BoxDanger lipgloss.Style // blocking notice

	NavItem   lipgloss.Style
	NavActive lipgloss.Style
	NavHover  lipgloss.Style
}

// NewStyles builds the style set for p.
func NewStyles(p Palette) Styles {
	bg := lipgloss.Color(p.Background)
	base := lipgloss.NewStyle().
		Foreground(lipgloss.Color(p.Foreground)).
		Background(bg)
	fg := func(c string) lipgloss.Style { return base.Foreground(lipgloss.Color(c)) }
	card := base.
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(p.Border)).
		BorderBackground(bg).
		Padding(0, 1)

	return Styles{
		Palette: p,
		Base:    base,
		Title:   base.Bold(true),
		Accent:  fg(p.Primary).Bold(true),
		Muted:   fg(p.Muted),
		Hint:    fg(p.Muted).Italic(true),
		Danger:  fg(p.Danger),
		Success: fg(p.Success),

		Card:      card,
		CardHover: card.BorderForeground(lipgloss.Color(p.Primary)),
		Tag: fg(p.Primary).
			Background(lipgloss.Color(p.Card)).
			Padding(0, 1),
		Button: fg(p.Foreground).
			Background(lipgloss.Color(p.Border)).
			Padding(0, 2),
		ButtonOn: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Background)).
			Background(lipgloss.Color(p.Primary)).
			Bold(true).
			Padding(0, 2),

		Box: card.
			BorderForeground(lipgloss.Color(p.Primary)).
			Padding(1, 2),
		BoxDanger: card.
			BorderForeground(lipgloss.Color(p.Danger)).
			Padding(1, 2),

		NavItem:   fg(p.Muted).Padding(0, 1),
		NavActive: fg(p.Primary).Bold(true).Padding(0, 1),
		NavHover:  fg(p.Foreground).Padding(0, 1),
	}
}

// StylesFor is NewStyles(PaletteFor(m)).
func StylesFor(m theme.Mode) Styles {
	return NewStyles(PaletteFor(m))
}
