package reveal

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// PixelsPerRow converts CSS-style pixel margins to terminal rows.
const PixelsPerRow = 16

// Unit is the unit of a margin length.
type Unit int

const (
	Rows Unit = iota
	Pixels
	Percent
)

// Length is one margin component.
type Length struct {
	Value float64
	Unit  Unit
}

// Rows resolves the length against a viewport height, truncating toward zero.
func (l Length) Rows(viewportHeight int) int {
	switch l.Unit {
	case Pixels:
		return int(l.Value / PixelsPerRow)
	case Percent:
		return int(l.Value * float64(viewportHeight) / 100)
	default:
		return int(l.Value)
	}
}

// Margin grows (positive) or shrinks (negative) the viewport before intersecting.
// Only the vertical components matter for a vertically scrolling page.
type Margin struct {
	Top    Length
	Bottom Length
}

// ParseMargin parses a CSS rootMargin: one to four lengths in top, right,
// bottom, left shorthand order. Lengths may be "px", "%", or unitless rows.
func ParseMargin(s string) (Margin, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return Margin{}, nil
	}
	if len(fields) > 4 {
		return Margin{}, fmt.Errorf("root margin %q: too many values", s)
	}
	lengths := make([]Length, len(fields))
	for i, f := range fields {
		l, err := parseLength(f)
		if err != nil {
			return Margin{}, fmt.Errorf("root margin %q: %w", s, err)
		}
		lengths[i] = l
	}
	switch len(lengths) {
	case 1, 2:
		return Margin{Top: lengths[0], Bottom: lengths[0]}, nil
	default:
		return Margin{Top: lengths[0], Bottom: lengths[2]}, nil
	}
}

func parseLength(s string) (Length, error) {
	unit := Rows
	num := s
	switch {
	case strings.HasSuffix(s, "px"):
		unit, num = Pixels, strings.TrimSuffix(s, "px")
	case strings.HasSuffix(s, "%"):
		unit, num = Percent, strings.TrimSuffix(s, "%")
	}
	v, err := strconv.ParseFloat(num, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return Length{}, fmt.Errorf("invalid length %q", s)
	}
	return Length{Value: v, Unit: unit}, nil
}
