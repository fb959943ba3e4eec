// Package textutil provides unicode-aware width helpers for laying out bars
// and cards in terminal columns.
package textutil

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// TruncateEllipsis is the unicode ellipsis character used for truncation.
const TruncateEllipsis = "…"

// VisualWidth returns the number of terminal columns s occupies. s must be unstyled.
func VisualWidth(s string) int {
	return runewidth.StringWidth(s)
}

// VisualWidthStyled returns the widest line of a styled string, ignoring ANSI codes.
func VisualWidthStyled(s string) int {
	return lipgloss.Width(s)
}

// Truncate shortens s to at most maxWidth columns, ending in an ellipsis when cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return runewidth.Truncate(s, maxWidth, TruncateEllipsis)
}

// PadRightVisual pads s with spaces to targetWidth columns, truncating if wider.
func PadRightVisual(s string, targetWidth int) string {
	if VisualWidth(s) > targetWidth {
		return Truncate(s, targetWidth)
	}
	return runewidth.FillRight(s, targetWidth)
}

// PadLeftVisual pads s on the left to targetWidth columns, truncating if wider.
func PadLeftVisual(s string, targetWidth int) string {
	if VisualWidth(s) > targetWidth {
		return Truncate(s, targetWidth)
	}
	return runewidth.FillLeft(s, targetWidth)
}

// Center pads s on both sides to targetWidth columns; odd padding goes right.
func Center(s string, targetWidth int) string {
	w := VisualWidth(s)
	if w >= targetWidth {
		return Truncate(s, targetWidth)
	}
	left := (targetWidth - w) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", targetWidth-w-left)
}
