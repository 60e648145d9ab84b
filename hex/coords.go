package hex

import (
	"fmt"
	"strconv"
	"strings"
)

// CoordStyle selects how row numbers are rendered: the reference engine's
// hguicoords flag toggles between a Hex-GUI-style centered origin and a
// plain grid origin (SPEC_FULL.md §6).
type CoordStyle int

const (
	// GridCoords numbers rows starting at the top-left of the dense array.
	GridCoords CoordStyle = iota
	// HexGUICoords numbers rows relative to the board's vertical center,
	// matching the convention Hex-GUI-family front ends use.
	HexGUICoords
)

// FormatMove renders a move as an A1-style coordinate: a column letter
// followed by a row number, 1-based for GridCoords and centred on the middle
// row (zero there, negative above it) for HexGUICoords.
func FormatMove(m Move, size int, style CoordStyle) string {
	if m == Unknown {
		return "unknown"
	}
	col := 'a' + rune(m.X)
	row := int(m.Y) + 1
	if style == HexGUICoords {
		row = int(m.Y) - (size - 1)
	}
	return fmt.Sprintf("%c%d", col, row)
}

// ParseMove parses an A1-style coordinate produced by FormatMove.
func ParseMove(s string, size int, style CoordStyle) (Move, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "unknown" || s == "" {
		return Unknown, nil
	}
	if s[0] < 'a' || s[0] > 'z' {
		return Move{}, fmt.Errorf("hex: bad coordinate %q", s)
	}
	x := int(s[0] - 'a')
	row, err := strconv.Atoi(s[1:])
	if err != nil {
		return Move{}, fmt.Errorf("hex: bad coordinate %q: %w", s, err)
	}
	y := row - 1
	if style == HexGUICoords {
		y = row + (size - 1)
	}
	return Move{int8(x), int8(y)}, nil
}
