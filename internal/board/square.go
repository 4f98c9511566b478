// Package board implements the 8x10 variant board and geometric move generation.
package board

import "fmt"

// Board dimensions. The board is wider than it is tall: 8 rows by 10 columns.
const (
	Rows = 8
	Cols = 10
)

// Pos identifies a board cell. Row 0 is the top row (second side's back rank),
// row 7 the bottom; columns run 0-9 left to right.
type Pos struct {
	Row int
	Col int
}

// InBounds reports whether the position lies on the board.
func (p Pos) InBounds() bool {
	return p.Row >= 0 && p.Row < Rows && p.Col >= 0 && p.Col < Cols
}

// String returns the algebraic name of the square (files a-j, ranks 1-8).
// Rank 1 is the bottom row, matching over-the-board convention.
func (p Pos) String() string {
	if !p.InBounds() {
		return "-"
	}
	return fmt.Sprintf("%c%d", 'a'+p.Col, Rows-p.Row)
}

// ParsePos parses an algebraic square name such as "e4" or "j8".
func ParsePos(s string) (Pos, error) {
	if len(s) != 2 {
		return Pos{}, fmt.Errorf("invalid square: %q", s)
	}
	col := int(s[0] - 'a')
	rank := int(s[1] - '1')
	if col < 0 || col >= Cols || rank < 0 || rank >= Rows {
		return Pos{}, fmt.Errorf("invalid square: %q", s)
	}
	return Pos{Row: Rows - 1 - rank, Col: col}, nil
}
