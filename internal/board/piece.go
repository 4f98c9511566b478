package board

// Color represents the color of a piece or player.
type Color uint8

const (
	White Color = iota
	Black
)

// Other returns the opposite color.
func (c Color) Other() Color {
	return c ^ 1
}

// String returns the wire name of the color.
func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// ParseColor converts a wire color string. ok is false for anything
// that is not a known color.
func ParseColor(s string) (Color, bool) {
	switch s {
	case "white":
		return White, true
	case "black":
		return Black, true
	default:
		return White, false
	}
}

// Kind represents the type of a piece.
type Kind uint8

const (
	Pawn Kind = iota
	Rook
	Knight
	Bishop
	Queen
	King
	Mann
	kindCount
)

// String returns the wire name of the kind.
func (k Kind) String() string {
	names := [kindCount]string{"pawn", "rook", "knight", "bishop", "queen", "king", "mann"}
	if k >= kindCount {
		return "unknown"
	}
	return names[k]
}

// ParseKind converts a wire kind string. ok is false for unknown kinds;
// callers skip those rather than failing, so the client keeps working when
// the server introduces new piece types.
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "pawn":
		return Pawn, true
	case "rook":
		return Rook, true
	case "knight":
		return Knight, true
	case "bishop":
		return Bishop, true
	case "queen":
		return Queen, true
	case "king":
		return King, true
	case "mann":
		return Mann, true
	default:
		return 0, false
	}
}

// Piece is a piece placed on the board. Row and Col always mirror the cell
// the piece occupies; SetPiece keeps them in sync. Moved is only meaningful
// for pawns, which lose their double step after their first move.
type Piece struct {
	Kind  Kind
	Color Color
	Row   int
	Col   int
	Moved bool
}

// Pos returns the piece's position.
func (p *Piece) Pos() Pos {
	return Pos{Row: p.Row, Col: p.Col}
}

// homeRow returns the pawn home row for a color: white pawns start on row 6
// and advance toward row 0, black pawns start on row 1 and advance toward
// row 7.
func homeRow(c Color) int {
	if c == White {
		return 6
	}
	return 1
}

// forward returns the row delta a pawn of the given color advances by.
func forward(c Color) int {
	if c == White {
		return -1
	}
	return 1
}
