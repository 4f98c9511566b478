package board

// Move generation is purely geometric: it answers where a piece could go on
// the current board, assuming it is that side's turn. Deeper legality
// (check, pins, game outcome) is the server's business and is never computed
// here.

// maxRay bounds sliding rays; the wider board dimension governs.
const maxRay = Cols

var (
	orthogonalDirs = [4]Pos{{Row: -1}, {Row: 1}, {Col: -1}, {Col: 1}}
	diagonalDirs   = [4]Pos{{Row: -1, Col: -1}, {Row: -1, Col: 1}, {Row: 1, Col: -1}, {Row: 1, Col: 1}}
	knightOffsets  = [8]Pos{
		{Row: -2, Col: -1}, {Row: -2, Col: 1},
		{Row: -1, Col: -2}, {Row: -1, Col: 2},
		{Row: 1, Col: -2}, {Row: 1, Col: 2},
		{Row: 2, Col: -1}, {Row: 2, Col: 1},
	}
	unitOffsets = [8]Pos{
		{Row: -1, Col: -1}, {Row: -1}, {Row: -1, Col: 1},
		{Col: -1}, {Col: 1},
		{Row: 1, Col: -1}, {Row: 1}, {Row: 1, Col: 1},
	}
)

// Moves returns the candidate destination squares for the piece on the given
// board. The result is side-effect-free and owned by the caller.
func Moves(p *Piece, b *Board) []Pos {
	switch p.Kind {
	case Pawn:
		return pawnMoves(p, b)
	case Rook:
		return rayMoves(p, b, orthogonalDirs[:])
	case Bishop:
		return rayMoves(p, b, diagonalDirs[:])
	case Knight:
		return offsetMoves(p, b, knightOffsets[:])
	case Queen:
		// A queen is a rook and a bishop moving from the same square.
		moves := rayMoves(p, b, orthogonalDirs[:])
		return append(moves, rayMoves(p, b, diagonalDirs[:])...)
	case King, Mann:
		return offsetMoves(p, b, unitOffsets[:])
	default:
		return nil
	}
}

// pawnMoves generates forward pushes and diagonal captures. The double step
// is offered only from the home row by a pawn that has not moved, with both
// squares empty; diagonals only capture, never step onto empty squares.
func pawnMoves(p *Piece, b *Board) []Pos {
	var moves []Pos
	dir := forward(p.Color)

	one := Pos{Row: p.Row + dir, Col: p.Col}
	if one.InBounds() && b.PieceAt(one) == nil {
		moves = append(moves, one)

		two := Pos{Row: p.Row + 2*dir, Col: p.Col}
		if p.Row == homeRow(p.Color) && !p.Moved && two.InBounds() && b.PieceAt(two) == nil {
			moves = append(moves, two)
		}
	}

	for _, dc := range [2]int{-1, 1} {
		diag := Pos{Row: p.Row + dir, Col: p.Col + dc}
		if !diag.InBounds() {
			continue
		}
		if target := b.PieceAt(diag); target != nil && target.Color != p.Color {
			moves = append(moves, diag)
		}
	}
	return moves
}

// rayMoves extends each direction until the board edge or the first occupied
// square: an opposing piece is included and ends the ray, an own piece ends
// it without being included.
func rayMoves(p *Piece, b *Board, dirs []Pos) []Pos {
	var moves []Pos
	for _, d := range dirs {
		for step := 1; step <= maxRay; step++ {
			dst := Pos{Row: p.Row + d.Row*step, Col: p.Col + d.Col*step}
			if !dst.InBounds() {
				break
			}
			target := b.PieceAt(dst)
			if target == nil {
				moves = append(moves, dst)
				continue
			}
			if target.Color != p.Color {
				moves = append(moves, dst)
			}
			break
		}
	}
	return moves
}

// offsetMoves generates the fixed-offset jumps shared by knight, king and
// mann: any on-board square not occupied by an own piece.
func offsetMoves(p *Piece, b *Board, offsets []Pos) []Pos {
	var moves []Pos
	for _, o := range offsets {
		dst := Pos{Row: p.Row + o.Row, Col: p.Col + o.Col}
		if !dst.InBounds() {
			continue
		}
		if target := b.PieceAt(dst); target != nil && target.Color == p.Color {
			continue
		}
		moves = append(moves, dst)
	}
	return moves
}
