package board

import "strings"

// PieceState is one entry of an authoritative snapshot's flat piece list.
type PieceState struct {
	Type     string `json:"type"`
	Color    string `json:"color"`
	Row      int    `json:"row"`
	Col      int    `json:"col"`
	HasMoved bool   `json:"has_moved"`
}

// Board holds at most one piece per cell. It is pure data: all rules live in
// the move generator, all mutation policy in the game controller.
type Board struct {
	cells [Rows][Cols]*Piece
}

// New returns an empty board.
func New() *Board {
	return &Board{}
}

// PieceAt returns the piece at the position, or nil for an empty or
// off-board cell.
func (b *Board) PieceAt(p Pos) *Piece {
	if !p.InBounds() {
		return nil
	}
	return b.cells[p.Row][p.Col]
}

// SetPiece places a piece at the position, stamping the piece's own
// coordinates. A nil piece clears the cell. Off-board positions are ignored.
func (b *Board) SetPiece(p Pos, pc *Piece) {
	if !p.InBounds() {
		return
	}
	if pc != nil {
		pc.Row = p.Row
		pc.Col = p.Col
	}
	b.cells[p.Row][p.Col] = pc
}

// Pieces returns every piece currently placed, in row-major order.
func (b *Board) Pieces() []*Piece {
	var out []*Piece
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			if pc := b.cells[r][c]; pc != nil {
				out = append(out, pc)
			}
		}
	}
	return out
}

// ApplySnapshot clears the board and rebuilds it from the snapshot's piece
// list. Prior pieces are discarded, never reused: the server is authoritative
// and the client does not trust stale piece objects across an update.
// Entries with an unknown kind or color are skipped silently.
func (b *Board) ApplySnapshot(pieces []PieceState) {
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			b.cells[r][c] = nil
		}
	}
	for _, ps := range pieces {
		kind, ok := ParseKind(ps.Type)
		if !ok {
			continue
		}
		color, ok := ParseColor(ps.Color)
		if !ok {
			continue
		}
		pos := Pos{Row: ps.Row, Col: ps.Col}
		if !pos.InBounds() {
			continue
		}
		b.SetPiece(pos, &Piece{Kind: kind, Color: color, Moved: ps.HasMoved})
	}
}

// String renders the board for logs and test output, one row per line,
// uppercase for white. Mann prints as M, knight as N.
func (b *Board) String() string {
	glyphs := [kindCount]byte{'p', 'r', 'n', 'b', 'q', 'k', 'm'}
	var sb strings.Builder
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			pc := b.cells[r][c]
			if pc == nil {
				sb.WriteByte('.')
				continue
			}
			g := glyphs[pc.Kind]
			if pc.Color == White {
				g -= 'a' - 'A'
			}
			sb.WriteByte(g)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
