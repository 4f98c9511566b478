package board

import (
	"sort"
	"testing"
)

// place puts a fresh piece on the board and returns it.
func place(b *Board, k Kind, c Color, row, col int) *Piece {
	p := &Piece{Kind: k, Color: c}
	b.SetPiece(Pos{Row: row, Col: col}, p)
	return p
}

func sortPositions(ps []Pos) {
	sort.Slice(ps, func(i, j int) bool {
		if ps[i].Row != ps[j].Row {
			return ps[i].Row < ps[j].Row
		}
		return ps[i].Col < ps[j].Col
	})
}

func assertMoves(t *testing.T, got []Pos, want []Pos) {
	t.Helper()
	sortPositions(got)
	sortPositions(want)
	if len(got) != len(want) {
		t.Fatalf("got %d moves %v, want %d moves %v", len(got), got, len(want), want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("got moves %v, want %v", got, want)
		}
	}
}

func TestPawnHomeRowPushes(t *testing.T) {
	b := New()
	pawn := place(b, Pawn, White, 6, 4)

	assertMoves(t, Moves(pawn, b), []Pos{{Row: 5, Col: 4}, {Row: 4, Col: 4}})

	// An opposing piece on the forward-left diagonal adds a capture.
	place(b, Knight, Black, 5, 3)
	assertMoves(t, Moves(pawn, b), []Pos{{Row: 5, Col: 4}, {Row: 4, Col: 4}, {Row: 5, Col: 3}})

	// Blocking the square directly ahead removes both pushes; only the
	// capture remains.
	place(b, Bishop, White, 5, 4)
	assertMoves(t, Moves(pawn, b), []Pos{{Row: 5, Col: 3}})
}

func TestPawnDoubleStepOnlyFromHomeRow(t *testing.T) {
	b := New()
	pawn := place(b, Pawn, White, 5, 4)
	assertMoves(t, Moves(pawn, b), []Pos{{Row: 4, Col: 4}})
}

func TestPawnDoubleStepDeniedAfterMoving(t *testing.T) {
	// A snapshot may report a pawn on its home row with hasMoved set; the
	// moved flag still revokes the double step.
	b := New()
	pawn := place(b, Pawn, White, 6, 4)
	pawn.Moved = true
	assertMoves(t, Moves(pawn, b), []Pos{{Row: 5, Col: 4}})
}

func TestPawnDoubleStepBlockedByDestination(t *testing.T) {
	b := New()
	pawn := place(b, Pawn, White, 6, 4)
	place(b, Rook, Black, 4, 4)
	assertMoves(t, Moves(pawn, b), []Pos{{Row: 5, Col: 4}})
}

func TestPawnDiagonalNeverOntoEmptyOrOwn(t *testing.T) {
	b := New()
	pawn := place(b, Pawn, Black, 1, 0)
	place(b, Pawn, Black, 2, 1)

	// Black advances toward higher rows; the own piece on the diagonal is
	// not a capture and the empty right diagonal is off-board.
	assertMoves(t, Moves(pawn, b), []Pos{{Row: 2, Col: 0}, {Row: 3, Col: 0}})
}

func TestRookRayStopsAtFirstOpponent(t *testing.T) {
	b := New()
	rook := place(b, Rook, White, 3, 3)
	place(b, Pawn, Black, 3, 7)

	var rightward []Pos
	for _, m := range Moves(rook, b) {
		if m.Row == 3 && m.Col > 3 {
			rightward = append(rightward, m)
		}
	}
	assertMoves(t, rightward, []Pos{{Row: 3, Col: 4}, {Row: 3, Col: 5}, {Row: 3, Col: 6}, {Row: 3, Col: 7}})
}

func TestRookRayStopsBeforeOwnPiece(t *testing.T) {
	b := New()
	rook := place(b, Rook, White, 3, 3)
	place(b, Pawn, White, 3, 6)

	for _, m := range Moves(rook, b) {
		if m.Row == 3 && m.Col >= 6 {
			t.Errorf("rook ray reached %v past own piece at (3,6)", m)
		}
	}
}

func TestRookReachesFullBoardWidth(t *testing.T) {
	b := New()
	rook := place(b, Rook, White, 0, 0)

	// 9 squares right plus 7 down on an otherwise empty board.
	if got := len(Moves(rook, b)); got != 16 {
		t.Errorf("corner rook on empty board: got %d moves, want 16", got)
	}
}

func TestBishopStopRules(t *testing.T) {
	b := New()
	bishop := place(b, Bishop, Black, 4, 4)
	place(b, Pawn, White, 6, 6) // capture, ends ray
	place(b, Pawn, Black, 2, 2) // own, excluded

	moves := Moves(bishop, b)
	has := func(p Pos) bool {
		for _, m := range moves {
			if m == p {
				return true
			}
		}
		return false
	}
	if !has(Pos{Row: 6, Col: 6}) {
		t.Error("expected bishop to include first opposing piece at (6,6)")
	}
	if has(Pos{Row: 7, Col: 7}) {
		t.Error("bishop ray continued past capture at (6,6)")
	}
	if has(Pos{Row: 2, Col: 2}) {
		t.Error("bishop ray included own piece at (2,2)")
	}
	if has(Pos{Row: 3, Col: 3}) != true {
		t.Error("bishop ray should stop before, not at, own piece")
	}
}

func TestKnightOffsetsRespectAsymmetricBoard(t *testing.T) {
	b := New()
	knight := place(b, Knight, White, 0, 9)
	assertMoves(t, Moves(knight, b), []Pos{{Row: 1, Col: 7}, {Row: 2, Col: 8}})

	b2 := New()
	center := place(b2, Knight, White, 4, 5)
	if got := len(Moves(center, b2)); got != 8 {
		t.Errorf("central knight: got %d moves, want 8", got)
	}
}

func TestKnightSkipsOwnLandsOnOpponent(t *testing.T) {
	b := New()
	knight := place(b, Knight, White, 4, 4)
	place(b, Pawn, White, 2, 3)
	place(b, Pawn, Black, 2, 5)

	moves := Moves(knight, b)
	for _, m := range moves {
		if (m == Pos{Row: 2, Col: 3}) {
			t.Error("knight landed on own piece")
		}
	}
	found := false
	for _, m := range moves {
		if (m == Pos{Row: 2, Col: 5}) {
			found = true
		}
	}
	if !found {
		t.Error("knight should capture opposing piece at (2,5)")
	}
}

func TestQueenIsRookUnionBishop(t *testing.T) {
	b := New()
	place(b, Pawn, Black, 4, 7)
	place(b, Pawn, White, 1, 4)
	place(b, Knight, Black, 6, 6)

	queen := place(b, Queen, White, 4, 4)
	rook := &Piece{Kind: Rook, Color: White, Row: 4, Col: 4}
	bishop := &Piece{Kind: Bishop, Color: White, Row: 4, Col: 4}

	want := append(Moves(rook, b), Moves(bishop, b)...)
	assertMoves(t, Moves(queen, b), want)
}

func TestKingAndMannShareGeometry(t *testing.T) {
	b := New()
	place(b, Pawn, White, 3, 3)
	place(b, Pawn, Black, 3, 4)

	for _, at := range []Pos{{Row: 4, Col: 4}, {Row: 0, Col: 0}, {Row: 7, Col: 9}} {
		king := &Piece{Kind: King, Color: White, Row: at.Row, Col: at.Col}
		mann := &Piece{Kind: Mann, Color: White, Row: at.Row, Col: at.Col}
		assertMoves(t, Moves(king, b), Moves(mann, b))
	}
}

// TestAllMovesInBounds sweeps every kind over every square of a cluttered
// board and checks the bounds invariant.
func TestAllMovesInBounds(t *testing.T) {
	b := New()
	place(b, Pawn, Black, 2, 2)
	place(b, Rook, White, 5, 8)
	place(b, Mann, Black, 6, 1)

	kinds := []Kind{Pawn, Rook, Knight, Bishop, Queen, King, Mann}
	for _, k := range kinds {
		for r := 0; r < Rows; r++ {
			for c := 0; c < Cols; c++ {
				for _, col := range []Color{White, Black} {
					p := &Piece{Kind: k, Color: col, Row: r, Col: c}
					for _, m := range Moves(p, b) {
						if !m.InBounds() {
							t.Fatalf("%v %v at (%d,%d) generated off-board move %v", col, k, r, c, m)
						}
					}
				}
			}
		}
	}
}
