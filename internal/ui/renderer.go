package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"mannchess/internal/board"
)

// Theme defines the color scheme for the board.
type Theme struct {
	LightSquare    color.RGBA
	DarkSquare     color.RGBA
	SelectedSquare color.RGBA
	LegalMoveColor color.RGBA
	OpponentColor  color.RGBA
	Background     color.RGBA
}

// DefaultTheme returns the default color theme.
func DefaultTheme() *Theme {
	return &Theme{
		LightSquare:    color.RGBA{236, 218, 185, 255}, // Tan
		DarkSquare:     color.RGBA{174, 137, 104, 255}, // Brown
		SelectedSquare: color.RGBA{247, 247, 105, 180}, // Yellow highlight
		LegalMoveColor: color.RGBA{130, 151, 105, 200}, // Green dots
		OpponentColor:  color.RGBA{120, 160, 255, 110}, // Blue advisory tint
		Background:     color.RGBA{40, 44, 52, 255},    // Dark gray
	}
}

// Renderer draws the 8x10 board and everything on it.
type Renderer struct {
	sprites    *SpriteManager
	theme      *Theme
	squareSize int
}

// NewRenderer creates a new renderer.
func NewRenderer(squareSize int) *Renderer {
	return &Renderer{
		sprites:    NewSpriteManager(squareSize),
		theme:      DefaultTheme(),
		squareSize: squareSize,
	}
}

// DrawBoard draws the board squares. Row 0 is at the top: the white player
// sits on rows 6 and 7 and pushes upward on screen.
func (r *Renderer) DrawBoard(screen *ebiten.Image) {
	for row := 0; row < board.Rows; row++ {
		for col := 0; col < board.Cols; col++ {
			x := float32(col * r.squareSize)
			y := float32(row * r.squareSize)

			c := r.theme.LightSquare
			if (row+col)%2 == 1 {
				c = r.theme.DarkSquare
			}
			vector.DrawFilledRect(screen, x, y, float32(r.squareSize), float32(r.squareSize), c, false)
		}
	}
}

// DrawHighlights draws the confirmed selection, its candidate destinations,
// and the advisory opponent selection.
func (r *Renderer) DrawHighlights(screen *ebiten.Image, selected board.Pos, hasSelected bool, dests []board.Pos, opponent board.Pos, hasOpponent bool) {
	if hasOpponent {
		r.highlightSquare(screen, opponent, r.theme.OpponentColor)
	}
	if hasSelected {
		r.highlightSquare(screen, selected, r.theme.SelectedSquare)
	}
	for _, d := range dests {
		r.drawDestinationDot(screen, d)
	}
}

// highlightSquare draws a colored overlay on a square.
func (r *Renderer) highlightSquare(screen *ebiten.Image, p board.Pos, c color.RGBA) {
	if !p.InBounds() {
		return
	}
	x, y := r.PosToScreen(p)
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(r.squareSize), float32(r.squareSize), c, false)
}

// drawDestinationDot marks a candidate destination square.
func (r *Renderer) drawDestinationDot(screen *ebiten.Image, p board.Pos) {
	x, y := r.PosToScreen(p)
	cx := float32(x) + float32(r.squareSize)/2
	cy := float32(y) + float32(r.squareSize)/2
	radius := float32(r.squareSize) * 0.15
	vector.DrawFilledCircle(screen, cx, cy, radius, r.theme.LegalMoveColor, false)
}

// DrawPieces draws all pieces, offset by any active shake animations.
func (r *Renderer) DrawPieces(screen *ebiten.Image, b *board.Board, anims *AnimationManager) {
	for _, pc := range b.Pieces() {
		x, y := r.PosToScreen(pc.Pos())

		if anims != nil {
			offsetX, offsetY := anims.GetShakeOffset(pc.Pos())
			x += int(offsetX)
			y += int(offsetY)
		}

		r.sprites.DrawPieceAt(screen, pc.Kind, pc.Color, x, y)
	}
}

// PosToScreen converts a board position to logical screen coordinates.
func (r *Renderer) PosToScreen(p board.Pos) (int, int) {
	return p.Col * r.squareSize, p.Row * r.squareSize
}

// ScreenToPos converts logical screen coordinates to a board position.
// The second result is false for clicks outside the board.
func (r *Renderer) ScreenToPos(x, y int) (board.Pos, bool) {
	if x < 0 || x >= board.Cols*r.squareSize || y < 0 || y >= board.Rows*r.squareSize {
		return board.Pos{}, false
	}
	return board.Pos{Row: y / r.squareSize, Col: x / r.squareSize}, true
}

// SquareSize returns the size of one square in logical pixels.
func (r *Renderer) SquareSize() int {
	return r.squareSize
}

// Theme returns the current theme.
func (r *Renderer) Theme() *Theme {
	return r.theme
}
