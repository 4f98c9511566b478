package ui

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"mannchess/internal/board"
)

//go:embed assets/pieces/*.svg
var pieceAssets embed.FS

// spriteKey identifies one sprite: a kind in one of the two colors.
type spriteKey struct {
	kind  board.Kind
	color board.Color
}

// SpriteManager rasterizes and caches the piece sprites.
type SpriteManager struct {
	pieces      map[spriteKey]*ebiten.Image
	size        int     // Display size in logical pixels
	renderScale float64 // Rasterize above display size for crisper scaling
}

// NewSpriteManager creates a sprite manager with pieces of the given size.
func NewSpriteManager(size int) *SpriteManager {
	sm := &SpriteManager{
		pieces:      make(map[spriteKey]*ebiten.Image),
		size:        size,
		renderScale: 3.0,
	}
	sm.loadPieces()
	return sm
}

// assetPath returns the embedded SVG path for a sprite.
func assetPath(k board.Kind, c board.Color) string {
	letters := map[board.Kind]string{
		board.Pawn:   "P",
		board.Rook:   "R",
		board.Knight: "N",
		board.Bishop: "B",
		board.Queen:  "Q",
		board.King:   "K",
		board.Mann:   "M",
	}
	side := "w"
	if c == board.Black {
		side = "b"
	}
	return fmt.Sprintf("assets/pieces/%s%s.svg", side, letters[k])
}

// loadPieces rasterizes every piece sprite from the embedded SVG files.
func (sm *SpriteManager) loadPieces() {
	renderSize := int(float64(sm.size) * sm.renderScale)

	kinds := []board.Kind{board.Pawn, board.Rook, board.Knight, board.Bishop, board.Queen, board.King, board.Mann}
	for _, k := range kinds {
		for _, c := range []board.Color{board.White, board.Black} {
			path := assetPath(k, c)
			data, err := pieceAssets.ReadFile(path)
			if err != nil {
				log.Printf("Failed to read piece asset %s: %v", path, err)
				continue
			}

			icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
			if err != nil {
				log.Printf("Failed to parse SVG %s: %v", path, err)
				continue
			}
			icon.SetTarget(0, 0, float64(renderSize), float64(renderSize))

			rgba := image.NewRGBA(image.Rect(0, 0, renderSize, renderSize))
			scanner := rasterx.NewScannerGV(renderSize, renderSize, rgba, rgba.Bounds())
			raster := rasterx.NewDasher(renderSize, renderSize, scanner)
			icon.Draw(raster, 1.0)

			sm.pieces[spriteKey{kind: k, color: c}] = ebiten.NewImageFromImage(rgba)
		}
	}
}

// DrawPieceAt draws a piece at the given pixel coordinates.
func (sm *SpriteManager) DrawPieceAt(screen *ebiten.Image, k board.Kind, c board.Color, x, y int) {
	sprite := sm.pieces[spriteKey{kind: k, color: c}]
	if sprite == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	// Scale down from raster resolution to display size.
	op.GeoM.Scale(1/sm.renderScale, 1/sm.renderScale)
	op.GeoM.Translate(float64(x), float64(y))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(sprite, op)
}

// Size returns the logical size of piece sprites.
func (sm *SpriteManager) Size() int {
	return sm.size
}
