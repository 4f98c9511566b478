package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"mannchess/internal/board"
	"mannchess/internal/game"
	"mannchess/internal/storage"
)

// Shared panel palette
var (
	panelBg         = color.RGBA{38, 41, 46, 255}
	dividerColor    = color.RGBA{58, 62, 68, 255}
	textPrimary     = color.RGBA{240, 240, 245, 255}
	textSecondary   = color.RGBA{170, 175, 185, 255}
	textMuted       = color.RGBA{120, 125, 135, 255}
	accentColor     = color.RGBA{76, 175, 120, 255}
	accentHover     = color.RGBA{96, 195, 140, 255}
	accentPressed   = color.RGBA{56, 145, 100, 255}
	buttonBg        = color.RGBA{52, 56, 62, 255}
	buttonHoverBg   = color.RGBA{62, 66, 74, 255}
	buttonPressedBg = color.RGBA{44, 48, 54, 255}
	dangerColor     = color.RGBA{200, 90, 80, 255}
	whiteBadge      = color.RGBA{235, 232, 225, 255}
	blackBadge      = color.RGBA{60, 58, 55, 255}
)

// Button is a clickable panel button.
type Button struct {
	X, Y, W, H int
	Label      string
	Enabled    bool
	OnClick    func()
	hovered    bool
	pressed    bool
}

// NewButton creates a new panel button.
func NewButton(x, y, w, h int, label string, onClick func()) *Button {
	return &Button{X: x, Y: y, W: w, H: h, Label: label, Enabled: true, OnClick: onClick}
}

// Update handles button input. Returns true when clicked.
func (b *Button) Update(input *InputHandler) bool {
	mx, my := input.MousePosition()
	b.hovered = mx >= b.X && mx < b.X+b.W && my >= b.Y && my < b.Y+b.H
	b.pressed = b.hovered && b.Enabled && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	if b.Enabled && b.hovered && input.IsLeftJustPressed() {
		if b.OnClick != nil {
			b.OnClick()
		}
		return true
	}
	return false
}

// Draw renders the button.
func (b *Button) Draw(screen *ebiten.Image) {
	face := GetRegularFace()
	if face == nil {
		return
	}

	bgColor := buttonBg
	borderC := dividerColor
	labelColor := textPrimary
	switch {
	case !b.Enabled:
		labelColor = textMuted
	case b.pressed:
		bgColor = buttonPressedBg
	case b.hovered:
		bgColor, borderC = buttonHoverBg, accentColor
	}

	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), bgColor, false)
	vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 1, borderC, false)

	w, h := MeasureText(b.Label, face)
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(b.X)+float64(b.W)/2-w/2, float64(b.Y)+float64(b.H)/2-h/2)
	op.ColorScale.ScaleWithColor(labelColor)
	text.Draw(screen, b.Label, face, op)
}

// Panel is the side panel showing match state and actions.
type Panel struct {
	x, width int

	restartBtn  *Button
	deselectBtn *Button
	settingsBtn *Button

	connected  bool
	serverURL  string
	playerName string
	stats      *storage.MatchStats
}

// NewPanel creates the side panel. onRestart, onDeselect and onSettings
// are invoked when the matching button is clicked.
func NewPanel(x, width int, onRestart, onDeselect, onSettings func()) *Panel {
	btnW := width - 40
	return &Panel{
		x:           x,
		width:       width,
		restartBtn:  NewButton(x+20, BoardHeight-140, btnW, 32, "Restart Game", onRestart),
		deselectBtn: NewButton(x+20, BoardHeight-100, btnW, 32, "Clear Selection", onDeselect),
		settingsBtn: NewButton(x+20, BoardHeight-60, btnW, 32, "Settings", onSettings),
	}
}

// SetConnection updates the connection readout.
func (p *Panel) SetConnection(connected bool, serverURL, playerName string) {
	p.connected = connected
	p.serverURL = serverURL
	p.playerName = playerName
}

// SetStats updates the stats readout.
func (p *Panel) SetStats(stats *storage.MatchStats) {
	p.stats = stats
}

// HandleInput updates the panel buttons against the current match state.
func (p *Panel) HandleInput(input *InputHandler, ctrl *game.Controller) {
	_, hasSel := ctrl.Selection()
	p.restartBtn.Enabled = ctrl.Role() != game.RoleObserver && p.connected
	p.deselectBtn.Enabled = hasSel && p.connected

	p.restartBtn.Update(input)
	p.deselectBtn.Update(input)
	p.settingsBtn.Update(input)
}

// AnyButtonHovered reports whether the pointer is over a panel button.
func (p *Panel) AnyButtonHovered() bool {
	return p.restartBtn.hovered || p.deselectBtn.hovered || p.settingsBtn.hovered
}

// Draw renders the panel.
func (p *Panel) Draw(screen *ebiten.Image, ctrl *game.Controller) {
	vector.DrawFilledRect(screen, float32(p.x), 0, float32(p.width), float32(BoardHeight), panelBg, false)

	face := GetRegularFace()
	bold := GetBoldFace()
	if face == nil || bold == nil {
		return
	}

	x := p.x + 20
	y := 28

	title := "Mann Chess"
	op := &text.DrawOptions{}
	_, th := MeasureText(title, bold)
	op.GeoM.Translate(float64(x), float64(y)-th/2)
	op.ColorScale.ScaleWithColor(textPrimary)
	text.Draw(screen, title, bold, op)
	y += 26

	DrawDivider(screen, x, y, p.width-40)
	y += 20

	// Connection
	connLabel := "Disconnected"
	connColor := dangerColor
	if p.connected {
		connLabel = "Connected"
		connColor = accentColor
	}
	vector.DrawFilledCircle(screen, float32(x+5), float32(y), 5, connColor, false)
	p.drawLine(screen, face, connLabel, x+18, y, textSecondary)
	y += 20
	if p.playerName != "" {
		p.drawLine(screen, face, p.playerName, x, y, textMuted)
		y += 20
	}
	y += 10

	DrawDivider(screen, x, y, p.width-40)
	y += 20

	// Role and turn
	DrawSectionHeader(screen, "MATCH", x, y)
	y += 22
	p.drawLine(screen, face, "Playing as: "+roleLabel(ctrl.Role()), x, y, textPrimary)
	y += 22

	turn := ctrl.Turn()
	turnLabel := "White to move"
	badge := whiteBadge
	if turn == board.Black {
		turnLabel = "Black to move"
		badge = blackBadge
	}
	vector.DrawFilledCircle(screen, float32(x+6), float32(y), 6, badge, false)
	vector.StrokeCircle(screen, float32(x+6), float32(y), 6, 1, dividerColor, false)
	turnColor := textSecondary
	if ctrl.CanAct() {
		turnLabel = "Your move"
		turnColor = accentColor
	}
	p.drawLine(screen, face, turnLabel, x+20, y, turnColor)
	y += 22

	p.drawLine(screen, face, "Status: "+statusLabel(ctrl.Status()), x, y, textSecondary)
	y += 22

	if piece := ctrl.SelectedPiece(); piece != nil {
		sel := fmt.Sprintf("Selected: %s at %s", kindLabel(piece.Kind), board.Pos{Row: piece.Row, Col: piece.Col})
		p.drawLine(screen, face, sel, x, y, textSecondary)
		y += 22
	}
	y += 8

	DrawDivider(screen, x, y, p.width-40)
	y += 20

	// Stats
	if p.stats != nil {
		DrawSectionHeader(screen, "RECORD", x, y)
		y += 22
		p.drawLine(screen, face, fmt.Sprintf("Games: %d", p.stats.GamesPlayed), x, y, textSecondary)
		y += 20
		p.drawLine(screen, face, fmt.Sprintf("W %d / L %d / D %d", p.stats.Wins, p.stats.Losses, p.stats.Draws), x, y, textSecondary)
		y += 20
		if p.stats.GamesPlayed > 0 {
			p.drawLine(screen, face, winRateLabel(p.stats), x, y, textSecondary)
		}
	}

	p.restartBtn.Draw(screen)
	p.deselectBtn.Draw(screen)
	p.settingsBtn.Draw(screen)
}

func (p *Panel) drawLine(screen *ebiten.Image, face *text.GoTextFace, s string, x, y int, c color.RGBA) {
	op := &text.DrawOptions{}
	_, h := MeasureText(s, face)
	op.GeoM.Translate(float64(x), float64(y)-h/2)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}

func roleLabel(r game.Role) string {
	switch r {
	case game.RoleWhite:
		return "White"
	case game.RoleBlack:
		return "Black"
	default:
		return "Observer"
	}
}

// winRateLabel formats the win rate readout. WinRate is already a 0-100
// percentage.
func winRateLabel(stats *storage.MatchStats) string {
	return fmt.Sprintf("Win rate: %.0f%%", stats.WinRate())
}

func statusLabel(status string) string {
	switch status {
	case game.StatusPlaying:
		return "In progress"
	case "waiting":
		return "Waiting for opponent"
	default:
		return status
	}
}

func kindLabel(k board.Kind) string {
	switch k {
	case board.Pawn:
		return "Pawn"
	case board.Rook:
		return "Rook"
	case board.Knight:
		return "Knight"
	case board.Bishop:
		return "Bishop"
	case board.Queen:
		return "Queen"
	case board.King:
		return "King"
	case board.Mann:
		return "Mann"
	default:
		return "Piece"
	}
}
