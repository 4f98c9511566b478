package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"mannchess/internal/storage"
)

// ConnectScreen is the pre-game screen where the player names themselves
// and picks a server before joining.
type ConnectScreen struct {
	nameInput   *TextInput
	serverInput *TextInput
	joinBtn     *ModalButton

	statusMsg   string
	statusIsErr bool
	connecting  bool

	onJoin func(name, serverURL string)
}

// NewConnectScreen creates the connect screen prefilled from preferences.
func NewConnectScreen(prefs *storage.Preferences, onJoin func(name, serverURL string)) *ConnectScreen {
	cardW := 380
	cardX := (ScreenWidth - cardW) / 2
	fieldX := cardX + 30
	fieldW := cardW - 60

	cs := &ConnectScreen{
		nameInput:   NewTextInput(fieldX, 180, fieldW, 36, "Player name", 24),
		serverInput: NewTextInput(fieldX, 250, fieldW, 36, storage.DefaultServerURL, 128),
		onJoin:      onJoin,
	}
	cs.nameInput.Value = prefs.PlayerName
	cs.serverInput.Value = prefs.ServerURL
	cs.nameInput.SetFocused(true)

	cs.joinBtn = NewModalButton(fieldX, 310, fieldW, 38, "Join Game", true, cs.submit)
	return cs
}

func (cs *ConnectScreen) submit() {
	if cs.connecting {
		return
	}
	name := cs.nameInput.Value
	if name == "" {
		cs.SetStatus("Enter a player name first", true)
		return
	}
	server := cs.serverInput.Value
	if server == "" {
		server = storage.DefaultServerURL
	}
	cs.connecting = true
	cs.SetStatus("Connecting...", false)
	if cs.onJoin != nil {
		cs.onJoin(name, server)
	}
}

// SetStatus shows a status line under the join button.
func (cs *ConnectScreen) SetStatus(msg string, isErr bool) {
	cs.statusMsg = msg
	cs.statusIsErr = isErr
	if isErr {
		cs.connecting = false
	}
}

// Reset returns the screen to its idle state, e.g. after a disconnect.
func (cs *ConnectScreen) Reset(msg string) {
	cs.connecting = false
	cs.statusMsg = msg
	cs.statusIsErr = msg != ""
}

// Update handles connect screen input.
func (cs *ConnectScreen) Update(input *InputHandler) {
	cs.nameInput.Update(input)
	cs.serverInput.Update(input)
	cs.joinBtn.Update(input)

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		cs.submit()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		cs.nameInput.SetFocused(false)
		cs.serverInput.SetFocused(true)
	}
}

// Draw renders the connect screen.
func (cs *ConnectScreen) Draw(screen *ebiten.Image) {
	screen.Fill(panelBg)

	face := GetRegularFace()
	bold := GetBoldFace()
	if face == nil || bold == nil {
		return
	}

	cardW, cardH := 380, 280
	cardX := (ScreenWidth - cardW) / 2
	cardY := 110
	vector.DrawFilledRect(screen, float32(cardX), float32(cardY), float32(cardW), float32(cardH), color.RGBA{44, 47, 53, 255}, false)
	vector.StrokeRect(screen, float32(cardX), float32(cardY), float32(cardW), float32(cardH), 1, dividerColor, false)

	title := "Mann Chess"
	tw, th := MeasureText(title, bold)
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(ScreenWidth)/2-tw/2, float64(cardY)+28-th/2)
	op.ColorScale.ScaleWithColor(textPrimary)
	text.Draw(screen, title, bold, op)

	cs.drawLabel(screen, face, "Name", cardX+30, 170)
	cs.nameInput.Draw(screen)
	cs.drawLabel(screen, face, "Server", cardX+30, 240)
	cs.serverInput.Draw(screen)
	cs.joinBtn.Draw(screen)

	if cs.statusMsg != "" {
		c := textSecondary
		if cs.statusIsErr {
			c = dangerColor
		}
		sw, sh := MeasureText(cs.statusMsg, face)
		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(ScreenWidth)/2-sw/2, float64(cardY+cardH)-22-sh/2)
		op.ColorScale.ScaleWithColor(c)
		text.Draw(screen, cs.statusMsg, face, op)
	}
}

func (cs *ConnectScreen) drawLabel(screen *ebiten.Image, face *text.GoTextFace, s string, x, y int) {
	op := &text.DrawOptions{}
	_, h := MeasureText(s, face)
	op.GeoM.Translate(float64(x), float64(y)-h/2)
	op.ColorScale.ScaleWithColor(textMuted)
	text.Draw(screen, s, face, op)
}

// Name returns the entered player name.
func (cs *ConnectScreen) Name() string { return cs.nameInput.Value }

// ServerURL returns the entered server URL, falling back to the default.
func (cs *ConnectScreen) ServerURL() string {
	if cs.serverInput.Value == "" {
		return storage.DefaultServerURL
	}
	return cs.serverInput.Value
}
