package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"mannchess/internal/storage"
)

// SettingsModal edits preferences in place. Name and server changes take
// effect on the next connection; sound takes effect immediately.
type SettingsModal struct {
	visible bool

	nameInput   *TextInput
	serverInput *TextInput
	soundCheck  *Checkbox
	saveBtn     *ModalButton
	cancelBtn   *ModalButton

	onSave func(prefs storage.Preferences)
}

// NewSettingsModal creates the settings modal.
func NewSettingsModal(onSave func(prefs storage.Preferences)) *SettingsModal {
	modalW := 360
	modalX := (ScreenWidth - modalW) / 2
	fieldX := modalX + 30
	fieldW := modalW - 60

	sm := &SettingsModal{onSave: onSave}
	sm.nameInput = NewTextInput(fieldX, 165, fieldW, 34, "Player name", 24)
	sm.serverInput = NewTextInput(fieldX, 230, fieldW, 34, storage.DefaultServerURL, 128)
	sm.soundCheck = NewCheckbox(fieldX, 280, "Sound effects", true)

	btnW := (fieldW - 10) / 2
	sm.saveBtn = NewModalButton(fieldX, 325, btnW, 34, "Save", true, sm.save)
	sm.cancelBtn = NewModalButton(fieldX+btnW+10, 325, btnW, 34, "Cancel", false, sm.Hide)
	return sm
}

// Show opens the modal prefilled from current preferences.
func (sm *SettingsModal) Show(prefs *storage.Preferences) {
	sm.visible = true
	sm.nameInput.Value = prefs.PlayerName
	sm.serverInput.Value = prefs.ServerURL
	sm.soundCheck.Checked = prefs.SoundEnabled
	sm.nameInput.SetFocused(false)
	sm.serverInput.SetFocused(false)
}

// Hide closes the modal without saving.
func (sm *SettingsModal) Hide() {
	sm.visible = false
}

// IsVisible reports whether the modal is open.
func (sm *SettingsModal) IsVisible() bool {
	return sm.visible
}

func (sm *SettingsModal) save() {
	if sm.onSave != nil {
		sm.onSave(storage.Preferences{
			PlayerName:   sm.nameInput.Value,
			ServerURL:    sm.serverInput.Value,
			SoundEnabled: sm.soundCheck.Checked,
		})
	}
	sm.visible = false
}

// Update handles modal input.
func (sm *SettingsModal) Update(input *InputHandler) {
	if !sm.visible {
		return
	}

	sm.nameInput.Update(input)
	sm.serverInput.Update(input)
	sm.soundCheck.Update(input)
	sm.saveBtn.Update(input)
	sm.cancelBtn.Update(input)

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		sm.Hide()
	}
}

// Draw renders the modal over a dimmed backdrop.
func (sm *SettingsModal) Draw(screen *ebiten.Image) {
	if !sm.visible {
		return
	}

	vector.DrawFilledRect(screen, 0, 0, float32(ScreenWidth), float32(ScreenHeight), color.RGBA{0, 0, 0, 150}, false)

	modalW, modalH := 360, 280
	modalX := (ScreenWidth - modalW) / 2
	modalY := 100
	vector.DrawFilledRect(screen, float32(modalX), float32(modalY), float32(modalW), float32(modalH), panelBg, false)
	vector.StrokeRect(screen, float32(modalX), float32(modalY), float32(modalW), float32(modalH), 1, dividerColor, false)

	bold := GetBoldFace()
	face := GetRegularFace()
	if bold == nil || face == nil {
		return
	}

	title := "Settings"
	tw, th := MeasureText(title, bold)
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(ScreenWidth)/2-tw/2, float64(modalY)+24-th/2)
	op.ColorScale.ScaleWithColor(textPrimary)
	text.Draw(screen, title, bold, op)

	sm.drawLabel(screen, face, "Name", modalX+30, 155)
	sm.nameInput.Draw(screen)
	sm.drawLabel(screen, face, "Server", modalX+30, 220)
	sm.serverInput.Draw(screen)
	sm.soundCheck.Draw(screen)
	sm.saveBtn.Draw(screen)
	sm.cancelBtn.Draw(screen)
}

func (sm *SettingsModal) drawLabel(screen *ebiten.Image, face *text.GoTextFace, s string, x, y int) {
	op := &text.DrawOptions{}
	_, h := MeasureText(s, face)
	op.GeoM.Translate(float64(x), float64(y)-h/2)
	op.ColorScale.ScaleWithColor(textMuted)
	text.Draw(screen, s, face, op)
}
