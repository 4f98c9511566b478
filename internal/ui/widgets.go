package ui

import (
	"image/color"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Widget colors (shared palette lives in panel.go)
var (
	widgetBg          = color.RGBA{48, 52, 58, 255}
	widgetBorder      = color.RGBA{68, 72, 78, 255}
	widgetFocusBorder = color.RGBA{76, 175, 120, 255}
	checkboxCheck     = color.RGBA{76, 175, 120, 255}
	inputTextColor    = color.RGBA{240, 240, 245, 255}
	inputPlaceholder  = color.RGBA{120, 125, 135, 255}
)

// TextInput is an editable text field widget.
type TextInput struct {
	X, Y, W, H  int
	Value       string
	Placeholder string
	MaxLength   int
	focused     bool
	hovered     bool
	cursorBlink int
}

// NewTextInput creates a new text input widget.
func NewTextInput(x, y, w, h int, placeholder string, maxLen int) *TextInput {
	return &TextInput{
		X: x, Y: y, W: w, H: h,
		Placeholder: placeholder,
		MaxLength:   maxLen,
	}
}

// Update handles text input. Returns true while the input has focus.
func (ti *TextInput) Update(input *InputHandler) bool {
	mx, my := input.MousePosition()
	ti.hovered = mx >= ti.X && mx < ti.X+ti.W && my >= ti.Y && my < ti.Y+ti.H

	if input.IsLeftJustPressed() {
		ti.focused = ti.hovered
	}
	if !ti.focused {
		return false
	}

	ti.cursorBlink++
	if ti.cursorBlink > 60 {
		ti.cursorBlink = 0
	}

	for _, c := range ebiten.AppendInputChars(nil) {
		if ti.MaxLength == 0 || utf8.RuneCountInString(ti.Value) < ti.MaxLength {
			ti.Value += string(c)
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) && len(ti.Value) > 0 {
		_, size := utf8.DecodeLastRuneInString(ti.Value)
		ti.Value = ti.Value[:len(ti.Value)-size]
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		ti.focused = false
	}
	return true
}

// Draw renders the text input.
func (ti *TextInput) Draw(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, float32(ti.X), float32(ti.Y), float32(ti.W), float32(ti.H), widgetBg, false)

	borderColor := widgetBorder
	if ti.focused {
		borderColor = widgetFocusBorder
	} else if ti.hovered {
		borderColor = accentColor
	}
	vector.StrokeRect(screen, float32(ti.X), float32(ti.Y), float32(ti.W), float32(ti.H), 2, borderColor, false)

	face := GetRegularFace()
	if face == nil {
		return
	}

	textX := ti.X + 10
	textY := ti.Y + ti.H/2

	value, valueColor := ti.Value, inputTextColor
	if value == "" {
		value, valueColor = ti.Placeholder, inputPlaceholder
	}
	if value != "" {
		op := &text.DrawOptions{}
		_, h := MeasureText(value, face)
		op.GeoM.Translate(float64(textX), float64(textY)-h/2)
		op.ColorScale.ScaleWithColor(valueColor)
		text.Draw(screen, value, face, op)
	}

	if ti.focused && ti.cursorBlink < 30 {
		cursorX := float32(textX)
		if ti.Value != "" {
			w, _ := MeasureText(ti.Value, face)
			cursorX += float32(w) + 2
		}
		vector.DrawFilledRect(screen, cursorX, float32(ti.Y+8), 2, float32(ti.H-16), inputTextColor, false)
	}
}

// SetFocused sets the focus state.
func (ti *TextInput) SetFocused(focused bool) {
	ti.focused = focused
}

// Checkbox is a toggleable checkbox widget.
type Checkbox struct {
	X, Y    int
	Label   string
	Checked bool
	hovered bool
}

// NewCheckbox creates a new checkbox.
func NewCheckbox(x, y int, label string, checked bool) *Checkbox {
	return &Checkbox{X: x, Y: y, Label: label, Checked: checked}
}

// Update handles checkbox input. Returns true when toggled.
func (cb *Checkbox) Update(input *InputHandler) bool {
	mx, my := input.MousePosition()
	cb.hovered = mx >= cb.X && mx < cb.X+200 && my >= cb.Y && my < cb.Y+24

	if input.IsLeftJustPressed() && cb.hovered {
		cb.Checked = !cb.Checked
		return true
	}
	return false
}

// Draw renders the checkbox.
func (cb *Checkbox) Draw(screen *ebiten.Image) {
	face := GetRegularFace()
	if face == nil {
		return
	}

	boxX := float32(cb.X)
	boxY := float32(cb.Y)
	boxSize := float32(20)

	vector.DrawFilledRect(screen, boxX, boxY, boxSize, boxSize, widgetBg, false)

	borderC := widgetBorder
	if cb.hovered {
		borderC = accentColor
	} else if cb.Checked {
		borderC = checkboxCheck
	}
	vector.StrokeRect(screen, boxX, boxY, boxSize, boxSize, 2, borderC, false)

	if cb.Checked {
		vector.StrokeLine(screen, boxX+4, boxY+10, boxX+8, boxY+14, 2, checkboxCheck, false)
		vector.StrokeLine(screen, boxX+8, boxY+14, boxX+16, boxY+6, 2, checkboxCheck, false)
	}

	op := &text.DrawOptions{}
	_, h := MeasureText(cb.Label, face)
	op.GeoM.Translate(float64(cb.X+30), float64(cb.Y+10)-h/2)
	textColor := textSecondary
	if cb.Checked {
		textColor = textPrimary
	}
	op.ColorScale.ScaleWithColor(textColor)
	text.Draw(screen, cb.Label, face, op)
}

// ModalButton is a button for modal dialogs.
type ModalButton struct {
	X, Y, W, H int
	Label      string
	Primary    bool
	OnClick    func()
	hovered    bool
	pressed    bool
}

// NewModalButton creates a new modal button.
func NewModalButton(x, y, w, h int, label string, primary bool, onClick func()) *ModalButton {
	return &ModalButton{
		X: x, Y: y, W: w, H: h,
		Label:   label,
		Primary: primary,
		OnClick: onClick,
	}
}

// IsHovered returns true if the button is hovered.
func (mb *ModalButton) IsHovered() bool {
	return mb.hovered
}

// Update handles modal button input.
func (mb *ModalButton) Update(input *InputHandler) bool {
	mx, my := input.MousePosition()
	mb.hovered = mx >= mb.X && mx < mb.X+mb.W && my >= mb.Y && my < mb.Y+mb.H
	mb.pressed = mb.hovered && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	if input.IsLeftJustPressed() && mb.hovered && mb.OnClick != nil {
		mb.OnClick()
		return true
	}
	return false
}

// Draw renders the modal button.
func (mb *ModalButton) Draw(screen *ebiten.Image) {
	face := GetRegularFace()
	if face == nil {
		return
	}

	var bgColor, borderC color.RGBA
	if mb.Primary {
		bgColor, borderC = accentColor, accentPressed
		if mb.pressed {
			bgColor = accentPressed
		} else if mb.hovered {
			bgColor, borderC = accentHover, accentHover
		}
	} else {
		bgColor, borderC = buttonBg, widgetBorder
		if mb.pressed {
			bgColor = buttonPressedBg
		} else if mb.hovered {
			bgColor, borderC = buttonHoverBg, accentColor
		}
	}

	vector.DrawFilledRect(screen, float32(mb.X), float32(mb.Y), float32(mb.W), float32(mb.H), bgColor, false)
	vector.StrokeRect(screen, float32(mb.X), float32(mb.Y), float32(mb.W), float32(mb.H), 1, borderC, false)

	w, h := MeasureText(mb.Label, face)
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(mb.X)+float64(mb.W)/2-w/2, float64(mb.Y)+float64(mb.H)/2-h/2)
	op.ColorScale.ScaleWithColor(textPrimary)
	text.Draw(screen, mb.Label, face, op)
}

// DrawDivider draws a horizontal divider line.
func DrawDivider(screen *ebiten.Image, x, y, w int) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), 1, dividerColor, false)
}

// DrawSectionHeader draws a muted section header label.
func DrawSectionHeader(screen *ebiten.Image, label string, x, y int) {
	face := GetRegularFace()
	if face == nil {
		return
	}
	op := &text.DrawOptions{}
	_, h := MeasureText(label, face)
	op.GeoM.Translate(float64(x), float64(y)-h/2)
	op.ColorScale.ScaleWithColor(textMuted)
	text.Draw(screen, label, face, op)
}
