package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"mannchess/internal/board"
	"mannchess/internal/game"
)

// ToastType represents the type of toast notification.
type ToastType int

const (
	ToastInfo ToastType = iota
	ToastWarning
	ToastError
	ToastSuccess
)

// Toast represents a notification message.
type Toast struct {
	Message   string
	Type      ToastType
	StartTime time.Time
	Duration  time.Duration
}

// ToastManager manages toast notifications.
type ToastManager struct {
	toasts   []*Toast
	maxStack int
}

// NewToastManager creates a new toast manager.
func NewToastManager() *ToastManager {
	return &ToastManager{maxStack: 3}
}

// Show displays a new toast notification.
func (tm *ToastManager) Show(message string, toastType ToastType, duration time.Duration) {
	tm.toasts = append(tm.toasts, &Toast{
		Message:   message,
		Type:      toastType,
		StartTime: time.Now(),
		Duration:  duration,
	})
	if len(tm.toasts) > tm.maxStack {
		tm.toasts = tm.toasts[1:]
	}
}

// Update removes expired toasts.
func (tm *ToastManager) Update() {
	now := time.Now()
	active := tm.toasts[:0]
	for _, t := range tm.toasts {
		if now.Sub(t.StartTime) < t.Duration {
			active = append(active, t)
		}
	}
	tm.toasts = active
}

// Draw renders all active toasts, centered over the board.
func (tm *ToastManager) Draw(screen *ebiten.Image) {
	face := GetRegularFace()
	if face == nil {
		return
	}

	y := 40.0
	for _, t := range tm.toasts {
		elapsed := time.Since(t.StartTime).Seconds()
		duration := t.Duration.Seconds()

		// Fade in/out
		alpha := 1.0
		fadeTime := 0.2
		if elapsed < fadeTime {
			alpha = elapsed / fadeTime
		} else if elapsed > duration-fadeTime {
			alpha = (duration - elapsed) / fadeTime
		}

		var bgColor, textColor color.RGBA
		switch t.Type {
		case ToastWarning:
			bgColor = color.RGBA{180, 140, 20, uint8(220 * alpha)}
			textColor = color.RGBA{40, 30, 0, uint8(255 * alpha)}
		case ToastError:
			bgColor = color.RGBA{180, 50, 50, uint8(220 * alpha)}
			textColor = color.RGBA{255, 255, 255, uint8(255 * alpha)}
		case ToastSuccess:
			bgColor = color.RGBA{50, 150, 50, uint8(220 * alpha)}
			textColor = color.RGBA{255, 255, 255, uint8(255 * alpha)}
		default: // ToastInfo
			bgColor = color.RGBA{50, 100, 150, uint8(220 * alpha)}
			textColor = color.RGBA{255, 255, 255, uint8(255 * alpha)}
		}

		w, h := MeasureText(t.Message, face)
		padding := 12.0
		boxW := w + padding*2
		boxH := h + padding*2
		x := float64(BoardWidth)/2 - boxW/2

		vector.DrawFilledRect(screen, float32(x), float32(y), float32(boxW), float32(boxH), bgColor, false)

		op := &text.DrawOptions{}
		op.GeoM.Translate(x+padding, y+padding)
		op.ColorScale.ScaleWithColor(textColor)
		text.Draw(screen, t.Message, face, op)

		y += boxH + 8
	}
}

// ShakeAnimation represents a piece shake effect on a rejected intent.
type ShakeAnimation struct {
	Pos       board.Pos
	StartTime time.Time
	Duration  time.Duration
	Intensity float64
}

// FlashAnimation represents a square flash effect.
type FlashAnimation struct {
	Pos       board.Pos
	StartTime time.Time
	Duration  time.Duration
	Color     color.RGBA
}

// AnimationManager manages visual animations.
type AnimationManager struct {
	shakes  []*ShakeAnimation
	flashes []*FlashAnimation
}

// NewAnimationManager creates a new animation manager.
func NewAnimationManager() *AnimationManager {
	return &AnimationManager{}
}

// StartShake begins a shake animation on a square.
func (am *AnimationManager) StartShake(p board.Pos) {
	am.shakes = append(am.shakes, &ShakeAnimation{
		Pos:       p,
		StartTime: time.Now(),
		Duration:  300 * time.Millisecond,
		Intensity: 8.0,
	})
}

// StartFlash begins a flash animation on a square.
func (am *AnimationManager) StartFlash(p board.Pos, c color.RGBA) {
	am.flashes = append(am.flashes, &FlashAnimation{
		Pos:       p,
		StartTime: time.Now(),
		Duration:  400 * time.Millisecond,
		Color:     c,
	})
}

// Update removes expired animations.
func (am *AnimationManager) Update() {
	now := time.Now()

	activeShakes := am.shakes[:0]
	for _, s := range am.shakes {
		if now.Sub(s.StartTime) < s.Duration {
			activeShakes = append(activeShakes, s)
		}
	}
	am.shakes = activeShakes

	activeFlashes := am.flashes[:0]
	for _, f := range am.flashes {
		if now.Sub(f.StartTime) < f.Duration {
			activeFlashes = append(activeFlashes, f)
		}
	}
	am.flashes = activeFlashes
}

// GetShakeOffset returns the current shake offset for a square.
func (am *AnimationManager) GetShakeOffset(p board.Pos) (float64, float64) {
	for _, s := range am.shakes {
		if s.Pos == p {
			elapsed := time.Since(s.StartTime).Seconds()
			progress := elapsed / s.Duration.Seconds()
			if progress >= 1.0 {
				return 0, 0
			}
			// Damped sine wave oscillation
			decay := 5.0
			freq := 40.0
			amplitude := s.Intensity * math.Exp(-decay*progress)
			return amplitude * math.Sin(freq*progress), 0
		}
	}
	return 0, 0
}

// DrawFlashes renders all active flash overlays.
func (am *AnimationManager) DrawFlashes(screen *ebiten.Image, renderer *Renderer) {
	for _, f := range am.flashes {
		elapsed := time.Since(f.StartTime).Seconds()
		progress := elapsed / f.Duration.Seconds()
		if progress >= 1.0 {
			continue
		}

		alpha := 1.0 - progress
		c := color.RGBA{f.Color.R, f.Color.G, f.Color.B, uint8(float64(f.Color.A) * alpha)}

		x, y := renderer.PosToScreen(f.Pos)
		size := float32(renderer.SquareSize())
		vector.DrawFilledRect(screen, float32(x), float32(y), size, size, c, false)
	}
}

// FeedbackManager coordinates toasts, animations and audio for the events a
// networked game produces.
type FeedbackManager struct {
	toasts     *ToastManager
	animations *AnimationManager
	audio      *AudioManager
}

// NewFeedbackManager creates a new feedback manager.
func NewFeedbackManager() *FeedbackManager {
	return &FeedbackManager{
		toasts:     NewToastManager(),
		animations: NewAnimationManager(),
		audio:      NewAudioManager(),
	}
}

// Update updates all feedback systems.
func (fm *FeedbackManager) Update() {
	fm.toasts.Update()
	fm.animations.Update()
}

// Draw renders all feedback overlays.
func (fm *FeedbackManager) Draw(screen *ebiten.Image, renderer *Renderer) {
	fm.animations.DrawFlashes(screen, renderer)
	fm.toasts.Draw(screen)
}

// Animations returns the animation manager for renderer integration.
func (fm *FeedbackManager) Animations() *AnimationManager {
	return fm.animations
}

// Audio returns the audio manager for settings access.
func (fm *FeedbackManager) Audio() *AudioManager {
	return fm.audio
}

// OnServerError relays a server error verbatim. The message is never
// interpreted or rewritten locally.
func (fm *FeedbackManager) OnServerError(message string) {
	fm.toasts.Show(message, ToastError, 3*time.Second)
	fm.audio.Play(SoundInvalid)
}

// OnRejectedMove handles a locally rejected move attempt.
func (fm *FeedbackManager) OnRejectedMove(from board.Pos) {
	fm.animations.StartShake(from)
	fm.audio.Play(SoundInvalid)
}

// OnSnapshotApplied plays move feedback derived from comparing piece counts
// across snapshots: fewer pieces means something was captured.
func (fm *FeedbackManager) OnSnapshotApplied(turnChanged, captured bool) {
	if !turnChanged {
		return
	}
	if captured {
		fm.audio.Play(SoundCapture)
	} else {
		fm.audio.Play(SoundMove)
	}
}

// OnSelectionConfirmed plays the select tick once the server echoes our
// selection back.
func (fm *FeedbackManager) OnSelectionConfirmed() {
	fm.audio.Play(SoundSelect)
}

// OnOpponentSelect flashes the square an opponent is considering.
func (fm *FeedbackManager) OnOpponentSelect(p board.Pos) {
	fm.animations.StartFlash(p, color.RGBA{120, 160, 255, 150})
}

// OnRoleAssigned announces this session's role.
func (fm *FeedbackManager) OnRoleAssigned(r game.Role) {
	var message string
	switch r {
	case game.RoleWhite:
		message = "You play white"
	case game.RoleBlack:
		message = "You play black"
	default:
		message = "Watching as observer"
	}
	fm.toasts.Show(message, ToastInfo, 3*time.Second)
	fm.audio.Play(SoundNotify)
}

// OnStatusChanged announces server-declared status transitions.
func (fm *FeedbackManager) OnStatusChanged(status string) {
	switch status {
	case game.StatusPlaying:
		fm.toasts.Show("Game on", ToastSuccess, 2*time.Second)
		fm.audio.Play(SoundNotify)
	case "waiting":
		fm.toasts.Show("Waiting for an opponent", ToastInfo, 3*time.Second)
	default:
		// Ended states arrive as opaque tokens; show them as-is.
		fm.toasts.Show(status, ToastSuccess, 5*time.Second)
		fm.audio.Play(SoundGameEnd)
	}
}

// OnRestart announces an imminent new game.
func (fm *FeedbackManager) OnRestart() {
	fm.toasts.Show("New game starting", ToastInfo, 2*time.Second)
	fm.audio.Play(SoundNotify)
}

// OnDisconnected announces the end of the session.
func (fm *FeedbackManager) OnDisconnected() {
	fm.toasts.Show("Connection lost", ToastError, 4*time.Second)
	fm.audio.Play(SoundInvalid)
}
