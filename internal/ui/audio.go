package ui

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// SoundType represents different sound effects.
type SoundType int

const (
	SoundMove SoundType = iota
	SoundCapture
	SoundSelect
	SoundInvalid
	SoundNotify
	SoundGameEnd
)

const sampleRate = 44100

// AudioManager handles sound effect playback.
type AudioManager struct {
	context *audio.Context
	sounds  map[SoundType][]byte
	enabled bool
	volume  float64
}

// NewAudioManager creates a new audio manager with procedural sounds.
func NewAudioManager() *AudioManager {
	am := &AudioManager{
		context: audio.NewContext(sampleRate),
		sounds:  make(map[SoundType][]byte),
		enabled: true,
		volume:  0.5,
	}
	am.generateSounds()
	return am
}

func (am *AudioManager) generateSounds() {
	// Move: short wooden click.
	am.sounds[SoundMove] = am.generateClick(440, 0.08, 0.3)

	// Capture: sharper, lower impact.
	am.sounds[SoundCapture] = am.generateClick(310, 0.12, 0.5)

	// Select acknowledged by the server: tiny high tick.
	am.sounds[SoundSelect] = am.generateClick(660, 0.05, 0.2)

	// Invalid: low buzz.
	am.sounds[SoundInvalid] = am.generateBuzz(150, 0.1, 0.3)

	// Notify (role assigned, opponent joined, restart): soft tone.
	am.sounds[SoundNotify] = am.generateTone(780, 0.12, 0.35)

	// Game end: chord.
	am.sounds[SoundGameEnd] = am.generateChord(0.4, 0.5)
}

// writeSample writes one stereo 16-bit sample pair.
func writeSample(data []byte, i int, sample float64) {
	val := int16(sample * 32767)
	data[i*4] = byte(val)
	data[i*4+1] = byte(val >> 8)
	data[i*4+2] = byte(val)
	data[i*4+3] = byte(val >> 8)
}

// generateClick creates a short percussive click.
func (am *AudioManager) generateClick(freq, duration, amplitude float64) []byte {
	samples := int(sampleRate * duration)
	data := make([]byte, samples*4)

	for i := 0; i < samples; i++ {
		t := float64(i) / sampleRate
		envelope := math.Exp(-t * 30)
		noise := (math.Sin(float64(i)*0.3) + math.Sin(float64(i)*0.7)) * 0.3
		writeSample(data, i, (math.Sin(2*math.Pi*freq*t)+noise)*envelope*amplitude)
	}
	return data
}

// generateTone creates a tone with an attack-decay envelope.
func (am *AudioManager) generateTone(freq, duration, amplitude float64) []byte {
	samples := int(sampleRate * duration)
	data := make([]byte, samples*4)

	for i := 0; i < samples; i++ {
		t := float64(i) / sampleRate
		progress := t / duration
		var envelope float64
		if progress < 0.1 {
			envelope = progress / 0.1
		} else {
			envelope = 1.0 - (progress-0.1)/0.9
		}
		writeSample(data, i, math.Sin(2*math.Pi*freq*t)*envelope*amplitude)
	}
	return data
}

// generateBuzz creates a low error buzz.
func (am *AudioManager) generateBuzz(freq, duration, amplitude float64) []byte {
	samples := int(sampleRate * duration)
	data := make([]byte, samples*4)

	for i := 0; i < samples; i++ {
		t := float64(i) / sampleRate
		envelope := 1.0 - t/duration
		wave := math.Sin(2*math.Pi*freq*t) + 0.3*math.Sin(4*math.Pi*freq*t)
		writeSample(data, i, wave*envelope*amplitude*0.5)
	}
	return data
}

// generateChord creates a simple major chord.
func (am *AudioManager) generateChord(duration, amplitude float64) []byte {
	samples := int(sampleRate * duration)
	data := make([]byte, samples*4)

	// C major: C4, E4, G4
	freqs := []float64{261.63, 329.63, 392.00}

	for i := 0; i < samples; i++ {
		t := float64(i) / sampleRate
		progress := t / duration
		var envelope float64
		switch {
		case progress < 0.1:
			envelope = progress / 0.1
		case progress > 0.7:
			envelope = (1.0 - progress) / 0.3
		default:
			envelope = 1.0
		}

		sample := 0.0
		for _, freq := range freqs {
			sample += math.Sin(2 * math.Pi * freq * t)
		}
		writeSample(data, i, sample/float64(len(freqs))*envelope*amplitude)
	}
	return data
}

// Play plays a sound effect.
func (am *AudioManager) Play(sound SoundType) {
	if !am.enabled {
		return
	}
	data, ok := am.sounds[sound]
	if !ok {
		return
	}

	// A fresh player per play allows overlapping sounds.
	player := am.context.NewPlayerFromBytes(data)
	player.SetVolume(am.volume)
	player.Play()
}

// SetEnabled enables or disables audio.
func (am *AudioManager) SetEnabled(enabled bool) {
	am.enabled = enabled
}

// IsEnabled returns whether audio is enabled.
func (am *AudioManager) IsEnabled() bool {
	return am.enabled
}
