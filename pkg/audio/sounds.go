// pkg/audio/sounds.go
package audio

import (
	"time"

	"github.com/gopxl/beep"
)

// Sound effect timing
const (
	chimeDuration  = 250 * time.Millisecond
	chimeAttack    = 5 * time.Millisecond
	chimeRelease   = 180 * time.Millisecond
	crashDuration  = 600 * time.Millisecond
	crashAttack    = 2 * time.Millisecond
	crashRelease   = 450 * time.Millisecond
	noteDuration   = 160 * time.Millisecond
	noteAttack     = 5 * time.Millisecond
	noteRelease    = 100 * time.Millisecond
	thumpDuration  = 120 * time.Millisecond
	thumpFrequency = 70.0
)

// GateChimeSound is a bright two-tone ding played on a gate pass
func GateChimeSound(rate beep.SampleRate, volume float64) beep.Streamer {
	fund := NewEnvelope(NewOscillator(880, chimeDuration, WaveSine, rate),
		chimeDuration, chimeAttack, chimeRelease, rate)
	over := NewEnvelope(NewOscillator(1760, chimeDuration, WaveSine, rate),
		chimeDuration, chimeAttack, chimeRelease, rate)

	mixed := beep.Mix(
		newVolume(fund, 0.7),
		newVolume(over, 0.3),
	)
	return newVolume(mixed, volume)
}

// CrashSound is a harsh noise burst over a low thump
func CrashSound(rate beep.SampleRate, volume float64) beep.Streamer {
	noise := NewEnvelope(NewOscillator(0, crashDuration, WaveNoise, rate),
		crashDuration, crashAttack, crashRelease, rate)
	thump := NewEnvelope(NewOscillator(thumpFrequency, crashDuration, WaveSquare, rate),
		thumpDuration, crashAttack, thumpDuration/2, rate)

	mixed := beep.Mix(
		newVolume(noise, 0.6),
		newVolume(thump, 0.8),
	)
	return newVolume(mixed, volume)
}

// FinishSound is a rising three-note arpeggio for completing a course
func FinishSound(rate beep.SampleRate, volume float64) beep.Streamer {
	note := func(freq float64) beep.Streamer {
		return NewEnvelope(NewOscillator(freq, noteDuration, WaveSquare, rate),
			noteDuration, noteAttack, noteRelease, rate)
	}
	// C5, E5, G5.
	arpeggio := beep.Seq(note(523.25), note(659.25), note(783.99))
	return newVolume(arpeggio, volume)
}

// ResetSound is a short low blip for a race restart
func ResetSound(rate beep.SampleRate, volume float64) beep.Streamer {
	blip := NewEnvelope(NewOscillator(220, noteDuration, WaveSaw, rate),
		noteDuration, noteAttack, noteRelease, rate)
	return newVolume(blip, volume)
}
