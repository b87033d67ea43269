// pkg/audio/manager.go
package audio

import (
	"context"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/opd-ai/go-spacerace/pkg/event"
	"github.com/opd-ai/go-spacerace/pkg/logging"
)

const sampleRate = beep.SampleRate(48000)

// SoundManager owns the speaker and mixes race sound effects into it.
// When Initialize fails (headless machine, no audio device) every Play
// method is a silent no-op.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
	logger      *logging.Logger
}

// NewSoundManager creates a sound manager, not yet connected to the
// speaker.
func NewSoundManager(logger *logging.Logger) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: 0.8,
		logger: logger,
	}
}

// Initialize opens the audio backend. Failure is reported but callers
// are expected to continue without sound.
func (sm *SoundManager) Initialize(ctx context.Context) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		sm.logger.Warn(ctx, "audio unavailable, continuing silent", "error", err.Error())
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	sm.logger.Info(ctx, "audio initialized", "sample_rate", int(sampleRate))
	return nil
}

// Cleanup silences everything. beep has no speaker close; clearing the
// mixer is enough to stop output.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	sm.mixer.Clear()
	sm.initialized = false
}

// SetVolume sets the master volume in [0, 1]
func (sm *SoundManager) SetVolume(volume float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}
	sm.volume = volume
}

func (sm *SoundManager) play(build func(beep.SampleRate, float64) beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	streamer := build(sampleRate, sm.volume)
	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}

// PlayGateChime plays the gate-passed ding
func (sm *SoundManager) PlayGateChime() {
	sm.play(GateChimeSound)
}

// PlayCrash plays the asteroid collision burst
func (sm *SoundManager) PlayCrash() {
	sm.play(CrashSound)
}

// PlayFinish plays the course-complete arpeggio
func (sm *SoundManager) PlayFinish() {
	sm.play(FinishSound)
}

// PlayReset plays the restart blip
func (sm *SoundManager) PlayReset() {
	sm.play(ResetSound)
}

// Attach wires the manager to game events so frontends don't trigger
// sounds by hand.
func (sm *SoundManager) Attach(bus *event.Bus) {
	bus.Subscribe(event.GatePassed, func(event.Event) { sm.PlayGateChime() })
	bus.Subscribe(event.ShipCrashed, func(event.Event) { sm.PlayCrash() })
	bus.Subscribe(event.CourseFinished, func(event.Event) { sm.PlayFinish() })
	bus.Subscribe(event.ShipReset, func(event.Event) { sm.PlayReset() })
}
