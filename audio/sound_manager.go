// Package audio plays short synthesized cues for collision edges
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/arena/entity"
	"github.com/lixenwraith/arena/physics"
)

const (
	sampleRate = beep.SampleRate(48000)

	chirpDuration   = 60 * time.Millisecond
	consumeDuration = 250 * time.Millisecond
)

// SoundManager owns the speaker and a mixer all cues are added to
// Every method is a no-op until Initialize succeeds
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func NewSoundManager() *SoundManager {
	return &SoundManager{mixer: &beep.Mixer{}}
}

// Initialize opens the audio device; a second call is a no-op
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Initialized reports whether cues reach the speaker
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Cleanup drops queued cues and detaches from the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Clear()
	sm.mixer.Clear()
	sm.initialized = false
}

// PlayEntered plays a rising chirp
func (sm *SoundManager) PlayEntered() {
	sm.play(beep.Take(sampleRate.N(chirpDuration), NewChirpGenerator(sampleRate, 660, 990, chirpDuration)))
}

// PlayConsumed plays a crackle that fades out
func (sm *SoundManager) PlayConsumed() {
	sm.play(beep.Take(sampleRate.N(consumeDuration), NewCrackleGenerator(sampleRate, 1)))
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// Cue identifies which sound a contact maps to
type Cue uint8

const (
	CueNone Cue = iota
	CueEntered
	CueConsumed
)

// CueFor maps a collision edge to its sound
// Leaving an enemy consumes it; leaving another player is silent
func CueFor(c physics.Contact) Cue {
	switch c.State {
	case physics.Entered:
		return CueEntered
	case physics.Exited:
		if c.Other != nil && c.Other.Kind == entity.KindEnemy {
			return CueConsumed
		}
	}
	return CueNone
}

// Cue plays the sound for c, if any
func (sm *SoundManager) Cue(c physics.Contact) Cue {
	cue := CueFor(c)
	switch cue {
	case CueEntered:
		sm.PlayEntered()
	case CueConsumed:
		sm.PlayConsumed()
	}
	return cue
}
