package audio

import (
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/arena/core"
	"github.com/lixenwraith/arena/entity"
	"github.com/lixenwraith/arena/physics"
)

// TestSoundManagerGracefulDegradation verifies cues don't panic when not initialized
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager()

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	sm.PlayEntered()
	sm.PlayConsumed()
	sm.Cue(physics.Contact{State: physics.Entered})
	sm.Cleanup()

	if sm.Initialized() {
		t.Error("Expected manager to stay uninitialized")
	}
}

// TestSoundManagerInitialization may legitimately fail without an audio device
func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager()

	if err := sm.Initialize(); err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}
	if err := sm.Initialize(); err != nil {
		t.Errorf("Second initialization should succeed as no-op, got error: %v", err)
	}
	sm.PlayEntered()
	sm.Cleanup()
	sm.Cleanup()
}

func TestCueFor(t *testing.T) {
	sp := entity.NewSpawner(nil)
	player := sp.NewPlayer(core.Vector2{})
	enemy := sp.NewEnemy(core.Vector2{})
	other := sp.NewPlayer(core.Vector2{})

	tests := []struct {
		name    string
		contact physics.Contact
		want    Cue
	}{
		{"entered enemy", physics.Contact{State: physics.Entered, Player: player, Other: enemy}, CueEntered},
		{"exited enemy", physics.Contact{State: physics.Exited, Player: player, Other: enemy}, CueConsumed},
		{"exited player", physics.Contact{State: physics.Exited, Player: player, Other: other}, CueNone},
		{"being collided", physics.Contact{State: physics.BeingCollided, Player: player, Other: enemy}, CueNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CueFor(tt.contact); got != tt.want {
				t.Errorf("Expected cue %d, got %d", tt.want, got)
			}
		})
	}
}

func TestChirpFadesOut(t *testing.T) {
	d := 10 * time.Millisecond
	g := NewChirpGenerator(sampleRate, 440, 880, d)
	buf := make([][2]float64, sampleRate.N(d))
	n, ok := g.Stream(buf)
	if n != len(buf) || !ok {
		t.Fatalf("Expected full stream, got n=%d ok=%v", n, ok)
	}
	for i, s := range buf {
		if math.Abs(s[0]) > 0.2 || s[0] != s[1] {
			t.Fatalf("Sample %d out of range or not mono: %v", i, s)
		}
	}
	if math.Abs(buf[len(buf)-1][0]) > 0.01 {
		t.Errorf("Expected near-silent tail, got %f", buf[len(buf)-1][0])
	}
}

func TestCrackleDeterministic(t *testing.T) {
	a := make([][2]float64, 256)
	b := make([][2]float64, 256)
	NewCrackleGenerator(sampleRate, 7).Stream(a)
	NewCrackleGenerator(sampleRate, 7).Stream(b)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Sample %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}
