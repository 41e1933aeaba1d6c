package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// ChirpGenerator sweeps a sine linearly from one frequency to another
type ChirpGenerator struct {
	sr       beep.SampleRate
	from, to float64
	samples  int
	pos      int
	phase    float64
}

func NewChirpGenerator(sr beep.SampleRate, from, to float64, d time.Duration) *ChirpGenerator {
	return &ChirpGenerator{
		sr:      sr,
		from:    from,
		to:      to,
		samples: max(sr.N(d), 1),
	}
}

func (g *ChirpGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := math.Min(float64(g.pos)/float64(g.samples), 1)
		freq := g.from + (g.to-g.from)*progress

		// Short attack, linear release
		envelope := math.Min(float64(g.pos)/float64(g.sr)/0.005, 1) * (1 - progress)
		sample := 0.2 * envelope * math.Sin(g.phase)
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChirpGenerator) Err() error {
	return nil
}

// CrackleGenerator mixes decaying noise with a low rumble
type CrackleGenerator struct {
	sr   beep.SampleRate
	pos  int
	seed int64
}

// NewCrackleGenerator seeds the noise source; equal seeds give equal output
func NewCrackleGenerator(sr beep.SampleRate, seed int64) *CrackleGenerator {
	return &CrackleGenerator{sr: sr, seed: seed}
}

func (g *CrackleGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		envelope := math.Exp(-t * 10)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1

		rumble := 0.3 * math.Sin(2*math.Pi*90*t)
		sample := envelope * (0.25*noise + rumble)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *CrackleGenerator) Err() error {
	return nil
}
