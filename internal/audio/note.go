package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/letter-dash/internal/config"
)

// envelopeFloor is the near-silent gain exponential ramps start and end at.
const envelopeFloor = 0.0001

// note is a triangle wave with an exponential attack/decay envelope.
// It drains itself after the note duration.
type note struct {
	freq   float64
	rate   beep.SampleRate
	phase  float64
	pos    int
	total  int
	attack int
	decay  int
	peak   float64
}

func newNote(freq float64, shape config.NoteShape, rate beep.SampleRate) *note {
	ms := func(v int) int { return rate.N(time.Duration(v) * time.Millisecond) }
	return &note{
		freq:   freq,
		rate:   rate,
		total:  ms(shape.DurationMs),
		attack: ms(shape.AttackMs),
		decay:  ms(shape.DecayMs),
		peak:   shape.Peak,
	}
}

func (n *note) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if n.pos >= n.total {
			return i, i > 0
		}

		v := triangle(n.phase) * n.gain(n.pos)
		samples[i][0] = v
		samples[i][1] = v

		n.phase += n.freq / float64(n.rate)
		n.phase -= math.Floor(n.phase)
		n.pos++
	}
	return len(samples), true
}

func (n *note) Err() error { return nil }

// gain returns the envelope value at sample pos.
func (n *note) gain(pos int) float64 {
	switch {
	case pos < n.attack:
		return envelopeFloor * math.Pow(n.peak/envelopeFloor, float64(pos)/float64(n.attack))
	case pos < n.decay:
		t := float64(pos-n.attack) / float64(n.decay-n.attack)
		return n.peak * math.Pow(envelopeFloor/n.peak, t)
	default:
		return 0
	}
}

// triangle maps a phase in [0, 1) to a triangle wave in [-1, 1].
func triangle(phase float64) float64 {
	return 4*math.Abs(phase-math.Floor(phase+0.5)) - 1
}
