package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/letter-dash/internal/config"
)

func TestTriangle(t *testing.T) {
	tests := []struct {
		phase, want float64
	}{
		{0, -1},
		{0.25, 0},
		{0.5, 1},
		{0.75, 0},
	}
	for _, tc := range tests {
		if got := triangle(tc.phase); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("triangle(%v) = %v, expected %v", tc.phase, got, tc.want)
		}
	}
}

func TestNoteEnvelope(t *testing.T) {
	shape := config.NoteShape{DurationMs: 160, AttackMs: 10, DecayMs: 140, Peak: 0.25}
	rate := beep.SampleRate(44100)
	n := newNote(440, shape, rate)

	if got := n.gain(0); math.Abs(got-envelopeFloor) > 1e-12 {
		t.Errorf("gain at start = %v, expected %v", got, envelopeFloor)
	}
	if got := n.gain(n.attack); math.Abs(got-0.25) > 1e-12 {
		t.Errorf("gain at attack end = %v, expected 0.25", got)
	}
	if got := n.gain(n.decay); got != 0 {
		t.Errorf("gain after decay = %v, expected 0", got)
	}
}

func TestNoteDrainsAfterDuration(t *testing.T) {
	shape := config.NoteShape{DurationMs: 160, AttackMs: 10, DecayMs: 140, Peak: 0.25}
	rate := beep.SampleRate(44100)
	n := newNote(440, shape, rate)

	buf := make([][2]float64, 512)
	total := 0
	peak := 0.0
	for {
		got, ok := n.Stream(buf)
		for i := 0; i < got; i++ {
			peak = math.Max(peak, math.Abs(buf[i][0]))
		}
		total += got
		if !ok {
			break
		}
	}

	if want := rate.N(160 * time.Millisecond); total != want {
		t.Errorf("streamed %d samples, expected %d", total, want)
	}
	if peak > 0.25+1e-9 || peak < 0.2 {
		t.Errorf("peak amplitude = %v, expected close to 0.25", peak)
	}
	if err := n.Err(); err != nil {
		t.Errorf("Err() = %v", err)
	}
}
