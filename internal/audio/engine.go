// Package audio plays the background music loop.
//
// MusicLoop schedules one melody note per tempo interval on its own
// goroutine. Sound output goes through an Engine; the default one is backed
// by the beep speaker. Audio is always optional: every failure degrades to
// silence and is reported as ErrAudioUnavailable.
package audio

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/letter-dash/internal/config"
)

// ErrAudioUnavailable is returned when the output device cannot be opened
// or resumed.
var ErrAudioUnavailable = errors.New("audio unavailable")

// Engine is a sound output that can play short notes.
type Engine interface {
	// Resume wakes a suspended output. It is a no-op when already running.
	Resume() error
	// PlayNote schedules one enveloped note. Notes end on their own.
	PlayNote(freq float64)
	// Hush drops queued notes and suspends the output.
	Hush()
	// Close releases the device.
	Close() error
}

// EngineFactory opens an Engine. MusicLoop calls it lazily on the first Start.
type EngineFactory func(cfg config.AudioConfig) (Engine, error)

// BeepEngine plays notes through the beep speaker.
type BeepEngine struct {
	mu        sync.Mutex
	rate      beep.SampleRate
	mixer     *beep.Mixer
	shape     config.NoteShape
	suspended bool
}

// NewBeepEngine initializes the speaker and starts an empty mixer on it.
func NewBeepEngine(cfg config.AudioConfig) (Engine, error) {
	rate := beep.SampleRate(cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("audio: speaker init: %w", err)
	}

	e := &BeepEngine{
		rate:  rate,
		mixer: &beep.Mixer{},
		shape: cfg.Note,
	}
	speaker.Play(newVolume(e.mixer, cfg.Volume))
	return e, nil
}

// Resume resumes the speaker if Hush suspended it.
func (e *BeepEngine) Resume() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.suspended {
		return nil
	}
	if err := speaker.Resume(); err != nil {
		return fmt.Errorf("audio: resume: %w", err)
	}
	e.suspended = false
	return nil
}

// PlayNote adds a note to the mixer.
func (e *BeepEngine) PlayNote(freq float64) {
	n := newNote(freq, e.shape, e.rate)
	speaker.Lock()
	e.mixer.Add(n)
	speaker.Unlock()
}

// Hush clears the mixer and suspends the speaker.
func (e *BeepEngine) Hush() {
	speaker.Lock()
	e.mixer.Clear()
	speaker.Unlock()

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.suspended {
		return
	}
	if err := speaker.Suspend(); err == nil {
		e.suspended = true
	}
}

// Close stops the speaker.
func (e *BeepEngine) Close() error {
	speaker.Clear()
	speaker.Close()
	return nil
}

// newVolume wraps s with a linear volume. Zero or less is silent, since
// log2(0) is -Inf.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
