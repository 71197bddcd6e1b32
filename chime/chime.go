// Package chime plays a short rising arpeggio when the duel is won.
//
// Audio is optional: if the speaker cannot be initialised the Chime stays
// silent and callers carry on.
package chime

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// SampleRate is the playback rate of the speaker.
const SampleRate = beep.SampleRate(44100)

// NoteLength is the duration of each note of the arpeggio.
const NoteLength = 120 * time.Millisecond

// notes is a C major arpeggio, in Hz.
var notes = []float64{523.25, 659.25, 783.99, 1046.50}

// Chime plays the win arpeggio on the system speaker.
type Chime struct {
	ready bool
}

// New initialises the speaker. On error the returned Chime is silent but
// usable, so the caller may log the error and continue.
func New() (*Chime, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		return &Chime{}, fmt.Errorf("chime: speaker: %w", err)
	}
	return &Chime{ready: true}, nil
}

// Play starts the arpeggio and returns immediately.
func (c *Chime) Play() {
	if c == nil || !c.ready {
		return
	}
	s, err := Arpeggio(SampleRate)
	if err != nil {
		return
	}
	speaker.Play(s)
}

// Close releases the speaker.
func (c *Chime) Close() {
	if c == nil || !c.ready {
		return
	}
	speaker.Close()
	c.ready = false
}

// Arpeggio returns the notes as one finite streamer at sr, attenuated so
// the tones do not clip.
func Arpeggio(sr beep.SampleRate) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, f := range notes {
		sine, err := generators.SineTone(sr, f)
		if err != nil {
			return nil, fmt.Errorf("chime: %.2f Hz: %w", f, err)
		}
		parts = append(parts, beep.Take(sr.N(NoteLength), sine))
	}
	return &effects.Gain{Streamer: beep.Seq(parts...), Gain: -0.5}, nil
}
