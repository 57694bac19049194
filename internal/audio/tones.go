package audio

import (
	"math"

	"github.com/gopxl/beep"
)

// attackSeconds is the fade-in applied to every generated tone so it does
// not click at onset.
const attackSeconds = 0.015

// buzz is a harsh low tone: a fundamental with two fading harmonics.
type buzz struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

func newBuzz(sr beep.SampleRate, freq float64) *buzz {
	return &buzz{sr: sr, freq: freq}
}

func (g *buzz) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		s := 0.3 * math.Sin(2*math.Pi*g.freq*t)
		s += 0.15 * math.Sin(2*math.Pi*g.freq*2*t)
		s += 0.075 * math.Sin(2*math.Pi*g.freq*3*t)
		s *= envelope(t) * 0.6
		samples[i][0] = s
		samples[i][1] = s
		g.pos++
	}
	return len(samples), true
}

func (g *buzz) Err() error { return nil }

// chime steps through a sequence of sine notes, one per noteSeconds, each
// with its own decay.
type chime struct {
	sr    beep.SampleRate
	notes []float64
	pos   int
}

// noteSeconds is the duration of each chime note.
const noteSeconds = 0.2

func newChime(sr beep.SampleRate, notes []float64) *chime {
	return &chime{sr: sr, notes: notes}
}

func (g *chime) Stream(samples [][2]float64) (n int, ok bool) {
	perNote := int(noteSeconds * float64(g.sr))
	for i := range samples {
		note := g.pos / perNote
		if note >= len(g.notes) {
			samples[i][0] = 0
			samples[i][1] = 0
			g.pos++
			continue
		}
		local := float64(g.pos%perNote) / float64(g.sr)
		decay := 1 - local/noteSeconds
		s := 0.25 * decay * envelope(local) * math.Sin(2*math.Pi*g.notes[note]*local)
		samples[i][0] = s
		samples[i][1] = s
		g.pos++
	}
	return len(samples), true
}

func (g *chime) Err() error { return nil }

// envelope is the shared onset fade-in.
func envelope(t float64) float64 {
	return math.Min(t/attackSeconds, 1)
}
