// Package audio plays short generated feedback tones: a buzz for taps that
// hit nothing or a wrong quiz answer, a chime for a correct match and an
// arpeggio for quiz completion. When no audio backend is available the
// manager stays disabled and every Play call degrades to a silent no-op.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/Mo-Salah9/webar-atom/internal/atom"
)

const sampleRate = beep.SampleRate(44100)

// Manager owns the speaker and a mixer the feedback tones are queued on.
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// New returns an uninitialized manager; call Init before playing.
func New() *Manager {
	return &Manager{mixer: &beep.Mixer{}}
}

// Init opens the audio backend. Failure is not an error to the caller: the
// manager simply stays disabled and the viewer falls back to visual-only
// feedback.
func (m *Manager) Init() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.initialized {
		return
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50)); err != nil {
		return
	}
	speaker.Play(m.mixer)
	m.initialized = true
}

// SetMuted silences playback without tearing the backend down.
func (m *Manager) SetMuted(muted bool) {
	m.mu.Lock()
	m.muted = muted
	m.mu.Unlock()
}

// Enabled reports whether the backend came up.
func (m *Manager) Enabled() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.initialized
}

func (m *Manager) play(d time.Duration, s beep.Streamer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.initialized || m.muted {
		return
	}
	speaker.Lock()
	m.mixer.Add(beep.Take(sampleRate.N(d), s))
	speaker.Unlock()
}

// PlayNoTarget is the "tap hit nothing" feedback: a short low buzz.
func (m *Manager) PlayNoTarget() {
	m.play(120*time.Millisecond, newBuzz(sampleRate, 140))
}

// Match plays a short two-note chime for a correct quiz placement.
func (m *Manager) Match(atom.Kind) {
	m.play(220*time.Millisecond, newChime(sampleRate, []float64{523.25, 659.25}))
}

// Mismatch plays the wrong-answer buzz.
func (m *Manager) Mismatch(atom.Kind) {
	m.play(250*time.Millisecond, newBuzz(sampleRate, 110))
}

// Complete plays a rising three-note arpeggio when the quiz is won.
func (m *Manager) Complete() {
	m.play(600*time.Millisecond, newChime(sampleRate, []float64{523.25, 659.25, 783.99}))
}
