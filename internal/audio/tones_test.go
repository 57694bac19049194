package audio

import (
	"math"
	"testing"
)

// drain pulls n samples from a streamer and returns them flattened to mono.
func drain(s interface {
	Stream([][2]float64) (int, bool)
}, n int) []float64 {
	buf := make([][2]float64, n)
	got, ok := s.Stream(buf)
	if !ok || got != n {
		return nil
	}
	out := make([]float64, n)
	for i, frame := range buf {
		out[i] = frame[0]
	}
	return out
}

func TestBuzzStaysInUnityRange(t *testing.T) {
	g := newBuzz(sampleRate, 140)
	samples := drain(g, int(sampleRate)/2)
	if samples == nil {
		t.Fatal("streamer refused to stream")
	}
	peak := 0.0
	for _, s := range samples {
		if a := math.Abs(s); a > peak {
			peak = a
		}
	}
	if peak > 1 {
		t.Errorf("buzz peak %v exceeds unity gain", peak)
	}
	if peak == 0 {
		t.Error("buzz produced silence")
	}
}

func TestToneFadesInFromSilence(t *testing.T) {
	g := newBuzz(sampleRate, 140)
	samples := drain(g, 16)
	if math.Abs(samples[0]) > 1e-9 {
		t.Errorf("first sample %v, want silence at onset", samples[0])
	}
}

func TestChimeGoesQuietAfterLastNote(t *testing.T) {
	notes := []float64{523.25, 659.25}
	g := newChime(sampleRate, notes)
	total := int(noteSeconds*float64(sampleRate))*len(notes) + 256
	samples := drain(g, total)
	if samples == nil {
		t.Fatal("streamer refused to stream")
	}
	for _, s := range samples[total-256:] {
		if s != 0 {
			t.Fatalf("chime still audible after its notes: %v", s)
		}
	}
	loud := 0
	for _, s := range samples[:total-256] {
		if math.Abs(s) > 0.01 {
			loud++
		}
	}
	if loud == 0 {
		t.Error("chime produced no audible signal")
	}
}

func TestUninitializedManagerIsSilentNoOp(t *testing.T) {
	m := New()
	// Never initialized: all feedback must be safe no-ops.
	m.PlayNoTarget()
	m.Match(0)
	m.Mismatch(0)
	m.Complete()
	m.SetMuted(true)
	if m.Enabled() {
		t.Error("manager reports enabled without Init")
	}
}
