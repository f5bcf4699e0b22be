package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams s to completion and returns the sample count and peak amplitude
func drain(s beep.Streamer) (int, float64) {
	buf := make([][2]float64, 512)
	total := 0
	peak := 0.0
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			for _, v := range buf[i] {
				if v > peak {
					peak = v
				}
				if -v > peak {
					peak = -v
				}
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
}

// TestOscillatorRange verifies every wave stays within [-1, 1] and ends at its duration
func TestOscillatorRange(t *testing.T) {
	rate := beep.SampleRate(44100)
	waves := []struct {
		name string
		wave WaveType
	}{
		{"sine", WaveSine},
		{"square", WaveSquare},
		{"saw", WaveSaw},
		{"noise", WaveNoise},
	}

	for _, w := range waves {
		t.Run(w.name, func(t *testing.T) {
			osc := NewOscillator(440, 50*time.Millisecond, w.wave, rate)
			n, peak := drain(osc)
			if n != rate.N(50*time.Millisecond) {
				t.Errorf("Streamed %d samples, want %d", n, rate.N(50*time.Millisecond))
			}
			if peak > 1.0 {
				t.Errorf("Peak %f out of range", peak)
			}
			if osc.Err() != nil {
				t.Errorf("Expected no error, got %v", osc.Err())
			}
		})
	}
}

// TestOscillatorSquareValues verifies square wave samples are exactly ±1
func TestOscillatorSquareValues(t *testing.T) {
	osc := NewOscillator(220, 10*time.Millisecond, WaveSquare, beep.SampleRate(44100))
	samples := make([][2]float64, 100)
	n, _ := osc.Stream(samples)
	for i := 0; i < n; i++ {
		if v := samples[i][0]; v != 1.0 && v != -1.0 {
			t.Fatalf("Sample %d = %f, want ±1", i, v)
		}
	}
}

// TestSweepStopsAtZero verifies a falling sweep never produces a negative frequency
func TestSweepStopsAtZero(t *testing.T) {
	osc := NewSweep(100, -100000, 20*time.Millisecond, WaveSine, beep.SampleRate(44100))
	n, peak := drain(osc)
	if n == 0 || peak > 1.0 {
		t.Errorf("Unexpected sweep output n=%d peak=%f", n, peak)
	}
}

// TestEnvelopeShape verifies the envelope starts silent and is truncated to its duration
func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(0, time.Second, WaveSquare, rate) // constant +1
	env := NewEnvelope(osc, 100*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, rate)

	samples := make([][2]float64, rate.N(100*time.Millisecond)+10)
	n, _ := env.Stream(samples)
	if n != rate.N(100*time.Millisecond) {
		t.Fatalf("Envelope streamed %d samples, want %d", n, rate.N(100*time.Millisecond))
	}
	if samples[0][0] != 0 {
		t.Errorf("First sample = %f, want 0", samples[0][0])
	}
	if mid := samples[n/2][0]; mid != 1.0 {
		t.Errorf("Sustain sample = %f, want 1", mid)
	}
	if last := samples[n-1][0]; last <= 0 || last > 0.01 {
		t.Errorf("Last sample = %f, want close to 0", last)
	}
}

// TestSoundEffectsFinite verifies every effect renders and terminates
func TestSoundEffectsFinite(t *testing.T) {
	cfg := DefaultAudioConfig()
	for st := SoundType(0); st < soundTypeCount; st++ {
		s := GetSoundEffect(st, cfg)
		if s == nil {
			t.Errorf("No effect for %s", st)
			continue
		}
		n, _ := drain(s)
		if n == 0 || n > cfg.SampleRate {
			t.Errorf("%s: streamed %d samples", st, n)
		}
	}
	if GetSoundEffect(soundTypeCount, cfg) != nil {
		t.Error("Expected nil for unknown sound type")
	}
}

// TestZeroVolumeIsSilent verifies a muted effect produces only zeros
func TestZeroVolumeIsSilent(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.MasterVolume = 0
	_, peak := drain(CreateKillSound(cfg))
	if peak != 0 {
		t.Errorf("Peak = %f, want 0", peak)
	}
}
