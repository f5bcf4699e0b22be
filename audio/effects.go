package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/hit-and-run/parameter"
	"github.com/lixenwraith/hit-and-run/vmath"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a raw wave, optionally sliding its frequency
type oscillator struct {
	freq     float64
	slide    float64 // Hz per second
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	noise    *vmath.FastRand
}

// NewOscillator creates a fixed-frequency oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, 0, duration, wave, rate)
}

// NewSweep creates an oscillator whose frequency changes linearly by slide Hz per second
func NewSweep(freq, slide float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		slide:    slide,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		noise:    vmath.NewEntropyRand(),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.noise.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		t := float64(o.position) / float64(o.rate)
		freq := math.Max(o.freq+o.slide*t, 0)
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope wraps s with an attack/sustain/release shape over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.releaseSamples > 0 && e.position >= releaseStart {
			vol = math.Min(vol, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly; beep volume is logarithmic so 0 maps to silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateShotSound is a short falling square chirp
func CreateShotSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	osc := NewSweep(1400, -9000, parameter.ShotSoundDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, parameter.ShotSoundDuration, parameter.ShotSoundAttack, parameter.ShotSoundRelease, rate)
	return newVolume(shaped, cfg.Volume(SoundShot))
}

// CreateEnemyShotSound is a lower saw blip
func CreateEnemyShotSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	osc := NewSweep(420, -1500, parameter.EnemyShotSoundDuration, WaveSaw, rate)
	shaped := NewEnvelope(osc, parameter.EnemyShotSoundDuration, parameter.EnemyShotSoundAttack, parameter.EnemyShotSoundRelease, rate)
	return newVolume(shaped, cfg.Volume(SoundEnemyShot))
}

// CreateHitSound is a noise burst over a low thump
func CreateHitSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	noise := NewEnvelope(NewOscillator(0, parameter.HitSoundDuration, WaveNoise, rate),
		parameter.HitSoundDuration, parameter.HitSoundAttack, parameter.HitSoundRelease, rate)
	thump := NewEnvelope(NewSweep(160, -600, parameter.HitSoundDuration, WaveSine, rate),
		parameter.HitSoundDuration, parameter.HitSoundAttack, parameter.HitSoundRelease, rate)
	mixed := beep.Mix(newVolume(noise, 0.5), newVolume(thump, 0.8))
	return newVolume(mixed, cfg.Volume(SoundHit))
}

// CreateEnemyHitSound is a dull tick
func CreateEnemyHitSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	osc := NewOscillator(300, parameter.HitSoundDuration/2, WaveSquare, rate)
	shaped := NewEnvelope(osc, parameter.HitSoundDuration/2, parameter.HitSoundAttack, parameter.HitSoundRelease/2, rate)
	return newVolume(shaped, cfg.Volume(SoundEnemyHit))
}

// CreateKillSound is a noise explosion with a falling tone
func CreateKillSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	noise := NewEnvelope(NewOscillator(0, parameter.KillSoundDuration, WaveNoise, rate),
		parameter.KillSoundDuration, parameter.KillSoundAttack, parameter.KillSoundRelease, rate)
	fall := NewEnvelope(NewSweep(600, -2000, parameter.KillSoundDuration, WaveSaw, rate),
		parameter.KillSoundDuration, parameter.KillSoundAttack, parameter.KillSoundRelease, rate)
	mixed := beep.Mix(newVolume(noise, 0.6), newVolume(fall, 0.4))
	return newVolume(mixed, cfg.Volume(SoundKill))
}

// CreateLevelUpSound is a rising three-note arpeggio (C6 E6 G6)
func CreateLevelUpSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	notes := []float64{1046.50, 1318.51, 1567.98}
	seq := make([]beep.Streamer, 0, len(notes))
	for _, f := range notes {
		osc := NewOscillator(f, parameter.LevelSoundNoteDuration, WaveSquare, rate)
		seq = append(seq, NewEnvelope(osc, parameter.LevelSoundNoteDuration, parameter.LevelSoundAttack, parameter.LevelSoundRelease, rate))
	}
	return newVolume(beep.Seq(seq...), cfg.Volume(SoundLevelUp))
}

// CreateGameOverSound is a falling three-note phrase (G4 E4 C4)
func CreateGameOverSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	notes := []float64{392.00, 329.63, 261.63}
	seq := make([]beep.Streamer, 0, len(notes))
	for _, f := range notes {
		osc := NewOscillator(f, parameter.GameOverSoundNoteDuration, WaveSaw, rate)
		seq = append(seq, NewEnvelope(osc, parameter.GameOverSoundNoteDuration, parameter.GameOverSoundAttack, parameter.GameOverSoundRelease, rate))
	}
	return newVolume(beep.Seq(seq...), cfg.Volume(SoundGameOver))
}

// GetSoundEffect returns a fresh streamer for the sound type, nil when unknown
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundShot:
		return CreateShotSound(cfg)
	case SoundEnemyShot:
		return CreateEnemyShotSound(cfg)
	case SoundHit:
		return CreateHitSound(cfg)
	case SoundEnemyHit:
		return CreateEnemyHitSound(cfg)
	case SoundKill:
		return CreateKillSound(cfg)
	case SoundLevelUp:
		return CreateLevelUpSound(cfg)
	case SoundGameOver:
		return CreateGameOverSound(cfg)
	default:
		return nil
	}
}
