package audio

import (
	"fmt"

	"github.com/lixenwraith/hit-and-run/parameter"
)

// AudioConfig controls output and per-effect loudness
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0-1.0
	SampleRate    int
	EffectVolumes map[SoundType]float64
}

// DefaultAudioConfig returns audio enabled at half volume
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: parameter.AudioMasterVolumeDefault,
		SampleRate:   parameter.AudioSampleRate,
		EffectVolumes: map[SoundType]float64{
			SoundShot:      0.4,
			SoundEnemyShot: 0.3,
			SoundHit:       0.8,
			SoundEnemyHit:  0.5,
			SoundKill:      0.9,
			SoundLevelUp:   1.0,
			SoundGameOver:  1.0,
		},
	}
}

// Volume returns the effective linear volume of an effect
// Effects missing from EffectVolumes play at full effect volume
func (c *AudioConfig) Volume(t SoundType) float64 {
	v, ok := c.EffectVolumes[t]
	if !ok {
		v = 1
	}
	return v * c.MasterVolume
}

// SetEffectVolumes overlays named volumes such as {"shot": 0.2}
func (c *AudioConfig) SetEffectVolumes(named map[string]float64) error {
	for name, vol := range named {
		t, ok := ParseSoundType(name)
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownSound, name)
		}
		if vol < 0 || vol > 1 {
			return fmt.Errorf("%w: %s=%v", ErrInvalidVolume, name, vol)
		}
		if c.EffectVolumes == nil {
			c.EffectVolumes = make(map[SoundType]float64)
		}
		c.EffectVolumes[t] = vol
	}
	return nil
}
