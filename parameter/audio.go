package parameter

import "time"

// Audio Output
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 44100

	// AudioBufferDuration trades latency against underruns
	AudioBufferDuration = 100 * time.Millisecond

	// AudioMasterVolumeDefault scales every effect, 0.0-1.0
	AudioMasterVolumeDefault = 0.5

	// MinSoundGap throttles repeats of the same effect
	MinSoundGap = 40 * time.Millisecond
)

// Shot Sound
const (
	ShotSoundDuration = 70 * time.Millisecond
	ShotSoundAttack   = 2 * time.Millisecond
	ShotSoundRelease  = 50 * time.Millisecond
)

// Enemy Shot Sound
const (
	EnemyShotSoundDuration = 90 * time.Millisecond
	EnemyShotSoundAttack   = 5 * time.Millisecond
	EnemyShotSoundRelease  = 60 * time.Millisecond
)

// Hit Sound
const (
	HitSoundDuration = 120 * time.Millisecond
	HitSoundAttack   = 2 * time.Millisecond
	HitSoundRelease  = 80 * time.Millisecond
)

// Kill Sound
const (
	KillSoundDuration = 250 * time.Millisecond
	KillSoundAttack   = 5 * time.Millisecond
	KillSoundRelease  = 200 * time.Millisecond
)

// Level Up Sound
const (
	LevelSoundNoteDuration = 110 * time.Millisecond
	LevelSoundAttack       = 5 * time.Millisecond
	LevelSoundRelease      = 60 * time.Millisecond
)

// Game Over Sound
const (
	GameOverSoundNoteDuration = 260 * time.Millisecond
	GameOverSoundAttack       = 10 * time.Millisecond
	GameOverSoundRelease      = 180 * time.Millisecond
)
