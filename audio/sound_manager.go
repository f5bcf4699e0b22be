package audio

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/hit-and-run/parameter"
)

// SoundManager plays one-shot effects through a shared mixer on the system speaker
// Every method is safe to call before Initialize or after a failed init; they do nothing
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	ctrl        *beep.Ctrl
	initialized bool
	muted       bool
	lastPlayed  [soundTypeCount]time.Time
	now         func() time.Time
	log         *slog.Logger
}

// NewSoundManager creates a sound manager; nil cfg uses DefaultAudioConfig
func NewSoundManager(cfg *AudioConfig, logger *slog.Logger) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	if logger == nil {
		logger = slog.Default()
	}
	mixer := &beep.Mixer{}
	return &SoundManager{
		cfg:   cfg,
		mixer: mixer,
		ctrl:  &beep.Ctrl{Streamer: mixer},
		now:   time.Now,
		log:   logger.With("component", "audio"),
	}
}

// Initialize opens the speaker; a disabled config leaves the manager silent
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.ctrl)
	sm.initialized = true
	sm.log.Info("audio initialized", "rate", sm.cfg.SampleRate, "volume", sm.cfg.MasterVolume)
	return nil
}

// Cleanup stops playback and releases the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Clear()
	sm.mixer.Clear()
	speaker.Close()
	sm.initialized = false
}

// Enabled reports whether sounds currently reach the speaker
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized && !sm.muted
}

// ToggleMute pauses or resumes all output and returns the new muted state
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = !sm.muted
	if sm.initialized {
		speaker.Lock()
		sm.ctrl.Paused = sm.muted
		speaker.Unlock()
	}
	return sm.muted
}

// Play queues a fresh instance of the effect
// Repeats of the same effect closer than MinSoundGap are dropped
func (sm *SoundManager) Play(t SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted || t < 0 || t >= soundTypeCount {
		return
	}

	now := sm.now()
	if now.Sub(sm.lastPlayed[t]) < parameter.MinSoundGap {
		return
	}
	sm.lastPlayed[t] = now

	s := GetSoundEffect(t, sm.cfg)
	if s == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

func (sm *SoundManager) PlayShot()      { sm.Play(SoundShot) }
func (sm *SoundManager) PlayEnemyShot() { sm.Play(SoundEnemyShot) }
func (sm *SoundManager) PlayHit()       { sm.Play(SoundHit) }
func (sm *SoundManager) PlayEnemyHit()  { sm.Play(SoundEnemyHit) }
func (sm *SoundManager) PlayKill()      { sm.Play(SoundKill) }
func (sm *SoundManager) PlayLevelUp()   { sm.Play(SoundLevelUp) }
func (sm *SoundManager) PlayGameOver()  { sm.Play(SoundGameOver) }

// Service lifecycle

func (sm *SoundManager) Name() string           { return "audio" }
func (sm *SoundManager) Dependencies() []string { return nil }

// Optional reports that the game runs silently without a sound device
func (sm *SoundManager) Optional() bool { return true }

// Start opens the speaker
func (sm *SoundManager) Start(context.Context) error {
	return sm.Initialize()
}

// Stop releases the speaker
func (sm *SoundManager) Stop() error {
	sm.Cleanup()
	return nil
}
