package audio

import (
	"errors"
	"strings"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundShot      SoundType = iota // Player fires
	SoundEnemyShot                  // Enemy or boss volley
	SoundHit                        // Player takes a hit
	SoundEnemyHit                   // Player shot lands
	SoundKill                       // Enemy destroyed
	SoundLevelUp                    // Level advanced
	SoundGameOver                   // Player died
	soundTypeCount
)

var soundNames = [soundTypeCount]string{
	SoundShot:      "shot",
	SoundEnemyShot: "enemy_shot",
	SoundHit:       "hit",
	SoundEnemyHit:  "enemy_hit",
	SoundKill:      "kill",
	SoundLevelUp:   "level_up",
	SoundGameOver:  "game_over",
}

func (s SoundType) String() string {
	if s < 0 || s >= soundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}

// ParseSoundType maps a config key such as "level_up" to its SoundType
func ParseSoundType(name string) (SoundType, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range soundNames {
		if n == name {
			return SoundType(i), true
		}
	}
	return 0, false
}

// Sentinel errors
var (
	ErrUnknownSound  = errors.New("unknown sound effect")
	ErrInvalidVolume = errors.New("volume out of range")
)
