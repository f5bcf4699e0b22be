package render

import (
	"math"

	"github.com/lixenwraith/hit-and-run/engine"
	"github.com/lixenwraith/hit-and-run/entity"
)

// actorKind is the visual class of an actor
type actorKind uint8

const (
	kindPlayer actorKind = iota
	kindEnemy
	kindRammer
	kindBoss
)

func classify(a engine.ActorView) actorKind {
	switch {
	case a.Kind == entity.KindPlayer:
		return kindPlayer
	case a.Kind == entity.KindBoss:
		return kindBoss
	case a.Forward:
		return kindRammer
	default:
		return kindEnemy
	}
}

const (
	glyphPlayer   = '█'
	glyphEnemy    = '▓'
	glyphBoss     = '▒'
	glyphFriendly = '•'
	glyphHostile  = '*'
	glyphBurst    = '■'
	glyphBurstOff = '□'
)

func bodyGlyph(k actorKind) rune {
	switch k {
	case kindPlayer:
		return glyphPlayer
	case kindBoss:
		return glyphBoss
	default:
		return glyphEnemy
	}
}

// gunGlyph picks a line character closest to the barrel direction
// Screen y grows downward, so a positive angle points down-right
func gunGlyph(rotation float64) rune {
	a := math.Mod(rotation, math.Pi)
	if a < 0 {
		a += math.Pi
	}
	octant := int(math.Round(a/(math.Pi/4))) % 4
	switch octant {
	case 0:
		return '─'
	case 1:
		return '╲'
	case 2:
		return '│'
	default:
		return '╱'
	}
}
