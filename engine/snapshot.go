package engine

import (
	"github.com/lixenwraith/hit-and-run/entity"
	"github.com/lixenwraith/hit-and-run/vmath"
)

// ActorView is a read-only copy of an actor for presentation
type ActorView struct {
	Kind      entity.Kind
	Pos       vmath.Vector2
	Rotation  float64
	Diameter  float64
	Health    uint32
	MaxHealth uint32
	Alive     bool
	Forward   bool
	Shooting  bool
	Trigger   entity.TriggerStatus
}

// ProjectileView is a read-only copy of a projectile
type ProjectileView struct {
	Pos      vmath.Vector2
	Rotation float64
	Friendly bool
	Alive    bool
}

// Snapshot is everything a renderer needs for one frame
type Snapshot struct {
	Player         ActorView
	Enemies        []ActorView
	Projectiles    []ProjectileView
	Score          uint32
	Level          uint32
	KillsThisLevel uint32
	State          State
	GameOver       bool
	Field          vmath.Bounds
	RunID          string
	Tick           uint64
}

func viewActor(a *entity.Actor) ActorView {
	return ActorView{
		Kind:      a.Kind,
		Pos:       a.Pos,
		Rotation:  a.Rotation,
		Diameter:  a.Body.Diameter,
		Health:    a.Health,
		MaxHealth: a.Body.StartHealth,
		Alive:     a.Alive(),
		Forward:   a.Forward,
		Shooting:  a.Shooting,
		Trigger:   a.TriggerStatus(),
	}
}

func viewProjectiles(dst []ProjectileView, ps []*entity.Projectile) []ProjectileView {
	for _, p := range ps {
		dst = append(dst, ProjectileView{Pos: p.Pos, Rotation: p.Rotation, Friendly: p.Friendly, Alive: p.Alive})
	}
	return dst
}
