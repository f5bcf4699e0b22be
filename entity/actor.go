package entity

import (
	"github.com/lixenwraith/hit-and-run/vmath"
)

// Kind tags an actor variant
type Kind uint8

const (
	KindPlayer Kind = iota
	KindEnemy
	KindBoss
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindBoss:
		return "boss"
	default:
		return "unknown"
	}
}

// Body holds the fixed physical traits of a variant
type Body struct {
	Diameter    float64
	HitEpsilon  float64
	MoveBack    float64
	Speed       float64
	StartHealth uint32
}

// HitRadius is the distance under which a projectile counts as inside the body
func (b Body) HitRadius() float64 {
	return b.Diameter/2 - b.HitEpsilon
}

// Actor is the shared shape of the player, enemies and bosses
// Variant behavior lives in the Motion, Trigger and Pattern strategies
type Actor struct {
	Kind     Kind
	Body     Body
	Pos      vmath.Vector2
	Desired  vmath.Vector2
	Vel      vmath.Vector2
	Rotation float64
	Health   uint32

	// Shooting is the fire intent, only read by intent-driven triggers
	Shooting bool
	// Forward lets a pursuing actor close distance to its target
	Forward bool

	motion  Motion
	trigger Trigger
	pattern Pattern
}

// Aim stores target as the desired position and turns toward it
// A target equal to the current position keeps the previous rotation
func (a *Actor) Aim(target vmath.Vector2) {
	a.Desired = target
	if angle, ok := vmath.Heading(a.Pos, target); ok {
		a.Rotation = angle
	}
}

// SetTarget stores the point the actor steers toward on its next tick
func (a *Actor) SetTarget(target vmath.Vector2) {
	a.Desired = target
}

// Tick runs one simulation step: steer, move, then resolve the trigger
// Returns the projectiles fired this tick, nil when none
func (a *Actor) Tick(dt float64, bounds vmath.Bounds, rng vmath.Rand) []*Projectile {
	if a.motion != nil && a.motion.Steer(a, dt) {
		a.Vel = vmath.Polar(a.Rotation, a.Body.Speed*dt)
	} else {
		a.Vel.Reset()
	}

	a.move(bounds)

	if a.trigger == nil || a.pattern == nil {
		return nil
	}
	if !a.trigger.Update(dt, a.Shooting) {
		return nil
	}
	return a.pattern.Emit(a, rng)
}

// move applies the soft wall rebound, then the velocity
func (a *Actor) move(bounds vmath.Bounds) {
	if a.Pos.X < 0 {
		a.Pos.X += a.Body.MoveBack
	} else if a.Pos.X > bounds.Width {
		a.Pos.X -= a.Body.MoveBack
	}

	if a.Pos.Y < 0 {
		a.Pos.Y += a.Body.MoveBack
	} else if a.Pos.Y > bounds.Height {
		a.Pos.Y -= a.Body.MoveBack
	}

	a.Pos = a.Pos.Add(a.Vel)
}

// Alive reports whether health remains
func (a *Actor) Alive() bool {
	return a.Health != 0
}

// Damage removes one health point from a living actor
// Returns false without change when the actor is already dead
func (a *Actor) Damage() bool {
	if !a.Alive() {
		return false
	}
	a.Health--
	return true
}

// Heal adds n health points
func (a *Actor) Heal(n uint32) {
	a.Health += n
}

// Friendly reports whether this actor's shots belong to the player side
func (a *Actor) Friendly() bool {
	return a.Kind == KindPlayer
}

// TriggerStatus exposes cooldown state for presentation
func (a *Actor) TriggerStatus() TriggerStatus {
	if a.trigger == nil {
		return TriggerStatus{}
	}
	return a.trigger.Status()
}

// Reset recenters the actor and restores its starting state
// The desired point is set to the spawn point so the actor rests until aimed
func (a *Actor) Reset(bounds vmath.Bounds) {
	a.Pos = bounds.Center()
	a.Desired = a.Pos
	a.Vel.Reset()
	a.Rotation = 0
	a.Health = a.Body.StartHealth
	a.Shooting = false
	if a.trigger != nil {
		a.trigger.Reset()
	}
}

// PruneActors removes dead actors in place, preserving order, and returns the new slice and removal count
func PruneActors(as []*Actor) ([]*Actor, int) {
	kept := as[:0]
	for _, a := range as {
		if a.Alive() {
			kept = append(kept, a)
		}
	}
	removed := len(as) - len(kept)
	for i := len(kept); i < len(as); i++ {
		as[i] = nil
	}
	return kept, removed
}
