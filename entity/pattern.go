package entity

import (
	"math"

	"github.com/lixenwraith/hit-and-run/vmath"
)

// Pattern shapes the volley emitted when a trigger fires
type Pattern interface {
	Emit(a *Actor, rng vmath.Rand) []*Projectile
}

// Aimed fires one projectile from the gun muzzle along the actor's rotation
// Jitter adds a uniform angle error in [-Jitter, Jitter)
type Aimed struct {
	Jitter float64
}

func (p Aimed) Emit(a *Actor, rng vmath.Rand) []*Projectile {
	angle := a.Rotation
	if p.Jitter > 0 && rng != nil {
		angle += vmath.RandRange(rng, -p.Jitter, p.Jitter)
	}
	muzzle := a.Pos.Add(vmath.Polar(a.Rotation, a.Body.Diameter/2))
	return []*Projectile{SpawnProjectile(muzzle, angle, a.Friendly())}
}

// Ring fires Count projectiles from the actor center spread evenly around its rotation
type Ring struct {
	Count int
}

func (p Ring) Emit(a *Actor, _ vmath.Rand) []*Projectile {
	if p.Count <= 0 {
		return nil
	}
	out := make([]*Projectile, 0, p.Count)
	step := 2 * math.Pi / float64(p.Count)
	for i := 0; i < p.Count; i++ {
		out = append(out, SpawnProjectile(a.Pos, a.Rotation+float64(i)*step, a.Friendly()))
	}
	return out
}
