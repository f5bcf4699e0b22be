package entity

import (
	"github.com/lixenwraith/hit-and-run/parameter"
	"github.com/lixenwraith/hit-and-run/vmath"
)

// Projectile is a shot in flight
// Friendly shots despawn at the field edge, hostile shots bounce until they hit the player
type Projectile struct {
	Pos      vmath.Vector2
	Vel      vmath.Vector2
	Rotation float64
	Alive    bool
	Friendly bool
}

// SpawnProjectile creates a live projectile at origin heading along angle
func SpawnProjectile(origin vmath.Vector2, angle float64, friendly bool) *Projectile {
	return &Projectile{
		Pos:      origin,
		Vel:      vmath.Polar(angle, parameter.ProjectileSpeed),
		Rotation: angle,
		Alive:    true,
		Friendly: friendly,
	}
}

// Tick advances the projectile by dt seconds under its boundary policy
func (p *Projectile) Tick(dt float64, bounds vmath.Bounds) {
	if p.Friendly {
		if !bounds.Contains(p.Pos) {
			p.Alive = false
			return
		}
	} else {
		// Bounce without clamping; only an outward heading flips, so a shot
		// left outside by a shrinking field walks back in
		if (p.Pos.X < 0 && p.Vel.X < 0) || (p.Pos.X > bounds.Width && p.Vel.X > 0) {
			p.Vel.X = -p.Vel.X
		}
		if (p.Pos.Y < 0 && p.Vel.Y < 0) || (p.Pos.Y > bounds.Height && p.Vel.Y > 0) {
			p.Vel.Y = -p.Vel.Y
		}
	}

	p.Pos = p.Pos.Add(p.Vel.Scale(parameter.ProjectileSpeed * dt))
	p.Rotation = p.Vel.Angle()
}

// MarkDead flags the projectile for removal
func (p *Projectile) MarkDead() {
	p.Alive = false
}

// PruneProjectiles removes dead projectiles in place, preserving order
func PruneProjectiles(ps []*Projectile) []*Projectile {
	kept := ps[:0]
	for _, p := range ps {
		if p.Alive {
			kept = append(kept, p)
		}
	}
	// Release references held past the new length
	for i := len(kept); i < len(ps); i++ {
		ps[i] = nil
	}
	return kept
}
