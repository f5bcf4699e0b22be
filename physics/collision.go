package physics

import (
	"github.com/lixenwraith/hit-and-run/entity"
)

// Impact is one projectile striking one actor, produced by Resolve and consumed by Apply
type Impact struct {
	Target     *entity.Actor
	Projectile *entity.Projectile
}

// Hits reports whether p is inside target's hitbox
// Both must be alive; the hitbox is the body radius shrunk by the variant's epsilon
func Hits(target *entity.Actor, p *entity.Projectile) bool {
	if !target.Alive() || !p.Alive {
		return false
	}
	return target.Pos.Distance(p.Pos) < target.Body.HitRadius()
}

// Resolve computes impacts without mutating state
// Each projectile strikes at most the first target in order that it hits
// A target stops collecting impacts once pending damage would bring it to zero
func Resolve(targets []*entity.Actor, projectiles []*entity.Projectile) []Impact {
	if len(targets) == 0 || len(projectiles) == 0 {
		return nil
	}

	var impacts []Impact
	pending := make(map[*entity.Actor]uint32, len(targets))

	for _, p := range projectiles {
		for _, t := range targets {
			if pending[t] >= t.Health {
				continue
			}
			if !Hits(t, p) {
				continue
			}
			impacts = append(impacts, Impact{Target: t, Projectile: p})
			pending[t]++
			break
		}
	}
	return impacts
}

// Apply removes one health point per impact and kills the projectile
// Returns the number of targets that died from these impacts
func Apply(impacts []Impact) int {
	killed := 0
	for _, im := range impacts {
		if !im.Projectile.Alive {
			continue
		}
		im.Projectile.MarkDead()
		if im.Target.Damage() && !im.Target.Alive() {
			killed++
		}
	}
	return killed
}
