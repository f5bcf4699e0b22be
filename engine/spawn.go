package engine

import (
	"github.com/lixenwraith/hit-and-run/entity"
	"github.com/lixenwraith/hit-and-run/parameter"
	"github.com/lixenwraith/hit-and-run/vmath"
)

// spawnPosition draws a uniform point inside the field
func (s *Session) spawnPosition() vmath.Vector2 {
	return vmath.NewVector2(
		s.rng.Float64()*s.bounds.Width,
		s.rng.Float64()*s.bounds.Height,
	)
}

// spawnEnemy appends an enemy at a random position; 1 in EnemyForwardChance may pursue
func (s *Session) spawnEnemy() *entity.Actor {
	pos := s.spawnPosition()
	forward := s.rng.Intn(parameter.EnemyForwardChance) == 0
	e := entity.NewEnemy(pos, forward)
	s.enemies = append(s.enemies, e)
	s.log.Debug("enemy spawned", "x", pos.X, "y", pos.Y, "forward", forward)
	return e
}

// spawnBoss appends a boss at a random position
func (s *Session) spawnBoss() *entity.Actor {
	pos := s.spawnPosition()
	b := entity.NewBoss(pos, s.rng)
	s.enemies = append(s.enemies, b)
	s.log.Debug("boss spawned", "x", pos.X, "y", pos.Y, "level", s.level)
	return b
}
