package entity

import (
	"math"

	"github.com/lixenwraith/hit-and-run/parameter"
	"github.com/lixenwraith/hit-and-run/vmath"
)

var (
	PlayerBody = Body{
		Diameter:    parameter.PlayerDiameter,
		HitEpsilon:  parameter.PlayerHitEpsilon,
		MoveBack:    parameter.PlayerMoveBack,
		Speed:       parameter.PlayerSpeed,
		StartHealth: parameter.PlayerStartHealth,
	}

	EnemyBody = Body{
		Diameter:    parameter.EnemyDiameter,
		HitEpsilon:  parameter.EnemyHitEpsilon,
		MoveBack:    parameter.EnemyMoveBack,
		Speed:       parameter.EnemySpeed,
		StartHealth: parameter.EnemyStartHealth,
	}

	BossBody = Body{
		Diameter:    parameter.BossDiameter,
		HitEpsilon:  parameter.BossHitEpsilon,
		StartHealth: parameter.BossStartHealth,
	}
)

// NewPlayer creates the player at pos with a full burst, resting until aimed
func NewPlayer(pos vmath.Vector2) *Actor {
	return &Actor{
		Kind:    KindPlayer,
		Body:    PlayerBody,
		Pos:     pos,
		Desired: pos,
		Health:  PlayerBody.StartHealth,
		motion:  Seek{DeadZone: parameter.PlayerDeadZone},
		trigger: NewBurstTrigger(parameter.PlayerBurstSize, parameter.PlayerShotCooldown, parameter.PlayerBurstCooldown),
		pattern: Aimed{},
	}
}

// NewEnemy creates an enemy; forward enemies pursue the player, others are turrets
func NewEnemy(pos vmath.Vector2, forward bool) *Actor {
	return &Actor{
		Kind:    KindEnemy,
		Body:    EnemyBody,
		Pos:     pos,
		Health:  EnemyBody.StartHealth,
		Forward: forward,
		motion:  Pursue{},
		trigger: NewSimpleTrigger(parameter.EnemyCooldown, parameter.EnemyCooldown),
		pattern: Aimed{Jitter: parameter.EnemyAimJitter},
	}
}

// NewBoss creates a stationary spinning boss with random initial rotation and cooldown
func NewBoss(pos vmath.Vector2, rng vmath.Rand) *Actor {
	return &Actor{
		Kind:     KindBoss,
		Body:     BossBody,
		Pos:      pos,
		Desired:  pos,
		Rotation: vmath.RandRange(rng, 0, 2*math.Pi),
		Health:   BossBody.StartHealth,
		motion:   Spin{Rate: parameter.BossSpin},
		trigger:  NewSimpleTrigger(parameter.BossCooldown, vmath.RandRange(rng, 0, parameter.BossCooldown)),
		pattern:  Ring{Count: parameter.BossRingSize},
	}
}
