package parameter

// Enemy Body
const (
	// EnemyDiameter is the body diameter in field units
	EnemyDiameter = 50.0

	// EnemyGunDiameter is the gun glyph size
	EnemyGunDiameter = 10.0

	// EnemyMoveBack is the rebound applied per axis when an enemy leaves the field
	EnemyMoveBack = 15.0

	// EnemySpeed is the movement speed of forward-capable enemies in field units per second
	EnemySpeed = 50.0

	// EnemyHitEpsilon is the hitbox tolerance for enemies
	EnemyHitEpsilon = 0.1

	// EnemyStartHealth is the health of a freshly spawned enemy
	EnemyStartHealth uint32 = 5
)

// Enemy Weapon
const (
	// EnemyCooldown is seconds between enemy shots
	EnemyCooldown = 1.5

	// EnemyAimJitter bounds the random angle error added to each shot, radians (±)
	EnemyAimJitter = 0.1
)

// Enemy Spawning
const (
	// EnemyForwardChance is 1-in-N odds that a spawned enemy may move toward the player
	EnemyForwardChance = 5

	// EnemyReplacementsPerKill is the number of enemies spawned per kill when the level does not advance
	EnemyReplacementsPerKill = 2
)
