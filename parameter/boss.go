package parameter

// Boss Body
const (
	// BossDiameter is the body diameter in field units
	BossDiameter = 80.0

	// BossHitEpsilon is the hitbox tolerance for bosses
	BossHitEpsilon = 0.5

	// BossStartHealth is the health of a freshly spawned boss
	BossStartHealth uint32 = 20
)

// Boss Weapon
const (
	// BossCooldown is seconds between ring volleys; initial cooldown is random in [0, BossCooldown)
	BossCooldown = 2.0

	// BossRingSize is the number of projectiles in one volley, spread evenly over a full turn
	BossRingSize = 5

	// BossSpin is the idle rotation rate in radians per second
	BossSpin = 1.0
)

// Boss Spawning
const (
	// BossEveryDefault makes every Nth level open with a boss, 0 disables bosses
	BossEveryDefault = 5
)
