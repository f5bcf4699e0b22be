package parameter

// Player Body
const (
	// PlayerDiameter is the body diameter in field units
	PlayerDiameter = 50.0

	// PlayerGunDiameter is the gun glyph size drawn along the player's rotation
	PlayerGunDiameter = 10.0

	// PlayerMoveBack is the rebound applied per axis when the player leaves the field
	PlayerMoveBack = 15.0

	// PlayerSpeed is the movement speed in field units per second
	PlayerSpeed = 250.0

	// PlayerHitEpsilon is how far inside the body a bullet must be to count as a hit
	PlayerHitEpsilon = 0.25

	// PlayerDeadZone is the distance to the aim point below which the player stops moving
	PlayerDeadZone = 3.0

	// PlayerStartHealth is the health on spawn and after reset
	PlayerStartHealth uint32 = 30
)

// Player Burst Weapon
const (
	// PlayerShotCooldown is seconds between shots inside a burst
	PlayerShotCooldown = 0.25

	// PlayerBurstCooldown is the recovery in seconds after a burst is spent
	PlayerBurstCooldown = 1.0

	// PlayerBurstSize is the number of shots in one burst
	PlayerBurstSize uint32 = 6
)
