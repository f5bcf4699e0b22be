package parameter

// Projectile
const (
	// ProjectileSpeed is applied twice: once to the spawn velocity and again per tick
	ProjectileSpeed = 25.0

	// ProjectileSideLength is the drawn square size
	ProjectileSideLength = 10.0
)
