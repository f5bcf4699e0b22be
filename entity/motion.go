package entity

// Motion decides an actor's heading and whether it advances on a tick
type Motion interface {
	// Steer updates rotation and reports whether the actor moves this tick
	Steer(a *Actor, dt float64) bool
}

// Seek re-aims at the desired point and moves until inside the dead zone
type Seek struct {
	DeadZone float64
}

func (m Seek) Steer(a *Actor, _ float64) bool {
	a.Aim(a.Desired)
	return a.Pos.Distance(a.Desired) > m.DeadZone
}

// Pursue re-aims at the target and closes in only when the actor is forward-capable
// Non-forward actors act as turrets: they rotate and fire but hold position
type Pursue struct{}

func (Pursue) Steer(a *Actor, _ float64) bool {
	a.Aim(a.Desired)
	return a.Forward && a.Pos.Distance(a.Desired) > a.Body.Diameter/2
}

// Spin rotates at a fixed rate and never moves
type Spin struct {
	Rate float64
}

func (m Spin) Steer(a *Actor, dt float64) bool {
	a.Rotation += m.Rate * dt
	return false
}
