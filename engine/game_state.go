package engine

// State is the session's top-level phase
type State uint8

const (
	// StateRunning advances the simulation on every tick
	StateRunning State = iota
	// StateGameOver freezes the session until Reset
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}
