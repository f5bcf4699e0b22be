package event

import (
	"github.com/lixenwraith/hit-and-run/entity"
	"github.com/lixenwraith/hit-and-run/vmath"
)

// EventType represents the type of session event
type EventType int

const (
	// EventShot fires when the player emits a projectile
	// Trigger: player trigger | Pos: muzzle
	EventShot EventType = iota

	// EventEnemyShot fires once per enemy or boss volley
	// Trigger: enemy trigger | Pos: shooter center, Kind: shooter, Value: projectile count
	EventEnemyShot

	// EventPlayerHit fires per hostile impact on the player
	// Trigger: collision | Pos: player center, Value: health left
	EventPlayerHit

	// EventEnemyHit fires per friendly impact on an enemy or boss
	// Trigger: collision | Pos: target center, Kind: target, Value: health left
	EventEnemyHit

	// EventKill fires per enemy or boss removed
	// Trigger: prune | Pos: last position, Kind: victim, Value: score after kill
	EventKill

	// EventLevelUp fires when the level advances
	// Trigger: level rule | Value: new level
	EventLevelUp

	// EventGameOver fires on the tick the player dies
	// Trigger: player-alive check | Value: final score
	EventGameOver

	// EventReset fires when a new run starts
	// Trigger: Reset command | Value: starting level
	EventReset
)

// GameEvent is one notification raised by the session during a tick or command
type GameEvent struct {
	Type  EventType
	Tick  uint64
	Pos   vmath.Vector2
	Kind  entity.Kind
	Value uint32
}
