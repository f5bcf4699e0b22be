package event

import "strings"

var (
	typeToName = map[EventType]string{
		EventShot:      "Shot",
		EventEnemyShot: "EnemyShot",
		EventPlayerHit: "PlayerHit",
		EventEnemyHit:  "EnemyHit",
		EventKill:      "Kill",
		EventLevelUp:   "LevelUp",
		EventGameOver:  "GameOver",
		EventReset:     "Reset",
	}
	nameToType = make(map[string]EventType, len(typeToName))
)

func init() {
	for t, name := range typeToName {
		nameToType[strings.ToLower(name)] = t
	}
}

// GetEventName returns the string name for an EventType
func GetEventName(t EventType) string {
	if name, ok := typeToName[t]; ok {
		return name
	}
	return "Unknown"
}

// GetEventType returns the EventType for a case-insensitive name
func GetEventType(name string) (EventType, bool) {
	t, ok := nameToType[strings.ToLower(name)]
	return t, ok
}

func (t EventType) String() string {
	return GetEventName(t)
}
