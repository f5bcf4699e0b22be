package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System
	IntentQuit        // Esc, Ctrl+C, q
	IntentResize      // Terminal resize event
	IntentPause       // p
	IntentToggleDebug // F1
	IntentToggleMute  // m

	// Session
	IntentReset // r

	// Player control
	IntentAim         // Mouse move or press, carries field coordinates
	IntentShootOn     // Mouse button pressed
	IntentShootOff    // Mouse button released
	IntentShootToggle // Space
)

var intentNames = [...]string{
	IntentNone:        "none",
	IntentQuit:        "quit",
	IntentResize:      "resize",
	IntentPause:       "pause",
	IntentToggleDebug: "toggle_debug",
	IntentToggleMute:  "toggle_mute",
	IntentReset:       "reset",
	IntentAim:         "aim",
	IntentShootOn:     "shoot_on",
	IntentShootOff:    "shoot_off",
	IntentShootToggle: "shoot_toggle",
}

func (t IntentType) String() string {
	if int(t) < len(intentNames) {
		return intentNames[t]
	}
	return "unknown"
}

// Intent represents a parsed semantic action
// Pure data with no engine dependencies
type Intent struct {
	Type IntentType
	X, Y float64 // Field coordinates for IntentAim
	Cols int     // Terminal size for IntentResize
	Rows int
}
