package parameter

import "time"

// Field
const (
	// FieldWidthDefault is the initial field width when the host supplies none
	FieldWidthDefault = 600.0

	// FieldHeightDefault is the initial field height when the host supplies none
	FieldHeightDefault = 600.0
)

// Simulation
const (
	// TickRateDefault is simulation steps per second
	TickRateDefault = 60

	// MaxCatchUpSteps caps the steps a clock may issue for one elapsed interval
	MaxCatchUpSteps = 5

	// StartLevel is the level of a new or reset session
	StartLevel uint32 = 1
)

// TickInterval returns the step duration for a rate in steps per second
func TickInterval(rate int) time.Duration {
	if rate <= 0 {
		rate = TickRateDefault
	}
	return time.Second / time.Duration(rate)
}

// Display
const (
	// CellWidthDefault is field units per terminal column
	CellWidthDefault = 10.0

	// CellHeightDefault is field units per terminal row; cells are about twice as tall as wide
	CellHeightDefault = 20.0

	// HUDRows is the number of terminal rows reserved for the status line
	HUDRows = 1
)

// Logging
const (
	// LogDirDefault is where debug logs are written
	LogDirDefault = "logs"

	// LogFileName is the debug log file inside the log directory
	LogFileName = "hit-and-run.log"

	// LogMaxSize rotates an existing log to a timestamped name beyond this many bytes
	LogMaxSize = 10 << 20
)
