package entity

// TriggerState names the phase of a weapon's cooldown cycle
type TriggerState uint8

const (
	// TriggerReady may fire on this tick
	TriggerReady TriggerState = iota
	// TriggerShotCooldown is waiting between individual shots
	TriggerShotCooldown
	// TriggerBurstCooldown is the recovery after a spent burst, firing is blocked
	TriggerBurstCooldown
)

func (s TriggerState) String() string {
	switch s {
	case TriggerReady:
		return "ready"
	case TriggerShotCooldown:
		return "shot-cooldown"
	case TriggerBurstCooldown:
		return "burst-cooldown"
	default:
		return "unknown"
	}
}

// TriggerStatus is a read-only view of a trigger for bar rendering
type TriggerStatus struct {
	State          TriggerState
	ShotCooldown   float64
	BurstCooldown  float64
	ShotsRemaining uint32
	BurstSize      uint32
}

// Trigger gates firing by elapsed time
type Trigger interface {
	// Update advances cooldowns by dt and reports whether a volley fires this tick
	// want is the shooter's intent; automatic triggers ignore it
	Update(dt float64, want bool) bool
	// Reset restores the initial cooldown state
	Reset()
	Status() TriggerStatus
}

// SimpleTrigger fires whenever its cooldown has gone negative, then rearms
type SimpleTrigger struct {
	Period   float64
	Cooldown float64
	initial  float64
}

// NewSimpleTrigger creates an automatic trigger starting at the given cooldown
func NewSimpleTrigger(period, initial float64) *SimpleTrigger {
	return &SimpleTrigger{Period: period, Cooldown: initial, initial: initial}
}

func (t *SimpleTrigger) Update(dt float64, _ bool) bool {
	if t.Cooldown < 0 {
		t.Cooldown = t.Period
		return true
	}
	t.Cooldown -= dt
	return false
}

func (t *SimpleTrigger) Reset() {
	t.Cooldown = t.initial
}

func (t *SimpleTrigger) Status() TriggerStatus {
	state := TriggerShotCooldown
	if t.Cooldown < 0 {
		state = TriggerReady
	}
	return TriggerStatus{State: state, ShotCooldown: t.Cooldown}
}

// BurstTrigger allows Size quick shots ShotPeriod apart, then blocks for BurstPeriod
type BurstTrigger struct {
	Size        uint32
	ShotPeriod  float64
	BurstPeriod float64

	state         TriggerState
	shots         uint32
	shotCooldown  float64
	burstCooldown float64
}

// NewBurstTrigger creates a ready trigger with a full burst
func NewBurstTrigger(size uint32, shotPeriod, burstPeriod float64) *BurstTrigger {
	t := &BurstTrigger{Size: size, ShotPeriod: shotPeriod, BurstPeriod: burstPeriod}
	t.Reset()
	return t
}

// Update applies the burst priority rule:
// empty burst -> recovery, recovery pending -> blocked, otherwise shot cooldown and intent decide
func (t *BurstTrigger) Update(dt float64, want bool) bool {
	if t.shots == 0 {
		t.shotCooldown = 0
		t.burstCooldown = t.BurstPeriod
		t.shots = t.Size
		t.state = TriggerBurstCooldown
		return false
	}

	if t.burstCooldown > 0 {
		t.burstCooldown -= dt
		if t.burstCooldown <= 0 {
			t.burstCooldown = 0
			t.state = TriggerReady
		}
		return false
	}

	t.shotCooldown -= dt
	if t.shotCooldown <= 0 {
		t.shotCooldown = 0
		t.state = TriggerReady
	}

	if t.state == TriggerReady && want {
		t.shotCooldown = t.ShotPeriod
		t.shots--
		t.state = TriggerShotCooldown
		return true
	}
	return false
}

func (t *BurstTrigger) Reset() {
	t.state = TriggerReady
	t.shots = t.Size
	t.shotCooldown = 0
	t.burstCooldown = 0
}

func (t *BurstTrigger) Status() TriggerStatus {
	return TriggerStatus{
		State:          t.state,
		ShotCooldown:   t.shotCooldown,
		BurstCooldown:  t.burstCooldown,
		ShotsRemaining: t.shots,
		BurstSize:      t.Size,
	}
}
