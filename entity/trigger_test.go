package entity

import "testing"

// TestSimpleTriggerCycle verifies fire only after the cooldown goes negative, then rearm
func TestSimpleTriggerCycle(t *testing.T) {
	tr := NewSimpleTrigger(1.5, 1.5)

	// 1.5 -> 1.0 -> 0.5 -> 0.0 -> -0.5, fires on the fifth update
	for i := 1; i <= 4; i++ {
		if tr.Update(0.5, false) {
			t.Fatalf("Unexpected fire on update %d", i)
		}
	}
	if !tr.Update(0.5, false) {
		t.Fatal("Expected fire once cooldown is negative")
	}
	if tr.Cooldown != 1.5 {
		t.Errorf("Expected cooldown rearmed to 1.5, got %v", tr.Cooldown)
	}

	tr.Cooldown = -3
	tr.Reset()
	if tr.Cooldown != 1.5 {
		t.Errorf("Reset should restore initial cooldown, got %v", tr.Cooldown)
	}
}

// TestBurstTriggerLaw verifies N shots, a recovery tick, a blocked recovery window, then firing resumes
func TestBurstTriggerLaw(t *testing.T) {
	const dt = 0.125
	tr := NewBurstTrigger(3, 0.25, 1.0)

	var fired []int
	var recoveryEntered int
	for tick := 1; tick <= 16; tick++ {
		if tr.Update(dt, true) {
			fired = append(fired, tick)
		}
		st := tr.Status()
		if recoveryEntered == 0 && st.State == TriggerBurstCooldown {
			recoveryEntered = tick
			if st.BurstCooldown != 1.0 {
				t.Errorf("Expected burst cooldown 1.0 on entry, got %v", st.BurstCooldown)
			}
			if st.ShotsRemaining != 3 {
				t.Errorf("Expected shots refilled to 3, got %d", st.ShotsRemaining)
			}
		}
	}

	want := []int{1, 3, 5, 15}
	if len(fired) != len(want) {
		t.Fatalf("Fire ticks = %v, want %v", fired, want)
	}
	for i := range want {
		if fired[i] != want[i] {
			t.Fatalf("Fire ticks = %v, want %v", fired, want)
		}
	}
	if recoveryEntered != 6 {
		t.Errorf("Expected recovery on tick 6, got %d", recoveryEntered)
	}
}

// TestBurstTriggerRequiresIntent verifies the burst trigger never fires without intent
func TestBurstTriggerRequiresIntent(t *testing.T) {
	tr := NewBurstTrigger(6, 0.25, 1.0)
	for i := 0; i < 100; i++ {
		if tr.Update(0.1, false) {
			t.Fatal("Fired without intent")
		}
	}
	st := tr.Status()
	if st.State != TriggerReady || st.ShotsRemaining != 6 {
		t.Errorf("Expected ready with full burst, got %+v", st)
	}
}

// TestBurstTriggerShotCooldownFloor verifies the shot cooldown never goes negative
func TestBurstTriggerShotCooldownFloor(t *testing.T) {
	tr := NewBurstTrigger(6, 0.25, 1.0)
	tr.Update(0.1, true)
	for i := 0; i < 10; i++ {
		tr.Update(0.1, false)
		if st := tr.Status(); st.ShotCooldown < 0 {
			t.Fatalf("Shot cooldown went negative: %v", st.ShotCooldown)
		}
	}
}

// TestBurstTriggerReset verifies reset refills shots and clears cooldowns
func TestBurstTriggerReset(t *testing.T) {
	tr := NewBurstTrigger(2, 0.25, 1.0)
	tr.Update(0.5, true)
	tr.Update(0.5, true)
	tr.Update(0.5, true) // enters recovery

	tr.Reset()
	st := tr.Status()
	if st.State != TriggerReady || st.ShotsRemaining != 2 || st.ShotCooldown != 0 || st.BurstCooldown != 0 {
		t.Errorf("Unexpected status after reset: %+v", st)
	}
}

// TestTriggerStateString verifies state names
func TestTriggerStateString(t *testing.T) {
	if TriggerBurstCooldown.String() != "burst-cooldown" || TriggerState(99).String() != "unknown" {
		t.Error("Unexpected trigger state names")
	}
}
