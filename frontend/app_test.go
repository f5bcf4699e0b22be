package frontend

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/mock/gomock"

	"github.com/lixenwraith/hit-and-run/audio"
	"github.com/lixenwraith/hit-and-run/engine"
	"github.com/lixenwraith/hit-and-run/event"
	"github.com/lixenwraith/hit-and-run/frontend/mocks"
	"github.com/lixenwraith/hit-and-run/input"
	"github.com/lixenwraith/hit-and-run/render"
	"github.com/lixenwraith/hit-and-run/status"
	"github.com/lixenwraith/hit-and-run/vmath"
)

const testStep = time.Second / 60

type harness struct {
	app    *App
	screen tcell.SimulationScreen
	sounds *mocks.MockSoundPlayer
	reg    *status.Registry
	clock  *engine.ManualTime
	last   time.Time
}

func newHarness(t *testing.T, ts engine.TimeSource) *harness {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	screen.SetSize(60, 21)
	t.Cleanup(screen.Fini)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	reg := status.NewRegistry()
	session := engine.NewSession(engine.Options{
		Width:  600,
		Height: 400,
		Rand:   vmath.NewFastRand(42),
		Status: reg,
		Logger: logger,
	})

	mt := engine.NewManualTime(time.Unix(0, 0))
	if ts == nil {
		ts = mt
	}
	sched := engine.NewScheduler(engine.NewClock(testStep, 5), time.Millisecond, ts)

	sounds := mocks.NewMockSoundPlayer(gomock.NewController(t))

	app := New(Options{
		Screen:    screen,
		Session:   session,
		Renderer:  render.NewTerminalRenderer(screen, 10, 20),
		Decoder:   input.NewDecoder(nil, 10, 20),
		Sounds:    sounds,
		Scheduler: sched,
		Status:    reg,
		Logger:    logger,
	})
	return &harness{app: app, screen: screen, sounds: sounds, reg: reg, clock: mt, last: mt.Now()}
}

// wake advances manual time by n steps, one wakeup per step
func (h *harness) wake(n int) {
	for i := 0; i < n; i++ {
		h.clock.Advance(testStep)
		h.app.scheduler.Wake(&h.last, h.app.Hooks())
	}
}

func key(ch rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, ch, tcell.ModNone)
}

func rowText(screen tcell.Screen, y int) string {
	w, _ := screen.Size()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		ch, _, _, _ := screen.GetContent(x, y)
		sb.WriteRune(ch)
	}
	return sb.String()
}

// TestMouseFiresAndPlaysShot verifies press, aim and the shot cue reach the session and audio
func TestMouseFiresAndPlaysShot(t *testing.T) {
	h := newHarness(t, nil)
	h.sounds.EXPECT().Play(audio.SoundShot).MinTimes(1)
	h.sounds.EXPECT().Play(gomock.Any()).AnyTimes()

	h.app.HandleEvent(tcell.NewEventMouse(30, 5, tcell.Button1, tcell.ModNone))
	if !h.app.session.Player().Shooting {
		t.Fatal("Mouse press should start shooting")
	}

	h.wake(30)

	if got := h.reg.Ints.Get(status.KeyShotsFired).Load(); got == 0 {
		t.Error("No player shots recorded")
	}

	h.app.HandleEvent(tcell.NewEventMouse(30, 5, tcell.ButtonNone, tcell.ModNone))
	if h.app.session.Player().Shooting {
		t.Error("Mouse release should stop shooting")
	}
}

// TestPauseStopsSimulation verifies paused wakeups render but never step
func TestPauseStopsSimulation(t *testing.T) {
	h := newHarness(t, nil)
	h.sounds.EXPECT().Play(gomock.Any()).AnyTimes()

	h.wake(3)
	before := h.app.session.Tick()
	if before != 3 {
		t.Fatalf("Tick = %d, want 3", before)
	}

	h.app.HandleEvent(key('p'))
	h.wake(10)
	if h.app.session.Tick() != before {
		t.Errorf("Session advanced while paused: %d", h.app.session.Tick())
	}
	if !h.reg.Bools.Get(status.KeyPaused).Load() {
		t.Error("Paused metric not set")
	}
	if !strings.Contains(rowText(h.screen, 11), render.BannerPaused) {
		t.Error("Paused banner not rendered")
	}

	h.app.HandleEvent(key('p'))
	h.wake(2)
	if h.app.session.Tick() != before+2 {
		t.Errorf("Tick after resume = %d, want %d", h.app.session.Tick(), before+2)
	}
}

// TestResizeUpdatesField verifies terminal resize maps to field units minus the HUD row
func TestResizeUpdatesField(t *testing.T) {
	h := newHarness(t, nil)

	h.app.HandleEvent(tcell.NewEventResize(80, 25))

	b := h.app.session.Bounds()
	if b.Width != 800 || b.Height != 480 {
		t.Errorf("Bounds = %vx%v, want 800x480", b.Width, b.Height)
	}
}

// TestShootToggleAndReset verifies the space and reset keys
func TestShootToggleAndReset(t *testing.T) {
	h := newHarness(t, nil)

	h.app.HandleEvent(key(' '))
	if !h.app.session.Player().Shooting {
		t.Error("Space should start shooting")
	}
	h.app.HandleEvent(key(' '))
	if h.app.session.Player().Shooting {
		t.Error("Second space should stop shooting")
	}

	run := h.app.session.RunID()
	h.app.HandleEvent(key('r'))
	if h.app.session.RunID() == run {
		t.Error("Reset should start a new run")
	}
	if got := h.reg.Ints.Get(status.KeyResets).Load(); got != 1 {
		t.Errorf("Resets = %d, want 1", got)
	}
}

// TestMuteAndDebugOverlay verifies mute state and the debug overlay reach the frame
func TestMuteAndDebugOverlay(t *testing.T) {
	h := newHarness(t, nil)
	h.sounds.EXPECT().ToggleMute().Return(true)
	h.sounds.EXPECT().Play(gomock.Any()).AnyTimes()

	h.app.HandleEvent(key('m'))
	h.app.HandleEvent(tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone))
	h.wake(1)

	if got := h.reg.Strings.Get(status.KeyAudio).Load(); got != "muted" {
		t.Errorf("Audio metric = %q, want muted", got)
	}
	if !strings.Contains(rowText(h.screen, 0), "[muted]") {
		t.Error("Muted marker missing from HUD")
	}

	var overlay strings.Builder
	for y := 1; y < 21; y++ {
		overlay.WriteString(rowText(h.screen, y))
	}
	if !strings.Contains(overlay.String(), status.KeyTicks) {
		t.Error("Debug overlay missing tick counter")
	}
}

// TestRunQuitsOnEscape verifies the full loop exits cleanly on quit
func TestRunQuitsOnEscape(t *testing.T) {
	h := newHarness(t, engine.SystemTime{})
	h.sounds.EXPECT().Play(gomock.Any()).AnyTimes()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- h.app.Run(ctx) }()

	if err := h.screen.PostEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)); err != nil {
		t.Fatalf("PostEvent: %v", err)
	}

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run returned %v, want nil", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("Run did not exit after quit")
	}
}

// TestRunStopsOnCancel verifies parent cancellation ends the loop without error
func TestRunStopsOnCancel(t *testing.T) {
	h := newHarness(t, engine.SystemTime{})
	h.sounds.EXPECT().Play(gomock.Any()).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- h.app.Run(ctx) }()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run returned %v, want nil", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("Run did not exit after cancel")
	}
}

func TestSoundFor(t *testing.T) {
	tests := []struct {
		ev   event.EventType
		want audio.SoundType
		ok   bool
	}{
		{event.EventShot, audio.SoundShot, true},
		{event.EventEnemyShot, audio.SoundEnemyShot, true},
		{event.EventPlayerHit, audio.SoundHit, true},
		{event.EventEnemyHit, audio.SoundEnemyHit, true},
		{event.EventKill, audio.SoundKill, true},
		{event.EventLevelUp, audio.SoundLevelUp, true},
		{event.EventGameOver, audio.SoundGameOver, true},
		{event.EventReset, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.ev.String(), func(t *testing.T) {
			got, ok := SoundFor(tt.ev)
			if ok != tt.ok || (ok && got != tt.want) {
				t.Errorf("SoundFor(%v) = %v, %v", tt.ev, got, ok)
			}
		})
	}
}
