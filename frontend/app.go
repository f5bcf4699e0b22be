package frontend

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/hit-and-run/audio"
	"github.com/lixenwraith/hit-and-run/core"
	"github.com/lixenwraith/hit-and-run/engine"
	"github.com/lixenwraith/hit-and-run/event"
	"github.com/lixenwraith/hit-and-run/input"
	"github.com/lixenwraith/hit-and-run/parameter"
	"github.com/lixenwraith/hit-and-run/render"
	"github.com/lixenwraith/hit-and-run/status"
)

//go:generate go tool mockgen -destination=./mocks/sound_mock.go -package=mocks . SoundPlayer

// SoundPlayer plays effect cues; *audio.SoundManager satisfies it
type SoundPlayer interface {
	Play(t audio.SoundType)
	ToggleMute() bool
}

// Options wires an App; every field is required except Logger
type Options struct {
	Screen    tcell.Screen
	Session   *engine.Session
	Renderer  *render.TerminalRenderer
	Decoder   *input.Decoder
	Sounds    SoundPlayer
	Scheduler *engine.Scheduler
	Status    *status.Registry
	Logger    *slog.Logger
}

// App is the interactive host: it feeds terminal input to the session,
// steps it on the scheduler and renders every wakeup
type App struct {
	screen    tcell.Screen
	session   *engine.Session
	renderer  *render.TerminalRenderer
	decoder   *input.Decoder
	sounds    SoundPlayer
	scheduler *engine.Scheduler
	status    *status.Registry
	log       *slog.Logger

	events chan tcell.Event
	cancel context.CancelFunc

	debug bool
	muted bool

	// Rate sampling
	rateStart time.Time
	rateSteps uint64

	// Cached metric pointers
	statTPS     *status.AtomicFloat
	statFrameMs *status.AtomicFloat
	statPaused  *atomic.Bool
	statAudio   *status.AtomicString
	statDropped *atomic.Int64
}

// New creates an App from opts
func New(opts Options) *App {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	reg := opts.Status
	return &App{
		screen:    opts.Screen,
		session:   opts.Session,
		renderer:  opts.Renderer,
		decoder:   opts.Decoder,
		sounds:    opts.Sounds,
		scheduler: opts.Scheduler,
		status:    reg,
		log:       opts.Logger.With("component", "frontend"),
		events:    make(chan tcell.Event, parameter.InputChannelSize),
		cancel:    func() {},

		statTPS:     reg.Floats.Get(status.KeyTickRate),
		statFrameMs: reg.Floats.Get(status.KeyFrameTime),
		statPaused:  reg.Bools.Get(status.KeyPaused),
		statAudio:   reg.Strings.Get(status.KeyAudio),
		statDropped: reg.Ints.Get(status.KeyDroppedIntent),
	}
}

// Run drives the game until ctx is cancelled or the player quits
// A quit or parent cancellation returns nil
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	a.cancel = cancel
	a.rateStart = time.Now()
	a.rateSteps = a.scheduler.Steps()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer func() {
			if r := recover(); r != nil {
				core.HandleCrash(r)
			}
		}()
		return a.pollEvents(gctx)
	})

	// PollEvent blocks; an interrupt wakes the poller so it can observe cancellation
	g.Go(func() error {
		<-gctx.Done()
		a.screen.PostEvent(tcell.NewEventInterrupt(nil))
		return nil
	})

	g.Go(func() error {
		defer func() {
			if r := recover(); r != nil {
				core.HandleCrash(r)
			}
		}()
		return a.scheduler.Run(gctx, a.Hooks())
	})

	err := g.Wait()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// pollEvents forwards terminal events to the scheduler goroutine
func (a *App) pollEvents(ctx context.Context) error {
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			// Screen finalized
			a.cancel()
			return nil
		}
		if ctx.Err() != nil {
			return nil
		}
		if _, ok := ev.(*tcell.EventInterrupt); ok {
			continue
		}
		select {
		case a.events <- ev:
		default:
			a.statDropped.Add(1)
		}
	}
}

// Hooks returns the scheduler callbacks for this app
func (a *App) Hooks() engine.TickHooks {
	return engine.TickHooks{
		Input: a.drainInput,
		Step:  a.step,
		Frame: a.frame,
	}
}

func (a *App) drainInput() {
	for {
		select {
		case ev := <-a.events:
			a.HandleEvent(ev)
		default:
			return
		}
	}
}

// HandleEvent decodes one terminal event and applies its intents
func (a *App) HandleEvent(ev tcell.Event) {
	for _, it := range a.decoder.Decode(ev) {
		a.apply(it)
	}
}

func (a *App) apply(it input.Intent) {
	switch it.Type {
	case input.IntentQuit:
		a.log.Info("quit requested")
		a.cancel()

	case input.IntentResize:
		w, h := a.decoder.FieldSize(it.Cols, it.Rows)
		a.session.Resize(w, h)
		a.screen.Sync()

	case input.IntentPause:
		paused := a.scheduler.TogglePause()
		a.statPaused.Store(paused)
		a.log.Debug("pause toggled", "paused", paused)

	case input.IntentToggleDebug:
		a.debug = !a.debug

	case input.IntentToggleMute:
		a.muted = a.sounds.ToggleMute()
		if a.muted {
			a.statAudio.Store("muted")
		} else {
			a.statAudio.Store("on")
		}

	case input.IntentReset:
		a.session.Reset()

	case input.IntentAim:
		a.session.SetAimTarget(it.X, it.Y)

	case input.IntentShootOn:
		a.session.SetShooting(true)

	case input.IntentShootOff:
		a.session.SetShooting(false)

	case input.IntentShootToggle:
		a.session.SetShooting(!a.session.Player().Shooting)
	}
}

func (a *App) step(dt float64) {
	a.session.Advance(dt)
	for _, ev := range a.session.DrainEvents() {
		if t, ok := SoundFor(ev.Type); ok {
			a.sounds.Play(t)
		}
		if ev.Type == event.EventGameOver || ev.Type == event.EventLevelUp {
			a.log.Debug("session event", "event", ev.Type.String(), "tick", ev.Tick, "value", ev.Value)
		}
	}
}

func (a *App) frame() {
	start := time.Now()

	ov := render.Overlay{
		Paused: a.scheduler.Paused(),
		Muted:  a.muted,
		Debug:  a.debug,
	}
	if a.debug {
		ov.DebugLines = a.status.Lines()
	}
	a.renderer.RenderFrame(a.session.Snapshot(), ov)

	a.statFrameMs.Set(float64(time.Since(start).Microseconds()) / 1000)

	if elapsed := time.Since(a.rateStart); elapsed >= time.Second {
		steps := a.scheduler.Steps()
		a.statTPS.Set(float64(steps-a.rateSteps) / elapsed.Seconds())
		a.rateStart = time.Now()
		a.rateSteps = steps
	}
}

// SoundFor maps a session event to its sound cue
func SoundFor(t event.EventType) (audio.SoundType, bool) {
	switch t {
	case event.EventShot:
		return audio.SoundShot, true
	case event.EventEnemyShot:
		return audio.SoundEnemyShot, true
	case event.EventPlayerHit:
		return audio.SoundHit, true
	case event.EventEnemyHit:
		return audio.SoundEnemyHit, true
	case event.EventKill:
		return audio.SoundKill, true
	case event.EventLevelUp:
		return audio.SoundLevelUp, true
	case event.EventGameOver:
		return audio.SoundGameOver, true
	default:
		return 0, false
	}
}
