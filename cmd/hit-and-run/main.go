package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/lixenwraith/hit-and-run/audio"
	"github.com/lixenwraith/hit-and-run/config"
	"github.com/lixenwraith/hit-and-run/core"
	"github.com/lixenwraith/hit-and-run/engine"
	"github.com/lixenwraith/hit-and-run/frontend"
	"github.com/lixenwraith/hit-and-run/input"
	"github.com/lixenwraith/hit-and-run/parameter"
	"github.com/lixenwraith/hit-and-run/render"
	"github.com/lixenwraith/hit-and-run/service"
	"github.com/lixenwraith/hit-and-run/status"
	"github.com/lixenwraith/hit-and-run/vmath"
)

var (
	configFlag   = flag.String("config", "", "Path to a TOML config file")
	debugFlag    = flag.Bool("debug", false, "Write a debug log (overrides [log] debug)")
	headlessFlag = flag.Bool("headless", false, "Run without a terminal and print a summary")
	ticksFlag    = flag.Int("ticks", 3600, "Steps to simulate in headless mode")
	seedFlag     = flag.Uint64("seed", 0, "Random seed (overrides [sim] seed, 0 keeps config)")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "hit-and-run: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}
	if *debugFlag {
		cfg.Log.Debug = true
	}
	if *seedFlag != 0 {
		cfg.Sim.Seed = *seedFlag
	}

	logger, logFile, err := setupLogging(cfg.Log.Dir, cfg.Log.Debug)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	var rng vmath.Rand
	if cfg.Sim.Seed != 0 {
		rng = vmath.NewFastRand(cfg.Sim.Seed)
	} else {
		rng = vmath.NewEntropyRand()
	}
	reg := status.NewRegistry()
	dt := parameter.TickInterval(cfg.Sim.TickRate)

	if *headlessFlag {
		session := engine.NewSession(engine.Options{
			Width:     cfg.Sim.FieldWidth,
			Height:    cfg.Sim.FieldHeight,
			Rand:      rng,
			BossEvery: cfg.Sim.BossEvery,
			Status:    reg,
			Logger:    logger,
		})
		runHeadless(session, reg, *ticksFlag, dt.Seconds(), os.Stdout, logger)
		return nil
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) || !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("not a terminal; use -headless")
	}

	keys, err := cfg.KeyTable()
	if err != nil {
		return err
	}
	audioCfg, err := cfg.AudioConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	// Game runs without sound if the device cannot be opened
	sounds := audio.NewSoundManager(audioCfg, logger)

	hub := service.NewHub(logger)
	for _, svc := range []service.Service{newScreenService(screen), sounds} {
		if err := hub.Register(svc); err != nil {
			return err
		}
	}
	if err := hub.StartAll(ctx); err != nil {
		return err
	}
	// Normal exit terminal cleanup
	defer func() {
		if err := hub.StopAll(); err != nil {
			logger.Warn("service shutdown", "error", err)
		}
	}()

	decoder := input.NewDecoder(keys, cfg.Display.CellWidth, cfg.Display.CellHeight)
	cols, rows := screen.Size()
	width, height := decoder.FieldSize(cols, rows)

	session := engine.NewSession(engine.Options{
		Width:     width,
		Height:    height,
		Rand:      rng,
		BossEvery: cfg.Sim.BossEvery,
		Status:    reg,
		Logger:    logger,
	})

	if sounds.Enabled() {
		reg.Strings.Get(status.KeyAudio).Store("on")
	} else {
		reg.Strings.Get(status.KeyAudio).Store("off")
	}

	scheduler := engine.NewScheduler(
		engine.NewClock(dt, parameter.MaxCatchUpSteps),
		min(parameter.RenderInterval, dt),
		engine.SystemTime{},
	)

	app := frontend.New(frontend.Options{
		Screen:    screen,
		Session:   session,
		Renderer:  render.NewTerminalRenderer(screen, cfg.Display.CellWidth, cfg.Display.CellHeight),
		Decoder:   decoder,
		Sounds:    sounds,
		Scheduler: scheduler,
		Status:    reg,
		Logger:    logger,
	})

	start := time.Now()
	err = app.Run(ctx)
	logger.Info("exiting", "uptime", time.Since(start), "steps", scheduler.Steps(), "score", session.Score())
	return err
}
