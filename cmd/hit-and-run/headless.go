package main

import (
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/lixenwraith/hit-and-run/engine"
	"github.com/lixenwraith/hit-and-run/status"
	"github.com/lixenwraith/hit-and-run/vmath"
)

// autopilot aims at the nearest enemy and keeps the trigger held
func autopilot(s *engine.Session) {
	player := s.Player()
	best := math.Inf(1)
	var target vmath.Vector2
	found := false
	for _, e := range s.Enemies() {
		if d := player.Pos.Distance(e.Pos); d < best {
			best, target, found = d, e.Pos, true
		}
	}
	if found {
		s.SetAimTarget(target.X, target.Y)
	}
	s.SetShooting(true)
}

// runHeadless steps a session without a terminal for at most ticks steps
// and writes a summary to w; it stops early on game over
func runHeadless(s *engine.Session, reg *status.Registry, ticks int, dt float64, w io.Writer, logger *slog.Logger) {
	for i := 0; i < ticks && !s.GameOver(); i++ {
		autopilot(s)
		s.Advance(dt)
		s.DrainEvents()
	}

	snap := s.Snapshot()
	logger.Info("headless run finished", "run", snap.RunID, "tick", snap.Tick, "score", snap.Score, "level", snap.Level)

	fmt.Fprintf(w, "run %s: %s after %d ticks\n", snap.RunID, snap.State, snap.Tick)
	fmt.Fprintf(w, "Score: %d | Health: %d | Level: %d | Level Kills: %d\n",
		snap.Score, snap.Player.Health, snap.Level, snap.KillsThisLevel)
	for _, line := range reg.Lines() {
		fmt.Fprintln(w, line)
	}
}
