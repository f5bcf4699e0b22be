package engine

import (
	"log/slog"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/lixenwraith/hit-and-run/entity"
	"github.com/lixenwraith/hit-and-run/event"
	"github.com/lixenwraith/hit-and-run/parameter"
	"github.com/lixenwraith/hit-and-run/physics"
	"github.com/lixenwraith/hit-and-run/status"
	"github.com/lixenwraith/hit-and-run/vmath"
)

// Options configures a new Session
// Zero values fall back to defaults: 600x600 field, entropy-seeded random source,
// private metrics registry and the default logger
type Options struct {
	Width, Height float64
	Rand          vmath.Rand
	// BossEvery makes every Nth level open with a boss; 0 disables bosses
	BossEvery int
	Status    *status.Registry
	Logger    *slog.Logger
}

// Session owns every entity collection and counter of one game
// Not safe for concurrent use; the host drives it from a single goroutine
type Session struct {
	player   *entity.Actor
	enemies  []*entity.Actor
	friendly []*entity.Projectile
	hostile  []*entity.Projectile

	bounds vmath.Bounds
	rng    vmath.Rand

	score          uint32
	level          uint32
	killsThisLevel uint32
	state          State
	tick           uint64
	runID          uuid.UUID
	bossEvery      int

	events *event.EventQueue
	log    *slog.Logger

	// Cached metric pointers
	statTicks       *atomic.Int64
	statShots       *atomic.Int64
	statEnemyShots  *atomic.Int64
	statHitsTaken   *atomic.Int64
	statHitsLanded  *atomic.Int64
	statKills       *atomic.Int64
	statResets      *atomic.Int64
	statEnemies     *atomic.Int64
	statProjectiles *atomic.Int64
	statBestLevel   *atomic.Int64
	statRunID       *status.AtomicString
}

// NewSession creates a running session with a centered player and one enemy
func NewSession(opts Options) *Session {
	if opts.Width <= 0 {
		opts.Width = parameter.FieldWidthDefault
	}
	if opts.Height <= 0 {
		opts.Height = parameter.FieldHeightDefault
	}
	if opts.Rand == nil {
		opts.Rand = vmath.NewEntropyRand()
	}
	if opts.Status == nil {
		opts.Status = status.NewRegistry()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.BossEvery < 0 {
		opts.BossEvery = 0
	}

	reg := opts.Status
	s := &Session{
		bounds:    vmath.Bounds{Width: opts.Width, Height: opts.Height},
		rng:       opts.Rand,
		bossEvery: opts.BossEvery,
		events:    event.NewEventQueue(),
		log:       opts.Logger.With("component", "session"),

		statTicks:       reg.Ints.Get(status.KeyTicks),
		statShots:       reg.Ints.Get(status.KeyShotsFired),
		statEnemyShots:  reg.Ints.Get(status.KeyEnemyShots),
		statHitsTaken:   reg.Ints.Get(status.KeyHitsTaken),
		statHitsLanded:  reg.Ints.Get(status.KeyHitsLanded),
		statKills:       reg.Ints.Get(status.KeyKills),
		statResets:      reg.Ints.Get(status.KeyResets),
		statEnemies:     reg.Ints.Get(status.KeyEnemies),
		statProjectiles: reg.Ints.Get(status.KeyProjectiles),
		statBestLevel:   reg.Ints.Get(status.KeyBestLevel),
		statRunID:       reg.Strings.Get(status.KeyRunID),
	}
	s.player = entity.NewPlayer(s.bounds.Center())
	s.start()
	return s
}

// start puts the session in its initial running state around the existing player
func (s *Session) start() {
	clear(s.enemies)
	s.enemies = s.enemies[:0]
	clear(s.friendly)
	s.friendly = s.friendly[:0]
	clear(s.hostile)
	s.hostile = s.hostile[:0]

	s.score = 0
	s.level = parameter.StartLevel
	s.killsThisLevel = 0
	s.state = StateRunning
	s.runID = uuid.New()

	s.player.Reset(s.bounds)
	s.spawnEnemy()

	s.statRunID.Store(s.runID.String())
	s.updateGauges()
	s.emit(event.GameEvent{Type: event.EventReset, Value: s.level})
	s.log.Info("run started", "run", s.runID, "field_w", s.bounds.Width, "field_h", s.bounds.Height)
}

// Reset starts a new run: clears enemies and projectiles, restores counters and the player
// Safe at any tick boundary, in either state
func (s *Session) Reset() {
	s.statResets.Add(1)
	s.start()
}

// SetAimTarget sets the point the player turns and moves toward
func (s *Session) SetAimTarget(x, y float64) {
	s.player.SetTarget(vmath.NewVector2(x, y))
}

// SetShooting sets the player's fire intent; ignored after game over
func (s *Session) SetShooting(on bool) {
	if s.state == StateGameOver {
		return
	}
	s.player.Shooting = on
}

// Resize changes the field; non-positive dimensions are ignored
func (s *Session) Resize(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	s.bounds = vmath.Bounds{Width: width, Height: height}
	s.log.Debug("field resized", "w", width, "h", height)
}

// Advance runs one fixed step of dt seconds; no-op after game over
func (s *Session) Advance(dt float64) {
	if s.state == StateGameOver {
		return
	}
	s.tick++
	s.statTicks.Add(1)

	// Player
	for _, p := range s.player.Tick(dt, s.bounds, s.rng) {
		s.friendly = append(s.friendly, p)
		s.statShots.Add(1)
		s.emit(event.GameEvent{Type: event.EventShot, Pos: p.Pos, Kind: entity.KindPlayer})
	}

	// Hostile projectiles against the player
	for _, p := range s.hostile {
		p.Tick(dt, s.bounds)
	}
	taken := physics.Resolve([]*entity.Actor{s.player}, s.hostile)
	physics.Apply(taken)
	for range taken {
		s.statHitsTaken.Add(1)
		s.emit(event.GameEvent{Type: event.EventPlayerHit, Pos: s.player.Pos, Kind: entity.KindPlayer, Value: s.player.Health})
	}

	if !s.player.Alive() {
		// Collections freeze as they are, consumed shots included, until reset
		s.state = StateGameOver
		s.player.Shooting = false
		s.updateGauges()
		s.emit(event.GameEvent{Type: event.EventGameOver, Pos: s.player.Pos, Value: s.score})
		s.log.Info("game over", "run", s.runID, "score", s.score, "level", s.level, "tick", s.tick)
		return
	}

	// Enemies aim at the player's post-move position
	for _, e := range s.enemies {
		e.SetTarget(s.player.Pos)
		shots := e.Tick(dt, s.bounds, s.rng)
		if len(shots) == 0 {
			continue
		}
		s.hostile = append(s.hostile, shots...)
		s.statEnemyShots.Add(int64(len(shots)))
		s.emit(event.GameEvent{Type: event.EventEnemyShot, Pos: e.Pos, Kind: e.Kind, Value: uint32(len(shots))})
	}

	// Friendly projectiles against enemies
	for _, p := range s.friendly {
		p.Tick(dt, s.bounds)
	}
	landed := physics.Resolve(s.enemies, s.friendly)
	physics.Apply(landed)
	for _, im := range landed {
		s.statHitsLanded.Add(1)
		s.emit(event.GameEvent{Type: event.EventEnemyHit, Pos: im.Target.Pos, Kind: im.Target.Kind, Value: im.Target.Health})
	}

	s.friendly = entity.PruneProjectiles(s.friendly)
	s.hostile = entity.PruneProjectiles(s.hostile)

	s.collectKills()
	s.updateGauges()
}

// collectKills prunes dead enemies, credits each kill and applies the level rule
func (s *Session) collectKills() {
	var kills uint32
	for _, e := range s.enemies {
		if e.Alive() {
			continue
		}
		kills++
		s.emit(event.GameEvent{Type: event.EventKill, Pos: e.Pos, Kind: e.Kind, Value: s.score + kills})
	}
	if kills == 0 {
		return
	}
	s.enemies, _ = entity.PruneActors(s.enemies)

	s.score += kills
	s.player.Heal(kills)
	s.killsThisLevel += kills
	s.statKills.Add(int64(kills))

	// Overshoot counts: several kills in one tick still advance the level
	if s.killsThisLevel >= s.level {
		s.advanceLevel()
		return
	}

	for i := uint32(0); i < kills*parameter.EnemyReplacementsPerKill; i++ {
		s.spawnEnemy()
	}
}

// advanceLevel clears the field and opens the next level with a single spawn
func (s *Session) advanceLevel() {
	clear(s.enemies)
	s.enemies = s.enemies[:0]
	s.level++
	s.killsThisLevel = 0

	if s.isBossLevel(s.level) {
		s.spawnBoss()
	} else {
		s.spawnEnemy()
	}

	if int64(s.level) > s.statBestLevel.Load() {
		s.statBestLevel.Store(int64(s.level))
	}
	s.emit(event.GameEvent{Type: event.EventLevelUp, Value: s.level})
	s.log.Info("level up", "run", s.runID, "level", s.level, "score", s.score, "boss", s.isBossLevel(s.level))
}

func (s *Session) isBossLevel(level uint32) bool {
	return s.bossEvery > 0 && level%uint32(s.bossEvery) == 0
}

func (s *Session) emit(ev event.GameEvent) {
	ev.Tick = s.tick
	s.events.Push(ev)
}

func (s *Session) updateGauges() {
	s.statEnemies.Store(int64(len(s.enemies)))
	s.statProjectiles.Store(int64(len(s.friendly) + len(s.hostile)))
}

// DrainEvents returns events raised since the previous drain, oldest first
func (s *Session) DrainEvents() []event.GameEvent {
	return s.events.Consume()
}

func (s *Session) Score() uint32          { return s.score }
func (s *Session) Level() uint32          { return s.level }
func (s *Session) KillsThisLevel() uint32 { return s.killsThisLevel }
func (s *Session) State() State           { return s.state }
func (s *Session) GameOver() bool         { return s.state == StateGameOver }
func (s *Session) Bounds() vmath.Bounds   { return s.bounds }
func (s *Session) RunID() uuid.UUID       { return s.runID }
func (s *Session) Tick() uint64           { return s.tick }

// Player returns a view of the player
func (s *Session) Player() ActorView {
	return viewActor(s.player)
}

// Enemies returns views of all enemies and bosses in collection order
func (s *Session) Enemies() []ActorView {
	out := make([]ActorView, 0, len(s.enemies))
	for _, e := range s.enemies {
		out = append(out, viewActor(e))
	}
	return out
}

// FriendlyProjectiles returns views of the player's projectiles
func (s *Session) FriendlyProjectiles() []ProjectileView {
	return viewProjectiles(make([]ProjectileView, 0, len(s.friendly)), s.friendly)
}

// HostileProjectiles returns views of enemy projectiles
func (s *Session) HostileProjectiles() []ProjectileView {
	return viewProjectiles(make([]ProjectileView, 0, len(s.hostile)), s.hostile)
}

// Snapshot copies the full presentation state
func (s *Session) Snapshot() Snapshot {
	projectiles := make([]ProjectileView, 0, len(s.friendly)+len(s.hostile))
	projectiles = viewProjectiles(projectiles, s.hostile)
	projectiles = viewProjectiles(projectiles, s.friendly)

	return Snapshot{
		Player:         viewActor(s.player),
		Enemies:        s.Enemies(),
		Projectiles:    projectiles,
		Score:          s.score,
		Level:          s.level,
		KillsThisLevel: s.killsThisLevel,
		State:          s.state,
		GameOver:       s.state == StateGameOver,
		Field:          s.bounds,
		RunID:          s.runID.String(),
		Tick:           s.tick,
	}
}
