package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/hit-and-run/engine"
	"github.com/lixenwraith/hit-and-run/parameter"
	"github.com/lixenwraith/hit-and-run/vmath"
)

// BannerGameOver is shown centered while the session is over
const BannerGameOver = "RIP. R to Reset"

// BannerPaused is shown centered while the scheduler is paused
const BannerPaused = "PAUSED"

const markerMuted = "[muted]"

// Overlay carries host state drawn on top of the field
type Overlay struct {
	Paused     bool
	Muted      bool
	Debug      bool
	DebugLines []string
}

// TerminalRenderer draws snapshots onto a tcell screen
// Row 0 is the HUD; the field starts at parameter.HUDRows
type TerminalRenderer struct {
	screen tcell.Screen
	cellW  float64
	cellH  float64
	width  int
	height int
	base   tcell.Style
}

// NewTerminalRenderer creates a renderer mapping cellW x cellH field units to one cell
func NewTerminalRenderer(screen tcell.Screen, cellW, cellH float64) *TerminalRenderer {
	if cellW <= 0 {
		cellW = parameter.CellWidthDefault
	}
	if cellH <= 0 {
		cellH = parameter.CellHeightDefault
	}
	return &TerminalRenderer{
		screen: screen,
		cellW:  cellW,
		cellH:  cellH,
		base:   tcell.StyleDefault.Background(RgbBackground),
	}
}

// FieldToCell maps field coordinates to the terminal cell containing them
func (r *TerminalRenderer) FieldToCell(p vmath.Vector2) (col, row int) {
	return int(math.Floor(p.X / r.cellW)), int(math.Floor(p.Y/r.cellH)) + parameter.HUDRows
}

// RenderFrame renders the entire frame and shows it
func (r *TerminalRenderer) RenderFrame(snap engine.Snapshot, ov Overlay) {
	r.width, r.height = r.screen.Size()
	r.screen.Fill(' ', r.base)

	for _, p := range snap.Projectiles {
		r.drawProjectile(p)
	}
	for _, e := range snap.Enemies {
		r.drawActor(e)
	}
	r.drawActor(snap.Player)

	r.drawStatusBar(snap, ov)

	switch {
	case snap.GameOver:
		r.drawBanner(BannerGameOver, RgbBanner)
	case ov.Paused:
		r.drawBanner(BannerPaused, RgbPaused)
	}

	if ov.Debug {
		r.drawDebug(ov.DebugLines)
	}

	r.screen.Show()
}

func (r *TerminalRenderer) set(x, y int, ch rune, style tcell.Style) {
	if x < 0 || y < parameter.HUDRows || x >= r.width || y >= r.height {
		return
	}
	r.screen.SetContent(x, y, ch, nil, style)
}

func (r *TerminalRenderer) drawText(x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		if x >= r.width {
			break
		}
		if x >= 0 && y >= 0 && y < r.height {
			r.screen.SetContent(x, y, ch, nil, style)
		}
		x++
	}
	return x
}

func (r *TerminalRenderer) drawProjectile(p engine.ProjectileView) {
	if !p.Alive {
		return
	}
	col, row := r.FieldToCell(p.Pos)
	if p.Friendly {
		r.set(col, row, glyphFriendly, r.base.Foreground(RgbShotFriendly))
	} else {
		r.set(col, row, glyphHostile, r.base.Foreground(RgbShotHostile))
	}
}

// drawActor fills every cell whose center lies inside the body disc, then the barrel
func (r *TerminalRenderer) drawActor(a engine.ActorView) {
	if !a.Alive {
		return
	}
	k := classify(a)
	bodyColor, gunColor := actorColors(k)
	style := r.base.Foreground(bodyColor)
	glyph := bodyGlyph(k)
	radius := a.Diameter / 2

	c0, r0 := r.FieldToCell(vmath.NewVector2(a.Pos.X-radius, a.Pos.Y-radius))
	c1, r1 := r.FieldToCell(vmath.NewVector2(a.Pos.X+radius, a.Pos.Y+radius))
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			center := vmath.NewVector2((float64(col)+0.5)*r.cellW, (float64(row-parameter.HUDRows)+0.5)*r.cellH)
			if center.Distance(a.Pos) <= radius {
				r.set(col, row, glyph, style)
			}
		}
	}
	col, row := r.FieldToCell(a.Pos)
	r.set(col, row, glyph, style)

	// Barrel tip sits one cell beyond the rim
	reach := radius + math.Min(r.cellW, r.cellH)/2
	tipCol, tipRow := r.FieldToCell(a.Pos.Add(vmath.Polar(a.Rotation, reach)))
	r.set(tipCol, tipRow, gunGlyph(a.Rotation), r.base.Foreground(gunColor))

	if k != kindPlayer {
		label := fmt.Sprintf("%d", a.Health)
		r.drawFieldText(col-len(label)/2, row, label, r.base.Foreground(RgbHealthText).Background(bodyColor))
	}
}

// drawFieldText is drawText clipped to the field area
func (r *TerminalRenderer) drawFieldText(x, y int, s string, style tcell.Style) {
	for _, ch := range s {
		r.set(x, y, ch, style)
		x++
	}
}

// drawStatusBar right-aligns the burst bar and mute marker, then fits the HUD text into what is left
func (r *TerminalRenderer) drawStatusBar(snap engine.Snapshot, ov Overlay) {
	style := tcell.StyleDefault.Foreground(RgbStatusBar).Background(RgbStatusBg)
	for x := 0; x < r.width; x++ {
		r.screen.SetContent(x, 0, ' ', nil, style)
	}

	trig := snap.Player.Trigger
	tail := int(trig.BurstSize) + 1
	if ov.Muted {
		tail += len(markerMuted) + 1
	}
	x := max(r.width-tail, 0)
	limit := x

	// Burst bar: one cell per round
	for i := uint32(0); i < trig.BurstSize; i++ {
		ch, color := glyphBurst, RgbBurstReady
		if i >= trig.ShotsRemaining {
			ch, color = glyphBurstOff, RgbBurstSpent
			if trig.ShotsRemaining == 0 {
				color = RgbBurstRecover
			}
		}
		x = r.drawText(x, 0, string(ch), style.Foreground(color))
	}
	if ov.Muted {
		r.drawText(x+1, 0, markerMuted, style)
	}

	text := fmt.Sprintf(" Score:%d HP:%d Lv:%d Kills:%d Shots:%d",
		snap.Score, snap.Player.Health, snap.Level, snap.KillsThisLevel, trig.ShotsRemaining)
	if len(text) >= limit {
		text = text[:max(limit-1, 0)]
	}
	r.drawText(0, 0, text, style)
}

func (r *TerminalRenderer) drawBanner(text string, color tcell.Color) {
	style := tcell.StyleDefault.Foreground(color).Background(RgbBannerBg).Bold(true)
	padded := " " + text + " "
	x := (r.width - len(padded)) / 2
	y := parameter.HUDRows + (r.height-parameter.HUDRows)/2
	r.drawText(max(x, 0), y, padded, style)
}

func (r *TerminalRenderer) drawDebug(lines []string) {
	style := tcell.StyleDefault.Foreground(RgbDebug).Background(RgbBannerBg)
	for i, line := range lines {
		y := parameter.HUDRows + i
		if y >= r.height {
			break
		}
		r.drawText(0, y, line, style)
	}
}
