package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/hit-and-run/parameter"
)

// Decoder turns terminal events into intents
// Tracks mouse button state so a release produces exactly one IntentShootOff
type Decoder struct {
	keys       *KeyTable
	cellW      float64
	cellH      float64
	buttonHeld bool
}

// NewDecoder creates a decoder; non-positive cell sizes fall back to defaults
func NewDecoder(keys *KeyTable, cellW, cellH float64) *Decoder {
	if keys == nil {
		keys = DefaultKeyTable()
	}
	if cellW <= 0 {
		cellW = parameter.CellWidthDefault
	}
	if cellH <= 0 {
		cellH = parameter.CellHeightDefault
	}
	return &Decoder{keys: keys, cellW: cellW, cellH: cellH}
}

// CellToField maps the center of a terminal cell to field coordinates
// Rows above the field (HUD) clamp to the top edge
func (d *Decoder) CellToField(col, row int) (x, y float64) {
	x = (float64(col) + 0.5) * d.cellW
	y = (float64(row-parameter.HUDRows) + 0.5) * d.cellH
	return max(x, 0), max(y, 0)
}

// FieldSize converts a terminal size to field dimensions
func (d *Decoder) FieldSize(cols, rows int) (w, h float64) {
	return float64(cols) * d.cellW, float64(max(rows-parameter.HUDRows, 1)) * d.cellH
}

// Decode returns the intents carried by ev, nil if none
func (d *Decoder) Decode(ev tcell.Event) []Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if t := d.keys.Lookup(ev); t != IntentNone {
			return []Intent{{Type: t}}
		}
		return nil

	case *tcell.EventMouse:
		col, row := ev.Position()
		x, y := d.CellToField(col, row)
		out := []Intent{{Type: IntentAim, X: x, Y: y}}

		pressed := ev.Buttons()&(tcell.Button1|tcell.Button2|tcell.Button3) != 0
		switch {
		case pressed && !d.buttonHeld:
			d.buttonHeld = true
			out = append(out, Intent{Type: IntentShootOn})
		case !pressed && d.buttonHeld:
			d.buttonHeld = false
			out = append(out, Intent{Type: IntentShootOff})
		}
		return out

	case *tcell.EventResize:
		cols, rows := ev.Size()
		return []Intent{{Type: IntentResize, Cols: cols, Rows: rows}}
	}
	return nil
}
