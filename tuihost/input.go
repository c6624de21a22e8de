package tuihost

import (
	"github.com/gdamore/tcell/v2"

	"github.com/rhpo/vapesort"
)

// PointerTarget receives pointer callbacks in canvas coordinates.
type PointerTarget interface {
	OnPointerDown(x, y float64)
	OnPointerMove(x, y float64)
	OnPointerUp(x, y float64)
}

// PointerTracker turns tcell's button-state mouse events into the
// down/move/up edges the game expects.
type PointerTracker struct {
	pressed bool
	last    vapesort.Vector2
	seen    bool
}

func (p *PointerTracker) Handle(ev *tcell.EventMouse, target PointerTarget) {
	col, row := ev.Position()
	pos := CellCenter(col, row)
	down := ev.Buttons()&tcell.Button1 != 0

	moved := !p.seen || pos != p.last
	p.last = pos
	p.seen = true

	switch {
	case down && !p.pressed:
		p.pressed = true
		target.OnPointerDown(pos.X, pos.Y)
	case !down && p.pressed:
		p.pressed = false
		target.OnPointerMove(pos.X, pos.Y)
		target.OnPointerUp(pos.X, pos.Y)
	case moved:
		target.OnPointerMove(pos.X, pos.Y)
	}
}
