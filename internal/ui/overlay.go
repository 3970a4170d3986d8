//go:build ebiten

package ui

import (
	"image/color"

	"seatca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type watcherProvider interface {
	Watchers(row, col int) []core.Point
}

// Overlay shows which cells count toward the seat under the cursor.
type Overlay struct {
	sim      core.Sim
	scale    int
	show     bool
	hover    core.Point
	watchers []core.Point
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	return &Overlay{sim: sim, scale: scale, show: true, hover: core.Pt(-1, -1)}
}

// Update toggles the overlay with V and tracks the hovered cell.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyV) {
		o.show = !o.show
	}
	o.watchers = nil
	o.hover = core.Pt(-1, -1)
	if !o.show {
		return
	}
	provider, ok := o.sim.(watcherProvider)
	if !ok {
		return
	}
	x, y := ebiten.CursorPosition()
	p := cellAt(x, y, o.scale)
	size := o.sim.Size()
	if p.Row < 0 || p.Row >= size.H || p.Col < 0 || p.Col >= size.W {
		return
	}
	o.hover = p
	o.watchers = provider.Watchers(p.Row, p.Col)
}

// Highlights returns per-pixel tints for the grid painter.
func (o *Overlay) Highlights() map[int]color.RGBA {
	if o == nil || !o.show {
		return nil
	}
	return watcherHighlights(o.sim.Size(), o.hover, o.watchers)
}

// Draw strokes a line from the hovered cell to each watched cell.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o == nil || !o.show || o.hover.Row < 0 {
		return
	}
	half := float32(o.scale) / 2
	x0 := float32(o.hover.Col*o.scale) + half
	y0 := float32(o.hover.Row*o.scale) + half
	for _, p := range o.watchers {
		x1 := float32(p.Col*o.scale) + half
		y1 := float32(p.Row*o.scale) + half
		vector.StrokeLine(screen, x0, y0, x1, y1, 1, watcherColor, true)
	}
}
