// Package seats adapts a seating session to the core.Sim contract so the
// viewer can step it round by round.
package seats

import (
	"image/color"

	"seatca/internal/core"
	"seatca/internal/layout"
	"seatca/internal/seating"
	pkgcore "seatca/pkg/core"
)

// Hall is a seat layout evolving under one seating rule.
type Hall struct {
	cfg     Config
	rule    seating.Rule
	fixed   *core.Grid
	session *seating.Session
	display []uint8
}

// New builds a hall from cfg, loading cfg.Layout when set.
func New(cfg Config) (*Hall, error) {
	rule, err := seating.RuleByName(cfg.Rule)
	if err != nil {
		return nil, err
	}
	rule = rule.WithThreshold(cfg.Threshold)
	h := &Hall{cfg: cfg, rule: rule}
	if cfg.Layout != "" {
		g, err := layout.Load(cfg.Layout)
		if err != nil {
			return nil, err
		}
		h.fixed = g
		h.cfg.Width, h.cfg.Height = g.W, g.H
	}
	h.Reset(0)
	return h, nil
}

// NewFromGrid builds a hall that always resets to g.
func NewFromGrid(g *core.Grid, rule seating.Rule) *Hall {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = g.W, g.H
	cfg.Rule = rule.Name
	h := &Hall{cfg: cfg, rule: rule, fixed: g.Clone()}
	h.Reset(0)
	return h
}

// Name returns the simulation identifier.
func (h *Hall) Name() string { return "seats-" + h.rule.Name }

// Size reports the grid dimensions.
func (h *Hall) Size() core.Size { return core.Size{W: h.cfg.Width, H: h.cfg.Height} }

// Cells exposes the display buffer, one core.Cell value per position.
func (h *Hall) Cells() []uint8 { return h.display }

// Round returns the number of rounds applied since the last reset.
func (h *Hall) Round() int { return h.session.Round() }

// Stable reports whether the hall has reached its fixed point.
func (h *Hall) Stable() bool { return h.session.Stable() }

// Occupied returns the current number of occupied seats.
func (h *Hall) Occupied() int { return seating.CountOccupied(h.session.Grid()) }

// Reset restarts from the loaded layout, or from a fresh random hall. A zero
// seed uses the configured one.
func (h *Hall) Reset(seed int64) {
	g := h.fixed
	if g == nil {
		if seed == 0 {
			seed = h.cfg.Seed
		}
		g = randomHall(pkgcore.NewRNG(seed), h.cfg.Height, h.cfg.Width, h.cfg.SeatChance)
	}
	h.session = seating.NewSession(g, h.rule)
	h.rebuildDisplay()
}

// Step applies one round. Once stable, further steps are no-ops.
func (h *Hall) Step() {
	if h.session.Advance() {
		h.rebuildDisplay()
	}
}

// Watchers returns the positions whose state counts toward (row, col): the
// visible seats under the visible rule, the in-bounds neighbors otherwise.
func (h *Hall) Watchers(row, col int) []core.Point {
	g := h.session.Grid()
	if !g.In(row, col) {
		return nil
	}
	if m := h.session.Visibility(); m != nil {
		seen, _ := m.VisibleFrom(core.Pt(row, col))
		return seen
	}
	var out []core.Point
	seating.Neighbors(g.H, g.W, row, col, func(d core.Point) {
		out = append(out, core.Pt(row+d.Row, col+d.Col))
	})
	return out
}

// Parameters reports the hall's settings and progress.
func (h *Hall) Parameters() core.ParameterSnapshot {
	source := h.cfg.Layout
	if source == "" {
		source = "random"
	}
	rule := []core.Parameter{
		core.StringParam("rule", "Rule", h.rule.Name),
		core.IntParam("threshold", "Threshold", h.rule.Threshold),
	}
	if m := h.session.Visibility(); m != nil {
		rule = append(rule, core.IntParam("seats", "Mapped seats", m.Seats()))
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Hall",
			Params: []core.Parameter{
				core.IntParam("w", "Width", h.cfg.Width),
				core.IntParam("h", "Height", h.cfg.Height),
				core.StringParam("layout", "Layout", source),
			},
		},
		{Name: "Rule", Params: rule},
		{
			Name: "Progress",
			Params: []core.Parameter{
				core.IntParam("round", "Round", h.Round()),
				core.IntParam("occupied", "Occupied", h.Occupied()),
				core.BoolParam("stable", "Stable", h.Stable()),
			},
		},
	}}
}

var hallPalette = []color.RGBA{
	core.Floor:    {R: 24, G: 22, B: 20, A: 255},
	core.Empty:    {R: 90, G: 150, B: 90, A: 255},
	core.Occupied: {R: 220, G: 90, B: 60, A: 255},
}

// Palette maps display values to colors.
func (h *Hall) Palette() []color.RGBA { return hallPalette }

func (h *Hall) rebuildDisplay() {
	cells := h.session.Grid().Cells()
	if len(h.display) != len(cells) {
		h.display = make([]uint8, len(cells))
	}
	for i, c := range cells {
		h.display[i] = uint8(c)
	}
}

func randomHall(rng *pkgcore.RNG, height, width int, seatChance float64) *core.Grid {
	g := core.NewGrid(height, width)
	cells := g.Cells()
	for i := range cells {
		if rng.Chance(seatChance) {
			cells[i] = core.Empty
		}
	}
	return g
}

func newSim(c Config) (core.Sim, error) {
	h, err := New(c)
	if err != nil {
		return nil, err
	}
	return h, nil
}

func init() {
	core.Register("seats", func(cfg map[string]string) (core.Sim, error) {
		return newSim(FromMap(cfg))
	})
	core.Register("seats-visible", func(cfg map[string]string) (core.Sim, error) {
		c := FromMap(cfg)
		c.Rule = seating.VisibleRule.Name
		return newSim(c)
	})
}
