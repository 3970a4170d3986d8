package seating

import (
	"fmt"

	"seatca/internal/core"
)

// VisibilityMap records, for every seat of a layout, the seats visible from
// it. Floor positions never change, so the map stays valid for every round of
// a simulation started from the same layout.
type VisibilityMap struct {
	h, w  int
	seats int
	lists [][]core.Point
	seat  []bool
}

// BuildVisibility walks outward from every seat in each of the eight
// directions and keeps the first seat found. A direction that reaches the
// grid edge first contributes nothing.
func BuildVisibility(g *core.Grid) *VisibilityMap {
	h, w := g.Dims()
	m := &VisibilityMap{
		h:     h,
		w:     w,
		lists: make([][]core.Point, h*w),
		seat:  make([]bool, h*w),
	}
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			if !g.Get(row, col).IsSeat() {
				continue
			}
			from := core.Pt(row, col)
			list := make([]core.Point, 0, len(directions))
			Neighbors(h, w, row, col, func(d core.Point) {
				for p := from.Add(d); g.In(p.Row, p.Col); p = p.Add(d) {
					if g.At(p).IsSeat() {
						list = append(list, p)
						return
					}
				}
			})
			idx := g.Index(row, col)
			m.lists[idx] = list
			m.seat[idx] = true
			m.seats++
		}
	}
	return m
}

// Seats returns the number of seats with an entry in the map.
func (m *VisibilityMap) Seats() int { return m.seats }

// VisibleFrom returns the seats visible from p in direction order. The second
// result is false when p is not a seat or lies outside the layout.
func (m *VisibilityMap) VisibleFrom(p core.Point) ([]core.Point, bool) {
	if p.Row < 0 || p.Row >= m.h || p.Col < 0 || p.Col >= m.w {
		return nil, false
	}
	idx := p.Row*m.w + p.Col
	if !m.seat[idx] {
		return nil, false
	}
	return m.lists[idx], true
}

// Matches reports whether g has the geometry the map was built from: same
// dimensions and seats in exactly the same positions.
func (m *VisibilityMap) Matches(g *core.Grid) bool {
	if g.H != m.h || g.W != m.w {
		return false
	}
	for i, c := range g.Cells() {
		if c.IsSeat() != m.seat[i] {
			return false
		}
	}
	return true
}

func (m *VisibilityMap) String() string {
	return fmt.Sprintf("VisibilityMap(%dx%d, %d seats)", m.h, m.w, m.seats)
}
