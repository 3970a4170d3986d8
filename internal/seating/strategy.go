// Package seating evolves seat layouts to their fixed point.
//
// A round applies the seating rule to every cell of a frozen snapshot and
// builds a fresh grid, so neighbor counts never observe a partially updated
// layout. Two neighbor strategies are provided: Adjacent looks at the eight
// surrounding cells, Visible looks at the first seat along each of the eight
// directions using a VisibilityMap computed once from the layout geometry.
package seating

import "seatca/internal/core"

// Strategy counts the occupied neighbors of (row, col) in g.
type Strategy interface {
	Occupied(g *core.Grid, row, col int) int
}

// directions holds the eight unit vectors: N, S, W, E, NW, NE, SE, SW.
var directions = [8]core.Point{
	{Row: -1, Col: 0},
	{Row: 1, Col: 0},
	{Row: 0, Col: -1},
	{Row: 0, Col: 1},
	{Row: -1, Col: -1},
	{Row: -1, Col: 1},
	{Row: 1, Col: 1},
	{Row: 1, Col: -1},
}

// Neighbors calls fn with each unit offset that keeps (row, col) inside an
// h by w grid. Edge cells get five offsets, corners three.
func Neighbors(h, w, row, col int, fn func(d core.Point)) {
	for _, d := range directions {
		r, c := row+d.Row, col+d.Col
		if r < 0 || r >= h || c < 0 || c >= w {
			continue
		}
		fn(d)
	}
}

// Adjacent counts occupied cells among the immediate neighbors.
type Adjacent struct{}

// Occupied implements Strategy.
func (Adjacent) Occupied(g *core.Grid, row, col int) int {
	n := 0
	Neighbors(g.H, g.W, row, col, func(d core.Point) {
		if g.Get(row+d.Row, col+d.Col) == core.Occupied {
			n++
		}
	})
	return n
}

// Visible counts occupied seats among the first seats visible in each
// direction. Map must have been built from a grid with the same geometry as
// the grids it is evaluated against.
type Visible struct {
	Map *VisibilityMap
}

// NewVisible builds the visibility map for g and wraps it in a strategy.
func NewVisible(g *core.Grid) Visible {
	return Visible{Map: BuildVisibility(g)}
}

// Occupied implements Strategy.
func (v Visible) Occupied(g *core.Grid, row, col int) int {
	n := 0
	for _, p := range v.Map.lists[row*v.Map.w+col] {
		if g.At(p) == core.Occupied {
			n++
		}
	}
	return n
}
