package seating

import "seatca/internal/core"

// Step applies one synchronous round to cur and returns the next layout and
// whether any seat changed. Every count is taken against cur, which is never
// modified.
//
// An empty seat becomes occupied when it has no occupied neighbors; an
// occupied seat empties when it has at least threshold occupied neighbors.
// Floor is copied unchanged.
func Step(cur *core.Grid, s Strategy, threshold int) (*core.Grid, bool) {
	next := cur.Clone()
	out := next.Cells()
	changed := false
	h, w := cur.Dims()
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			idx := row*w + col
			switch cur.Get(row, col) {
			case core.Empty:
				if s.Occupied(cur, row, col) == 0 {
					out[idx] = core.Occupied
					changed = true
				}
			case core.Occupied:
				if s.Occupied(cur, row, col) >= threshold {
					out[idx] = core.Empty
					changed = true
				}
			}
		}
	}
	return next, changed
}

// CountOccupied returns the number of occupied seats in g.
func CountOccupied(g *core.Grid) int { return g.Count(core.Occupied) }
