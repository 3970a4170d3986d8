package core

import "fmt"

// Cell is the state of a single grid position.
type Cell uint8

const (
	// Floor never holds a seat and never changes.
	Floor Cell = iota
	// Empty is an unoccupied seat.
	Empty
	// Occupied is an occupied seat.
	Occupied
)

// IsSeat reports whether the cell is a seat (empty or occupied).
func (c Cell) IsSeat() bool { return c == Empty || c == Occupied }

func (c Cell) String() string {
	switch c {
	case Floor:
		return "floor"
	case Empty:
		return "empty"
	case Occupied:
		return "occupied"
	}
	return fmt.Sprintf("Cell(%d)", uint8(c))
}

// Point addresses a cell by row and column.
type Point struct {
	Row, Col int
}

// Pt is shorthand for Point{Row: row, Col: col}.
func Pt(row, col int) Point { return Point{Row: row, Col: col} }

// Add returns the point translated by d.
func (p Point) Add(d Point) Point { return Point{Row: p.Row + d.Row, Col: p.Col + d.Col} }

// Grid stores a rectangular layout of cells in row-major order. The shape is
// fixed at construction; only contents change.
type Grid struct {
	H, W int
	data []Cell
}

// NewGrid allocates an all-floor grid with the given dimensions. Both
// dimensions must be positive.
func NewGrid(h, w int) *Grid {
	if h <= 0 || w <= 0 {
		panic(fmt.Sprintf("core: invalid grid dimensions %dx%d", h, w))
	}
	return &Grid{H: h, W: w, data: make([]Cell, h*w)}
}

// NewGridFromRows copies rows into a new grid. Ragged or empty input violates
// the rectangular precondition and panics; parsers reject such input first.
func NewGridFromRows(rows [][]Cell) *Grid {
	if len(rows) == 0 || len(rows[0]) == 0 {
		panic("core: grid needs at least one row and one column")
	}
	g := NewGrid(len(rows), len(rows[0]))
	for r, row := range rows {
		if len(row) != g.W {
			panic(fmt.Sprintf("core: row %d has width %d, want %d", r, len(row), g.W))
		}
		copy(g.data[r*g.W:], row)
	}
	return g
}

// Dims returns the grid height and width.
func (g *Grid) Dims() (int, int) { return g.H, g.W }

// In reports whether (row, col) lies inside the grid.
func (g *Grid) In(row, col int) bool {
	return row >= 0 && row < g.H && col >= 0 && col < g.W
}

// Index returns the linear slice index for (row, col).
func (g *Grid) Index(row, col int) int { return row*g.W + col }

// Get returns the cell at (row, col). Out-of-range coordinates panic.
func (g *Grid) Get(row, col int) Cell {
	if !g.In(row, col) {
		panic(fmt.Sprintf("core: (%d,%d) outside %dx%d grid", row, col, g.H, g.W))
	}
	return g.data[row*g.W+col]
}

// At is Get for a Point.
func (g *Grid) At(p Point) Cell { return g.Get(p.Row, p.Col) }

// Set stores c at (row, col). Out-of-range coordinates panic.
func (g *Grid) Set(row, col int, c Cell) {
	if !g.In(row, col) {
		panic(fmt.Sprintf("core: (%d,%d) outside %dx%d grid", row, col, g.H, g.W))
	}
	g.data[row*g.W+col] = c
}

// Cells exposes the backing slice in row-major order.
func (g *Grid) Cells() []Cell { return g.data }

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	out := &Grid{H: g.H, W: g.W, data: make([]Cell, len(g.data))}
	copy(out.data, g.data)
	return out
}

// Equal reports whether both grids have the same shape and contents.
func (g *Grid) Equal(o *Grid) bool {
	if g.H != o.H || g.W != o.W {
		return false
	}
	for i, c := range g.data {
		if o.data[i] != c {
			return false
		}
	}
	return true
}

// Count returns how many cells equal c.
func (g *Grid) Count(c Cell) int {
	n := 0
	for _, v := range g.data {
		if v == c {
			n++
		}
	}
	return n
}
