// Package layout converts between seat layout text and core grids.
//
// A layout is one row per line using '.' for floor, 'L' for an empty seat and
// '#' for an occupied seat. All rows must have the same width.
package layout

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"seatca/internal/core"
)

var (
	// ErrEmpty is returned for input without any rows.
	ErrEmpty = errors.New("layout: no rows")
	// ErrRagged is returned when rows differ in width.
	ErrRagged = errors.New("layout: rows differ in width")
)

// ParseError reports an unexpected character.
type ParseError struct {
	Line int // 1-based
	Col  int // 1-based
	Char rune
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("layout: line %d col %d: unexpected character %q", e.Line, e.Col, e.Char)
}

// CellFor maps a layout character to a cell.
func CellFor(ch rune) (core.Cell, bool) {
	switch ch {
	case '.':
		return core.Floor, true
	case 'L':
		return core.Empty, true
	case '#':
		return core.Occupied, true
	}
	return 0, false
}

// CharFor maps a cell back to its layout character.
func CharFor(c core.Cell) byte {
	switch c {
	case core.Empty:
		return 'L'
	case core.Occupied:
		return '#'
	}
	return '.'
}

// Parse reads a layout. Trailing blank lines and CRLF line endings are
// accepted; a blank line followed by more rows is a ragged layout.
func Parse(r io.Reader) (*core.Grid, error) {
	var rows [][]core.Cell
	blank := 0
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r")
		if text == "" {
			blank++
			continue
		}
		if blank > 0 && len(rows) > 0 {
			return nil, fmt.Errorf("%w: blank line before line %d", ErrRagged, line)
		}
		blank = 0
		row := make([]core.Cell, 0, len(text))
		col := 0
		for _, ch := range text {
			col++
			c, ok := CellFor(ch)
			if !ok {
				return nil, &ParseError{Line: line, Col: col, Char: ch}
			}
			row = append(row, c)
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, fmt.Errorf("%w: line %d has width %d, want %d", ErrRagged, line, len(row), len(rows[0]))
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("layout: read: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrEmpty
	}
	return core.NewGridFromRows(rows), nil
}

// ParseString is Parse for an in-memory layout.
func ParseString(s string) (*core.Grid, error) {
	return Parse(strings.NewReader(s))
}

// MustParse is like ParseString but panics on error. It is meant for
// fixtures and tests.
func MustParse(s string) *core.Grid {
	g, err := ParseString(s)
	if err != nil {
		panic(err)
	}
	return g
}

// Format renders g in layout notation, one newline-terminated line per row.
func Format(g *core.Grid) string {
	var b strings.Builder
	h, w := g.Dims()
	b.Grow(h * (w + 1))
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			b.WriteByte(CharFor(g.Get(row, col)))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
