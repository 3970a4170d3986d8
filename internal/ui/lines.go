package ui

import (
	"fmt"
	"image/color"
	"strings"

	"seatca/internal/core"
)

var (
	hoverColor   = color.RGBA{R: 250, G: 230, B: 90, A: 255}
	watcherColor = color.RGBA{R: 90, G: 180, B: 250, A: 255}
)

func buildTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Hall"
	}
	return sim.Name()
}

// snapshotLines flattens a parameter snapshot into the text rows the HUD
// draws, one header per group.
func snapshotLines(title string, snap core.ParameterSnapshot) []string {
	lines := []string{title}
	for _, group := range snap.Groups {
		lines = append(lines, "", strings.ToUpper(group.Name))
		for _, p := range group.Params {
			label := p.Label
			if label == "" {
				label = p.Key
			}
			lines = append(lines, fmt.Sprintf("  %s: %s", label, p.Value))
		}
	}
	return lines
}

// watcherHighlights maps pixel indices of the hovered cell and the cells it
// watches to their tint.
func watcherHighlights(size core.Size, hover core.Point, watchers []core.Point) map[int]color.RGBA {
	if hover.Row < 0 || hover.Row >= size.H || hover.Col < 0 || hover.Col >= size.W {
		return nil
	}
	out := make(map[int]color.RGBA, len(watchers)+1)
	for _, p := range watchers {
		out[p.Row*size.W+p.Col] = watcherColor
	}
	out[hover.Row*size.W+hover.Col] = hoverColor
	return out
}

// cellAt converts a cursor position in screen pixels to a grid cell.
func cellAt(x, y, scale int) core.Point {
	if scale <= 0 {
		scale = 1
	}
	if x < 0 || y < 0 {
		return core.Pt(-1, -1)
	}
	return core.Pt(y/scale, x/scale)
}
