package ui

import (
	"testing"

	"seatca/internal/core"
)

func TestSnapshotLines(t *testing.T) {
	snap := core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name:   "Progress",
		Params: []core.Parameter{core.IntParam("round", "Round", 3), core.BoolParam("stable", "", true)},
	}}}
	got := snapshotLines("seats-adjacent", snap)
	want := []string{"seats-adjacent", "", "PROGRESS", "  Round: 3", "  stable: true"}
	if len(got) != len(want) {
		t.Fatalf("got %d lines %q, want %q", len(got), got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestWatcherHighlights(t *testing.T) {
	size := core.Size{W: 4, H: 3}
	hl := watcherHighlights(size, core.Pt(1, 1), []core.Point{core.Pt(0, 0), core.Pt(2, 3)})
	if len(hl) != 3 {
		t.Fatalf("expected 3 highlighted cells, got %d", len(hl))
	}
	if hl[5] != hoverColor {
		t.Fatal("hovered cell should use the hover tint")
	}
	if hl[0] != watcherColor || hl[11] != watcherColor {
		t.Fatal("watched cells should use the watcher tint")
	}
	if watcherHighlights(size, core.Pt(3, 0), nil) != nil {
		t.Fatal("hover outside the grid should highlight nothing")
	}
}

func TestCellAt(t *testing.T) {
	if got := cellAt(17, 9, 4); got != core.Pt(2, 4) {
		t.Fatalf("cellAt(17,9,4) = %v", got)
	}
	if got := cellAt(-1, 0, 4); got.Row != -1 {
		t.Fatalf("negative cursor should map outside the grid, got %v", got)
	}
}
