package seats

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seatca/internal/core"
	"seatca/internal/layout"
	"seatca/internal/seating"
)

const waitingArea = `L.LL.LL.LL
LLLLLLL.LL
L.L.L..L..
LLLL.LL.LL
L.LL.LL.LL
L.LLLLL.LL
..L.L.....
LLLLLLLLLL
L.LLLLLL.L
L.LLLLL.LL
`

func runToFixedPoint(t *testing.T, h *Hall) {
	t.Helper()
	for i := 0; i < 1000 && !h.Stable(); i++ {
		h.Step()
	}
	require.True(t, h.Stable(), "hall did not settle")
}

func TestHallFromLayoutFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hall.txt")
	require.NoError(t, os.WriteFile(path, []byte(waitingArea), 0o644))

	for rule, want := range map[string]int{"adjacent": 37, "visible": 26} {
		c := DefaultConfig()
		c.Layout = path
		c.Rule = rule
		h, err := New(c)
		require.NoError(t, err)
		assert.Equal(t, core.Size{W: 10, H: 10}, h.Size())
		assert.Equal(t, "seats-"+rule, h.Name())

		runToFixedPoint(t, h)
		assert.Equal(t, want, h.Occupied(), rule)

		cells := h.Cells()
		occupied := 0
		for _, v := range cells {
			if core.Cell(v) == core.Occupied {
				occupied++
			}
		}
		assert.Equal(t, want, occupied, "display buffer out of sync for %s", rule)

		h.Reset(99)
		assert.Equal(t, 0, h.Round())
		assert.Equal(t, 0, h.Occupied(), "reset should restore the loaded layout")
	}
}

func TestHallRejectsUnknownRule(t *testing.T) {
	c := DefaultConfig()
	c.Rule = "knight"
	_, err := New(c)
	assert.Error(t, err)
}

func TestRandomHallDeterministic(t *testing.T) {
	c := DefaultConfig()
	c.Width, c.Height = 24, 16
	h, err := New(c)
	require.NoError(t, err)

	first := slices.Clone(h.Cells())
	h.Step()
	h.Reset(0)
	assert.Equal(t, first, h.Cells(), "reset with the configured seed must be deterministic")

	h.Reset(4242)
	other := slices.Clone(h.Cells())
	h.Reset(4242)
	assert.Equal(t, other, h.Cells())
	assert.NotEqual(t, first, other, "different seeds should give different halls")
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{
		"w":           "12",
		"h":           "-3",
		"rule":        "visible",
		"threshold":   "6",
		"seat_chance": "0.25",
		"seed":        "7",
		"layout":      "hall.txt",
	})
	assert.Equal(t, 12, c.Width)
	assert.Equal(t, DefaultConfig().Height, c.Height)
	assert.Equal(t, "visible", c.Rule)
	assert.Equal(t, 6, c.Threshold)
	assert.Equal(t, 0.25, c.SeatChance)
	assert.Equal(t, int64(7), c.Seed)
	assert.Equal(t, "hall.txt", c.Layout)
	assert.Equal(t, DefaultConfig(), FromMap(nil))
}

func TestRegistryBuildsBothRules(t *testing.T) {
	for _, name := range []string{"seats", "seats-visible"} {
		f, ok := core.Sims()[name]
		require.True(t, ok, "%s not registered", name)
		sim, err := f(map[string]string{"w": "8", "h": "8"})
		require.NoError(t, err)
		assert.Equal(t, core.Size{W: 8, H: 8}, sim.Size())
		_, ok = sim.(core.Stabilizer)
		assert.True(t, ok)
	}
	assert.Contains(t, core.SimNames(), "seats-visible")
}

func TestWatchers(t *testing.T) {
	g := layout.MustParse(waitingArea)

	adj := NewFromGrid(g, seating.AdjacentRule)
	assert.Len(t, adj.Watchers(0, 0), 3)
	assert.Len(t, adj.Watchers(5, 5), 8)
	assert.Nil(t, adj.Watchers(-1, 0))

	vis := NewFromGrid(g, seating.VisibleRule)
	seen := vis.Watchers(0, 0)
	assert.Contains(t, seen, core.Pt(0, 2))
	assert.NotContains(t, seen, core.Pt(0, 1), "floor is never watched")
}

func TestParametersReportProgress(t *testing.T) {
	h := NewFromGrid(layout.MustParse(waitingArea), seating.AdjacentRule)
	runToFixedPoint(t, h)

	values := map[string]string{}
	for _, group := range h.Parameters().Groups {
		for _, p := range group.Params {
			values[p.Key] = p.Value
		}
	}
	assert.Equal(t, "37", values["occupied"])
	assert.Equal(t, "true", values["stable"])
	assert.Equal(t, "adjacent", values["rule"])
	assert.Equal(t, "4", values["threshold"])
	assert.Len(t, h.Palette(), 3)
	assert.NotContains(t, values, "seats", "adjacent rule has no visibility map")

	v := NewFromGrid(layout.MustParse(waitingArea), seating.VisibleRule)
	values = map[string]string{}
	for _, group := range v.Parameters().Groups {
		for _, p := range group.Params {
			values[p.Key] = p.Value
		}
	}
	assert.Equal(t, "71", values["seats"])
}
