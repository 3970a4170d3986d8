package seating

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"seatca/internal/core"
)

// ErrNoConvergence is returned when a layout is still changing after the
// configured round limit.
var ErrNoConvergence = errors.New("seating: layout did not stabilize")

// Result is the outcome of running a layout to its fixed point.
type Result struct {
	Grid     *core.Grid
	Rounds   int
	Occupied int
}

// Session owns one simulation: the current layout, the rule and the strategy
// built for the layout's geometry.
type Session struct {
	rule     Rule
	strategy Strategy
	initial  *core.Grid
	grid     *core.Grid
	round    int
	stable   bool
	log      logrus.FieldLogger
}

// NewSession starts a simulation from a copy of g. The rule's strategy is
// built here, once.
func NewSession(g *core.Grid, rule Rule) *Session {
	s := &Session{
		rule:    rule,
		initial: g.Clone(),
	}
	s.strategy = rule.NewStrategy(s.initial)
	s.grid = s.initial.Clone()
	return s
}

// WithLogger attaches a logger that receives one debug entry per round.
func (s *Session) WithLogger(l logrus.FieldLogger) *Session {
	s.log = l
	return s
}

// Visibility returns the precomputed map when the session runs a visible
// rule, nil otherwise.
func (s *Session) Visibility() *VisibilityMap {
	if v, ok := s.strategy.(Visible); ok {
		return v.Map
	}
	return nil
}

// Grid returns the current layout. Callers must not modify it.
func (s *Session) Grid() *core.Grid { return s.grid }

// Round returns the number of rounds applied so far.
func (s *Session) Round() int { return s.round }

// Stable reports whether the last round changed nothing.
func (s *Session) Stable() bool { return s.stable }

// Reset discards progress and returns to the initial layout.
func (s *Session) Reset() {
	s.grid = s.initial.Clone()
	s.round = 0
	s.stable = false
}

// Advance applies one round and reports whether any seat changed. A stable
// session is left untouched.
func (s *Session) Advance() bool {
	if s.stable {
		return false
	}
	next, changed := Step(s.grid, s.strategy, s.rule.Threshold)
	s.grid = next
	s.round++
	s.stable = !changed
	if s.log != nil {
		s.log.WithFields(logrus.Fields{
			"rule":    s.rule.Name,
			"round":   s.round,
			"changed": changed,
		}).Debug("round applied")
	}
	return changed
}

// Run advances until the layout is stable. A positive maxRounds bounds the
// number of rounds; exceeding it returns ErrNoConvergence together with the
// partial result.
func (s *Session) Run(maxRounds int) (Result, error) {
	for !s.stable {
		if maxRounds > 0 && s.round >= maxRounds {
			return s.result(), fmt.Errorf("%w after %d rounds (rule %s)", ErrNoConvergence, s.round, s.rule.Name)
		}
		s.Advance()
	}
	return s.result(), nil
}

func (s *Session) result() Result {
	return Result{Grid: s.grid, Rounds: s.round, Occupied: CountOccupied(s.grid)}
}

// Stabilize runs g under rule with no round limit.
func Stabilize(g *core.Grid, rule Rule) Result {
	res, _ := NewSession(g, rule).Run(0)
	return res
}

// StabilizeAdjacent returns the occupied seat count once g settles under the
// adjacent rule.
func StabilizeAdjacent(g *core.Grid) int { return Stabilize(g, AdjacentRule).Occupied }

// StabilizeVisible returns the occupied seat count once g settles under the
// visible-seat rule.
func StabilizeVisible(g *core.Grid) int { return Stabilize(g, VisibleRule).Occupied }
