package seating

import (
	"fmt"
	"strings"

	"seatca/internal/core"
)

// Rule pairs a neighbor strategy with the threshold at which an occupied seat
// is abandoned.
type Rule struct {
	Name      string
	Threshold int
	// NewStrategy is called once per simulation with the initial layout.
	NewStrategy func(g *core.Grid) Strategy
}

// AdjacentRule abandons a seat with four or more occupied neighbors.
var AdjacentRule = Rule{
	Name:        "adjacent",
	Threshold:   4,
	NewStrategy: func(*core.Grid) Strategy { return Adjacent{} },
}

// VisibleRule abandons a seat with five or more occupied visible seats.
var VisibleRule = Rule{
	Name:        "visible",
	Threshold:   5,
	NewStrategy: func(g *core.Grid) Strategy { return NewVisible(g) },
}

// Rules lists the built-in rules.
func Rules() []Rule { return []Rule{AdjacentRule, VisibleRule} }

// RuleByName looks up a built-in rule, ignoring case.
func RuleByName(name string) (Rule, error) {
	for _, r := range Rules() {
		if strings.EqualFold(r.Name, name) {
			return r, nil
		}
	}
	return Rule{}, fmt.Errorf("seating: unknown rule %q", name)
}

// WithThreshold returns a copy of r using threshold n. Non-positive values
// keep the rule's own threshold.
func (r Rule) WithThreshold(n int) Rule {
	if n > 0 {
		r.Threshold = n
	}
	return r
}
