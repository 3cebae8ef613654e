// Package points computes race points and projected championship
// totals for a single hypothetical finishing position.
package points

import (
	"fmt"

	"github.com/okian/clincher/internal/domain/roster"
)

// Default scoring configuration constants.
const (
	// ScoringPositions is the number of points-paying positions.
	ScoringPositions = 10
	// defaultPodiumDepth is the deepest position that counts as a podium.
	defaultPodiumDepth = 3
)

// NoPoints is the sentinel Finish for any non-scoring classification:
// a DNF or any position outside the scoring zone.
const NoPoints Finish = 0

// Finish is a hypothetical finishing position. Values 1..ScoringPositions
// pay points; NoPoints and anything else score zero but are preserved
// for display.
type Finish int

// Scoring reports whether the finish pays points.
func (f Finish) Scoring() bool {
	return f >= 1 && f <= ScoringPositions
}

// Label renders the finish for display: "P4", "P12", or "No Points".
func (f Finish) Label() string {
	if f <= NoPoints {
		return "No Points"
	}
	return fmt.Sprintf("P%d", int(f))
}

// Order returns a sort key that places every non-scoring finish after
// the scoring zone, so the sentinel sorts last.
func (f Finish) Order() int {
	if f.Scoring() {
		return int(f)
	}
	return ScoringPositions + 1
}

// defaultTable holds the standard points awarded for positions 1..10.
var defaultTable = []int{25, 18, 15, 12, 10, 8, 6, 4, 2, 1}

// Option applies a configuration option to the Calculator.
type Option func(*Calculator)

// WithTable replaces the points table. Index 0 pays the winner. An
// empty table is ignored.
func WithTable(table []int) Option {
	return func(c *Calculator) {
		if len(table) > 0 {
			c.table = append([]int(nil), table...)
		}
	}
}

// WithPodiumDepth sets the deepest position counted as a podium.
func WithPodiumDepth(depth int) Option {
	return func(c *Calculator) {
		if depth > 0 {
			c.podiumDepth = depth
		}
	}
}

// Calculator derives projected totals from a contender's pre-race
// totals and one hypothetical finish. It is pure: no state is read
// beyond its configuration and nothing is mutated.
type Calculator struct {
	table       []int
	podiumDepth int
}

// NewCalculator creates a Calculator with the standard points table.
func NewCalculator(opts ...Option) *Calculator {
	c := &Calculator{
		table:       append([]int(nil), defaultTable...),
		podiumDepth: defaultPodiumDepth,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Result is an enriched projection for one contender. It carries a
// copy of the contender's identity and the projected totals; it never
// references the source roster entry.
type Result struct {
	ID         string
	Name       string
	Team       string
	Finish     Finish
	RacePoints int
	Points     int
	Wins       int
	Podiums    int
}

// Compute projects a contender's totals after finishing at the given
// position. Out-of-range positions and the NoPoints sentinel degrade
// to zero race points rather than erroring; the scenario explorer's
// sentinel encoding depends on this.
func (c *Calculator) Compute(contender roster.Contender, finish Finish) Result {
	race := c.RacePoints(finish)

	r := Result{
		ID:         contender.ID,
		Name:       contender.Name,
		Team:       contender.Team,
		Finish:     finish,
		RacePoints: race,
		Points:     contender.Points + race,
		Wins:       contender.Wins,
		Podiums:    contender.Podiums,
	}
	if finish == 1 {
		r.Wins++
	}
	if finish >= 1 && int(finish) <= c.podiumDepth {
		r.Podiums++
	}
	return r
}

// RacePoints returns the points paid for a finish, zero for anything
// outside the table.
func (c *Calculator) RacePoints(finish Finish) int {
	if finish < 1 || int(finish) > len(c.table) {
		return 0
	}
	return c.table[finish-1]
}
