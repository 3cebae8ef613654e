// Package scenario exhaustively searches the finishing-position space
// for the tracked title contenders and compresses the winning
// combinations into human-readable constraint groups.
package scenario

import (
	"context"
	"fmt"

	"github.com/okian/clincher/internal/domain/points"
	"github.com/okian/clincher/internal/domain/roster"
	"github.com/okian/clincher/internal/domain/standings"
)

// TrackedContenders is the number of contenders the sweep varies.
const TrackedContenders = 3

// Scenario is one candidate assignment of a finish to each tracked
// contender that leaves the target sole champion.
type Scenario struct {
	// Finishes maps contender id to its hypothetical finish.
	Finishes map[string]points.Finish
}

// Report is the outcome of one exhaustive sweep.
type Report struct {
	TargetID  string
	Scenarios []Scenario
	// Evaluated counts the combinations that were scored; Skipped
	// counts those discarded by the collision rule without scoring.
	Evaluated int
	Skipped   int
}

// Option applies a configuration option to the Explorer.
type Option func(*Explorer)

// WithCalculator replaces the points calculator used to project totals.
func WithCalculator(calc *points.Calculator) Option {
	return func(e *Explorer) {
		if calc != nil {
			e.calc = calc
		}
	}
}

// Explorer runs the exhaustive what-if sweep. It is stateless between
// searches and safe for concurrent use.
type Explorer struct {
	calc *points.Calculator
}

// NewExplorer creates an Explorer with the standard points table.
func NewExplorer(opts ...Option) *Explorer {
	e := &Explorer{calc: points.NewCalculator()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// sweepValues returns the finish values each contender ranges over:
// every scoring position ascending, then the no-points sentinel.
func sweepValues() []points.Finish {
	values := make([]points.Finish, 0, points.ScoringPositions+1)
	for p := 1; p <= points.ScoringPositions; p++ {
		values = append(values, points.Finish(p))
	}
	return append(values, points.NoPoints)
}

// Search enumerates every combination of finishes for the tracked
// contenders and retains those where the target is sole champion.
//
// The full space ((ScoringPositions+1)^3 = 1331 combinations) is always
// swept; combinations assigning one scoring position to two contenders
// are skipped without scoring, since two cars cannot share a finishing
// slot. The no-points sentinel is exempt: any number of contenders may
// fail to score at once. Ties never count as wins for the target.
//
// The sweep order is fixed (target position ascending, then each rival
// in roster order), so the returned scenarios are deterministic. ctx is
// consulted only at combination boundaries; an empty result is a valid
// outcome, not an error.
func (e *Explorer) Search(ctx context.Context, tracked []roster.Contender, targetID string) (Report, error) {
	report := Report{TargetID: targetID}
	if len(tracked) != TrackedContenders {
		return report, fmt.Errorf("%w: got %d", ErrTrackedCount, len(tracked))
	}

	targetIdx := -1
	for i, c := range tracked {
		if c.ID == targetID {
			targetIdx = i
			break
		}
	}
	if targetIdx < 0 {
		return report, fmt.Errorf("%w: %q", ErrTargetNotTracked, targetID)
	}

	// Order the sweep target-first so results ascend by the target's
	// position; rivals keep their roster order after it.
	order := make([]int, 0, TrackedContenders)
	order = append(order, targetIdx)
	for i := range tracked {
		if i != targetIdx {
			order = append(order, i)
		}
	}

	values := sweepValues()
	var assignment [TrackedContenders]points.Finish

	for _, tf := range values {
		assignment[order[0]] = tf
		for _, f1 := range values {
			assignment[order[1]] = f1
			for _, f2 := range values {
				assignment[order[2]] = f2

				if err := ctx.Err(); err != nil {
					return report, err
				}
				if collides(assignment) {
					report.Skipped++
					continue
				}
				report.Evaluated++

				results := make([]points.Result, TrackedContenders)
				for i, c := range tracked {
					results[i] = e.calc.Compute(c, assignment[i])
				}
				outcome := standings.Classify(standings.Rank(results))
				if outcome.Tie || outcome.Champion == nil || outcome.Champion.ID != targetID {
					continue
				}

				finishes := make(map[string]points.Finish, TrackedContenders)
				for i, c := range tracked {
					finishes[c.ID] = assignment[i]
				}
				report.Scenarios = append(report.Scenarios, Scenario{Finishes: finishes})
			}
		}
	}
	return report, nil
}

// collides reports whether two contenders share a scoring position.
// Non-scoring finishes never collide.
func collides(assignment [TrackedContenders]points.Finish) bool {
	for i := 0; i < len(assignment); i++ {
		if !assignment[i].Scoring() {
			continue
		}
		for j := i + 1; j < len(assignment); j++ {
			if assignment[i] == assignment[j] {
				return true
			}
		}
	}
	return false
}
