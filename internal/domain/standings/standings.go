// Package standings orders projected results by the championship
// tie-break rule and classifies the outcome.
package standings

import (
	"sort"

	"github.com/okian/clincher/internal/domain/points"
)

// Outcome is a classified championship projection. Champion and
// RunnerUp are nil when the input has fewer than one or two results.
// Tie is true only for a genuine unresolved championship: the top two
// are equal on points, wins, and podiums. The name tie-break used for
// display ordering never clears it.
type Outcome struct {
	Ranked   []points.Result
	Champion *points.Result
	RunnerUp *points.Result
	Tie      bool
}

// Rank returns the results ordered by the championship comparator:
// points descending, then wins, then podiums, with name ascending as a
// final deterministic tie-break. The input slice is not modified.
func Rank(results []points.Result) []points.Result {
	ranked := append([]points.Result(nil), results...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return less(ranked[i], ranked[j])
	})
	return ranked
}

// less is the pairwise championship comparator. It is total: any two
// results are ordered, falling through to names so the output order is
// reproducible even when the championship itself is tied.
func less(a, b points.Result) bool {
	if a.Points != b.Points {
		return a.Points > b.Points
	}
	if a.Wins != b.Wins {
		return a.Wins > b.Wins
	}
	if a.Podiums != b.Podiums {
		return a.Podiums > b.Podiums
	}
	return a.Name < b.Name
}

// Classify reads the champion and runner-up off an already ranked
// sequence and flags a tie. With fewer than two results there is no
// runner-up and no tie.
func Classify(ranked []points.Result) Outcome {
	out := Outcome{Ranked: ranked}
	if len(ranked) == 0 {
		return out
	}
	champion := ranked[0]
	out.Champion = &champion
	if len(ranked) < 2 {
		return out
	}
	second := ranked[1]
	out.RunnerUp = &second
	out.Tie = champion.Points == second.Points &&
		champion.Wins == second.Wins &&
		champion.Podiums == second.Podiums
	return out
}
