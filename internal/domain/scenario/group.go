package scenario

import (
	"fmt"
	"sort"
	"strings"

	"github.com/okian/clincher/internal/domain/points"
	"github.com/okian/clincher/internal/domain/roster"
)

// Group summarizes every winning scenario sharing one target finish as
// a single constraint on the rivals.
type Group struct {
	// Position is the target's finish for this bucket.
	Position points.Finish
	// Label renders Position for display: "P2" or "No Points".
	Label string
	// Description joins one constraint per rival, e.g.
	// "Lando Norris finishes P4 or lower AND Charles Leclerc finishes P5 or lower".
	Description string
	// Scenarios is the number of raw combinations in the bucket.
	Scenarios int
}

// Summarize buckets winning scenarios by the target's finishing
// position and reduces each bucket to the minimum (best) position each
// rival may take. Buckets ascend numerically with the no-points
// sentinel last; rivals keep their roster order in the description.
//
// The per-rival minimum is a documented approximation: points are
// non-increasing with position, so a rival finishing worse than its
// bucket minimum keeps the target champion for SOME assignment of the
// other rival, but the collision rule can remove specific worse
// combinations. The summary may therefore slightly overstate the
// achievable range; it is not a Pareto-minimal constraint set.
func Summarize(targetID string, rivals []roster.Contender, scenarios []Scenario) []Group {
	buckets := make(map[points.Finish][]Scenario)
	for _, s := range scenarios {
		pos := s.Finishes[targetID]
		buckets[pos] = append(buckets[pos], s)
	}

	positions := make([]points.Finish, 0, len(buckets))
	for pos := range buckets {
		positions = append(positions, pos)
	}
	sort.Slice(positions, func(i, j int) bool {
		return positions[i].Order() < positions[j].Order()
	})

	groups := make([]Group, 0, len(positions))
	for _, pos := range positions {
		bucket := buckets[pos]
		groups = append(groups, Group{
			Position:    pos,
			Label:       pos.Label(),
			Description: describe(rivals, bucket),
			Scenarios:   len(bucket),
		})
	}
	return groups
}

// describe renders the per-rival constraints for one bucket.
func describe(rivals []roster.Contender, bucket []Scenario) string {
	parts := make([]string, 0, len(rivals))
	for _, rival := range rivals {
		best := bestFinish(rival.ID, bucket)
		if best.Scoring() {
			parts = append(parts, fmt.Sprintf("%s finishes %s or lower", rival.Name, best.Label()))
		} else {
			parts = append(parts, fmt.Sprintf("%s scores no points", rival.Name))
		}
	}
	return strings.Join(parts, " AND ")
}

// bestFinish returns the closest-to-first finish a rival takes across
// the bucket.
func bestFinish(rivalID string, bucket []Scenario) points.Finish {
	best := points.NoPoints
	for i, s := range bucket {
		f := s.Finishes[rivalID]
		if i == 0 || f.Order() < best.Order() {
			best = f
		}
	}
	return best
}
