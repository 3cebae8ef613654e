// Package whatif drives offline championship analysis for the CLI:
// it loads a roster, computes manual projections, and prints scenario
// constraint cards as text.
package whatif

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/okian/clincher/internal/domain/points"
	"github.com/okian/clincher/internal/domain/roster"
	"github.com/okian/clincher/internal/domain/scenario"
	"github.com/okian/clincher/internal/domain/standings"
)

// Options configures one CLI run.
type Options struct {
	// RosterPath points at a YAML roster file; empty uses the
	// built-in sample roster.
	RosterPath string
	// Finishes assigns hypothetical positions, e.g. "verstappen=1,norris=2".
	// Unlisted contenders score no points.
	Finishes string
	// Target selects the contender whose winning scenarios to enumerate.
	Target string
	// ShowTable prints the points table and exits.
	ShowTable bool
}

// Runner executes what-if analyses against a roster file.
type Runner struct {
	out      io.Writer
	calc     *points.Calculator
	explorer *scenario.Explorer
}

// NewRunner creates a Runner writing to out.
func NewRunner(out io.Writer) *Runner {
	calc := points.NewCalculator()
	return &Runner{
		out:      out,
		calc:     calc,
		explorer: scenario.NewExplorer(scenario.WithCalculator(calc)),
	}
}

// Run loads the roster and performs the requested analyses.
func (r *Runner) Run(ctx context.Context, opts Options) error {
	if opts.ShowTable {
		r.printPointsTable()
		return nil
	}

	list, err := r.loadRoster(opts.RosterPath)
	if err != nil {
		return err
	}

	if opts.Finishes != "" {
		finishes, err := ParseFinishes(opts.Finishes)
		if err != nil {
			return err
		}
		if err := r.simulate(list, finishes); err != nil {
			return err
		}
	}

	if opts.Target != "" {
		if err := r.analyze(ctx, list, opts.Target); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) loadRoster(path string) ([]roster.Contender, error) {
	if path == "" {
		return roster.Default(), nil
	}
	return roster.Load(path)
}

// simulate ranks the whole roster under the given finishes and prints
// the projected table.
func (r *Runner) simulate(list []roster.Contender, finishes map[string]points.Finish) error {
	for id := range finishes {
		if !hasContender(list, id) {
			return fmt.Errorf("unknown contender %q", id)
		}
	}

	results := make([]points.Result, len(list))
	for i, c := range list {
		results[i] = r.calc.Compute(c, finishes[c.ID])
	}
	outcome := standings.Classify(standings.Rank(results))

	tw := tabwriter.NewWriter(r.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "POS\tNAME\tTEAM\tFINISH\t+PTS\tPOINTS\tWINS\tPODIUMS")
	for i, row := range outcome.Ranked {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\t%d\t%d\t%d\n",
			i+1, row.Name, row.Team, row.Finish.Label(), row.RacePoints, row.Points, row.Wins, row.Podiums)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("render standings: %w", err)
	}

	switch {
	case outcome.Tie:
		fmt.Fprintf(r.out, "\nChampionship TIED between %s and %s\n", outcome.Champion.Name, outcome.RunnerUp.Name)
	case outcome.Champion != nil:
		fmt.Fprintf(r.out, "\nChampion: %s (%d points)\n", outcome.Champion.Name, outcome.Champion.Points)
	}
	return nil
}

// analyze sweeps the full finishing-position space for target and
// prints one constraint card per target position.
func (r *Runner) analyze(ctx context.Context, list []roster.Contender, targetID string) error {
	tracked := roster.Tracked(list)
	report, err := r.explorer.Search(ctx, tracked, targetID)
	if err != nil {
		return err
	}

	var target roster.Contender
	rivals := make([]roster.Contender, 0, len(tracked)-1)
	for _, c := range tracked {
		if c.ID == targetID {
			target = c
		} else {
			rivals = append(rivals, c)
		}
	}
	groups := scenario.Summarize(targetID, rivals, report.Scenarios)

	fmt.Fprintf(r.out, "\n%s wins the title in %d of %d combinations\n",
		target.Name, len(report.Scenarios), report.Evaluated)
	if len(groups) == 0 {
		fmt.Fprintf(r.out, "No scenario exists: %s cannot win the title outright.\n", target.Name)
		return nil
	}
	for _, g := range groups {
		fmt.Fprintf(r.out, "  %s: %s (%d scenarios)\n", g.Label, g.Description, g.Scenarios)
	}
	return nil
}

func (r *Runner) printPointsTable() {
	fmt.Fprintln(r.out, "Points per finishing position:")
	for p := 1; p <= points.ScoringPositions; p++ {
		fmt.Fprintf(r.out, "  P%-2d %d\n", p, r.calc.RacePoints(points.Finish(p)))
	}
}

func hasContender(list []roster.Contender, id string) bool {
	for _, c := range list {
		if c.ID == id {
			return true
		}
	}
	return false
}
