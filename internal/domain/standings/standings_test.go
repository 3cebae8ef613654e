package standings_test

import (
	"testing"

	"github.com/okian/clincher/internal/domain/points"
	"github.com/okian/clincher/internal/domain/standings"
	. "github.com/smartystreets/goconvey/convey"
)

func TestRank(t *testing.T) {
	Convey("Given projected results", t, func() {
		Convey("When points differ", func() {
			ranked := standings.Rank([]points.Result{
				{Name: "B", Points: 371, Wins: 5, Podiums: 10},
				{Name: "A", Points: 368, Wins: 5, Podiums: 11},
			})

			Convey("Then points decide regardless of wins or podiums", func() {
				So(ranked[0].Name, ShouldEqual, "B")
				So(ranked[1].Name, ShouldEqual, "A")
			})
		})

		Convey("When points are equal", func() {
			ranked := standings.Rank([]points.Result{
				{Name: "A", Points: 400, Wins: 4, Podiums: 12},
				{Name: "B", Points: 400, Wins: 6, Podiums: 10},
			})

			Convey("Then wins break the tie", func() {
				So(ranked[0].Name, ShouldEqual, "B")
			})
		})

		Convey("When points and wins are equal", func() {
			ranked := standings.Rank([]points.Result{
				{Name: "A", Points: 400, Wins: 5, Podiums: 10},
				{Name: "B", Points: 400, Wins: 5, Podiums: 12},
			})

			Convey("Then podiums break the tie", func() {
				So(ranked[0].Name, ShouldEqual, "B")
			})
		})

		Convey("When everything is equal", func() {
			ranked := standings.Rank([]points.Result{
				{Name: "Zeta", Points: 400, Wins: 5, Podiums: 10},
				{Name: "Alpha", Points: 400, Wins: 5, Podiums: 10},
			})

			Convey("Then names order the output deterministically", func() {
				So(ranked[0].Name, ShouldEqual, "Alpha")
				So(ranked[1].Name, ShouldEqual, "Zeta")
			})
		})

		Convey("When ranking any pair", func() {
			results := []points.Result{
				{Name: "A", Points: 400, Wins: 5, Podiums: 10},
				{Name: "B", Points: 400, Wins: 5, Podiums: 10},
				{Name: "C", Points: 390, Wins: 6, Podiums: 10},
				{Name: "D", Points: 390, Wins: 6, Podiums: 9},
			}

			Convey("Then the order is total and reproducible", func() {
				first := standings.Rank(results)
				second := standings.Rank(results)
				So(first, ShouldResemble, second)
				So(len(first), ShouldEqual, len(results))
			})

			Convey("And the input slice is untouched", func() {
				_ = standings.Rank(results)
				So(results[0].Name, ShouldEqual, "A")
				So(results[3].Name, ShouldEqual, "D")
			})
		})
	})
}

func TestClassify(t *testing.T) {
	Convey("Given ranked results", t, func() {
		Convey("When the leader is clear", func() {
			outcome := standings.Classify(standings.Rank([]points.Result{
				{ID: "a", Name: "A", Points: 368, Wins: 5, Podiums: 11},
				{ID: "b", Name: "B", Points: 371, Wins: 5, Podiums: 10},
			}))

			Convey("Then the champion and runner-up are identified", func() {
				So(outcome.Champion, ShouldNotBeNil)
				So(outcome.Champion.ID, ShouldEqual, "b")
				So(outcome.RunnerUp, ShouldNotBeNil)
				So(outcome.RunnerUp.ID, ShouldEqual, "a")
				So(outcome.Tie, ShouldBeFalse)
			})
		})

		Convey("When the top two match on points, wins and podiums", func() {
			outcome := standings.Classify(standings.Rank([]points.Result{
				{ID: "a", Name: "A", Points: 118, Wins: 3, Podiums: 5},
				{ID: "b", Name: "B", Points: 118, Wins: 3, Podiums: 5},
			}))

			Convey("Then a genuine tie is reported", func() {
				So(outcome.Tie, ShouldBeTrue)
			})

			Convey("And the name tie-break still orders the output", func() {
				So(outcome.Champion.Name, ShouldEqual, "A")
				So(outcome.RunnerUp.Name, ShouldEqual, "B")
			})
		})

		Convey("When equal points resolve on wins", func() {
			outcome := standings.Classify(standings.Rank([]points.Result{
				{ID: "a", Points: 118, Wins: 4, Podiums: 5},
				{ID: "b", Points: 118, Wins: 3, Podiums: 5},
			}))

			Convey("Then no tie is reported", func() {
				So(outcome.Tie, ShouldBeFalse)
				So(outcome.Champion.ID, ShouldEqual, "a")
			})
		})

		Convey("When only one result exists", func() {
			outcome := standings.Classify(standings.Rank([]points.Result{
				{ID: "a", Points: 100},
			}))

			Convey("Then there is a champion but no runner-up and no tie", func() {
				So(outcome.Champion, ShouldNotBeNil)
				So(outcome.RunnerUp, ShouldBeNil)
				So(outcome.Tie, ShouldBeFalse)
			})
		})

		Convey("When no results exist", func() {
			outcome := standings.Classify(nil)

			Convey("Then the outcome is empty", func() {
				So(outcome.Champion, ShouldBeNil)
				So(outcome.RunnerUp, ShouldBeNil)
				So(outcome.Tie, ShouldBeFalse)
			})
		})
	})
}
