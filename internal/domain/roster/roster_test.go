package roster_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/okian/clincher/internal/domain/roster"
	. "github.com/smartystreets/goconvey/convey"
)

const sampleYAML = `
contenders:
  - id: verstappen
    name: Max Verstappen
    team: Red Bull Racing
    points: 393
    wins: 9
    podiums: 14
    title_fight: true
  - id: norris
    name: Lando Norris
    team: McLaren
    points: 371
    wins: 4
    podiums: 13
    title_fight: true
  - id: sainz
    name: Carlos Sainz
    team: Ferrari
    points: 290
    wins: 2
    podiums: 9
`

func TestParse(t *testing.T) {
	Convey("Given a YAML roster document", t, func() {
		Convey("When parsing a valid document", func() {
			list, err := roster.Parse([]byte(sampleYAML))
			So(err, ShouldBeNil)

			Convey("Then contenders load in document order", func() {
				So(list, ShouldHaveLength, 3)
				So(list[0].ID, ShouldEqual, "verstappen")
				So(list[0].Points, ShouldEqual, 393)
				So(list[2].TitleFight, ShouldBeFalse)
			})
		})

		Convey("When the document is not YAML", func() {
			_, err := roster.Parse([]byte("{nope"))

			Convey("Then loading fails with the load kind", func() {
				So(err, ShouldWrap, roster.ErrLoadRoster)
			})
		})
	})
}

func TestLoad(t *testing.T) {
	Convey("Given a roster file on disk", t, func() {
		dir := t.TempDir()
		path := filepath.Join(dir, "roster.yaml")
		So(os.WriteFile(path, []byte(sampleYAML), 0o600), ShouldBeNil)

		Convey("When loading it", func() {
			list, err := roster.Load(path)

			Convey("Then the roster parses", func() {
				So(err, ShouldBeNil)
				So(list, ShouldHaveLength, 3)
			})
		})

		Convey("When the file is missing", func() {
			_, err := roster.Load(filepath.Join(dir, "missing.yaml"))

			Convey("Then loading fails with the load kind", func() {
				So(err, ShouldWrap, roster.ErrLoadRoster)
			})
		})
	})
}

func TestValidate(t *testing.T) {
	Convey("Given rosters with invariant violations", t, func() {
		Convey("Then an empty roster is rejected", func() {
			So(roster.Validate(nil), ShouldWrap, roster.ErrEmptyRoster)
		})

		Convey("And a missing id is rejected", func() {
			err := roster.Validate([]roster.Contender{{Name: "Ghost"}})
			So(err, ShouldWrap, roster.ErrMissingID)
		})

		Convey("And duplicate ids are rejected", func() {
			err := roster.Validate([]roster.Contender{
				{ID: "x", Name: "One"},
				{ID: "x", Name: "Two"},
			})
			So(err, ShouldWrap, roster.ErrDuplicateID)
		})

		Convey("And negative totals are rejected", func() {
			err := roster.Validate([]roster.Contender{{ID: "x", Points: -1}})
			So(err, ShouldWrap, roster.ErrNegativeTotal)
		})
	})
}

func TestTrackedAndDefault(t *testing.T) {
	Convey("Given the built-in sample roster", t, func() {
		list := roster.Default()

		Convey("Then it passes validation", func() {
			So(roster.Validate(list), ShouldBeNil)
		})

		Convey("And exactly three contenders are in the title fight", func() {
			So(roster.Tracked(list), ShouldHaveLength, 3)
		})

		Convey("And Tracked preserves roster order", func() {
			tracked := roster.Tracked(list)
			So(tracked[0].ID, ShouldEqual, "verstappen")
			So(tracked[1].ID, ShouldEqual, "norris")
			So(tracked[2].ID, ShouldEqual, "leclerc")
		})
	})
}
