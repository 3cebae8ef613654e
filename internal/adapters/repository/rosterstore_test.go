package repository_test

import (
	"context"
	"testing"

	repository "github.com/okian/clincher/internal/adapters/repository"
	"github.com/okian/clincher/internal/domain/roster"
	. "github.com/smartystreets/goconvey/convey"
)

func seedRoster() []roster.Contender {
	return []roster.Contender{
		{ID: "a", Name: "A", Points: 350, TitleFight: true},
		{ID: "b", Name: "B", Points: 346, TitleFight: true},
		{ID: "c", Name: "C", Points: 330, TitleFight: true},
		{ID: "d", Name: "D", Points: 200},
	}
}

func TestRosterStore(t *testing.T) {
	Convey("Given a seeded roster store", t, func() {
		ctx := context.Background()
		store := repository.NewRosterStore(seedRoster())

		Convey("When listing", func() {
			list := store.List(ctx)

			Convey("Then roster order is preserved", func() {
				So(list, ShouldHaveLength, 4)
				So(list[0].ID, ShouldEqual, "a")
				So(list[3].ID, ShouldEqual, "d")
			})

			Convey("And mutating the returned slice does not touch the store", func() {
				list[0].Points = 0
				fresh, err := store.Get(ctx, "a")
				So(err, ShouldBeNil)
				So(fresh.Points, ShouldEqual, 350)
			})
		})

		Convey("When getting by id", func() {
			c, err := store.Get(ctx, "b")
			So(err, ShouldBeNil)
			So(c.Name, ShouldEqual, "B")

			Convey("And an unknown id returns ErrNotFound", func() {
				_, err := store.Get(ctx, "nobody")
				So(err, ShouldWrap, repository.ErrNotFound)
			})
		})

		Convey("When reading the tracked set", func() {
			tracked := store.Tracked(ctx)

			Convey("Then only title-fight contenders appear, in order", func() {
				So(tracked, ShouldHaveLength, 3)
				So(tracked[0].ID, ShouldEqual, "a")
				So(tracked[2].ID, ShouldEqual, "c")
			})
		})

		Convey("When replacing the roster", func() {
			before := store.Version(ctx)
			err := store.Replace(ctx, []roster.Contender{
				{ID: "x", Name: "X", TitleFight: true},
			})
			So(err, ShouldBeNil)

			Convey("Then the version increases and reads see the new roster", func() {
				So(store.Version(ctx), ShouldBeGreaterThan, before)
				So(store.Count(ctx), ShouldEqual, 1)
			})

			Convey("And an invalid roster is rejected without replacing", func() {
				err := store.Replace(ctx, nil)
				So(err, ShouldWrap, roster.ErrEmptyRoster)
				So(store.Count(ctx), ShouldEqual, 1)
			})
		})
	})
}

func TestAnalysisCache(t *testing.T) {
	Convey("Given an analysis cache", t, func() {
		cache, err := repository.NewAnalysisCache[string](2)
		So(err, ShouldBeNil)

		Convey("When adding entries", func() {
			cache.Add(cache.Key(1, "a"), "first")
			cache.Add(cache.Key(1, "b"), "second")

			Convey("Then they can be recalled by key", func() {
				v, ok := cache.Get(cache.Key(1, "a"))
				So(ok, ShouldBeTrue)
				So(v, ShouldEqual, "first")
			})

			Convey("And a bumped roster version misses", func() {
				_, ok := cache.Get(cache.Key(2, "a"))
				So(ok, ShouldBeFalse)
			})

			Convey("And the LRU bound evicts the oldest entry", func() {
				cache.Add(cache.Key(1, "c"), "third")
				So(cache.Len(), ShouldEqual, 2)
				_, ok := cache.Get(cache.Key(1, "a"))
				So(ok, ShouldBeFalse)
			})

			Convey("And Purge drops everything", func() {
				cache.Purge()
				So(cache.Len(), ShouldEqual, 0)
			})
		})
	})
}
