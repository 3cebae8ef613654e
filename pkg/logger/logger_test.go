package logger_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/okian/clincher/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLogger(t *testing.T) {
	Convey("Given an initialized global logger", t, func() {
		So(logger.Init(), ShouldBeNil)
		ctx := context.Background()

		Convey("When fetching the global logger", func() {
			log := logger.Get()

			Convey("Then it accepts all levels without panicking", func() {
				So(func() {
					log.Debug(ctx, "debug msg", logger.String("k", "v"))
					log.Info(ctx, "info msg", logger.Int("n", 1), logger.Bool("ok", true))
					log.Warn(ctx, "warn msg", logger.Uint64("u", 7), logger.Float64("f", 0.5))
					log.Error(ctx, "error msg", logger.Error(errors.New("boom")), logger.Any("x", nil))
				}, ShouldNotPanic)
			})
		})

		Convey("When deriving a named logger", func() {
			named := logger.Named("standings")

			Convey("Then it logs without panicking", func() {
				So(func() { named.Info(ctx, "named msg") }, ShouldNotPanic)
			})
		})

		Convey("When changing the level by string", func() {
			So(logger.SetLevelString("debug"), ShouldBeNil)
			So(logger.SetLevelString("WARN"), ShouldBeNil)
			So(logger.SetLevelString(" error "), ShouldBeNil)
			So(logger.SetLevelString(""), ShouldBeNil)

			Convey("And an unknown level is rejected", func() {
				So(logger.SetLevelString("loud"), ShouldNotBeNil)
			})

			logger.SetLevel(slog.LevelInfo)
		})

		Convey("When syncing", func() {
			So(logger.Sync(), ShouldBeNil)
		})
	})
}

func TestFieldConstructors(t *testing.T) {
	Convey("Given the field constructors", t, func() {
		Convey("Then keys and values round-trip", func() {
			So(logger.String("a", "b"), ShouldResemble, logger.Field{Key: "a", Value: "b"})
			So(logger.Int("n", 3), ShouldResemble, logger.Field{Key: "n", Value: 3})
			So(logger.Bool("ok", true), ShouldResemble, logger.Field{Key: "ok", Value: true})
			So(logger.Error(nil).Key, ShouldEqual, "error")
		})
	})
}
