package pipeline

import (
	"errors"
	"testing"

	"github.com/recode-cli/recode/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestReplaceFile(t *testing.T) {
	Convey("replaceFile", t, func() {
		filesystem.SetMemMapFs()
		defer filesystem.SetOsFs()

		fs := filesystem.API()
		lo.Must0(fs.WriteFile("/lib/ep.avi", []byte("original"), 0644))
		lo.Must0(fs.WriteFile("/tmp/ep.mkv", []byte("converted"), 0644))

		Convey("Swaps the converted file in and drops the original", func() {
			err := replaceFile("/lib/ep.avi", "/tmp/ep.mkv", "/lib/ep.mkv")
			So(err, ShouldBeNil)

			So(string(lo.Must(fs.ReadFile("/lib/ep.mkv"))), ShouldEqual, "converted")
			So(lo.Must(fs.Exists("/lib/ep.avi")), ShouldBeFalse)
			So(lo.Must(fs.Exists("/lib/ep.avi.bak")), ShouldBeFalse)
		})

		Convey("Overwrites in place when the original already ends in .mkv", func() {
			lo.Must0(fs.WriteFile("/lib/done.mkv", []byte("original"), 0644))
			lo.Must0(fs.WriteFile("/tmp/done.mkv", []byte("converted"), 0644))

			err := replaceFile("/lib/done.mkv", "/tmp/done.mkv", "/lib/done.mkv")
			So(err, ShouldBeNil)
			So(string(lo.Must(fs.ReadFile("/lib/done.mkv"))), ShouldEqual, "converted")
			So(lo.Must(fs.Exists("/lib/done.mkv.bak")), ShouldBeFalse)
		})

		Convey("Keeps the original when the move fails", func() {
			originalMove := move
			defer func() { move = originalMove }()
			move = func(src, dst string) error {
				return errors.New("no space left on device")
			}

			err := replaceFile("/lib/ep.avi", "/tmp/ep.mkv", "/lib/ep.mkv")
			So(err, ShouldNotBeNil)

			So(string(lo.Must(fs.ReadFile("/lib/ep.avi"))), ShouldEqual, "original")
			So(lo.Must(fs.Exists("/lib/ep.avi.bak")), ShouldBeFalse)
			So(lo.Must(fs.Exists("/lib/ep.mkv")), ShouldBeFalse)
		})
	})
}

func TestMoveFile(t *testing.T) {
	Convey("moveFile", t, func() {
		filesystem.SetMemMapFs()
		defer filesystem.SetOsFs()

		fs := filesystem.API()
		lo.Must0(fs.WriteFile("/tmp/converted.mkv", []byte("video"), 0644))

		Convey("Moves the file to its destination", func() {
			err := moveFile("/tmp/converted.mkv", "/library/episode.mkv")
			So(err, ShouldBeNil)

			content := lo.Must(fs.ReadFile("/library/episode.mkv"))
			So(string(content), ShouldEqual, "video")

			exists := lo.Must(fs.Exists("/tmp/converted.mkv"))
			So(exists, ShouldBeFalse)
		})

		Convey("Errors when the source is missing", func() {
			err := moveFile("/tmp/nope.mkv", "/library/episode.mkv")
			So(err, ShouldNotBeNil)
		})
	})
}
