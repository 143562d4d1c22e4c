package media

import (
	"testing"

	"github.com/recode-cli/recode/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSuffixSet(t *testing.T) {
	Convey("SuffixSet", t, func() {
		Convey("Normalizes entries to dotted lower case", func() {
			set := SuffixSet([]string{"mkv", ".MP4", " avi "})
			So(set, ShouldContainKey, ".mkv")
			So(set, ShouldContainKey, ".mp4")
			So(set, ShouldContainKey, ".avi")
		})

		Convey("Skips empty entries", func() {
			set := SuffixSet([]string{"", "  "})
			So(set, ShouldBeEmpty)
		})
	})
}

func TestFindVideos(t *testing.T) {
	Convey("FindVideos", t, func() {
		filesystem.SetMemMapFs()
		defer filesystem.SetOsFs()

		fs := filesystem.API()
		for _, path := range []string{
			"/library/Show.S01E01.mkv",
			"/library/sub/Show.S01E02.mp4",
			"/library/sub/notes.txt",
			"/library/cover.jpg",
		} {
			lo.Must0(fs.WriteFile(path, []byte("x"), 0644))
		}

		suffixes := SuffixSet([]string{"mkv", "mp4"})

		Convey("Collects only video suffixes, recursively and sorted", func() {
			found, err := FindVideos("/library", suffixes)
			So(err, ShouldBeNil)
			So(found, ShouldResemble, []string{
				"/library/Show.S01E01.mkv",
				"/library/sub/Show.S01E02.mp4",
			})
		})

		Convey("Errors on a missing root", func() {
			_, err := FindVideos("/nowhere", suffixes)
			So(err, ShouldNotBeNil)
		})
	})
}
