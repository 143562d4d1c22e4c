package media

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSeasonFolder(t *testing.T) {
	Convey("SeasonFolder", t, func() {
		cases := []struct {
			file string
			want string
		}{
			{"Show.S01E01.mkv", "S01"},
			{"Show_S02_E05.mp4", "S02"},
			{"Show-3x10.avi", "S03"},
			{"ShowSeason04Episode12.mkv", "S04"},
			{"Show.E10.S05.mkv", "S05"},
			{"RandomVideo.mkv", "Unknown"},
		}

		for _, c := range cases {
			Convey(c.file, func() {
				So(SeasonFolder(c.file), ShouldEqual, c.want)
			})
		}

		Convey("Matches anywhere in the path", func() {
			So(SeasonFolder("/library/Show/Season 2/Show.2x01.mkv"), ShouldEqual, "S02")
		})
	})
}
