package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/recode-cli/recode/filesystem"
	"github.com/recode-cli/recode/media"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

// stubProbe answers probes from a fixed table, erroring for unknown paths.
func stubProbe(infos map[string]*media.Info) func(context.Context, string) (*media.Info, error) {
	return func(_ context.Context, path string) (*media.Info, error) {
		if info, ok := infos[path]; ok {
			return info, nil
		}
		return nil, errors.New("probe failed")
	}
}

func TestOutputName(t *testing.T) {
	Convey("outputName", t, func() {
		So(outputName("/in/Show.S01E01.x264.mp4"), ShouldEqual, "Show.S01E01.x265.mkv")
		So(outputName("/in/Show.S01E01.avi"), ShouldEqual, "Show.S01E01.mkv")
	})
}

func TestPlan(t *testing.T) {
	Convey("Plan", t, func() {
		filesystem.SetMemMapFs()
		defer filesystem.SetOsFs()

		originalProbe := probe
		defer func() { probe = originalProbe }()

		probe = stubProbe(map[string]*media.Info{
			"/src/Show.S01E01.mp4":       {Path: "/src/Show.S01E01.mp4", Codec: "h264", Duration: 100},
			"/src/extra/Show.S02E01.mkv": {Path: "/src/extra/Show.S02E01.mkv", Codec: "h264", Duration: 100},
			"/src/Already.S01E02.mkv":    {Path: "/src/Already.S01E02.mkv", Codec: "hevc", Duration: 100},
			"/src/NoToken.mkv":           {Path: "/src/NoToken.mkv", Codec: "mpeg4", Duration: 100},
		})

		opts := PlanOptions{
			SourceFolder:     "/src",
			TargetFolder:     "/dst",
			AcceptableCodecs: []string{"hevc"},
		}

		Convey("Routes outputs into season folders", func() {
			jobs, err := Plan(context.Background(), []string{"/src/Show.S01E01.mp4", "/src/NoToken.mkv"}, opts, NopTracker{})
			So(err, ShouldBeNil)
			So(jobs, ShouldResemble, []Job{
				{Input: "/src/Show.S01E01.mp4", Output: "/dst/S01/Show.S01E01.mkv"},
				{Input: "/src/NoToken.mkv", Output: "/dst/Unknown/NoToken.mkv"},
			})

			So(lo.Must(filesystem.API().IsDir("/dst/S01")), ShouldBeTrue)
			So(lo.Must(filesystem.API().IsDir("/dst/Unknown")), ShouldBeTrue)
		})

		Convey("Mirrors the source layout when KeepFolder is set", func() {
			kept := opts
			kept.KeepFolder = true

			jobs, err := Plan(context.Background(), []string{"/src/extra/Show.S02E01.mkv"}, kept, NopTracker{})
			So(err, ShouldBeNil)
			So(jobs, ShouldResemble, []Job{
				{Input: "/src/extra/Show.S02E01.mkv", Output: "/dst/extra/Show.S02E01.mkv"},
			})
		})

		Convey("Skips files already in the target codec", func() {
			jobs, err := Plan(context.Background(), []string{"/src/Already.S01E02.mkv"}, opts, NopTracker{})
			So(err, ShouldBeNil)
			So(jobs, ShouldBeEmpty)

			Convey("Unless Reencode is set", func() {
				re := opts
				re.Reencode = true
				jobs, err := Plan(context.Background(), []string{"/src/Already.S01E02.mkv"}, re, NopTracker{})
				So(err, ShouldBeNil)
				So(jobs, ShouldHaveLength, 1)
			})
		})

		Convey("Skips files that fail probing", func() {
			jobs, err := Plan(context.Background(), []string{"/src/missing.mkv"}, opts, NopTracker{})
			So(err, ShouldBeNil)
			So(jobs, ShouldBeEmpty)
		})

		Convey("Skips existing outputs when Resume is set", func() {
			lo.Must0(filesystem.API().WriteFile("/dst/S01/Show.S01E01.mkv", []byte("done"), 0644))

			resume := opts
			resume.Resume = true
			jobs, err := Plan(context.Background(), []string{"/src/Show.S01E01.mp4"}, resume, NopTracker{})
			So(err, ShouldBeNil)
			So(jobs, ShouldBeEmpty)
		})
	})
}

func TestFilterConvertible(t *testing.T) {
	Convey("FilterConvertible", t, func() {
		originalProbe := probe
		defer func() { probe = originalProbe }()

		probe = stubProbe(map[string]*media.Info{
			"/lib/a.mkv": {Path: "/lib/a.mkv", Codec: "h264", Duration: 100},
			"/lib/b.mkv": {Path: "/lib/b.mkv", Codec: "hevc", Duration: 100},
		})

		files := []string{"/lib/a.mkv", "/lib/b.mkv", "/lib/broken.mkv"}
		convertible := FilterConvertible(context.Background(), files, []string{"hevc"}, NopTracker{})
		So(convertible, ShouldResemble, []string{"/lib/a.mkv"})
	})
}
