package media

import (
	"context"
	"errors"
	"testing"

	"github.com/recode-cli/recode/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

const hevcProbeOutput = `{
	"streams": [
		{"index": 0, "codec_name": "hevc", "codec_type": "video", "width": 1280, "height": 720},
		{"index": 1, "codec_name": "aac", "codec_type": "audio", "tags": {"language": "ger"}},
		{"index": 2, "codec_name": "subrip", "codec_type": "subtitle", "tags": {"language": "eng"}}
	],
	"format": {"filename": "hevc_aac_de.mp4", "duration": "42.500000"}
}`

const h264ProbeOutput = `{
	"streams": [
		{"index": 0, "codec_name": "h264", "codec_type": "video", "width": 1920, "height": 1080},
		{"index": 1, "codec_name": "mp3", "codec_type": "audio", "tags": {"language": "eng"}},
		{"index": 2, "codec_name": "mp3", "codec_type": "audio", "tags": {}},
		{"index": 3, "codec_name": "subrip", "codec_type": "subtitle", "tags": {"language": "spa"}}
	],
	"format": {"filename": "h264.mkv", "duration": "3600.000000"}
}`

func TestLanguage(t *testing.T) {
	Convey("language", t, func() {
		So(language(probeStream{Tags: probeTags{Language: "eng"}}), ShouldEqual, "eng")
		So(language(probeStream{}), ShouldEqual, UnknownLanguage)
	})
}

func TestParseProbe(t *testing.T) {
	Convey("parseProbe", t, func() {
		Convey("Extracts dimensions, codec, languages and duration", func() {
			info, err := parseProbe("hevc_aac_de.mp4", []byte(hevcProbeOutput))
			So(err, ShouldBeNil)
			So(info.Codec, ShouldEqual, "hevc")
			So(info.Width, ShouldEqual, 1280)
			So(info.Height, ShouldEqual, 720)
			So(info.Duration, ShouldAlmostEqual, 42.5)
			So(info.AudioLanguages, ShouldResemble, []string{"ger"})
			So(info.SubtitleLanguages, ShouldResemble, []string{"eng"})
		})

		Convey("Falls back to unk for untagged audio", func() {
			info, err := parseProbe("h264.mkv", []byte(h264ProbeOutput))
			So(err, ShouldBeNil)
			So(info.AudioLanguages, ShouldResemble, []string{"eng", "unk"})
		})

		Convey("Errors when no video stream exists", func() {
			audioOnly := `{"streams": [{"index": 0, "codec_name": "flac", "codec_type": "audio"}], "format": {"duration": "10.0"}}`
			_, err := parseProbe("audio.flac", []byte(audioOnly))
			So(err, ShouldNotBeNil)
		})

		Convey("Errors on malformed JSON", func() {
			_, err := parseProbe("broken.mkv", []byte("{"))
			So(err, ShouldNotBeNil)
		})

		Convey("Errors on a missing duration", func() {
			noDuration := `{"streams": [{"index": 0, "codec_name": "hevc", "codec_type": "video"}], "format": {}}`
			_, err := parseProbe("short.mkv", []byte(noDuration))
			So(err, ShouldNotBeNil)
		})
	})
}

func TestProbe(t *testing.T) {
	Convey("Probe", t, func() {
		viper.Set(key.ProbeCache, false)

		original := runProbe
		defer func() { runProbe = original }()

		Convey("Memoizes results per path", func() {
			calls := 0
			runProbe = func(ctx context.Context, path string) ([]byte, error) {
				calls++
				return []byte(hevcProbeOutput), nil
			}

			first, err := Probe(context.Background(), "/memo/a.mp4")
			So(err, ShouldBeNil)
			second, err := Probe(context.Background(), "/memo/a.mp4")
			So(err, ShouldBeNil)
			So(second, ShouldEqual, first)
			So(calls, ShouldEqual, 1)
		})

		Convey("Propagates probe failures", func() {
			runProbe = func(ctx context.Context, path string) ([]byte, error) {
				return nil, errors.New("exit status 1")
			}

			_, err := Probe(context.Background(), "/memo/broken.mp4")
			So(err, ShouldNotBeNil)
		})
	})
}
