package config

import (
	"testing"

	"github.com/recode-cli/recode/filesystem"
	"github.com/recode-cli/recode/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			err := Setup()
			So(err, ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			_ = Setup()
			for name := range Default {
				val := viper.Get(name)
				So(val, ShouldNotBeNil)
			}
		})

		Convey("Encoder defaults should target NVENC HEVC", func() {
			_ = Setup()
			So(viper.GetString(key.EncoderCodec), ShouldEqual, "hevc_nvenc")
			So(viper.GetString(key.EncoderPreset), ShouldEqual, "p5")
			So(viper.GetInt(key.EncoderCQ), ShouldEqual, 30)
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			result := EnvKeyReplacer.Replace("encoder.rate.control")
			So(result, ShouldEqual, "encoder_rate_control")
		})
	})
}

func TestFieldEnv(t *testing.T) {
	Convey("Field Env naming", t, func() {
		f := Default[key.EncoderCodec]
		So(f.Env(), ShouldEqual, "RECODE_ENCODER_CODEC")
	})
}
