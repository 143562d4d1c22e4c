package cmd

import (
	"testing"

	"github.com/recode-cli/recode/constant"
	. "github.com/smartystreets/goconvey/convey"
)

func TestInstallHint(t *testing.T) {
	Convey("installHint", t, func() {
		Convey("Knows the package manager of every supported platform", func() {
			So(installHint(constant.Darwin), ShouldEqual, "brew install ffmpeg")
			So(installHint(constant.Linux), ShouldEqual, "sudo apt install ffmpeg")
			So(installHint(constant.Windows), ShouldEqual, "scoop install ffmpeg")
		})

		Convey("Stays silent on unrecognized platforms", func() {
			So(installHint("plan9"), ShouldBeEmpty)
		})
	})
}
