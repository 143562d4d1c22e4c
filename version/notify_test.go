package version

import (
	"errors"
	"io"
	"os"
	"testing"

	"github.com/recode-cli/recode/constant"
	"github.com/recode-cli/recode/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

// captureNotify runs Notify with stdout redirected and returns what it printed.
func captureNotify() string {
	r, w, _ := os.Pipe()
	stdout := os.Stdout
	os.Stdout = w

	Notify()

	_ = w.Close()
	os.Stdout = stdout

	out, _ := io.ReadAll(r)
	return string(out)
}

func TestNotify(t *testing.T) {
	Convey("Notify", t, func() {
		viper.Set(key.CliVersionCheck, true)

		original := latest
		defer func() { latest = original }()

		Convey("Announces a newer release", func() {
			latest = func() (string, error) { return "99.0.0", nil }
			So(captureNotify(), ShouldContainSubstring, "New version is available")
		})

		Convey("Stays silent when already up to date", func() {
			latest = func() (string, error) { return constant.Version, nil }
			So(captureNotify(), ShouldNotContainSubstring, "New version is available")
		})

		Convey("Stays silent when the release lookup fails", func() {
			latest = func() (string, error) { return "", errors.New("offline") }
			So(captureNotify(), ShouldNotContainSubstring, "New version is available")
		})
	})
}
