package cleanup

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/recode-cli/recode/filesystem"
	"github.com/recode-cli/recode/where"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCollectGarbage(t *testing.T) {
	Convey("CollectGarbage", t, func() {
		filesystem.SetMemMapFs()
		defer filesystem.SetOsFs()

		dir := where.Temp()
		stale := filepath.Join(dir, "old.mkv")
		fresh := filepath.Join(dir, "new.mkv")

		lo.Must0(filesystem.API().WriteFile(stale, []byte("stale"), 0644))
		lo.Must0(filesystem.API().WriteFile(fresh, []byte("fresh"), 0644))
		lo.Must0(filesystem.API().Chtimes(stale, time.Now(), time.Now().Add(-48*time.Hour)))

		CollectGarbage()

		Convey("Removes outputs older than the stale threshold", func() {
			So(lo.Must(filesystem.API().Exists(stale)), ShouldBeFalse)
		})

		Convey("Keeps recent outputs", func() {
			So(lo.Must(filesystem.API().Exists(fresh)), ShouldBeTrue)
		})
	})
}
