// Package version provides unified mechanisms for application version tracking, update discovery, and compatibility validation.
package version

import (
	"fmt"

	"github.com/recode-cli/recode/color"
	"github.com/recode-cli/recode/constant"
	"github.com/recode-cli/recode/icon"
	"github.com/recode-cli/recode/key"
	"github.com/recode-cli/recode/style"
	"github.com/recode-cli/recode/util"
	"github.com/spf13/viper"
)

// latest resolves the most recent released version. Swappable for tests.
var latest = Latest

// Notify displays a terminal alert if a more recent stable application version is available.
func Notify() {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	erase := util.PrintErasable(fmt.Sprintf("%s Checking if new version is available...", icon.Get(icon.Progress)))
	version, err := latest()
	erase()
	if err != nil {
		return
	}

	comp, err := Compare(version, constant.Version)
	if err != nil || comp <= 0 {
		return
	}

	fmt.Printf(`
%s New version is available %s %s
%s

`,
		style.Fg(color.Green)("▇▇▇"),
		style.Bold(version),
		style.Faint(fmt.Sprintf("(You're on %s)", constant.Version)),
		style.Faint("https://github.com/recode-cli/recode/releases/tag/v"+version),
	)
}
