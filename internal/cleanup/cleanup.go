// Package cleanup prunes stale conversion artifacts left behind by interrupted runs.
package cleanup

import (
	"os"
	"path/filepath"
	"time"

	"github.com/recode-cli/recode/filesystem"
	"github.com/recode-cli/recode/log"
	"github.com/recode-cli/recode/where"
)

// staleAfter is how long a temp output may sit untouched before it is
// considered an orphan of an interrupted conversion.
const staleAfter = 24 * time.Hour

// CollectGarbage removes temp conversion outputs older than staleAfter.
func CollectGarbage() {
	dir := where.Temp()

	err := filesystem.API().Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return nil
		}

		if time.Since(info.ModTime()) > staleAfter {
			if removeErr := filesystem.API().Remove(path); removeErr != nil {
				log.Warnf("cleanup: %v", removeErr)
			} else {
				log.Debugf("cleanup: removed stale temp file %s", filepath.Base(path))
			}
		}

		return nil
	})
	if err != nil {
		log.Warnf("cleanup: %v", err)
	}
}
