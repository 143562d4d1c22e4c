package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/recode-cli/recode/encoder"
	"github.com/recode-cli/recode/filesystem"
	"github.com/recode-cli/recode/log"
	"github.com/recode-cli/recode/media"
	"github.com/recode-cli/recode/util"
	"github.com/recode-cli/recode/where"
)

// ReplaceStats summarizes an in-place conversion batch.
type ReplaceStats struct {
	Converted int
	Skipped   int
	Failed    int
}

// Replace converts every file to a temporary output, verifies the result's
// duration against the relative tolerance and swaps the original for the
// converted file (renamed to .mkv). Failed conversions leave the original
// untouched.
func Replace(ctx context.Context, files []string, opts encoder.Options, tolerance float64, dryRun bool, tracker Tracker) (ReplaceStats, error) {
	tracker.Begin("Converting videos", len(files))
	defer tracker.End()

	var stats ReplaceStats
	for _, file := range files {
		tracker.Advance(file)

		if err := ctx.Err(); err != nil {
			return stats, err
		}

		switch err := replaceOne(ctx, file, opts, tolerance, dryRun); {
		case err == nil:
			stats.Converted++
		case errors.Is(err, errDryRun):
			stats.Skipped++
		default:
			log.Errorf("conversion failed for %s: %v", file, err)
			stats.Failed++
		}
	}
	return stats, nil
}

func replaceOne(ctx context.Context, file string, opts encoder.Options, tolerance float64, dryRun bool) error {
	source, err := probe(ctx, file)
	if err != nil {
		return fmt.Errorf("probe source: %w", err)
	}

	temp := filepath.Join(where.Temp(), util.FileStem(file)+".mkv")
	cmd := encoder.New(opts, source, temp)

	if dryRun {
		fmt.Println(cmd.String())
		return errDryRun
	}

	log.Infof("converting %s -> %s", file, temp)
	if err := cmd.Run(ctx); err != nil {
		return err
	}
	defer util.Ignore(func() error { return filesystem.API().Remove(temp) })

	// The temp path is reused across batches; never trust a memoized probe.
	media.Forget(temp)
	converted, err := probe(ctx, temp)
	if err != nil {
		return fmt.Errorf("probe converted file: %w", err)
	}

	if !WithinTolerance(source.Duration, converted.Duration, tolerance) {
		return fmt.Errorf("duration mismatch of more than %.0f%%: source %.1fs, converted %.1fs",
			tolerance*100, source.Duration, converted.Duration)
	}

	final := strings.TrimSuffix(file, filepath.Ext(file)) + ".mkv"
	if err := replaceFile(file, temp, final); err != nil {
		return fmt.Errorf("replace original: %w", err)
	}

	log.Infof("replaced %s with converted file %s", file, final)
	return nil
}

// move swaps the converted file into place. Swappable for tests.
var move = moveFile

// replaceFile swaps original for the converted temp output at final. The
// original is parked under a backup name until the converted file is in
// place, so a failed move never loses it.
func replaceFile(original, temp, final string) error {
	backup := original + ".bak"
	if err := filesystem.API().Rename(original, backup); err != nil {
		return fmt.Errorf("back up original: %w", err)
	}

	if err := move(temp, final); err != nil {
		if restoreErr := filesystem.API().Rename(backup, original); restoreErr != nil {
			log.Errorf("restore original %s: %v", original, restoreErr)
		}
		return err
	}

	if err := filesystem.API().Remove(backup); err != nil {
		log.Warnf("remove backup %s: %v", backup, err)
	}
	return nil
}

// errDryRun marks a file that was only printed, not converted.
var errDryRun = errors.New("dry run")

// moveFile renames src to dst, falling back to copy-and-delete when the
// rename crosses filesystems.
func moveFile(src, dst string) error {
	fs := filesystem.API()
	if err := fs.Rename(src, dst); err == nil {
		return nil
	}

	in, err := fs.Open(src)
	if err != nil {
		return err
	}
	defer util.Ignore(in.Close)

	out, err := fs.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	return fs.Remove(src)
}
