package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/recode-cli/recode/filesystem"
	"github.com/recode-cli/recode/log"
	"github.com/recode-cli/recode/media"
	"github.com/recode-cli/recode/util"
	"github.com/samber/lo"
)

// Job pairs one input video with its planned output path.
type Job struct {
	Input  string
	Output string
}

// PlanOptions configures destination routing for a batch conversion.
type PlanOptions struct {
	SourceFolder string
	TargetFolder string

	// KeepFolder mirrors the source directory layout instead of routing
	// outputs into season folders derived from the filename.
	KeepFolder bool

	// Resume skips inputs whose planned output already exists.
	Resume bool

	// Reencode converts files even when they already are in an acceptable codec.
	Reencode bool

	// AcceptableCodecs lists probed codec names that do not need conversion;
	// inputs already in one of them are skipped unless Reencode is set.
	AcceptableCodecs []string
}

// outputName rewrites an input filename for its converted form: the stem's
// "264" token becomes "265" and the container suffix becomes .mkv.
func outputName(input string) string {
	stem := util.FileStem(input)
	return strings.ReplaceAll(stem, "264", "265") + ".mkv"
}

// Plan probes the given files and computes a conversion job for each one
// that needs converting. Probe failures and already-converted files are
// skipped with a log entry. Output parent directories are created.
func Plan(ctx context.Context, files []string, opts PlanOptions, tracker Tracker) ([]Job, error) {
	tracker.Begin("Planning conversions", len(files))
	defer tracker.End()

	var jobs []Job
	for _, file := range files {
		tracker.Advance(file)

		info, err := probe(ctx, file)
		if err != nil {
			log.Warnf("skipping %s due to probe error: %v", file, err)
			continue
		}

		if lo.Contains(opts.AcceptableCodecs, info.Codec) && !opts.Reencode {
			log.Infof("skipping %s as it is already in %s format", file, info.Codec)
			continue
		}

		var outDir string
		if opts.KeepFolder {
			rel, err := filepath.Rel(opts.SourceFolder, file)
			if err != nil {
				return nil, err
			}
			outDir = filepath.Join(opts.TargetFolder, filepath.Dir(rel))
		} else {
			outDir = filepath.Join(opts.TargetFolder, media.SeasonFolder(file))
		}

		output := filepath.Join(outDir, outputName(file))

		if opts.Resume {
			if exists, _ := filesystem.API().Exists(output); exists {
				log.Warnf("skipping %s as %s already exists", file, output)
				continue
			}
		}

		if err := filesystem.API().MkdirAll(outDir, os.ModePerm); err != nil {
			return nil, err
		}

		jobs = append(jobs, Job{Input: file, Output: output})
	}
	return jobs, nil
}
