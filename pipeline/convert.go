package pipeline

import (
	"context"
	"fmt"

	"github.com/recode-cli/recode/encoder"
	"github.com/recode-cli/recode/log"
)

// Convert runs the encoder over all planned jobs sequentially. A dry run
// prints each ffmpeg command line instead of executing it. Per-file probe
// and encode failures are logged and the batch continues.
func Convert(ctx context.Context, jobs []Job, opts encoder.Options, dryRun bool, tracker Tracker) error {
	tracker.Begin("Converting videos", len(jobs))
	defer tracker.End()

	for _, job := range jobs {
		tracker.Advance(job.Input)

		if err := ctx.Err(); err != nil {
			return err
		}

		info, err := probe(ctx, job.Input)
		if err != nil {
			log.Warnf("skipping %s due to probe error: %v", job.Input, err)
			continue
		}

		cmd := encoder.New(opts, info, job.Output)
		if dryRun {
			fmt.Println(cmd.String())
			continue
		}

		log.Infof("converting %s -> %s", job.Input, job.Output)
		if err := cmd.Run(ctx); err != nil {
			log.Errorf("conversion of %s failed: %v", job.Input, err)
		}
	}
	return nil
}
