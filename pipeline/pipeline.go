// Package pipeline orchestrates batch conversions: scanning, planning
// destination paths, invoking the encoder and verifying its output.
package pipeline

import (
	"context"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/recode-cli/recode/log"
	"github.com/recode-cli/recode/media"
	"github.com/samber/lo"
)

// probe resolves video metadata. Swappable for tests.
var probe = media.Probe

// Tracker receives batch progress updates. Implementations render an
// interactive progress display or plain log lines.
type Tracker interface {
	Begin(description string, total int)
	Advance(file string)
	End()
}

// NopTracker discards all progress updates.
type NopTracker struct{}

func (NopTracker) Begin(string, int) {}
func (NopTracker) Advance(string)    {}
func (NopTracker) End()              {}

// FilterConvertible probes every file and keeps those whose video codec is
// not in the acceptable set. Files that fail probing are skipped with a
// warning, matching the behavior of the conversion loop itself.
func FilterConvertible(ctx context.Context, files []string, acceptable []string, tracker Tracker) []string {
	tracker.Begin("Scanning video files", len(files))
	defer tracker.End()

	var convertible []string
	for _, file := range files {
		tracker.Advance(file)

		info, err := probe(ctx, file)
		if err != nil {
			log.Warnf("skipping %s due to probe error: %v", file, err)
			continue
		}

		duration := time.Duration(info.Duration * float64(time.Second))
		log.Infof("%s: %dx%d %s, %s",
			file, info.Width, info.Height, info.Codec,
			humanize.RelTime(time.Now().Add(-duration), time.Now(), "", ""),
		)

		if !lo.Contains(acceptable, info.Codec) {
			convertible = append(convertible, file)
		}
	}
	return convertible
}
