package encoder

import (
	"fmt"
	"strconv"

	"github.com/recode-cli/recode/log"
	"github.com/recode-cli/recode/media"
	"github.com/samber/lo"
)

// BuildArgs assembles the complete ffmpeg argument list for converting the
// probed input into output. Stream mapping follows ffmpeg's positional
// notation: the Nth audio stream is 0:a:N regardless of its absolute index.
func BuildArgs(opts Options, info *media.Info, output string) []string {
	args := []string{"-hide_banner", "-y", "-i", info.Path}

	// The first video stream is always kept; additional video streams
	// (cover art, secondary angles) are dropped.
	args = append(args, "-map", "0:v:0")

	if opts.MaximumWidth > 0 && info.Width > opts.MaximumWidth {
		log.Infof("rescaling %s from width %d to %d", info.Path, info.Width, opts.MaximumWidth)
		args = append(args, "-vf", fmt.Sprintf("scale=%d:-2", opts.MaximumWidth))
	}

	if len(opts.AudioLanguages) > 0 {
		for i, lang := range info.AudioLanguages {
			if lo.Contains(opts.AudioLanguages, lang) {
				log.Infof("selecting audio stream %d with language %s", i, lang)
				args = append(args, "-map", fmt.Sprintf("0:a:%d", i))
			}
		}
	} else if len(info.AudioLanguages) > 0 {
		args = append(args, "-map", "0:a")
	}

	if len(opts.SubtitleLanguages) > 0 {
		for i, lang := range info.SubtitleLanguages {
			if lo.Contains(opts.SubtitleLanguages, lang) {
				log.Infof("selecting subtitle stream %d with language %s", i, lang)
				args = append(args, "-map", fmt.Sprintf("0:s:%d", i))
			}
		}
	} else if len(info.SubtitleLanguages) > 0 {
		args = append(args, "-map", "0:s")
	}

	args = append(args,
		"-c:v", opts.Codec,
		"-preset", opts.Preset,
		"-cq", strconv.Itoa(opts.CQ),
		"-rc", opts.RateControl,
		"-rc_lookahead", strconv.Itoa(opts.RCLookahead),
		"-c:a", opts.AudioCodec,
		"-c:s", "copy",
		// No subtitle is selected by default on playback.
		"-disposition:s", "0",
		// Apple players refuse HEVC without the hvc1 tag.
		"-tag:v", "hvc1",
	)

	return append(args, output)
}
