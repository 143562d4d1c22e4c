// Package cmd implements the command-line interface for recode.
package cmd

import (
	"fmt"

	"github.com/recode-cli/recode/encoder"
	"github.com/recode-cli/recode/icon"
	"github.com/recode-cli/recode/key"
	"github.com/recode-cli/recode/log"
	"github.com/recode-cli/recode/media"
	"github.com/recode-cli/recode/pipeline"
	"github.com/recode-cli/recode/tui"
	"github.com/recode-cli/recode/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(sortCmd)

	sortCmd.Flags().StringP("source", "s", "", "Source folder containing video files")
	sortCmd.Flags().StringP("target", "t", "", "Target folder for converted videos")
	lo.Must0(sortCmd.MarkFlagRequired("source"))
	lo.Must0(sortCmd.MarkFlagRequired("target"))
	lo.Must0(sortCmd.MarkFlagDirname("source"))
	lo.Must0(sortCmd.MarkFlagDirname("target"))

	sortCmd.Flags().Bool("dry-run", false, "Print the ffmpeg commands without executing them")
	sortCmd.Flags().Bool("resume", false, "Skip inputs whose output file already exists")
	sortCmd.Flags().Bool("keep-folder", false, "Mirror the source folder layout instead of sorting into season folders")
	sortCmd.Flags().Bool("reencode", false, "Convert files even when they already are in the target codec")

	sortCmd.Flags().String("codec", "", "Target video codec for the conversion")
	sortCmd.Flags().String("preset", "", "Encoder preset for the conversion")
	sortCmd.Flags().Int("cq", 0, "Constant quality target for the conversion")
	sortCmd.Flags().Int("maximum-width", 0, "Rescale video down to this width, 0 keeps the original size")
	sortCmd.Flags().StringSlice("audio-language", nil, "Audio languages to keep, repeatable")
	sortCmd.Flags().StringSlice("subtitle-language", nil, "Subtitle languages to keep, defaults to the audio languages")
	sortCmd.Flags().StringSlice("suffixes", nil, "File suffixes treated as video files")

	lo.Must0(viper.BindPFlag(key.EncoderCodec, sortCmd.Flags().Lookup("codec")))
	lo.Must0(viper.BindPFlag(key.EncoderPreset, sortCmd.Flags().Lookup("preset")))
	lo.Must0(viper.BindPFlag(key.EncoderCQ, sortCmd.Flags().Lookup("cq")))
	lo.Must0(viper.BindPFlag(key.EncoderMaxWidth, sortCmd.Flags().Lookup("maximum-width")))
	lo.Must0(viper.BindPFlag(key.StreamsAudioLanguages, sortCmd.Flags().Lookup("audio-language")))
	lo.Must0(viper.BindPFlag(key.StreamsSubtitleLanguages, sortCmd.Flags().Lookup("subtitle-language")))
	lo.Must0(viper.BindPFlag(key.ConvertSuffixes, sortCmd.Flags().Lookup("suffixes")))
}

// sortCmd converts a video library and routes outputs into season folders.
var sortCmd = &cobra.Command{
	Use:   "sort",
	Short: "Convert video files and sort the results into season folders",
	Long: `Recursively find video files under the source folder, convert them to the
target codec with ffmpeg and write the results into the target folder,
routed into season folders (S01, S02, ...) derived from the filename.`,
	Run: func(cmd *cobra.Command, args []string) {
		CheckDependencies()

		var (
			source     = lo.Must(cmd.Flags().GetString("source"))
			target     = lo.Must(cmd.Flags().GetString("target"))
			dryRun     = lo.Must(cmd.Flags().GetBool("dry-run"))
			resume     = lo.Must(cmd.Flags().GetBool("resume"))
			keepFolder = lo.Must(cmd.Flags().GetBool("keep-folder"))
			reencode   = lo.Must(cmd.Flags().GetBool("reencode"))
		)

		files, err := media.FindVideos(source, media.Suffixes())
		handleErr(err)

		fmt.Printf("%s Found %s in %s\n", icon.Get(icon.Video), util.Quantify(len(files), "video file", "video files"), source)

		opts := encoder.FromConfig()
		if len(opts.SubtitleLanguages) == 0 {
			opts.SubtitleLanguages = opts.AudioLanguages
		}
		log.Infof("running conversion, keeping languages %v", lo.Ternary(len(opts.AudioLanguages) > 0, fmt.Sprint(opts.AudioLanguages), "all"))

		tracker := batchTracker(dryRun)

		jobs, err := pipeline.Plan(cmd.Context(), files, pipeline.PlanOptions{
			SourceFolder:     source,
			TargetFolder:     target,
			KeepFolder:       keepFolder,
			Resume:           resume,
			Reencode:         reencode,
			AcceptableCodecs: viper.GetStringSlice(key.ConvertAcceptableCodecs),
		}, tracker)
		handleErr(err)

		fmt.Printf("%s %s to convert\n", icon.Get(icon.Progress), util.Quantify(len(jobs), "file", "files"))

		handleErr(pipeline.Convert(cmd.Context(), jobs, opts, dryRun, tracker))

		if !dryRun {
			fmt.Printf("%s Conversion completed\n", icon.Get(icon.Success))
		}
	},
}

// batchTracker picks the progress renderer: none during dry runs, so the
// printed ffmpeg command lines stay readable.
func batchTracker(dryRun bool) pipeline.Tracker {
	if dryRun {
		return pipeline.NopTracker{}
	}
	return tui.NewTracker()
}
