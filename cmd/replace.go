// Package cmd implements the command-line interface for recode.
package cmd

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/recode-cli/recode/encoder"
	"github.com/recode-cli/recode/icon"
	"github.com/recode-cli/recode/key"
	"github.com/recode-cli/recode/media"
	"github.com/recode-cli/recode/pipeline"
	"github.com/recode-cli/recode/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(replaceCmd)

	replaceCmd.Flags().StringP("source", "s", "", "Source folder containing video files")
	lo.Must0(replaceCmd.MarkFlagRequired("source"))
	lo.Must0(replaceCmd.MarkFlagDirname("source"))

	replaceCmd.Flags().Bool("dry-run", false, "Print the ffmpeg commands without executing them")
	replaceCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")

	replaceCmd.Flags().Float64("duration-tolerance", 0, "Maximum relative duration drift before a conversion counts as failed")
	replaceCmd.Flags().StringSlice("acceptable-codecs", nil, "Video codecs that do not need conversion")
	replaceCmd.Flags().String("codec", "", "Target video codec for the conversion")
	replaceCmd.Flags().String("preset", "", "Encoder preset for the conversion")
	replaceCmd.Flags().Int("cq", 0, "Constant quality target for the conversion")
	replaceCmd.Flags().Int("maximum-width", 0, "Rescale video down to this width, 0 keeps the original size")
	replaceCmd.Flags().StringSlice("audio-language", nil, "Audio languages to keep, repeatable")
	replaceCmd.Flags().StringSlice("subtitle-language", nil, "Subtitle languages to keep, repeatable")

	lo.Must0(viper.BindPFlag(key.ConvertDurationTolerance, replaceCmd.Flags().Lookup("duration-tolerance")))
	lo.Must0(viper.BindPFlag(key.ConvertAcceptableCodecs, replaceCmd.Flags().Lookup("acceptable-codecs")))
	lo.Must0(viper.BindPFlag(key.EncoderCodec, replaceCmd.Flags().Lookup("codec")))
	lo.Must0(viper.BindPFlag(key.EncoderPreset, replaceCmd.Flags().Lookup("preset")))
	lo.Must0(viper.BindPFlag(key.EncoderCQ, replaceCmd.Flags().Lookup("cq")))
	lo.Must0(viper.BindPFlag(key.EncoderMaxWidth, replaceCmd.Flags().Lookup("maximum-width")))
	lo.Must0(viper.BindPFlag(key.StreamsAudioLanguages, replaceCmd.Flags().Lookup("audio-language")))
	lo.Must0(viper.BindPFlag(key.StreamsSubtitleLanguages, replaceCmd.Flags().Lookup("subtitle-language")))
}

// replaceCmd converts video files in place, keeping the originals only when
// the converted output fails duration verification.
var replaceCmd = &cobra.Command{
	Use:   "replace",
	Short: "Convert video files in place, replacing the originals",
	Long: `Scan the source folder for video files not yet in an acceptable codec,
convert each one to a temporary file, verify the converted duration against
the source and replace the original (renamed to .mkv) on success.`,
	Run: func(cmd *cobra.Command, args []string) {
		CheckDependencies()

		var (
			source = lo.Must(cmd.Flags().GetString("source"))
			dryRun = lo.Must(cmd.Flags().GetBool("dry-run"))
			yes    = lo.Must(cmd.Flags().GetBool("yes"))
		)

		files, err := media.FindVideos(source, media.Suffixes())
		handleErr(err)

		fmt.Printf("%s Found %s in %s\n", icon.Get(icon.Video), util.Quantify(len(files), "video file", "video files"), source)

		tracker := batchTracker(dryRun)

		acceptable := viper.GetStringSlice(key.ConvertAcceptableCodecs)
		convertible := pipeline.FilterConvertible(cmd.Context(), files, acceptable, tracker)

		if len(convertible) == 0 {
			fmt.Printf("%s Nothing to convert\n", icon.Get(icon.Success))
			return
		}

		fmt.Printf("%s %s to convert\n", icon.Get(icon.Progress), util.Quantify(len(convertible), "file", "files"))

		if !yes && !dryRun {
			confirm := survey.Confirm{
				Message: fmt.Sprintf("Convert and replace %s?", util.Quantify(len(convertible), "file", "files")),
				Default: false,
			}
			var response bool
			handleErr(survey.AskOne(&confirm, &response))
			if !response {
				return
			}
		}

		tolerance := viper.GetFloat64(key.ConvertDurationTolerance)
		stats, err := pipeline.Replace(cmd.Context(), convertible, encoder.FromConfig(), tolerance, dryRun, tracker)
		handleErr(err)

		if dryRun {
			return
		}

		fmt.Printf("%s Converted %s", icon.Get(icon.Success), util.Quantify(stats.Converted, "file", "files"))
		if stats.Failed > 0 {
			fmt.Printf(", %s %d failed", icon.Get(icon.Fail), stats.Failed)
		}
		fmt.Println()
	},
}
