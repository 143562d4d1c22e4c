// Package cmd implements the command-line interface for recode.
package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/invopop/jsonschema"
	"github.com/recode-cli/recode/color"
	"github.com/recode-cli/recode/log"
	"github.com/recode-cli/recode/media"
	"github.com/recode-cli/recode/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(probeCmd)
	probeCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON array")
	probeCmd.SetOut(os.Stdout)

	probeCmd.AddCommand(probeSchemaCmd)
}

// probeCmd displays media metadata for the given video files.
var probeCmd = &cobra.Command{
	Use:   "probe [files...]",
	Short: "Display codec, dimensions, duration and stream languages for video files",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		CheckDependencies()

		asJson := lo.Must(cmd.Flags().GetBool("json"))

		var infos []*media.Info
		for _, file := range args {
			info, err := media.Probe(cmd.Context(), file)
			if err != nil {
				log.Warnf("probe failed: %v", err)
				fmt.Fprintf(os.Stderr, "skipping %s: %v\n", file, err)
				continue
			}
			infos = append(infos, info)
		}

		if asJson {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			lo.Must0(encoder.Encode(infos))
			return
		}

		faint := style.Faint
		header := style.New().Bold(true).Foreground(color.HiPurple).Render

		for i, info := range infos {
			duration := time.Duration(info.Duration * float64(time.Second))

			cmd.Println(header(info.Path))
			cmd.Printf("%s    %s %dx%d\n", faint("Video"), info.Codec, info.Width, info.Height)
			cmd.Printf("%s %s\n", faint("Duration"), humanize.RelTime(time.Now().Add(-duration), time.Now(), "", ""))
			cmd.Printf("%s    %s\n", faint("Audio"), languagesOrNone(info.AudioLanguages))
			cmd.Printf("%s     %s\n", faint("Subs"), languagesOrNone(info.SubtitleLanguages))

			if i < len(infos)-1 {
				cmd.Println()
			}
		}
	},
}

func languagesOrNone(languages []string) string {
	if len(languages) == 0 {
		return "none"
	}
	return strings.Join(languages, ", ")
}

// probeSchemaCmd generates the JSON schema for structured probe output.
var probeSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate the JSON schema for structured probe output",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true

		schema := reflector.Reflect(&media.Info{})
		handleErr(json.NewEncoder(os.Stdout).Encode(schema))
	},
}
