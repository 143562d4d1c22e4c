// Package encoder builds and executes ffmpeg invocations for single-file video conversions.
//
// All encoding, demuxing and muxing is delegated to the external ffmpeg
// binary; this package only decides which streams to keep and with which
// encoder parameters.
package encoder

import (
	"github.com/recode-cli/recode/key"
	"github.com/spf13/viper"
)

// Options captures every knob of an ffmpeg conversion.
type Options struct {
	Codec             string
	Preset            string
	CQ                int
	RateControl       string
	RCLookahead       int
	AudioCodec        string
	AudioLanguages    []string
	SubtitleLanguages []string
	MaximumWidth      int
}

// FromConfig assembles Options from the global configuration state.
// Command flags bound to the same keys override the file-based values.
func FromConfig() Options {
	return Options{
		Codec:             viper.GetString(key.EncoderCodec),
		Preset:            viper.GetString(key.EncoderPreset),
		CQ:                viper.GetInt(key.EncoderCQ),
		RateControl:       viper.GetString(key.EncoderRateControl),
		RCLookahead:       viper.GetInt(key.EncoderRCLookahead),
		AudioCodec:        viper.GetString(key.EncoderAudioCodec),
		AudioLanguages:    viper.GetStringSlice(key.StreamsAudioLanguages),
		SubtitleLanguages: viper.GetStringSlice(key.StreamsSubtitleLanguages),
		MaximumWidth:      viper.GetInt(key.EncoderMaxWidth),
	}
}
