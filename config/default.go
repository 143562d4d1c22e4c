// Package config provides centralized management for application settings, defaults, and the Viper-based configuration engine.
package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"text/template"

	"github.com/recode-cli/recode/color"
	"github.com/recode-cli/recode/constant"
	"github.com/recode-cli/recode/key"
	"github.com/recode-cli/recode/style"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Field represents a configuration field definition.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Pretty returns a colored string representation of the field for display.
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

// Env returns the environment variable name for this field.
func (f *Field) Env() string {
	env := strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
	prefix := strings.ToUpper(constant.Recode + "_")
	if strings.HasPrefix(env, prefix) {
		return env
	}
	return prefix + env
}

// MarshalJSON customizes JSON output to include current and default values.
func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string `json:"key"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string `json:"description"`
		Type        string `json:"type"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.typeName(),
	})
}

// typeName returns the string representation of the field's underlying value type.
func (f *Field) typeName() string {
	switch f.Value.(type) {
	case string:
		return "string"
	case int:
		return "int"
	case float64:
		return "float"
	case bool:
		return "bool"
	case []string:
		return "[]string"
	default:
		return "unknown"
	}
}

// Default holds the map of all configuration fields.
var Default = make(map[string]Field)

// EnvExposed holds keys that are bound to environment variables.
var EnvExposed []string

func init() {
	// register validates and adds a new configuration field to the global registry.
	register := func(k string, v any, desc string) {
		if _, exists := Default[k]; exists {
			panic("Duplicate config key: " + k)
		}
		f := Field{Key: k, Value: v, Description: desc}
		Default[k] = f
		EnvExposed = append(EnvExposed, k)
	}

	register(key.EncoderCodec, "hevc_nvenc", "Target video codec passed to ffmpeg as -c:v.\nAny encoder your ffmpeg build supports works here (hevc_nvenc, libx265, ...)")
	register(key.EncoderPreset, "p5", "Encoder preset passed as -preset.\nFor NVENC this ranges from p1 (fastest) to p7 (best quality)")
	register(key.EncoderCQ, 30, "Constant quality target passed as -cq.\nLower values produce larger, higher quality output")
	register(key.EncoderRateControl, "vbr", "Rate control mode passed as -rc")
	register(key.EncoderRCLookahead, 15, "Number of frames the encoder looks ahead, passed as -rc_lookahead")
	register(key.EncoderAudioCodec, "copy", "Audio codec passed as -c:a.\nThe default copies audio streams without re-encoding")
	register(key.EncoderMaxWidth, 0, "Rescale video down to this width, keeping aspect ratio.\n0 disables rescaling")
	register(key.StreamsAudioLanguages, []string{}, "Audio stream languages to keep (ISO 639-2 codes, e.g. eng, ger).\nEmpty keeps all audio streams")
	register(key.StreamsSubtitleLanguages, []string{}, "Subtitle stream languages to keep.\nEmpty keeps all subtitle streams")
	register(key.ConvertSuffixes, []string{"mkv", "mp4", "avi", "mpg", "mpeg", "m4v", "mov", "wmv", "flv"}, "File suffixes considered video files when scanning folders")
	register(key.ConvertAcceptableCodecs, []string{"hevc"}, "Video codecs that do not need conversion.\nFiles already in one of these codecs are left alone by \"recode replace\"")
	register(key.ConvertDurationTolerance, 0.05, "Maximum relative duration drift between source and converted file.\nConversions drifting further are treated as failed")
	register(key.ProbeCache, true, "Cache ffprobe results on disk.\nEntries are invalidated when a file's size or modification time changes")
	register(key.ProbeCacheLifetime, 168, "Lifetime of cached ffprobe results in hours")
	register(key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, plain, squares, nerd (nerd-font required)")
	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace")
	register(key.LogsJson, false, "Use json format for logs")
	register(key.CliColored, true, "Enable colored CLI output")
	register(key.CliProgress, true, "Show the interactive progress display during batch operations.\nDisabled automatically when stdout is not a terminal")
	register(key.CliVersionCheck, true, "Enable automatic version check")
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":    style.Faint,
	"bold":     style.Bold,
	"purple":   style.Fg(color.Purple),
	"blue":     style.Fg(color.Blue),
	"cyan":     style.Fg(color.Cyan),
	"value":    func(k string) any { return viper.Get(k) },
	"typename": func(v any) string { return reflect.TypeOf(v).String() },
	"hl": func(v any) string {
		switch value := v.(type) {
		case bool:
			b := strconv.FormatBool(value)
			if value {
				return style.Fg(color.Green)(b)
			}
			return style.Fg(color.Red)(b)
		case string:
			return style.Fg(color.Yellow)(value)
		default:
			return fmt.Sprint(value)
		}
	},
}).Parse(`{{ faint .Description }}
{{ blue "Key:" }}     {{ purple .Key }}
{{ blue "Env:" }}     {{ .Env }}
{{ blue "Value:" }}   {{ hl (value .Key) }}
{{ blue "Default:" }} {{ hl (.Value) }}
{{ blue "Type:" }}    {{ typename .Value }}`))
