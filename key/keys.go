// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Encoder Parameters - these keys govern the ffmpeg invocation built for each conversion.
const (
	EncoderCodec       = "encoder.codec"
	EncoderPreset      = "encoder.preset"
	EncoderCQ          = "encoder.cq"
	EncoderRateControl = "encoder.rate_control"
	EncoderRCLookahead = "encoder.rc_lookahead"
	EncoderAudioCodec  = "encoder.audio_codec"
	EncoderMaxWidth    = "encoder.maximum_width"
)

// Stream Selection - these keys choose which audio and subtitle streams survive a conversion.
const (
	StreamsAudioLanguages    = "streams.audio_languages"
	StreamsSubtitleLanguages = "streams.subtitle_languages"
)

// Conversion Pipeline - these keys configure batch scanning and output verification.
const (
	ConvertSuffixes          = "convert.suffixes"
	ConvertAcceptableCodecs  = "convert.acceptable_codecs"
	ConvertDurationTolerance = "convert.duration_tolerance"
)

// Probe Caching - these keys manage the persistence of ffprobe results.
const (
	ProbeCache         = "probe.cache"
	ProbeCacheLifetime = "probe.cache_lifetime_hours"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern general application behavior.
const (
	CliColored      = "cli.colored"
	CliProgress     = "cli.progress"
	CliVersionCheck = "cli.version_check"
)
