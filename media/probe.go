// Package media implements video file discovery and metadata probing on top of the external ffprobe binary.
package media

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"path/filepath"
	"strconv"
	"time"

	"github.com/metafates/gache"
	"github.com/recode-cli/recode/filesystem"
	"github.com/recode-cli/recode/key"
	"github.com/recode-cli/recode/log"
	"github.com/recode-cli/recode/where"
	"github.com/spf13/viper"
)

// Stream codec_type discriminators as reported by ffprobe.
const (
	videoCodecType    = "video"
	audioCodecType    = "audio"
	subtitleCodecType = "subtitle"
)

// UnknownLanguage is the fallback tag for streams without language metadata.
const UnknownLanguage = "unk"

// probeTags carries the subset of stream tags this tool inspects.
type probeTags struct {
	Language string `json:"language"`
}

// probeStream mirrors one entry of ffprobe's "streams" array.
type probeStream struct {
	Index     int       `json:"index"`
	CodecName string    `json:"codec_name"`
	CodecType string    `json:"codec_type"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	Tags      probeTags `json:"tags"`
}

// probeFormat mirrors ffprobe's "format" object. Duration arrives as a string.
type probeFormat struct {
	FileName string `json:"filename"`
	Duration string `json:"duration"`
}

// probeResult is the top-level ffprobe JSON document.
type probeResult struct {
	Streams []probeStream `json:"streams"`
	Format  probeFormat   `json:"format"`
}

// Info holds the probed metadata of a single video file.
type Info struct {
	Path              string   `json:"path"`
	Width             int      `json:"width"`
	Height            int      `json:"height"`
	Codec             string   `json:"codec"`
	AudioLanguages    []string `json:"audio_languages"`
	SubtitleLanguages []string `json:"subtitle_languages"`
	Duration          float64  `json:"duration"`
}

// language extracts the language tag of a stream, falling back to UnknownLanguage.
func language(s probeStream) string {
	if s.Tags.Language != "" {
		return s.Tags.Language
	}
	return UnknownLanguage
}

// runProbe executes ffprobe and returns its raw JSON output.
// Swappable for tests.
var runProbe = func(ctx context.Context, path string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "ffprobe",
		"-hide_banner",
		"-loglevel", "quiet",
		"-print_format", "json",
		"-show_format",
		"-show_streams",
		path,
	)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("ffprobe %s: %w: %s", path, err, bytes.TrimSpace(stderr.Bytes()))
	}
	return stdout.Bytes(), nil
}

// parseProbe decodes ffprobe output into an Info.
func parseProbe(path string, data []byte) (*Info, error) {
	var result probeResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("decode ffprobe output for %s: %w", path, err)
	}

	var video, audio, subtitle []probeStream
	for _, s := range result.Streams {
		switch s.CodecType {
		case videoCodecType:
			video = append(video, s)
		case audioCodecType:
			audio = append(audio, s)
		case subtitleCodecType:
			subtitle = append(subtitle, s)
		}
	}

	if len(video) == 0 {
		return nil, fmt.Errorf("no video stream found in %s", path)
	}
	if len(video) > 1 {
		log.Warnf("multiple video streams found in %s, using the first one", path)
	}

	duration, err := strconv.ParseFloat(result.Format.Duration, 64)
	if err != nil {
		return nil, fmt.Errorf("parse duration of %s: %w", path, err)
	}

	info := &Info{
		Path:     path,
		Width:    video[0].Width,
		Height:   video[0].Height,
		Codec:    video[0].CodecName,
		Duration: duration,
	}
	for _, s := range audio {
		info.AudioLanguages = append(info.AudioLanguages, language(s))
	}
	for _, s := range subtitle {
		info.SubtitleLanguages = append(info.SubtitleLanguages, language(s))
	}
	return info, nil
}

// memoized keeps probe results for the lifetime of the process, keyed by path.
var memoized = make(map[string]*Info)

// Forget drops a path from the in-process memo, forcing the next Probe to
// re-run ffprobe. Callers use this for temp paths rewritten between probes.
func Forget(path string) {
	delete(memoized, path)
}

// probeCacher persists probe results across runs. Initialized lazily so tests
// can swap the filesystem backend first.
var probeCacher *gache.Cache[map[string]*Info]

func cacher() *gache.Cache[map[string]*Info] {
	if probeCacher == nil {
		probeCacher = gache.New[map[string]*Info](&gache.Options{
			Path:       where.Probes(),
			Lifetime:   time.Hour * time.Duration(viper.GetInt(key.ProbeCacheLifetime)),
			FileSystem: &filesystem.GacheFs{},
		})
	}
	return probeCacher
}

// cacheKey derives a persistent cache key that invalidates when the file changes on disk.
func cacheKey(path string) (string, error) {
	stat, err := filesystem.API().Stat(path)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s|%d|%d", filepath.Clean(path), stat.Size(), stat.ModTime().Unix()), nil
}

// Probe retrieves video metadata for the given file, consulting the in-process
// memo and the persistent cache before shelling out to ffprobe.
func Probe(ctx context.Context, path string) (*Info, error) {
	if info, ok := memoized[path]; ok {
		return info, nil
	}

	persist := viper.GetBool(key.ProbeCache)

	var persistKey string
	if persist {
		k, err := cacheKey(path)
		if err == nil {
			persistKey = k
			if cached, expired, err := cacher().Get(); err == nil && !expired {
				if info, ok := cached[persistKey]; ok && info != nil {
					memoized[path] = info
					return info, nil
				}
			}
		}
	}

	data, err := runProbe(ctx, path)
	if err != nil {
		return nil, err
	}

	info, err := parseProbe(path, data)
	if err != nil {
		return nil, err
	}

	memoized[path] = info
	if persist && persistKey != "" {
		cached, _, err := cacher().Get()
		if err != nil || cached == nil {
			cached = make(map[string]*Info)
		}
		cached[persistKey] = info
		if err := cacher().Set(cached); err != nil {
			log.Warnf("persist probe cache: %v", err)
		}
	}
	return info, nil
}
