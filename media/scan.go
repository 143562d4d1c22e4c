package media

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/recode-cli/recode/filesystem"
	"github.com/recode-cli/recode/key"
	"github.com/spf13/viper"
)

// Suffixes returns the configured set of file suffixes treated as video files.
// Entries are normalized to a leading dot and lower case.
func Suffixes() map[string]struct{} {
	configured := viper.GetStringSlice(key.ConvertSuffixes)
	return SuffixSet(configured)
}

// SuffixSet normalizes a suffix list into a lookup set.
func SuffixSet(suffixes []string) map[string]struct{} {
	set := make(map[string]struct{}, len(suffixes))
	for _, s := range suffixes {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		if !strings.HasPrefix(s, ".") {
			s = "." + s
		}
		set[s] = struct{}{}
	}
	return set
}

// FindVideos recursively collects video files under root whose suffix is in
// the given set, returned in lexical order.
func FindVideos(root string, suffixes map[string]struct{}) ([]string, error) {
	var found []string

	err := filesystem.API().Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if _, ok := suffixes[ext]; ok {
			found = append(found, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(found)
	return found, nil
}
