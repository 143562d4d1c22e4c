package media

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/recode-cli/recode/util"
)

// UnknownSeason is the destination folder for files without a recognizable season token.
const UnknownSeason = "Unknown"

// seasonPatterns are tried in order against the full file path. They cover
// the common release-name shapes: S01E01, Season04Episode12, S02_E05,
// E10.S05 (reversed order) and 3x10.
var seasonPatterns = []*regexp.Regexp{
	regexp.MustCompile(`[Ss](?:eason)?[ ._-]?(?P<season>\d{1,2})[ ._-]?(?:[Ee](?:pisode)?[ ._-]?|[Xx])(?P<episode>\d{1,2})`),
	regexp.MustCompile(`[Ee](?:pisode)?[ ._-]?(?P<episode>\d{1,2})[ ._-]?[Ss](?:eason)?[ ._-]?(?P<season>\d{1,2})`),
	regexp.MustCompile(`(?P<season>\d{1,2})[Xx](?P<episode>\d{1,2})`),
}

// SeasonFolder derives the season folder name (e.g. "S03") from a video file
// path, returning UnknownSeason when no pattern matches.
func SeasonFolder(path string) string {
	for _, pattern := range seasonPatterns {
		groups := util.ReGroups(pattern, path)
		season, ok := groups["season"]
		if !ok || season == "" {
			continue
		}

		n, err := strconv.Atoi(season)
		if err != nil {
			continue
		}
		return fmt.Sprintf("S%02d", n)
	}
	return UnknownSeason
}
