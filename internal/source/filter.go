package source

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/BlakeDanielson/CrowdWork/internal/model"
)

// MinStandupDuration is the shortest video, in seconds, still considered a
// plausible stand-up performance. Clips and shorts fall below it.
const MinStandupDuration = 120.0

// standupKeywords flag titles and descriptions that look like stand-up
// performances. Deliberately broad: the pipeline only narrows later.
var standupKeywords = []string{
	"stand up", "standup", "comedy", "comedian", "special",
	"live", "performance", "club", "theater", "theatre",
	"stage", "routine", "set", "jokes", "laugh",
}

// FilterStandup narrows a channel's video listing to likely stand-up
// performances: long enough, and with a stand-up keyword in the title or
// description. Order is preserved. Returned metas carry the parsed
// duration in seconds.
func FilterStandup(listings []VideoListing) []model.VideoMeta {
	var candidates []model.VideoMeta
	for _, v := range listings {
		seconds := ParseISODuration(v.Duration)
		if seconds < MinStandupDuration {
			continue
		}
		if !matchesStandupKeyword(v.Title, v.Description) {
			continue
		}
		candidates = append(candidates, model.VideoMeta{
			VideoID:  v.VideoID,
			Title:    v.Title,
			Duration: seconds,
		})
	}
	return candidates
}

func matchesStandupKeyword(title, description string) bool {
	title = strings.ToLower(title)
	description = strings.ToLower(description)
	for _, kw := range standupKeywords {
		if strings.Contains(title, kw) || strings.Contains(description, kw) {
			return true
		}
	}
	return false
}

var isoDurationRe = regexp.MustCompile(`PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?`)

// ParseISODuration converts an ISO 8601 duration (PT1H23M45S) to seconds.
// Malformed input parses to zero, which the duration floor then rejects.
func ParseISODuration(duration string) float64 {
	m := isoDurationRe.FindStringSubmatch(duration)
	if m == nil {
		return 0
	}
	hours, _ := strconv.Atoi(zeroIfEmpty(m[1]))
	minutes, _ := strconv.Atoi(zeroIfEmpty(m[2]))
	seconds, _ := strconv.Atoi(zeroIfEmpty(m[3]))
	return float64(hours*3600 + minutes*60 + seconds)
}

func zeroIfEmpty(s string) string {
	if s == "" {
		return "0"
	}
	return s
}
