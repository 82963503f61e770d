package analysis

import (
	"strings"

	"github.com/BlakeDanielson/CrowdWork/internal/model"
)

// AggregateVideo folds classified segments into one video's duration
// breakdown. Percentages are over the sum of segment durations actually
// analyzed (AnalyzedDuration), not the nominal video length — partial
// transcript coverage makes those differ, and consumers must not conflate
// "percent of video" with "percent of transcribed time".
//
// Degenerate segments (empty text or non-positive duration) are excluded
// from the aggregation and counted in SkippedSegments.
func AggregateVideo(meta model.VideoMeta, segments []model.Segment) model.VideoResult {
	result := model.VideoResult{
		VideoID:  meta.VideoID,
		Title:    meta.Title,
		Duration: meta.Duration,
		Segments: make([]model.Segment, 0, len(segments)),
	}

	for _, seg := range segments {
		if seg.Duration <= 0 || strings.TrimSpace(seg.Text) == "" {
			result.SkippedSegments++
			continue
		}
		result.Segments = append(result.Segments, seg)
		result.AnalyzedDuration += seg.Duration
		if seg.Label == model.LabelCrowdwork {
			result.CrowdworkDuration += seg.Duration
		} else {
			result.MaterialDuration += seg.Duration
		}
	}

	if result.AnalyzedDuration > 0 {
		result.CrowdworkPercentage = result.CrowdworkDuration / result.AnalyzedDuration * 100
		result.MaterialPercentage = result.MaterialDuration / result.AnalyzedDuration * 100
	}

	return result
}

// AggregateChannel folds per-video breakdowns into a duration-weighted
// channel summary. Skipped videos contribute to neither numerator nor
// denominator. Percentages come from the summed durations — never from
// averaging per-video percentages, which would weight a five-minute clip
// the same as an hour-long special.
func AggregateChannel(channelTitle string, videos []model.VideoResult, skipped int) model.ChannelResult {
	result := model.ChannelResult{
		ChannelTitle:   channelTitle,
		Videos:         videos,
		VideosAnalyzed: len(videos),
		VideosSkipped:  skipped,
	}
	if result.Videos == nil {
		result.Videos = []model.VideoResult{}
	}

	for _, v := range videos {
		result.TotalDuration += v.AnalyzedDuration
		result.CrowdworkDuration += v.CrowdworkDuration
		result.MaterialDuration += v.MaterialDuration
	}

	if result.TotalDuration > 0 {
		result.CrowdworkPercentage = result.CrowdworkDuration / result.TotalDuration * 100
		result.MaterialPercentage = result.MaterialDuration / result.TotalDuration * 100
	}

	return result
}
