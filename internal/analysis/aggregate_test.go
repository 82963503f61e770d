package analysis

import (
	"testing"

	"github.com/BlakeDanielson/CrowdWork/internal/model"
)

func TestAggregateVideo_DurationBreakdown(t *testing.T) {
	meta := model.VideoMeta{VideoID: "vid1", Title: "Live at the Cellar", Duration: 600}
	segments := []model.Segment{
		{Duration: 120, Text: "where are you from", Label: model.LabelCrowdwork},
		{Duration: 60, Text: "what's your name", Label: model.LabelCrowdwork},
		{Duration: 300, Text: "so i was at the airport", Label: model.LabelMaterial},
		{Duration: 120, Text: "growing up we had nothing", Label: model.LabelMaterial},
	}

	result := AggregateVideo(meta, segments)

	if !almostEqual(result.AnalyzedDuration, 600, 1e-6) {
		t.Errorf("analyzed duration = %.2f, want 600", result.AnalyzedDuration)
	}
	if !almostEqual(result.CrowdworkDuration+result.MaterialDuration, result.AnalyzedDuration, 1e-6) {
		t.Errorf("crowdwork %.2f + material %.2f != analyzed %.2f",
			result.CrowdworkDuration, result.MaterialDuration, result.AnalyzedDuration)
	}
	if !almostEqual(result.CrowdworkPercentage, 30, 1e-6) {
		t.Errorf("crowdwork percentage = %.4f, want 30", result.CrowdworkPercentage)
	}
	if !almostEqual(result.CrowdworkPercentage+result.MaterialPercentage, 100, 1e-4) {
		t.Errorf("percentages sum to %.6f, want 100", result.CrowdworkPercentage+result.MaterialPercentage)
	}
}

func TestAggregateVideo_EmptyTranscript(t *testing.T) {
	result := AggregateVideo(model.VideoMeta{VideoID: "vid1"}, nil)

	// Zero analyzed time must yield zero percentages, never NaN.
	if result.CrowdworkPercentage != 0 || result.MaterialPercentage != 0 {
		t.Errorf("percentages = %.2f/%.2f, want 0/0",
			result.CrowdworkPercentage, result.MaterialPercentage)
	}
	if result.AnalyzedDuration != 0 {
		t.Errorf("analyzed duration = %.2f, want 0", result.AnalyzedDuration)
	}
}

func TestAggregateVideo_SkipsDegenerateSegments(t *testing.T) {
	segments := []model.Segment{
		{Duration: 100, Text: "real segment", Label: model.LabelMaterial},
		{Duration: 0, Text: "zero duration", Label: model.LabelMaterial},
		{Duration: 50, Text: "   ", Label: model.LabelCrowdwork},
	}

	result := AggregateVideo(model.VideoMeta{VideoID: "vid1"}, segments)

	if result.SkippedSegments != 2 {
		t.Errorf("skipped segments = %d, want 2", result.SkippedSegments)
	}
	if !almostEqual(result.AnalyzedDuration, 100, 1e-6) {
		t.Errorf("analyzed duration = %.2f, want 100", result.AnalyzedDuration)
	}
	if len(result.Segments) != 1 {
		t.Errorf("kept %d segments, want 1", len(result.Segments))
	}
}

func TestAggregateChannel_DurationWeighted(t *testing.T) {
	videos := []model.VideoResult{
		{VideoID: "a", AnalyzedDuration: 600, CrowdworkDuration: 180, MaterialDuration: 420,
			CrowdworkPercentage: 30, MaterialPercentage: 70},
		{VideoID: "b", AnalyzedDuration: 1200, CrowdworkDuration: 120, MaterialDuration: 1080,
			CrowdworkPercentage: 10, MaterialPercentage: 90},
	}

	result := AggregateChannel("Some Comedian", videos, 0)

	// (180+120)/(600+1200) = 16.67%. Averaging the per-video percentages
	// would wrongly give 20%.
	if !almostEqual(result.CrowdworkPercentage, 100.0*300/1800, 1e-6) {
		t.Errorf("crowdwork percentage = %.4f, want %.4f", result.CrowdworkPercentage, 100.0*300/1800)
	}
	if almostEqual(result.CrowdworkPercentage, 20, 1e-6) {
		t.Error("channel percentage equals the naive mean of per-video percentages")
	}
	if !almostEqual(result.TotalDuration, 1800, 1e-6) {
		t.Errorf("total duration = %.2f, want 1800", result.TotalDuration)
	}
	if result.VideosAnalyzed != 2 {
		t.Errorf("videos analyzed = %d, want 2", result.VideosAnalyzed)
	}
}

func TestAggregateChannel_NoVideos(t *testing.T) {
	result := AggregateChannel("Some Comedian", nil, 3)

	if result.CrowdworkPercentage != 0 || result.MaterialPercentage != 0 {
		t.Errorf("percentages = %.2f/%.2f, want 0/0",
			result.CrowdworkPercentage, result.MaterialPercentage)
	}
	if result.VideosSkipped != 3 {
		t.Errorf("videos skipped = %d, want 3", result.VideosSkipped)
	}
	if result.Videos == nil {
		t.Error("Videos should be an empty slice, not nil")
	}
}
