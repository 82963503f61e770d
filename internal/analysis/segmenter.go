package analysis

import (
	"strings"

	"github.com/BlakeDanielson/CrowdWork/internal/model"
)

// Default segmentation thresholds, in seconds. Tunable via config.
const (
	DefaultGapThreshold = 1.5
	DefaultMaxDuration  = 20.0
	DefaultMinDuration  = 3.0
)

// Segmenter merges raw timed cues into classification-ready segments.
// A boundary is forced when the silence gap between cues reaches
// GapThreshold, when the accumulated duration reaches MaxDuration, or when
// the accumulated text ends a sentence and the segment is at least
// MinDuration long. Segmentation is deterministic and duration-preserving:
// segment durations always sum to the sum of the input cue durations.
type Segmenter struct {
	GapThreshold float64
	MaxDuration  float64
	MinDuration  float64
}

// NewSegmenter returns a segmenter with the default thresholds.
func NewSegmenter() *Segmenter {
	return &Segmenter{
		GapThreshold: DefaultGapThreshold,
		MaxDuration:  DefaultMaxDuration,
		MinDuration:  DefaultMinDuration,
	}
}

// Segment walks cues in order and groups them into unclassified segments.
// A single cue longer than MaxDuration becomes its own segment, never
// truncated. No cue time is dropped or double-counted.
func (s *Segmenter) Segment(cues []model.Cue) []model.Segment {
	if len(cues) == 0 {
		return nil
	}

	segments := make([]model.Segment, 0, len(cues)/4+1)

	var (
		parts    []string
		start    float64
		duration float64
		prevEnd  float64
		open     bool
	)

	flush := func() {
		if !open {
			return
		}
		segments = append(segments, model.Segment{
			Start:    start,
			Duration: duration,
			Text:     strings.Join(parts, " "),
		})
		parts = parts[:0]
		duration = 0
		open = false
	}

	for _, cue := range cues {
		if open {
			gap := cue.Start - prevEnd
			switch {
			case gap >= s.GapThreshold:
				flush()
			case duration >= s.MaxDuration:
				flush()
			case duration >= s.MinDuration && endsSentence(parts):
				flush()
			}
		}

		if !open {
			start = cue.Start
			open = true
		}
		if text := strings.TrimSpace(cue.Text); text != "" {
			parts = append(parts, text)
		}
		duration += cue.Duration
		prevEnd = cue.End()
	}
	flush()

	return segments
}

// endsSentence reports whether the accumulated text so far ends in
// terminal punctuation.
func endsSentence(parts []string) bool {
	if len(parts) == 0 {
		return false
	}
	last := parts[len(parts)-1]
	switch last[len(last)-1] {
	case '.', '!', '?':
		return true
	}
	return false
}
