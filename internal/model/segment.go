package model

// Label values for classified segments.
const (
	LabelCrowdwork = "crowdwork"
	LabelMaterial  = "material"
)

// Cue is a single timed caption as returned by the transcript source.
// Times are in seconds. Cues arrive ordered by Start but may overlap or
// leave gaps; the segmenter is responsible for normalizing that.
type Cue struct {
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
	Text     string  `json:"text"`
}

// End returns the cue's end time in seconds.
func (c Cue) End() float64 {
	return c.Start + c.Duration
}

// PatternMatch records one classification rule that fired on a segment,
// including losing-category matches, so results stay explainable.
type PatternMatch struct {
	PatternID   string `json:"patternId"`
	MatchedText string `json:"matchedText"`
	Category    string `json:"category"`
}

// Segment is a merged span of cues carrying one classification.
// The segmenter produces it with Label empty; the classifier fills in
// Label, Confidence and MatchedPatterns.
type Segment struct {
	Start           float64        `json:"start"`
	Duration        float64        `json:"duration"`
	Text            string         `json:"text"`
	Label           string         `json:"label,omitempty"`
	Confidence      float64        `json:"confidence"`
	MatchedPatterns []PatternMatch `json:"matchedPatterns,omitempty"`
}
