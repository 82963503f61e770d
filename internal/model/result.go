package model

// VideoMeta is the candidate-filter view of a video: just enough to decide
// whether to analyze it and to report it afterwards.
type VideoMeta struct {
	VideoID  string  `json:"videoId"`
	Title    string  `json:"title"`
	Duration float64 `json:"duration"`
}

// VideoResult is one video's duration breakdown. Percentages are computed
// over the sum of analyzed segment durations (AnalyzedDuration), not the
// nominal video length — partial transcript coverage makes those differ.
type VideoResult struct {
	VideoID             string    `json:"videoId"`
	Title               string    `json:"title"`
	Duration            float64   `json:"duration"`
	AnalyzedDuration    float64   `json:"analyzedDuration"`
	Segments            []Segment `json:"segments"`
	SkippedSegments     int       `json:"skippedSegments,omitempty"`
	CrowdworkDuration   float64   `json:"crowdworkDuration"`
	MaterialDuration    float64   `json:"materialDuration"`
	CrowdworkPercentage float64   `json:"crowdworkPercentage"`
	MaterialPercentage  float64   `json:"materialPercentage"`
}

// ChannelResult is the duration-weighted summary across a channel's analyzed
// videos. Percentages always come from summed durations, never from averaging
// per-video percentages.
type ChannelResult struct {
	ChannelTitle        string        `json:"channelTitle"`
	Videos              []VideoResult `json:"videos"`
	VideosAnalyzed      int           `json:"videosAnalyzed"`
	VideosSkipped       int           `json:"videosSkipped"`
	TotalDuration       float64       `json:"totalDuration"`
	CrowdworkDuration   float64       `json:"crowdworkDuration"`
	MaterialDuration    float64       `json:"materialDuration"`
	CrowdworkPercentage float64       `json:"crowdworkPercentage"`
	MaterialPercentage  float64       `json:"materialPercentage"`
}
