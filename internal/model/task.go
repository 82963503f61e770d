package model

import "time"

// Task statuses. A task never leaves a terminal state.
const (
	StatusQueued     = "QUEUED"
	StatusProcessing = "PROCESSING"
	StatusComplete   = "COMPLETE"
	StatusError      = "ERROR"
)

// IsTerminal reports whether status is COMPLETE or ERROR.
func IsTerminal(status string) bool {
	return status == StatusComplete || status == StatusError
}

// Task tracks one channel analysis from submission to a terminal outcome.
// Result is set only when COMPLETE; Error only when ERROR. Progress is
// 0-100 and monotonically non-decreasing while the task is live.
type Task struct {
	TaskID        string         `json:"taskId"`
	Status        string         `json:"status"`
	Progress      int            `json:"progress"`
	ChannelRef    string         `json:"channelRef"`
	PartialVideos []VideoResult  `json:"partialVideos,omitempty"`
	Result        *ChannelResult `json:"result,omitempty"`
	Error         string         `json:"error,omitempty"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

// SubmitResponse is the API response for POST /api/analyze.
type SubmitResponse struct {
	TaskID string `json:"taskId"`
}

// TaskResponse is the polling view of a task. PartialVideos carries the
// per-video results finished so far and is only populated while PROCESSING;
// the terminal update folds them into Result.
type TaskResponse struct {
	TaskID        string         `json:"taskId"`
	Status        string         `json:"status"`
	Progress      int            `json:"progress"`
	PartialVideos []VideoResult  `json:"partialVideos,omitempty"`
	Result        *ChannelResult `json:"result,omitempty"`
	Error         string         `json:"error,omitempty"`
}
