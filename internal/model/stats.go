package model

// StatsResponse is the API response for GET /api/stats.
type StatsResponse struct {
	TasksTotal      int `json:"tasksTotal"`
	TasksQueued     int `json:"tasksQueued"`
	TasksProcessing int `json:"tasksProcessing"`
	TasksComplete   int `json:"tasksComplete"`
	TasksError      int `json:"tasksError"`
}
