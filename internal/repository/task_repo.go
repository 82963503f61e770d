package repository

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/BlakeDanielson/CrowdWork/internal/model"
)

// DefaultTaskRetention is how long a terminal task stays readable before
// the sweeper evicts it.
const DefaultTaskRetention = 30 * time.Minute

// TaskRepo is the process-wide task registry. Entries are inserted on
// submit, mutated only through Update under the repo lock (the orchestrator
// run for a task ID is its single logical writer), and read as deep-copied
// snapshots so pollers never observe torn state. Terminal tasks are evicted
// after a retention period.
type TaskRepo struct {
	mu        sync.RWMutex
	tasks     map[string]*model.Task
	retention time.Duration
}

// NewTaskRepo creates an empty registry with the given retention for
// terminal tasks.
func NewTaskRepo(retention time.Duration) *TaskRepo {
	if retention <= 0 {
		retention = DefaultTaskRetention
	}
	return &TaskRepo{
		tasks:     make(map[string]*model.Task),
		retention: retention,
	}
}

// Create registers a new QUEUED task for the given channel reference and
// returns a snapshot of it.
func (r *TaskRepo) Create(channelRef string) *model.Task {
	now := time.Now().UTC()
	task := &model.Task{
		TaskID:     uuid.NewString(),
		Status:     model.StatusQueued,
		Progress:   0,
		ChannelRef: channelRef,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.tasks[task.TaskID] = task

	return cloneTask(task)
}

// Get returns a snapshot of the task, or false if it is unknown or already
// evicted. Reading is side-effect free. The clone is taken under the read
// lock so a concurrent Update can never hand a poller a half-written task.
func (r *TaskRepo) Get(taskID string) (*model.Task, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	task, ok := r.tasks[taskID]
	if !ok {
		return nil, false
	}
	return cloneTask(task), true
}

// Update applies fn to the stored task under the registry lock and returns
// false if the task is unknown. Two invariants are enforced here rather
// than trusted to callers: a terminal task is never mutated again, and
// progress never decreases.
func (r *TaskRepo) Update(taskID string, fn func(*model.Task)) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[taskID]
	if !ok {
		return false
	}
	if model.IsTerminal(task.Status) {
		return false
	}

	prevProgress := task.Progress
	fn(task)
	if task.Progress < prevProgress {
		task.Progress = prevProgress
	}
	if task.Progress > 100 {
		task.Progress = 100
	}
	task.UpdatedAt = time.Now().UTC()
	return true
}

// Sweep evicts terminal tasks whose last update is older than the
// retention period and returns how many were removed.
func (r *TaskRepo) Sweep(now time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, task := range r.tasks {
		if model.IsTerminal(task.Status) && now.Sub(task.UpdatedAt) > r.retention {
			delete(r.tasks, id)
			removed++
		}
	}
	return removed
}

// CountByStatus returns the number of registered tasks per status.
func (r *TaskRepo) CountByStatus() map[string]int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make(map[string]int, 4)
	for _, task := range r.tasks {
		counts[task.Status]++
	}
	return counts
}

// Len returns the number of registered tasks.
func (r *TaskRepo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tasks)
}

// cloneTask deep-copies the mutable parts of a task. Finished video
// results and their segments are immutable once appended, so copying the
// slice headers and elements is enough to isolate readers from the writer.
func cloneTask(t *model.Task) *model.Task {
	out := *t
	if t.PartialVideos != nil {
		out.PartialVideos = make([]model.VideoResult, len(t.PartialVideos))
		copy(out.PartialVideos, t.PartialVideos)
	}
	if t.Result != nil {
		res := *t.Result
		res.Videos = make([]model.VideoResult, len(t.Result.Videos))
		copy(res.Videos, t.Result.Videos)
		out.Result = &res
	}
	return &out
}
