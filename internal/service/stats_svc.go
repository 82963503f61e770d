package service

import (
	"github.com/BlakeDanielson/CrowdWork/internal/model"
	"github.com/BlakeDanielson/CrowdWork/internal/repository"
)

// StatsService reports aggregate registry statistics.
type StatsService struct {
	repo *repository.TaskRepo
}

func NewStatsService(repo *repository.TaskRepo) *StatsService {
	return &StatsService{repo: repo}
}

// GetStats returns the current task counts by status.
func (s *StatsService) GetStats() *model.StatsResponse {
	counts := s.repo.CountByStatus()
	return &model.StatsResponse{
		TasksTotal:      s.repo.Len(),
		TasksQueued:     counts[model.StatusQueued],
		TasksProcessing: counts[model.StatusProcessing],
		TasksComplete:   counts[model.StatusComplete],
		TasksError:      counts[model.StatusError],
	}
}
