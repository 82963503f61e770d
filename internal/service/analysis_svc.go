package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/BlakeDanielson/CrowdWork/internal/analysis"
	"github.com/BlakeDanielson/CrowdWork/internal/model"
	"github.com/BlakeDanielson/CrowdWork/internal/repository"
	"github.com/BlakeDanielson/CrowdWork/internal/source"
)

// AnalysisConfig carries the orchestration tunables.
type AnalysisConfig struct {
	FetchTimeout time.Duration // per-attempt transcript fetch timeout
	FetchRetries int           // retries after the first attempt
	RetryBackoff time.Duration // linear backoff between attempts
	MaxVideos    int           // hard cap on candidates per task
}

// AnalysisService orchestrates channel analyses: it owns task submission,
// runs the segment → classify → aggregate pipeline per video in a
// background goroutine, and publishes progress to the task registry. The
// goroutine started by Submit is the only writer for its task ID.
type AnalysisService struct {
	repo       *repository.TaskRepo
	src        source.Source
	cache      *CacheService
	segmenter  *analysis.Segmenter
	classifier *analysis.Classifier
	cfg        AnalysisConfig
}

func NewAnalysisService(repo *repository.TaskRepo, src source.Source, cache *CacheService,
	segmenter *analysis.Segmenter, classifier *analysis.Classifier, cfg AnalysisConfig) *AnalysisService {
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = 10 * time.Second
	}
	if cfg.MaxVideos <= 0 {
		cfg.MaxVideos = 5
	}
	return &AnalysisService{
		repo:       repo,
		src:        src,
		cache:      cache,
		segmenter:  segmenter,
		classifier: classifier,
		cfg:        cfg,
	}
}

// Submit validates the channel reference, registers a QUEUED task and
// launches its analysis run. A malformed reference is rejected here and no
// task is created. The returned task ID is immediately pollable.
func (s *AnalysisService) Submit(channelRef string, maxVideos int) (string, error) {
	ref, err := source.ParseChannelRef(channelRef)
	if err != nil {
		return "", err
	}

	if maxVideos <= 0 || maxVideos > s.cfg.MaxVideos {
		maxVideos = s.cfg.MaxVideos
	}

	task := s.repo.Create(ref.String())
	metricTasksSubmitted.Inc()
	go s.run(task.TaskID, ref, maxVideos)

	return task.TaskID, nil
}

// GetTask returns the polling view of a task. Read-only: it never touches
// processing.
func (s *AnalysisService) GetTask(taskID string) (*model.TaskResponse, bool) {
	task, ok := s.repo.Get(taskID)
	if !ok {
		return nil, false
	}
	return &model.TaskResponse{
		TaskID:        task.TaskID,
		Status:        task.Status,
		Progress:      task.Progress,
		PartialVideos: task.PartialVideos,
		Result:        task.Result,
		Error:         task.Error,
	}, true
}

// run drives one task to a terminal state. Per-video data failures become
// skips; only structural failures (unresolvable channel, zero candidates)
// abort the task. There is no cancellation: a submitted task always
// reaches COMPLETE or ERROR.
func (s *AnalysisService) run(taskID string, ref source.ChannelRef, maxVideos int) {
	ctx := context.Background()
	start := time.Now()

	s.repo.Update(taskID, func(t *model.Task) {
		t.Status = model.StatusProcessing
		t.Progress = 5
	})

	channel, listings, err := s.resolveChannel(ctx, ref)
	if err != nil {
		log.Printf("analysis: task %s: resolve %s failed: %v", taskID, ref, err)
		s.fail(taskID, fmt.Sprintf("could not resolve channel %s: %v", ref, err))
		return
	}

	candidates := source.FilterStandup(listings)
	if len(candidates) == 0 {
		s.fail(taskID, "no stand-up videos found for this channel")
		return
	}
	if len(candidates) > maxVideos {
		candidates = candidates[:maxVideos]
	}

	s.repo.Update(taskID, func(t *model.Task) {
		t.Progress = 10
	})

	var (
		results []model.VideoResult
		skipped int
		total   = len(candidates)
	)

	for i, meta := range candidates {
		outcome, err := s.fetchTranscript(ctx, meta.VideoID)
		switch {
		case err != nil:
			log.Printf("analysis: task %s: video %s skipped after retries: %v", taskID, meta.VideoID, err)
			skipped++
			metricVideosSkipped.Inc()
		case outcome.Unavailable:
			log.Printf("analysis: task %s: video %s skipped: %s", taskID, meta.VideoID, outcome.Reason)
			skipped++
			metricVideosSkipped.Inc()
		default:
			results = append(results, s.analyzeVideo(meta, outcome.Cues))
			metricVideosAnalyzed.Inc()
		}

		// The final video's progress lands in the terminal update below,
		// so pollers never see 100 on a non-terminal task.
		if done := i + 1; done < total {
			partial := make([]model.VideoResult, len(results))
			copy(partial, results)
			s.repo.Update(taskID, func(t *model.Task) {
				t.Progress = 10 + done*90/total
				t.PartialVideos = partial
			})
		}
	}

	// A completed task with zero analyzed videos is still a valid,
	// honestly-reported result.
	channelResult := analysis.AggregateChannel(channel.Title, results, skipped)
	s.repo.Update(taskID, func(t *model.Task) {
		t.Status = model.StatusComplete
		t.Progress = 100
		t.Result = &channelResult
		t.PartialVideos = nil
	})

	metricTasksCompleted.WithLabelValues(model.StatusComplete).Inc()
	metricTaskDuration.Observe(time.Since(start).Seconds())
	log.Printf("analysis: task %s complete: %d analyzed, %d skipped, %.1f%% crowdwork (%s)",
		taskID, channelResult.VideosAnalyzed, channelResult.VideosSkipped,
		channelResult.CrowdworkPercentage, time.Since(start).Round(time.Millisecond))
}

// analyzeVideo runs the per-video pipeline: segment, classify, aggregate.
func (s *AnalysisService) analyzeVideo(meta model.VideoMeta, cues []model.Cue) model.VideoResult {
	segments := s.segmenter.Segment(cues)
	for i := range segments {
		segments[i] = s.classifier.Classify(segments[i])
	}
	metricSegmentsClassified.Add(float64(len(segments)))
	return analysis.AggregateVideo(meta, segments)
}

// fail moves the task to ERROR with a descriptive reason.
func (s *AnalysisService) fail(taskID, reason string) {
	s.repo.Update(taskID, func(t *model.Task) {
		t.Status = model.StatusError
		t.Progress = 100
		t.Error = reason
	})
	metricTasksCompleted.WithLabelValues(model.StatusError).Inc()
}

type cachedListing struct {
	Channel source.Channel        `json:"channel"`
	Videos  []source.VideoListing `json:"videos"`
}

// resolveChannel resolves a reference through the listing cache, falling
// back to the upstream source on a miss.
func (s *AnalysisService) resolveChannel(ctx context.Context, ref source.ChannelRef) (*source.Channel, []source.VideoListing, error) {
	if s.cache != nil {
		cached, err := s.cache.GetListing(ctx, ref.String())
		if err != nil {
			log.Printf("cache: listing get error: %v", err)
		} else if cached != nil {
			var entry cachedListing
			if err := json.Unmarshal(cached, &entry); err == nil {
				metricCacheHits.Inc()
				return &entry.Channel, entry.Videos, nil
			}
		}
		metricCacheMisses.Inc()
	}

	channel, videos, err := s.src.ResolveChannel(ctx, ref)
	if err != nil {
		return nil, nil, err
	}

	if s.cache != nil {
		entry := cachedListing{Channel: *channel, Videos: videos}
		if err := s.cache.SetListing(ctx, ref.String(), entry); err != nil {
			log.Printf("cache: listing set error: %v", err)
		}
	}

	return channel, videos, nil
}

// fetchTranscript fetches one video's cues through the transcript cache,
// retrying transport errors with linear backoff. An unavailable outcome is
// definitive and never retried. Exhausted retries surface as an error,
// which the caller turns into a skip.
func (s *AnalysisService) fetchTranscript(ctx context.Context, videoID string) (*source.FetchOutcome, error) {
	if s.cache != nil {
		cached, err := s.cache.GetTranscript(ctx, videoID)
		if err != nil {
			log.Printf("cache: transcript get error: %v", err)
		} else if cached != nil {
			var cues []model.Cue
			if err := json.Unmarshal(cached, &cues); err == nil {
				metricCacheHits.Inc()
				return &source.FetchOutcome{Cues: cues}, nil
			}
		}
		metricCacheMisses.Inc()
	}

	var lastErr error
	for attempt := 0; attempt <= s.cfg.FetchRetries; attempt++ {
		if attempt > 0 && s.cfg.RetryBackoff > 0 {
			time.Sleep(time.Duration(attempt) * s.cfg.RetryBackoff)
		}

		attemptCtx, cancel := context.WithTimeout(ctx, s.cfg.FetchTimeout)
		outcome, err := s.src.FetchTranscript(attemptCtx, videoID)
		cancel()

		if err != nil {
			lastErr = err
			continue
		}

		if s.cache != nil && !outcome.Unavailable && len(outcome.Cues) > 0 {
			if err := s.cache.SetTranscript(ctx, videoID, outcome.Cues); err != nil {
				log.Printf("cache: transcript set error: %v", err)
			}
		}
		return outcome, nil
	}

	return nil, fmt.Errorf("fetch failed after %d attempts: %w", s.cfg.FetchRetries+1, lastErr)
}
