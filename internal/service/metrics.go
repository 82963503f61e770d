package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Pipeline-level Prometheus collectors. HTTP-level metrics live in the
// handler package; these cover the background analysis work.
var (
	metricTasksSubmitted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "crowdwork_tasks_submitted_total",
		Help: "Total analysis tasks submitted.",
	})

	metricTasksCompleted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "crowdwork_tasks_finished_total",
		Help: "Total analysis tasks reaching a terminal state, by status.",
	}, []string{"status"})

	metricTaskDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "crowdwork_task_duration_seconds",
		Help:    "Wall-clock duration of completed analysis tasks.",
		Buckets: prometheus.ExponentialBuckets(0.5, 2, 10),
	})

	metricVideosAnalyzed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "crowdwork_videos_analyzed_total",
		Help: "Total videos successfully analyzed.",
	})

	metricVideosSkipped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "crowdwork_videos_skipped_total",
		Help: "Total videos skipped for missing or unfetchable transcripts.",
	})

	metricSegmentsClassified = promauto.NewCounter(prometheus.CounterOpts{
		Name: "crowdwork_segments_classified_total",
		Help: "Total transcript segments classified.",
	})

	metricCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "crowdwork_transcript_cache_hits_total",
		Help: "Total transcript/listing cache hits.",
	})

	metricCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "crowdwork_transcript_cache_misses_total",
		Help: "Total transcript/listing cache misses.",
	})
)
