package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port        string
	RedisURL    string
	LogLevel    string
	Environment string
	CORSOrigins string

	// External transcript source
	TranscriptAPIURL string
	FetchTimeout     time.Duration
	FetchRetries     int
	RetryBackoff     time.Duration

	// Analysis tunables
	SegmentGapThreshold float64
	SegmentMaxDuration  float64
	SegmentMinDuration  float64
	BaselineConfidence  float64
	MaxVideos           int

	// Task registry
	TaskRetention time.Duration
	SweepInterval time.Duration
}

func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		RedisURL:    getEnv("REDIS_URL", "redis://localhost:6379"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		Environment: getEnv("ENVIRONMENT", "development"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),

		TranscriptAPIURL: getEnv("TRANSCRIPT_API_URL", "http://localhost:8081"),
		FetchTimeout:     getDuration("FETCH_TIMEOUT", 10*time.Second),
		FetchRetries:     getInt("FETCH_RETRIES", 2),
		RetryBackoff:     getDuration("RETRY_BACKOFF", 2*time.Second),

		SegmentGapThreshold: getFloat("SEGMENT_GAP_THRESHOLD", 1.5),
		SegmentMaxDuration:  getFloat("SEGMENT_MAX_DURATION", 20),
		SegmentMinDuration:  getFloat("SEGMENT_MIN_DURATION", 3),
		BaselineConfidence:  getFloat("BASELINE_CONFIDENCE", 0.5),
		MaxVideos:           getInt("MAX_VIDEOS", 5),

		TaskRetention: getDuration("TASK_RETENTION", 30*time.Minute),
		SweepInterval: getDuration("SWEEP_INTERVAL", 5*time.Minute),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
