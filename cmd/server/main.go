package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v3"

	"github.com/BlakeDanielson/CrowdWork/internal/analysis"
	"github.com/BlakeDanielson/CrowdWork/internal/config"
	"github.com/BlakeDanielson/CrowdWork/internal/handler"
	"github.com/BlakeDanielson/CrowdWork/internal/middleware"
	"github.com/BlakeDanielson/CrowdWork/internal/repository"
	"github.com/BlakeDanielson/CrowdWork/internal/router"
	"github.com/BlakeDanielson/CrowdWork/internal/service"
	"github.com/BlakeDanielson/CrowdWork/internal/source"
)

func main() {
	cfg := config.Load()

	middleware.InitLogger(cfg.LogLevel, "crowdwork-api")
	handler.InitMetrics()

	cache := service.NewCacheService(cfg.RedisURL)
	defer cache.Close()

	repo := repository.NewTaskRepo(cfg.TaskRetention)

	segmenter := &analysis.Segmenter{
		GapThreshold: cfg.SegmentGapThreshold,
		MaxDuration:  cfg.SegmentMaxDuration,
		MinDuration:  cfg.SegmentMinDuration,
	}
	classifier := &analysis.Classifier{
		Rules:              analysis.DefaultRuleSet(),
		BaselineConfidence: cfg.BaselineConfidence,
	}

	src := source.NewHTTPSource(cfg.TranscriptAPIURL, cfg.FetchTimeout)

	analysisSvc := service.NewAnalysisService(repo, src, cache, segmenter, classifier, service.AnalysisConfig{
		FetchTimeout: cfg.FetchTimeout,
		FetchRetries: cfg.FetchRetries,
		RetryBackoff: cfg.RetryBackoff,
		MaxVideos:    cfg.MaxVideos,
	})
	statsSvc := service.NewStatsService(repo)

	ctx := context.Background()

	sweeper := service.NewRegistryWorker(repo, cfg.SweepInterval)
	go sweeper.Start(ctx)
	defer sweeper.Stop()

	app := fiber.New(fiber.Config{
		AppName:      "CrowdWork API",
		ServerHeader: "CrowdWork",
	})

	router.Setup(app, &router.Handlers{
		Analyze: handler.NewAnalyzeHandler(analysisSvc),
		Task:    handler.NewTaskHandler(analysisSvc),
		Stats:   handler.NewStatsHandler(statsSvc),
		Health:  handler.NewHealthHandler(repo, cache.Client()),
	}, cfg.CORSOrigins)

	log.Printf("CrowdWork backend starting on :%s (env=%s)", cfg.Port, cfg.Environment)
	log.Fatal(app.Listen(":" + cfg.Port))
}
