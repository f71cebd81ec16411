// Command timetable-gen is a thin CLI driver around the timetable engine: it
// loads a JSON configuration file, runs the full multi-year pipeline, and
// prints each year's grid to stdout (one JSON object per line) with any
// warnings on stderr.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/campusforge/timetable/internal/dto"
	"github.com/campusforge/timetable/internal/scheduler"
	"github.com/campusforge/timetable/pkg/cache"
	"github.com/campusforge/timetable/pkg/config"
	"github.com/campusforge/timetable/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "timetable-gen:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(cfg)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer log.Sync() //nolint:errcheck

	req, err := loadRequest(cfg.ConfigPath)
	if err != nil {
		return fmt.Errorf("load timetable config %q: %w", cfg.ConfigPath, err)
	}
	if req.Seed == 0 {
		req.Seed = cfg.Seed
	}

	metrics := scheduler.NewMetrics(nil)
	resultCache := buildResultCache(cfg, log)

	engine := scheduler.NewEngine(scheduler.EngineConfig{
		Logger:  log,
		Metrics: metrics,
		Cache:   resultCache,
		Workers: cfg.Scheduler.Workers,
	})

	svcConfig := toEngineRequest(req)
	results, err := engine.Generate(context.Background(), svcConfig)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	encoder := json.NewEncoder(os.Stdout)
	for _, r := range results {
		if err := encoder.Encode(r); err != nil {
			return fmt.Errorf("encode result: %w", err)
		}
		for _, w := range r.Warnings {
			fmt.Fprintf(os.Stderr, "[%s] %s: %s\n", w.Year, w.Kind, w.Message)
		}
	}
	return nil
}

func loadRequest(path string) (dto.GenerateTimetableRequest, error) {
	var req dto.GenerateTimetableRequest
	raw, err := os.ReadFile(path)
	if err != nil {
		return req, err
	}
	if err := json.Unmarshal(raw, &req); err != nil {
		return req, err
	}
	return req, nil
}

func toEngineRequest(req dto.GenerateTimetableRequest) scheduler.Config {
	years := make([]scheduler.YearConfig, 0, len(req.Years))
	for _, y := range req.Years {
		batches := make([]scheduler.BatchConfig, 0, len(y.Batches))
		for _, b := range y.Batches {
			subjects := make([]scheduler.SubjectConfig, 0, len(b.Subjects))
			for _, s := range b.Subjects {
				subjects = append(subjects, scheduler.SubjectConfig{
					Name: s.Name, Teacher: s.Teacher,
					LectureHours: s.LectureHours, Labs: s.Labs, LabHours: s.LabHours, LabName: s.LabName,
				})
			}
			batches = append(batches, scheduler.BatchConfig{Name: b.Name, Subjects: subjects})
		}
		years = append(years, scheduler.YearConfig{
			Name: y.Name, Priority: y.Priority, Batches: batches,
			NumClassrooms: y.NumClassrooms, NumLabs: y.NumLabs,
			LabNames: y.LabNames, MaxLabsPerDay: y.MaxLabsPerDay,
		})
	}
	return scheduler.Config{Years: years, Seed: req.Seed}
}

func buildResultCache(cfg *config.Config, log *zap.Logger) scheduler.ResultCache {
	if !cfg.Scheduler.CacheEnabled {
		return scheduler.NoopResultCache{}
	}
	client, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		log.Warn("redis result cache unavailable, falling back to no-op", zap.Error(err))
		return scheduler.NoopResultCache{}
	}
	return scheduler.NewRedisResultCache(client)
}
