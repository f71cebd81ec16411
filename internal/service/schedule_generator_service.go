package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/campusforge/timetable/internal/dto"
	"github.com/campusforge/timetable/internal/scheduler"
	appErrors "github.com/campusforge/timetable/pkg/errors"
)

// ScheduleGeneratorService validates a generation request, drives the
// timetable engine, and shapes the result back into the DTO boundary —
// the same validate-then-orchestrate-then-respond shape as every other
// generator in this codebase, just backed by the real construction and
// repair pipeline instead of a single greedy pass.
type ScheduleGeneratorService struct {
	engine    *scheduler.Engine
	validator *validator.Validate
	logger    *zap.Logger
}

// NewScheduleGeneratorService wires a generator service around an Engine.
func NewScheduleGeneratorService(engine *scheduler.Engine, validate *validator.Validate, logger *zap.Logger) *ScheduleGeneratorService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScheduleGeneratorService{engine: engine, validator: validate, logger: logger}
}

// Generate runs the full multi-year pipeline for the requested years.
func (s *ScheduleGeneratorService) Generate(ctx context.Context, req dto.GenerateTimetableRequest) (*dto.GenerateTimetableResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid timetable generation request")
	}

	cfg := toEngineConfig(req)
	if err := cfg.Validate(); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid year configuration")
	}

	results, err := s.engine.Generate(ctx, cfg)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "timetable generation failed")
	}

	s.logger.Info("timetable generation complete", zap.Int("years", len(results)))
	return toResponse(results), nil
}

func toEngineConfig(req dto.GenerateTimetableRequest) scheduler.Config {
	years := make([]scheduler.YearConfig, 0, len(req.Years))
	for _, y := range req.Years {
		batches := make([]scheduler.BatchConfig, 0, len(y.Batches))
		for _, b := range y.Batches {
			subjects := make([]scheduler.SubjectConfig, 0, len(b.Subjects))
			for _, subj := range b.Subjects {
				subjects = append(subjects, scheduler.SubjectConfig{
					Name:         subj.Name,
					Teacher:      subj.Teacher,
					LectureHours: subj.LectureHours,
					Labs:         subj.Labs,
					LabHours:     subj.LabHours,
					LabName:      subj.LabName,
				})
			}
			batches = append(batches, scheduler.BatchConfig{Name: b.Name, Subjects: subjects})
		}
		years = append(years, scheduler.YearConfig{
			Name:          y.Name,
			Priority:      y.Priority,
			Batches:       batches,
			NumClassrooms: y.NumClassrooms,
			NumLabs:       y.NumLabs,
			LabNames:      y.LabNames,
			MaxLabsPerDay: y.MaxLabsPerDay,
		})
	}
	return scheduler.Config{Years: years, Seed: req.Seed}
}

func toResponse(results []scheduler.Result) *dto.GenerateTimetableResponse {
	resp := &dto.GenerateTimetableResponse{Years: make([]dto.YearResultResponse, 0, len(results))}
	for _, r := range results {
		grid := make(map[string][]*dto.CellResponse, len(r.Grid))
		for group, cells := range r.Grid {
			row := make([]*dto.CellResponse, len(cells))
			for i, c := range cells {
				if c == nil {
					continue
				}
				row[i] = &dto.CellResponse{Subject: c.Subject, Teacher: c.Teacher, Room: c.Room}
			}
			grid[group] = row
		}

		warnings := make([]dto.WarningResponse, 0, len(r.Warnings))
		for _, w := range r.Warnings {
			warnings = append(warnings, dto.WarningResponse{
				Kind: w.Kind.String(), Year: w.Year, Group: w.Group,
				Teacher: w.Teacher, Subject: w.Subject, Message: w.Message,
			})
		}

		resp.Years = append(resp.Years, dto.YearResultResponse{
			RunID: r.RunID, Year: r.Year, Grid: grid, Warnings: warnings,
		})
	}
	return resp
}
