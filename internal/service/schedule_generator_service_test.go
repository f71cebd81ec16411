package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusforge/timetable/internal/dto"
	"github.com/campusforge/timetable/internal/scheduler"
)

func sampleRequest() dto.GenerateTimetableRequest {
	return dto.GenerateTimetableRequest{
		Seed: 3,
		Years: []dto.YearRequest{
			{
				Name:          "SY",
				NumClassrooms: 2,
				NumLabs:       1,
				Batches: []dto.BatchRequest{
					{Name: "SY-B1", Subjects: []dto.SubjectRequest{
						{Name: "Maths", Teacher: "Dr. Rao", LectureHours: 3},
					}},
				},
			},
		},
	}
}

func TestGenerateReturnsOneYearPerRequest(t *testing.T) {
	engine := scheduler.NewEngine(scheduler.EngineConfig{})
	svc := NewScheduleGeneratorService(engine, nil, nil)

	resp, err := svc.Generate(context.Background(), sampleRequest())
	require.NoError(t, err)
	require.Len(t, resp.Years, 1)
	assert.Equal(t, "SY", resp.Years[0].Year)
	assert.Contains(t, resp.Years[0].Grid, "SY-B1")
}

func TestGenerateRejectsEmptyYears(t *testing.T) {
	engine := scheduler.NewEngine(scheduler.EngineConfig{})
	svc := NewScheduleGeneratorService(engine, nil, nil)

	_, err := svc.Generate(context.Background(), dto.GenerateTimetableRequest{})
	assert.Error(t, err)
}
