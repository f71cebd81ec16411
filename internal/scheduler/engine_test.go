package scheduler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallConfig() Config {
	return Config{
		Seed: 7,
		Years: []YearConfig{
			{
				Name:     "SY",
				Priority: 0,
				Batches: []BatchConfig{
					{Name: "SY-B1", Subjects: []SubjectConfig{
						{Name: "Maths", Teacher: "Dr. Rao", LectureHours: 4},
						{Name: "Physics", Teacher: "Dr. Iyer", LectureHours: 3, Labs: 1, LabHours: 2, LabName: "Physics"},
					}},
				},
				NumClassrooms: 3,
				NumLabs:       1,
				LabNames:      []string{"Physics"},
			},
			{
				Name:     "TY",
				Priority: 1,
				Batches: []BatchConfig{
					{Name: "TY-B1", Subjects: []SubjectConfig{
						{Name: "Chemistry", Teacher: "Dr. Shah", LectureHours: 4},
					}},
				},
				NumClassrooms: 3,
				NumLabs:       1,
			},
		},
	}
}

func TestEngineGenerateProducesOneResultPerYear(t *testing.T) {
	engine := NewEngine(EngineConfig{})
	results, err := engine.Generate(context.Background(), smallConfig())
	require.NoError(t, err)
	require.Len(t, results, 2)

	byYear := map[string]Result{}
	for _, r := range results {
		byYear[r.Year] = r
		assert.NotEmpty(t, r.RunID)
		assert.NotEmpty(t, r.Grid)
	}
	assert.Contains(t, byYear, "SY")
	assert.Contains(t, byYear, "TY")
}

func TestEngineGenerateRejectsInvalidConfig(t *testing.T) {
	engine := NewEngine(EngineConfig{})
	_, err := engine.Generate(context.Background(), Config{})
	assert.Error(t, err)
}

func TestEngineGenerateIsReproducibleForSameSeed(t *testing.T) {
	engine := NewEngine(EngineConfig{})
	cfg := smallConfig()

	first, err := engine.Generate(context.Background(), cfg)
	require.NoError(t, err)
	second, err := engine.Generate(context.Background(), cfg)
	require.NoError(t, err)

	require.Len(t, first, len(second))
	for i := range first {
		assert.Equal(t, first[i].Year, second[i].Year)
		assert.Equal(t, len(first[i].Warnings), len(second[i].Warnings))
	}
}
