package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceLabsUsesCanonicalWindows(t *testing.T) {
	yc := YearConfig{
		Name:          "SY",
		Batches:       []BatchConfig{{Name: "SY-B1", Subjects: []SubjectConfig{{Name: "Physics", Labs: 1, LabHours: 2, LabName: "Physics"}}}},
		NumClassrooms: 2,
		NumLabs:       1,
	}
	ds, buildWarnings := BuildDataset(yc, 0)
	require.Empty(t, buildWarnings)
	m := NewMatrix(ds, yc.effectiveTiming())
	rng := NewRNG(1)

	warnings := PlaceLabs(ds, m, 0, rng)
	assert.Empty(t, warnings)

	require.Len(t, m.placements, 1)
	for _, p := range m.placements {
		slot := m.SlotInDay(p.Row)
		assert.Contains(t, []int{0, 5}, slot)
	}
}

func TestPlaceLabsFitsThreeLabsUnderOnePerDayCap(t *testing.T) {
	yc := YearConfig{
		Name:          "SY",
		Batches:       []BatchConfig{{Name: "SY-B1", Subjects: []SubjectConfig{{Name: "Physics", Labs: 1, LabHours: 2}, {Name: "Chem", Labs: 1, LabHours: 2}, {Name: "Bio", Labs: 1, LabHours: 2}}}},
		NumClassrooms: 1,
		NumLabs:       1,
	}
	ds, _ := BuildDataset(yc, 0)
	m := NewMatrix(ds, yc.effectiveTiming())
	rng := NewRNG(1)

	// 3 two-slot labs for one group, one lab room, capped at one lab per day:
	// 3 labs across 5 days fits comfortably, so nothing should go unplaced.
	warnings := PlaceLabs(ds, m, 1, rng)
	assert.Empty(t, warnings)
	assert.Len(t, m.placements, 3)
}
