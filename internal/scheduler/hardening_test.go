package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hardeningFixture() (*Dataset, *Matrix) {
	yc := YearConfig{
		Name: "SY",
		Batches: []BatchConfig{
			{Name: "SY-B1", Subjects: []SubjectConfig{
				{Name: "Maths", Teacher: "Dr. Rao", LectureHours: 4},
				{Name: "Physics", Teacher: "Dr. Iyer", LectureHours: 3, Labs: 1, LabHours: 2, LabName: "Physics"},
			}},
		},
		NumClassrooms: 3,
		NumLabs:       1,
		LabNames:      []string{"Physics"},
	}
	ds, _ := BuildDataset(yc, 0)
	m := NewMatrix(ds, yc.effectiveTiming())
	rng := NewRNG(42)
	_ = PlaceLabs(ds, m, 0, rng)
	_ = PlaceLectures(ds, m, rng)
	return ds, m
}

// TestHardenNaiveMatchesUndoLog exercises hardenNaive, the full-Clone debug
// equivalent of Harden, and checks it reaches the same final cost and
// placements as the undo-log path when both start from an identical matrix
// and consume an identically seeded RNG in the same call order.
func TestHardenNaiveMatchesUndoLog(t *testing.T) {
	ds, seeded := hardeningFixture()
	cm := DefaultCostModel()

	undoLogMatrix := seeded.Clone()
	naiveMatrix := seeded.Clone()

	undoStats := Harden(ds, undoLogMatrix, cm, NewRNG(7))
	naiveStats := hardenNaive(ds, naiveMatrix, cm, NewRNG(7))

	require.Equal(t, undoStats.Accepted, naiveStats.Accepted)
	assert.InDelta(t, undoStats.FinalCost, naiveStats.FinalCost, 1e-9)

	require.Equal(t, len(undoLogMatrix.placements), len(naiveMatrix.placements))
	for id, p := range undoLogMatrix.placements {
		other, ok := naiveMatrix.placements[id]
		require.True(t, ok)
		assert.Equal(t, p.Row, other.Row)
		assert.Equal(t, p.Room, other.Room)
	}
}
