package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func oneClassDataset(year string, priority int, room Room) (*Dataset, Class) {
	ds := &Dataset{
		Year:       Year{Name: year, Priority: priority},
		Groups:     []Group{{Name: year + "-B1"}},
		Teachers:   []Teacher{{Name: year + "-Teacher"}},
		Classrooms: []Room{room},
	}
	c := Class{ID: 1, Subject: "Maths", Teacher: year + "-Teacher", Group: year + "-B1", Kind: KindLecture, Duration: 1}
	ds.Classes = []Class{c}
	return ds, c
}

func TestReconcileRelocatesOnRoomClash(t *testing.T) {
	room := Room{Name: "Room-1", Kind: KindLecture}
	altRoom := Room{Name: "Room-2", Kind: KindLecture}

	dsA, cA := oneClassDataset("SY", 0, room)
	dsA.Classrooms = append(dsA.Classrooms, altRoom)
	mA := NewMatrix(dsA, TimingConfig{})
	mA.Place(cA, 10, "Room-1")

	dsB, cB := oneClassDataset("TY", 1, room)
	dsB.Classrooms = append(dsB.Classrooms, altRoom)
	mB := NewMatrix(dsB, TimingConfig{})
	mB.Place(cB, 10, "Room-1")

	warnings := ReconcileCrossYear([]YearResult{{Dataset: dsA, Matrix: mA}, {Dataset: dsB, Matrix: mB}})
	assert.Empty(t, warnings)

	pA, _ := mA.Placement(cA.ID)
	pB, _ := mB.Placement(cB.ID)
	assert.Equal(t, "Room-1", pA.Room, "earlier-priority year must never move")
	assert.NotEqual(t, pA.Room, pB.Room, "later year must relocate away from the clash")
}

func TestReconcileWarnsWhenNoAlternative(t *testing.T) {
	room := Room{Name: "Room-1", Kind: KindLecture}

	dsA, cA := oneClassDataset("SY", 0, room)
	mA := NewMatrix(dsA, TimingConfig{})
	mA.Place(cA, 10, "Room-1")

	dsB, cB := oneClassDataset("TY", 1, room)
	mB := NewMatrix(dsB, TimingConfig{})
	mB.Place(cB, 10, "Room-1")
	// Occupy every row a temporal shift could land on so relocation has no
	// escape within the day either.
	for i, row := range []int{11, 12, 13} {
		blocker := Class{ID: 2 + i, Subject: "Block", Teacher: cB.Teacher, Group: cB.Group, Kind: KindLecture, Duration: 1}
		dsB.Classes = append(dsB.Classes, blocker)
		mB.Place(blocker, row, "Room-1")
	}

	warnings := ReconcileCrossYear([]YearResult{{Dataset: dsA, Matrix: mA}, {Dataset: dsB, Matrix: mB}})
	require.Len(t, warnings, 1)
	assert.Equal(t, WarningCrossYearConflict, warnings[0].Kind)
	assert.Equal(t, "TY", warnings[0].Year)
}
