package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDataset() *Dataset {
	return &Dataset{
		Year:       Year{Name: "SY", Priority: 0},
		Groups:     []Group{{Name: "SY-B1"}},
		Teachers:   []Teacher{{Name: "Alice"}, {Name: "Bob"}},
		Classrooms: []Room{{Name: "Room-1", Kind: KindLecture}},
		Labs:       []Room{{Name: "Lab-1", Kind: KindLab}},
	}
}

func TestMatrixPlaceAndFree(t *testing.T) {
	ds := testDataset()
	m := NewMatrix(ds, TimingConfig{})

	c := Class{ID: 1, Subject: "Maths", Teacher: "Alice", Group: "SY-B1", Kind: KindLecture, Duration: 1}
	require.True(t, m.IsFree(10, 1, "SY-B1", "Alice", "Room-1"))
	m.Place(c, 10, "Room-1")
	assert.False(t, m.IsFree(10, 1, "SY-B1", "Alice", "Room-1"))

	p, ok := m.Placement(1)
	require.True(t, ok)
	assert.Equal(t, 10, p.Row)

	removed, ok := m.Remove(1)
	require.True(t, ok)
	assert.Equal(t, "Room-1", removed.Room)
	assert.True(t, m.IsFree(10, 1, "SY-B1", "Alice", "Room-1"))
}

func TestMatrixRejectsBreakSlots(t *testing.T) {
	ds := testDataset()
	m := NewMatrix(ds, TimingConfig{})

	row := 0*m.SlotsPerDay() + 2 // short break
	assert.False(t, m.IsFree(row, 1, "SY-B1", "Alice", "Room-1"))
	assert.False(t, m.validTeacherGroupRow(row, 1))
}

func TestMatrixRejectsCrossDaySpan(t *testing.T) {
	ds := testDataset()
	m := NewMatrix(ds, TimingConfig{})

	lastSlot := m.SlotsPerDay() - 1
	row := 0*m.SlotsPerDay() + lastSlot
	assert.False(t, m.IsFree(row, 2, "SY-B1", "Alice", "Room-1"))
}

func TestLabWindowsAreCanonical(t *testing.T) {
	ds := testDataset()
	m := NewMatrix(ds, TimingConfig{})
	windows := m.LabWindows()
	require.Len(t, windows, 2)
	assert.Equal(t, [2]int{0, 1}, windows[0])
	assert.Equal(t, [2]int{5, 6}, windows[1])
}

func TestGroupsEmptyReflectsOccupancy(t *testing.T) {
	ds := testDataset()
	m := NewMatrix(ds, TimingConfig{})
	assert.True(t, m.GroupsEmpty()["SY-B1"])

	m.Place(Class{ID: 1, Subject: "Maths", Teacher: "Alice", Group: "SY-B1", Kind: KindLecture, Duration: 1}, 10, "Room-1")
	assert.False(t, m.GroupsEmpty()["SY-B1"])
}
