package scheduler

const daysPerWeek = 5

// Placement records where one Class currently sits: a contiguous run of
// Duration rows starting at Row, in Room.
type Placement struct {
	ClassID   int
	Row       int
	Duration  int
	Room      string
	Group     string
	Teacher   string
	Kind      Kind
}

// Matrix is the mutable scheduling state for one year: per-group, per-teacher
// and per-room occupancy, indexed by row = day*slotsPerDay + slot, plus the
// current Placement for every seated class. Everything else (Dataset) is
// read-only once built.
type Matrix struct {
	slotsPerDay int
	rows        int
	shortBreak  int
	lunchBreak  int

	group      map[string][]int // row -> classID, -1 if empty
	teacher    map[string][]int
	room       map[string][]int
	placements map[int]Placement
}

// NewMatrix allocates an empty Matrix sized for the dataset's day shape.
func NewMatrix(ds *Dataset, timing TimingConfig) *Matrix {
	if timing.SlotsPerDay == 0 {
		timing.SlotsPerDay = 12
		timing.ShortBreak = 2
		timing.LunchBreak = 4
	}
	rows := daysPerWeek * timing.SlotsPerDay
	m := &Matrix{
		slotsPerDay: timing.SlotsPerDay,
		rows:        rows,
		shortBreak:  timing.ShortBreak,
		lunchBreak:  timing.LunchBreak,
		group:       make(map[string][]int),
		teacher:     make(map[string][]int),
		room:        make(map[string][]int),
		placements:  make(map[int]Placement),
	}
	for _, g := range ds.Groups {
		m.group[g.Name] = emptyRow(rows)
	}
	for _, t := range ds.Teachers {
		m.teacher[t.Name] = emptyRow(rows)
	}
	for _, r := range ds.Classrooms {
		m.room[r.Name] = emptyRow(rows)
	}
	for _, r := range ds.Labs {
		m.room[r.Name] = emptyRow(rows)
	}
	return m
}

func emptyRow(n int) []int {
	row := make([]int, n)
	for i := range row {
		row[i] = -1
	}
	return row
}

// Rows returns the total number of day*slot rows this matrix spans.
func (m *Matrix) Rows() int { return m.rows }

// SlotsPerDay returns the configured day length.
func (m *Matrix) SlotsPerDay() int { return m.slotsPerDay }

// SlotInDay returns the slot-of-day component of a row.
func (m *Matrix) SlotInDay(row int) int { return row % m.slotsPerDay }

// DayOf returns the day component of a row.
func (m *Matrix) DayOf(row int) int { return row / m.slotsPerDay }

// IsBreakSlot reports whether slot-of-day index s is a fixed break.
func (m *Matrix) IsBreakSlot(s int) bool { return s == m.shortBreak || s == m.lunchBreak }

// LabWindows returns the two canonical lab windows, each spanning two slots:
// the two slots ending immediately before the short break, and the two slots
// starting immediately after the lunch break. Only these two windows are
// ever used; there is no end-of-day window.
func (m *Matrix) LabWindows() [][2]int {
	return [][2]int{
		{m.shortBreak - 2, m.shortBreak - 1},
		{m.lunchBreak + 1, m.lunchBreak + 2},
	}
}

// Filled reports whether a row is fully booked in the given room.
func (m *Matrix) Filled(room string, row int) bool {
	occ, ok := m.room[room]
	if !ok || row < 0 || row >= m.rows {
		return true
	}
	return occ[row] != -1
}

// IsFree reports whether a contiguous run of duration rows starting at row
// is simultaneously free for the group, teacher and room, and does not cross
// a day boundary or a break slot.
func (m *Matrix) IsFree(row, duration int, group, teacher, room string) bool {
	if row < 0 || row+duration > m.rows || duration <= 0 {
		return false
	}
	day := m.DayOf(row)
	for i := 0; i < duration; i++ {
		r := row + i
		if m.DayOf(r) != day {
			return false
		}
		s := m.SlotInDay(r)
		if m.IsBreakSlot(s) {
			return false
		}
		if occ := m.group[group]; occ != nil && occ[r] != -1 {
			return false
		}
		if occ := m.teacher[teacher]; occ != nil && occ[r] != -1 {
			return false
		}
		if occ := m.room[room]; occ != nil && occ[r] != -1 {
			return false
		}
	}
	return true
}

// Place seats a class into the matrix, recording occupancy on all three axes.
func (m *Matrix) Place(c Class, row int, room string) {
	for i := 0; i < c.Duration; i++ {
		r := row + i
		m.group[c.Group][r] = c.ID
		m.teacher[c.Teacher][r] = c.ID
		m.room[room][r] = c.ID
	}
	m.placements[c.ID] = Placement{
		ClassID: c.ID, Row: row, Duration: c.Duration,
		Room: room, Group: c.Group, Teacher: c.Teacher, Kind: c.Kind,
	}
}

// Remove un-seats a previously placed class, freeing all three axes.
func (m *Matrix) Remove(classID int) (Placement, bool) {
	p, ok := m.placements[classID]
	if !ok {
		return Placement{}, false
	}
	for i := 0; i < p.Duration; i++ {
		r := p.Row + i
		m.group[p.Group][r] = -1
		m.teacher[p.Teacher][r] = -1
		m.room[p.Room][r] = -1
	}
	delete(m.placements, classID)
	return p, true
}

// Placement returns the current seating of a class, if any.
func (m *Matrix) Placement(classID int) (Placement, bool) {
	p, ok := m.placements[classID]
	return p, ok
}

// Placements returns every currently seated placement.
func (m *Matrix) Placements() map[int]Placement {
	return m.placements
}

// GroupsEmpty reports whether any group row is completely unfilled — used by
// the auditor to flag a batch that received no classes at all.
func (m *Matrix) GroupsEmpty() map[string]bool {
	result := make(map[string]bool, len(m.group))
	for name, occ := range m.group {
		empty := true
		for _, v := range occ {
			if v != -1 {
				empty = false
				break
			}
		}
		result[name] = empty
	}
	return result
}

// TeachersEmpty reports the same for teachers.
func (m *Matrix) TeachersEmpty() map[string]bool {
	result := make(map[string]bool, len(m.teacher))
	for name, occ := range m.teacher {
		empty := true
		for _, v := range occ {
			if v != -1 {
				empty = false
				break
			}
		}
		result[name] = empty
	}
	return result
}

// validTeacherGroupRow reports whether placing duration rows starting at row
// keeps the class inside a single day and off both break slots. The lecture
// placer, repair's lecture candidate rows and the reconciler's temporal shift
// consult it; IsFree repeats the same checks for every other placement.
func (m *Matrix) validTeacherGroupRow(row, duration int) bool {
	if row < 0 || row+duration > m.rows {
		return false
	}
	day := m.DayOf(row)
	for i := 0; i < duration; i++ {
		r := row + i
		if m.DayOf(r) != day {
			return false
		}
		if m.IsBreakSlot(m.SlotInDay(r)) {
			return false
		}
	}
	return true
}

// Clone deep-copies the matrix, used by Hardening's debug full-clone path.
func (m *Matrix) Clone() *Matrix {
	clone := &Matrix{
		slotsPerDay: m.slotsPerDay,
		rows:        m.rows,
		shortBreak:  m.shortBreak,
		lunchBreak:  m.lunchBreak,
		group:       make(map[string][]int, len(m.group)),
		teacher:     make(map[string][]int, len(m.teacher)),
		room:        make(map[string][]int, len(m.room)),
		placements:  make(map[int]Placement, len(m.placements)),
	}
	for k, v := range m.group {
		clone.group[k] = append([]int(nil), v...)
	}
	for k, v := range m.teacher {
		clone.teacher[k] = append([]int(nil), v...)
	}
	for k, v := range m.room {
		clone.room[k] = append([]int(nil), v...)
	}
	for k, v := range m.placements {
		clone.placements[k] = v
	}
	return clone
}
