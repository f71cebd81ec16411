package scheduler

import "sort"

// YearResult pairs one year's dataset with its finished matrix, the unit
// ReconcileCrossYear operates on.
type YearResult struct {
	Dataset *Dataset
	Matrix  *Matrix
}

// ReconcileCrossYear resolves physical room double-bookings across years
// that were built independently (and so never saw each other's room usage).
// years must already be ordered by ascending Dataset.Year.Priority — a
// lower-priority (earlier) year's matrix is read but never mutated; only
// later years move to resolve a clash, first by relocating to another room
// of the same kind, then by shifting within the day, and finally by
// recording an unresolved CrossYearConflict warning.
func ReconcileCrossYear(results []YearResult) []Warning {
	var warnings []Warning
	global := make(map[string][]string) // room name -> row -> owning year name ("" free)

	for _, yr := range results {
		m := yr.Matrix
		for room := range m.room {
			if global[room] == nil {
				global[room] = make([]string, m.Rows())
			}
		}

		for _, p := range sortedPlacements(m) {
			if !hasConflict(global, p) {
				markOccupied(global, p, yr.Dataset.Year.Name)
				continue
			}

			class, ok := findClass(yr.Dataset, p.ClassID)
			if !ok {
				continue
			}

			m.Remove(p.ClassID)

			if newRoom, ok := trySpatialRelocate(yr.Dataset, m, global, p); ok {
				m.Place(class, p.Row, newRoom)
				markOccupied(global, Placement{Row: p.Row, Duration: p.Duration, Room: newRoom}, yr.Dataset.Year.Name)
				continue
			}

			if newRow, ok := tryTemporalShift(m, global, p); ok {
				m.Place(class, newRow, p.Room)
				markOccupied(global, Placement{Row: newRow, Duration: p.Duration, Room: p.Room}, yr.Dataset.Year.Name)
				continue
			}

			m.Place(class, p.Row, p.Room)
			warnings = append(warnings, Warning{
				Kind: WarningCrossYearConflict, Year: yr.Dataset.Year.Name,
				Group: p.Group, Teacher: p.Teacher,
				Message: "room " + p.Room + " is double-booked with an earlier-priority year and could not be relocated",
			})
			markOccupied(global, p, yr.Dataset.Year.Name)
		}
	}
	return warnings
}

func sortedPlacements(m *Matrix) []Placement {
	placements := make([]Placement, 0, len(m.placements))
	for _, p := range m.placements {
		placements = append(placements, p)
	}
	sort.Slice(placements, func(i, j int) bool { return placements[i].Row < placements[j].Row })
	return placements
}

func findClass(ds *Dataset, classID int) (Class, bool) {
	for _, c := range ds.Classes {
		if c.ID == classID {
			return c, true
		}
	}
	return Class{}, false
}

func hasConflict(global map[string][]string, p Placement) bool {
	rows, ok := global[p.Room]
	if !ok {
		return false
	}
	for i := 0; i < p.Duration; i++ {
		r := p.Row + i
		if r < len(rows) && rows[r] != "" {
			return true
		}
	}
	return false
}

func markOccupied(global map[string][]string, p Placement, year string) {
	rows := global[p.Room]
	if rows == nil {
		return
	}
	for i := 0; i < p.Duration; i++ {
		r := p.Row + i
		if r < len(rows) {
			rows[r] = year
		}
	}
}

// trySpatialRelocate looks for another room of the same kind where the rows
// are free both globally (no earlier year) and within this year's matrix.
func trySpatialRelocate(ds *Dataset, m *Matrix, global map[string][]string, p Placement) (string, bool) {
	pool := ds.Classrooms
	if p.Kind == KindLab {
		pool = ds.Labs
	}
	for _, room := range pool {
		if room.Name == p.Room {
			continue
		}
		if !globallyFree(global, room.Name, p.Row, p.Duration) {
			continue
		}
		if !m.IsFree(p.Row, p.Duration, p.Group, p.Teacher, room.Name) {
			continue
		}
		return room.Name, true
	}
	return "", false
}

func globallyFree(global map[string][]string, room string, row, duration int) bool {
	rows, ok := global[room]
	if !ok {
		return true
	}
	for i := 0; i < duration; i++ {
		r := row + i
		if r < len(rows) && rows[r] != "" {
			return false
		}
	}
	return true
}

// tryTemporalShift shifts a short class (duration <= 3) later within the
// same day, trying slot+1 through slot+3, the fallback tried when no
// alternate room exists.
func tryTemporalShift(m *Matrix, global map[string][]string, p Placement) (int, bool) {
	if p.Duration > 3 {
		return 0, false
	}
	day := m.DayOf(p.Row)
	slot := m.SlotInDay(p.Row)
	for delta := 1; delta <= 3; delta++ {
		newSlot := slot + delta
		if newSlot+p.Duration > m.SlotsPerDay() {
			break
		}
		newRow := day*m.SlotsPerDay() + newSlot
		if !m.validTeacherGroupRow(newRow, p.Duration) {
			continue
		}
		if !globallyFree(global, p.Room, newRow, p.Duration) {
			continue
		}
		if !m.IsFree(newRow, p.Duration, p.Group, p.Teacher, p.Room) {
			continue
		}
		return newRow, true
	}
	return 0, false
}
