package scheduler

import "sort"

// preferredLectureSlots are tried before any other slot in the day, mirroring
// the morning-heavy preference of the reference placement order.
var preferredLectureSlots = []int{0, 1, 5}

// SubjectsOrder ranks lecture classes by descending weekly quota so
// subjects with the most hours to place get first pick of preferred slots,
// breaking ties by subject name for a deterministic, reproducible order.
func SubjectsOrder(ds *Dataset, classes []Class) []Class {
	ordered := append([]Class(nil), classes...)
	sort.SliceStable(ordered, func(i, j int) bool {
		qi := ds.SubjectCaps[quotaKey(ordered[i].Subject, ordered[i].Group)]
		qj := ds.SubjectCaps[quotaKey(ordered[j].Subject, ordered[j].Group)]
		if qi != qj {
			return qi > qj
		}
		return ordered[i].Subject < ordered[j].Subject
	})
	return ordered
}

// PlaceLectures seats every lecture Class. For each lecture the days are
// tried in a random order; within a day the preferred slots come first and
// then the remaining slots, before the next day is tried. There is no target
// for the total number of lectures per day. At most one lecture of a given (subject, group) is ever seated on the same
// day, so a five-hour subject spreads across five distinct days rather than
// piling up on one.
func PlaceLectures(ds *Dataset, m *Matrix, rng *RNG) []Warning {
	var warnings []Warning
	lectureDayCount := make(map[string]map[int]int) // subject|group -> day -> count

	incDay := func(subject, group string, day int) {
		key := quotaKey(subject, group)
		if lectureDayCount[key] == nil {
			lectureDayCount[key] = make(map[int]int)
		}
		lectureDayCount[key][day]++
	}
	dayCount := func(subject, group string, day int) int {
		key := quotaKey(subject, group)
		if lectureDayCount[key] == nil {
			return 0
		}
		return lectureDayCount[key][day]
	}

	var lectures []Class
	for _, c := range ds.Classes {
		if c.Kind == KindLecture {
			lectures = append(lectures, c)
		}
	}
	ordered := SubjectsOrder(ds, lectures)

	classroomNames := make([]string, 0, len(ds.Classrooms))
	for _, r := range ds.Classrooms {
		classroomNames = append(classroomNames, r.Name)
	}

	for _, c := range ordered {
		if placeOneLecture(ds, m, c, classroomNames, rng, dayCount, incDay) {
			continue
		}
		warnings = append(warnings, Warning{
			Kind: WarningUnplacedClass, Year: ds.Year.Name, Group: c.Group,
			Teacher: c.Teacher, Subject: c.Subject,
			Message: "no free classroom slot available for this lecture",
		})
	}
	return warnings
}

func placeOneLecture(
	ds *Dataset, m *Matrix, c Class, rooms []string, rng *RNG,
	dayCount func(subject, group string, day int) int,
	incDay func(subject, group string, day int),
) bool {
	days := rng.Perm(daysPerWeek)
	slotsPerDay := m.SlotsPerDay()

	slotOrder := make([]int, 0, slotsPerDay)
	seen := make(map[int]bool)
	for _, s := range preferredLectureSlots {
		if s < slotsPerDay && !seen[s] {
			slotOrder = append(slotOrder, s)
			seen[s] = true
		}
	}
	for s := 0; s < slotsPerDay; s++ {
		if !seen[s] {
			slotOrder = append(slotOrder, s)
			seen[s] = true
		}
	}

	for _, day := range days {
		if dayCount(c.Subject, c.Group, day) >= 1 {
			continue
		}
		for _, s := range slotOrder {
			row := day*slotsPerDay + s
			if !m.validTeacherGroupRow(row, c.Duration) {
				continue
			}
			for _, room := range rooms {
				if m.IsFree(row, c.Duration, c.Group, c.Teacher, room) {
					m.Place(c, row, room)
					incDay(c.Subject, c.Group, day)
					return true
				}
			}
		}
	}
	return false
}
