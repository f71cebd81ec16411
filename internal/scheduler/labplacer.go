package scheduler

// defaultMaxLabsPerDay is the "at most two labs total per day" cap a batch
// gets when its config doesn't name a stricter one. Unlike the lecture/room
// passes, this cap is never relaxed to force a placement: it is a hard
// invariant, not a preference.
const defaultMaxLabsPerDay = 2

// PlaceLabs seats every lab Class from the dataset into one of the two
// canonical lab windows, in two passes: a preferred-lab pass (subject's
// named lab room first) and a fallback pass (any lab room). Both passes
// enforce the same per-day caps — at most maxLabsPerDay labs total for the
// group, and at most one lab of a given subject — so neither pass can
// accumulate more per day. Anything still unplaced after both passes becomes
// an UnplacedClass warning.
func PlaceLabs(ds *Dataset, m *Matrix, maxLabsPerDay int, rng *RNG) []Warning {
	var warnings []Warning
	if maxLabsPerDay <= 0 {
		maxLabsPerDay = defaultMaxLabsPerDay
	}

	labDayCount := make(map[string]map[int]int)                   // group -> day -> total labs
	labSubjectDayCount := make(map[string]map[int]map[string]int) // group -> day -> subject -> count

	incDay := func(group, subject string, day int) {
		if labDayCount[group] == nil {
			labDayCount[group] = make(map[int]int)
		}
		labDayCount[group][day]++
		if labSubjectDayCount[group] == nil {
			labSubjectDayCount[group] = make(map[int]map[string]int)
		}
		if labSubjectDayCount[group][day] == nil {
			labSubjectDayCount[group][day] = make(map[string]int)
		}
		labSubjectDayCount[group][day][subject]++
	}
	dayCount := func(group string, day int) int {
		if labDayCount[group] == nil {
			return 0
		}
		return labDayCount[group][day]
	}
	subjectDayCount := func(group, subject string, day int) int {
		if labSubjectDayCount[group] == nil || labSubjectDayCount[group][day] == nil {
			return 0
		}
		return labSubjectDayCount[group][day][subject]
	}

	var labClasses []Class
	for _, c := range ds.Classes {
		if c.Kind == KindLab {
			labClasses = append(labClasses, c)
		}
	}

	remaining := labClasses
	remaining, _ = placeLabPass(ds, m, remaining, maxLabsPerDay, rng, incDay, dayCount, subjectDayCount, true)
	remaining, _ = placeLabPass(ds, m, remaining, maxLabsPerDay, rng, incDay, dayCount, subjectDayCount, false)

	for _, c := range remaining {
		warnings = append(warnings, Warning{
			Kind: WarningUnplacedClass, Year: ds.Year.Name, Group: c.Group,
			Teacher: c.Teacher, Subject: c.Subject,
			Message: "no free lab window available for this class",
		})
	}
	return warnings
}

func placeLabPass(
	ds *Dataset, m *Matrix, classes []Class, maxLabsPerDay int, rng *RNG,
	incDay func(group, subject string, day int),
	dayCount func(group string, day int) int,
	subjectDayCount func(group, subject string, day int) int,
	preferredOnly bool,
) ([]Class, int) {
	var stillUnplaced []Class
	placedCount := 0
	days := rng.Perm(daysPerWeek)
	windows := m.LabWindows()

	for _, c := range classes {
		placedThis := false
		for _, day := range days {
			if dayCount(c.Group, day) >= maxLabsPerDay {
				continue
			}
			if subjectDayCount(c.Group, c.Subject, day) >= 1 {
				continue
			}
			for _, w := range windows {
				row := day*m.SlotsPerDay() + w[0]
				rooms := candidateLabRooms(ds, c, preferredOnly)
				for _, room := range rooms {
					if !m.IsFree(row, c.Duration, c.Group, c.Teacher, room.Name) {
						continue
					}
					m.Place(c, row, room.Name)
					incDay(c.Group, c.Subject, day)
					placedThis = true
					placedCount++
					break
				}
				if placedThis {
					break
				}
			}
			if placedThis {
				break
			}
		}
		if !placedThis {
			stillUnplaced = append(stillUnplaced, c)
		}
	}
	return stillUnplaced, placedCount
}

func candidateLabRooms(ds *Dataset, c Class, preferredOnly bool) []Room {
	if !preferredOnly {
		return ds.Labs
	}
	for _, r := range ds.Labs {
		if r.Name == c.Subject || r.Name == c.Teacher || "Lab-"+r.Name == c.Teacher {
			return []Room{r}
		}
	}
	return nil
}
