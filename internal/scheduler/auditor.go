package scheduler

import "strconv"

// Audit checks a finished year's matrix against its dataset's demand and
// capacity, producing CapacityWarning and QuotaShortfall warnings. It never
// mutates the matrix — it only reads what the placer and repair stages left
// behind.
func Audit(ds *Dataset, m *Matrix) []Warning {
	var warnings []Warning

	weeklySlots := daysPerWeek * (m.SlotsPerDay() - 2) // two fixed break slots per day
	totalDemand := 0
	for _, c := range ds.Classes {
		totalDemand += c.Duration
	}

	placedLectureHours := make(map[string]int)
	placedLabSessions := make(map[string]int)
	for _, p := range m.placements {
		class, ok := findClass(ds, p.ClassID)
		if !ok {
			continue
		}
		key := quotaKey(class.Subject, class.Group)
		if class.Kind == KindLab {
			placedLabSessions[key]++
		} else {
			placedLectureHours[key] += class.Duration
		}
	}

	for key, want := range ds.SubjectCaps {
		got := placedLectureHours[key]
		if got < want {
			warnings = append(warnings, Warning{
				Kind: WarningQuotaShortfall, Year: ds.Year.Name,
				Message: "subject/group " + key + " short by " + strconv.Itoa(want-got) + " weekly lecture hour(s)",
			})
		}
	}
	for key, want := range ds.LabCaps {
		got := placedLabSessions[key]
		if got < want {
			warnings = append(warnings, Warning{
				Kind: WarningQuotaShortfall, Year: ds.Year.Name,
				Message: "subject/group " + key + " short by " + strconv.Itoa(want-got) + " weekly lab session(s)",
			})
		}
	}

	for name, empty := range m.GroupsEmpty() {
		if empty {
			warnings = append(warnings, Warning{
				Kind: WarningCapacity, Year: ds.Year.Name, Group: name,
				Message: "group received no classes at all",
			})
		}
	}
	for name, empty := range m.TeachersEmpty() {
		if empty {
			warnings = append(warnings, Warning{
				Kind: WarningCapacity, Year: ds.Year.Name, Teacher: name,
				Message: "teacher received no classes at all",
			})
		}
	}

	if totalDemand > weeklySlots*len(ds.Groups) {
		warnings = append(warnings, Warning{
			Kind: WarningCapacity, Year: ds.Year.Name,
			Message: "total weekly demand exceeds the week's available slot capacity across groups",
		})
	}

	return warnings
}
