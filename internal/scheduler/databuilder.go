package scheduler

import "fmt"

// BuildDataset turns one year's configuration into the flat entity lists the
// rest of the pipeline consumes: classrooms then labs, one Group per batch,
// one synthetic Teacher per subject/lab unless the config names a real one,
// one Class per weekly lecture hour, and one Class per weekly lab session
// (duration = max(1, LabHours), capped to the two-slot canonical window).
func BuildDataset(yc YearConfig, priority int) (*Dataset, []Warning) {
	var warnings []Warning

	classrooms := make([]Room, 0, yc.NumClassrooms)
	for i := 0; i < yc.NumClassrooms; i++ {
		classrooms = append(classrooms, Room{Name: fmt.Sprintf("Room-%d", i+1), Kind: KindLecture})
	}

	labs := make([]Room, 0, yc.NumLabs)
	for i := 0; i < yc.NumLabs; i++ {
		name := fmt.Sprintf("Lab-%d", i+1)
		if i < len(yc.LabNames) && yc.LabNames[i] != "" {
			name = yc.LabNames[i]
		}
		labs = append(labs, Room{Name: name, Kind: KindLab})
	}

	year := Year{Name: yc.Name, Priority: priority}
	groups := make([]Group, 0, len(yc.Batches))
	teacherSet := make(map[string]struct{})
	var classes []Class
	lectureQuota := make(map[string]int)
	labQuota := make(map[string]int)
	nextID := 0

	for _, batch := range yc.Batches {
		group := Group{Name: batch.Name}
		groups = append(groups, group)

		for _, subj := range batch.Subjects {
			if subj.LectureHours == 0 && subj.Labs == 0 {
				warnings = append(warnings, Warning{
					Kind: WarningInvalidConfig, Year: yc.Name, Group: batch.Name, Subject: subj.Name,
					Message: "subject has neither lecture hours nor lab sessions, skipping",
				})
				continue
			}

			teacherName := subj.Teacher
			if teacherName == "" {
				teacherName = "Teacher-" + subj.Name
			}
			teacherSet[teacherName] = struct{}{}

			for i := 0; i < subj.LectureHours; i++ {
				classes = append(classes, Class{
					ID: nextID, Subject: subj.Name, Teacher: teacherName,
					Group: batch.Name, Kind: KindLecture, Duration: 1,
				})
				nextID++
			}
			lectureQuota[quotaKey(subj.Name, batch.Name)] = subj.LectureHours

			if subj.Labs > 0 {
				labTeacher := subj.LabName
				if labTeacher == "" {
					labTeacher = subj.Name
				}
				labTeacherName := "Lab-" + labTeacher
				teacherSet[labTeacherName] = struct{}{}

				duration := subj.LabHours
				if duration > 2 {
					duration = 2 // canonical lab windows span exactly two slots
				}
				if duration < 1 {
					duration = 1
				}

				for i := 0; i < subj.Labs; i++ {
					classes = append(classes, Class{
						ID: nextID, Subject: subj.Name, Teacher: labTeacherName,
						Group: batch.Name, Kind: KindLab, Duration: duration,
					})
					nextID++
				}
				labQuota[quotaKey(subj.Name, batch.Name)] = subj.Labs
			}
		}
	}

	teachers := make([]Teacher, 0, len(teacherSet))
	for name := range teacherSet {
		teachers = append(teachers, Teacher{Name: name})
	}

	ds := &Dataset{
		Year:        year,
		Groups:      groups,
		Teachers:    teachers,
		Classrooms:  classrooms,
		Labs:        labs,
		Classes:     classes,
		SubjectCaps: lectureQuota,
		LabCaps:     labQuota,
	}
	return ds, warnings
}
