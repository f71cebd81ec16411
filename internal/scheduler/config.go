package scheduler

import "github.com/go-playground/validator/v10"

// SubjectConfig describes one subject's weekly load for a batch. Labs is the
// number of weekly lab sessions (each becomes its own Class); LabHours is
// the duration of each session, capped to the two-slot canonical window.
type SubjectConfig struct {
	Name         string `json:"name" validate:"required"`
	Teacher      string `json:"teacher"`
	LectureHours int    `json:"lectureHours" validate:"min=0"`
	Labs         int    `json:"labs" validate:"min=0"`
	LabHours     int    `json:"labHours" validate:"min=0"`
	LabName      string `json:"labName"`
}

// BatchConfig is one student batch ("B1", "B2", ...) within a year.
type BatchConfig struct {
	Name     string          `json:"name" validate:"required"`
	Subjects []SubjectConfig `json:"subjects" validate:"required,min=1,dive"`
}

// TimingConfig describes the day's shape: total slots and where the two
// break slots fall. The default is slotsPerDay=12 with breaks at indices 2
// and 4; this is kept configurable for an alternate day length but the
// canonical lab windows are always relative to these break slots.
type TimingConfig struct {
	SlotsPerDay int `json:"slotsPerDay" validate:"omitempty,min=4"`
	ShortBreak  int `json:"shortBreakSlot" validate:"min=0"`
	LunchBreak  int `json:"lunchBreakSlot" validate:"min=0"`
}

// YearConfig is one academic year's share of the overall run.
type YearConfig struct {
	Name           string        `json:"name" validate:"required"`
	Priority       int           `json:"priority"`
	Batches        []BatchConfig `json:"batches" validate:"required,min=1,dive"`
	NumClassrooms  int           `json:"numClassrooms" validate:"required,min=1"`
	NumLabs        int           `json:"numLabs" validate:"required,min=1"`
	LabNames       []string      `json:"labNames"`
	Timing         TimingConfig  `json:"timing"`
	MaxLabsPerDay  int           `json:"maxLabsPerDay" validate:"min=0"`
	PreferredSlots []int         `json:"preferredSlots"`
}

// Config is the full input to Engine.Generate — equivalent to the
// deserialized configuration a driver reads from disk.
type Config struct {
	Years []YearConfig `json:"years" validate:"required,min=1,dive"`
	Seed  int64        `json:"seed"`
}

var validate = validator.New()

// Validate checks struct tags plus the cross-field invariants struct tags
// alone can't express: break slots inside the day, and a day long enough to
// fit both canonical lab windows.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}
	for _, y := range c.Years {
		t := y.effectiveTiming()
		if t.ShortBreak >= t.SlotsPerDay || t.LunchBreak >= t.SlotsPerDay {
			return errInvalidConfig("year " + y.Name + ": break slot outside day bounds")
		}
		if t.SlotsPerDay < 7 {
			return errInvalidConfig("year " + y.Name + ": slotsPerDay must leave room for both lab windows")
		}
	}
	return nil
}

func (y YearConfig) effectiveTiming() TimingConfig {
	t := y.Timing
	if t.SlotsPerDay == 0 {
		t.SlotsPerDay = 12
	}
	if t.ShortBreak == 0 && t.LunchBreak == 0 {
		t.ShortBreak = 2
		t.LunchBreak = 4
	}
	return t
}

type configError string

func (e configError) Error() string { return string(e) }

func errInvalidConfig(msg string) error { return configError(msg) }
