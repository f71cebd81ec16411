package scheduler

import (
	"encoding/json"
	"fmt"
)

// WarningKind enumerates the non-exceptional outcomes the pipeline can
// surface. None of these are Go errors: the core algorithm never aborts a
// run because a class couldn't be placed, it records why and continues.
type WarningKind int

const (
	WarningCapacity WarningKind = iota
	WarningUnplacedClass
	WarningQuotaShortfall
	WarningCrossYearConflict
	WarningInvalidConfig
)

func (k WarningKind) String() string {
	switch k {
	case WarningCapacity:
		return "CapacityWarning"
	case WarningUnplacedClass:
		return "UnplacedClass"
	case WarningQuotaShortfall:
		return "QuotaShortfall"
	case WarningCrossYearConflict:
		return "CrossYearConflict"
	case WarningInvalidConfig:
		return "InvalidConfig"
	default:
		return "Unknown"
	}
}

// MarshalJSON renders a WarningKind as its String() name rather than the
// underlying int, since Result is JSON-encoded straight to the driver's
// output stream and an integer code would mean nothing to a reader there.
func (k WarningKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

func (k *WarningKind) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	switch name {
	case "CapacityWarning":
		*k = WarningCapacity
	case "UnplacedClass":
		*k = WarningUnplacedClass
	case "QuotaShortfall":
		*k = WarningQuotaShortfall
	case "CrossYearConflict":
		*k = WarningCrossYearConflict
	case "InvalidConfig":
		*k = WarningInvalidConfig
	default:
		return fmt.Errorf("scheduler: unknown warning kind %q", name)
	}
	return nil
}

// Warning is a value-typed, non-fatal pipeline outcome. It is collected into
// Result.Warnings rather than returned as an error.
type Warning struct {
	Kind    WarningKind `json:"kind"`
	Year    string      `json:"year"`
	Group   string      `json:"group,omitempty"`
	Teacher string      `json:"teacher,omitempty"`
	Subject string      `json:"subject,omitempty"`
	Message string      `json:"message"`
}
