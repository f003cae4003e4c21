package models

import "encoding/json"

// Status is the lifecycle state of one calendar day's workout entry.
type Status string

const (
	StatusPlanned Status = "planned"
	StatusDone    Status = "done"
	StatusSkipped Status = "skipped"
	StatusIllness Status = "illness"
)

// statusCycle is the order used by "advance to next status" interactions.
var statusCycle = [...]Status{StatusPlanned, StatusDone, StatusSkipped, StatusIllness}

// Valid reports whether s is one of the four known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPlanned, StatusDone, StatusSkipped, StatusIllness:
		return true
	}
	return false
}

// ParseStatus maps a raw string to a Status. Unknown values default to
// planned rather than being stored as arbitrary strings.
func ParseStatus(raw string) Status {
	s := Status(raw)
	if !s.Valid() {
		return StatusPlanned
	}
	return s
}

// Next returns the status that follows s in the planned → done → skipped →
// illness cycle. Any state may still be set to any other directly.
func (s Status) Next() Status {
	cur := ParseStatus(string(s))
	for i, st := range statusCycle {
		if st == cur {
			return statusCycle[(i+1)%len(statusCycle)]
		}
	}
	return StatusPlanned
}

// UnmarshalJSON decodes a status permissively: malformed or unrecognized
// values become planned, never an error.
func (s *Status) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		*s = StatusPlanned
		return nil
	}
	*s = ParseStatus(raw)
	return nil
}

var statusLabels = map[string]map[Status]string{
	"ru": {
		StatusPlanned: "Запланировано",
		StatusDone:    "Выполнено",
		StatusSkipped: "Пропущено",
		StatusIllness: "Болезнь",
	},
	"en": {
		StatusPlanned: "Planned",
		StatusDone:    "Done",
		StatusSkipped: "Skipped",
		StatusIllness: "Illness",
	},
}

// Label returns the display label for s in the given language. Unknown
// languages fall back to Russian, the tracker's first language.
func (s Status) Label(lang string) string {
	labels, ok := statusLabels[lang]
	if !ok {
		labels = statusLabels["ru"]
	}
	return labels[ParseStatus(string(s))]
}
