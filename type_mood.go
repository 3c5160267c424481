package lifetrack

import "fmt"

// Mood levels range from 1 (worst) to 5 (best).
const (
	MoodMin = 1
	MoodMax = 5
)

// Mood is a single mood log entry. The date is the natural key: the
// aggregate holds at most one entry per calendar day.
type Mood struct {
	Date Date   `json:"date"`
	Mood int    `json:"mood"`
	Note string `json:"note,omitempty"`
}

// MarshalJSON implements the json.Marshaler interface for Mood with a stable
// field order.
func (m Mood) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("date", m.Date)
	w.Append("mood", m.Mood)
	w.Optional("note", m.Note)
	return w.MarshalJSON()
}

// Validate checks the mood level range.
func (m Mood) Validate() error {
	if m.Mood < MoodMin || m.Mood > MoodMax {
		return fmt.Errorf("mood level %d out of range [%d,%d]", m.Mood, MoodMin, MoodMax)
	}
	return nil
}
