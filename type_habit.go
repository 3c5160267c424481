package lifetrack

import "slices"

// Habit is a recurring activity tracked by the set of calendar days on which
// it was completed. CompletedDates is semantically a set: order is
// irrelevant and duplicates are collapsed. The current streak is not part of
// the habit state, it is recomputed from the completion set on read (see
// [Streak]).
type Habit struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Emoji          string `json:"emoji"`
	CompletedDates []Date `json:"completedDates"`
	TargetMinutes  int    `json:"targetMinutes,omitempty"`
}

// MarshalJSON implements the json.Marshaler interface for Habit with a
// stable field order.
func (h Habit) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", h.ID)
	w.Append("name", h.Name)
	w.Append("emoji", h.Emoji)
	w.AppendList("completedDates", h.CompletedDates)
	w.Optional("targetMinutes", h.TargetMinutes)
	return w.MarshalJSON()
}

func (h Habit) Equal(o Habit) bool {
	return h.ID == o.ID &&
		h.Name == o.Name &&
		h.Emoji == o.Emoji &&
		h.TargetMinutes == o.TargetMinutes &&
		slices.Equal(h.CompletedDates, o.CompletedDates)
}

// CompletedOn reports whether the habit was completed on the given day.
func (h Habit) CompletedOn(day Date) bool {
	return slices.Contains(h.CompletedDates, day)
}

// Toggle returns the completion set with the given day added if absent, or
// removed if present. The receiver is not modified.
func (h Habit) Toggle(day Date) []Date {
	if h.CompletedOn(day) {
		out := make([]Date, 0, len(h.CompletedDates)-1)
		for _, d := range h.CompletedDates {
			if d != day {
				out = append(out, d)
			}
		}
		return out
	}
	out := make([]Date, 0, len(h.CompletedDates)+1)
	out = append(out, h.CompletedDates...)
	return append(out, day)
}
