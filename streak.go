package lifetrack

import "slices"

// Streak returns the habit's current consecutive-completion count as of
// today. See [StreakOn] for the exact rules.
func Streak(completed []Date) int {
	return StreakOn(completed, Today())
}

// StreakOn computes the consecutive-completion count of a completion set as
// of the given day. The set may be unordered and contain duplicates.
//
// The streak is zero unless the most recent completion is today or
// yesterday; otherwise it is the number of completions counting back from
// the most recent one with no gap of more than one calendar day.
func StreakOn(completed []Date, today Date) int {
	if len(completed) == 0 {
		return 0
	}

	sorted := slices.Clone(completed)
	slices.SortFunc(sorted, func(a, b Date) int { return b.Sub(a) })
	sorted = slices.Compact(sorted)

	if sorted[0] != today && sorted[0] != today.Add(-1) {
		return 0
	}

	streak := 1
	for i := 1; i < len(sorted); i++ {
		if sorted[i-1].Sub(sorted[i]) != 1 {
			break
		}
		streak++
	}
	return streak
}
