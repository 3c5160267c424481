package lifetrack

import "testing"

func TestStreakOn(t *testing.T) {
	today := MustParseDate("2026-03-10")
	day := func(offset int) Date { return today.Add(offset) }

	tests := []struct {
		name      string
		completed []Date
		want      int
	}{
		{"empty set", nil, 0},
		{"today only", []Date{day(0)}, 1},
		{"yesterday only keeps the streak alive", []Date{day(-1)}, 1},
		{"last completion two days ago", []Date{day(-2)}, 0},
		{"five consecutive days", []Date{day(-4), day(-3), day(-2), day(-1), day(0)}, 5},
		{"gap stops the count", []Date{day(-3), day(-1), day(0)}, 2},
		{"stale chain counts zero", []Date{day(-5), day(-4), day(-3)}, 0},
		{"unsorted input", []Date{day(0), day(-2), day(-1)}, 3},
		{"duplicates collapse", []Date{day(-1), day(0), day(-1), day(0)}, 2},
		{"chain ending yesterday", []Date{day(-2), day(-1)}, 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := StreakOn(tc.completed, today); got != tc.want {
				t.Errorf("StreakOn(%v) = %d, want %d", tc.completed, got, tc.want)
			}
		})
	}
}

func TestStreakOnDoesNotMutateInput(t *testing.T) {
	today := MustParseDate("2026-03-10")
	completed := []Date{today, today.Add(-2), today.Add(-1)}

	StreakOn(completed, today)

	want := []Date{today, today.Add(-2), today.Add(-1)}
	for i := range want {
		if completed[i] != want[i] {
			t.Fatalf("input order changed at %d: got %s, want %s", i, completed[i], want[i])
		}
	}
}
