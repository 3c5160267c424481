package lifetrack

import (
	"testing"
)

func TestSummarize(t *testing.T) {
	d := DefaultData()
	d.Transactions = []Transaction{
		{ID: "t1", Type: Income, Amount: dec("200"), Currency: "USD", CategoryID: "salary", Date: MustParseDate("2026-03-01")},
		{ID: "t2", Type: Expense, Amount: dec("50"), Currency: "USD", CategoryID: "food", Date: MustParseDate("2026-03-10")},
		{ID: "t3", Type: Expense, Amount: dec("20"), Currency: "USD", CategoryID: "food", Date: MustParseDate("2026-03-11")},
		// Stated in EUR, aggregated through the main-currency amount.
		{ID: "t4", Type: Expense, Amount: dec("10"), Currency: "EUR", AmountInMainCurrency: decPtr("11"), CategoryID: "transport", Date: MustParseDate("2026-03-12")},
		// Dangling category id counts under the placeholder.
		{ID: "t5", Type: Expense, Amount: dec("5"), Currency: "USD", CategoryID: "deleted-cat", Date: MustParseDate("2026-03-13")},
		// Outside the range.
		{ID: "t6", Type: Expense, Amount: dec("999"), Currency: "USD", CategoryID: "food", Date: MustParseDate("2026-04-01")},
	}

	s := Summarize(d, MonthOf(MustParseDate("2026-03-15")))

	if !s.Income.Equal(dec("200")) {
		t.Errorf("Income = %s, want 200", s.Income)
	}
	if !s.Expenses.Equal(dec("86")) {
		t.Errorf("Expenses = %s, want 86", s.Expenses)
	}
	if !s.Net().Equal(dec("114")) {
		t.Errorf("Net = %s, want 114", s.Net())
	}
	if got := s.ByCategory["food"]; !got.Equal(dec("70")) {
		t.Errorf("ByCategory[food] = %s, want 70", got)
	}
	if got := s.ByCategory["transport"]; !got.Equal(dec("11")) {
		t.Errorf("ByCategory[transport] = %s, want 11", got)
	}
	if got := s.ByCategory[Uncategorized.ID]; !got.Equal(dec("5")) {
		t.Errorf("ByCategory[%s] = %s, want 5", Uncategorized.ID, got)
	}
}

func TestRangeContains(t *testing.T) {
	day := MustParseDate("2026-03-10")
	tests := []struct {
		name string
		r    Range
		want bool
	}{
		{"zero range contains everything", Range{}, true},
		{"inside", NewRange(day.Add(-1), day.Add(1)), true},
		{"on the from bound", NewRange(day, day.Add(5)), true},
		{"on the to bound", NewRange(day.Add(-5), day), true},
		{"before", NewRange(day.Add(1), day.Add(5)), false},
		{"after", NewRange(day.Add(-5), day.Add(-1)), false},
		{"open start", Range{To: day}, true},
		{"open end", Range{From: day.Add(1)}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.r.Contains(day); got != tc.want {
				t.Errorf("Contains(%s) = %v, want %v", day, got, tc.want)
			}
		})
	}
}

func TestNetWorthGroupsByCurrency(t *testing.T) {
	d := DefaultData()
	d.Accounts = []Account{
		{ID: "a1", Type: AccountRegular, Balance: dec("100"), Currency: "USD"},
		{ID: "a2", Type: AccountRegular, Balance: dec("50"), Currency: "USD"},
		{ID: "a3", Type: AccountDebt, Balance: dec("-30"), Currency: "EUR"},
	}

	worth := NetWorth(d)
	if !worth["USD"].Equal(dec("150")) {
		t.Errorf("USD = %s, want 150", worth["USD"])
	}
	if !worth["EUR"].Equal(dec("-30")) {
		t.Errorf("EUR = %s, want -30", worth["EUR"])
	}
}

func TestHabitReport(t *testing.T) {
	today := MustParseDate("2026-03-10")
	d := DefaultData()
	d.Habits = []Habit{
		{ID: "h1", Name: "Reading", CompletedDates: []Date{today.Add(-1), today}},
		{ID: "h2", Name: "Running", CompletedDates: []Date{today.Add(-3)}},
	}

	report := HabitReport(d, today)
	if len(report) != 2 {
		t.Fatalf("report has %d entries, want 2", len(report))
	}
	if report[0].Streak != 2 || !report[0].DoneToday {
		t.Errorf("reading = %+v, want streak 2 done today", report[0])
	}
	if report[1].Streak != 0 || report[1].DoneToday {
		t.Errorf("running = %+v, want streak 0 not done", report[1])
	}
}

func TestMoodHistorySortsByDate(t *testing.T) {
	d := DefaultData()
	d.Moods = []Mood{
		{Date: MustParseDate("2026-03-10"), Mood: 4},
		{Date: MustParseDate("2026-03-08"), Mood: 2},
		{Date: MustParseDate("2026-03-09"), Mood: 3},
		{Date: MustParseDate("2026-02-01"), Mood: 5},
	}

	got := MoodHistory(d, NewRange(MustParseDate("2026-03-01"), MustParseDate("2026-03-31")))
	if len(got) != 3 {
		t.Fatalf("history has %d entries, want 3", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].Date.Before(got[i-1].Date) {
			t.Errorf("history out of order: %s before %s", got[i].Date, got[i-1].Date)
		}
	}
}

func TestGoalProgress(t *testing.T) {
	tests := []struct {
		name    string
		current string
		target  string
		want    string
	}{
		{"quarter done", "250", "1000", "0.25"},
		{"overshoot clamps to one", "1500", "1000", "1"},
		{"zero target counts as reached", "0", "0", "1"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := Goal{CurrentAmount: dec(tc.current), TargetAmount: dec(tc.target)}
			if got := g.Progress(); !got.Equal(dec(tc.want)) {
				t.Errorf("Progress() = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestHabitToggle(t *testing.T) {
	day := MustParseDate("2026-03-10")
	h := Habit{ID: "h", CompletedDates: []Date{day.Add(-1)}}

	on := h.Toggle(day)
	if len(on) != 2 || on[1] != day {
		t.Fatalf("toggle on = %v", on)
	}

	h.CompletedDates = on
	off := h.Toggle(day)
	if len(off) != 1 || off[0] != day.Add(-1) {
		t.Fatalf("toggle off = %v", off)
	}

	// The receiver's set is never touched.
	if len(h.CompletedDates) != 2 {
		t.Errorf("Toggle mutated the receiver: %v", h.CompletedDates)
	}
}
