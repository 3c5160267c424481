package lifetrack

import (
	"slices"

	"github.com/shopspring/decimal"
)

// Range is an inclusive day range. The zero Range contains every day.
type Range struct {
	From, To Date
}

// NewRange creates an inclusive day range.
func NewRange(from, to Date) Range { return Range{From: from, To: to} }

// Contains reports whether the day falls inside the range.
func (r Range) Contains(day Date) bool {
	if !r.From.IsZero() && day.Before(r.From) {
		return false
	}
	if !r.To.IsZero() && day.After(r.To) {
		return false
	}
	return true
}

// MonthOf returns the range covering the calendar month of the given day.
func MonthOf(day Date) Range { return Monthly.Range(day) }

// Summary aggregates transactions over a range, in the main currency.
// Amounts come from amountInMainCurrency with fallback to the stated
// amount. A transaction referencing an unknown category is counted under
// [Uncategorized].
type Summary struct {
	Income     decimal.Decimal
	Expenses   decimal.Decimal
	ByCategory map[string]decimal.Decimal // expense totals per category id
}

// Net is income minus expenses.
func (s Summary) Net() decimal.Decimal { return s.Income.Sub(s.Expenses) }

// Summarize computes income/expense totals for the transactions inside the
// range.
func Summarize(d AppData, r Range) Summary {
	s := Summary{ByCategory: make(map[string]decimal.Decimal)}
	for _, t := range d.Transactions {
		if !r.Contains(t.Date) {
			continue
		}
		amount := t.Amount
		if t.AmountInMainCurrency != nil {
			amount = *t.AmountInMainCurrency
		}
		switch t.Type {
		case Income:
			s.Income = s.Income.Add(amount)
		case Expense:
			s.Expenses = s.Expenses.Add(amount)
			id := CategoryByID(d, t.CategoryID).ID
			s.ByCategory[id] = s.ByCategory[id].Add(amount)
		}
	}
	return s
}

// NetWorth sums account balances per account currency. No conversion
// happens here; each currency is reported separately.
func NetWorth(d AppData) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(d.Accounts))
	for _, a := range d.Accounts {
		out[a.Currency] = out[a.Currency].Add(a.Balance)
	}
	return out
}

// HabitStatus is a habit together with its computed streak.
type HabitStatus struct {
	Habit     Habit
	Streak    int
	DoneToday bool
}

// HabitReport computes the current streak of every habit as of the given
// day.
func HabitReport(d AppData, today Date) []HabitStatus {
	out := make([]HabitStatus, 0, len(d.Habits))
	for _, h := range d.Habits {
		out = append(out, HabitStatus{
			Habit:     h,
			Streak:    StreakOn(h.CompletedDates, today),
			DoneToday: h.CompletedOn(today),
		})
	}
	return out
}

// MoodHistory returns the mood entries inside the range, ordered by date.
func MoodHistory(d AppData, r Range) []Mood {
	out := make([]Mood, 0, len(d.Moods))
	for _, m := range d.Moods {
		if r.Contains(m.Date) {
			out = append(out, m)
		}
	}
	slices.SortFunc(out, func(a, b Mood) int { return a.Date.Sub(b.Date) })
	return out
}
