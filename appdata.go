package lifetrack

import "slices"

// AppData is the root aggregate: the entire persisted state of the tracker.
// Snapshots of it are treated as immutable values; the reducer always builds
// a new AppData instead of mutating one in place.
type AppData struct {
	Accounts         []Account     `json:"accounts"`
	Transactions     []Transaction `json:"transactions"`
	Habits           []Habit       `json:"habits"`
	Goals            []Goal        `json:"goals"`
	Moods            []Mood        `json:"moods"`
	CustomCategories []Category    `json:"customCategories"`
	Settings         Settings      `json:"settings"`
}

// DefaultData returns the built-in empty aggregate installed at first start
// and by a reset.
func DefaultData() AppData {
	return AppData{
		Accounts:         []Account{},
		Transactions:     []Transaction{},
		Habits:           []Habit{},
		Goals:            []Goal{},
		Moods:            []Mood{},
		CustomCategories: []Category{},
		Settings: Settings{
			MainCurrency: "USD",
			IsDark:       true,
			Language:     "ru",
		},
	}
}

// MarshalJSON implements the json.Marshaler interface for AppData with a
// stable field order. Nil collections are written as empty arrays so the
// persisted shape never changes.
func (d AppData) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.AppendList("accounts", d.Accounts)
	w.AppendList("transactions", d.Transactions)
	w.AppendList("habits", d.Habits)
	w.AppendList("goals", d.Goals)
	w.AppendList("moods", d.Moods)
	w.AppendList("customCategories", d.CustomCategories)
	w.Append("settings", d.Settings)
	return w.MarshalJSON()
}

// Equal reports semantic equality of two aggregates. Decimal amounts compare
// by value, not by representation.
func (d AppData) Equal(o AppData) bool {
	return slices.EqualFunc(d.Accounts, o.Accounts, Account.Equal) &&
		slices.EqualFunc(d.Transactions, o.Transactions, Transaction.Equal) &&
		slices.EqualFunc(d.Habits, o.Habits, Habit.Equal) &&
		slices.EqualFunc(d.Goals, o.Goals, Goal.Equal) &&
		slices.Equal(d.Moods, o.Moods) &&
		slices.Equal(d.CustomCategories, o.CustomCategories) &&
		d.Settings == o.Settings
}

// Account returns the account with the given id, if any.
func (d AppData) Account(id string) (Account, bool) {
	for _, a := range d.Accounts {
		if a.ID == id {
			return a, true
		}
	}
	return Account{}, false
}

// TransactionByID returns the transaction with the given id, if any.
func (d AppData) TransactionByID(id string) (Transaction, bool) {
	for _, t := range d.Transactions {
		if t.ID == id {
			return t, true
		}
	}
	return Transaction{}, false
}

// Habit returns the habit with the given id, if any.
func (d AppData) Habit(id string) (Habit, bool) {
	for _, h := range d.Habits {
		if h.ID == id {
			return h, true
		}
	}
	return Habit{}, false
}

// Goal returns the goal with the given id, if any.
func (d AppData) Goal(id string) (Goal, bool) {
	for _, g := range d.Goals {
		if g.ID == id {
			return g, true
		}
	}
	return Goal{}, false
}

// MoodOn returns the mood entry for the given day, if any.
func (d AppData) MoodOn(day Date) (Mood, bool) {
	for _, m := range d.Moods {
		if m.Date == day {
			return m, true
		}
	}
	return Mood{}, false
}

// normalize replaces nil collections with empty ones. Decoded aggregates go
// through this so that the in-memory shape matches DefaultData.
func (d AppData) normalize() AppData {
	if d.Accounts == nil {
		d.Accounts = []Account{}
	}
	if d.Transactions == nil {
		d.Transactions = []Transaction{}
	}
	if d.Habits == nil {
		d.Habits = []Habit{}
	}
	if d.Goals == nil {
		d.Goals = []Goal{}
	}
	if d.Moods == nil {
		d.Moods = []Mood{}
	}
	if d.CustomCategories == nil {
		d.CustomCategories = []Category{}
	}
	return d
}
