package lifetrack

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestApplySkipsCommitHooksOnNoOp(t *testing.T) {
	s := NewStore()
	commits := 0
	s.Subscribe(func(AppData) { commits++ })

	s.Apply(AddHabit{Habit: Habit{ID: "h", Name: "Reading"}})
	if commits != 1 {
		t.Fatalf("commits = %d after add, want 1", commits)
	}

	before := s.State()
	for _, a := range []Action{
		nil,
		UpdateTransaction{Tx: Transaction{ID: "ghost"}},
		DeleteTransaction{ID: "ghost"},
		UpdateAccount{Account: Account{ID: "ghost"}},
		DeleteAccount{ID: "ghost"},
		UpdateHabit{Habit: Habit{ID: "ghost"}},
		DeleteHabit{ID: "ghost"},
		UpdateGoal{Goal: Goal{ID: "ghost"}},
		DeleteGoal{ID: "ghost"},
		DeleteCategory{ID: "ghost"},
	} {
		s.Apply(a)
	}

	if commits != 1 {
		t.Errorf("commits = %d after no-ops, want still 1", commits)
	}
	if !s.State().Equal(before) {
		t.Errorf("no-op operations changed the snapshot")
	}
}

func TestSetMoodReplacesSameDayEntry(t *testing.T) {
	s := NewStore()
	day := MustParseDate("2026-03-10")

	s.Apply(SetMood{Entry: Mood{Date: day, Mood: 2, Note: "meh"}})
	s.Apply(SetMood{Entry: Mood{Date: day, Mood: 5, Note: "actually great"}})
	s.Apply(SetMood{Entry: Mood{Date: day.Add(-1), Mood: 3}})

	d := s.State()
	if len(d.Moods) != 2 {
		t.Fatalf("moods = %v, want one entry per day", d.Moods)
	}
	m, ok := d.MoodOn(day)
	if !ok || m.Mood != 5 || m.Note != "actually great" {
		t.Errorf("MoodOn(%s) = %+v, want the replacing entry", day, m)
	}
}

func TestAddCategoryForcesCustomFlag(t *testing.T) {
	s := NewStore()
	s.Apply(AddCategory{Category: Category{ID: "cat", Name: "Pets", Type: Expense}})

	d := s.State()
	if len(d.CustomCategories) != 1 || !d.CustomCategories[0].IsCustom {
		t.Fatalf("custom category not flagged: %+v", d.CustomCategories)
	}
}

func TestUpdateSettingsMergesPatch(t *testing.T) {
	s := NewStore()

	currency := "EUR"
	s.Apply(UpdateSettings{Patch: SettingsPatch{MainCurrency: &currency}})

	got := s.State().Settings
	if got.MainCurrency != "EUR" {
		t.Errorf("MainCurrency = %q, want EUR", got.MainCurrency)
	}
	// Untouched fields keep their defaults.
	if !got.IsDark || got.Language != "ru" {
		t.Errorf("patch clobbered untouched settings: %+v", got)
	}

	dark := false
	s.Apply(UpdateSettings{Patch: SettingsPatch{IsDark: &dark}})
	got = s.State().Settings
	if got.IsDark {
		t.Errorf("IsDark = true, want false")
	}
	if got.MainCurrency != "EUR" {
		t.Errorf("second patch reset the currency")
	}
}

func TestResetAllRestoresDefaults(t *testing.T) {
	s := NewStore()
	s.Apply(AddAccount{Account: Account{ID: "acc", Name: "Wallet", Type: AccountRegular, Currency: "USD"}})
	s.Apply(AddTransaction{Tx: Transaction{
		ID: "tx", Type: Expense, Amount: decimal.NewFromInt(1),
		Currency: "USD", CategoryID: "food", Date: MustParseDate("2026-03-10"),
	}})

	s.Apply(ResetAll{})

	if !s.State().Equal(DefaultData()) {
		t.Fatalf("reset state differs from defaults: %+v", s.State())
	}
}

func TestReplaceAllNormalizesCollections(t *testing.T) {
	s := NewStore()
	s.Apply(ReplaceAll{Data: AppData{Settings: Settings{MainCurrency: "USD"}}})

	d := s.State()
	if d.Accounts == nil || d.Transactions == nil || d.Habits == nil ||
		d.Goals == nil || d.Moods == nil || d.CustomCategories == nil {
		t.Fatalf("nil collection survived ReplaceAll: %+v", d)
	}
}

func TestSnapshotsAreNotAliased(t *testing.T) {
	s := NewStore()
	s.Apply(AddAccount{Account: Account{ID: "acc", Name: "Wallet", Type: AccountRegular, Currency: "USD"}})

	before := s.State()
	s.Apply(AddTransaction{Tx: Transaction{
		ID: "tx", Type: Expense, Amount: decimal.NewFromInt(50),
		Currency: "USD", CategoryID: "food", Date: MustParseDate("2026-03-10"), AccountID: "acc",
	}})

	// The earlier snapshot still sees the old balance.
	if got := before.Accounts[0].Balance; !got.IsZero() {
		t.Fatalf("old snapshot mutated: balance = %s", got)
	}
}
