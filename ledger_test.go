package lifetrack

import (
	"testing"

	"github.com/shopspring/decimal"
)

func newTestStore(accounts ...Account) *Store {
	s := NewStore()
	d := s.State()
	d.Accounts = append(d.Accounts, accounts...)
	s.Apply(ReplaceAll{Data: d})
	return s
}

func balance(t *testing.T, s *Store, id string) decimal.Decimal {
	t.Helper()
	a, ok := s.State().Account(id)
	if !ok {
		t.Fatalf("account %q not found", id)
	}
	return a.Balance
}

func TestBalanceFollowsTransactionLifecycle(t *testing.T) {
	s := newTestStore(Account{ID: "acc", Name: "Wallet", Type: AccountRegular, Currency: "USD"})

	tx := Transaction{
		ID: "tx", Type: Expense, Amount: decimal.NewFromInt(50),
		Currency: "USD", CategoryID: "food", Date: MustParseDate("2026-03-10"), AccountID: "acc",
	}
	s.Apply(AddTransaction{Tx: tx})
	if got := balance(t, s, "acc"); !got.Equal(decimal.NewFromInt(-50)) {
		t.Fatalf("after expense of 50: balance = %s, want -50", got)
	}

	tx.Amount = decimal.NewFromInt(30)
	s.Apply(UpdateTransaction{Tx: tx})
	if got := balance(t, s, "acc"); !got.Equal(decimal.NewFromInt(-30)) {
		t.Fatalf("after edit to 30: balance = %s, want -30", got)
	}

	// A second identical edit must not compound.
	s.Apply(UpdateTransaction{Tx: tx})
	if got := balance(t, s, "acc"); !got.Equal(decimal.NewFromInt(-30)) {
		t.Fatalf("after repeated edit: balance = %s, want -30", got)
	}

	s.Apply(DeleteTransaction{ID: "tx"})
	if got := balance(t, s, "acc"); !got.IsZero() {
		t.Fatalf("after delete: balance = %s, want 0", got)
	}
	if len(s.State().Transactions) != 0 {
		t.Fatalf("transaction not removed: %v", s.State().Transactions)
	}
}

func TestEditMovesEffectBetweenAccounts(t *testing.T) {
	s := newTestStore(
		Account{ID: "acc-1", Name: "Wallet", Type: AccountRegular, Currency: "USD"},
		Account{ID: "acc-2", Name: "Bank", Type: AccountRegular, Currency: "USD"},
	)

	tx := Transaction{
		ID: "tx", Type: Income, Amount: decimal.NewFromInt(100),
		Currency: "USD", CategoryID: "salary", Date: MustParseDate("2026-03-01"), AccountID: "acc-1",
	}
	s.Apply(AddTransaction{Tx: tx})

	tx.AccountID = "acc-2"
	s.Apply(UpdateTransaction{Tx: tx})

	if got := balance(t, s, "acc-1"); !got.IsZero() {
		t.Errorf("old account balance = %s, want 0", got)
	}
	if got := balance(t, s, "acc-2"); !got.Equal(decimal.NewFromInt(100)) {
		t.Errorf("new account balance = %s, want 100", got)
	}
}

func TestSwitchingTypeFlipsEffect(t *testing.T) {
	s := newTestStore(Account{ID: "acc", Name: "Wallet", Type: AccountRegular, Currency: "USD"})

	tx := Transaction{
		ID: "tx", Type: Expense, Amount: decimal.NewFromInt(40),
		Currency: "USD", CategoryID: "other_expense", Date: MustParseDate("2026-03-10"), AccountID: "acc",
	}
	s.Apply(AddTransaction{Tx: tx})

	tx.Type = Income
	tx.CategoryID = "other_income"
	s.Apply(UpdateTransaction{Tx: tx})

	if got := balance(t, s, "acc"); !got.Equal(decimal.NewFromInt(40)) {
		t.Fatalf("after flipping expense to income: balance = %s, want 40", got)
	}
}

func TestTransactionWithoutAccountLeavesBalancesAlone(t *testing.T) {
	s := newTestStore(Account{ID: "acc", Name: "Wallet", Type: AccountRegular, Currency: "USD"})

	s.Apply(AddTransaction{Tx: Transaction{
		ID: "tx", Type: Expense, Amount: decimal.NewFromInt(5),
		Currency: "USD", CategoryID: "food", Date: MustParseDate("2026-03-10"),
	}})

	if got := balance(t, s, "acc"); !got.IsZero() {
		t.Fatalf("unlinked transaction moved a balance: %s", got)
	}
	if len(s.State().Transactions) != 1 {
		t.Fatalf("transaction not recorded")
	}
}

func TestTransactionAgainstUnknownAccountStillRecords(t *testing.T) {
	s := newTestStore()

	s.Apply(AddTransaction{Tx: Transaction{
		ID: "tx", Type: Expense, Amount: decimal.NewFromInt(5),
		Currency: "USD", CategoryID: "food", Date: MustParseDate("2026-03-10"), AccountID: "ghost",
	}})

	if len(s.State().Transactions) != 1 {
		t.Fatalf("transaction referencing an unknown account was dropped")
	}
}
