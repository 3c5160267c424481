package lifetrack

import "github.com/shopspring/decimal"

// AccountType classifies an account.
type AccountType string

const (
	AccountRegular    AccountType = "regular"
	AccountInvestment AccountType = "investment"
	AccountDebt       AccountType = "debt"
)

// ParseAccountType parses a string into an AccountType.
func ParseAccountType(s string) (AccountType, bool) {
	switch AccountType(s) {
	case AccountRegular, AccountInvestment, AccountDebt:
		return AccountType(s), true
	}
	return "", false
}

// Account is a financial account holding a running balance in its own
// currency. The balance is the sum of the signed effects of the transactions
// referencing this account, unless it has been set directly by an account
// edit.
type Account struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Type     AccountType     `json:"type"`
	Balance  decimal.Decimal `json:"balance"`
	Currency string          `json:"currency"`
	Icon     string          `json:"icon"`
	Color    string          `json:"color,omitempty"`

	// InterestRate is a percentage, e.g. 5.5 for 5.5%.
	InterestRate *decimal.Decimal `json:"interestRate,omitempty"`

	// Debt-only fields.
	Principal  *decimal.Decimal `json:"principal,omitempty"`
	MinPayment *decimal.Decimal `json:"minPayment,omitempty"`
	DueDate    *Date            `json:"dueDate,omitempty"`
}

// MarshalJSON implements the json.Marshaler interface for Account with a
// stable field order.
func (a Account) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", a.ID)
	w.Append("name", a.Name)
	w.Append("type", a.Type)
	w.Append("balance", a.Balance)
	w.Append("currency", a.Currency)
	w.Append("icon", a.Icon)
	w.Optional("color", a.Color)
	w.Optional("interestRate", a.InterestRate)
	w.Optional("principal", a.Principal)
	w.Optional("minPayment", a.MinPayment)
	w.Optional("dueDate", a.DueDate)
	return w.MarshalJSON()
}

func (a Account) Equal(o Account) bool {
	return a.ID == o.ID &&
		a.Name == o.Name &&
		a.Type == o.Type &&
		a.Balance.Equal(o.Balance) &&
		a.Currency == o.Currency &&
		a.Icon == o.Icon &&
		a.Color == o.Color &&
		decimalPtrEqual(a.InterestRate, o.InterestRate) &&
		decimalPtrEqual(a.Principal, o.Principal) &&
		decimalPtrEqual(a.MinPayment, o.MinPayment) &&
		datePtrEqual(a.DueDate, o.DueDate)
}

func decimalPtrEqual(a, b *decimal.Decimal) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

func datePtrEqual(a, b *Date) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
