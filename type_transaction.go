package lifetrack

import "github.com/shopspring/decimal"

// TransactionType classifies a transaction as money coming in or going out.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// ParseTransactionType parses a string into a TransactionType.
func ParseTransactionType(s string) (TransactionType, bool) {
	switch TransactionType(s) {
	case Income, Expense:
		return TransactionType(s), true
	}
	return "", false
}

// Transaction records a single income or expense on a calendar day.
// Amount is always positive; the sign of its effect on the linked account is
// derived from Type. AmountInMainCurrency, when present, is the amount
// expressed in the user's main currency and is what aggregation reads; when
// absent the amount is assumed to already be in the main currency.
type Transaction struct {
	ID                   string           `json:"id"`
	Type                 TransactionType  `json:"type"`
	Amount               decimal.Decimal  `json:"amount"`
	Currency             string           `json:"currency"`
	AmountInMainCurrency *decimal.Decimal `json:"amountInMainCurrency,omitempty"`
	CategoryID           string           `json:"categoryId"`
	Date                 Date             `json:"date"`
	Description          string           `json:"description,omitempty"`
	AccountID            string           `json:"accountId,omitempty"`
	Rate                 *decimal.Decimal `json:"rate,omitempty"` // exchange rate used, if any
}

// MarshalJSON implements the json.Marshaler interface for Transaction with a
// stable field order.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", t.ID)
	w.Append("type", t.Type)
	w.Append("amount", t.Amount)
	w.Append("currency", t.Currency)
	w.Optional("amountInMainCurrency", t.AmountInMainCurrency)
	w.Append("categoryId", t.CategoryID)
	w.Append("date", t.Date)
	w.Optional("description", t.Description)
	w.Optional("accountId", t.AccountID)
	w.Optional("rate", t.Rate)
	return w.MarshalJSON()
}

func (t Transaction) Equal(o Transaction) bool {
	return t.ID == o.ID &&
		t.Type == o.Type &&
		t.Amount.Equal(o.Amount) &&
		t.Currency == o.Currency &&
		decimalPtrEqual(t.AmountInMainCurrency, o.AmountInMainCurrency) &&
		t.CategoryID == o.CategoryID &&
		t.Date == o.Date &&
		t.Description == o.Description &&
		t.AccountID == o.AccountID &&
		decimalPtrEqual(t.Rate, o.Rate)
}

// signedEffect is the delta this transaction applies to its linked account's
// balance: +amount for income, -amount for expense.
func (t Transaction) signedEffect() decimal.Decimal {
	if t.Type == Income {
		return t.Amount
	}
	return t.Amount.Neg()
}
