package renderer

import (
	"fmt"

	"github.com/shopspring/decimal"

	"lifetrack"
)

// Report is the display-ready model of a period report. All amounts are
// pre-formatted strings in the main currency.
type Report struct {
	Title    string
	From, To string
	Income   string
	Expenses string
	Net      string

	Categories   []CategoryLine
	Accounts     []AccountLine
	Transactions []TransactionLine
}

// CategoryLine is one row of the per-category expense breakdown.
type CategoryLine struct {
	Name   string
	Amount string
	Share  string // percentage of total expenses
}

// AccountLine is one row of the accounts section.
type AccountLine struct {
	Name    string
	Kind    string
	Balance string
}

// TransactionLine holds the data for a single transaction line in a report.
type TransactionLine struct {
	When   string
	Detail string
}

// NewReport builds a Report for the transactions of d inside r.
func NewReport(title string, d lifetrack.AppData, r lifetrack.Range) *Report {
	cur := d.Settings.MainCurrency
	s := lifetrack.Summarize(d, r)

	rep := &Report{
		Title:    title,
		Income:   lifetrack.FormatAmount(s.Income, cur),
		Expenses: lifetrack.FormatAmount(s.Expenses, cur),
		Net:      lifetrack.FormatAmount(s.Net(), cur),
	}
	if !r.From.IsZero() {
		rep.From = r.From.String()
	}
	if !r.To.IsZero() {
		rep.To = r.To.String()
	}

	for _, c := range lifetrack.Categories(d) {
		amount, ok := s.ByCategory[c.ID]
		if !ok {
			continue
		}
		share := ""
		if s.Expenses.IsPositive() {
			share = fmt.Sprintf("%s%%", amount.Div(s.Expenses).Mul(decimal.NewFromInt(100)).StringFixed(1))
		}
		rep.Categories = append(rep.Categories, CategoryLine{
			Name:   c.Name,
			Amount: lifetrack.FormatAmount(amount, cur),
			Share:  share,
		})
	}

	for _, a := range d.Accounts {
		rep.Accounts = append(rep.Accounts, AccountLine{
			Name:    a.Name,
			Kind:    string(a.Type),
			Balance: lifetrack.FormatAmount(a.Balance, a.Currency),
		})
	}

	for _, t := range d.Transactions {
		if !r.Contains(t.Date) {
			continue
		}
		rep.Transactions = append(rep.Transactions, TransactionLine{
			When:   t.Date.String(),
			Detail: Transaction(d, t),
		})
	}

	return rep
}
