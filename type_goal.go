package lifetrack

import "github.com/shopspring/decimal"

// Goal is a savings target with an amount saved so far.
type Goal struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	Deadline      *Date           `json:"deadline,omitempty"`
	Color         string          `json:"color"`
	Icon          string          `json:"icon"`
	Currency      string          `json:"currency"`
}

// MarshalJSON implements the json.Marshaler interface for Goal with a stable
// field order.
func (g Goal) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", g.ID)
	w.Append("name", g.Name)
	w.Append("targetAmount", g.TargetAmount)
	w.Append("currentAmount", g.CurrentAmount)
	w.Optional("deadline", g.Deadline)
	w.Append("color", g.Color)
	w.Append("icon", g.Icon)
	w.Append("currency", g.Currency)
	return w.MarshalJSON()
}

func (g Goal) Equal(o Goal) bool {
	return g.ID == o.ID &&
		g.Name == o.Name &&
		g.TargetAmount.Equal(o.TargetAmount) &&
		g.CurrentAmount.Equal(o.CurrentAmount) &&
		datePtrEqual(g.Deadline, o.Deadline) &&
		g.Color == o.Color &&
		g.Icon == o.Icon &&
		g.Currency == o.Currency
}

// Progress returns the completion ratio in [0,1]. A zero target counts as
// fully reached.
func (g Goal) Progress() decimal.Decimal {
	if g.TargetAmount.IsZero() {
		return decimal.NewFromInt(1)
	}
	ratio := g.CurrentAmount.Div(g.TargetAmount)
	one := decimal.NewFromInt(1)
	if ratio.GreaterThan(one) {
		return one
	}
	if ratio.IsNegative() {
		return decimal.Zero
	}
	return ratio
}
