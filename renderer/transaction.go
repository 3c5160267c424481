package renderer

import (
	"fmt"

	"lifetrack"
)

// Transaction renders a single transaction as a one-line string.
func Transaction(d lifetrack.AppData, t lifetrack.Transaction) string {
	amount := lifetrack.FormatAmount(t.Amount, t.Currency)
	category := lifetrack.CategoryByID(d, t.CategoryID)
	label := category.Name
	if category.Emoji != "" {
		label = category.Emoji + " " + label
	}

	var line string
	switch t.Type {
	case lifetrack.Income:
		line = fmt.Sprintf("received %s (%s)", amount, label)
	default:
		line = fmt.Sprintf("spent %s on %s", amount, label)
	}
	if t.Description != "" {
		line += " — " + t.Description
	}
	if a, ok := d.Account(t.AccountID); ok {
		line += fmt.Sprintf(" [%s]", a.Name)
	}
	return line
}
