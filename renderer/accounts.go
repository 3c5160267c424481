package renderer

import (
	"bytes"

	md "github.com/nao1215/markdown"

	"lifetrack"
)

// AccountsMarkdown renders the account list with balances.
func AccountsMarkdown(d lifetrack.AppData) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Accounts")

	if len(d.Accounts) == 0 {
		doc.PlainText("No accounts yet.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"ID", "Account", "Kind", "Balance"},
	}
	for _, a := range d.Accounts {
		name := a.Name
		if a.Icon != "" {
			name = a.Icon + " " + name
		}
		table.Rows = append(table.Rows, []string{
			a.ID,
			name,
			string(a.Type),
			lifetrack.FormatAmount(a.Balance, a.Currency),
		})
	}
	doc.Table(table)

	return doc.String()
}
