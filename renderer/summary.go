package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"lifetrack"
)

// SummaryMarkdown renders the income/expense summary of a range, together
// with the net worth per currency.
func SummaryMarkdown(d lifetrack.AppData, r lifetrack.Range) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	cur := d.Settings.MainCurrency
	s := lifetrack.Summarize(d, r)

	title := "Summary"
	if !r.From.IsZero() || !r.To.IsZero() {
		title = fmt.Sprintf("Summary %s .. %s", r.From, r.To)
	}
	doc.H1(title)

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"", "Amount"},
		Rows: [][]string{
			{"Income", lifetrack.FormatAmount(s.Income, cur)},
			{"Expenses", lifetrack.FormatAmount(s.Expenses, cur)},
			{md.Bold("Net"), md.Bold(lifetrack.FormatAmount(s.Net(), cur))},
		},
	})

	worth := lifetrack.NetWorth(d)
	if len(worth) > 0 {
		doc.H2("Net Worth")
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
			Header:    []string{"Currency", "Balance"},
		}
		for _, ci := range lifetrack.Currencies() {
			v, ok := worth[ci.Code]
			if !ok {
				continue
			}
			table.Rows = append(table.Rows, []string{
				ci.Code,
				lifetrack.FormatAmount(v, ci.Code),
			})
		}
		doc.Table(table)
	}

	return doc.String()
}
