package renderer

import (
	"bytes"
	"fmt"
	"strings"

	md "github.com/nao1215/markdown"
	"github.com/shopspring/decimal"

	"lifetrack"
)

// GoalsMarkdown renders every savings goal with its progress.
func GoalsMarkdown(d lifetrack.AppData) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Goals")

	if len(d.Goals) == 0 {
		doc.PlainText("No goals yet.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignLeft,
		},
		Header: []string{"Goal", "Saved", "Target", "Progress"},
	}
	for _, g := range d.Goals {
		table.Rows = append(table.Rows, []string{
			g.Name,
			lifetrack.FormatAmount(g.CurrentAmount, g.Currency),
			lifetrack.FormatAmount(g.TargetAmount, g.Currency),
			progressBar(g.Progress()),
		})
	}
	doc.Table(table)

	return doc.String()
}

// progressBar renders a ten-cell text gauge with the percentage.
func progressBar(ratio decimal.Decimal) string {
	filled := int(ratio.Mul(decimal.NewFromInt(10)).IntPart())
	if filled > 10 {
		filled = 10
	}
	pct := ratio.Mul(decimal.NewFromInt(100)).StringFixed(0)
	return fmt.Sprintf("%s%s %s%%", strings.Repeat("█", filled), strings.Repeat("░", 10-filled), pct)
}
