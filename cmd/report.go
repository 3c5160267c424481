package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"lifetrack"
	"lifetrack/renderer"
)

type summaryCmd struct {
	start  string
	end    string
	period string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display income, expenses and net worth" }
func (*summaryCmd) Usage() string {
	return `lt summary [-s <start_date>] [-e <end_date>] [-p <period>]

  Displays income and expense totals in the main currency, and the net worth
  per account currency.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.start, "s", "", "Start of the range, inclusive.")
	f.StringVar(&c.end, "e", "", "End of the range, inclusive.")
	f.StringVar(&c.period, "p", "", "Predefined period (day, week, month, quarter, year). Overrides -s and -e.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, status := parseRange(c.start, c.end, c.period)
	if status != subcommands.ExitSuccess {
		return status
	}
	s, err := openSession()
	if err != nil {
		return fail(err)
	}
	defer s.Close()

	printMarkdown(renderer.SummaryMarkdown(s.data(), r))
	return subcommands.ExitSuccess
}

type reportCmd struct {
	date             string
	skipTransactions bool
	skipCategories   bool
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "display the full monthly report" }
func (*reportCmd) Usage() string {
	return `lt report [-d <date>] [-no-tx] [-no-categories]

  Displays the report for the calendar month of the given date: totals,
  per-category breakdown, accounts and transactions.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", lifetrack.Today().String(), "Any day of the month to report on.")
	f.BoolVar(&c.skipTransactions, "no-tx", false, "Leave out the transactions section.")
	f.BoolVar(&c.skipCategories, "no-categories", false, "Leave out the per-category breakdown.")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day, err := lifetrack.ParseDate(c.date)
	if err != nil {
		return usageErr("%v", err)
	}
	s, err := openSession()
	if err != nil {
		return fail(err)
	}
	defer s.Close()

	r := lifetrack.MonthOf(day)
	title := fmt.Sprintf("Report for %s %d", day.Month(), day.Year())
	rep := renderer.NewReport(title, s.data(), r)

	printMarkdown(renderer.RenderReport(rep, renderer.ReportRenderOptions{
		SkipTransactions: c.skipTransactions,
		SkipCategories:   c.skipCategories,
	}))
	return subcommands.ExitSuccess
}
