package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"lifetrack"
	"lifetrack/renderer"
)

// txFlags holds the flags shared by the spend and earn subcommands.
type txFlags struct {
	amount   string
	currency string
	category string
	account  string
	date     string
	note     string
}

func (c *txFlags) register(f *flag.FlagSet) {
	f.StringVar(&c.amount, "a", "", "Amount, e.g. 12.50. Required.")
	f.StringVar(&c.currency, "c", "", "Currency code. Defaults to the main currency.")
	f.StringVar(&c.category, "cat", "", "Category id. See the 'categories' command.")
	f.StringVar(&c.account, "acc", "", "Account id to debit or credit.")
	f.StringVar(&c.date, "d", lifetrack.Today().String(), "Date of the transaction.")
	f.StringVar(&c.note, "note", "", "Free-form description.")
}

// build assembles a transaction from the flags against the current state.
func (c *txFlags) build(d lifetrack.AppData, kind lifetrack.TransactionType) (lifetrack.Transaction, error) {
	amount, err := parseAmount(c.amount)
	if err != nil {
		return lifetrack.Transaction{}, err
	}
	day, err := lifetrack.ParseDate(c.date)
	if err != nil {
		return lifetrack.Transaction{}, err
	}
	currency := c.currency
	if currency == "" {
		currency = d.Settings.MainCurrency
	}
	if err := lifetrack.ValidateCurrency(currency); err != nil {
		return lifetrack.Transaction{}, err
	}
	if c.account != "" {
		if _, ok := d.Account(c.account); !ok {
			return lifetrack.Transaction{}, fmt.Errorf("unknown account id %q", c.account)
		}
	}
	return lifetrack.Transaction{
		ID:          lifetrack.NewID(),
		Type:        kind,
		Amount:      amount,
		Currency:    currency,
		CategoryID:  c.category,
		Date:        day,
		Description: c.note,
		AccountID:   c.account,
	}, nil
}

type spendCmd struct{ txFlags }

func (*spendCmd) Name() string     { return "spend" }
func (*spendCmd) Synopsis() string { return "record an expense" }
func (*spendCmd) Usage() string {
	return `lt spend -a <amount> [-cat <category>] [-acc <account>] [-d <date>] [-note <text>]

  Records an expense. When an account is given its balance drops by the amount.

Usage Examples:
# Spent 12.50 on food today.
$ lt spend -a 12.50 -cat food

`
}

func (c *spendCmd) SetFlags(f *flag.FlagSet) { c.register(f) }

func (c *spendCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return recordTransaction(&c.txFlags, lifetrack.Expense)
}

type earnCmd struct{ txFlags }

func (*earnCmd) Name() string     { return "earn" }
func (*earnCmd) Synopsis() string { return "record an income" }
func (*earnCmd) Usage() string {
	return `lt earn -a <amount> [-cat <category>] [-acc <account>] [-d <date>] [-note <text>]

  Records an income. When an account is given its balance grows by the amount.
`
}

func (c *earnCmd) SetFlags(f *flag.FlagSet) { c.register(f) }

func (c *earnCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return recordTransaction(&c.txFlags, lifetrack.Income)
}

func recordTransaction(flags *txFlags, kind lifetrack.TransactionType) subcommands.ExitStatus {
	s, err := openSession()
	if err != nil {
		return fail(err)
	}
	defer s.Close()

	tx, err := flags.build(s.data(), kind)
	if err != nil {
		return usageErr("%v", err)
	}

	s.store.Apply(lifetrack.AddTransaction{Tx: tx})
	fmt.Printf("Recorded %s %s\n", tx.Type, lifetrack.FormatAmount(tx.Amount, tx.Currency))
	return subcommands.ExitSuccess
}

type editTxCmd struct {
	txFlags
	id string
}

func (*editTxCmd) Name() string     { return "edit-tx" }
func (*editTxCmd) Synopsis() string { return "edit an existing transaction" }
func (*editTxCmd) Usage() string {
	return `lt edit-tx -id <tx-id> [-a <amount>] [-cat <category>] [-acc <account>] [-d <date>] [-note <text>]

  Rewrites a transaction. Account balances are adjusted as if the old
  transaction never happened and the new one did. Editing an unknown id
  changes nothing.
`
}

func (c *editTxCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Id of the transaction to edit. Required.")
	f.StringVar(&c.amount, "a", "", "New amount.")
	f.StringVar(&c.currency, "c", "", "New currency code.")
	f.StringVar(&c.category, "cat", "", "New category id.")
	f.StringVar(&c.account, "acc", "", "New account id.")
	f.StringVar(&c.date, "d", "", "New date.")
	f.StringVar(&c.note, "note", "", "New description.")
}

func (c *editTxCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		return usageErr("-id is required")
	}
	s, err := openSession()
	if err != nil {
		return fail(err)
	}
	defer s.Close()

	tx, ok := s.data().TransactionByID(c.id)
	if !ok {
		return fail(fmt.Errorf("no transaction with id %q", c.id))
	}

	// Only the flags that were set override the stored values.
	if c.amount != "" {
		if tx.Amount, err = parseAmount(c.amount); err != nil {
			return usageErr("%v", err)
		}
	}
	if c.currency != "" {
		if err := lifetrack.ValidateCurrency(c.currency); err != nil {
			return usageErr("%v", err)
		}
		tx.Currency = c.currency
	}
	if c.category != "" {
		tx.CategoryID = c.category
	}
	if c.account != "" {
		if _, ok := s.data().Account(c.account); !ok {
			return usageErr("unknown account id %q", c.account)
		}
		tx.AccountID = c.account
	}
	if c.date != "" {
		if tx.Date, err = lifetrack.ParseDate(c.date); err != nil {
			return usageErr("%v", err)
		}
	}
	if c.note != "" {
		tx.Description = c.note
	}

	s.store.Apply(lifetrack.UpdateTransaction{Tx: tx})
	fmt.Printf("Updated transaction %s\n", tx.ID)
	return subcommands.ExitSuccess
}

type deleteTxCmd struct{ id string }

func (*deleteTxCmd) Name() string     { return "delete-tx" }
func (*deleteTxCmd) Synopsis() string { return "delete a transaction" }
func (*deleteTxCmd) Usage() string {
	return `lt delete-tx -id <tx-id>

  Deletes a transaction and reverts its effect on the account balance.
`
}

func (c *deleteTxCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Id of the transaction to delete. Required.")
}

func (c *deleteTxCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		return usageErr("-id is required")
	}
	s, err := openSession()
	if err != nil {
		return fail(err)
	}
	defer s.Close()

	if _, ok := s.data().TransactionByID(c.id); !ok {
		return fail(fmt.Errorf("no transaction with id %q", c.id))
	}
	s.store.Apply(lifetrack.DeleteTransaction{ID: c.id})
	fmt.Printf("Deleted transaction %s\n", c.id)
	return subcommands.ExitSuccess
}

type txCmd struct {
	start  string
	end    string
	period string
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list transactions" }
func (*txCmd) Usage() string {
	return `lt tx [-s <start_date>] [-e <end_date>] [-p <period>]

  Lists transactions, optionally restricted to a date range or to the
  current day, week, month, quarter or year.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.start, "s", "", "Start of the range, inclusive.")
	f.StringVar(&c.end, "e", "", "End of the range, inclusive.")
	f.StringVar(&c.period, "p", "", "Predefined period (day, week, month, quarter, year). Overrides -s and -e.")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, status := parseRange(c.start, c.end, c.period)
	if status != subcommands.ExitSuccess {
		return status
	}
	s, err := openSession()
	if err != nil {
		return fail(err)
	}
	defer s.Close()

	d := s.data()
	var lines string
	for _, tx := range d.Transactions {
		if !r.Contains(tx.Date) {
			continue
		}
		lines += fmt.Sprintf("- %s (%s): %s\n", tx.Date, tx.ID, renderer.Transaction(d, tx))
	}
	if lines == "" {
		fmt.Println("No transactions in range.")
		return subcommands.ExitSuccess
	}
	printMarkdown("# Transactions\n\n" + lines)
	return subcommands.ExitSuccess
}

// parseRange builds a range from the common listing flags.
func parseRange(start, end, period string) (lifetrack.Range, subcommands.ExitStatus) {
	var r lifetrack.Range
	if period != "" {
		p, err := lifetrack.ParsePeriod(period)
		if err != nil {
			return r, usageErr("%v", err)
		}
		return p.Range(lifetrack.Today()), subcommands.ExitSuccess
	}
	var err error
	if start != "" {
		if r.From, err = lifetrack.ParseDate(start); err != nil {
			return r, usageErr("%v", err)
		}
	}
	if end != "" {
		if r.To, err = lifetrack.ParseDate(end); err != nil {
			return r, usageErr("%v", err)
		}
	}
	return r, subcommands.ExitSuccess
}
