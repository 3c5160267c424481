package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"lifetrack"
	"lifetrack/renderer"
)

type newAccountCmd struct {
	name     string
	kind     string
	balance  string
	currency string
	icon     string
	color    string
}

func (*newAccountCmd) Name() string     { return "new-account" }
func (*newAccountCmd) Synopsis() string { return "create an account" }
func (*newAccountCmd) Usage() string {
	return `lt new-account -name <name> [-kind regular|investment|debt] [-balance <amount>] [-c <currency>]

  Creates an account with an opening balance.

Usage Examples:
# A cash wallet starting at 100.
$ lt new-account -name Wallet -balance 100

`
}

func (c *newAccountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Account name. Required.")
	f.StringVar(&c.kind, "kind", "regular", "Account kind: regular, investment or debt.")
	f.StringVar(&c.balance, "balance", "0", "Opening balance.")
	f.StringVar(&c.currency, "c", "", "Currency code. Defaults to the main currency.")
	f.StringVar(&c.icon, "icon", "", "Display icon.")
	f.StringVar(&c.color, "color", "", "Display color.")
}

func (c *newAccountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		return usageErr("-name is required")
	}
	kind, ok := lifetrack.ParseAccountType(c.kind)
	if !ok {
		return usageErr("unknown account kind %q", c.kind)
	}
	balance, err := decimalFlag(c.balance)
	if err != nil {
		return usageErr("%v", err)
	}

	s, err := openSession()
	if err != nil {
		return fail(err)
	}
	defer s.Close()

	currency := c.currency
	if currency == "" {
		currency = s.data().Settings.MainCurrency
	}
	if err := lifetrack.ValidateCurrency(currency); err != nil {
		return usageErr("%v", err)
	}

	a := lifetrack.Account{
		ID:       lifetrack.NewID(),
		Name:     c.name,
		Type:     kind,
		Balance:  balance,
		Currency: currency,
		Icon:     c.icon,
		Color:    c.color,
	}
	s.store.Apply(lifetrack.AddAccount{Account: a})
	fmt.Printf("Created account %q (%s)\n", a.Name, a.ID)
	return subcommands.ExitSuccess
}

type accountsCmd struct{}

func (*accountsCmd) Name() string     { return "accounts" }
func (*accountsCmd) Synopsis() string { return "list accounts with balances" }
func (*accountsCmd) Usage() string {
	return `lt accounts

  Lists every account with its current balance.
`
}

func (*accountsCmd) SetFlags(*flag.FlagSet) {}

func (*accountsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openSession()
	if err != nil {
		return fail(err)
	}
	defer s.Close()

	printMarkdown(renderer.AccountsMarkdown(s.data()))
	return subcommands.ExitSuccess
}

type editAccountCmd struct {
	id      string
	name    string
	icon    string
	color   string
	balance string
}

func (*editAccountCmd) Name() string     { return "edit-account" }
func (*editAccountCmd) Synopsis() string { return "rename, restyle or correct an account" }
func (*editAccountCmd) Usage() string {
	return `lt edit-account -id <account-id> [-name <name>] [-icon <icon>] [-color <color>] [-balance <amount>]

  Changes the attributes of an account. Setting -balance overrides the
  running balance directly, e.g. to match a bank statement; from then on
  transactions keep adjusting the corrected value.
`
}

func (c *editAccountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Id of the account to edit. Required.")
	f.StringVar(&c.name, "name", "", "New name.")
	f.StringVar(&c.icon, "icon", "", "New icon.")
	f.StringVar(&c.color, "color", "", "New color.")
	f.StringVar(&c.balance, "balance", "", "Corrected balance.")
}

func (c *editAccountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		return usageErr("-id is required")
	}
	s, err := openSession()
	if err != nil {
		return fail(err)
	}
	defer s.Close()

	a, ok := s.data().Account(c.id)
	if !ok {
		return fail(fmt.Errorf("no account with id %q", c.id))
	}
	if c.name != "" {
		a.Name = c.name
	}
	if c.icon != "" {
		a.Icon = c.icon
	}
	if c.color != "" {
		a.Color = c.color
	}
	if c.balance != "" {
		balance, err := decimalFlag(c.balance)
		if err != nil {
			return usageErr("%v", err)
		}
		a.Balance = balance
	}
	s.store.Apply(lifetrack.UpdateAccount{Account: a})
	fmt.Printf("Updated account %q\n", a.Name)
	return subcommands.ExitSuccess
}

type deleteAccountCmd struct{ id string }

func (*deleteAccountCmd) Name() string     { return "delete-account" }
func (*deleteAccountCmd) Synopsis() string { return "delete an account" }
func (*deleteAccountCmd) Usage() string {
	return `lt delete-account -id <account-id>

  Deletes an account. Transactions referencing it are kept; they simply stop
  affecting any balance.
`
}

func (c *deleteAccountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Id of the account to delete. Required.")
}

func (c *deleteAccountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		return usageErr("-id is required")
	}
	s, err := openSession()
	if err != nil {
		return fail(err)
	}
	defer s.Close()

	if _, ok := s.data().Account(c.id); !ok {
		return fail(fmt.Errorf("no account with id %q", c.id))
	}
	s.store.Apply(lifetrack.DeleteAccount{ID: c.id})
	fmt.Printf("Deleted account %s\n", c.id)
	return subcommands.ExitSuccess
}
