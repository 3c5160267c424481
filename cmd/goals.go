package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"lifetrack"
	"lifetrack/renderer"
)

type newGoalCmd struct {
	name     string
	target   string
	currency string
	deadline string
	icon     string
	color    string
}

func (*newGoalCmd) Name() string     { return "new-goal" }
func (*newGoalCmd) Synopsis() string { return "create a savings goal" }
func (*newGoalCmd) Usage() string {
	return `lt new-goal -name <name> -target <amount> [-c <currency>] [-deadline <date>]

  Creates a savings goal. Use 'save' to move its progress.
`
}

func (c *newGoalCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Goal name. Required.")
	f.StringVar(&c.target, "target", "", "Target amount. Required.")
	f.StringVar(&c.currency, "c", "", "Currency code. Defaults to the main currency.")
	f.StringVar(&c.deadline, "deadline", "", "Optional deadline date.")
	f.StringVar(&c.icon, "icon", "", "Display icon.")
	f.StringVar(&c.color, "color", "", "Display color.")
}

func (c *newGoalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" || c.target == "" {
		return usageErr("-name and -target are required")
	}
	target, err := parseAmount(c.target)
	if err != nil {
		return usageErr("%v", err)
	}
	var deadline *lifetrack.Date
	if c.deadline != "" {
		day, err := lifetrack.ParseDate(c.deadline)
		if err != nil {
			return usageErr("%v", err)
		}
		deadline = &day
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

	g := lifetrack.Goal{
		ID:           lifetrack.NewID(),
		Name:         c.name,
		TargetAmount: target,
		Deadline:     deadline,
		Color:        c.color,
		Icon:         c.icon,
		Currency:     currency,
	}
	s.store.Apply(lifetrack.AddGoal{Goal: g})
	fmt.Printf("Created goal %q (%s)\n", g.Name, g.ID)
	return subcommands.ExitSuccess
}

type goalsCmd struct{}

func (*goalsCmd) Name() string     { return "goals" }
func (*goalsCmd) Synopsis() string { return "list goals with their progress" }
func (*goalsCmd) Usage() string {
	return `lt goals

  Lists every savings goal with its progress.
`
}

func (*goalsCmd) SetFlags(*flag.FlagSet) {}

func (*goalsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openSession()
	if err != nil {
		return fail(err)
	}
	defer s.Close()

	printMarkdown(renderer.GoalsMarkdown(s.data()))
	return subcommands.ExitSuccess
}

type saveCmd struct {
	id     string
	amount string
}

func (*saveCmd) Name() string     { return "save" }
func (*saveCmd) Synopsis() string { return "add to a goal's saved amount" }
func (*saveCmd) Usage() string {
	return `lt save -id <goal-id> -a <amount>

  Adds the amount to the goal's progress. A negative amount takes money back
  out, never below zero.
`
}

func (c *saveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Id of the goal. Required.")
	f.StringVar(&c.amount, "a", "", "Amount to add, negative to withdraw. Required.")
}

func (c *saveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" || c.amount == "" {
		return usageErr("-id and -a are required")
	}
	delta, err := decimalFlag(c.amount)
	if err != nil {
		return usageErr("%v", err)
	}
	s, err := openSession()
	if err != nil {
		return fail(err)
	}
	defer s.Close()

	g, ok := s.data().Goal(c.id)
	if !ok {
		return fail(fmt.Errorf("no goal with id %q", c.id))
	}
	g.CurrentAmount = g.CurrentAmount.Add(delta)
	if g.CurrentAmount.IsNegative() {
		g.CurrentAmount = decimal.Zero
	}
	s.store.Apply(lifetrack.UpdateGoal{Goal: g})

	fmt.Printf("Goal %q: %s of %s\n", g.Name,
		lifetrack.FormatAmount(g.CurrentAmount, g.Currency),
		lifetrack.FormatAmount(g.TargetAmount, g.Currency))
	return subcommands.ExitSuccess
}

type deleteGoalCmd struct{ id string }

func (*deleteGoalCmd) Name() string     { return "delete-goal" }
func (*deleteGoalCmd) Synopsis() string { return "delete a goal" }
func (*deleteGoalCmd) Usage() string {
	return `lt delete-goal -id <goal-id>

  Deletes a savings goal.
`
}

func (c *deleteGoalCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Id of the goal to delete. Required.")
}

func (c *deleteGoalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		return usageErr("-id is required")
	}
	s, err := openSession()
	if err != nil {
		return fail(err)
	}
	defer s.Close()

	if _, ok := s.data().Goal(c.id); !ok {
		return fail(fmt.Errorf("no goal with id %q", c.id))
	}
	s.store.Apply(lifetrack.DeleteGoal{ID: c.id})
	fmt.Printf("Deleted goal %s\n", c.id)
	return subcommands.ExitSuccess
}
