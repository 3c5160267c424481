package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"lifetrack"
	"lifetrack/renderer"
)

type newHabitCmd struct {
	name    string
	emoji   string
	minutes int
}

func (*newHabitCmd) Name() string     { return "new-habit" }
func (*newHabitCmd) Synopsis() string { return "create a habit to track daily" }
func (*newHabitCmd) Usage() string {
	return `lt new-habit -name <name> [-emoji <emoji>] [-minutes <n>]

  Creates a daily habit. Use 'tick' to mark it done on a day.
`
}

func (c *newHabitCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Habit name. Required.")
	f.StringVar(&c.emoji, "emoji", "", "Display emoji.")
	f.IntVar(&c.minutes, "minutes", 0, "Daily target in minutes, if any.")
}

func (c *newHabitCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		return usageErr("-name is required")
	}
	s, err := openSession()
	if err != nil {
		return fail(err)
	}
	defer s.Close()

	h := lifetrack.Habit{
		ID:            lifetrack.NewID(),
		Name:          c.name,
		Emoji:         c.emoji,
		TargetMinutes: c.minutes,
	}
	s.store.Apply(lifetrack.AddHabit{Habit: h})
	fmt.Printf("Created habit %q (%s)\n", h.Name, h.ID)
	return subcommands.ExitSuccess
}

type habitsCmd struct{ date string }

func (*habitsCmd) Name() string     { return "habits" }
func (*habitsCmd) Synopsis() string { return "list habits with their streaks" }
func (*habitsCmd) Usage() string {
	return `lt habits [-d <date>]

  Lists every habit with its streak as of the given day.
`
}

func (c *habitsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", lifetrack.Today().String(), "Day to compute streaks for.")
}

func (c *habitsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day, err := lifetrack.ParseDate(c.date)
	if err != nil {
		return usageErr("%v", err)
	}
	s, err := openSession()
	if err != nil {
		return fail(err)
	}
	defer s.Close()

	printMarkdown(renderer.HabitsMarkdown(s.data(), day))
	return subcommands.ExitSuccess
}

type tickCmd struct {
	id   string
	date string
}

func (*tickCmd) Name() string     { return "tick" }
func (*tickCmd) Synopsis() string { return "toggle a habit's completion for a day" }
func (*tickCmd) Usage() string {
	return `lt tick -id <habit-id> [-d <date>]

  Marks the habit done on the given day, or un-marks it when it already was.
`
}

func (c *tickCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Id of the habit to toggle. Required.")
	f.StringVar(&c.date, "d", lifetrack.Today().String(), "Day to toggle.")
}

func (c *tickCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		return usageErr("-id is required")
	}
	day, err := lifetrack.ParseDate(c.date)
	if err != nil {
		return usageErr("%v", err)
	}
	s, err := openSession()
	if err != nil {
		return fail(err)
	}
	defer s.Close()

	h, ok := s.data().Habit(c.id)
	if !ok {
		return fail(fmt.Errorf("no habit with id %q", c.id))
	}
	h.CompletedDates = h.Toggle(day)
	s.store.Apply(lifetrack.UpdateHabit{Habit: h})

	if h.CompletedOn(day) {
		fmt.Printf("Habit %q done on %s. Streak: %d\n", h.Name, day, lifetrack.StreakOn(h.CompletedDates, day))
	} else {
		fmt.Printf("Habit %q unmarked on %s\n", h.Name, day)
	}
	return subcommands.ExitSuccess
}

type deleteHabitCmd struct{ id string }

func (*deleteHabitCmd) Name() string     { return "delete-habit" }
func (*deleteHabitCmd) Synopsis() string { return "delete a habit" }
func (*deleteHabitCmd) Usage() string {
	return `lt delete-habit -id <habit-id>

  Deletes a habit and its completion history.
`
}

func (c *deleteHabitCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Id of the habit to delete. Required.")
}

func (c *deleteHabitCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		return usageErr("-id is required")
	}
	s, err := openSession()
	if err != nil {
		return fail(err)
	}
	defer s.Close()

	if _, ok := s.data().Habit(c.id); !ok {
		return fail(fmt.Errorf("no habit with id %q", c.id))
	}
	s.store.Apply(lifetrack.DeleteHabit{ID: c.id})
	fmt.Printf("Deleted habit %s\n", c.id)
	return subcommands.ExitSuccess
}
