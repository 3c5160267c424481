package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"lifetrack"
	"lifetrack/renderer"
)

type moodCmd struct {
	level int
	date  string
	note  string
}

func (*moodCmd) Name() string     { return "mood" }
func (*moodCmd) Synopsis() string { return "log how the day went" }
func (*moodCmd) Usage() string {
	return `lt mood -l <1-5> [-d <date>] [-note <text>]

  Logs a mood for a day, from 1 (worst) to 5 (best). Logging the same day
  again replaces the earlier entry.
`
}

func (c *moodCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.level, "l", 0, "Mood level from 1 to 5. Required.")
	f.StringVar(&c.date, "d", lifetrack.Today().String(), "Day the mood is for.")
	f.StringVar(&c.note, "note", "", "Free-form note.")
}

func (c *moodCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day, err := lifetrack.ParseDate(c.date)
	if err != nil {
		return usageErr("%v", err)
	}
	m := lifetrack.Mood{Date: day, Mood: c.level, Note: c.note}
	if err := m.Validate(); err != nil {
		return usageErr("%v", err)
	}

	s, err := openSession()
	if err != nil {
		return fail(err)
	}
	defer s.Close()

	s.store.Apply(lifetrack.SetMood{Entry: m})
	fmt.Printf("Logged mood %d for %s\n", m.Mood, m.Date)
	return subcommands.ExitSuccess
}

type moodsCmd struct {
	start  string
	end    string
	period string
}

func (*moodsCmd) Name() string     { return "moods" }
func (*moodsCmd) Synopsis() string { return "show the mood log" }
func (*moodsCmd) Usage() string {
	return `lt moods [-s <start_date>] [-e <end_date>] [-p <period>]

  Shows logged moods, optionally restricted to a date range.
`
}

func (c *moodsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.start, "s", "", "Start of the range, inclusive.")
	f.StringVar(&c.end, "e", "", "End of the range, inclusive.")
	f.StringVar(&c.period, "p", "", "Predefined period (day, week, month, quarter, year). Overrides -s and -e.")
}

func (c *moodsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, status := parseRange(c.start, c.end, c.period)
	if status != subcommands.ExitSuccess {
		return status
	}
	s, err := openSession()
	if err != nil {
		return fail(err)
	}
	defer s.Close()

	printMarkdown(renderer.MoodMarkdown(s.data(), r))
	return subcommands.ExitSuccess
}
