package renderer

import (
	"bytes"
	"fmt"
	"strings"

	md "github.com/nao1215/markdown"

	"lifetrack"
)

// HabitsMarkdown renders every habit with its current streak and a seven-day
// completion strip ending on today.
func HabitsMarkdown(d lifetrack.AppData, today lifetrack.Date) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Habits")

	report := lifetrack.HabitReport(d, today)
	if len(report) == 0 {
		doc.PlainText("No habits yet.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignLeft,
		},
		Header: []string{"Habit", "Streak", "Last 7 Days"},
	}
	for _, hs := range report {
		name := hs.Habit.Name
		if hs.Habit.Emoji != "" {
			name = hs.Habit.Emoji + " " + name
		}
		table.Rows = append(table.Rows, []string{
			name,
			fmt.Sprintf("%d", hs.Streak),
			weekStrip(hs.Habit, today),
		})
	}
	doc.Table(table)

	return doc.String()
}

// weekStrip renders the last seven days as a left-to-right strip, oldest
// first.
func weekStrip(h lifetrack.Habit, today lifetrack.Date) string {
	var b strings.Builder
	for i := 6; i >= 0; i-- {
		if h.CompletedOn(today.Add(-i)) {
			b.WriteString("x")
		} else {
			b.WriteString("·")
		}
	}
	return b.String()
}
