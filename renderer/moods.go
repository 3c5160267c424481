package renderer

import (
	"bytes"
	"strings"

	md "github.com/nao1215/markdown"

	"lifetrack"
)

// MoodMarkdown renders the mood log for a range as a table, one row per
// logged day.
func MoodMarkdown(d lifetrack.AppData, r lifetrack.Range) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Mood Log")

	history := lifetrack.MoodHistory(d, r)
	if len(history) == 0 {
		doc.PlainText("No entries.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
		},
		Header: []string{"Date", "Mood", "Note"},
	}
	for _, m := range history {
		table.Rows = append(table.Rows, []string{
			m.Date.String(),
			moodScale(m.Mood),
			m.Note,
		})
	}
	doc.Table(table)

	return doc.String()
}

func moodScale(level int) string {
	if level < lifetrack.MoodMin {
		level = lifetrack.MoodMin
	}
	if level > lifetrack.MoodMax {
		level = lifetrack.MoodMax
	}
	return strings.Repeat("★", level) + strings.Repeat("☆", lifetrack.MoodMax-level)
}
