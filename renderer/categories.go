package renderer

import (
	"bytes"

	md "github.com/nao1215/markdown"

	"lifetrack"
)

// CategoriesMarkdown renders the merged category catalog, built-in and
// custom.
func CategoriesMarkdown(d lifetrack.AppData) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Categories")

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
		},
		Header: []string{"ID", "Category", "Type", "Origin"},
	}
	for _, c := range lifetrack.Categories(d) {
		origin := "built-in"
		if c.IsCustom {
			origin = "custom"
		}
		name := c.Name
		if c.Emoji != "" {
			name = c.Emoji + " " + name
		}
		table.Rows = append(table.Rows, []string{c.ID, name, string(c.Type), origin})
	}
	doc.Table(table)

	return doc.String()
}
