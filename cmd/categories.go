package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"lifetrack"
	"lifetrack/renderer"
)

type newCategoryCmd struct {
	name  string
	kind  string
	emoji string
	color string
}

func (*newCategoryCmd) Name() string     { return "new-category" }
func (*newCategoryCmd) Synopsis() string { return "create a custom category" }
func (*newCategoryCmd) Usage() string {
	return `lt new-category -name <name> [-kind expense|income] [-emoji <emoji>] [-color <color>]

  Creates a custom category next to the built-in catalog.
`
}

func (c *newCategoryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Category name. Required.")
	f.StringVar(&c.kind, "kind", "expense", "Category kind: expense or income.")
	f.StringVar(&c.emoji, "emoji", "", "Display emoji.")
	f.StringVar(&c.color, "color", "", "Display color.")
}

func (c *newCategoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		return usageErr("-name is required")
	}
	kind, ok := lifetrack.ParseTransactionType(c.kind)
	if !ok {
		return usageErr("unknown category kind %q", c.kind)
	}
	s, err := openSession()
	if err != nil {
		return fail(err)
	}
	defer s.Close()

	cat := lifetrack.Category{
		ID:    lifetrack.NewID(),
		Name:  c.name,
		Emoji: c.emoji,
		Color: c.color,
		Type:  kind,
	}
	s.store.Apply(lifetrack.AddCategory{Category: cat})
	fmt.Printf("Created category %q (%s)\n", cat.Name, cat.ID)
	return subcommands.ExitSuccess
}

type categoriesCmd struct{}

func (*categoriesCmd) Name() string     { return "categories" }
func (*categoriesCmd) Synopsis() string { return "list the category catalog" }
func (*categoriesCmd) Usage() string {
	return `lt categories

  Lists the built-in categories and the custom ones.
`
}

func (*categoriesCmd) SetFlags(*flag.FlagSet) {}

func (*categoriesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openSession()
	if err != nil {
		return fail(err)
	}
	defer s.Close()

	printMarkdown(renderer.CategoriesMarkdown(s.data()))
	return subcommands.ExitSuccess
}

type deleteCategoryCmd struct{ id string }

func (*deleteCategoryCmd) Name() string     { return "delete-category" }
func (*deleteCategoryCmd) Synopsis() string { return "delete a custom category" }
func (*deleteCategoryCmd) Usage() string {
	return `lt delete-category -id <category-id>

  Deletes a custom category. Built-in categories cannot be deleted.
`
}

func (c *deleteCategoryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Id of the custom category to delete. Required.")
}

func (c *deleteCategoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		return usageErr("-id is required")
	}
	s, err := openSession()
	if err != nil {
		return fail(err)
	}
	defer s.Close()

	before := s.data()
	s.store.Apply(lifetrack.DeleteCategory{ID: c.id})
	if len(s.data().CustomCategories) == len(before.CustomCategories) {
		return fail(fmt.Errorf("no custom category with id %q", c.id))
	}
	fmt.Printf("Deleted category %s\n", c.id)
	return subcommands.ExitSuccess
}
