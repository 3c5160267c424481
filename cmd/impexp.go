package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"lifetrack"
)

type exportCmd struct{ output string }

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export all data to a JSON backup file" }
func (*exportCmd) Usage() string {
	return `lt export [-o <file>]

  Writes the full data set to a JSON file. The default file name carries
  today's date.

Usage Examples:
# Writes finance-backup-2026-08-30.json in the current directory.
$ lt export

`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file, '-' for stdout. Defaults to the dated backup name.")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openSession()
	if err != nil {
		return fail(err)
	}
	defer s.Close()

	if c.output == "-" {
		if err := lifetrack.Export(os.Stdout, s.data()); err != nil {
			return fail(err)
		}
		return subcommands.ExitSuccess
	}

	name := c.output
	if name == "" {
		name = lifetrack.ExportFilename(lifetrack.Today())
	}
	w, err := os.Create(name)
	if err != nil {
		return fail(err)
	}
	defer w.Close()

	if err := lifetrack.Export(w, s.data()); err != nil {
		return fail(err)
	}
	fmt.Printf("Exported data to %s\n", name)
	return subcommands.ExitSuccess
}

type importCmd struct {
	input string
	yes   bool
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "replace all data from a JSON backup file" }
func (*importCmd) Usage() string {
	return `lt import -i <file> [-y]

  Replaces the whole data set with the content of a backup file. A file that
  does not parse or validate is rejected and the current data stays as it
  was.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "i", "", "Backup file to import. Required.")
	f.BoolVar(&c.yes, "y", false, "Skip the confirmation prompt.")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.input == "" {
		return usageErr("-i is required")
	}
	r, err := os.Open(c.input)
	if err != nil {
		return fail(err)
	}
	defer r.Close()

	if !c.yes && !confirm("This replaces ALL current data. Continue?") {
		fmt.Fprintln(os.Stderr, "Import aborted.")
		return subcommands.ExitSuccess
	}

	s, err := openSession()
	if err != nil {
		return fail(err)
	}
	defer s.Close()

	if err := s.persist.Import(r); err != nil {
		return fail(err)
	}
	fmt.Printf("Imported data from %s\n", c.input)
	return subcommands.ExitSuccess
}

type resetCmd struct{ yes bool }

func (*resetCmd) Name() string     { return "reset" }
func (*resetCmd) Synopsis() string { return "erase all data and start over" }
func (*resetCmd) Usage() string {
	return `lt reset [-y]

  Resets the tracker to its empty default state.
`
}

func (c *resetCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "y", false, "Skip the confirmation prompt.")
}

func (c *resetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.yes && !confirm("This erases ALL data. Continue?") {
		fmt.Fprintln(os.Stderr, "Reset aborted.")
		return subcommands.ExitSuccess
	}
	s, err := openSession()
	if err != nil {
		return fail(err)
	}
	defer s.Close()

	s.store.Apply(lifetrack.ResetAll{})
	fmt.Println("All data erased.")
	return subcommands.ExitSuccess
}
