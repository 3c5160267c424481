package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"lifetrack"
)

type settingsCmd struct {
	currency string
	theme    string
	language string
}

func (*settingsCmd) Name() string     { return "settings" }
func (*settingsCmd) Synopsis() string { return "show or change user preferences" }
func (*settingsCmd) Usage() string {
	return `lt settings [-c <currency>] [-theme dark|light] [-lang <code>]

  Without flags, shows the current settings. With flags, updates the given
  preferences and leaves the rest untouched.
`
}

func (c *settingsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "c", "", "Main currency code.")
	f.StringVar(&c.theme, "theme", "", "Color theme: dark or light.")
	f.StringVar(&c.language, "lang", "", "Interface language code, e.g. en or ru.")
}

func (c *settingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var patch lifetrack.SettingsPatch
	if c.currency != "" {
		if err := lifetrack.ValidateCurrency(c.currency); err != nil {
			return usageErr("%v", err)
		}
		patch.MainCurrency = &c.currency
	}
	switch c.theme {
	case "":
	case "dark", "light":
		dark := c.theme == "dark"
		patch.IsDark = &dark
	default:
		return usageErr("unknown theme %q, want dark or light", c.theme)
	}
	if c.language != "" {
		patch.Language = &c.language
	}

	s, err := openSession()
	if err != nil {
		return fail(err)
	}
	defer s.Close()

	if patch != (lifetrack.SettingsPatch{}) {
		s.store.Apply(lifetrack.UpdateSettings{Patch: patch})
	}

	settings := s.data().Settings
	theme := "light"
	if settings.IsDark {
		theme = "dark"
	}
	fmt.Printf("Main currency: %s\nTheme:         %s\nLanguage:      %s\n",
		settings.MainCurrency, theme, settings.Language)
	return subcommands.ExitSuccess
}
