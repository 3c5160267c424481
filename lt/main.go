package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"lifetrack/cmd"
)

func main() {
	// Shell completion: handled and exits when invoked by the shell.
	completer := &complete.Command{
		Sub: map[string]*complete.Command{
			"spend": nil, "earn": nil, "edit-tx": nil, "delete-tx": nil, "tx": nil,
			"new-account": nil, "accounts": nil, "edit-account": nil, "delete-account": nil,
			"new-habit": nil, "habits": nil, "tick": nil, "delete-habit": nil,
			"new-goal": nil, "goals": nil, "save": nil, "delete-goal": nil,
			"mood": nil, "moods": nil,
			"new-category": nil, "categories": nil, "delete-category": nil,
			"settings": nil, "summary": nil, "report": nil, "rates": nil,
			"export": nil, "import": nil, "reset": nil,
		},
		Flags: map[string]complete.Predictor{
			"db": predict.Files("*.db"),
		},
	}
	completer.Complete("lt")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
