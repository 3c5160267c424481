// Package cmd implements the CLI application to manage a life tracker.
package cmd

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"lifetrack"
	"lifetrack/kvstore"
)

// Register registers every subcommand on the commander.
func Register(c *subcommands.Commander) {
	c.Register(&spendCmd{}, "transactions")
	c.Register(&earnCmd{}, "transactions")
	c.Register(&editTxCmd{}, "transactions")
	c.Register(&deleteTxCmd{}, "transactions")
	c.Register(&txCmd{}, "transactions")

	c.Register(&newAccountCmd{}, "accounts")
	c.Register(&accountsCmd{}, "accounts")
	c.Register(&editAccountCmd{}, "accounts")
	c.Register(&deleteAccountCmd{}, "accounts")

	c.Register(&newHabitCmd{}, "habits")
	c.Register(&habitsCmd{}, "habits")
	c.Register(&tickCmd{}, "habits")
	c.Register(&deleteHabitCmd{}, "habits")

	c.Register(&newGoalCmd{}, "goals")
	c.Register(&goalsCmd{}, "goals")
	c.Register(&saveCmd{}, "goals")
	c.Register(&deleteGoalCmd{}, "goals")

	c.Register(&moodCmd{}, "moods")
	c.Register(&moodsCmd{}, "moods")

	c.Register(&newCategoryCmd{}, "categories")
	c.Register(&categoriesCmd{}, "categories")
	c.Register(&deleteCategoryCmd{}, "categories")

	c.Register(&settingsCmd{}, "settings")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&reportCmd{}, "reports")
	c.Register(&ratesCmd{}, "reports")

	c.Register(&exportCmd{}, "data")
	c.Register(&importCmd{}, "data")
	c.Register(&resetCmd{}, "data")
}

// As a CLI application it has a very short lived lifecycle, so it is ok to
// use global variables for app-wide flags.

var dbFile = flag.String("db", "", "Path to the tracker database file (defaults to $LIFETRACK_DB or ~/.lifetrack/lifetrack.db)")

var loadEnv = sync.OnceFunc(func() {
	// A missing .env file is the normal case.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("warning: cannot load .env: %v", err)
	}
})

func dbPath() string {
	loadEnv()
	if *dbFile != "" {
		return *dbFile
	}
	if p := os.Getenv("LIFETRACK_DB"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "lifetrack.db"
	}
	return filepath.Join(home, ".lifetrack", "lifetrack.db")
}

// session bundles the open database, the store and its persistence for the
// duration of one command.
type session struct {
	kv      *kvstore.Store
	store   *lifetrack.Store
	persist *lifetrack.Persister
}

// openSession opens the database and loads the stored aggregate into a
// fresh store. An unusable stored record is reported and the empty default
// takes its place; the command still runs.
func openSession() (*session, error) {
	kv, err := kvstore.Open(dbPath())
	if err != nil {
		return nil, fmt.Errorf("cannot open database %q: %w", dbPath(), err)
	}
	store := lifetrack.NewStore()
	persist := lifetrack.NewPersister(store, kv)
	if err := persist.Load(); err != nil {
		log.Printf("warning: %v; starting from empty state", err)
	}
	return &session{kv: kv, store: store, persist: persist}, nil
}

func (s *session) data() lifetrack.AppData { return s.store.State() }

func (s *session) Close() error { return s.kv.Close() }

// fail prints an error and maps it to the exit status for runtime failures.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, "Error:", err)
	return subcommands.ExitFailure
}

// usageErr prints an error and maps it to the exit status for bad flags.
func usageErr(format string, args ...any) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	return subcommands.ExitUsageError
}

// parseAmount parses a strictly positive decimal amount.
func parseAmount(s string) (decimal.Decimal, error) {
	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	if !v.IsPositive() {
		return decimal.Zero, fmt.Errorf("amount must be positive, got %s", v)
	}
	return v, nil
}

// decimalFlag parses a decimal flag value, sign included.
func decimalFlag(s string) (decimal.Decimal, error) {
	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return v, nil
}

// confirm asks the user for a yes/no confirmation on stdin.
func confirm(prompt string) bool {
	fmt.Fprintf(os.Stderr, "%s [y/N]: ", prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
