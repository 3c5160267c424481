package lifetrack

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// StorageKey is the fixed key under which the serialized aggregate lives in
// the durable key-value store. The suffix versions the payload so future
// schema changes can detect and migrate old records.
const StorageKey = "lifeTrackerData_v2"

// EncodeData writes the aggregate to w as a single canonical JSON document:
// stable field order, empty collections as [], optional fields omitted.
// deserialize(serialize(d)) == d for any valid aggregate.
func EncodeData(w io.Writer, d AppData) error {
	raw, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("cannot marshal app data: %w", err)
	}
	if _, err := w.Write(append(raw, '\n')); err != nil {
		return fmt.Errorf("cannot write app data: %w", err)
	}
	return nil
}

// DecodeData reads one aggregate from r and validates it. Malformed input
// is rejected in full: a non-nil error means no partial result.
//
// Decoding is tolerant of additive schema changes (unknown fields are
// ignored) and of missing collections (treated as empty). Habit completion
// sets are deduplicated, since they are semantically sets.
func DecodeData(r io.Reader) (AppData, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return AppData{}, fmt.Errorf("cannot read app data: %w", err)
	}

	var d AppData
	if err := json.Unmarshal(raw, &d); err != nil {
		return AppData{}, fmt.Errorf("cannot parse app data: %w", err)
	}
	d = d.normalize()

	if err := validateData(d); err != nil {
		return AppData{}, fmt.Errorf("invalid app data: %w", err)
	}

	for i, h := range d.Habits {
		d.Habits[i].CompletedDates = dedupeDates(h.CompletedDates)
	}
	return d, nil
}

// validateData checks the invariants external data must satisfy before it
// may replace the aggregate. State already inside the store is never
// re-validated.
func validateData(d AppData) error {
	if d.Settings.MainCurrency == "" {
		return fmt.Errorf("settings: main currency is missing")
	}

	for _, a := range d.Accounts {
		if a.ID == "" {
			return fmt.Errorf("account %q: missing id", a.Name)
		}
		if _, ok := ParseAccountType(string(a.Type)); !ok {
			return fmt.Errorf("account %q: unknown type %q", a.ID, a.Type)
		}
	}

	for _, t := range d.Transactions {
		if t.ID == "" {
			return fmt.Errorf("transaction on %s: missing id", t.Date)
		}
		if _, ok := ParseTransactionType(string(t.Type)); !ok {
			return fmt.Errorf("transaction %q: unknown type %q", t.ID, t.Type)
		}
		if !t.Amount.IsPositive() {
			return fmt.Errorf("transaction %q: amount must be positive, got %s", t.ID, t.Amount)
		}
	}

	for _, h := range d.Habits {
		if h.ID == "" {
			return fmt.Errorf("habit %q: missing id", h.Name)
		}
	}

	for _, g := range d.Goals {
		if g.ID == "" {
			return fmt.Errorf("goal %q: missing id", g.Name)
		}
	}

	seen := make(map[Date]struct{}, len(d.Moods))
	for _, m := range d.Moods {
		if err := m.Validate(); err != nil {
			return fmt.Errorf("mood on %s: %w", m.Date, err)
		}
		if _, dup := seen[m.Date]; dup {
			return fmt.Errorf("mood on %s: duplicate entry for that day", m.Date)
		}
		seen[m.Date] = struct{}{}
	}

	return nil
}

// dedupeDates removes duplicate days, preserving first-seen order.
func dedupeDates(dates []Date) []Date {
	out := make([]Date, 0, len(dates))
	for _, d := range dates {
		if !slices.Contains(out, d) {
			out = append(out, d)
		}
	}
	return out
}
