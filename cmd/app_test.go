package cmd

import (
	"testing"

	"github.com/google/subcommands"

	"lifetrack"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in string
		ok bool
	}{
		{"12.50", true},
		{"0.01", true},
		{"0", false},
		{"-5", false},
		{"abc", false},
		{"", false},
	}
	for _, tc := range tests {
		_, err := parseAmount(tc.in)
		if tc.ok != (err == nil) {
			t.Errorf("parseAmount(%q) error = %v, want ok=%v", tc.in, err, tc.ok)
		}
	}
}

func TestDecimalFlagAllowsAnySign(t *testing.T) {
	for _, in := range []string{"-5", "0", "12.5"} {
		if _, err := decimalFlag(in); err != nil {
			t.Errorf("decimalFlag(%q) = %v", in, err)
		}
	}
	if _, err := decimalFlag("abc"); err == nil {
		t.Errorf("decimalFlag accepted abc")
	}
}

func TestParseRange(t *testing.T) {
	r, status := parseRange("2026-03-01", "2026-03-31", "")
	if status != subcommands.ExitSuccess {
		t.Fatalf("status = %v", status)
	}
	if r.From != lifetrack.MustParseDate("2026-03-01") || r.To != lifetrack.MustParseDate("2026-03-31") {
		t.Errorf("range = %s..%s", r.From, r.To)
	}

	r, status = parseRange("", "", "month")
	if status != subcommands.ExitSuccess {
		t.Fatalf("period status = %v", status)
	}
	if want := lifetrack.MonthOf(lifetrack.Today()); r != want {
		t.Errorf("month range = %v, want %v", r, want)
	}

	if _, status := parseRange("garbage", "", ""); status == subcommands.ExitSuccess {
		t.Errorf("bad start date accepted")
	}
	if _, status := parseRange("", "", "fortnight"); status == subcommands.ExitSuccess {
		t.Errorf("bad period accepted")
	}
}
