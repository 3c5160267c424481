package lifetrack

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decPtr(s string) *decimal.Decimal {
	v := dec(s)
	return &v
}

func richData() AppData {
	due := MustParseDate("2026-12-01")
	deadline := MustParseDate("2027-06-30")
	d := DefaultData()
	d.Accounts = []Account{
		{ID: "acc-1", Name: "Wallet", Type: AccountRegular, Balance: dec("150"), Currency: "USD", Icon: "👛"},
		{ID: "acc-2", Name: "Broker", Type: AccountInvestment, Balance: dec("1200.50"), Currency: "EUR", Icon: "📈", InterestRate: decPtr("5.5")},
		{ID: "acc-3", Name: "Car Loan", Type: AccountDebt, Balance: dec("-8000"), Currency: "USD", Icon: "🚗",
			Principal: decPtr("10000"), MinPayment: decPtr("250"), DueDate: &due},
	}
	d.Transactions = []Transaction{
		{ID: "tx-1", Type: Expense, Amount: dec("50"), Currency: "USD", CategoryID: "food",
			Date: MustParseDate("2026-03-10"), Description: "groceries", AccountID: "acc-1"},
		{ID: "tx-2", Type: Income, Amount: dec("900"), Currency: "EUR", AmountInMainCurrency: decPtr("989.01"),
			CategoryID: "salary", Date: MustParseDate("2026-03-01"), AccountID: "acc-2", Rate: decPtr("0.91")},
	}
	d.Habits = []Habit{
		{ID: "hab-1", Name: "Reading", Emoji: "📚", CompletedDates: []Date{
			MustParseDate("2026-03-09"), MustParseDate("2026-03-10"),
		}, TargetMinutes: 30},
	}
	d.Goals = []Goal{
		{ID: "goal-1", Name: "Vacation", TargetAmount: dec("1000"), CurrentAmount: dec("250"),
			Deadline: &deadline, Color: "#0ea5e9", Icon: "✈️", Currency: "USD"},
	}
	d.Moods = []Mood{
		{Date: MustParseDate("2026-03-10"), Mood: 4, Note: "good"},
		{Date: MustParseDate("2026-03-09"), Mood: 2},
	}
	d.CustomCategories = []Category{
		{ID: "cat-1", Name: "Pets", Emoji: "🐈", Color: "#a855f7", Type: Expense, IsCustom: true},
	}
	return d
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		data AppData
	}{
		{"default empty aggregate", DefaultData()},
		{"fully populated aggregate", richData()},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := EncodeData(&buf, tc.data); err != nil {
				t.Fatalf("encode: %v", err)
			}
			got, err := DecodeData(&buf)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if !got.Equal(tc.data) {
				t.Errorf("round trip changed the data:\n got %+v\nwant %+v", got, tc.data)
			}
		})
	}
}

func TestEncodeGolden(t *testing.T) {
	d := DefaultData()
	d.Accounts = []Account{
		{ID: "acc-1", Name: "Wallet", Type: AccountRegular, Balance: dec("150"), Currency: "USD", Icon: "👛"},
	}
	d.Transactions = []Transaction{
		{ID: "tx-1", Type: Expense, Amount: dec("50"), Currency: "USD", CategoryID: "food",
			Date: MustParseDate("2026-03-10"), Description: "groceries", AccountID: "acc-1"},
	}
	d.Habits = []Habit{
		{ID: "hab-1", Name: "Reading", Emoji: "📚", CompletedDates: []Date{MustParseDate("2026-03-10")}},
	}
	d.Moods = []Mood{{Date: MustParseDate("2026-03-10"), Mood: 4, Note: "good"}}

	var buf bytes.Buffer
	if err := EncodeData(&buf, d); err != nil {
		t.Fatalf("encode: %v", err)
	}

	g := goldie.New(t)
	g.Assert(t, "export", buf.Bytes())
}

func TestEncodeIsDeterministic(t *testing.T) {
	var a, b bytes.Buffer
	if err := EncodeData(&a, richData()); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if err := EncodeData(&b, richData()); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Errorf("same data encoded differently:\n%s\n%s", a.String(), b.String())
	}
}

func TestDecodeRejectsMalformed(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"not json", `this is not json`},
		{"truncated document", `{"accounts":[`},
		{"missing main currency", `{"settings":{"isDark":true,"language":"ru"}}`},
		{"account without id", `{"accounts":[{"name":"Wallet","type":"regular","currency":"USD"}],"settings":{"mainCurrency":"USD"}}`},
		{"account with unknown type", `{"accounts":[{"id":"a","name":"W","type":"checking","currency":"USD"}],"settings":{"mainCurrency":"USD"}}`},
		{"transaction without id", `{"transactions":[{"type":"expense","amount":5,"currency":"USD","categoryId":"food","date":"2026-03-10"}],"settings":{"mainCurrency":"USD"}}`},
		{"transaction with unknown type", `{"transactions":[{"id":"t","type":"transfer","amount":5,"currency":"USD","categoryId":"food","date":"2026-03-10"}],"settings":{"mainCurrency":"USD"}}`},
		{"transaction with zero amount", `{"transactions":[{"id":"t","type":"expense","amount":0,"currency":"USD","categoryId":"food","date":"2026-03-10"}],"settings":{"mainCurrency":"USD"}}`},
		{"transaction with negative amount", `{"transactions":[{"id":"t","type":"expense","amount":-5,"currency":"USD","categoryId":"food","date":"2026-03-10"}],"settings":{"mainCurrency":"USD"}}`},
		{"unparseable date", `{"moods":[{"date":"March 10th","mood":3}],"settings":{"mainCurrency":"USD"}}`},
		{"mood below range", `{"moods":[{"date":"2026-03-10","mood":0}],"settings":{"mainCurrency":"USD"}}`},
		{"mood above range", `{"moods":[{"date":"2026-03-10","mood":6}],"settings":{"mainCurrency":"USD"}}`},
		{"duplicate mood days", `{"moods":[{"date":"2026-03-10","mood":3},{"date":"2026-03-10","mood":4}],"settings":{"mainCurrency":"USD"}}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecodeData(strings.NewReader(tc.payload)); err == nil {
				t.Errorf("DecodeData accepted %s", tc.payload)
			}
		})
	}
}

func TestDecodeFillsMissingCollections(t *testing.T) {
	got, err := DecodeData(strings.NewReader(`{"settings":{"mainCurrency":"USD","isDark":true,"language":"ru"}}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Accounts == nil || got.Transactions == nil || got.Habits == nil ||
		got.Goals == nil || got.Moods == nil || got.CustomCategories == nil {
		t.Errorf("missing collections decoded as nil: %+v", got)
	}
}

func TestDecodeIgnoresUnknownFields(t *testing.T) {
	payload := `{"settings":{"mainCurrency":"USD","isDark":true,"language":"ru","futureKnob":42},"futureCollection":[1,2,3]}`
	if _, err := DecodeData(strings.NewReader(payload)); err != nil {
		t.Errorf("additive schema change rejected: %v", err)
	}
}

func TestDecodeDedupesHabitDates(t *testing.T) {
	payload := `{"habits":[{"id":"h","name":"Reading","emoji":"","completedDates":["2026-03-10","2026-03-09","2026-03-10"]}],"settings":{"mainCurrency":"USD"}}`
	got, err := DecodeData(strings.NewReader(payload))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := []Date{MustParseDate("2026-03-10"), MustParseDate("2026-03-09")}
	if len(got.Habits) != 1 || len(got.Habits[0].CompletedDates) != 2 {
		t.Fatalf("duplicates kept: %v", got.Habits)
	}
	for i, day := range want {
		if got.Habits[0].CompletedDates[i] != day {
			t.Errorf("completedDates[%d] = %s, want %s", i, got.Habits[0].CompletedDates[i], day)
		}
	}
}
