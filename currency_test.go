package lifetrack

import "testing"

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		amount string
		code   string
		want   string
	}{
		{"50", "USD", "$50.00"},
		{"1234.5", "USD", "$1,234.50"},
		{"-50", "USD", "-$50.00"},
		{"0.5", "BTC", "₿0.5"},
		{"-0.25", "ETH", "-Ξ0.25"},
		{"7", "XYZ", "XYZ7"}, // unknown code falls back to the code itself
	}
	for _, tc := range tests {
		if got := FormatAmount(dec(tc.amount), tc.code); got != tc.want {
			t.Errorf("FormatAmount(%s, %s) = %q, want %q", tc.amount, tc.code, got, tc.want)
		}
	}
}

func TestValidateCurrency(t *testing.T) {
	for _, code := range []string{"USD", "EUR", "RUB", "BTC", "TON"} {
		if err := ValidateCurrency(code); err != nil {
			t.Errorf("ValidateCurrency(%s) = %v", code, err)
		}
	}
	if err := ValidateCurrency("XYZ"); err == nil {
		t.Errorf("ValidateCurrency accepted XYZ")
	}
}

func TestCurrencyByCode(t *testing.T) {
	info, ok := CurrencyByCode("EUR")
	if !ok || info.Symbol != "€" || info.Crypto {
		t.Errorf("CurrencyByCode(EUR) = %+v, %v", info, ok)
	}
	if _, ok := CurrencyByCode("XYZ"); ok {
		t.Errorf("CurrencyByCode found XYZ")
	}
}
