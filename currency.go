package lifetrack

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// CurrencyInfo describes one supported currency.
type CurrencyInfo struct {
	Code   string
	Name   string
	Symbol string
	Crypto bool
}

// currencyCatalog lists the currencies the tracker knows about: the common
// fiat set plus a handful of crypto assets. Fiat codes are also known to
// go-money, which supplies their minor-unit formatting.
var currencyCatalog = []CurrencyInfo{
	{Code: "USD", Name: "US Dollar", Symbol: "$"},
	{Code: "EUR", Name: "Euro", Symbol: "€"},
	{Code: "GBP", Name: "British Pound", Symbol: "£"},
	{Code: "RUB", Name: "Russian Ruble", Symbol: "₽"},
	{Code: "UAH", Name: "Ukrainian Hryvnia", Symbol: "₴"},
	{Code: "JPY", Name: "Japanese Yen", Symbol: "¥"},
	{Code: "CNY", Name: "Chinese Yuan", Symbol: "¥"},
	{Code: "KRW", Name: "Korean Won", Symbol: "₩"},
	{Code: "INR", Name: "Indian Rupee", Symbol: "₹"},
	{Code: "BRL", Name: "Brazilian Real", Symbol: "R$"},
	{Code: "CAD", Name: "Canadian Dollar", Symbol: "C$"},
	{Code: "AUD", Name: "Australian Dollar", Symbol: "A$"},
	{Code: "CHF", Name: "Swiss Franc", Symbol: "Fr"},
	{Code: "PLN", Name: "Polish Zloty", Symbol: "zł"},
	{Code: "TRY", Name: "Turkish Lira", Symbol: "₺"},
	{Code: "AED", Name: "UAE Dirham", Symbol: "د.إ"},
	{Code: "SGD", Name: "Singapore Dollar", Symbol: "S$"},
	{Code: "HKD", Name: "Hong Kong Dollar", Symbol: "HK$"},
	{Code: "SEK", Name: "Swedish Krona", Symbol: "kr"},
	{Code: "NOK", Name: "Norwegian Krone", Symbol: "kr"},
	{Code: "CZK", Name: "Czech Koruna", Symbol: "Kč"},
	{Code: "ILS", Name: "Israeli Shekel", Symbol: "₪"},
	{Code: "THB", Name: "Thai Baht", Symbol: "฿"},
	{Code: "MXN", Name: "Mexican Peso", Symbol: "$"},
	{Code: "BTC", Name: "Bitcoin", Symbol: "₿", Crypto: true},
	{Code: "ETH", Name: "Ethereum", Symbol: "Ξ", Crypto: true},
	{Code: "USDT", Name: "Tether", Symbol: "₮", Crypto: true},
	{Code: "USDC", Name: "USD Coin", Symbol: "$", Crypto: true},
	{Code: "BNB", Name: "Binance Coin", Symbol: "BNB", Crypto: true},
	{Code: "XRP", Name: "Ripple", Symbol: "XRP", Crypto: true},
	{Code: "SOL", Name: "Solana", Symbol: "SOL", Crypto: true},
	{Code: "ADA", Name: "Cardano", Symbol: "ADA", Crypto: true},
	{Code: "DOGE", Name: "Dogecoin", Symbol: "Ð", Crypto: true},
	{Code: "TON", Name: "Toncoin", Symbol: "TON", Crypto: true},
}

// Currencies returns the supported currency catalog.
func Currencies() []CurrencyInfo {
	out := make([]CurrencyInfo, len(currencyCatalog))
	copy(out, currencyCatalog)
	return out
}

// CurrencyByCode looks up a currency in the catalog.
func CurrencyByCode(code string) (CurrencyInfo, bool) {
	for _, c := range currencyCatalog {
		if c.Code == code {
			return c, true
		}
	}
	return CurrencyInfo{}, false
}

// ValidateCurrency checks that the code is part of the supported catalog.
func ValidateCurrency(code string) error {
	if _, ok := CurrencyByCode(code); !ok {
		return fmt.Errorf("unsupported currency code %q", code)
	}
	return nil
}

// FormatAmount renders an amount in the given currency. Fiat currencies use
// go-money's locale-aware minor-unit formatting; crypto and unknown codes
// fall back to symbol-prefix with up to eight decimals.
func FormatAmount(v decimal.Decimal, code string) string {
	info, ok := CurrencyByCode(code)
	if ok && !info.Crypto {
		if cur := money.GetCurrency(code); cur != nil {
			minor := v.Shift(int32(cur.Fraction))
			return cur.Formatter().Format(minor.IntPart())
		}
	}
	symbol := code
	if ok {
		symbol = info.Symbol
	}
	s := v.RoundBank(8).String()
	if strings.HasPrefix(s, "-") {
		return "-" + symbol + s[1:]
	}
	return symbol + s
}
