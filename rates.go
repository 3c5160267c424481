package lifetrack

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// RateProvider supplies exchange rates as units of a currency per one US
// dollar. The engine itself never converts amounts; rates are used by the
// outer layers to fill amountInMainCurrency before an operation is issued.
type RateProvider interface {
	Rate(ctx context.Context, code string) (decimal.Decimal, error)
}

// StaticRates is a fixed rate table. Unknown codes rate at 1, so a missing
// rate degrades to "assume main currency" instead of failing.
type StaticRates map[string]float64

// Rate implements RateProvider.
func (s StaticRates) Rate(_ context.Context, code string) (decimal.Decimal, error) {
	if v, ok := s[code]; ok {
		return decimal.NewFromFloat(v), nil
	}
	return decimal.NewFromInt(1), nil
}

// DefaultRates is the built-in offline rate table.
func DefaultRates() StaticRates {
	return StaticRates{
		"USD": 1, "EUR": 0.91, "GBP": 0.78, "RUB": 89.5, "UAH": 38.2,
		"JPY": 148.5, "CNY": 7.2, "KRW": 1340, "INR": 83.1, "BRL": 4.95,
		"BTC": 0.000021, "ETH": 0.0004, "USDT": 1, "USDC": 1, "BNB": 0.003,
		"XRP": 1.8, "SOL": 0.01, "ADA": 1.8, "DOGE": 12, "TON": 0.45,
	}
}

// HTTPRates fetches rates from a JSON quote endpoint. The URL is a
// fmt.Sprintf pattern taking the currency code; Path is a jsonpath
// expression selecting the numeric rate inside the response document.
type HTTPRates struct {
	Client   *http.Client
	URL      string
	Path     string
	Fallback RateProvider // consulted when the remote lookup fails; may be nil
}

// Rate implements RateProvider.
func (h *HTTPRates) Rate(ctx context.Context, code string) (decimal.Decimal, error) {
	rate, err := h.fetch(ctx, code)
	if err != nil && h.Fallback != nil {
		return h.Fallback.Rate(ctx, code)
	}
	return rate, err
}

func (h *HTTPRates) fetch(ctx context.Context, code string) (decimal.Decimal, error) {
	client := h.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf(h.URL, code), nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("rate request for %s: %w", code, err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return decimal.Zero, fmt.Errorf("rate request for %s: %w", code, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, fmt.Errorf("rate request for %s: unexpected status %s", code, resp.Status)
	}

	var jobj any
	if err := json.NewDecoder(resp.Body).Decode(&jobj); err != nil {
		return decimal.Zero, fmt.Errorf("rate response for %s: %w", code, err)
	}

	jval, err := jsonpath.Get(h.Path, jobj)
	if err != nil {
		return decimal.Zero, fmt.Errorf("rate response for %s: path %q: %w", code, h.Path, err)
	}
	// jsonpath may yield a single value or a one-element list; keep the first.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, ok := jval.(float64)
	if !ok {
		return decimal.Zero, fmt.Errorf("rate response for %s: path %q is not a number (%v)", code, h.Path, jval)
	}
	return decimal.NewFromFloat(val), nil
}

// FetchRates resolves several codes concurrently against one provider.
func FetchRates(ctx context.Context, p RateProvider, codes []string) (map[string]decimal.Decimal, error) {
	var mu sync.Mutex
	out := make(map[string]decimal.Decimal, len(codes))

	g, ctx := errgroup.WithContext(ctx)
	for _, code := range codes {
		code := code
		g.Go(func() error {
			rate, err := p.Rate(ctx, code)
			if err != nil {
				return err
			}
			mu.Lock()
			out[code] = rate
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// ConvertAmount converts an amount between two currencies using a rate
// table keyed as units-per-USD. Missing codes rate at 1.
func ConvertAmount(rates map[string]decimal.Decimal, amount decimal.Decimal, from, to string) decimal.Decimal {
	one := decimal.NewFromInt(1)
	fromRate, ok := rates[from]
	if !ok || fromRate.IsZero() {
		fromRate = one
	}
	toRate, ok := rates[to]
	if !ok || toRate.IsZero() {
		toRate = one
	}
	return amount.Div(fromRate).Mul(toRate)
}
