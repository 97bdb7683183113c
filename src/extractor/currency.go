package extractor

import "strings"

// Lookup tables for currency resolution. All three are built once at init
// and never mutated; concurrent readers need no locking.

// symbolToCurrency maps a currency symbol captured from speech to its
// ISO-4217 code.
var symbolToCurrency = map[string]string{
	"$": "USD",
	"€": "EUR",
	"£": "GBP",
	"¥": "JPY",
	"₹": "INR",
	"₩": "KRW",
}

// locationCurrency pairs a location keyword with the currency to assume when
// neither a code nor a symbol was spoken. Matched by case-insensitive
// substring against the caller's location hint, in this fixed order.
var locationCurrency = []struct {
	Keyword  string
	Currency string
}{
	{"india", "INR"},
	{"united states", "USD"},
	{"usa", "USD"},
	// no bare "uk" entry: it would substring-match "Unknown"
	{"united kingdom", "GBP"},
	{"britain", "GBP"},
	{"london", "GBP"},
	{"japan", "JPY"},
	{"korea", "KRW"},
	{"china", "CNY"},
	{"vietnam", "VND"},
	{"thailand", "THB"},
	{"indonesia", "IDR"},
	{"mexico", "MXN"},
	{"brazil", "BRL"},
	{"germany", "EUR"},
	{"france", "EUR"},
	{"spain", "EUR"},
	{"italy", "EUR"},
	{"europe", "EUR"},
}

// usdRate converts one unit of a currency to US dollars for incentive
// computation. Unknown currencies fall back to 1.0. Rates are deliberately
// fixed so identical inputs always earn identical incentives.
var usdRate = map[string]float64{
	"USD": 1.0,
	"EUR": 1.08,
	"GBP": 1.27,
	"JPY": 0.0067,
	"INR": 0.012,
	"KRW": 0.00075,
	"CNY": 0.14,
	"VND": 0.00004,
	"THB": 0.029,
	"IDR": 0.000065,
	"MXN": 0.058,
	"BRL": 0.18,
}

// DefaultCurrency is assumed when nothing else resolves.
const DefaultCurrency = "USD"

// ResolveCurrency picks a currency in priority order: explicit ISO code
// captured from the text, then spoken symbol, then the location hint, then
// the default.
func ResolveCurrency(code, symbol, locationHint string) string {
	if code != "" {
		return strings.ToUpper(code)
	}
	if cur, ok := symbolToCurrency[symbol]; ok {
		return cur
	}
	hint := strings.ToLower(locationHint)
	if hint != "" {
		for _, lc := range locationCurrency {
			if strings.Contains(hint, lc.Keyword) {
				return lc.Currency
			}
		}
	}
	return DefaultCurrency
}

// USDRate returns the fixed USD conversion rate for a currency, 1.0 when the
// currency is not in the table.
func USDRate(currency string) float64 {
	if rate, ok := usdRate[strings.ToUpper(currency)]; ok {
		return rate
	}
	return 1.0
}
