package priceformat

import "sort"

// symbols maps ISO 4217 codes to their display symbol.
var symbols = map[string]string{
	"AUD": "$",
	"CAD": "$",
	"CHF": "CHF",
	"CNY": "¥",
	"EUR": "€",
	"GBP": "£",
	"HKD": "$",
	"JPY": "¥",
	"NOK": "kr",
	"SEK": "kr",
	"USD": "$",
}

// Symbol returns the display symbol for a known currency code.
// Any other value is returned unchanged and displayed as a literal symbol.
func Symbol(currency string) string {
	if s, ok := symbols[currency]; ok {
		return s
	}
	return currency
}

// Symbols returns a copy of the currency symbol table.
func Symbols() map[string]string {
	out := make(map[string]string, len(symbols))
	for k, v := range symbols {
		out[k] = v
	}
	return out
}

// Codes returns the known currency codes in sorted order.
func Codes() []string {
	codes := make([]string, 0, len(symbols))
	for k := range symbols {
		codes = append(codes, k)
	}
	sort.Strings(codes)
	return codes
}
