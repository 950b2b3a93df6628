package types

import (
	"github.com/shopspring/decimal"
)

// CURRENCY_CODES_SYMBOLS is a map of 3 digit ISO currency codes to their symbols
var CURRENCY_CODES_SYMBOLS = map[string]string{
	"usd": "$",
	"eur": "€",
	"gbp": "£",
	"aud": "AU$",
	"cad": "CA$",
	"inr": "₹",
	"jpy": "¥",
	"sgd": "S$",
}

// DefaultCurrency is the currency used when none is configured
const DefaultCurrency = "usd"

// GetCurrencySymbol returns the symbol for a given currency code
// if the code is not found, it returns the code itself
func GetCurrencySymbol(code string) string {
	if symbol, ok := CURRENCY_CODES_SYMBOLS[code]; ok {
		return symbol
	}
	return code
}

// FormatAmount renders an amount as a display currency string with two
// decimal places, e.g. "$1,500.00". Display-only, never parsed back.
func FormatAmount(amount decimal.Decimal, currency string) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Neg()
	}
	return sign + GetCurrencySymbol(currency) + groupThousands(amount.StringFixed(2))
}

// groupThousands inserts comma separators into the integer part of a
// fixed-point decimal string
func groupThousands(s string) string {
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}

	intPart := s
	fracPart := ""
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			intPart = s[:i]
			fracPart = s[i:]
			break
		}
	}

	if len(intPart) > 3 {
		grouped := make([]byte, 0, len(intPart)+len(intPart)/3)
		lead := len(intPart) % 3
		if lead > 0 {
			grouped = append(grouped, intPart[:lead]...)
		}
		for i := lead; i < len(intPart); i += 3 {
			if len(grouped) > 0 {
				grouped = append(grouped, ',')
			}
			grouped = append(grouped, intPart[i:i+3]...)
		}
		intPart = string(grouped)
	}

	out := intPart + fracPart
	if neg {
		out = "-" + out
	}
	return out
}
