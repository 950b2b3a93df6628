package types

import (
	"strings"

	"github.com/shopspring/decimal"
)

// LenientDecimal is a decimal that never fails to unmarshal: numeric JSON
// values and numeric strings parse normally, anything else becomes zero.
// Form inputs for quantity and price go through this type so that a half
// typed value is treated as zero instead of rejecting the whole request.
type LenientDecimal struct {
	decimal.Decimal
}

func NewLenientDecimal(d decimal.Decimal) LenientDecimal {
	return LenientDecimal{Decimal: d}
}

// ParseLenientDecimal parses a numeric string, returning zero on failure
func ParseLenientDecimal(s string) LenientDecimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return LenientDecimal{Decimal: decimal.Zero}
	}
	return LenientDecimal{Decimal: d}
}

func (d *LenientDecimal) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	*d = ParseLenientDecimal(s)
	return nil
}

func (d LenientDecimal) MarshalJSON() ([]byte, error) {
	return []byte(d.Decimal.String()), nil
}
