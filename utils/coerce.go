package utils

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// The document forms submit numeric fields as free text. Anything that does
// not parse is silently coerced to zero; bad input is never an error at this
// boundary.

// ParseDecimal parses a currency or percentage field, coercing blank or
// non-numeric input to zero.
func ParseDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ParseInt parses an integer field, coercing blank or non-numeric input to zero.
func ParseInt(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

// ParseBoolDefault parses a boolean field, falling back to def.
func ParseBoolDefault(s string, def bool) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return b
}
