package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParsePrice parses a form price field. Both "." and "," are accepted as the
// decimal separator, so "19.99" and "19,99" mean the same amount; create and
// edit share this contract.
func ParsePrice(raw string) (decimal.Decimal, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	return decimal.NewFromString(normalized)
}
