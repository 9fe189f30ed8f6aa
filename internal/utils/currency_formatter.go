package utils

import (
	"strings"

	"github.com/hance08/moneymgr/internal/constants"
	"github.com/shopspring/decimal"
)

// FormatINR renders an amount in rupees without minor units, using Indian
// digit grouping: 1234567.5 -> "₹12,34,568".
func FormatINR(amount decimal.Decimal) string {
	rounded := amount.Round(0)

	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Neg()
	}

	return sign + constants.CurrencySymbol + groupIndian(rounded.StringFixed(0))
}

// FormatSignedINR prefixes the formatted absolute amount with sign.
func FormatSignedINR(sign string, amount decimal.Decimal) string {
	return sign + FormatINR(amount.Abs())
}

// groupIndian places a comma after the last three digits, then every two.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}

	return strings.Join(groups, ",") + "," + tail
}

// ParseAmountInput normalizes user input such as "₹1,250" or " 1250.50 ".
func ParseAmountInput(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, constants.CurrencySymbol)
	return strings.ReplaceAll(s, ",", "")
}
