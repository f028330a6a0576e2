// Package currency formats decimal amounts as Indian rupees with the
// Indian digit grouping (last three digits, then pairs: 1,23,456.00).
package currency

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Format renders an amount as "Rs.1,23,456.00". The rupee sign is
// avoided since gofpdf's core fonts cannot render it.
func Format(amount decimal.Decimal) string {
	negative := amount.IsNegative()
	fixed := amount.Abs().StringFixed(2)

	parts := strings.SplitN(fixed, ".", 2)
	grouped := groupIndian(parts[0])

	out := fmt.Sprintf("Rs.%s.%s", grouped, parts[1])
	if negative {
		out = "-" + out
	}
	return out
}

func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

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
