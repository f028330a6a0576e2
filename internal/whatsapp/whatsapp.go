// Package whatsapp constructs pre-filled wa.me message links. Link
// construction is the whole responsibility here: the core never makes
// the network call, the client opens the URL.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"tailor-backend/internal/currency"
	"tailor-backend/internal/derive"
	"tailor-backend/internal/models"
	"tailor-backend/internal/timeutil"
)

const countryCode = "91"

// Link builds a wa.me URL for the given phone number and message body
func Link(phone, message string) string {
	return fmt.Sprintf("https://wa.me/%s%s?text=%s", countryCode, digitsOnly(phone), url.QueryEscape(message))
}

// OrderMessage is the order confirmation summary sent to a customer
func OrderMessage(shop models.ShopInfo, customer models.Customer, order models.Order) string {
	paid := order.Total.Sub(order.Balance)
	lines := []string{
		fmt.Sprintf("Hello %s,", customer.FullName),
		fmt.Sprintf("Here is your order summary from %s:", shop.Name),
		fmt.Sprintf("*Order No:* %s", order.OrderNumber),
		fmt.Sprintf("*Total Amount:* %s", currency.Format(order.Total)),
		fmt.Sprintf("*Amount Paid:* %s", currency.Format(paid)),
		fmt.Sprintf("*Balance Due:* %s", currency.Format(order.Balance)),
		fmt.Sprintf("*Due Date:* %s", timeutil.ToIST(order.DueDate).Format(timeutil.ShortLayout)),
		"",
		"Thank you!",
	}
	return strings.Join(lines, "\n")
}

// StatementMessage is the settlement summary sent to an employee; the
// totals are the current statement window's, not the lifetime ledger's
func StatementMessage(shop models.ShopInfo, employee models.Employee, summary derive.LedgerSummary) string {
	lines := []string{
		fmt.Sprintf("Hello %s,", employee.Name),
		fmt.Sprintf("Here is your payment summary from %s:", shop.Name),
		"",
		fmt.Sprintf("*Total Earned:* %s", currency.Format(summary.TotalEarned)),
		fmt.Sprintf("*Total Paid:* %s", currency.Format(summary.TotalPaid)),
		fmt.Sprintf("*Balance Due:* %s", currency.Format(summary.Balance)),
		"",
		"Thank you for your work!",
	}
	return strings.Join(lines, "\n")
}

func digitsOnly(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
