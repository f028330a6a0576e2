// Package derive holds the pure derived-data computations over AppState:
// order totals, customer and employee ledgers, statement windows,
// dashboard KPIs and per-employee workload. Everything here is
// recomputed on read; inputs are small and recomputation is O(n).
package derive

import (
	"github.com/shopspring/decimal"

	"tailor-backend/internal/models"
)

// Subtotal is the sum of quantity * unit price across items
func Subtotal(items []models.LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}

// PaymentsTotal sums the amounts received against an order
func PaymentsTotal(payments []models.Payment) decimal.Decimal {
	total := decimal.Zero
	for _, p := range payments {
		total = total.Add(p.Amount)
	}
	return total
}

// ApplyTotals recomputes and stores subtotal, total and balance on the
// order. Every mutation path that changes items, discount or payments
// must call this so the stored fields stay consistent with the data.
func ApplyTotals(o *models.Order) {
	o.Subtotal = Subtotal(o.Items)
	o.Total = o.Subtotal.Sub(o.Discount)
	paid := PaymentsTotal(o.Payments)
	o.Advance = paid
	o.Balance = o.Total.Sub(paid)
}
