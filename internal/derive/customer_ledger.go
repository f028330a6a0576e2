package derive

import (
	"github.com/shopspring/decimal"

	"tailor-backend/internal/models"
)

// CustomerLedger summarizes a customer's billing position across orders
type CustomerLedger struct {
	Orders      []models.Order  `json:"orders"`
	TotalBilled decimal.Decimal `json:"totalBilled"`
	TotalPaid   decimal.Decimal `json:"totalPaid"`
	BalanceDue  decimal.Decimal `json:"balanceDue"`
}

// CustomerLedgerFor filters the customer's orders and totals them:
// billed = sum of order totals, paid = sum of (total - balance),
// due = billed - paid.
func CustomerLedgerFor(st models.AppState, customerID string) CustomerLedger {
	ledger := CustomerLedger{
		Orders:      []models.Order{},
		TotalBilled: decimal.Zero,
		TotalPaid:   decimal.Zero,
	}
	for _, o := range st.Orders {
		if o.CustomerID != customerID {
			continue
		}
		ledger.Orders = append(ledger.Orders, o)
		ledger.TotalBilled = ledger.TotalBilled.Add(o.Total)
		ledger.TotalPaid = ledger.TotalPaid.Add(o.Total.Sub(o.Balance))
	}
	ledger.BalanceDue = ledger.TotalBilled.Sub(ledger.TotalPaid)
	return ledger
}
