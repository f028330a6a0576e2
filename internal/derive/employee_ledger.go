package derive

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"tailor-backend/internal/models"
)

type LedgerEntryType string

const (
	LedgerEntryWork    LedgerEntryType = "work"
	LedgerEntryPayment LedgerEntryType = "payment"
)

// LedgerEntry is one dated credit (work performed) or debit (payment
// made) affecting an employee's running balance
type LedgerEntry struct {
	Date        time.Time       `json:"date"`
	Type        LedgerEntryType `json:"type"`
	Particulars string          `json:"particulars"`
	Credit      decimal.Decimal `json:"credit"`
	Debit       decimal.Decimal `json:"debit"`
	OrderID     string          `json:"orderId,omitempty"`
}

type LedgerSummary struct {
	TotalEarned decimal.Decimal `json:"totalEarned"`
	TotalPaid   decimal.Decimal `json:"totalPaid"`
	Balance     decimal.Decimal `json:"balance"`
}

// EmployeeLedger builds the chronological ledger for an employee: one
// work credit per assignment with payment > 0, dated on the owning
// order's date, merged with one debit per payout. Entries are sorted
// ascending by date.
func EmployeeLedger(st models.AppState, employee models.Employee) ([]LedgerEntry, LedgerSummary) {
	var entries []LedgerEntry
	earned := decimal.Zero
	paid := decimal.Zero

	for _, o := range st.Orders {
		customerName := "Unknown"
		if c, ok := st.FindCustomer(o.CustomerID); ok {
			customerName = c.FullName
		}
		for _, item := range o.Items {
			for _, a := range item.Assignments {
				if a.EmployeeID != employee.ID || !a.Payment.IsPositive() {
					continue
				}
				entries = append(entries, LedgerEntry{
					Date:        o.OrderDate,
					Type:        LedgerEntryWork,
					Particulars: fmt.Sprintf("%s for %s (Order %s)", item.GarmentType, customerName, o.OrderNumber),
					Credit:      a.Payment,
					Debit:       decimal.Zero,
					OrderID:     o.ID,
				})
				earned = earned.Add(a.Payment)
			}
		}
	}

	for _, p := range employee.Payments {
		particulars := p.Notes
		if particulars == "" {
			particulars = "Payment Received"
		}
		entries = append(entries, LedgerEntry{
			Date:        p.Date,
			Type:        LedgerEntryPayment,
			Particulars: particulars,
			Credit:      decimal.Zero,
			Debit:       p.Amount,
		})
		paid = paid.Add(p.Amount)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.Before(entries[j].Date)
	})

	return entries, LedgerSummary{
		TotalEarned: earned,
		TotalPaid:   paid,
		Balance:     earned.Sub(paid),
	}
}

// StatementWindow returns the suffix of the ledger since the balance
// last returned to exactly zero: the currently-open, not-yet-settled
// run of transactions. If the final entry itself settles the balance,
// the window instead starts after the previous zero-crossing so a
// just-settled run is still shown in full; with no earlier crossing the
// window is the whole ledger.
func StatementWindow(entries []LedgerEntry) ([]LedgerEntry, LedgerSummary) {
	if len(entries) == 0 {
		return []LedgerEntry{}, LedgerSummary{
			TotalEarned: decimal.Zero,
			TotalPaid:   decimal.Zero,
			Balance:     decimal.Zero,
		}
	}

	var zeroIndexes []int
	running := decimal.Zero
	for i, e := range entries {
		running = running.Add(e.Credit).Sub(e.Debit)
		if running.IsZero() {
			zeroIndexes = append(zeroIndexes, i)
		}
	}

	start := 0
	last := len(entries) - 1
	if n := len(zeroIndexes); n > 0 {
		if zeroIndexes[n-1] == last {
			if n > 1 {
				start = zeroIndexes[n-2] + 1
			}
		} else {
			start = zeroIndexes[n-1] + 1
		}
	}

	window := entries[start:]
	earned := decimal.Zero
	paid := decimal.Zero
	for _, e := range window {
		earned = earned.Add(e.Credit)
		paid = paid.Add(e.Debit)
	}
	return window, LedgerSummary{
		TotalEarned: earned,
		TotalPaid:   paid,
		Balance:     earned.Sub(paid),
	}
}
