package derive

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tailor-backend/internal/models"
)

func day(n int) time.Time {
	return time.Date(2026, time.March, n, 10, 0, 0, 0, time.UTC)
}

func credit(n int, amount int64) LedgerEntry {
	return LedgerEntry{Date: day(n), Type: LedgerEntryWork, Credit: decimal.NewFromInt(amount), Debit: decimal.Zero}
}

func debit(n int, amount int64) LedgerEntry {
	return LedgerEntry{Date: day(n), Type: LedgerEntryPayment, Credit: decimal.Zero, Debit: decimal.NewFromInt(amount)}
}

func TestEmployeeLedgerMergesWorkAndPayments(t *testing.T) {
	employee := models.Employee{
		ID:   "e1",
		Name: "Suresh",
		Payments: []models.EmployeePayment{
			{ID: "p1", Amount: decimal.NewFromInt(200), Date: day(3), Notes: "Weekly settlement"},
		},
	}
	st := models.AppState{
		Customers: []models.Customer{{ID: "c1", FullName: "Asha Patil"}},
		Employees: []models.Employee{employee},
		Orders: []models.Order{
			{
				ID:          "o1",
				OrderNumber: "DT-20260301-abcd",
				CustomerID:  "c1",
				OrderDate:   day(1),
				Items: []models.LineItem{
					{
						GarmentType: "Kurta",
						Assignments: []models.WorkAssignment{
							{EmployeeID: "e1", Payment: decimal.NewFromInt(150)},
							{EmployeeID: "e1", Payment: decimal.NewFromInt(150)},
							{EmployeeID: "e2", Payment: decimal.NewFromInt(150)},
							{EmployeeID: "e1", Payment: decimal.Zero},
						},
					},
				},
			},
		},
	}

	entries, summary := EmployeeLedger(st, employee)

	require.Len(t, entries, 3, "two paid assignments plus one payout; zero-rate work is not a ledger entry")
	assert.Equal(t, LedgerEntryWork, entries[0].Type)
	assert.Equal(t, "Kurta for Asha Patil (Order DT-20260301-abcd)", entries[0].Particulars)
	assert.Equal(t, "o1", entries[0].OrderID)
	assert.Equal(t, LedgerEntryPayment, entries[2].Type)
	assert.Equal(t, "Weekly settlement", entries[2].Particulars)

	assert.True(t, summary.TotalEarned.Equal(decimal.NewFromInt(300)))
	assert.True(t, summary.TotalPaid.Equal(decimal.NewFromInt(200)))
	assert.True(t, summary.Balance.Equal(decimal.NewFromInt(100)))
}

func TestEmployeeLedgerDefaultsPayoutParticulars(t *testing.T) {
	employee := models.Employee{
		ID:       "e1",
		Payments: []models.EmployeePayment{{ID: "p1", Amount: decimal.NewFromInt(50), Date: day(1)}},
	}

	entries, _ := EmployeeLedger(models.AppState{Employees: []models.Employee{employee}}, employee)

	require.Len(t, entries, 1)
	assert.Equal(t, "Payment Received", entries[0].Particulars)
}

func TestStatementWindowEmptyLedger(t *testing.T) {
	window, summary := StatementWindow(nil)

	assert.Empty(t, window)
	assert.True(t, summary.Balance.IsZero())
}

func TestStatementWindowNoSettlementShowsAll(t *testing.T) {
	entries := []LedgerEntry{credit(1, 100), credit(2, 50), debit(3, 80)}

	window, summary := StatementWindow(entries)

	assert.Len(t, window, 3)
	assert.True(t, summary.Balance.Equal(decimal.NewFromInt(70)))
}

func TestStatementWindowStartsAfterLastSettlement(t *testing.T) {
	// Settled at entry 2, then new work begins
	entries := []LedgerEntry{credit(1, 100), debit(2, 100), credit(3, 50)}

	window, summary := StatementWindow(entries)

	require.Len(t, window, 1)
	assert.True(t, window[0].Credit.Equal(decimal.NewFromInt(50)))
	assert.True(t, summary.TotalEarned.Equal(decimal.NewFromInt(50)))
	assert.True(t, summary.Balance.Equal(decimal.NewFromInt(50)))
}

func TestStatementWindowJustSettledShowsFullRun(t *testing.T) {
	// The final entry settles the balance: show the whole settled run
	entries := []LedgerEntry{credit(1, 100), debit(2, 100)}

	window, summary := StatementWindow(entries)

	assert.Len(t, window, 2)
	assert.True(t, summary.Balance.IsZero())
}

func TestStatementWindowJustSettledAfterEarlierSettlement(t *testing.T) {
	entries := []LedgerEntry{
		credit(1, 100), debit(2, 100), // first settled run
		credit(3, 50), debit(4, 50), // second settled run, just closed
	}

	window, summary := StatementWindow(entries)

	require.Len(t, window, 2)
	assert.True(t, window[0].Credit.Equal(decimal.NewFromInt(50)))
	assert.True(t, summary.Balance.IsZero())
}
